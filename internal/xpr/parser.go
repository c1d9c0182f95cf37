package xpr

// Parser composes the syntax tree from a sequence of tokens following the
// grammar described in the package documentation. The parser expects the
// caller to strip whitespace tokens, but skips the ones it finds between
// operands and operators.
type Parser struct {
	current int
	tokens  []*Token
}

// NewParser creates a new parser for the given tokens
func NewParser(tokens []*Token) *Parser {
	return &Parser{0, tokens}
}

// Parse parses one term from the front of tokens and returns the tokens that
// follow it.
func Parse(tokens []*Token) ([]*Token, Term, error) {
	parser := NewParser(tokens)
	term, err := parser.Parse()
	if err != nil {
		return nil, nil, err
	}
	return parser.Rest(), term, nil
}

// Parse parses a single term starting at the current token.
func (parser *Parser) Parse() (Term, error) {
	return parser.expression()
}

// Rest returns the tokens that have not been consumed.
func (parser *Parser) Rest() []*Token {
	return parser.tokens[parser.current:]
}

// Pos returns the index of the next token to be consumed.
func (parser *Parser) Pos() int {
	return parser.current
}

// expression --> additive ;
func (parser *Parser) expression() (Term, error) {
	return parser.additive()
}

// Creates a left-associative nested tree of binary operator nodes.
//
// additive --> multiplicative ( ( "+" | "-" ) multiplicative )* ;
func (parser *Parser) additive() (Term, error) {
	term, err := parser.multiplicative()
	if err != nil {
		return nil, err
	}
	for {
		parser.skipWhitespace()
		if !parser.match(PLUS, MINUS) {
			return term, nil
		}
		op := binaryOperators[parser.prev().Typ]
		rhs, err := parser.multiplicative()
		if err != nil {
			return nil, err
		}
		term = NewBinaryTerm(op, term, rhs)
	}
}

// multiplicative --> unary ( ( "*" | "/" ) unary )* ;
func (parser *Parser) multiplicative() (Term, error) {
	term, err := parser.unary()
	if err != nil {
		return nil, err
	}
	for {
		parser.skipWhitespace()
		if !parser.match(STAR, SLASH) {
			return term, nil
		}
		op := binaryOperators[parser.prev().Typ]
		rhs, err := parser.unary()
		if err != nil {
			return nil, err
		}
		term = NewBinaryTerm(op, term, rhs)
	}
}

// The operand of a leading minus is an exponent so "-2^2" is "-(2^2)".
//
// unary --> "-" exponent
//         | exponent ;
func (parser *Parser) unary() (Term, error) {
	parser.skipWhitespace()
	if parser.match(MINUS) {
		operand, err := parser.exponent()
		if err != nil {
			return nil, err
		}
		return NewUnaryTerm(OpNeg, operand), nil
	}
	return parser.exponent()
}

// Creates a right-associative nested tree, "2^3^2" is "2^(3^2)".
//
// exponent --> primary ( "^" exponent )? ;
func (parser *Parser) exponent() (Term, error) {
	base, err := parser.primary()
	if err != nil {
		return nil, err
	}
	parser.skipWhitespace()
	if !parser.match(CARET) {
		return base, nil
	}
	power, err := parser.exponent()
	if err != nil {
		return nil, err
	}
	return NewBinaryTerm(OpPow, base, power), nil
}

// primary --> INTEGER | FLOAT | IDENTIFIER
//           | IDENTIFIER "(" args? ")" ( "{" expression "}" )?
//           | "(" expression ")"
//           | "-" primary ;
func (parser *Parser) primary() (Term, error) {
	parser.skipWhitespace()
	if parser.isAtEnd() {
		return nil, parser.errorAtCurrent(ErrUnexpectedEndOfInput, "Expect expression.")
	}

	tok := parser.advance()
	switch tok.Typ {
	case MINUS:
		operand, err := parser.primary()
		if err != nil {
			return nil, err
		}
		return NewUnaryTerm(OpNeg, operand), nil
	case INTEGER:
		return NewIntegerTerm(tok.Literal.(int64)), nil
	case FLOAT:
		return NewFloatTerm(tok.Literal.(float64)), nil
	case IDENTIFIER:
		// only a parenthesis that follows the name right away makes a call
		if parser.check(LEFT_PAREN) {
			return parser.call(tok)
		}
		return NewIdentifierTerm(tok.Lexeme), nil
	case LEFT_PAREN:
		term, err := parser.expression()
		if err != nil {
			return nil, err
		}
		parser.skipWhitespace()
		if err := parser.consume(RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return term, nil
	}

	parser.current--
	return nil, parser.errorAtCurrent(ErrUnexpectedToken, "Expect expression.")
}

// A call whose arguments are all names becomes a function definition when a
// body follows it.
//
// args --> expression ( "," expression )* ;
func (parser *Parser) call(name *Token) (Term, error) {
	parser.advance()

	args := make([]Term, 0)
	argsPos := make([]int, 0)
	parser.skipWhitespace()
	if !parser.match(RIGHT_PAREN) {
		for {
			parser.skipWhitespace()
			argsPos = append(argsPos, parser.current)
			arg, err := parser.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			parser.skipWhitespace()
			if parser.match(COMMA) {
				continue
			}
			if err := parser.consume(RIGHT_PAREN, "Expect ',' or ')' after argument."); err != nil {
				return nil, err
			}
			break
		}
	}

	parser.skipWhitespace()
	if parser.match(LEFT_BRACE) {
		return parser.function(name, args, argsPos)
	}
	return NewCallTerm(name.Lexeme, args), nil
}

// function --> IDENTIFIER "(" params? ")" "{" expression "}" ;
// params   --> IDENTIFIER ( "," IDENTIFIER )* ;
func (parser *Parser) function(name *Token, args []Term, argsPos []int) (Term, error) {
	params := make([]string, 0, len(args))
	seen := make(map[string]bool, len(args))
	for i, arg := range args {
		param, ok := arg.(*IdentifierTerm)
		if !ok {
			return nil, parser.errorAt(argsPos[i], "Expect parameter name.")
		}
		if seen[param.Name] {
			return nil, parser.errorAt(argsPos[i], "Duplicate parameter name.")
		}
		seen[param.Name] = true
		params = append(params, param.Name)
	}

	body, err := parser.expression()
	if err != nil {
		return nil, err
	}
	parser.skipWhitespace()
	if err := parser.consume(RIGHT_BRACE, "Expect '}' after function body."); err != nil {
		return nil, err
	}
	return NewFunctionTerm(name.Lexeme, params, body), nil
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return parser.errorAtCurrent(ErrUnexpectedToken, message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isAtEnd() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) skipWhitespace() {
	for parser.check(WHITESPACE) {
		parser.advance()
	}
}

func (parser *Parser) advance() *Token {
	if !parser.isAtEnd() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isAtEnd() bool {
	return parser.current >= len(parser.tokens)
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}

func (parser *Parser) errorAtCurrent(kind error, message string) error {
	if parser.isAtEnd() {
		return newParseError(kind, parser.current, nil, message)
	}
	return newParseError(kind, parser.current, parser.peek(), message)
}

func (parser *Parser) errorAt(pos int, message string) error {
	return newParseError(ErrUnexpectedToken, pos, parser.tokens[pos], message)
}
