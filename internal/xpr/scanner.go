package xpr

import (
	"errors"
	"strconv"
)

// Scanner reads the input source and collects all the tokens that can be found.
// Scanning never fails, characters that do not start any token are kept as
// UNKNOWN tokens so the parser can point at them.
type Scanner struct {
	start   int
	current int
	source  []rune
	tokens  []*Token
}

// NewScanner creates a new token scanner
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Tokenize scans the given text and returns its tokens in source order.
func Tokenize(text string) []*Token {
	return NewScanner([]rune(text)).Scan()
}

// StripWhitespace returns the tokens without the WHITESPACE ones.
func StripWhitespace(tokens []*Token) []*Token {
	stripped := make([]*Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Typ != WHITESPACE {
			stripped = append(stripped, tok)
		}
	}
	return stripped
}

// Scan reads the source and collect all the tokens that were found from the
// source
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces, one token per character
		case ' ', '\t', '\n', '\r':
			scanner.addToken(WHITESPACE, nil)
		// Single character tokens
		case '(':
			scanner.addToken(LEFT_PAREN, nil)
		case ')':
			scanner.addToken(RIGHT_PAREN, nil)
		case '[':
			scanner.addToken(LEFT_BRACKET, nil)
		case ']':
			scanner.addToken(RIGHT_BRACKET, nil)
		case '{':
			scanner.addToken(LEFT_BRACE, nil)
		case '}':
			scanner.addToken(RIGHT_BRACE, nil)
		case ',':
			scanner.addToken(COMMA, nil)
		case '+':
			scanner.addToken(PLUS, nil)
		case '-':
			scanner.addToken(MINUS, nil)
		case '*':
			scanner.addToken(STAR, nil)
		case '/':
			scanner.addToken(SLASH, nil)
		case '^':
			scanner.addToken(CARET, nil)
		default:
			if isDigit(r) || r == '.' {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.addToken(UNKNOWN, r)
			}
		}
	}
	return scanner.tokens
}

func (scanner *Scanner) scanNumber() {
	isFloat := scanner.source[scanner.start] == '.'
	for isDigit(scanner.peek()) || scanner.peek() == '.' {
		if scanner.advance() == '.' {
			isFloat = true
		}
	}

	lexeme := string(scanner.source[scanner.start:scanner.current])
	if !isFloat {
		if literal, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
			scanner.addToken(INTEGER, literal)
			return
		}
		// NOTE: only a value that is out of range for int64 can end up here
	}
	scanner.addToken(FLOAT, parseFloatPrefix(lexeme))
}

func (scanner *Scanner) scanIdentifier() {
	for isIdent(scanner.peek()) {
		scanner.advance()
	}
	scanner.addToken(IDENTIFIER, nil)
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type and carries the given literal
func (scanner *Scanner) addToken(typ TokenType, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, literal, scanner.start)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// parseFloatPrefix returns the value of the longest prefix of text that is a
// valid float, so "1.2.3" becomes 1.2 and "." becomes 0.
func parseFloatPrefix(text string) float64 {
	for end := len(text); end > 0; end-- {
		f, err := strconv.ParseFloat(text[:end], 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return f
		}
	}
	return 0
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isBeginIdent(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdent(r rune) bool {
	return isBeginIdent(r) || isDigit(r)
}
