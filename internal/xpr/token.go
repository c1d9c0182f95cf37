package xpr

import "fmt"

// Token represents a group of characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal interface{}
	// Pos is the rune offset of the token in the scanned source.
	Pos int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, literal interface{}, pos int) *Token {
	return &Token{typ, lexeme, literal, pos}
}

func (t *Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %q", t.Typ, t.Lexeme)
	}
	return fmt.Sprintf("%s %q %v", t.Typ, t.Lexeme, t.Literal)
}

// TokenType is the kind of a token
type TokenType uint

const (
	// Single-character tokens
	LEFT_PAREN TokenType = iota
	RIGHT_PAREN
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	PLUS
	MINUS
	STAR
	SLASH
	CARET

	// Literals
	IDENTIFIER
	INTEGER
	FLOAT

	// Characters that are kept so the parser can reject them
	WHITESPACE
	UNKNOWN
)

func (tt TokenType) String() string {
	switch tt {
	case LEFT_PAREN:
		return "("
	case RIGHT_PAREN:
		return ")"
	case LEFT_BRACKET:
		return "["
	case RIGHT_BRACKET:
		return "]"
	case LEFT_BRACE:
		return "{"
	case RIGHT_BRACE:
		return "}"
	case COMMA:
		return ","
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case CARET:
		return "^"
	case IDENTIFIER:
		return "IDENTIFIER"
	case INTEGER:
		return "INTEGER"
	case FLOAT:
		return "FLOAT"
	case WHITESPACE:
		return "WHITESPACE"
	case UNKNOWN:
		return "UNKNOWN"
	}
	return ""
}
