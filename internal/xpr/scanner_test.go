package xpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanSingleToken(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		// single character token
		{"(", []*Token{{LEFT_PAREN, "(", nil, 0}}},
		{")", []*Token{{RIGHT_PAREN, ")", nil, 0}}},
		{"[", []*Token{{LEFT_BRACKET, "[", nil, 0}}},
		{"]", []*Token{{RIGHT_BRACKET, "]", nil, 0}}},
		{"{", []*Token{{LEFT_BRACE, "{", nil, 0}}},
		{"}", []*Token{{RIGHT_BRACE, "}", nil, 0}}},
		{",", []*Token{{COMMA, ",", nil, 0}}},
		{"+", []*Token{{PLUS, "+", nil, 0}}},
		{"-", []*Token{{MINUS, "-", nil, 0}}},
		{"*", []*Token{{STAR, "*", nil, 0}}},
		{"/", []*Token{{SLASH, "/", nil, 0}}},
		{"^", []*Token{{CARET, "^", nil, 0}}},
		// whitespaces
		{" ", []*Token{{WHITESPACE, " ", nil, 0}}},
		{"\t", []*Token{{WHITESPACE, "\t", nil, 0}}},
		{"\n", []*Token{{WHITESPACE, "\n", nil, 0}}},
		{"\r", []*Token{{WHITESPACE, "\r", nil, 0}}},
		// identifiers
		{"f", []*Token{{IDENTIFIER, "f", nil, 0}}},
		{"abc", []*Token{{IDENTIFIER, "abc", nil, 0}}},
		{"abc123", []*Token{{IDENTIFIER, "abc123", nil, 0}}},
		{"_abc123", []*Token{{IDENTIFIER, "_abc123", nil, 0}}},
		{"_123abc", []*Token{{IDENTIFIER, "_123abc", nil, 0}}},
		{"ID", []*Token{{IDENTIFIER, "ID", nil, 0}}},
		// integers
		{"0", []*Token{{INTEGER, "0", int64(0), 0}}},
		{"123", []*Token{{INTEGER, "123", int64(123), 0}}},
		{"007", []*Token{{INTEGER, "007", int64(7), 0}}},
		{"9223372036854775807", []*Token{{INTEGER, "9223372036854775807", int64(9223372036854775807), 0}}},
		// floats
		{"0.1", []*Token{{FLOAT, "0.1", 0.1, 0}}},
		{".123", []*Token{{FLOAT, ".123", 0.123, 0}}},
		{"1.", []*Token{{FLOAT, "1.", 1.0, 0}}},
		{"123.456", []*Token{{FLOAT, "123.456", 123.456, 0}}},
		{"1.2.3", []*Token{{FLOAT, "1.2.3", 1.2, 0}}},
		{".", []*Token{{FLOAT, ".", 0.0, 0}}},
		{"9223372036854775808", []*Token{{FLOAT, "9223372036854775808", 9223372036854775808.0, 0}}},
		// unknown
		{"=", []*Token{{UNKNOWN, "=", '=', 0}}},
		{";", []*Token{{UNKNOWN, ";", ';', 0}}},
		{"é", []*Token{{UNKNOWN, "é", 'é', 0}}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.toks, Tokenize(tc.src), "source %q", tc.src)
	}
}

func TestScanEmpty(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(Tokenize(""))
	assert.Empty(StripWhitespace(Tokenize(" \t\r\n")))
}

func TestScanMultipleTokens(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*Token
	}{
		{"-13", []*Token{
			{MINUS, "-", nil, 0},
			{INTEGER, "13", int64(13), 1},
		}},
		{"-1.3", []*Token{
			{MINUS, "-", nil, 0},
			{FLOAT, "1.3", 1.3, 1},
		}},
		{"1a", []*Token{
			{INTEGER, "1", int64(1), 0},
			{IDENTIFIER, "a", nil, 1},
		}},
		{"2^3^2", []*Token{
			{INTEGER, "2", int64(2), 0},
			{CARET, "^", nil, 1},
			{INTEGER, "3", int64(3), 2},
			{CARET, "^", nil, 3},
			{INTEGER, "2", int64(2), 4},
		}},
		{"f({5},[3])", []*Token{
			{IDENTIFIER, "f", nil, 0},
			{LEFT_PAREN, "(", nil, 1},
			{LEFT_BRACE, "{", nil, 2},
			{INTEGER, "5", int64(5), 3},
			{RIGHT_BRACE, "}", nil, 4},
			{COMMA, ",", nil, 5},
			{LEFT_BRACKET, "[", nil, 6},
			{INTEGER, "3", int64(3), 7},
			{RIGHT_BRACKET, "]", nil, 8},
			{RIGHT_PAREN, ")", nil, 9},
		}},
		{"x=1", []*Token{
			{IDENTIFIER, "x", nil, 0},
			{UNKNOWN, "=", '=', 1},
			{INTEGER, "1", int64(1), 2},
		}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.toks, Tokenize(tc.src), "source %q", tc.src)
	}
}

func TestScanKeepsEveryWhitespace(t *testing.T) {
	assert := assert.New(t)

	toks := Tokenize("f ( 5 , 3 )")
	assert.Equal([]*Token{
		{IDENTIFIER, "f", nil, 0},
		{WHITESPACE, " ", nil, 1},
		{LEFT_PAREN, "(", nil, 2},
		{WHITESPACE, " ", nil, 3},
		{INTEGER, "5", int64(5), 4},
		{WHITESPACE, " ", nil, 5},
		{COMMA, ",", nil, 6},
		{WHITESPACE, " ", nil, 7},
		{INTEGER, "3", int64(3), 8},
		{WHITESPACE, " ", nil, 9},
		{RIGHT_PAREN, ")", nil, 10},
	}, toks)

	// adjacent whitespaces are not merged
	toks = Tokenize("1  \t2")
	assert.Len(toks, 5)
	for _, tok := range toks[1:4] {
		assert.Equal(WHITESPACE, tok.Typ)
	}
}

func TestStripWhitespace(t *testing.T) {
	assert := assert.New(t)

	toks := StripWhitespace(Tokenize("f ( 5 , 3 )"))
	typs := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		typs = append(typs, tok.Typ)
	}
	assert.Equal([]TokenType{IDENTIFIER, LEFT_PAREN, INTEGER, COMMA, INTEGER, RIGHT_PAREN}, typs)
	// positions still point into the source
	assert.Equal(8, toks[4].Pos)
}
