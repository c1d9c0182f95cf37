package xpr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSource(t *testing.T, src string) Term {
	t.Helper()
	rest, term, err := Parse(StripWhitespace(Tokenize(src)))
	require.NoError(t, err, "source %q", src)
	require.Empty(t, rest, "source %q", src)
	return term
}

func TestParsePrimary(t *testing.T) {
	testCases := []struct {
		src  string
		term Term
	}{
		{"42", NewIntegerTerm(42)},
		{"3.14", NewFloatTerm(3.14)},
		{"x", NewIdentifierTerm("x")},
		{"(42)", NewIntegerTerm(42)},
		{"((x))", NewIdentifierTerm("x")},
		{"f()", NewCallTerm("f", []Term{})},
		{"ID(42)", NewCallTerm("ID", []Term{NewIntegerTerm(42)})},
		{"ID(ID(42))", NewCallTerm("ID", []Term{
			NewCallTerm("ID", []Term{NewIntegerTerm(42)}),
		})},
		{"f(1, x)", NewCallTerm("f", []Term{
			NewIntegerTerm(1),
			NewIdentifierTerm("x"),
		})},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.term, parseSource(t, tc.src), "source %q", tc.src)
	}
}

func TestParseOperators(t *testing.T) {
	testCases := []struct {
		src  string
		term Term
	}{
		{"2 + 3 * 4", NewBinaryTerm(OpPlus,
			NewIntegerTerm(2),
			NewBinaryTerm(OpTimes, NewIntegerTerm(3), NewIntegerTerm(4)))},
		{"(1 + 2) * 3", NewBinaryTerm(OpTimes,
			NewBinaryTerm(OpPlus, NewIntegerTerm(1), NewIntegerTerm(2)),
			NewIntegerTerm(3))},
		{"2^3^2", NewBinaryTerm(OpPow,
			NewIntegerTerm(2),
			NewBinaryTerm(OpPow, NewIntegerTerm(3), NewIntegerTerm(2)))},
		{"-2^2", NewUnaryTerm(OpNeg,
			NewBinaryTerm(OpPow, NewIntegerTerm(2), NewIntegerTerm(2)))},
		{"--5", NewUnaryTerm(OpNeg, NewUnaryTerm(OpNeg, NewIntegerTerm(5)))},
		{"1 - 2 - 3", NewBinaryTerm(OpMinus,
			NewBinaryTerm(OpMinus, NewIntegerTerm(1), NewIntegerTerm(2)),
			NewIntegerTerm(3))},
		{"8 / 4 / 2", NewBinaryTerm(OpDiv,
			NewBinaryTerm(OpDiv, NewIntegerTerm(8), NewIntegerTerm(4)),
			NewIntegerTerm(2))},
		{"2 * -3", NewBinaryTerm(OpTimes,
			NewIntegerTerm(2),
			NewUnaryTerm(OpNeg, NewIntegerTerm(3)))},
		{"2 * -3^2", NewBinaryTerm(OpTimes,
			NewIntegerTerm(2),
			NewUnaryTerm(OpNeg,
				NewBinaryTerm(OpPow, NewIntegerTerm(3), NewIntegerTerm(2))))},
		{"8 / -2^2", NewBinaryTerm(OpDiv,
			NewIntegerTerm(8),
			NewUnaryTerm(OpNeg,
				NewBinaryTerm(OpPow, NewIntegerTerm(2), NewIntegerTerm(2))))},
		{"2^-1", NewBinaryTerm(OpPow,
			NewIntegerTerm(2),
			NewUnaryTerm(OpNeg, NewIntegerTerm(1)))},
		{"-x * 2", NewBinaryTerm(OpTimes,
			NewUnaryTerm(OpNeg, NewIdentifierTerm("x")),
			NewIntegerTerm(2))},
		{"f(1, 2 + 3)", NewCallTerm("f", []Term{
			NewIntegerTerm(1),
			NewBinaryTerm(OpPlus, NewIntegerTerm(2), NewIntegerTerm(3)),
		})},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.term, parseSource(t, tc.src), "source %q", tc.src)
	}
}

func TestParseFunction(t *testing.T) {
	testCases := []struct {
		src  string
		term Term
	}{
		{"f(x, y) { x * y }", NewFunctionTerm("f", []string{"x", "y"},
			NewBinaryTerm(OpTimes, NewIdentifierTerm("x"), NewIdentifierTerm("y")))},
		{"one() { 1 }", NewFunctionTerm("one", []string{}, NewIntegerTerm(1))},
		{"g(x) { f(x, 2) }", NewFunctionTerm("g", []string{"x"},
			NewCallTerm("f", []Term{NewIdentifierTerm("x"), NewIntegerTerm(2)}))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.term, parseSource(t, tc.src), "source %q", tc.src)
	}
}

func TestParsePrint(t *testing.T) {
	testCases := []struct {
		src string
		out string
	}{
		{"2 + 3 * 4", "(+ 2 (* 3 4))"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"2^3^2", "(^ 2 (^ 3 2))"},
		{"-2^2", "(neg (^ 2 2))"},
		{"1.0 / 3", "(/ 1.0 3)"},
		{"g(1, 2.5)", "(call g 1 2.5)"},
		{"f(x) { x + 1 }", "(fn f (x) (+ x 1))"},
	}

	assert := assert.New(t)
	printer := TermPrinter{}
	for _, tc := range testCases {
		assert.Equal(tc.out, printer.Print(parseSource(t, tc.src)))
	}
	assert.Equal(
		`(syntax INFIX "{a} op {b}" 2 local)`,
		printer.Print(NewSyntaxTerm("INFIX", "{a} op {b}", 2, ScopeLocal)),
	)
}

func TestParseWithWhitespaceTokens(t *testing.T) {
	testCases := []struct {
		src string
		out string
	}{
		{"1 + 2", "(+ 1 2)"},
		{" ( 1 + 2 ) * 3 ", "(* (+ 1 2) 3)"},
		{"2 ^ 3", "(^ 2 3)"},
		{"- 2", "(neg 2)"},
		{"f( 1 , 2 )", "(call f 1 2)"},
		{"f(x) { x }", "(fn f (x) x)"},
	}

	assert := assert.New(t)
	printer := TermPrinter{}
	for _, tc := range testCases {
		rest, term, err := Parse(Tokenize(tc.src))
		if assert.NoError(err, "source %q", tc.src) {
			assert.Empty(rest)
			assert.Equal(tc.out, printer.Print(term))
		}
	}
}

func TestParseReturnsRest(t *testing.T) {
	assert := assert.New(t)

	toks := StripWhitespace(Tokenize("1 2 3"))
	rest, term, err := Parse(toks)
	assert.NoError(err)
	assert.Equal(NewIntegerTerm(1), term)
	assert.Equal(toks[1:], rest)
}

func TestParseError(t *testing.T) {
	testCases := []struct {
		src    string
		kind   error
		pos    int
		lexeme string
	}{
		{"", ErrUnexpectedEndOfInput, 0, ""},
		{"1 +", ErrUnexpectedEndOfInput, 2, ""},
		{"-", ErrUnexpectedEndOfInput, 1, ""},
		{"f(", ErrUnexpectedEndOfInput, 2, ""},
		{"(1 + 2", ErrUnexpectedToken, 4, ""},
		{"1 + )", ErrUnexpectedToken, 2, ")"},
		{"*2", ErrUnexpectedToken, 0, "*"},
		{"=", ErrUnexpectedToken, 0, "="},
		{"1 + [2]", ErrUnexpectedToken, 2, "["},
		{"f(1 2)", ErrUnexpectedToken, 3, "2"},
		{"f(1,)", ErrUnexpectedToken, 4, ")"},
		{"f(1 + 1) { 2 }", ErrUnexpectedToken, 2, "1"},
		{"f(x, x) { x }", ErrUnexpectedToken, 4, "x"},
		{"f(x) { x", ErrUnexpectedToken, 6, ""},
		{"f(x) { x )", ErrUnexpectedToken, 6, ")"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, _, err := Parse(StripWhitespace(Tokenize(tc.src)))

		var parseErr *ParseError
		if !assert.True(errors.As(err, &parseErr), "source %q", tc.src) {
			continue
		}
		assert.ErrorIs(err, tc.kind, "source %q", tc.src)
		assert.Equal(tc.pos, parseErr.Pos, "source %q", tc.src)
		if tc.lexeme == "" {
			assert.Nil(parseErr.Token, "source %q", tc.src)
		} else if assert.NotNil(parseErr.Token, "source %q", tc.src) {
			assert.Equal(tc.lexeme, parseErr.Token.Lexeme, "source %q", tc.src)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	assert := assert.New(t)

	_, _, err := Parse(StripWhitespace(Tokenize("1 + )")))
	assert.EqualError(err, "[col 5] Error at ')': Expect expression.")

	_, err = NewSession(0).ParseSource("  f(x,  1) { x }")
	assert.EqualError(err, "[col 9] Error at '1': Expect parameter name.")

	_, _, err = Parse(nil)
	assert.EqualError(err, "[token 0] Error at end: Expect expression.")
}
