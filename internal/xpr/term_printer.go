package xpr

import (
	"fmt"
	"strconv"
	"strings"
)

// TermPrinter renders a syntax tree as an S-expression, with every operator
// application in its own parentheses.
type TermPrinter struct{}

func (printer *TermPrinter) Print(term Term) string {
	s, _ := term.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *TermPrinter) VisitIdentifierTerm(term *IdentifierTerm) (interface{}, error) {
	return term.Name, nil
}

func (printer *TermPrinter) VisitIntegerTerm(term *IntegerTerm) (interface{}, error) {
	return strconv.FormatInt(term.Val, 10), nil
}

func (printer *TermPrinter) VisitFloatTerm(term *FloatTerm) (interface{}, error) {
	s := strconv.FormatFloat(term.Val, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s, nil
}

func (printer *TermPrinter) VisitFunctionTerm(term *FunctionTerm) (interface{}, error) {
	return fmt.Sprintf(
		"(fn %s (%s) %s)",
		term.Name,
		strings.Join(term.Params, " "),
		printer.Print(term.Body),
	), nil
}

func (printer *TermPrinter) VisitCallTerm(term *CallTerm) (interface{}, error) {
	var b strings.Builder
	b.WriteString("(call ")
	b.WriteString(term.Name)
	for _, arg := range term.Args {
		b.WriteString(" ")
		b.WriteString(printer.Print(arg))
	}
	b.WriteString(")")
	return b.String(), nil
}

func (printer *TermPrinter) VisitBinaryTerm(term *BinaryTerm) (interface{}, error) {
	return fmt.Sprintf(
		"(%s %s %s)",
		term.Op,
		printer.Print(term.Lhs),
		printer.Print(term.Rhs),
	), nil
}

func (printer *TermPrinter) VisitUnaryTerm(term *UnaryTerm) (interface{}, error) {
	return fmt.Sprintf("(%s %s)", term.Op, printer.Print(term.Operand)), nil
}

func (printer *TermPrinter) VisitSyntaxTerm(term *SyntaxTerm) (interface{}, error) {
	return fmt.Sprintf(
		"(syntax %s %q %d %s)",
		term.Name,
		term.Pattern,
		term.Precedence,
		term.Scope,
	), nil
}
