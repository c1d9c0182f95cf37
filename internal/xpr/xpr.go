package xpr

import "fortio.org/log"

// Session evaluates source lines one at a time against one interpreter, so
// definitions from earlier lines are visible to later ones. A failed line
// leaves the session usable.
type Session struct {
	interpreter *Interpreter
	printer     TermPrinter
}

// NewSession creates a session whose interpreter allows at most maxDepth
// nested calls, 0 means no bound.
func NewSession(maxDepth int) *Session {
	return &Session{interpreter: NewInterpreter(maxDepth)}
}

// Interpreter returns the interpreter the session evaluates with.
func (s *Session) Interpreter() *Interpreter {
	return s.interpreter
}

// ParseSource parses source as exactly one term. Tokens left after the term
// are reported as unexpected.
func (s *Session) ParseSource(source string) (Term, error) {
	tokens := StripWhitespace(Tokenize(source))
	parser := NewParser(tokens)
	term, err := parser.Parse()
	if err != nil {
		return nil, err
	}
	if rest := parser.Rest(); len(rest) != 0 {
		return nil, newParseError(ErrUnexpectedToken, parser.Pos(), rest[0], "Expect end of input.")
	}
	return term, nil
}

// Eval parses and evaluates source.
func (s *Session) Eval(source string) (Value, error) {
	term, err := s.ParseSource(source)
	if err != nil {
		log.Debugf("parse failed: %v", err)
		return nil, err
	}
	log.Debugf("eval %s", s.printer.Print(term))
	return s.interpreter.Interpret(term)
}

// Print renders term as an S-expression.
func (s *Session) Print(term Term) string {
	return s.printer.Print(term)
}
