package xpr

//go:generate go run ../cmd/term_codegen ../xpr

// BinaryOperator is the operator of a BinaryTerm
type BinaryOperator int

const (
	OpPlus BinaryOperator = iota
	OpMinus
	OpTimes
	OpDiv
	OpPow
)

func (op BinaryOperator) String() string {
	switch op {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpTimes:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	}
	return "?"
}

// UnaryOperator is the operator of a UnaryTerm
type UnaryOperator int

const (
	OpNeg UnaryOperator = iota
)

func (op UnaryOperator) String() string {
	if op == OpNeg {
		return "neg"
	}
	return "?"
}

// binaryOperators maps the operator tokens to the operators they denote.
var binaryOperators = map[TokenType]BinaryOperator{
	PLUS:  OpPlus,
	MINUS: OpMinus,
	STAR:  OpTimes,
	SLASH: OpDiv,
	CARET: OpPow,
}

// SyntaxScope tells where a syntax rule is visible.
type SyntaxScope int

const (
	ScopeGlobal SyntaxScope = iota
	ScopeLocal
)

func (scope SyntaxScope) String() string {
	if scope == ScopeLocal {
		return "local"
	}
	return "global"
}
