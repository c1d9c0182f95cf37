package xpr

import (
	"fmt"
	"math"

	"fortio.org/log"
)

// maxIntExponent is the largest exponent for which integer powers are computed
// exactly, larger or negative exponents are computed with floats.
const maxIntExponent = 20

// Interpreter evaluates syntax trees. This struct implements TermVisitor.
//
// The active scopes form a stack of frames. frames[0] is the global scope and
// each call pushes a frame whose enclosing scope is the caller's frame.
type Interpreter struct {
	frames   []*Environment
	maxDepth int
}

// NewInterpreter creates an interpreter with a fresh global scope. maxDepth
// bounds the number of nested calls, 0 means no bound.
func NewInterpreter(maxDepth int) *Interpreter {
	return &Interpreter{[]*Environment{NewRootEnvironment()}, maxDepth}
}

// Interpret evaluates the term in the current scope.
func (in *Interpreter) Interpret(term Term) (Value, error) {
	return in.eval(term)
}

// Globals returns the global scope.
func (in *Interpreter) Globals() *Environment {
	return in.frames[0]
}

// Depth returns the number of calls being evaluated.
func (in *Interpreter) Depth() int {
	return len(in.frames) - 1
}

func (in *Interpreter) VisitIdentifierTerm(term *IdentifierTerm) (interface{}, error) {
	val, ok := in.environment().Lookup(term.Name)
	if !ok {
		msg := fmt.Sprintf("Undefined variable '%s'.", term.Name)
		return nil, newRuntimeError(ErrUndefinedVariable, term.Name, msg)
	}
	return val, nil
}

func (in *Interpreter) VisitIntegerTerm(term *IntegerTerm) (interface{}, error) {
	return IntValue(term.Val), nil
}

func (in *Interpreter) VisitFloatTerm(term *FloatTerm) (interface{}, error) {
	return FloatValue(term.Val), nil
}

func (in *Interpreter) VisitFunctionTerm(term *FunctionTerm) (interface{}, error) {
	fn := newFunctionValue(term)
	log.LogVf("define %s at depth %d", fn, in.Depth())
	in.environment().Bind(term.Name, fn)
	return fn, nil
}

func (in *Interpreter) VisitCallTerm(term *CallTerm) (interface{}, error) {
	callee, ok := in.environment().Lookup(term.Name)
	if !ok {
		msg := fmt.Sprintf("Function '%s' not found.", term.Name)
		return nil, newRuntimeError(ErrFunctionNotFound, term.Name, msg)
	}

	switch callee := callee.(type) {
	case BuiltinValue:
		return in.callBuiltin(callee, term.Args)
	case *FunctionValue:
		return in.callFunction(term.Name, callee, term.Args)
	}
	msg := fmt.Sprintf("'%s' is not a function.", term.Name)
	return nil, newRuntimeError(ErrNotCallable, term.Name, msg)
}

func (in *Interpreter) VisitBinaryTerm(term *BinaryTerm) (interface{}, error) {
	lhs, err := in.eval(term.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(term.Rhs)
	if err != nil {
		return nil, err
	}
	return applyBinary(term.Op, lhs, rhs)
}

func (in *Interpreter) VisitUnaryTerm(term *UnaryTerm) (interface{}, error) {
	operand, err := in.eval(term.Operand)
	if err != nil {
		return nil, err
	}

	switch operand := operand.(type) {
	case IntValue:
		return -operand, nil
	case FloatValue:
		return -operand, nil
	}
	msg := fmt.Sprintf("Operand of '%s' must be a number, got %s.", term.Op, typeName(operand))
	return nil, newRuntimeError(ErrInvalidUnaryOperand, "", msg)
}

func (in *Interpreter) VisitSyntaxTerm(term *SyntaxTerm) (interface{}, error) {
	log.LogVf("register syntax rule %s %q", term.Name, term.Pattern)
	in.environment().AddSyntaxRule(SyntaxRule{
		Name:       term.Name,
		Pattern:    term.Pattern,
		Precedence: term.Precedence,
		Scope:      term.Scope,
	})
	return UnitValue{}, nil
}

func (in *Interpreter) callBuiltin(builtin BuiltinValue, args []Term) (Value, error) {
	switch builtin.Name {
	case builtinID:
		if len(args) != 1 {
			return nil, newArityError(builtin.Name, 1, len(args))
		}
		return in.eval(args[0])
	}
	msg := fmt.Sprintf("Unknown builtin '%s'.", builtin.Name)
	return nil, newRuntimeError(ErrUnknownBuiltin, builtin.Name, msg)
}

// callFunction evaluates the arguments in the caller's scope, then evaluates
// the body in a new frame that holds the parameters.
func (in *Interpreter) callFunction(name string, fn *FunctionValue, args []Term) (Value, error) {
	if fn.arity() != len(args) {
		return nil, newArityError(name, fn.arity(), len(args))
	}

	vals := make([]Value, len(args))
	for i, arg := range args {
		val, err := in.eval(arg)
		if err != nil {
			return nil, err
		}
		vals[i] = val
	}

	env := NewEnvironment(in.environment())
	for i, param := range fn.Params {
		env.Bind(param, vals[i])
	}
	log.LogVf("call %s with %v at depth %d", name, vals, in.Depth()+1)
	return in.execFrame(fn.Body, env)
}

// execFrame evaluates term with env pushed as the innermost frame. The frame
// stack is cut back to its previous height on every return path.
func (in *Interpreter) execFrame(term Term, env *Environment) (Value, error) {
	if in.maxDepth > 0 && in.Depth() >= in.maxDepth {
		msg := fmt.Sprintf("Maximum call depth %d exceeded.", in.maxDepth)
		return nil, newRuntimeError(ErrRecursionLimit, "", msg)
	}

	height := len(in.frames)
	in.frames = append(in.frames, env)
	defer func() {
		in.frames[height] = nil
		in.frames = in.frames[:height]
	}()
	return in.eval(term)
}

func (in *Interpreter) environment() *Environment {
	return in.frames[len(in.frames)-1]
}

func (in *Interpreter) eval(term Term) (Value, error) {
	val, err := term.Accept(in)
	if err != nil {
		return nil, err
	}
	return val.(Value), nil
}

// applyBinary applies op to two numbers. An integer paired with a float is
// converted to a float first.
func applyBinary(op BinaryOperator, lhs, rhs Value) (Value, error) {
	switch l := lhs.(type) {
	case IntValue:
		switch r := rhs.(type) {
		case IntValue:
			return applyInt(op, l, r)
		case FloatValue:
			return applyFloat(op, FloatValue(l), r)
		}
	case FloatValue:
		switch r := rhs.(type) {
		case IntValue:
			return applyFloat(op, l, FloatValue(r))
		case FloatValue:
			return applyFloat(op, l, r)
		}
	}
	msg := fmt.Sprintf(
		"Operands of '%s' must be numbers, got %s and %s.",
		op, typeName(lhs), typeName(rhs),
	)
	return nil, newRuntimeError(ErrInvalidOperandTypes, "", msg)
}

func applyInt(op BinaryOperator, l, r IntValue) (Value, error) {
	switch op {
	case OpPlus:
		return l + r, nil
	case OpMinus:
		return l - r, nil
	case OpTimes:
		return l * r, nil
	case OpDiv:
		if r == 0 {
			return nil, newRuntimeError(ErrDivisionByZero, "", "Division by zero.")
		}
		return l / r, nil
	case OpPow:
		if r < 0 || r > maxIntExponent {
			return FloatValue(math.Pow(float64(l), float64(r))), nil
		}
		result := IntValue(1)
		for i := IntValue(0); i < r; i++ {
			result *= l
		}
		return result, nil
	}
	panic("Unreachable")
}

func applyFloat(op BinaryOperator, l, r FloatValue) (Value, error) {
	switch op {
	case OpPlus:
		return l + r, nil
	case OpMinus:
		return l - r, nil
	case OpTimes:
		return l * r, nil
	case OpDiv:
		if r == 0 {
			return nil, newRuntimeError(ErrDivisionByZero, "", "Division by zero.")
		}
		return l / r, nil
	case OpPow:
		return FloatValue(math.Pow(float64(l), float64(r))), nil
	}
	panic("Unreachable")
}
