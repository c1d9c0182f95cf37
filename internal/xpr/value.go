package xpr

import (
	"fmt"
	"strconv"
)

const builtinID = "ID"

// Value is the result of evaluating a term.
type Value interface {
	String() string
}

// IntValue is a 64-bit integer. Arithmetic on it wraps around on overflow.
type IntValue int64

func (v IntValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

type FloatValue float64

func (v FloatValue) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// FunctionValue is a user-defined function. It keeps no environment, names in
// the body other than its parameters are resolved where the function is called.
type FunctionValue struct {
	Name   string
	Params []string
	Body   Term
}

func newFunctionValue(term *FunctionTerm) *FunctionValue {
	params := append([]string(nil), term.Params...)
	return &FunctionValue{term.Name, params, term.Body}
}

func (fn *FunctionValue) arity() int {
	return len(fn.Params)
}

func (fn *FunctionValue) String() string {
	return fmt.Sprintf("<fn %s/%d>", fn.Name, fn.arity())
}

// BuiltinValue is a name bound to behavior implemented by the interpreter.
type BuiltinValue struct {
	Name string
}

func (b BuiltinValue) String() string {
	switch b.Name {
	case builtinID:
		return fmt.Sprintf("<builtin %s/1>", b.Name)
	default:
		return fmt.Sprintf("<builtin %s>", b.Name)
	}
}

// UnitValue is the result of a term evaluated only for its effect.
type UnitValue struct{}

func (UnitValue) String() string {
	return ""
}

func typeName(v Value) string {
	switch v.(type) {
	case IntValue:
		return "integer"
	case FloatValue:
		return "float"
	case *FunctionValue:
		return "function"
	case BuiltinValue:
		return "builtin"
	case UnitValue:
		return "unit"
	}
	return fmt.Sprintf("%T", v)
}
