package xpr

// SyntaxRule is a named syntax registered through a SyntaxTerm. Rules are
// stored and inherited, but the parser does not consult them.
type SyntaxRule struct {
	Name       string
	Pattern    string
	Precedence int
	Scope      SyntaxScope
}

// Environment is one scope of names. Lookups fall back to the enclosing
// environment, definitions always go to the innermost one.
type Environment struct {
	enclosing   *Environment
	values      map[string]Value
	syntaxRules []SyntaxRule
}

// NewEnvironment creates a scope enclosed by the given one. The enclosing
// scope's syntax rules are copied, later changes on either side are not shared.
func NewEnvironment(enclosing *Environment) *Environment {
	env := &Environment{enclosing, make(map[string]Value), nil}
	if enclosing != nil {
		env.syntaxRules = append([]SyntaxRule(nil), enclosing.syntaxRules...)
	}
	return env
}

// NewRootEnvironment creates the global scope with the builtins and the
// default syntax rule.
func NewRootEnvironment() *Environment {
	env := NewEnvironment(nil)
	env.Bind(builtinID, BuiltinValue{builtinID})
	env.AddSyntaxRule(SyntaxRule{
		Name:       "FUNCTION",
		Pattern:    "{name}({args})",
		Precedence: 1,
		Scope:      ScopeGlobal,
	})
	return env
}

// Enclosing returns the parent scope, nil for the root.
func (env *Environment) Enclosing() *Environment {
	return env.enclosing
}

// Bind sets the value of name in this scope, replacing any previous binding.
func (env *Environment) Bind(name string, value Value) {
	env.values[name] = value
}

// Lookup returns the value of the innermost binding of name.
func (env *Environment) Lookup(name string) (Value, bool) {
	for scope := env; scope != nil; scope = scope.enclosing {
		if value, ok := scope.values[name]; ok {
			return value, true
		}
	}
	return nil, false
}

func (env *Environment) AddSyntaxRule(rule SyntaxRule) {
	env.syntaxRules = append(env.syntaxRules, rule)
}

func (env *Environment) SyntaxRules() []SyntaxRule {
	return env.syntaxRules
}
