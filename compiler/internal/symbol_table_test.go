package internal

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSymbolEnvironment_Scopes(t *testing.T) {
	env := NewSymbolEnvironment()
	assert.Equal(t, 0, env.Depth())
	assert.False(t, env.IsRedeclaredInCurrentScope("x"))
	assert.False(t, env.Resolve("x"))

	env.EnterScope()
	env.DeclareVariable("x", GlobalOwner, LocalVariable)
	assert.True(t, env.IsRedeclaredInCurrentScope("x"))
	assert.True(t, env.Resolve("x"))

	env.EnterScope()
	assert.Equal(t, 2, env.Depth())
	// Visible but not declared in the nested scope, so it may be shadowed.
	assert.False(t, env.IsRedeclaredInCurrentScope("x"))
	assert.True(t, env.Resolve("x"))
	env.DeclareVariable("x", "F", LocalVariable)
	inner, ok := env.LookUpVariable("x")
	assert.True(t, ok)
	assert.Equal(t, &VariableEntry{Name: "x", Owner: "F", Kind: LocalVariable, Level: 1}, inner)

	env.ExitScope()
	outer, ok := env.LookUpVariable("x")
	assert.True(t, ok)
	assert.Equal(t, &VariableEntry{Name: "x", Owner: GlobalOwner, Kind: LocalVariable, Level: 0}, outer)

	env.ExitScope()
	assert.Equal(t, 0, env.Depth())
	assert.False(t, env.Resolve("x"))
}

func TestSymbolEnvironment_Procedures(t *testing.T) {
	env := NewSymbolEnvironment()
	env.EnterScope()
	env.DeclareProcedure("F")
	assert.True(t, env.IsRedeclaredInCurrentScope("F"))

	env.EnterScope()
	p, ok := env.LookUpProcedure("F")
	assert.True(t, ok)
	assert.Equal(t, &ProcedureEntry{Name: "F", Level: 0, Arity: 1, ReturnType: IntegerTP}, p)
	_, ok = env.LookUpVariable("F")
	assert.False(t, ok)
	_, ok = env.LookUpProcedure("G")
	assert.False(t, ok)
	env.ExitScope()
	env.ExitScope()
}

func TestSymbolEnvironment_VariableAndProcedureShareNames(t *testing.T) {
	env := NewSymbolEnvironment()
	env.EnterScope()
	env.DeclareVariable("k", GlobalOwner, LocalVariable)
	assert.True(t, env.IsRedeclaredInCurrentScope("k"))
	assert.False(t, env.IsRedeclaredInCurrentScope("F"))
	env.DeclareProcedure("F")
	assert.True(t, env.IsRedeclaredInCurrentScope("F"))
	env.ExitScope()
}

func TestSymbolEnvironment_HistoryOutlivesScopes(t *testing.T) {
	env := NewSymbolEnvironment()
	env.EnterScope()
	env.DeclareVariable("k", GlobalOwner, LocalVariable)
	env.DeclareProcedure("F")
	env.EnterScope()
	env.DeclareVariable("n", "F", LocalVariable)
	env.ExitScope()
	env.ExitScope()

	assert.Equal(t, []*VariableEntry{
		{Name: "k", Owner: GlobalOwner, Kind: LocalVariable, Level: 0},
		{Name: "n", Owner: "F", Kind: LocalVariable, Level: 1},
	}, env.Variables())
	assert.Equal(t, []*ProcedureEntry{
		{Name: "F", Level: 0, Arity: 1, ReturnType: IntegerTP},
	}, env.Procedures())
}

func TestSymbolEnvironment_ExitEmptyPanics(t *testing.T) {
	env := NewSymbolEnvironment()
	assert.Panics(t, func() { env.ExitScope() })
	assert.Panics(t, func() { env.DeclareVariable("x", GlobalOwner, LocalVariable) })
}
