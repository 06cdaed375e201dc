package internal

// GlobalOwner is the owner of variables declared outside any function.
const GlobalOwner = "global"

type VariableKind int

const (
	LocalVariable   VariableKind = iota // 0
	FormalParameter                     // 1
)

type VariableEntry struct {
	Name  string
	Owner string // name of the declaring function, GlobalOwner at top level.
	Kind  VariableKind
	Level int
}

type ProcedureEntry struct {
	Name       string
	Level      int
	Arity      int       // functions take exactly one argument.
	ReturnType TokenType // always IntegerTP.
}

// Scope is the symbol table of one begin ... end block.
type Scope struct {
	Level      int
	Variables  map[string]*VariableEntry
	Procedures map[string]*ProcedureEntry
}

func newScope(level int) *Scope {
	return &Scope{
		Level:      level,
		Variables:  map[string]*VariableEntry{},
		Procedures: map[string]*ProcedureEntry{},
	}
}

func (scope *Scope) contains(name string) bool {
	if _, ok := scope.Variables[name]; ok {
		return true
	}
	_, ok := scope.Procedures[name]
	return ok
}

// SymbolEnvironment is a stack of scopes. Only the top scope is ever written.
type SymbolEnvironment struct {
	scopes []*Scope

	// Every entry ever declared, in declaration order. Entries stay here
	// after their scope is gone so the tables can be written out at the end.
	variables  []*VariableEntry
	procedures []*ProcedureEntry
}

func NewSymbolEnvironment() *SymbolEnvironment {
	return &SymbolEnvironment{}
}

func (env *SymbolEnvironment) EnterScope() {
	env.scopes = append(env.scopes, newScope(len(env.scopes)))
}

// ExitScope pops the top scope. Calling it on an empty stack is a bug in the
// caller.
func (env *SymbolEnvironment) ExitScope() {
	if len(env.scopes) == 0 {
		panic("symbol table: exit scope on an empty scope stack")
	}
	env.scopes[len(env.scopes)-1] = nil
	env.scopes = env.scopes[:len(env.scopes)-1]
}

// Depth returns the number of open scopes.
func (env *SymbolEnvironment) Depth() int {
	return len(env.scopes)
}

func (env *SymbolEnvironment) currentScope() *Scope {
	if len(env.scopes) == 0 {
		panic("symbol table: no open scope")
	}
	return env.scopes[len(env.scopes)-1]
}

// DeclareVariable adds name to the top scope, replacing an entry with the same
// name. Callers check IsRedeclaredInCurrentScope first.
func (env *SymbolEnvironment) DeclareVariable(name, owner string, kind VariableKind) {
	scope := env.currentScope()
	entry := &VariableEntry{Name: name, Owner: owner, Kind: kind, Level: scope.Level}
	scope.Variables[name] = entry
	env.variables = append(env.variables, entry)
}

func (env *SymbolEnvironment) DeclareProcedure(name string) {
	scope := env.currentScope()
	entry := &ProcedureEntry{Name: name, Level: scope.Level, Arity: 1, ReturnType: IntegerTP}
	scope.Procedures[name] = entry
	env.procedures = append(env.procedures, entry)
}

// IsRedeclaredInCurrentScope only looks at the top scope, so a nested block
// may shadow an outer name.
func (env *SymbolEnvironment) IsRedeclaredInCurrentScope(name string) bool {
	if len(env.scopes) == 0 {
		return false
	}
	return env.currentScope().contains(name)
}

// Resolve searches from the innermost scope outwards.
func (env *SymbolEnvironment) Resolve(name string) bool {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		if env.scopes[i].contains(name) {
			return true
		}
	}
	return false
}

// LookUpVariable returns the innermost visible variable called name.
func (env *SymbolEnvironment) LookUpVariable(name string) (*VariableEntry, bool) {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		if v, ok := env.scopes[i].Variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (env *SymbolEnvironment) LookUpProcedure(name string) (*ProcedureEntry, bool) {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		if p, ok := env.scopes[i].Procedures[name]; ok {
			return p, true
		}
	}
	return nil, false
}

func (env *SymbolEnvironment) Variables() []*VariableEntry {
	return env.variables
}

func (env *SymbolEnvironment) Procedures() []*ProcedureEntry {
	return env.procedures
}
