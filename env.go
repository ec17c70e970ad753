// env.go — lexical environments and function records.
//
// Env is a binding frame for variables and functions with a parent link;
// lookups walk parent-ward and stop at the first match. Defines always land
// in the current frame — there is no write-through to an ancestor, and the
// language has no assignment form, so a child frame can never mutate a
// parent. That property is what lets parent links replace the wholesale
// per-scope copying the semantics would otherwise require.
package paneerlang

// Function is an immutable record of a user-defined function: signature,
// declared return type and body. It is bound in the environment that
// declares it and looked up by name at call time.
type Function struct {
	Params     []Param
	ReturnType Type
	Body       []Statement
}

// Env is a scope frame. Variables and functions live in separate tables;
// a name can be both.
type Env struct {
	parent *Env
	vars   map[string]Value
	funcs  map[string]*Function
}

// NewEnv creates an empty frame with the given parent (which may be nil).
func NewEnv(parent *Env) *Env {
	return &Env{
		parent: parent,
		vars:   make(map[string]Value),
		funcs:  make(map[string]*Function),
	}
}

// DefineVar binds name to v in the current frame, shadowing any outer
// binding. The value is deep-copied so frames never share storage.
func (e *Env) DefineVar(name string, v Value) {
	e.vars[name] = deepCopy(v)
}

// GetVar retrieves the nearest visible binding of name, walking parent
// links outward. The returned value is a deep copy.
func (e *Env) GetVar(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return deepCopy(v), true
		}
	}
	return Value{}, false
}

// DefineFunc binds a function in the current frame.
func (e *Env) DefineFunc(name string, fn *Function) {
	e.funcs[name] = fn
}

// GetFunc retrieves the nearest visible function named name.
func (e *Env) GetFunc(name string) (*Function, bool) {
	for env := e; env != nil; env = env.parent {
		if fn, ok := env.funcs[name]; ok {
			return fn, true
		}
	}
	return nil, false
}
