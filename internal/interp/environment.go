package interp

// function is a user-defined function: its parameter names and its body
// expression.
type function struct {
	params []string
	body   *Node
}

// Environment holds the forklang runtime's variable scopes and user-defined
// functions (§3). envs[0] is always the global frame and is never popped;
// each call to PushEnv opens a new frame on top of it, closed by PopEnv.
//
// Lookup and assignment deliberately do not search the full frame stack:
// Fetch checks only the top frame and, failing that, the global frame,
// never any frame in between. PushVal mirrors this by preferring to update
// an existing global over shadowing it in the top frame. Parameters are
// always bound with ForcePush, which writes to the top frame unconditionally.
type Environment struct {
	envs      []map[string]Value
	functions map[string]function
}

// NewEnvironment returns an Environment with only the global frame open.
func NewEnvironment() *Environment {
	return &Environment{
		envs:      []map[string]Value{make(map[string]Value)},
		functions: make(map[string]function),
	}
}

// PushEnv opens a new scope frame.
func (e *Environment) PushEnv() {
	e.envs = append(e.envs, make(map[string]Value))
}

// PopEnv closes the topmost scope frame. It is a no-op if only the global
// frame remains, since the global frame is never closed.
func (e *Environment) PopEnv() {
	if len(e.envs) <= 1 {
		return
	}
	e.envs = e.envs[:len(e.envs)-1]
}

func (e *Environment) top() map[string]Value {
	return e.envs[len(e.envs)-1]
}

func (e *Environment) global() map[string]Value {
	return e.envs[0]
}

// Fetch looks up name in the top frame, then falls back to the global frame
// if not found there (and only there — intermediate frames are never
// consulted). Returns Nil, false if name is bound nowhere visible.
func (e *Environment) Fetch(name string) (Value, bool) {
	if v, ok := e.top()[name]; ok {
		return v, true
	}
	if v, ok := e.global()[name]; ok {
		return v, true
	}
	return Nil, false
}

// PushVal assigns name := val. If name is already bound in the global
// frame, the global binding is updated (even from within a nested frame);
// otherwise the binding is written to the top frame.
func (e *Environment) PushVal(name string, val Value) {
	if _, ok := e.global()[name]; ok {
		e.global()[name] = val
		return
	}
	e.top()[name] = val
}

// ForcePush unconditionally writes name := val into the top frame,
// regardless of any existing global binding. This is used to bind function
// parameters, which must shadow rather than clobber a global of the same
// name.
func (e *Environment) ForcePush(name string, val Value) {
	e.top()[name] = val
}

// DefineFunction records a user-defined function under name, replacing any
// prior definition.
func (e *Environment) DefineFunction(name string, params []string, body *Node) {
	e.functions[name] = function{params: params, body: body}
}

// LookupFunction returns the user-defined function named name, if any.
func (e *Environment) LookupFunction(name string) (function, bool) {
	f, ok := e.functions[name]
	return f, ok
}
