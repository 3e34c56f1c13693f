package bigfloat

// An Env holds the mutable state backing a sequence of operations: the
// current Context and the sticky exception flags. Every operation
// performed through an Env resolves its settings against the Env's
// current context and records the exceptional conditions it encounters
// in the Env's flags.
//
// An Env is not safe for concurrent use. The intended pattern is one Env
// per goroutine; Envs are cheap to create and independent of each other,
// so concurrent computations never contend.
//
// The zero Env is ready to use: its current context is DefaultContext
// and its flag set is empty.
type Env struct {
	ctx   Context
	flags Flags
}

// NewEnv returns an Env whose current context is DefaultContext and
// whose flag set is empty.
func NewEnv() *Env {
	return &Env{ctx: DefaultContext}
}

// init establishes the full current context on first use of a
// zero-constructed Env.
func (e *Env) init() {
	if e.ctx.has == 0 {
		e.ctx = DefaultContext
	}
}

// Context returns the current context. The current context always has
// all five attributes set.
func (e *Env) Context() Context {
	e.init()
	return e.ctx
}

// SetContext merges ctx onto the current context, permanently. Unlike
// Push it performs no restoration: the previous current context is gone.
// SetContext is meant for reconfiguring an Env wholesale; for temporary
// overrides use Push or With, which restore the previous context on
// every exit path.
func (e *Env) SetContext(ctx Context) {
	e.init()
	e.ctx = e.ctx.Merge(ctx)
}

// A Scope undoes one Push. See Env.Push.
type Scope struct {
	env  *Env
	prev Context
	done bool
}

// Push merges ctx onto the current context and returns a Scope whose Pop
// method restores the context that was current before the call. The
// usual pattern is
//
//	defer env.Push(ctx).Pop()
//
// which guarantees restoration on every exit path, including panics.
// Pushes nest like a stack: pushing A and then B is equivalent to
// pushing A.Merge(B) once.
func (e *Env) Push(ctx Context) *Scope {
	e.init()
	s := &Scope{env: e, prev: e.ctx}
	e.ctx = e.ctx.Merge(ctx)
	return s
}

// Pop restores the context that was current before the corresponding
// Push. Pop is idempotent: calling it a second time has no effect.
// Scopes must be popped in the reverse order of their pushes.
func (s *Scope) Pop() {
	if s.done {
		return
	}
	s.done = true
	s.env.ctx = s.prev
}

// With runs f with ctx merged onto the current context, then restores
// the previous context. The restoration also happens when f panics.
func (e *Env) With(ctx Context, f func()) {
	defer e.Push(ctx).Pop()
	f()
}

// Flags returns the set of sticky flags raised since the Env was created
// or the flags were last cleared.
func (e *Env) Flags() Flags {
	return e.flags
}

// SetFlags replaces the flag set wholesale. Together with Flags it can
// bracket a computation to find out exactly which flags that computation
// raises:
//
//	saved := env.Flags()
//	env.SetFlags(0)
//	...
//	raised := env.Flags()
//	env.SetFlags(saved | raised)
func (e *Env) SetFlags(f Flags) {
	e.flags = f
}

// SetFlag raises the given flag or flags.
func (e *Env) SetFlag(f Flags) {
	e.flags |= f
}

// ClearFlag lowers the given flag or flags. No operation ever lowers a
// flag on its own; flags accumulate until cleared explicitly.
func (e *Env) ClearFlag(f Flags) {
	e.flags &^= f
}

// ClearFlags lowers all flags.
func (e *Env) ClearFlags() {
	e.flags = 0
}

// TestFlag reports whether any of the flags in f is raised.
func (e *Env) TestFlag(f Flags) bool {
	return e.flags&f != 0
}
