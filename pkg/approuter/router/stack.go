package router

import "fmt"

// PushedState is a state layered on top of a route's base, together with the
// presentation that pushed it.
type PushedState[S comparable] struct {
	State        S
	Presentation Presentation
}

// StackRoute is one level of stack navigation: a base state and at most one
// pushed state. The current state is the pushed state if present, otherwise
// the base.
//
// StackRoute is a value type. Routers copy it, mutate the copy and write it
// back, so a route obtained from a router is a snapshot.
type StackRoute[S comparable] struct {
	base      S
	pushed    PushedState[S]
	hasPushed bool
}

// NewStackRoute creates a route at base with nothing pushed.
func NewStackRoute[S comparable](base S) StackRoute[S] {
	return StackRoute[S]{base: base}
}

// NewPushedStackRoute creates a route at base with pushed layered on top.
func NewPushedStackRoute[S comparable](base, pushed S, presentation Presentation) StackRoute[S] {
	return StackRoute[S]{
		base:      base,
		pushed:    PushedState[S]{State: pushed, Presentation: presentation},
		hasPushed: true,
	}
}

func (r StackRoute[S]) Base() S {
	return r.base
}

// Pushed returns the pushed state, if any.
func (r StackRoute[S]) Pushed() (PushedState[S], bool) {
	return r.pushed, r.hasPushed
}

func (r StackRoute[S]) IsPushed() bool {
	return r.hasPushed
}

func (r StackRoute[S]) Current() S {
	if r.hasPushed {
		return r.pushed.State
	}
	return r.base
}

// Push layers state on top of the base, overwriting any previous push.
func (r *StackRoute[S]) Push(state S, presentation Presentation) {
	r.pushed = PushedState[S]{State: state, Presentation: presentation}
	r.hasPushed = true
}

// Pop drops the pushed state. Popping a route with nothing pushed is a no-op.
func (r *StackRoute[S]) Pop() {
	r.pushed = PushedState[S]{}
	r.hasPushed = false
}

// Equal reports whether both routes have the same base and the same pushed
// state and presentation.
func (r StackRoute[S]) Equal(other StackRoute[S]) bool {
	return r == other
}

func (r StackRoute[S]) String() string {
	if !r.hasPushed {
		return fmt.Sprintf("StackRoute(base: %v)", r.base)
	}
	return fmt.Sprintf("StackRoute(base: %v, pushed: %v via %s)", r.base, r.pushed.State, r.pushed.Presentation)
}
