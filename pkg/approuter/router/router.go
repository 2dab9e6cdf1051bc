package router

import (
	"log/slog"

	"github.com/BrandonKowalski/approuter/pkg/approuter/internal"
)

// TransitionFunc receives (oldState, newState) whenever a router's state changes.
//
// This is where side effects of navigation belong, because it fires on both
// forward (push) and backward (pop) transitions.
type TransitionFunc[S comparable] func(oldState, newState S)

// ContentFunc turns a state into whatever the rendering layer displays.
type ContentFunc[S comparable, C any] func(r *StackRouter[S, C], state S) C

// Presentable is implemented by state types that choose their own presentation
// when assigned with SetState. Use PresentationOf to wire it into a Config.
type Presentable interface {
	Presentation() Presentation
}

// PresentationOf returns a Config.StatePresentation that asks each state for
// its presentation.
func PresentationOf[S interface {
	comparable
	Presentable
}]() func(S) (Presentation, bool) {
	return func(state S) (Presentation, bool) {
		return state.Presentation(), true
	}
}

// Config holds the behavior a router implementer supplies. Children created
// with Child inherit their parent's config. The zero value is usable.
type Config[S comparable, C any] struct {
	// Content maps a state to rendered content. Optional.
	Content ContentFunc[S, C]

	// OnTransition is called synchronously after each state change. Optional.
	OnTransition TransitionFunc[S]

	// DefaultPresentation is used by SetState when StatePresentation does
	// not choose one. The zero value is a plain link.
	DefaultPresentation Presentation

	// StatePresentation lets a state pick its own presentation. It reports
	// false to fall back to DefaultPresentation.
	StatePresentation func(S) (Presentation, bool)

	// Logger defaults to the shared approuter logger.
	Logger *slog.Logger
}

// StackRouter is a node in a tree of routers. It owns one StackRoute and a
// non-owning reference to its parent. Parents never hold their children; a
// rendering layer creates children from pushed state as needed.
//
// StackRouter is not safe for concurrent use. All calls are expected on the
// goroutine that drives the UI.
type StackRouter[S comparable, C any] struct {
	id        uint64
	route     StackRoute[S]
	parent    *StackRouter[S, C]
	config    Config[S, C]
	logger    *slog.Logger
	observers observers[StackRoute[S]]
}

// New creates a root router at state.
func New[S comparable, C any](state S, config Config[S, C]) *StackRouter[S, C] {
	return newStackRouter(state, nil, config)
}

func newStackRouter[S comparable, C any](state S, parent *StackRouter[S, C], config Config[S, C]) *StackRouter[S, C] {
	logger := config.Logger
	if logger == nil {
		logger = internal.GetLogger()
	}
	r := &StackRouter[S, C]{
		id:     internal.NextID(),
		route:  NewStackRoute(state),
		parent: parent,
		config: config,
	}
	r.logger = logger.With("router_id", r.id)
	return r
}

// Child creates a router at state whose parent is r. It inherits r's config.
func (r *StackRouter[S, C]) Child(state S) *StackRouter[S, C] {
	return r.ChildWithConfig(state, r.config)
}

// ChildWithConfig creates a child router with its own config.
func (r *StackRouter[S, C]) ChildWithConfig(state S, config Config[S, C]) *StackRouter[S, C] {
	return newStackRouter(state, r, config)
}

// PushedChild creates a fresh child router at the pushed state, if any.
func (r *StackRouter[S, C]) PushedChild() (*StackRouter[S, C], bool) {
	pushed, ok := r.route.Pushed()
	if !ok {
		return nil, false
	}
	return r.Child(pushed.State), true
}

// OnTransition replaces the transition handler. Returns r for chaining.
func (r *StackRouter[S, C]) OnTransition(fn TransitionFunc[S]) *StackRouter[S, C] {
	r.config.OnTransition = fn
	return r
}

// ID returns a process-unique identifier for the router.
func (r *StackRouter[S, C]) ID() uint64 {
	return r.id
}

// Parent returns the parent router, or nil for a root router.
func (r *StackRouter[S, C]) Parent() *StackRouter[S, C] {
	return r.parent
}

// Root walks the parent chain to the router that has no parent.
func (r *StackRouter[S, C]) Root() *StackRouter[S, C] {
	root := r
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// Stack returns r followed by its ancestors, root last.
func (r *StackRouter[S, C]) Stack() []*StackRouter[S, C] {
	stack := []*StackRouter[S, C]{r}
	for p := r.parent; p != nil; p = p.parent {
		stack = append(stack, p)
	}
	return stack
}

// Route returns a snapshot of the router's route.
func (r *StackRouter[S, C]) Route() StackRoute[S] {
	return r.route
}

func (r *StackRouter[S, C]) setRoute(route StackRoute[S]) bool {
	if route == r.route {
		return false
	}
	r.route = route
	r.observers.notify(route)
	return true
}

// Subscribe registers fn to be called with the new route after every route
// change. Calling cancel stops later notifications.
func (r *StackRouter[S, C]) Subscribe(fn func(StackRoute[S])) (cancel func()) {
	return r.observers.add(fn)
}

// Pushed returns the state pushed on top of this router, if any.
func (r *StackRouter[S, C]) Pushed() (PushedState[S], bool) {
	return r.route.Pushed()
}

// IsLinkActive reports whether the pushed state was presented as a link.
func (r *StackRouter[S, C]) IsLinkActive() bool {
	pushed, ok := r.route.Pushed()
	return ok && pushed.Presentation.IsLink()
}

// IsSheetPresented reports whether the pushed state was presented as a sheet.
func (r *StackRouter[S, C]) IsSheetPresented() bool {
	pushed, ok := r.route.Pushed()
	return ok && pushed.Presentation.IsSheet()
}

// Content renders state through the configured ContentFunc.
func (r *StackRouter[S, C]) Content(state S) C {
	if r.config.Content == nil {
		var zero C
		return zero
	}
	return r.config.Content(r, state)
}

// BaseContent renders the route's base state. Pushed state is rendered by the
// child router returned from PushedChild.
func (r *StackRouter[S, C]) BaseContent() C {
	return r.Content(r.route.Base())
}
