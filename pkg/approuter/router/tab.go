package router

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BrandonKowalski/approuter/pkg/approuter/internal"
)

// TabBehavior is the policy applied to a tab's stack navigation when the tab
// is selected.
type TabBehavior uint8

const (
	// KeepState keeps the current state of the tab's stack navigation.
	KeepState TabBehavior = iota
	// PopToRoot pops the tab's stack navigation to root whenever the tab changes.
	PopToRoot
	// PopToRootIfRepeated pops to root only when the selected tab is selected again.
	PopToRootIfRepeated
)

func (b TabBehavior) String() string {
	switch b {
	case KeepState:
		return "keepState"
	case PopToRoot:
		return "popToRoot"
	case PopToRootIfRepeated:
		return "popToRootIfRepeated"
	default:
		return fmt.Sprintf("TabBehavior(%d)", uint8(b))
	}
}

func (b TabBehavior) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *TabBehavior) UnmarshalText(text []byte) error {
	parsed, err := ParseTabBehavior(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseTabBehavior parses the text form produced by TabBehavior.String,
// ignoring case and surrounding space.
func ParseTabBehavior(text string) (TabBehavior, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "keepstate":
		return KeepState, nil
	case "poptoroot":
		return PopToRoot, nil
	case "poptorootifrepeated":
		return PopToRootIfRepeated, nil
	default:
		return KeepState, fmt.Errorf("%w: %q", ErrUnknownTabBehavior, text)
	}
}

// TabTransitionType is what happened to the selected tab's stack during a
// tab transition.
type TabTransitionType uint8

const (
	// TabKeptState means the tab's stack was left as is.
	TabKeptState TabTransitionType = iota
	// TabPoppedToRoot means the tab's stack was popped to root.
	TabPoppedToRoot
)

func (t TabTransitionType) String() string {
	switch t {
	case TabKeptState:
		return "keepState"
	case TabPoppedToRoot:
		return "popToRoot"
	default:
		return fmt.Sprintf("TabTransitionType(%d)", uint8(t))
	}
}

// TabRoute is the selected tab and the behavior of the selection that chose it.
type TabRoute[T comparable] struct {
	Tab      T
	Behavior TabBehavior
}

// TabTransitionFunc receives (oldTab, newTab, kind) when the tab changes or the
// behavior pops the tab's stack.
type TabTransitionFunc[T comparable] func(oldTab, newTab T, kind TabTransitionType)

// TabConfig holds the behavior a tab router implementer supplies.
type TabConfig[T comparable, S comparable, C any] struct {
	// Tabs lists the tabs in display order. Optional.
	Tabs []T

	// NewStackRouter creates the stack router for a tab. It is called at most
	// once per tab. Required.
	NewStackRouter func(tab T) *StackRouter[S, C]

	// OnTransition is called synchronously after each tab transition. Optional.
	OnTransition TabTransitionFunc[T]

	// DefaultBehavior is used by SetTab. The zero value is KeepState.
	DefaultBehavior TabBehavior

	// Logger defaults to the shared approuter logger.
	Logger *slog.Logger
}

// TabRouter coordinates a set of independent stack routers, one per tab.
// Each tab's router is created on first use and kept for the lifetime of the
// TabRouter, so switching tabs never loses a tab's navigation.
type TabRouter[T comparable, S comparable, C any] struct {
	id        uint64
	route     TabRoute[T]
	routers   map[T]*StackRouter[S, C]
	config    TabConfig[T, S, C]
	logger    *slog.Logger
	observers observers[TabRoute[T]]
}

// NewTabRouter creates a tab router with initial selected.
func NewTabRouter[T comparable, S comparable, C any](initial T, config TabConfig[T, S, C]) (*TabRouter[T, S, C], error) {
	if config.NewStackRouter == nil {
		return nil, ErrNoStackRouterFactory
	}
	logger := config.Logger
	if logger == nil {
		logger = internal.GetLogger()
	}
	tr := &TabRouter[T, S, C]{
		id:      internal.NextID(),
		route:   TabRoute[T]{Tab: initial, Behavior: KeepState},
		routers: make(map[T]*StackRouter[S, C]),
		config:  config,
	}
	tr.logger = logger.With("tab_router_id", tr.id)
	return tr, nil
}

// OnTransition replaces the transition handler. Returns tr for chaining.
func (tr *TabRouter[T, S, C]) OnTransition(fn TabTransitionFunc[T]) *TabRouter[T, S, C] {
	tr.config.OnTransition = fn
	return tr
}

func (tr *TabRouter[T, S, C]) ID() uint64 {
	return tr.id
}

func (tr *TabRouter[T, S, C]) Route() TabRoute[T] {
	return tr.route
}

// Tab returns the selected tab.
func (tr *TabRouter[T, S, C]) Tab() T {
	return tr.route.Tab
}

// SetTab selects tab with the configured default behavior.
func (tr *TabRouter[T, S, C]) SetTab(tab T) {
	tr.Transition(tab, tr.config.DefaultBehavior)
}

// Tabs returns the configured tabs in display order.
func (tr *TabRouter[T, S, C]) Tabs() []T {
	return append([]T(nil), tr.config.Tabs...)
}

// StackRouter returns the tab's stack router, creating it on first use.
func (tr *TabRouter[T, S, C]) StackRouter(tab T) *StackRouter[S, C] {
	if r, ok := tr.routers[tab]; ok {
		return r
	}
	r := tr.config.NewStackRouter(tab)
	tr.routers[tab] = r
	return r
}

// CreatedStackRouter returns the tab's stack router only if it already exists.
func (tr *TabRouter[T, S, C]) CreatedStackRouter(tab T) (*StackRouter[S, C], bool) {
	r, ok := tr.routers[tab]
	return r, ok
}

// Subscribe registers fn to be called with the new route after every route
// change. Calling cancel stops later notifications.
func (tr *TabRouter[T, S, C]) Subscribe(fn func(TabRoute[T])) (cancel func()) {
	return tr.observers.add(fn)
}

// Transition selects tab and applies behavior to the tab's stack router.
//
//   - KeepState reports (old, new, keepState) if the tab changed.
//   - PopToRoot always pops the new tab's stack to root and reports (old, new,
//     popToRoot) if the tab changed.
//   - PopToRootIfRepeated pops to root and reports (tab, tab, popToRoot) when
//     the selected tab is selected again, otherwise acts like KeepState.
func (tr *TabRouter[T, S, C]) Transition(tab T, behavior TabBehavior) {
	current := tr.route.Tab
	tr.setRoute(TabRoute[T]{Tab: tab, Behavior: behavior})

	switch behavior {
	case KeepState:
		if current != tab {
			tr.notify(current, tab, TabKeptState)
		}

	case PopToRoot:
		tr.StackRouter(tab).PopToRoot()
		if current != tab {
			tr.notify(current, tab, TabPoppedToRoot)
		}

	case PopToRootIfRepeated:
		if current == tab {
			tr.StackRouter(tab).PopToRoot()
			tr.notify(current, tab, TabPoppedToRoot)
		} else {
			tr.notify(current, tab, TabKeptState)
		}
	}
}

func (tr *TabRouter[T, S, C]) setRoute(route TabRoute[T]) {
	if route == tr.route {
		return
	}
	tr.route = route
	tr.observers.notify(route)
}

func (tr *TabRouter[T, S, C]) notify(oldTab, newTab T, kind TabTransitionType) {
	tr.logger.Debug("tab transition", "from", oldTab, "to", newTab, "kind", kind.String())
	if tr.config.OnTransition != nil {
		tr.config.OnTransition(oldTab, newTab, kind)
	}
}
