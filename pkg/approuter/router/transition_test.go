package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transitionRecord struct {
	Old, New int
}

type recorder struct {
	transitions []transitionRecord
}

func (rec *recorder) record(oldState, newState int) {
	rec.transitions = append(rec.transitions, transitionRecord{oldState, newState})
}

func newIntRouter(state int) (*StackRouter[int, string], *recorder) {
	rec := &recorder{}
	return New(state, Config[int, string]{OnTransition: rec.record}), rec
}

func pushedChild(t *testing.T, r *StackRouter[int, string]) *StackRouter[int, string] {
	t.Helper()
	child, ok := r.PushedChild()
	require.True(t, ok, "router has no pushed state")
	return child
}

func TestStackRouter_RouteBase(t *testing.T) {
	parent, rec := newIntRouter(0)
	assert.Equal(t, NewStackRoute(0), parent.Route())

	parent.Pop()
	assert.Equal(t, NewStackRoute(0), parent.Route(), "no change")
	assert.Empty(t, rec.transitions)
}

func TestStackRouter_PushRouteState(t *testing.T) {
	parent, rec := newIntRouter(0)
	parent.SetState(1)
	assert.Equal(t, NewPushedStackRoute(0, 1, Link()), parent.Route())

	parent.Pop()
	assert.Equal(t, NewStackRoute(0), parent.Route(), "parent drops push")
	assert.Equal(t, []transitionRecord{{0, 1}, {1, 0}}, rec.transitions)
}

func TestStackRouter_PushRouteStateToChild(t *testing.T) {
	parent, rec := newIntRouter(0)
	parent.SetState(1)

	child := pushedChild(t, parent)
	assert.Equal(t, NewPushedStackRoute(0, 1, Link()), parent.Route())
	assert.Equal(t, NewStackRoute(1), child.Route())
	assert.Same(t, parent, child.Parent())

	child.Pop()
	assert.Equal(t, NewStackRoute(0), parent.Route(), "parent drops push")
	assert.Equal(t, NewStackRoute(1), child.Route())
	assert.Equal(t, []transitionRecord{{0, 1}, {1, 0}}, rec.transitions)
}

// buildChain returns routers at depth 0..3 with states 0 -> 1 -> 2 -> 3 and an
// orphaned push of 4 on the deepest router.
func buildChain(t *testing.T) ([]*StackRouter[int, string], *recorder) {
	t.Helper()
	parent, rec := newIntRouter(0)
	parent.SetState(1)
	child1 := pushedChild(t, parent)
	child1.SetState(2)
	child2 := pushedChild(t, child1)
	child2.SetState(3)
	child3 := pushedChild(t, child2)
	child3.SetState(4)

	require.Equal(t, NewPushedStackRoute(0, 1, Link()), parent.Route())
	require.Equal(t, NewPushedStackRoute(1, 2, Link()), child1.Route())
	require.Equal(t, NewPushedStackRoute(2, 3, Link()), child2.Route())
	require.Equal(t, NewPushedStackRoute(3, 4, Link()), child3.Route())

	rec.transitions = nil
	return []*StackRouter[int, string]{parent, child1, child2, child3}, rec
}

func TestStackRouter_PopFromChain(t *testing.T) {
	routers, rec := buildChain(t)

	routers[3].Pop()
	assert.Equal(t, NewPushedStackRoute(0, 1, Link()), routers[0].Route())
	assert.Equal(t, NewPushedStackRoute(1, 2, Link()), routers[1].Route())
	assert.Equal(t, NewStackRoute(2), routers[2].Route(), "parent push is dropped")
	assert.Equal(t, NewStackRoute(3), routers[3].Route(), "orphaned push is dropped")
	assert.Equal(t, []transitionRecord{{3, 2}}, rec.transitions, "reported at the parent")

	routers[3].Pop()
	assert.Len(t, rec.transitions, 1, "second pop has nothing to clear")
}

func TestStackRouter_PopOrphanOnly(t *testing.T) {
	parent, rec := newIntRouter(0)
	child := parent.Child(1)
	child.SetState(2)
	rec.transitions = nil

	child.Pop()
	assert.Equal(t, NewStackRoute(0), parent.Route())
	assert.Equal(t, NewStackRoute(1), child.Route(), "orphaned push is dropped")
	assert.Equal(t, []transitionRecord{{2, 1}}, rec.transitions, "reported at the child")

	child.Pop()
	assert.Len(t, rec.transitions, 1, "nothing left to clear")
}

func TestStackRouter_PopToRoot(t *testing.T) {
	routers, rec := buildChain(t)

	routers[3].PopToRoot()
	assert.Equal(t, NewStackRoute(0), routers[0].Route(), "root drops push")
	assert.Equal(t, NewPushedStackRoute(1, 2, Link()), routers[1].Route(), "intermediate routers are unaffected")
	assert.Equal(t, NewPushedStackRoute(2, 3, Link()), routers[2].Route(), "intermediate routers are unaffected")
	assert.Equal(t, NewStackRoute(3), routers[3].Route(), "orphaned push is dropped")
	assert.Equal(t, []transitionRecord{{4, 0}}, rec.transitions)

	routers[3].PopToRoot()
	assert.Len(t, rec.transitions, 1, "idempotent")
}

func TestStackRouter_PopToRootFromRoot(t *testing.T) {
	r, rec := newIntRouter(0)
	r.PopToRoot()
	assert.Empty(t, rec.transitions)

	r.SetState(5)
	r.PopToRoot()
	assert.Equal(t, NewStackRoute(0), r.Route())
	assert.Equal(t, []transitionRecord{{0, 5}, {5, 0}}, rec.transitions)
}

func TestStackRouter_Dismiss(t *testing.T) {
	parent, rec := newIntRouter(0)
	parent.SetState(1)
	child := pushedChild(t, parent)
	child.SetState(2)

	child.Dismiss()
	assert.Equal(t, NewStackRoute(1), child.Route())
	assert.Equal(t, NewPushedStackRoute(0, 1, Link()), parent.Route(), "parent keeps its push")
	assert.Equal(t, transitionRecord{2, 1}, rec.transitions[len(rec.transitions)-1])

	n := len(rec.transitions)
	child.Dismiss()
	assert.Len(t, rec.transitions, n)
}

func TestStackRouter_RouteLink(t *testing.T) {
	r, _ := newIntRouter(0)
	r.Transition(1, Link())
	assert.Equal(t, NewPushedStackRoute(0, 1, Link()), r.Route())
	assert.True(t, r.IsLinkActive())
	assert.False(t, r.IsSheetPresented())
}

func TestStackRouter_RouteSameStateIsNoop(t *testing.T) {
	for _, p := range []Presentation{Link(), AutoPopLink(), Sheet(), NavigableSheet()} {
		t.Run(p.String(), func(t *testing.T) {
			r, rec := newIntRouter(0)
			writes := 0
			r.Subscribe(func(StackRoute[int]) { writes++ })

			r.Transition(0, p)
			assert.Equal(t, NewStackRoute(0), r.Route())
			assert.Empty(t, rec.transitions)
			assert.Zero(t, writes)

			r.Transition(1, p)
			r.Transition(1, p)
			assert.Equal(t, []transitionRecord{{0, 1}}, rec.transitions)
			assert.Equal(t, 1, writes)
		})
	}
}

func TestStackRouter_RouteLinkAutoPop(t *testing.T) {
	parent, rec := newIntRouter(0)

	parent.Transition(1, Link())
	child1 := pushedChild(t, parent)
	assert.Equal(t, NewPushedStackRoute(0, 1, Link()), parent.Route())
	assert.Equal(t, NewStackRoute(1), child1.Route())

	child1.Transition(2, AutoPopLink())
	child2 := pushedChild(t, child1)
	assert.Equal(t, NewPushedStackRoute(0, 1, Link()), parent.Route())
	assert.Equal(t, NewPushedStackRoute(1, 2, AutoPopLink()), child1.Route())
	assert.Equal(t, NewStackRoute(2), child2.Route())

	rec.transitions = nil
	child2.Transition(1, AutoPopLink())
	assert.Equal(t, NewPushedStackRoute(0, 1, Link()), parent.Route())
	assert.Equal(t, NewStackRoute(1), child1.Route(), "pop instead of pushing the previous state")
	assert.Equal(t, NewStackRoute(2), child2.Route())
	assert.Equal(t, []transitionRecord{{2, 1}}, rec.transitions, "notified once")
}

func TestStackRouter_RouteLinkAutoPopWithoutParent(t *testing.T) {
	r, _ := newIntRouter(0)
	r.Transition(1, AutoPopLink())
	assert.Equal(t, NewPushedStackRoute(0, 1, AutoPopLink()), r.Route())
}

func TestStackRouter_RouteSheet(t *testing.T) {
	r, _ := newIntRouter(0)
	r.Transition(1, Sheet())
	assert.Equal(t, NewPushedStackRoute(0, 1, Sheet()), r.Route())
	assert.True(t, r.IsSheetPresented())
	assert.False(t, r.IsLinkActive())
}

func TestStackRouter_RouteReplace(t *testing.T) {
	parent, rec := newIntRouter(0)
	parent.Transition(1, Link())
	child := pushedChild(t, parent)

	child.Transition(2, Replace())
	assert.Equal(t, NewPushedStackRoute(0, 1, Link()), parent.Route(), "parent untouched")
	assert.Equal(t, NewStackRoute(2), child.Route())
	assert.Equal(t, transitionRecord{1, 2}, rec.transitions[len(rec.transitions)-1])
}

func TestStackRouter_RouteReplaceDropsPush(t *testing.T) {
	r, _ := newIntRouter(0)
	r.Transition(1, Sheet())
	r.Transition(1, Replace())
	assert.Equal(t, NewStackRoute(1), r.Route())
}

func TestStackRouter_RouteRoot(t *testing.T) {
	parent, rec := newIntRouter(0)
	parent.Transition(1, Link())
	child1 := pushedChild(t, parent)
	child1.Transition(2, Link())
	child2 := pushedChild(t, child1)

	rec.transitions = nil
	child2.Transition(7, Root())
	assert.Equal(t, NewStackRoute(7), parent.Route())
	assert.Equal(t, NewPushedStackRoute(1, 2, Link()), child1.Route(), "intermediate router untouched")
	assert.Equal(t, NewStackRoute(2), child2.Route())
	assert.Empty(t, rec.transitions, "the calling router's state did not change")
	assert.Same(t, parent, child2.Root())
}

func TestStackRouter_Stack(t *testing.T) {
	routers, _ := buildChain(t)
	stack := routers[3].Stack()
	require.Len(t, stack, 4)
	for i, r := range stack {
		assert.Same(t, routers[3-i], r)
	}
	assert.Len(t, routers[0].Stack(), 1)
	assert.Nil(t, routers[0].Parent())
}

func TestStackRouter_TransitionFiresOncePerChange(t *testing.T) {
	r, rec := newIntRouter(0)
	r.Transition(1, Sheet())
	r.Transition(2, Sheet())
	r.SetState(2)
	assert.Equal(t, []transitionRecord{{0, 1}, {1, 2}}, rec.transitions)
}

func TestStackRouter_Modify(t *testing.T) {
	r, rec := newIntRouter(0)

	err := r.Modify(Sheet(), func(state *int) error {
		*state += 2
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, NewPushedStackRoute(0, 2, Sheet()), r.Route())
	assert.Equal(t, []transitionRecord{{0, 2}}, rec.transitions)
}

func TestModifyResult(t *testing.T) {
	r, _ := newIntRouter(0)

	out, err := ModifyResult(r, Sheet(), func(state *int) (string, error) {
		*state += 2
		return "OK", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "OK", out)
	assert.Equal(t, NewPushedStackRoute(0, 2, Sheet()), r.Route())
}

func TestStackRouter_ModifyError(t *testing.T) {
	errBoom := errors.New("boom")
	r, rec := newIntRouter(0)
	writes := 0
	r.Subscribe(func(StackRoute[int]) { writes++ })

	err := r.Modify(Sheet(), func(state *int) error {
		*state += 2
		return errBoom
	})
	assert.Equal(t, errBoom, err, "error is returned unchanged")
	assert.Equal(t, NewStackRoute(0), r.Route())
	assert.Empty(t, rec.transitions)
	assert.Zero(t, writes)

	out, err := ModifyResult(r, Link(), func(state *int) (string, error) {
		*state = 9
		return "partial", errBoom
	})
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, out)
	assert.Equal(t, NewStackRoute(0), r.Route())
}

type screen struct {
	Count int
	Modal bool
}

func (s screen) Presentation() Presentation {
	if s.Modal {
		return Sheet()
	}
	return Link()
}

func TestStackRouter_StatePresentation(t *testing.T) {
	r := New(screen{}, Config[screen, string]{StatePresentation: PresentationOf[screen]()})

	r.SetState(screen{Count: 1, Modal: true})
	pushed, ok := r.Pushed()
	require.True(t, ok)
	assert.Equal(t, Sheet(), pushed.Presentation)

	child := r.Child(pushed.State)
	child.SetState(screen{Count: 2})
	pushed, ok = child.Pushed()
	require.True(t, ok)
	assert.Equal(t, Link(), pushed.Presentation)
}

func TestStackRouter_DefaultPresentation(t *testing.T) {
	r := New(0, Config[int, string]{DefaultPresentation: Sheet()})

	r.SetState(3)
	assert.Equal(t, NewPushedStackRoute(0, 3, Sheet()), r.Route())

	child, ok := r.PushedChild()
	require.True(t, ok)
	child.SetState(4)
	assert.Equal(t, NewPushedStackRoute(3, 4, Sheet()), child.Route(), "children inherit the config")
}

func TestStackRouter_StatePresentationFallsBack(t *testing.T) {
	r := New(0, Config[int, string]{
		DefaultPresentation: NavigableSheet(),
		StatePresentation: func(s int) (Presentation, bool) {
			if s < 0 {
				return Replace(), true
			}
			return Presentation{}, false
		},
	})

	r.SetState(1)
	assert.Equal(t, NewPushedStackRoute(0, 1, NavigableSheet()), r.Route())

	r.SetState(-1)
	assert.Equal(t, NewStackRoute(-1), r.Route())
}

func TestStackRouter_Content(t *testing.T) {
	r := New(1, Config[int, string]{
		Content: func(r *StackRouter[int, string], s int) string {
			return map[int]string{1: "one", 2: "two"}[s]
		},
	})
	r.SetState(2)

	assert.Equal(t, "one", r.BaseContent())
	child, _ := r.PushedChild()
	assert.Equal(t, "two", child.BaseContent())

	bare := New(1, Config[int, string]{})
	assert.Equal(t, "", bare.BaseContent())
}

func TestStackRouter_OnTransitionChaining(t *testing.T) {
	var got []transitionRecord
	r := New(0, Config[int, string]{}).OnTransition(func(o, n int) {
		got = append(got, transitionRecord{o, n})
	})
	r.SetState(1)
	assert.Equal(t, []transitionRecord{{0, 1}}, got)
}

func TestStackRouter_IDs(t *testing.T) {
	a := New(0, Config[int, string]{})
	b := a.Child(1)
	assert.NotZero(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}
