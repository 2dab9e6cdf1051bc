// Package router provides declarative navigation state for tree-structured UIs.
//
// A StackRouter owns one level of navigation: a base state and at most one
// pushed state. The rendering layer shows the base state's content and, when
// something is pushed, creates a child router from the pushed state to show
// it. Navigation is expressed by changing state, never by manipulating views.
//
// # Basic Usage
//
//	type Screen int
//
//	const (
//	    ScreenHome Screen = iota
//	    ScreenDetail
//	    ScreenSettings
//	)
//
//	r := router.New(ScreenHome, router.Config[Screen, View]{
//	    Content: func(r *router.StackRouter[Screen, View], s Screen) View {
//	        return render(s)
//	    },
//	    OnTransition: func(from, to Screen) {
//	        analytics.Track(from, to)
//	    },
//	})
//
//	r.SetState(ScreenDetail)                 // push via the default presentation (link)
//	r.Transition(ScreenSettings, router.Sheet())
//
//	child, _ := r.PushedChild()              // router for the pushed content
//	child.Pop()                              // clears the parent's push
//
// # Presentations
//
// Link and Sheet push onto the router's own route. An auto-pop link that would
// move to the parent's base state pops instead. Replace swaps the router's own
// route and Root swaps the root router's route.
//
// # Pop and PopToRoot
//
// Pop clears the parent's pushed state, because a router's content is the
// result of its parent's push. PopToRoot clears the router's own pushed state
// and the root's; routers in between keep theirs.
//
// # Tabs
//
// A TabRouter keeps one StackRouter per tab and applies a TabBehavior when a
// tab is selected, for example popping a tab to its root when it is selected
// twice.
package router
