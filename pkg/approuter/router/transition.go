package router

// State returns the router's current state.
func (r *StackRouter[S, C]) State() S {
	return r.route.Current()
}

// SetState transitions to state with the presentation chosen by the state
// (Config.StatePresentation) or, failing that, Config.DefaultPresentation.
func (r *StackRouter[S, C]) SetState(state S) {
	r.Transition(state, r.presentationFor(state))
}

func (r *StackRouter[S, C]) presentationFor(state S) Presentation {
	if r.config.StatePresentation != nil {
		if p, ok := r.config.StatePresentation(state); ok {
			return p
		}
	}
	return r.config.DefaultPresentation
}

// Transition moves the router to state via presentation and calls the
// transition handler once if the router's current state changed.
//
// A link or sheet to the current state is a no-op. An auto-pop link that
// collapses into Pop reports through Pop's notification only.
func (r *StackRouter[S, C]) Transition(state S, presentation Presentation) {
	oldState := r.State()
	if r.apply(presentation, state) {
		return
	}
	r.notify(oldState, r.State(), presentation.String())
}

// Modify copies the current state, lets modify change the copy and then
// transitions to it via presentation. If modify returns an error the router is
// left untouched, no handler fires and the error is returned as is.
func (r *StackRouter[S, C]) Modify(presentation Presentation, modify func(state *S) error) error {
	_, err := ModifyResult(r, presentation, func(state *S) (struct{}, error) {
		return struct{}{}, modify(state)
	})
	return err
}

// ModifyResult is Modify for mutations that also produce a value.
func ModifyResult[S comparable, C any, Out any](r *StackRouter[S, C], presentation Presentation, modify func(state *S) (Out, error)) (Out, error) {
	next := r.State()
	out, err := modify(&next)
	if err != nil {
		var zero Out
		return zero, err
	}
	r.Transition(next, presentation)
	return out, nil
}

// apply performs the route writes for presentation. It reports true when the
// write was delegated to Pop, which has already notified.
func (r *StackRouter[S, C]) apply(presentation Presentation, state S) (popped bool) {
	switch presentation.Kind() {
	case KindLink, KindSheet:
		if state == r.State() {
			r.logger.Debug("transition skipped, already at state", "state", state, "presentation", presentation.String())
			return false
		}
		if presentation.LinkOptions().AutoPopToPreviousState && r.parent != nil && r.parent.route.Base() == state {
			r.logger.Debug("auto-pop to previous state", "state", state)
			r.Pop()
			return true
		}
		route := r.route
		route.Push(state, presentation)
		r.setRoute(route)

	case KindReplace:
		r.setRoute(NewStackRoute(state))

	case KindRoot:
		r.Root().setRoute(NewStackRoute(state))
	}
	return false
}

// Pop goes back one level. The router's own content is the result of its
// parent's push, so the parent's pushed state is cleared; a root router clears
// its own. Any state pushed on r itself is dropped as well, since it would be
// orphaned.
//
// The change is reported at the parent. If the parent had nothing pushed, the
// dropped orphan is reported at r instead.
func (r *StackRouter[S, C]) Pop() {
	target := r
	if r.parent != nil {
		target = r.parent
	}

	before := target.State()
	ownBefore := r.State()
	r.clearPushed()
	if target == r {
		r.notify(before, r.State(), "pop")
		return
	}

	if target.clearPushed() {
		target.notify(before, target.State(), "pop")
		return
	}
	r.notify(ownBefore, r.State(), "pop")
}

// PopToRoot clears the pushed state on r and on the root router.
//
// Intermediate ancestors keep their pushed state. A presentation layer may
// therefore keep showing intermediate sheets until they are dismissed.
func (r *StackRouter[S, C]) PopToRoot() {
	root := r.Root()

	before := r.State()
	cleared := r.clearPushed()
	if root != r && root.clearPushed() {
		cleared = true
	}
	if !cleared {
		return
	}
	r.notify(before, root.State(), "popToRoot")
}

// Dismiss clears only r's own pushed state. A rendering layer calls it on the
// presenting router when a link or sheet is closed from the outside, where
// calling Pop would reach one level too far.
func (r *StackRouter[S, C]) Dismiss() {
	before := r.State()
	r.clearPushed()
	r.notify(before, r.State(), "dismiss")
}

func (r *StackRouter[S, C]) clearPushed() bool {
	if !r.route.IsPushed() {
		return false
	}
	route := r.route
	route.Pop()
	return r.setRoute(route)
}

func (r *StackRouter[S, C]) notify(oldState, newState S, via string) {
	if oldState == newState {
		return
	}
	r.logger.Debug("transition", "from", oldState, "to", newState, "via", via)
	if r.config.OnTransition != nil {
		r.config.OnTransition(oldState, newState)
	}
}
