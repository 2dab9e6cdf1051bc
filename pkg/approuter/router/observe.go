package router

import "github.com/BrandonKowalski/approuter/pkg/approuter/internal"

type observer[T any] struct {
	id uint64
	fn func(T)
}

// observers is a synchronous subscriber list. Notification iterates over a
// copy so callbacks may subscribe, cancel or re-enter the router.
type observers[T any] struct {
	entries []observer[T]
}

func (o *observers[T]) add(fn func(T)) (cancel func()) {
	id := internal.NextID()
	o.entries = append(o.entries, observer[T]{id: id, fn: fn})
	return func() { o.remove(id) }
}

func (o *observers[T]) remove(id uint64) {
	for i, entry := range o.entries {
		if entry.id == id {
			o.entries = append(o.entries[:i:i], o.entries[i+1:]...)
			return
		}
	}
}

func (o *observers[T]) notify(value T) {
	if len(o.entries) == 0 {
		return
	}
	snapshot := append([]observer[T](nil), o.entries...)
	for _, entry := range snapshot {
		entry.fn(value)
	}
}
