package motion

import "github.com/ericfisherdev/liquorlocker/internal/domain/model"

// Emitter delivers values of type T to subscribers. It remembers the last
// emitted value and replays it to new subscribers, so a renderer mounted
// after the viewport was measured is sized immediately.
//
// Emitter is not safe for concurrent use; each host owns its emitters.
type Emitter[T any] struct {
	subs    map[int]func(T)
	order   []int
	nextID  int
	last    T
	emitted bool
}

// NewEmitter creates an Emitter with no subscribers.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{subs: make(map[int]func(T))}
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is a no-op.
func (e *Emitter[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := e.nextID
	e.nextID++
	e.subs[id] = fn
	e.order = append(e.order, id)

	if e.emitted {
		fn(e.last)
	}

	return func() {
		if _, ok := e.subs[id]; !ok {
			return
		}
		delete(e.subs, id)
		for i, v := range e.order {
			if v == id {
				e.order = append(e.order[:i], e.order[i+1:]...)
				break
			}
		}
	}
}

// Emit records v and delivers it to every current subscriber in
// subscription order.
func (e *Emitter[T]) Emit(v T) {
	e.last = v
	e.emitted = true

	ids := append([]int(nil), e.order...)
	for _, id := range ids {
		if fn, ok := e.subs[id]; ok {
			fn(v)
		}
	}
}

// Len returns the number of active subscriptions.
func (e *Emitter[T]) Len() int {
	return len(e.subs)
}

// Host is the environment a renderer is mounted into: the viewport, the
// hosting element's box, its visibility, pointer and scroll input, and the
// frame clock.
type Host struct {
	Viewport   *Emitter[Size]
	Bounds     *Emitter[Size]
	Visibility *Emitter[bool]
	Pointer    *Emitter[model.Point]
	// Scroll carries the hosting section's top edge relative to the viewport.
	Scroll *Emitter[float64]
	Clock  Clock
}

// NewHost creates a Host with fresh emitters driven by clock.
func NewHost(clock Clock) *Host {
	return &Host{
		Viewport:   NewEmitter[Size](),
		Bounds:     NewEmitter[Size](),
		Visibility: NewEmitter[bool](),
		Pointer:    NewEmitter[model.Point](),
		Scroll:     NewEmitter[float64](),
		Clock:      clock,
	}
}

// Subscriptions reports the number of live subscriptions across all of the
// host's emitters.
func (h *Host) Subscriptions() int {
	return h.Viewport.Len() + h.Bounds.Len() + h.Visibility.Len() + h.Pointer.Len() + h.Scroll.Len()
}
