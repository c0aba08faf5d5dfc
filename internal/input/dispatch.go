package input

import "sort"

// Rect is a screen-space rectangle in pixels
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the pixel lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Handler receives pointer events
type Handler func(ev PointerEvent)

// Source delivers pointer events to subscribers. Subscribe returns the
// function that removes the handler again.
type Source interface {
	Subscribe(h Handler) (unsubscribe func())
}

// Dispatcher is a Source front-ends push their window events into
type Dispatcher struct {
	handlers map[int]Handler
	nextID   int
}

// NewDispatcher creates a dispatcher without subscribers
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[int]Handler)}
}

// Subscribe registers h until the returned function is called
func (d *Dispatcher) Subscribe(h Handler) func() {
	id := d.nextID
	d.nextID++
	d.handlers[id] = h
	return func() {
		delete(d.handlers, id)
	}
}

// Emit delivers ev to every handler in subscription order
func (d *Dispatcher) Emit(ev PointerEvent) {
	ids := make([]int, 0, len(d.handlers))
	for id := range d.handlers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if h, ok := d.handlers[id]; ok {
			h(ev)
		}
	}
}

// Len returns the number of subscribers
func (d *Dispatcher) Len() int {
	return len(d.handlers)
}
