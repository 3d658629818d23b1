package notify

import (
	"context"
	"sync"
)

// Hub fans a value out to every subscriber. Publish never blocks, so a
// subscriber whose buffer is full misses the value. Deliver waits instead.
type Hub[T any] struct {
	mu     sync.RWMutex
	subs   map[uint64]chan T
	nextID uint64
	closed bool
}

func NewHub[T any]() *Hub[T] {
	return &Hub[T]{subs: make(map[uint64]chan T)}
}

// Subscribe returns a channel buffered to size and a cancel function that
// unsubscribes and closes it. Subscribing to a closed hub returns a closed channel.
func (h *Hub[T]) Subscribe(size int) (<-chan T, func()) {
	ch := make(chan T, size)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
	}
}

// Publish sends value to all current subscribers and reports how many received it.
func (h *Hub[T]) Publish(value T) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, ch := range h.subs {
		select {
		case ch <- value:
			delivered++
		default:
		}
	}
	return delivered
}

// Deliver sends value to every current subscriber, waiting for buffer space,
// and reports how many received it. It gives up on the remaining subscribers
// once ctx is done. Subscribers must keep draining until they cancel.
func (h *Hub[T]) Deliver(ctx context.Context, value T) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, ch := range h.subs {
		select {
		case ch <- value:
			delivered++
		case <-ctx.Done():
			return delivered
		}
	}
	return delivered
}

// Close closes every subscriber channel. Later publishes are dropped.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
