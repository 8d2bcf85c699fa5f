package guardrail

import "sync"

// UnsubscribeFunc is a function that cancels a subscription. After calling,
// no more events will be delivered to the handler. Safe to call multiple
// times.
type UnsubscribeFunc func()

// hubSubscription pairs a handler with its registration id.
type hubSubscription struct {
	id      uint64
	handler func(SessionEvent)
}

// SessionHub is an in-memory Session implementation that fans events out
// to subscribers.
//
// Delivery is synchronous: Publish invokes every handler in subscription
// order and returns only after all of them have run to completion. That
// gives subscribers like [Monitor] a single logical event stream with no
// reentrancy, so their state needs no locking.
//
// Subscribe, Publish, and Close are safe to call from multiple goroutines,
// but events published concurrently will be delivered in an arbitrary
// relative order. Hosts that need strict ordering should publish from one
// goroutine.
type SessionHub struct {
	mu sync.Mutex

	subscribers []*hubSubscription
	closed      bool
	nextId      uint64
}

// NewSessionHub creates an empty SessionHub.
func NewSessionHub() *SessionHub {
	return &SessionHub{}
}

// Subscribe registers a handler for all session events and returns an
// idempotent unsubscribe function. Subscribing to a closed hub returns a
// no-op unsubscribe and the handler is never called.
func (h *SessionHub) Subscribe(handler func(SessionEvent)) UnsubscribeFunc {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || handler == nil {
		return func() {}
	}

	sub := &hubSubscription{
		id:      h.nextId,
		handler: handler,
	}
	h.nextId++
	h.subscribers = append(h.subscribers, sub)

	return func() {
		h.unsubscribe(sub)
	}
}

// unsubscribe removes a subscription. Removal by id makes repeat calls
// no-ops.
func (h *SessionHub) unsubscribe(sub *hubSubscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, s := range h.subscribers {
		if s.id == sub.id {
			h.subscribers = append(h.subscribers[:i], h.subscribers[i+1:]...)
			return
		}
	}
}

// Publish delivers an event to all current subscribers in subscription
// order and returns after every handler has run. Publishing to a closed
// hub is a no-op.
func (h *SessionHub) Publish(event SessionEvent) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	subs := make([]*hubSubscription, len(h.subscribers))
	copy(subs, h.subscribers)
	h.mu.Unlock()

	// Handlers run outside the lock so they may unsubscribe themselves.
	for _, sub := range subs {
		sub.handler(event)
	}
}

// Close drops all subscribers. Safe to call multiple times. Events
// published after Close are discarded.
func (h *SessionHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	h.subscribers = nil
}
