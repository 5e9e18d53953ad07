// Package event provides a simple in-process event dispatcher.
//
// The gateway layer fires an event after every successful mutation; the
// catalog mirrors and the WebSocket hub listen so open dashboards re-render
// without polling.
package event

import (
	"sync"
)

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	nextID   int
	handlers = map[string]map[int]Handler{}
)

// Listen registers a handler for the given event name and returns a function
// that removes it again. Callers that never unsubscribe can discard it.
func Listen(event string, handler Handler) (unsubscribe func()) {
	mu.Lock()
	defer mu.Unlock()

	if handlers[event] == nil {
		handlers[event] = map[int]Handler{}
	}
	id := nextID
	nextID++
	handlers[event][id] = handler

	return func() {
		mu.Lock()
		defer mu.Unlock()
		delete(handlers[event], id)
	}
}

// Fire dispatches an event synchronously to all registered listeners.
func Fire(event string, payload interface{}) {
	mu.RLock()
	hs := make([]Handler, 0, len(handlers[event]))
	for _, h := range handlers[event] {
		hs = append(hs, h)
	}
	mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// FireAsync dispatches the event to all listeners concurrently.
// It returns immediately without waiting for handlers to complete.
func FireAsync(event string, payload interface{}) {
	mu.RLock()
	hs := make([]Handler, 0, len(handlers[event]))
	for _, h := range handlers[event] {
		hs = append(hs, h)
	}
	mu.RUnlock()

	for _, h := range hs {
		go h(payload)
	}
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string]map[int]Handler{}
}
