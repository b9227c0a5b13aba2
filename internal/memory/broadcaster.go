package memory

import "sync"

// Listener receives events it was registered for.
type Listener func(Event)

// Broadcaster delivers events to listeners keyed by event type.
//
// Delivery is synchronous and in registration order. A listener that panics
// aborts delivery to the listeners after it and the panic propagates out of
// Broadcast. Listeners may call back into the broadcaster (or the board that
// owns it); such nested broadcasts complete before the outer one resumes.
type Broadcaster struct {
	mu        sync.RWMutex
	listeners map[EventType][]Listener
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		listeners: make(map[EventType][]Listener),
	}
}

// On registers a listener for the given event type.
// There is no de-duplication: registering the same listener twice delivers
// each event to it twice.
func (b *Broadcaster) On(t EventType, l Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.listeners == nil {
		b.listeners = make(map[EventType][]Listener)
	}
	b.listeners[t] = append(b.listeners[t], l)
}

// OnAll registers a listener for every board event type.
func (b *Broadcaster) OnAll(l Listener) {
	for _, t := range EventTypes {
		b.On(t, l)
	}
}

// Broadcast delivers the event to every listener registered for its type.
// Broadcasting a type nobody listens to is a no-op.
func (b *Broadcaster) Broadcast(e Event) {
	b.mu.RLock()
	// Listeners registered during delivery only see later events.
	ls := b.listeners[e.Type()]
	b.mu.RUnlock()

	for _, l := range ls {
		l(e)
	}
}

// Count returns how many listeners are registered for the type.
func (b *Broadcaster) Count(t EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[t])
}
