package events

import "sync"

// Listener receives dispatched events.
type Listener interface {
	OnEvent(ev Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ev Event)

func (f ListenerFunc) OnEvent(ev Event) {
	f(ev)
}

// Dispatcher fans events out to the listeners subscribed to their type.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch calls listeners in subscription order on the caller's goroutine.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	listeners := d.listeners[ev.Type]
	d.mu.RUnlock()
	for _, l := range listeners {
		l.OnEvent(ev)
	}
}
