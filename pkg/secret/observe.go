package secret

import "sync/atomic"

// Event identifies a container lifecycle transition reported to the
// installed observer.
type Event int

const (
	// EventCreated fires once per successful construction.
	EventCreated Event = iota
	// EventDestroyed fires on the first Destroy of a container.
	EventDestroyed
	// EventAccessDenied fires when an access is refused because the
	// container was already destroyed.
	EventAccessDenied
)

var observerFn atomic.Pointer[func(Event)]

// SetObserver installs a process-wide callback invoked on container
// lifecycle events. Passing nil removes it. The callback must be fast and
// must not itself touch containers; it runs inline on the calling
// goroutine.
func SetObserver(fn func(Event)) {
	if fn == nil {
		observerFn.Store(nil)
		return
	}
	observerFn.Store(&fn)
}

func observe(e Event) {
	if fn := observerFn.Load(); fn != nil {
		(*fn)(e)
	}
}
