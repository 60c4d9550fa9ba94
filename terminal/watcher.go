package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
)

// Watcher turns OS signals into events for the render loop.
// Resize events carry the size queried at delivery time and replace an
// unconsumed older event; interrupts are never dropped.
type Watcher struct {
	fd      int
	sigCh   chan os.Signal
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewWatcher creates a watcher that queries the size of the terminal behind fd
func NewWatcher(fd int) *Watcher {
	return &Watcher{
		fd:      fd,
		sigCh:   make(chan os.Signal, 1),
		eventCh: make(chan Event, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Name identifies the watcher as a service
func (w *Watcher) Name() string { return "signals" }

// Start registers the signal handlers and begins watching
func (w *Watcher) Start() error {
	w.startOnce.Do(func() {
		signal.Notify(w.sigCh, watchedSignals...)
		go w.watchLoop()
	})
	return nil
}

// Stop unregisters the handlers and waits for the watch goroutine to exit
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		signal.Stop(w.sigCh)
		close(w.stopCh)
		// Never started: nothing will close doneCh
		w.startOnce.Do(func() { close(w.doneCh) })
		<-w.doneCh
	})
}

// Events returns the event channel
func (w *Watcher) Events() <-chan Event {
	return w.eventCh
}

// watchLoop monitors for signals
func (w *Watcher) watchLoop() {
	defer close(w.doneCh)

	// Panic recovery for signal handler
	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSIGNAL WATCHER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-w.stopCh:
			return
		case sig := <-w.sigCh:
			if isResize(sig) {
				cols, rows, err := Size(w.fd)
				if err == nil && cols > 0 && rows > 0 {
					w.sendResize(Event{Type: EventResize, Width: cols, Height: rows})
				}
				continue
			}
			select {
			case w.eventCh <- Event{Type: EventInterrupt}:
			case <-w.stopCh:
				return
			}
		}
	}
}

// sendResize delivers ev without blocking, replacing a stale resize
func (w *Watcher) sendResize(ev Event) {
	select {
	case w.eventCh <- ev:
		return
	default:
	}

	select {
	case old := <-w.eventCh:
		if old.Type == EventInterrupt {
			// Shutdown pending, size no longer matters
			ev = old
		}
	default:
	}

	select {
	case w.eventCh <- ev:
	default:
	}
}
