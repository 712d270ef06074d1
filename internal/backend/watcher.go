package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/gridmenu/internal/orders"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindOrders Kind = iota
)

// Source lists the current orders. *store.Store satisfies it.
type Source interface {
	List(ctx context.Context) ([]orders.Order, error)
}

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data []orders.Order
	Err  error
}

// Watcher polls a Source at a fixed interval and publishes events.
type Watcher struct {
	source   Source
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events  chan Event
	refresh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher that lists source every interval. A
// non-positive interval disables the ticker; the watcher then only emits
// the initial snapshot and whatever Refresh requests.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:   source,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
		refresh:  make(chan struct{}, 1),
	}

	w.startOrderPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Refresh asks for an immediate poll. Requests made while one is already
// pending are coalesced.
func (w *Watcher) Refresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startOrderPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(KindOrders, func(ctx context.Context) ([]orders.Order, error) {
		if !throttle.wait(ctx) {
			return nil, ctx.Err()
		}
		return w.source.List(ctx)
	})
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) ([]orders.Order, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	var tick <-chan time.Time
	if w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-tick:
			if !emit() {
				return
			}
		case <-w.refresh:
			if !emit() {
				return
			}
		}
	}
}
