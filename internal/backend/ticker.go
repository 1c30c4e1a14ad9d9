package backend

import (
	"context"
	"sync"
	"time"
)

// Event marks one refresh tick.
type Event struct {
	At  time.Time
	Seq uint64
}

// Ticker publishes refresh events at a fixed interval until stopped.
type Ticker struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewTicker starts a ticker. A non-positive interval yields a ticker whose
// channel is closed immediately.
func NewTicker(interval time.Duration) *Ticker {
	ctx, cancel := context.WithCancel(context.Background())
	t := &Ticker{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 1),
	}
	if interval > 0 {
		t.wg.Add(1)
		go t.run()
	}
	go func() {
		t.wg.Wait()
		close(t.events)
	}()
	return t
}

// Events returns the channel of refresh events.
func (t *Ticker) Events() <-chan Event {
	return t.events
}

// Stop cancels the ticker.
func (t *Ticker) Stop() {
	t.cancel()
}

// Wait blocks until the ticker goroutine has exited and the channel is
// closed.
func (t *Ticker) Wait() {
	t.wg.Wait()
}

func (t *Ticker) run() {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	var seq uint64
	for {
		select {
		case <-t.ctx.Done():
			return
		case now := <-ticker.C:
			seq++
			select {
			case <-t.ctx.Done():
				return
			case t.events <- Event{At: now, Seq: seq}:
			default:
				// consumer is behind; the pending tick already triggers a refresh
			}
		}
	}
}
