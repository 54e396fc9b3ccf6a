package timesource

import (
	"sync"
	"time"

	"moodgarden/internal/logger"

	"github.com/jonboulle/clockwork"
)

// Adapter is a feature-bound time source. Now is always synchronous and
// non-blocking. Close must be called before discarding an adapter; for
// interval adapters it stops the tick goroutine, for the rest it is a no-op.
type Adapter interface {
	Now() time.Time
	Close()
}

// Subscriber is the optional push capability. Only interval adapters
// implement it.
type Subscriber interface {
	// Subscribe registers fn, delivers one synchronous notification with the
	// current instant, and returns an idempotent cancel func that removes fn
	// without touching other subscribers or the ticker.
	Subscribe(fn func(time.Time)) (cancel func())
}

// New builds the adapter for cfg. Off mode has no adapter and returns nil;
// callers branch on presence and substitute a wall-clock read.
func New(cfg Config, clock clockwork.Clock, log *logger.Logger) Adapter {
	switch cfg.Mode {
	case ModeOff:
		return nil
	case ModeInterval:
		return newIntervalAdapter(cfg, clock, log)
	default: // snapshot and anything unrecognized read fresh per call
		return &snapshotAdapter{cfg: cfg, clock: clock}
	}
}

// snapshotAdapter reads the wall clock fresh on every call, or returns the
// frozen instant.
type snapshotAdapter struct {
	cfg   Config
	clock clockwork.Clock
}

func (a *snapshotAdapter) Now() time.Time {
	if a.cfg.Frozen {
		return a.cfg.FreezeTo
	}
	return a.clock.Now()
}

func (a *snapshotAdapter) Close() {}

// intervalAdapter adds a repeating ticker that pushes the current instant to
// every subscriber.
type intervalAdapter struct {
	snapshotAdapter
	log *logger.Logger

	mu     sync.Mutex
	subs   map[int]func(time.Time)
	nextID int

	ticker clockwork.Ticker
	done   chan struct{}
	once   sync.Once
}

func newIntervalAdapter(cfg Config, clock clockwork.Clock, log *logger.Logger) *intervalAdapter {
	a := &intervalAdapter{
		snapshotAdapter: snapshotAdapter{cfg: cfg, clock: clock},
		log:             log,
		subs:            make(map[int]func(time.Time)),
		ticker:          clock.NewTicker(cfg.Interval()),
		done:            make(chan struct{}),
	}
	go a.loop()
	return a
}

func (a *intervalAdapter) loop() {
	for {
		select {
		case <-a.done:
			return
		case <-a.ticker.Chan():
			a.broadcast(a.Now())
		}
	}
}

func (a *intervalAdapter) broadcast(at time.Time) {
	a.mu.Lock()
	fns := make([]func(time.Time), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.mu.Unlock()

	for _, fn := range fns {
		a.notify(fn, at)
	}
}

// notify isolates one callback: a panic is logged and the remaining
// subscribers still get the tick.
func (a *intervalAdapter) notify(fn func(time.Time), at time.Time) {
	defer func() {
		if r := recover(); r != nil {
			if a.log != nil {
				a.log.Warnw("time_subscriber_panic", "panic", r)
			}
		}
	}()
	fn(at)
}

// Subscribe registers fn and immediately delivers the current instant once,
// synchronously, before any tick.
func (a *intervalAdapter) Subscribe(fn func(time.Time)) (cancel func()) {
	a.mu.Lock()
	id := a.nextID
	a.nextID++
	a.subs[id] = fn
	a.mu.Unlock()

	a.notify(fn, a.Now())

	return func() {
		a.mu.Lock()
		delete(a.subs, id)
		a.mu.Unlock()
	}
}

// Close stops the ticker. Safe to call more than once.
func (a *intervalAdapter) Close() {
	a.once.Do(func() {
		a.ticker.Stop()
		close(a.done)
	})
}

// compile-time capability checks
var (
	_ Adapter    = (*snapshotAdapter)(nil)
	_ Adapter    = (*intervalAdapter)(nil)
	_ Subscriber = (*intervalAdapter)(nil)
)
