package feed

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/otpkeeper/internal/logging"
)

// ErrClosed is returned on submissions after the feed has been closed.
// Submission failures are always surfaced to the caller, never dropped.
var ErrClosed = errors.New("feed closed")

const (
	// DefaultRefreshInterval matches the cadence codes are regenerated at.
	DefaultRefreshInterval = 5 * time.Second

	defaultEventBuffer      = 16
	defaultSubscriberBuffer = 16
)

// Feed owns the live entry collection and the event loop advancing it.
type Feed struct {
	store   SourceStore
	parser  Parser
	factory GeneratorFactory
	logger  logging.Logger

	refreshInterval time.Duration
	maxTicks        int
	eventBuffer     int
	subBuffer       int

	events chan Event
	pub    *publisher

	cancel    context.CancelFunc
	closeMu   sync.RWMutex
	closed    bool
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a Feed at construction time.
type Option func(*Feed)

// WithRefreshInterval sets the period between regenerate ticks.
func WithRefreshInterval(d time.Duration) Option {
	return func(f *Feed) {
		if d > 0 {
			f.refreshInterval = d
		}
	}
}

// WithMaxTicks bounds the scheduler to n regenerate ticks. Zero (the
// default) means unbounded. Intended for deterministic tests; production
// wiring leaves it unset.
func WithMaxTicks(n int) Option {
	return func(f *Feed) {
		if n >= 0 {
			f.maxTicks = n
		}
	}
}

// WithEventBuffer sets the capacity of the ordered event channel.
func WithEventBuffer(n int) Option {
	return func(f *Feed) {
		if n > 0 {
			f.eventBuffer = n
		}
	}
}

// WithSubscriberBuffer sets the per-subscriber channel capacity.
func WithSubscriberBuffer(n int) Option {
	return func(f *Feed) {
		if n > 0 {
			f.subBuffer = n
		}
	}
}

// New assembles a Feed. Nothing runs until Start is called.
func New(store SourceStore, parser Parser, factory GeneratorFactory, logger logging.Logger, opts ...Option) *Feed {
	f := &Feed{
		store:           store,
		parser:          parser,
		factory:         factory,
		logger:          logger,
		refreshInterval: DefaultRefreshInterval,
		eventBuffer:     defaultEventBuffer,
		subBuffer:       defaultSubscriberBuffer,
		done:            make(chan struct{}),
	}

	for _, opt := range opts {
		opt(f)
	}

	f.events = make(chan Event, f.eventBuffer)
	f.pub = newPublisher(f.subBuffer)

	return f
}

// Start bootstraps the seed snapshot, publishes it, and launches the reducer
// and the refresh scheduler. It returns an error only when the source store
// cannot be listed; unusable URIs are skipped and logged.
func (f *Feed) Start(ctx context.Context) error {
	seed, skipped, err := Bootstrap(ctx, f.store, f.parser, f.factory)
	if err != nil {
		return err
	}
	for _, s := range skipped {
		// The URI itself carries the secret, so only its position is logged.
		f.logger.Warn(ctx, "skipping unusable otp uri", "index", s.Index, "error", s.Err)
	}
	f.logger.Info(ctx, "feed bootstrapped", "entries", len(seed), "skipped", len(skipped))

	runCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel

	f.pub.publish(f.project(seed))

	go f.run(runCtx, seed)

	sched := Scheduler{Interval: f.refreshInterval, MaxTicks: f.maxTicks}
	go sched.Run(runCtx, func() error {
		return f.submit(Regenerate{})
	})

	return nil
}

// Subscribe registers a new consumer of display projections. The returned
// cancel function must be called when the consumer is done. A subscriber
// joining after Start immediately receives the current view. Slow consumers
// never stall reduction: a stale projection in the buffer is replaced by the
// newest one.
func (f *Feed) Subscribe() (<-chan []DisplayItem, func()) {
	return f.pub.subscribe()
}

// Close stops the scheduler and rejects further submissions. It waits for
// in-flight submissions to land before the reducer is told to stop, so every
// event whose submit returned nil is reduced before Done is signalled.
// Close is idempotent.
func (f *Feed) Close() {
	f.closeOnce.Do(func() {
		f.closeMu.Lock()
		f.closed = true
		f.closeMu.Unlock()
		if f.cancel != nil {
			f.cancel()
		}
	})
}

// Done is closed once the reducer has drained the queue and exited.
func (f *Feed) Done() <-chan struct{} {
	return f.done
}

// submit hands an event to the ordered channel. It blocks under backpressure
// rather than dropping, and fails once the feed is closed. The read lock is
// held across the send: Close cannot proceed until the event is queued, so a
// nil return guarantees the event will be reduced.
func (f *Feed) submit(ev Event) error {
	f.closeMu.RLock()
	defer f.closeMu.RUnlock()

	if f.closed {
		return ErrClosed
	}

	f.events <- ev
	return nil
}
