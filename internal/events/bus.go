package events

import (
	"sync"

	"go.uber.org/zap"
)

// DefaultQueueSize bounds each subscriber queue.
const DefaultQueueSize = 256

// Topic is a broadcast channel for one event type. Delivery is at-most-once
// per subscriber with a bounded queue; when a slow subscriber's queue is
// full, the oldest buffered event is dropped so publishers never block.
type Topic[T any] struct {
	mu     sync.Mutex
	subs   []chan T
	size   int
	logger *zap.Logger
	closed bool
}

// NewTopic builds a Topic with the given queue size per subscriber.
// A size of 0 or less uses DefaultQueueSize.
func NewTopic[T any](logger *zap.Logger, size int) *Topic[T] {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &Topic[T]{size: size, logger: logger}
}

// Subscribe registers a new subscriber and returns its receive channel.
// The channel is closed by Close.
func (t *Topic[T]) Subscribe() <-chan T {
	t.mu.Lock()
	defer t.mu.Unlock()

	ch := make(chan T, t.size)
	if t.closed {
		close(ch)
		return ch
	}
	t.subs = append(t.subs, ch)
	return ch
}

// Publish broadcasts an event to all subscribers without blocking.
func (t *Topic[T]) Publish(event T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	for _, ch := range t.subs {
		select {
		case ch <- event:
		default:
			// Queue full: drop the oldest event, then enqueue. State is
			// reconstructed from the database, so stale events are safe
			// to lose.
			select {
			case <-ch:
				t.logger.Warn("subscriber queue full, dropped oldest event")
			default:
			}
			select {
			case ch <- event:
			default:
			}
		}
	}
}

// Close closes all subscriber channels. Publish becomes a no-op.
func (t *Topic[T]) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	for _, ch := range t.subs {
		close(ch)
	}
	t.subs = nil
}

// Bus owns the three pipeline topics.
type Bus struct {
	PendingDepositChanged *Topic[PendingDepositChanged]
	PoolingTick           *Topic[PoolingTick]
	MatchTick             *Topic[MatchTick]
}

// NewBus builds a Bus with default queue sizes.
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{
		PendingDepositChanged: NewTopic[PendingDepositChanged](logger.Named("pendingDepositChanged"), DefaultQueueSize),
		PoolingTick:           NewTopic[PoolingTick](logger.Named("poolingTick"), DefaultQueueSize),
		MatchTick:             NewTopic[MatchTick](logger.Named("matchTick"), DefaultQueueSize),
	}
}

// Close closes every topic.
func (b *Bus) Close() {
	b.PendingDepositChanged.Close()
	b.PoolingTick.Close()
	b.MatchTick.Close()
}
