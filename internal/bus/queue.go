package bus

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/yanun0323/errors"

	"main/internal/fix"
)

var (
	ErrQueueFull   = errors.New("message queue full")
	ErrQueueClosed = errors.New("message queue closed")
)

// Event is one inbound FIX message handed off the session thread.
type Event struct {
	MsgType    fix.MsgType
	Payload    []byte
	RecvTsNano int64
}

// Queue hands raw inbound messages from the session loop to a consumer
// goroutine, which decodes them. The ring-buffer bytes a visitor sees are only valid inside
// the dispatch, so Publish copies the payload before enqueueing; the
// consumer owns the copy.
type Queue struct {
	ch     chan Event
	closed uint32
	drops  uint64
}

// NewQueue allocates a queue with the given capacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 1
	}
	return &Queue{ch: make(chan Event, capacity)}
}

// Publish copies buf and enqueues it without blocking. A full queue drops
// the message and reports ErrQueueFull; the session loop must never stall
// behind a slow consumer.
func (q *Queue) Publish(msgType fix.MsgType, buf []byte) error {
	if atomic.LoadUint32(&q.closed) != 0 {
		return ErrQueueClosed
	}
	e := Event{
		MsgType:    msgType,
		Payload:    append([]byte(nil), buf...),
		RecvTsNano: time.Now().UnixNano(),
	}
	select {
	case q.ch <- e:
		return nil
	default:
		atomic.AddUint64(&q.drops, 1)
		return ErrQueueFull
	}
}

// Drops returns how many messages were discarded on a full queue.
func (q *Queue) Drops() uint64 {
	return atomic.LoadUint64(&q.drops)
}

// Depth returns the number of events waiting to be consumed.
func (q *Queue) Depth() int {
	return len(q.ch)
}

// Close stops the queue from accepting new events. Events already queued
// still reach the consumer.
func (q *Queue) Close() {
	if atomic.CompareAndSwapUint32(&q.closed, 0, 1) {
		close(q.ch)
	}
}

// Run consumes events until the context is done or the queue is closed
// and drained.
func (q *Queue) Run(ctx context.Context, handler func(Event)) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-q.ch:
			if !ok {
				return
			}
			handler(e)
		}
	}
}
