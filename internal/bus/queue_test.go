package bus

import (
	"bytes"
	"context"
	"testing"

	"main/internal/fix"
)

func TestQueuePublishCopiesPayload(t *testing.T) {
	q := NewQueue(4)
	buf := []byte("8=FIX.4.4\x019=5\x0135=X\x0110=000\x01")
	if err := q.Publish(fix.MsgTypeMarketDataIncrementalRefresh, buf); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	// the ring buffer behind buf is reused after dispatch; the queued copy
	// must not see it
	copy(buf, bytes.Repeat([]byte{'x'}, len(buf)))
	q.Close()

	var got []Event
	q.Run(context.Background(), func(e Event) { got = append(got, e) })
	if len(got) != 1 {
		t.Fatalf("consumed %d events, want 1", len(got))
	}
	if got[0].MsgType != fix.MsgTypeMarketDataIncrementalRefresh {
		t.Fatalf("event type %v", got[0].MsgType)
	}
	if !bytes.HasPrefix(got[0].Payload, []byte("8=FIX.4.4")) {
		t.Fatalf("payload aliased the publisher's buffer: %q", got[0].Payload)
	}
	if got[0].RecvTsNano == 0 {
		t.Fatal("receive timestamp not stamped")
	}
}

func TestQueueFullDropsAndCounts(t *testing.T) {
	q := NewQueue(1)
	if err := q.Publish(fix.MsgTypeHeartbeat, []byte("a")); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if err := q.Publish(fix.MsgTypeHeartbeat, []byte("b")); err != ErrQueueFull {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}
	if q.Drops() != 1 {
		t.Fatalf("drop counter %d, want 1", q.Drops())
	}
	if q.Depth() != 1 {
		t.Fatalf("depth %d, want 1", q.Depth())
	}
}

func TestQueueClosedRejectsPublish(t *testing.T) {
	q := NewQueue(2)
	if err := q.Publish(fix.MsgTypeHeartbeat, []byte("a")); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	q.Close()
	if err := q.Publish(fix.MsgTypeHeartbeat, []byte("b")); err != ErrQueueClosed {
		t.Fatalf("expected ErrQueueClosed, got %v", err)
	}

	// events queued before the close still drain
	var got int
	q.Run(context.Background(), func(Event) { got++ })
	if got != 1 {
		t.Fatalf("drained %d events, want 1", got)
	}
}

func TestQueueRunStopsOnContext(t *testing.T) {
	q := NewQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	q.Run(ctx, func(Event) { t.Fatal("handler invoked after cancel") })
}
