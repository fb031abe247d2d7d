package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_EmitReachesSubscribers(t *testing.T) {
	bus := NewBus()
	received := make(chan Event, 1)
	bus.Subscribe(EventTypeGamePlayed, func(ctx context.Context, e Event) {
		received <- e
	})

	bus.Emit(context.Background(), GamePlayedEvent{UserID: "alice", Game: "coin", Result: "win"})

	select {
	case e := <-received:
		ev := e.(GamePlayedEvent)
		assert.Equal(t, "alice", ev.UserID)
		assert.Equal(t, "coin", ev.Game)
	case <-time.After(time.Second):
		t.Fatal("handler was not called")
	}
}

func TestBus_EmitSkipsOtherEventTypes(t *testing.T) {
	bus := NewBus()
	received := make(chan Event, 1)
	bus.Subscribe(EventTypeDailyClaim, func(ctx context.Context, e Event) {
		received <- e
	})

	bus.Emit(context.Background(), GamePlayedEvent{UserID: "alice"})

	select {
	case <-received:
		t.Fatal("handler for another event type was called")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPendingBus_FlushAndDiscard(t *testing.T) {
	bus := NewBus()
	received := make(chan Event, 2)
	bus.Subscribe(EventTypeDailyClaim, func(ctx context.Context, e Event) {
		received <- e
	})

	pending := NewPendingBus(bus)
	pending.Publish(DailyClaimEvent{UserID: "alice", Amount: 50})
	pending.Discard()
	pending.Flush()

	select {
	case <-received:
		t.Fatal("discarded event was emitted")
	case <-time.After(50 * time.Millisecond):
	}

	pending.Publish(DailyClaimEvent{UserID: "bob", Amount: 50})
	pending.Flush()

	select {
	case e := <-received:
		assert.Equal(t, "bob", e.(DailyClaimEvent).UserID)
	case <-time.After(time.Second):
		t.Fatal("flushed event was not emitted")
	}
}
