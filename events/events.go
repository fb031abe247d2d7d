package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBalanceChange     EventType = "balance_change"
	EventTypeUserCreated       EventType = "user_created"
	EventTypeGamePlayed        EventType = "game_played"
	EventTypeDailyClaim        EventType = "daily_claim"
	EventTypeBlackjackResolved EventType = "blackjack_resolved"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BalanceChangeEvent represents a balance change that occurred
type BalanceChangeEvent struct {
	UserID        string
	BalanceBefore int64
	BalanceAfter  int64
	ChangeAmount  int64
	Reason        string
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// UserCreatedEvent represents a new user record being seeded
type UserCreatedEvent struct {
	UserID         string
	InitialBalance int64
}

func (e UserCreatedEvent) Type() EventType {
	return EventTypeUserCreated
}

// GamePlayedEvent represents a resolved mini-game round
type GamePlayedEvent struct {
	UserID     string
	Game       string
	Result     string
	Wager      int64
	Payout     int64
	NewBalance int64
}

func (e GamePlayedEvent) Type() EventType {
	return EventTypeGamePlayed
}

// DailyClaimEvent represents a granted daily reward
type DailyClaimEvent struct {
	UserID     string
	Amount     int64
	NewBalance int64
}

func (e DailyClaimEvent) Type() EventType {
	return EventTypeDailyClaim
}

// BlackjackResolvedEvent represents a blackjack hand reaching a terminal state
type BlackjackResolvedEvent struct {
	UserID      string
	Outcome     string
	Wager       int64
	Payout      int64
	PlayerTotal int
	DealerTotal int
}

func (e BlackjackResolvedEvent) Type() EventType {
	return EventTypeBlackjackResolved
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make([]Handler, 0)
	}
	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	// Call handlers asynchronously; a misbehaving handler must never
	// stall a game command.
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// Publisher is the narrow interface components emit through.
type Publisher interface {
	Publish(e Event)
}

// PendingBus stashes events raised inside a ledger critical section and
// flushes them to the real bus only after the section completes without
// error. Discarded sections leave no trace.
type PendingBus struct {
	real    *Bus
	pending []Event
}

func NewPendingBus(real *Bus) *PendingBus {
	return &PendingBus{real: real}
}

func (b *PendingBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Flush emits all stashed events. A background context is used so event
// processing is independent of the request lifecycle.
func (b *PendingBus) Flush() {
	ctx := context.Background()
	for _, ev := range b.pending {
		b.real.Emit(ctx, ev)
	}
	b.pending = nil
}

// Discard drops stashed events after a failed critical section.
func (b *PendingBus) Discard() {
	b.pending = nil
}
