package ledger

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"moodbot/events"
	"moodbot/models"
)

const shardCount = 32

// Ledger owns every user record: coin balance, last daily claim, and
// the active blackjack session. Records live in a sharded in-memory map
// with a mutex per record, so commands for the same user are mutually
// exclusive while different users proceed fully in parallel.
type Ledger struct {
	shards          [shardCount]shard
	startingBalance int64
	bus             *events.Bus
}

type shard struct {
	mu    sync.RWMutex
	users map[string]*record
}

type record struct {
	mu   sync.Mutex
	user models.User
}

// New creates an empty ledger. New users are seeded with startingBalance.
func New(startingBalance int64, bus *events.Bus) *Ledger {
	if bus == nil {
		bus = events.NewBus()
	}
	l := &Ledger{
		startingBalance: startingBalance,
		bus:             bus,
	}
	for i := range l.shards {
		l.shards[i].users = make(map[string]*record)
	}
	return l
}

func (l *Ledger) shardFor(userID string) *shard {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return &l.shards[h.Sum32()%shardCount]
}

func (l *Ledger) getOrCreate(userID string, initialBalance int64) *record {
	s := l.shardFor(userID)

	s.mu.RLock()
	rec, ok := s.users[userID]
	s.mu.RUnlock()
	if ok {
		return rec
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok = s.users[userID]; ok {
		return rec
	}
	now := time.Now().UTC()
	rec = &record{user: models.User{
		ID:        userID,
		Balance:   initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}}
	s.users[userID] = rec

	l.bus.Emit(context.Background(), events.UserCreatedEvent{
		UserID:         userID,
		InitialBalance: initialBalance,
	})
	return rec
}

// SeedIfAbsent creates a record with the given balance if the user is
// unknown. Once a record exists the ledger is authoritative and the
// externally supplied balance is ignored.
func (l *Ledger) SeedIfAbsent(userID string, balance int64) {
	if balance < 0 {
		balance = 0
	}
	l.getOrCreate(userID, balance)
}

// Balance returns the user's current balance, creating the record with
// the starting balance if needed.
func (l *Ledger) Balance(userID string) int64 {
	rec := l.getOrCreate(userID, l.startingBalance)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.user.Balance
}

// Do runs fn as a critical section over one user's record. Everything
// fn does against the Account is atomic with respect to concurrent
// commands for the same user. Events published through the Account are
// flushed only after fn returns nil; fn must validate before mutating,
// as there is no rollback of direct record changes.
func (l *Ledger) Do(userID string, fn func(a *Account) error) error {
	rec := l.getOrCreate(userID, l.startingBalance)
	pending := events.NewPendingBus(l.bus)

	rec.mu.Lock()
	acct := &Account{user: &rec.user, pending: pending}
	err := fn(acct)
	if err == nil {
		rec.user.UpdatedAt = time.Now().UTC()
	}
	rec.mu.Unlock()

	if err != nil {
		pending.Discard()
		return err
	}
	pending.Flush()
	return nil
}

// Account is the view of one locked user record handed to a Do
// callback. It must not be retained after the callback returns.
type Account struct {
	user    *models.User
	pending *events.PendingBus
}

// Balance returns the current balance.
func (a *Account) Balance() int64 {
	return a.user.Balance
}

// Debit removes amount from the balance, failing with
// ErrInsufficientFunds when the balance would go negative.
func (a *Account) Debit(amount int64, reason string) error {
	if amount > a.user.Balance {
		return fmt.Errorf("%w: have %d, need %d", models.ErrInsufficientFunds, a.user.Balance, amount)
	}
	before := a.user.Balance
	a.user.Balance -= amount
	a.pending.Publish(events.BalanceChangeEvent{
		UserID:        a.user.ID,
		BalanceBefore: before,
		BalanceAfter:  a.user.Balance,
		ChangeAmount:  -amount,
		Reason:        reason,
	})
	return nil
}

// Credit adds amount to the balance and returns the new balance.
// Currency is unbounded above.
func (a *Account) Credit(amount int64, reason string) int64 {
	before := a.user.Balance
	a.user.Balance += amount
	a.pending.Publish(events.BalanceChangeEvent{
		UserID:        a.user.ID,
		BalanceBefore: before,
		BalanceAfter:  a.user.Balance,
		ChangeAmount:  amount,
		Reason:        reason,
	})
	return a.user.Balance
}

// TryClaimDaily grants amount and advances the claim date to today
// unless the stored date already is today. The claim date only
// advances, never regresses, so a skewed earlier date grants nothing.
func (a *Account) TryClaimDaily(today time.Time, amount int64) (bool, int64) {
	if !a.user.LastDailyClaim.IsZero() && !dateAfter(today, a.user.LastDailyClaim) {
		return false, a.user.Balance
	}
	a.user.LastDailyClaim = today.UTC()
	newBalance := a.Credit(amount, "daily_reward")
	a.pending.Publish(events.DailyClaimEvent{
		UserID:     a.user.ID,
		Amount:     amount,
		NewBalance: newBalance,
	})
	return true, newBalance
}

// dateAfter reports whether a falls on a later UTC calendar date than b.
func dateAfter(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	ay, am, ad := au.Date()
	by, bm, bd := bu.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}

// Session returns the active blackjack session, or nil.
func (a *Account) Session() *models.BlackjackSession {
	return a.user.Session
}

// SetSession installs a session, superseding any previous one.
func (a *Account) SetSession(s *models.BlackjackSession) {
	a.user.Session = s
}

// ClearSession removes the session once the hand resolves.
func (a *Account) ClearSession() {
	a.user.Session = nil
}

// Publish stashes an event for emission after the critical section
// completes successfully.
func (a *Account) Publish(e events.Event) {
	a.pending.Publish(e)
}
