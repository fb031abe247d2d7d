package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"moodbot/events"
	"moodbot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(startingBalance int64) *Ledger {
	return New(startingBalance, events.NewBus())
}

func TestLedger_Balance_SeedsNewUsers(t *testing.T) {
	l := newTestLedger(100)

	assert.Equal(t, int64(100), l.Balance("alice"))
}

func TestLedger_SeedIfAbsent_FirstSeedWins(t *testing.T) {
	l := newTestLedger(100)

	l.SeedIfAbsent("alice", 500)
	assert.Equal(t, int64(500), l.Balance("alice"))

	// The ledger is authoritative once the record exists.
	l.SeedIfAbsent("alice", 9999)
	assert.Equal(t, int64(500), l.Balance("alice"))
}

func TestLedger_DebitAndCredit(t *testing.T) {
	l := newTestLedger(100)

	err := l.Do("alice", func(a *Account) error {
		require.NoError(t, a.Debit(30, "test"))
		assert.Equal(t, int64(70), a.Balance())
		assert.Equal(t, int64(120), a.Credit(50, "test"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(120), l.Balance("alice"))
}

func TestLedger_Debit_InsufficientFunds(t *testing.T) {
	l := newTestLedger(100)

	err := l.Do("alice", func(a *Account) error {
		return a.Debit(150, "test")
	})
	assert.ErrorIs(t, err, models.ErrInsufficientFunds)
	assert.Equal(t, int64(100), l.Balance("alice"))
}

func TestLedger_TryClaimDaily_OncePerDate(t *testing.T) {
	l := newTestLedger(100)
	today := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	err := l.Do("alice", func(a *Account) error {
		granted, balance := a.TryClaimDaily(today, 50)
		assert.True(t, granted)
		assert.Equal(t, int64(150), balance)
		return nil
	})
	require.NoError(t, err)

	// Second claim the same date is a no-op.
	err = l.Do("alice", func(a *Account) error {
		granted, balance := a.TryClaimDaily(today.Add(3*time.Hour), 50)
		assert.False(t, granted)
		assert.Equal(t, int64(150), balance)
		return nil
	})
	require.NoError(t, err)

	// The next calendar date grants again.
	err = l.Do("alice", func(a *Account) error {
		granted, balance := a.TryClaimDaily(today.AddDate(0, 0, 1), 50)
		assert.True(t, granted)
		assert.Equal(t, int64(200), balance)
		return nil
	})
	require.NoError(t, err)
}

func TestLedger_TryClaimDaily_DateNeverRegresses(t *testing.T) {
	l := newTestLedger(100)
	today := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	_ = l.Do("alice", func(a *Account) error {
		granted, _ := a.TryClaimDaily(today, 50)
		require.True(t, granted)
		return nil
	})

	// A skewed earlier date must not grant or move the claim date back.
	_ = l.Do("alice", func(a *Account) error {
		granted, balance := a.TryClaimDaily(today.AddDate(0, 0, -1), 50)
		assert.False(t, granted)
		assert.Equal(t, int64(150), balance)
		return nil
	})
}

func TestLedger_FailedSectionDiscardsEvents(t *testing.T) {
	bus := events.NewBus()
	var mu sync.Mutex
	var changes []events.BalanceChangeEvent
	done := make(chan struct{}, 10)
	bus.Subscribe(events.EventTypeBalanceChange, func(_ context.Context, e events.Event) {
		mu.Lock()
		changes = append(changes, e.(events.BalanceChangeEvent))
		mu.Unlock()
		done <- struct{}{}
	})

	l := New(100, bus)
	err := l.Do("alice", func(a *Account) error {
		a.Credit(50, "test")
		return assert.AnError
	})
	require.Error(t, err)

	select {
	case <-done:
		t.Fatal("expected no events after a failed section")
	case <-time.After(50 * time.Millisecond):
	}
	mu.Lock()
	assert.Empty(t, changes)
	mu.Unlock()
}

func TestLedger_ConcurrentCreditsForOneUser(t *testing.T) {
	l := newTestLedger(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Do("alice", func(a *Account) error {
				a.Credit(10, "test")
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(500), l.Balance("alice"))
}

func TestLedger_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	l := newTestLedger(100)

	var wg sync.WaitGroup
	successes := make(chan struct{}, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := l.Do("alice", func(a *Account) error {
				return a.Debit(30, "test")
			})
			if err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	count := 0
	for range successes {
		count++
	}
	assert.Equal(t, 3, count)
	assert.Equal(t, int64(10), l.Balance("alice"))
}

func TestLedger_UsersAreIndependent(t *testing.T) {
	l := newTestLedger(100)

	_ = l.Do("alice", func(a *Account) error { return a.Debit(40, "test") })
	_ = l.Do("bob", func(a *Account) error { a.Credit(40, "test"); return nil })

	assert.Equal(t, int64(60), l.Balance("alice"))
	assert.Equal(t, int64(140), l.Balance("bob"))
}
