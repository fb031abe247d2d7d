package models

// BlackjackSession holds the state of one in-progress blackjack hand.
// A user has at most one non-cleared session; "no session" is a nil
// pointer on the User, never a sentinel value.
type BlackjackSession struct {
	PlayerCards []int
	DealerCards []int
	Wager       int64
	Over        bool
}

// BlackjackAction is a turn action on a blackjack session.
type BlackjackAction string

const (
	BlackjackStart BlackjackAction = "start"
	BlackjackHit   BlackjackAction = "hit"
	BlackjackStand BlackjackAction = "stand"
)

// Blackjack game states reported to callers.
const (
	GameStateActive = "active"
	GameStateWin    = "win"
	GameStateLose   = "lose"
	GameStateTie    = "tie"
)
