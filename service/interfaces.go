package service

import (
	"context"

	"moodbot/models"
)

// GamesService defines the single-shot mini-games. Each game validates
// its preconditions, debits the cost or wager, samples an outcome, and
// credits the payout as one atomic step against the user's record.
type GamesService interface {
	// Daily grants the once-per-calendar-date reward.
	Daily(ctx context.Context, userID string) (*models.GameResponse, error)

	// Hunt plays a fixed-cost hunt against the uniform hunt table.
	Hunt(ctx context.Context, userID string) (*models.GameResponse, error)

	// Fish plays a fixed-cost cast against the weighted fish loot table.
	Fish(ctx context.Context, userID string) (*models.GameResponse, error)

	// CoinFlip wagers on heads or tails; a match pays 2x the wager.
	CoinFlip(ctx context.Context, userID, prediction string, wager int64) (*models.GameResponse, error)

	// DiceWager wagers on a parsed dice prediction; "=" pays 5x, any
	// other operator 2x.
	DiceWager(ctx context.Context, userID string, prediction models.DicePrediction, wager int64) (*models.GameResponse, error)
}

// BlackjackService defines the multi-turn blackjack state machine.
type BlackjackService interface {
	// Start deals a new hand, debiting the fixed entry wager.
	Start(ctx context.Context, userID string) (*models.GameResponse, error)

	// Hit draws one card for the player, resolving the hand on a bust.
	Hit(ctx context.Context, userID string) (*models.GameResponse, error)

	// Stand plays out the dealer and settles the hand.
	Stand(ctx context.Context, userID string) (*models.GameResponse, error)
}
