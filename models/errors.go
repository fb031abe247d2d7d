package models

import "errors"

// Engine error taxonomy. All of these are per-request and recoverable;
// the router maps them to user-facing rejection messages with the
// balance left unchanged.
var (
	// ErrInvalidCommandFormat means the argument count or shape was wrong.
	ErrInvalidCommandFormat = errors.New("invalid command format")

	// ErrInvalidWager means a wager was non-numeric, non-positive, or
	// exceeded the current balance.
	ErrInvalidWager = errors.New("invalid wager")

	// ErrInsufficientFunds means the balance was below a fixed entry cost.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNoActiveGame means hit/stand arrived without an active session.
	ErrNoActiveGame = errors.New("no active blackjack game")

	// ErrGameAlreadyOver means a turn action raced a session that had
	// already resolved.
	ErrGameAlreadyOver = errors.New("blackjack game already over")
)
