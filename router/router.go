package router

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"moodbot/chat"
	"moodbot/ledger"
	"moodbot/metrics"
	"moodbot/models"
	"moodbot/service"
)

// Usage texts returned for malformed commands.
const (
	coinUsage      = "Usage: !coin <heads|tails> <wager>"
	diceUsage      = "Usage: !dice <digit[operator]> <wager>. Operator is one of > < = >= <= and defaults to =, e.g. !dice 3> 20"
	blackjackUsage = "Usage: !blackjack [start|hit|stand]"
)

// Request is one inbound message for a user.
type Request struct {
	UserID string
	Input  string
	Mode   string
	Task   string
}

// Router recognizes game commands and dispatches them to the engine;
// anything else goes to the chat responder with the balance untouched.
type Router struct {
	ledger    *ledger.Ledger
	games     service.GamesService
	blackjack service.BlackjackService
	chat      chat.Responder
}

// New creates a command router.
func New(l *ledger.Ledger, games service.GamesService, blackjack service.BlackjackService, responder chat.Responder) *Router {
	return &Router{
		ledger:    l,
		games:     games,
		blackjack: blackjack,
		chat:      responder,
	}
}

// Handle routes one request. It never returns an error: every failure
// becomes a user-facing message with the balance left unchanged.
func (r *Router) Handle(ctx context.Context, req Request) *models.GameResponse {
	input := strings.TrimSpace(req.Input)
	fields := strings.Fields(input)

	if len(fields) == 0 || !strings.HasPrefix(fields[0], "!") {
		return r.fallback(ctx, req)
	}

	var (
		resp *models.GameResponse
		err  error
	)
	command := strings.ToLower(fields[0])
	args := fields[1:]

	switch command {
	case "!daily":
		resp, err = r.games.Daily(ctx, req.UserID)
	case "!hunt":
		resp, err = r.games.Hunt(ctx, req.UserID)
	case "!fish":
		resp, err = r.games.Fish(ctx, req.UserID)
	case "!coin":
		resp, err = r.handleCoin(ctx, req.UserID, args)
	case "!dice":
		resp, err = r.handleDice(ctx, req.UserID, args)
	case "!blackjack":
		resp, err = r.handleBlackjack(ctx, req.UserID, args)
	default:
		// Unrecognized commands are ordinary chat as far as the
		// engine is concerned.
		return r.fallback(ctx, req)
	}

	if err != nil {
		return r.rejection(command, req.UserID, err)
	}
	return resp
}

func (r *Router) handleCoin(ctx context.Context, userID string, args []string) (*models.GameResponse, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidCommandFormat, coinUsage)
	}
	wager, err := parseWager(args[1])
	if err != nil {
		return nil, err
	}
	return r.games.CoinFlip(ctx, userID, strings.ToLower(args[0]), wager)
}

func (r *Router) handleDice(ctx context.Context, userID string, args []string) (*models.GameResponse, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidCommandFormat, diceUsage)
	}
	prediction, err := models.ParseDicePrediction(args[0])
	if err != nil {
		return nil, err
	}
	wager, err := parseWager(args[1])
	if err != nil {
		return nil, err
	}
	return r.games.DiceWager(ctx, userID, prediction, wager)
}

func (r *Router) handleBlackjack(ctx context.Context, userID string, args []string) (*models.GameResponse, error) {
	action := models.BlackjackStart
	if len(args) > 1 {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidCommandFormat, blackjackUsage)
	}
	if len(args) == 1 {
		action = models.BlackjackAction(strings.ToLower(args[0]))
	}

	switch action {
	case models.BlackjackStart:
		return r.blackjack.Start(ctx, userID)
	case models.BlackjackHit:
		return r.blackjack.Hit(ctx, userID)
	case models.BlackjackStand:
		return r.blackjack.Stand(ctx, userID)
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidCommandFormat, blackjackUsage)
	}
}

func parseWager(token string) (int64, error) {
	wager, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", models.ErrInvalidWager, token)
	}
	return wager, nil
}

// rejection maps an engine error to a user-facing message. The balance
// is reported unchanged.
func (r *Router) rejection(command, userID string, err error) *models.GameResponse {
	balance := r.ledger.Balance(userID)

	var message string
	switch {
	case errors.Is(err, models.ErrInvalidCommandFormat):
		message = usageMessage(err)
	case errors.Is(err, models.ErrInvalidWager):
		message = "That wager isn't valid. It must be a positive number no greater than your balance."
	case errors.Is(err, models.ErrInsufficientFunds):
		message = "You don't have enough coins for that."
	case errors.Is(err, models.ErrNoActiveGame):
		message = "No blackjack game in progress. Start one with !blackjack."
	case errors.Is(err, models.ErrGameAlreadyOver):
		message = "That hand is already over. Start a new one with !blackjack."
	default:
		log.WithFields(log.Fields{
			"command": command,
			"userID":  userID,
		}).WithError(err).Error("Command failed unexpectedly")
		message = "Something went wrong handling that command. Your coins are untouched."
	}

	return &models.GameResponse{
		Message:    message,
		NewBalance: balance,
	}
}

// usageMessage pulls the human-readable tail of a wrapped format
// error (typically the usage text), falling back when there is none.
func usageMessage(err error) string {
	prefix := models.ErrInvalidCommandFormat.Error() + ": "
	msg := err.Error()
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return "That's not how that command works."
}

// fallback forwards non-command input to the chat responder. The
// per-user lock is never held across this call; only a momentary
// balance read touches the ledger.
func (r *Router) fallback(ctx context.Context, req Request) *models.GameResponse {
	balance := r.ledger.Balance(req.UserID)
	metrics.ChatFallbacksTotal.Inc()

	reply, err := r.chat.Respond(ctx, req.Input, req.Mode, req.Task)
	if err != nil {
		metrics.ChatFailuresTotal.Inc()
		log.WithField("userID", req.UserID).WithError(err).Warn("Chat fallback failed")
		return &models.GameResponse{
			Message:    "Sorry, I can't chat right now. Try again in a little while.",
			NewBalance: balance,
		}
	}

	return &models.GameResponse{
		Message:    reply,
		NewBalance: balance,
	}
}
