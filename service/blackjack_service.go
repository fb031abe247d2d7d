package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"moodbot/events"
	"moodbot/ledger"
	"moodbot/models"
)

type blackjackService struct {
	ledger *ledger.Ledger
	rng    Source
}

// NewBlackjackService creates the service behind the blackjack state machine.
func NewBlackjackService(l *ledger.Ledger, rng Source) BlackjackService {
	return &blackjackService{
		ledger: l,
		rng:    rng,
	}
}

// drawCard returns a uniform card value in 1..11. A 1 is the ace; any
// value above 10 counts as a face card when totaling.
func (s *blackjackService) drawCard() int {
	return s.rng.Intn(11) + 1
}

// handTotal computes a hand total with soft-ace reduction: face cards
// count as 10, each ace counts as 11 until the total would bust, then
// is recounted as 1, one ace at a time.
func handTotal(cards []int) int {
	total := 0
	aces := 0
	for _, c := range cards {
		switch {
		case c > 10:
			total += 10
		case c == 1:
			total += 11
			aces++
		default:
			total += c
		}
	}
	for total > BlackjackBustThreshold && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

func formatCards(cards []int) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, " + ")
}

func (s *blackjackService) Start(ctx context.Context, userID string) (*models.GameResponse, error) {
	var resp *models.GameResponse
	err := s.ledger.Do(userID, func(a *ledger.Account) error {
		if err := a.Debit(BlackjackWager, "blackjack_wager"); err != nil {
			return fmt.Errorf("blackjack start: %w", err)
		}

		// A new start supersedes any session still in progress; the
		// old wager stays spent.
		sess := &models.BlackjackSession{
			PlayerCards: []int{s.drawCard(), s.drawCard()},
			DealerCards: []int{s.drawCard()},
			Wager:       BlackjackWager,
		}
		a.SetSession(sess)

		playerTotal := handTotal(sess.PlayerCards)
		dealerTotal := handTotal(sess.DealerCards)
		resp = &models.GameResponse{
			Message: fmt.Sprintf("🃏 Cards dealt! Your hand: %s (total %d). Dealer shows %d. Hit or stand?",
				formatCards(sess.PlayerCards), playerTotal, sess.DealerCards[0]),
			NewBalance:  a.Balance(),
			GameState:   models.GameStateActive,
			Wager:       BlackjackWager,
			PlayerTotal: playerTotal,
			DealerTotal: dealerTotal,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *blackjackService) Hit(ctx context.Context, userID string) (*models.GameResponse, error) {
	var resp *models.GameResponse
	err := s.ledger.Do(userID, func(a *ledger.Account) error {
		sess := a.Session()
		if sess == nil {
			return fmt.Errorf("blackjack hit: %w", models.ErrNoActiveGame)
		}
		if sess.Over {
			return fmt.Errorf("blackjack hit: %w", models.ErrGameAlreadyOver)
		}

		card := s.drawCard()
		sess.PlayerCards = append(sess.PlayerCards, card)
		playerTotal := handTotal(sess.PlayerCards)

		if playerTotal > BlackjackBustThreshold {
			sess.Over = true
			a.Publish(events.BlackjackResolvedEvent{
				UserID:      userID,
				Outcome:     models.GameStateLose,
				Wager:       sess.Wager,
				PlayerTotal: playerTotal,
				DealerTotal: handTotal(sess.DealerCards),
			})
			a.ClearSession()
			resp = &models.GameResponse{
				Message: fmt.Sprintf("🃏 You drew a %d and busted with %d! You lost %d coins.",
					card, playerTotal, sess.Wager),
				NewBalance:  a.Balance(),
				Result:      models.ResultLose,
				GameState:   models.GameStateLose,
				Wager:       sess.Wager,
				PlayerTotal: playerTotal,
			}
			return nil
		}

		resp = &models.GameResponse{
			Message: fmt.Sprintf("🃏 You drew a %d. Your hand: %s (total %d). Hit or stand?",
				card, formatCards(sess.PlayerCards), playerTotal),
			NewBalance:  a.Balance(),
			GameState:   models.GameStateActive,
			Wager:       sess.Wager,
			PlayerTotal: playerTotal,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *blackjackService) Stand(ctx context.Context, userID string) (*models.GameResponse, error) {
	var resp *models.GameResponse
	err := s.ledger.Do(userID, func(a *ledger.Account) error {
		sess := a.Session()
		if sess == nil {
			return fmt.Errorf("blackjack stand: %w", models.ErrNoActiveGame)
		}
		if sess.Over {
			return fmt.Errorf("blackjack stand: %w", models.ErrGameAlreadyOver)
		}
		sess.Over = true

		// Dealer draws until reaching 17, then never again.
		for handTotal(sess.DealerCards) < DealerStandThreshold {
			sess.DealerCards = append(sess.DealerCards, s.drawCard())
		}

		playerTotal := handTotal(sess.PlayerCards)
		dealerTotal := handTotal(sess.DealerCards)

		var outcome, result, message string
		var payout int64
		switch {
		case dealerTotal > BlackjackBustThreshold || playerTotal > dealerTotal:
			payout = BlackjackPayout * sess.Wager
			outcome, result = models.GameStateWin, models.ResultWin
			if dealerTotal > BlackjackBustThreshold {
				message = fmt.Sprintf("🃏 Dealer busted with %d! You won %d coins.", dealerTotal, payout)
			} else {
				message = fmt.Sprintf("🃏 You stood at %d, dealer got %d. You won %d coins!", playerTotal, dealerTotal, payout)
			}
		case playerTotal == dealerTotal:
			payout = sess.Wager
			outcome, result = models.GameStateTie, models.ResultTie
			message = fmt.Sprintf("🃏 Push! Both hands total %d. Your %d coins are returned.", playerTotal, sess.Wager)
		default:
			outcome, result = models.GameStateLose, models.ResultLose
			message = fmt.Sprintf("🃏 You stood at %d, dealer got %d. You lost %d coins.", playerTotal, dealerTotal, sess.Wager)
		}

		newBalance := a.Balance()
		if payout > 0 {
			newBalance = a.Credit(payout, "blackjack_payout")
		}

		a.Publish(events.BlackjackResolvedEvent{
			UserID:      userID,
			Outcome:     outcome,
			Wager:       sess.Wager,
			Payout:      payout,
			PlayerTotal: playerTotal,
			DealerTotal: dealerTotal,
		})
		a.ClearSession()

		resp = &models.GameResponse{
			Message:     message,
			NewBalance:  newBalance,
			Result:      result,
			GameState:   outcome,
			Wager:       sess.Wager,
			PlayerTotal: playerTotal,
			DealerTotal: dealerTotal,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
