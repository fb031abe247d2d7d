package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"

	"moodbot/events"
	"moodbot/metrics"
)

// wireEventHandlers attaches the logging and metrics subscribers to the
// event bus.
func wireEventHandlers(bus *events.Bus) {
	bus.Subscribe(events.EventTypeUserCreated, func(ctx context.Context, e events.Event) {
		ev := e.(events.UserCreatedEvent)
		log.WithFields(log.Fields{
			"userID":         ev.UserID,
			"initialBalance": ev.InitialBalance,
		}).Info("User record created")
	})

	bus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, e events.Event) {
		ev := e.(events.BalanceChangeEvent)
		log.WithFields(log.Fields{
			"userID":       ev.UserID,
			"before":       ev.BalanceBefore,
			"after":        ev.BalanceAfter,
			"changeAmount": ev.ChangeAmount,
			"reason":       ev.Reason,
		}).Debug("Balance changed")
	})

	bus.Subscribe(events.EventTypeGamePlayed, func(ctx context.Context, e events.Event) {
		ev := e.(events.GamePlayedEvent)
		metrics.GamesTotal.WithLabelValues(ev.Game, ev.Result).Inc()
		if ev.Payout > 0 {
			metrics.PayoutCoinsTotal.WithLabelValues(ev.Game).Add(float64(ev.Payout))
		}
		log.WithFields(log.Fields{
			"userID":     ev.UserID,
			"game":       ev.Game,
			"result":     ev.Result,
			"wager":      ev.Wager,
			"payout":     ev.Payout,
			"newBalance": ev.NewBalance,
		}).Info("Game played")
	})

	bus.Subscribe(events.EventTypeDailyClaim, func(ctx context.Context, e events.Event) {
		ev := e.(events.DailyClaimEvent)
		metrics.DailyClaimsTotal.Inc()
		log.WithFields(log.Fields{
			"userID":     ev.UserID,
			"amount":     ev.Amount,
			"newBalance": ev.NewBalance,
		}).Info("Daily reward claimed")
	})

	bus.Subscribe(events.EventTypeBlackjackResolved, func(ctx context.Context, e events.Event) {
		ev := e.(events.BlackjackResolvedEvent)
		metrics.GamesTotal.WithLabelValues("blackjack", ev.Outcome).Inc()
		if ev.Payout > 0 {
			metrics.PayoutCoinsTotal.WithLabelValues("blackjack").Add(float64(ev.Payout))
		}
		log.WithFields(log.Fields{
			"userID":      ev.UserID,
			"outcome":     ev.Outcome,
			"wager":       ev.Wager,
			"payout":      ev.Payout,
			"playerTotal": ev.PlayerTotal,
			"dealerTotal": ev.DealerTotal,
		}).Info("Blackjack hand resolved")
	})
}
