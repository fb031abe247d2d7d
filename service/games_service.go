package service

import (
	"context"
	"fmt"
	"time"

	"moodbot/events"
	"moodbot/ledger"
	"moodbot/models"
)

type gamesService struct {
	ledger *ledger.Ledger
	rng    Source
	now    func() time.Time
}

// NewGamesService creates the service behind the single-shot mini-games.
func NewGamesService(l *ledger.Ledger, rng Source) GamesService {
	return &gamesService{
		ledger: l,
		rng:    rng,
		now:    time.Now,
	}
}

// validateWager applies the shared wager rule: positive and not above
// the current balance.
func validateWager(wager, balance int64) error {
	if wager <= 0 {
		return fmt.Errorf("%w: wager must be positive", models.ErrInvalidWager)
	}
	if wager > balance {
		return fmt.Errorf("%w: wager %d exceeds balance %d", models.ErrInvalidWager, wager, balance)
	}
	return nil
}

func (s *gamesService) Daily(ctx context.Context, userID string) (*models.GameResponse, error) {
	var resp *models.GameResponse
	err := s.ledger.Do(userID, func(a *ledger.Account) error {
		granted, newBalance := a.TryClaimDaily(s.now(), DailyReward)
		if !granted {
			resp = &models.GameResponse{
				Message:    "You already claimed your daily reward.",
				NewBalance: newBalance,
			}
			return nil
		}
		resp = &models.GameResponse{
			Message:    fmt.Sprintf("🎁 %d coins collected!", DailyReward),
			NewBalance: newBalance,
			Result:     models.ResultSuccess,
			Reward:     DailyReward,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *gamesService) Hunt(ctx context.Context, userID string) (*models.GameResponse, error) {
	var resp *models.GameResponse
	err := s.ledger.Do(userID, func(a *ledger.Account) error {
		if err := a.Debit(HuntCost, "hunt_cost"); err != nil {
			return fmt.Errorf("hunt: %w", err)
		}

		entry := huntTable[s.rng.Intn(len(huntTable))]
		newBalance := a.Balance()
		result := models.ResultNothing
		message := fmt.Sprintf("🏹 You found %s. The %d coins are gone.", entry.Name, HuntCost)
		if entry.Reward > 0 {
			newBalance = a.Credit(entry.Reward, "hunt_reward")
			result = models.ResultSuccess
			message = fmt.Sprintf("🏹 You found %s and earned %d coins! %s", entry.Name, entry.Reward, entry.Description)
		}

		a.Publish(events.GamePlayedEvent{
			UserID:     userID,
			Game:       "hunt",
			Result:     result,
			Wager:      HuntCost,
			Payout:     entry.Reward,
			NewBalance: newBalance,
		})
		resp = &models.GameResponse{
			Message:    message,
			NewBalance: newBalance,
			Result:     result,
			Reward:     entry.Reward,
			LootName:   entry.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *gamesService) Fish(ctx context.Context, userID string) (*models.GameResponse, error) {
	var resp *models.GameResponse
	err := s.ledger.Do(userID, func(a *ledger.Account) error {
		if err := a.Debit(FishCost, "fish_cost"); err != nil {
			return fmt.Errorf("fish: %w", err)
		}

		entry := fishTable[weightedIndex(s.rng, fishWeights)]
		newBalance := a.Balance()
		result := models.ResultNothing
		message := fmt.Sprintf("🎣 You reeled in %s. %s", entry.Name, entry.Description)
		if entry.Reward > 0 {
			newBalance = a.Credit(entry.Reward, "fish_reward")
			result = models.ResultSuccess
			message = fmt.Sprintf("🎣 You caught %s (%s tier) worth %d coins!", entry.Name, entry.Tier, entry.Reward)
		}

		a.Publish(events.GamePlayedEvent{
			UserID:     userID,
			Game:       "fish",
			Result:     result,
			Wager:      FishCost,
			Payout:     entry.Reward,
			NewBalance: newBalance,
		})
		resp = &models.GameResponse{
			Message:    message,
			NewBalance: newBalance,
			Result:     result,
			Reward:     entry.Reward,
			LootTier:   entry.Tier,
			LootName:   entry.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *gamesService) CoinFlip(ctx context.Context, userID, prediction string, wager int64) (*models.GameResponse, error) {
	if prediction != "heads" && prediction != "tails" {
		return nil, fmt.Errorf("%w: prediction must be heads or tails", models.ErrInvalidCommandFormat)
	}

	var resp *models.GameResponse
	err := s.ledger.Do(userID, func(a *ledger.Account) error {
		if err := validateWager(wager, a.Balance()); err != nil {
			return fmt.Errorf("coin: %w", err)
		}
		if err := a.Debit(wager, "coin_wager"); err != nil {
			return fmt.Errorf("coin: %w", err)
		}

		landed := "tails"
		if s.rng.Intn(2) == 0 {
			landed = "heads"
		}

		newBalance := a.Balance()
		result := models.ResultLose
		var payout int64
		message := fmt.Sprintf("🪙 The coin landed on %s. You lost %d coins.", landed, wager)
		if landed == prediction {
			payout = CoinFlipPayout * wager
			newBalance = a.Credit(payout, "coin_payout")
			result = models.ResultWin
			message = fmt.Sprintf("🪙 The coin landed on %s. You won %d coins!", landed, payout)
		}

		a.Publish(events.GamePlayedEvent{
			UserID:     userID,
			Game:       "coin",
			Result:     result,
			Wager:      wager,
			Payout:     payout,
			NewBalance: newBalance,
		})
		resp = &models.GameResponse{
			Message:    message,
			NewBalance: newBalance,
			Result:     result,
			Wager:      wager,
			Prediction: prediction,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *gamesService) DiceWager(ctx context.Context, userID string, prediction models.DicePrediction, wager int64) (*models.GameResponse, error) {
	var resp *models.GameResponse
	err := s.ledger.Do(userID, func(a *ledger.Account) error {
		if err := validateWager(wager, a.Balance()); err != nil {
			return fmt.Errorf("dice: %w", err)
		}
		if err := a.Debit(wager, "dice_wager"); err != nil {
			return fmt.Errorf("dice: %w", err)
		}

		roll := s.rng.Intn(6) + 1

		newBalance := a.Balance()
		result := models.ResultLose
		var payout int64
		message := fmt.Sprintf("🎲 You rolled a %d. Your prediction %s missed.", roll, prediction)
		if prediction.Matches(roll) {
			multiplier := int64(DiceRangePayout)
			if prediction.Operator == "=" {
				multiplier = DiceExactPayout
			}
			payout = multiplier * wager
			newBalance = a.Credit(payout, "dice_payout")
			result = models.ResultWin
			message = fmt.Sprintf("🎲 You rolled a %d. Your prediction %s paid %dx: %d coins!", roll, prediction, multiplier, payout)
		}

		a.Publish(events.GamePlayedEvent{
			UserID:     userID,
			Game:       "dice",
			Result:     result,
			Wager:      wager,
			Payout:     payout,
			NewBalance: newBalance,
		})
		resp = &models.GameResponse{
			Message:    message,
			NewBalance: newBalance,
			Result:     result,
			Wager:      wager,
			Prediction: prediction.String(),
			Roll:       roll,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
