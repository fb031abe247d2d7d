package service

import "moodbot/models"

// Fixed costs, rewards and payout multipliers for the game catalog.
const (
	DailyReward = 50

	HuntCost = 15
	FishCost = 10

	CoinFlipPayout = 2 // times the wager

	DiceExactPayout = 5 // "=" predictions
	DiceRangePayout = 2 // any other operator

	BlackjackWager         = 15
	BlackjackPayout        = 2 // times the wager on a win; push refunds 1x
	DealerStandThreshold   = 17
	BlackjackBustThreshold = 21
)

// huntTable is sampled uniformly; a zero reward is a failed hunt.
var huntTable = []models.LootEntry{
	{Name: "a wild boar", Description: "It charged first. Bad call on its part.", Reward: 40},
	{Name: "a rabbit", Description: "Quick, but not quick enough.", Reward: 25},
	{Name: "a deer", Description: "A clean shot at dusk.", Reward: 55},
	{Name: "a majestic elk", Description: "The trophy of a lifetime.", Reward: 70},
	{Name: "a field mouse", Description: "Barely worth the arrow.", Reward: 5},
	{Name: "a pheasant", Description: "Flushed from the tall grass.", Reward: 30},
	{Name: "a squirrel", Description: "It saw you coming a mile away.", Reward: 15},
	{Name: "a fox", Description: "Cunning, but cornered.", Reward: 45},
	{Name: "nothing at all", Description: "The forest was silent today.", Reward: 0},
	{Name: "a fat goose", Description: "It honked its last.", Reward: 35},
}

// fishTable is sampled proportionally to Weight. The weights do not sum
// to 1; the sampler normalizes by their total. Tiers are display-only.
var fishTable = []models.LootEntry{
	{Tier: "S", Name: "a golden koi", Description: "It glitters like treasure.", Reward: 200, Weight: 0.5},
	{Tier: "S", Name: "a giant sturgeon", Description: "It nearly pulled you in.", Reward: 150, Weight: 1},
	{Tier: "A", Name: "a big salmon", Description: "Thrashing and furious.", Reward: 90, Weight: 3},
	{Tier: "A", Name: "a rainbow trout", Description: "A beauty in the morning light.", Reward: 75, Weight: 4},
	{Tier: "A", Name: "a fat catfish", Description: "Whiskers and attitude.", Reward: 60, Weight: 5},
	{Tier: "B", Name: "a striped bass", Description: "A respectable catch.", Reward: 45, Weight: 8},
	{Tier: "B", Name: "a perch", Description: "Dinner, at least.", Reward: 35, Weight: 10},
	{Tier: "B", Name: "a carp", Description: "Not glamorous, but solid.", Reward: 30, Weight: 12},
	{Tier: "C", Name: "a tiny goldfish", Description: "Someone's lost pet, maybe.", Reward: 15, Weight: 15},
	{Tier: "C", Name: "a minnow", Description: "Back it goes.", Reward: 10, Weight: 16},
	{Tier: "C", Name: "a sardine", Description: "One of a million.", Reward: 8, Weight: 14},
	{Tier: "D", Name: "an old boot", Description: "Size 11. Waterlogged.", Reward: 0, Weight: 9},
	{Tier: "D", Name: "a clump of seaweed", Description: "Slimy and worthless.", Reward: 0, Weight: 8},
	{Tier: "D", Name: "a rusty can", Description: "At least you cleaned the lake.", Reward: 2, Weight: 7},
}

var fishWeights = func() []float64 {
	ws := make([]float64, len(fishTable))
	for i, e := range fishTable {
		ws[i] = e.Weight
	}
	return ws
}()
