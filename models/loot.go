package models

// LootEntry is one row of a loot table. Weights are relative and not
// required to sum to 1 across a table; the sampler normalizes by the
// total weight.
type LootEntry struct {
	Tier        string
	Name        string
	Description string
	Reward      int64
	Weight      float64
}
