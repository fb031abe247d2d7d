package models

// Game result tags surfaced in responses.
const (
	ResultWin     = "win"
	ResultLose    = "lose"
	ResultTie     = "tie"
	ResultSuccess = "success"
	ResultNothing = "nothing"
)

// GameResponse is the payload returned for every handled command. The
// message and new_balance fields are always present; the rest are
// game-specific. Field names follow the chat API wire format.
type GameResponse struct {
	Message     string `json:"response"`
	NewBalance  int64  `json:"new_balance"`
	Result      string `json:"result,omitempty"`
	GameState   string `json:"game_state,omitempty"`
	Wager       int64  `json:"wager,omitempty"`
	Prediction  string `json:"prediction,omitempty"`
	Roll        int    `json:"roll,omitempty"`
	Reward      int64  `json:"reward,omitempty"`
	LootTier    string `json:"loot_tier,omitempty"`
	LootName    string `json:"loot_name,omitempty"`
	PlayerTotal int    `json:"player_total,omitempty"`
	DealerTotal int    `json:"dealer_total,omitempty"`
}
