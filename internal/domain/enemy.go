package domain

// Enemy is a static opponent definition. Item references are resolved
// against the catalog when a battle starts; the enemy robot itself is
// never persisted.
type Enemy struct {
	Name        string   `json:"name" validate:"required"`
	Level       int      `json:"level" validate:"gte=0"`
	Weapons     []string `json:"weapons"`
	Gear        []string `json:"gear"`
	Consumables []string `json:"consumables"`
	Reward      int      `json:"reward" validate:"gte=0"`
	ExpReward   int      `json:"exp_reward" validate:"gte=0"`
	Description string   `json:"description"`
}
