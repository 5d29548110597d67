package domain

// InventoryItem is one owned instance of a catalog item. InstanceID is
// unique per acquisition so duplicate weapons/consumables stay
// individually addressable.
type InventoryItem struct {
	InstanceID string   `json:"instance_id"`
	ItemName   string   `json:"item_name"`
	Type       ItemType `json:"type"`
}

// Robot is the player's persistent robot. Stat fields hold the working
// values; effective stats (base + gear) are derived on demand and never
// stored here.
type Robot struct {
	Health        int             `json:"health"`
	MaxHealth     int             `json:"max_health"`
	Energy        int             `json:"energy"`
	MaxEnergy     int             `json:"max_energy"`
	Defence       int             `json:"defence"`
	Attack        int             `json:"attack"`
	Hands         int             `json:"hands"`
	Dodge         int             `json:"dodge"`
	Level         int             `json:"level"`
	Exp           int             `json:"exp"`
	InventorySize int             `json:"inventory_size"`
	Money         int             `json:"money"`
	Wins          int             `json:"wins"`
	Fights        int             `json:"fights"`
	Inventory     []InventoryItem `json:"inventory"`
}

// EffectiveStats are the robot's base stats plus the additive sum of
// equipped gear bonuses. Recomputed whenever needed; inventory changes
// invalidate any previously computed value.
type EffectiveStats struct {
	MaxHealth         int `json:"max_health"`
	MaxEnergy         int `json:"max_energy"`
	Defence           int `json:"defence"`
	Attack            int `json:"attack"`
	Hands             int `json:"hands"`
	Dodge             int `json:"dodge"`
	InventorySize     int `json:"inventory_size"`
	MoneyBonusPercent int `json:"money_bonus_percent"`
}
