package domain

// ItemType classifies a catalog entry. Weapons and consumables may be
// owned in multiples; gear is unique per robot.
type ItemType string

const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeGear       ItemType = "gear"
	ItemTypeConsumable ItemType = "consumable"
)

// Weapon is a static catalog definition of an equippable weapon.
// Requirements name gear that is consumed as ammo when firing.
type Weapon struct {
	Name         string   `json:"name" validate:"required"`
	Level        int      `json:"level" validate:"gte=0"`
	MoneyCost    int      `json:"money_cost" validate:"gte=0"`
	Damage       int      `json:"damage" validate:"gte=0"`
	EnergyCost   int      `json:"energy_cost" validate:"gte=0"`
	Accuracy     int      `json:"accuracy" validate:"gte=0"`
	Hands        int      `json:"hands" validate:"gte=1"`
	Requirements []string `json:"requirements,omitempty"`
	Description  string   `json:"description"`
}

// GearEffects are the additive stat bonuses a piece of gear grants
// while it sits in the inventory. Missing fields default to zero.
type GearEffects struct {
	HealthBonus       int `json:"health_bonus,omitempty"`
	EnergyBonus       int `json:"energy_bonus,omitempty"`
	HandsBonus        int `json:"hands_bonus,omitempty"`
	DefenceBonus      int `json:"defence_bonus,omitempty"`
	DodgeBonus        int `json:"dodge_bonus,omitempty"`
	AttackBonus       int `json:"attack_bonus,omitempty"`
	MoneyBonusPercent int `json:"money_bonus_percent,omitempty"`
}

// Gear is a static catalog definition of passive equipment.
// Requirements name prerequisite items that must be owned before buying.
type Gear struct {
	Name         string      `json:"name" validate:"required"`
	Level        int         `json:"level" validate:"gte=0"`
	MoneyCost    int         `json:"money_cost" validate:"gte=0"`
	Requirements []string    `json:"requirements,omitempty"`
	Description  string      `json:"description"`
	Effects      GearEffects `json:"effects"`
}

// ConsumableEffects describe what applying a consumable does. A single
// consumable may set several fields; all of them apply.
type ConsumableEffects struct {
	HealthRestore       int `json:"health_restore,omitempty"`
	Damage              int `json:"damage,omitempty"`
	EnemyDodgeReduction int `json:"enemy_dodge_reduction,omitempty"`
}

// Consumable is a static catalog definition of a single-use battle item.
type Consumable struct {
	Name        string            `json:"name" validate:"required"`
	Level       int               `json:"level" validate:"gte=0"`
	MoneyCost   int               `json:"money_cost" validate:"gte=0"`
	Description string            `json:"description"`
	Effects     ConsumableEffects `json:"effects"`
}

// Item is the type-agnostic view of any catalog entry, used by the shop
// and inventory where only the shared fields matter.
type Item struct {
	Type         ItemType `json:"type"`
	Name         string   `json:"name"`
	Level        int      `json:"level"`
	MoneyCost    int      `json:"money_cost"`
	Requirements []string `json:"requirements,omitempty"`
	Description  string   `json:"description"`
}

// AsItem converts a weapon to its catalog view.
func (w Weapon) AsItem() Item {
	return Item{
		Type:         ItemTypeWeapon,
		Name:         w.Name,
		Level:        w.Level,
		MoneyCost:    w.MoneyCost,
		Requirements: w.Requirements,
		Description:  w.Description,
	}
}

// AsItem converts gear to its catalog view.
func (g Gear) AsItem() Item {
	return Item{
		Type:         ItemTypeGear,
		Name:         g.Name,
		Level:        g.Level,
		MoneyCost:    g.MoneyCost,
		Requirements: g.Requirements,
		Description:  g.Description,
	}
}

// AsItem converts a consumable to its catalog view.
func (c Consumable) AsItem() Item {
	return Item{
		Type:        ItemTypeConsumable,
		Name:        c.Name,
		Level:       c.Level,
		MoneyCost:   c.MoneyCost,
		Description: c.Description,
	}
}
