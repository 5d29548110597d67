// Package robot creates player robots and derives their effective
// stats from owned gear.
package robot

import (
	"fmt"
	"strings"

	"github.com/osse101/KidBotBattle_Go/internal/catalog"
	"github.com/osse101/KidBotBattle_Go/internal/domain"
)

// New returns a fresh robot with default chassis stats, starting money
// and an empty inventory. Working stats start at their maximums.
func New() domain.Robot {
	return domain.Robot{
		Health:        domain.DefaultHealth,
		MaxHealth:     domain.DefaultHealth,
		Energy:        domain.DefaultEnergy,
		MaxEnergy:     domain.DefaultEnergy,
		Defence:       domain.DefaultDefence,
		Attack:        domain.DefaultAttack,
		Hands:         domain.DefaultHands,
		Dodge:         domain.DefaultDodge,
		Level:         0,
		Exp:           0,
		InventorySize: domain.DefaultInventorySize,
		Money:         domain.StartingMoney,
		Inventory:     []domain.InventoryItem{},
	}
}

// EffectiveStats derives the robot's stats from the default chassis
// values plus the additive bonuses of every gear item in the
// inventory. It always starts from the defaults, never from the
// robot's working fields, so selling gear cleanly drops its bonus.
// Inventory entries whose gear no longer exists in the catalog are
// skipped.
func EffectiveStats(r domain.Robot, reg *catalog.Registry) domain.EffectiveStats {
	stats := domain.EffectiveStats{
		MaxHealth:     domain.DefaultHealth,
		MaxEnergy:     domain.DefaultEnergy,
		Defence:       domain.DefaultDefence,
		Attack:        domain.DefaultAttack,
		Hands:         domain.DefaultHands,
		Dodge:         domain.DefaultDodge,
		InventorySize: domain.DefaultInventorySize,
	}

	for _, owned := range r.Inventory {
		if owned.Type != domain.ItemTypeGear {
			continue
		}
		g, err := reg.Gear(owned.ItemName)
		if err != nil {
			continue
		}
		stats.MaxHealth += g.Effects.HealthBonus
		stats.MaxEnergy += g.Effects.EnergyBonus
		stats.Hands += g.Effects.HandsBonus
		stats.Defence += g.Effects.DefenceBonus
		stats.Dodge += g.Effects.DodgeBonus
		stats.Attack += g.Effects.AttackBonus
		stats.MoneyBonusPercent += g.Effects.MoneyBonusPercent
	}

	return stats
}

// Heal restores the robot to full fighting condition: effective stats
// are recomputed and copied onto the working fields, with health and
// energy set to their maximums.
func Heal(r domain.Robot, reg *catalog.Registry) domain.Robot {
	stats := EffectiveStats(r, reg)

	r.MaxHealth = stats.MaxHealth
	r.Health = stats.MaxHealth
	r.MaxEnergy = stats.MaxEnergy
	r.Energy = stats.MaxEnergy
	r.Defence = stats.Defence
	r.Attack = stats.Attack
	r.Hands = stats.Hands
	r.Dodge = stats.Dodge
	r.InventorySize = stats.InventorySize

	return r
}

// LevelFor maps accumulated experience to a level.
func LevelFor(exp int) int {
	return exp / domain.ExpPerLevel
}

// FormatStats renders the robot's stat sheet as plain text. Current
// health and energy come from the working fields; everything else is
// the effective (gear-adjusted) value.
func FormatStats(r domain.Robot, name string, reg *catalog.Registry) string {
	stats := EffectiveStats(r, reg)
	lines := []string{
		fmt.Sprintf("=== %s ===", name),
		fmt.Sprintf("Level: %d (Exp: %d/%d)", r.Level, r.Exp, (r.Level+1)*domain.ExpPerLevel),
		fmt.Sprintf("♥ Health: %d/%d", r.Health, stats.MaxHealth),
		fmt.Sprintf("⚡ Energy: %d/%d", r.Energy, stats.MaxEnergy),
		fmt.Sprintf("Defence: %d | Attack: %d | Dodge: %d", stats.Defence, stats.Attack, stats.Dodge),
		fmt.Sprintf("Hands: %d | Inventory: %d/%d", stats.Hands, len(r.Inventory), stats.InventorySize),
		fmt.Sprintf("Money: $%d | Wins: %d | Fights: %d", r.Money, r.Wins, r.Fights),
	}
	return strings.Join(lines, "\n")
}
