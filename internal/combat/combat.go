// Package combat resolves individual battle actions: attacks, resting
// and consumable use. Every function is pure; randomness comes in
// through domain.RandomFn and state flows out as new values.
package combat

import (
	"fmt"
	"math"

	"github.com/osse101/KidBotBattle_Go/internal/domain"
)

// HitChance is (accuracy - dodge) / 100, deliberately unclamped: a
// fast defender pushes the chance below zero and a 100+ accuracy
// weapon against a slow target cannot miss.
func HitChance(accuracy, dodge int) float64 {
	return float64(accuracy-dodge) / 100.0
}

// Damage computes the damage one weapon hit deals: base damage scaled
// by the attacker's attack percentage, minus the defender's defence,
// floored and never negative.
func Damage(base, attack, defence int) int {
	raw := float64(base)*(1.0+float64(attack)/100.0) - float64(defence)
	if raw < 0 {
		return 0
	}
	return int(math.Floor(raw))
}

// ResolveAttack fires the attacker's selected weapon slots in order
// against the defender. Energy is spent per weapon whether or not it
// connects. A weapon with an ammo requirement consumes one matching
// gear entry per shot; with no ammo available it still spends energy
// but auto-misses without drawing a random number.
func ResolveAttack(attacker, defender domain.BattleRobot, slots []int, rnd domain.RandomFn) (domain.BattleRobot, domain.BattleRobot, []domain.WeaponResult) {
	results := make([]domain.WeaponResult, 0, len(slots))

	for _, slot := range slots {
		if slot < 0 || slot >= len(attacker.Weapons) {
			continue
		}
		w := attacker.Weapons[slot]
		attacker.Energy -= w.EnergyCost

		if len(w.Requirements) > 0 {
			ammo := w.Requirements[0]
			gear, ok := removeFirst(attacker.Gear, ammo)
			if !ok {
				results = append(results, domain.WeaponResult{WeaponName: w.Name})
				continue
			}
			attacker.Gear = gear
		}

		if rnd() >= HitChance(w.Accuracy, defender.Dodge) {
			results = append(results, domain.WeaponResult{WeaponName: w.Name})
			continue
		}

		dmg := Damage(w.Damage, attacker.Attack, defender.Defence)
		defender.Health -= dmg
		if defender.Health < 0 {
			defender.Health = 0
		}

		results = append(results, domain.WeaponResult{
			WeaponName: w.Name,
			Hit:        true,
			Damage:     dmg,
		})
	}

	return attacker, defender, results
}

// ResolveRest restores a flat amount of energy, capped at max.
func ResolveRest(r domain.BattleRobot) (domain.BattleRobot, int) {
	restored := domain.RestEnergyRestore
	if room := r.MaxEnergy - r.Energy; room < restored {
		restored = room
	}
	if restored < 0 {
		restored = 0
	}
	r.Energy += restored
	return r, restored
}

// ResolveConsumable applies the consumable in the given slot and
// removes it from the user. Effects apply in a fixed order: health
// restore, direct damage, then enemy dodge reduction. The returned
// description reflects the last effect that applied. Health restore
// is not capped at max health, and dodge reduction can push the
// opponent's dodge negative, raising hit chances above the weapon's
// accuracy.
func ResolveConsumable(user, opponent domain.BattleRobot, slot int) (domain.BattleRobot, domain.BattleRobot, string, string, error) {
	if slot < 0 || slot >= len(user.Consumables) {
		return user, opponent, "", "", fmt.Errorf("%w: %d", domain.ErrInvalidConsumableSlot, slot)
	}
	c := user.Consumables[slot]
	desc := ""

	if c.Effects.HealthRestore > 0 {
		user.Health += c.Effects.HealthRestore
		desc = fmt.Sprintf("+%d health", c.Effects.HealthRestore)
	}
	if c.Effects.Damage > 0 {
		opponent.Health -= c.Effects.Damage
		if opponent.Health < 0 {
			opponent.Health = 0
		}
		desc = fmt.Sprintf("%d damage to %s", c.Effects.Damage, opponent.Name)
	}
	if c.Effects.EnemyDodgeReduction > 0 {
		opponent.Dodge -= c.Effects.EnemyDodgeReduction
		desc = fmt.Sprintf("-%d dodge to %s", c.Effects.EnemyDodgeReduction, opponent.Name)
	}

	remaining := make([]domain.BattleConsumable, 0, len(user.Consumables)-1)
	remaining = append(remaining, user.Consumables[:slot]...)
	remaining = append(remaining, user.Consumables[slot+1:]...)
	user.Consumables = remaining

	return user, opponent, c.Name, desc, nil
}

// ValidateWeaponSelection checks an attack's weapon slots against the
// robot's current loadout. Checks run in a fixed order so the player
// always sees the most specific problem first.
func ValidateWeaponSelection(r domain.BattleRobot, slots []int) error {
	seen := make(map[int]bool, len(slots))
	for _, slot := range slots {
		if seen[slot] {
			return fmt.Errorf("%w: Cannot use the same weapon twice", domain.ErrInvalidWeaponSelection)
		}
		seen[slot] = true
	}

	for _, slot := range slots {
		if slot < 0 || slot >= len(r.Weapons) {
			return fmt.Errorf("%w: Invalid weapon slot: %d", domain.ErrInvalidWeaponSelection, slot+1)
		}
	}

	hands, energy := 0, 0
	for _, slot := range slots {
		hands += r.Weapons[slot].Hands
		energy += r.Weapons[slot].EnergyCost
	}
	if hands > r.Hands {
		return fmt.Errorf("%w: Not enough hands for selected weapons", domain.ErrInvalidWeaponSelection)
	}
	if energy > r.Energy {
		return fmt.Errorf("%w: Not enough energy for selected weapons", domain.ErrInvalidWeaponSelection)
	}

	return nil
}

func removeFirst(gear []string, name string) ([]string, bool) {
	for i, g := range gear {
		if g == name {
			out := make([]string, 0, len(gear)-1)
			out = append(out, gear[:i]...)
			out = append(out, gear[i+1:]...)
			return out, true
		}
	}
	return gear, false
}
