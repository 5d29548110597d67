// Package ai plans turns for enemy robots. The same planner backs the
// suggested action offered to the player.
package ai

import (
	"sort"

	"github.com/osse101/KidBotBattle_Go/internal/domain"
)

// PlanTurn picks a turn for the given combatant: use every held
// consumable, then attack with the strongest loadout that fits the
// hands and energy budget, or rest when nothing can fire.
func PlanTurn(r domain.BattleRobot) domain.TurnAction {
	action := domain.TurnAction{MainAction: domain.ActionRest}

	for i := range r.Consumables {
		action.ConsumablesUsed = append(action.ConsumablesUsed, i)
	}

	slots := planWeapons(r)
	if len(slots) > 0 {
		action.MainAction = domain.ActionAttack
		action.WeaponSlots = slots
	}

	return action
}

// SuggestPlayerAction is the default move offered to the player when
// they just press enter. It is the same greedy plan the enemy uses.
func SuggestPlayerAction(r domain.BattleRobot) domain.TurnAction {
	return PlanTurn(r)
}

// planWeapons greedily packs weapons by damage, highest first, into
// the remaining hands and energy. Ammo is a presence check only: two
// launchers and one rocket still plans both, and the second fires dry
// at resolution.
func planWeapons(r domain.BattleRobot) []int {
	order := make([]int, len(r.Weapons))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return r.Weapons[order[a]].Damage > r.Weapons[order[b]].Damage
	})

	gear := make(map[string]bool, len(r.Gear))
	for _, g := range r.Gear {
		gear[g] = true
	}

	var picked []int
	hands, energy := r.Hands, r.Energy
	for _, idx := range order {
		w := r.Weapons[idx]
		if w.Hands > hands || w.EnergyCost > energy {
			continue
		}
		if len(w.Requirements) > 0 && !gear[w.Requirements[0]] {
			continue
		}
		picked = append(picked, idx)
		hands -= w.Hands
		energy -= w.EnergyCost
	}

	sort.Ints(picked)
	return picked
}
