package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KidBotBattle_Go/internal/domain"
)

func plannerRobot() domain.BattleRobot {
	return domain.BattleRobot{
		Name:      "Planner",
		Health:    20,
		MaxHealth: 20,
		Energy:    20,
		MaxEnergy: 20,
		Hands:     2,
		Weapons: []domain.BattleWeapon{
			{SlotIndex: 0, Name: "Stick", Damage: 1, EnergyCost: 1, Accuracy: 80, Hands: 1},
			{SlotIndex: 1, Name: "Sword", Damage: 10, EnergyCost: 5, Accuracy: 100, Hands: 2},
		},
	}
}

func TestPlanTurn(t *testing.T) {
	t.Run("picks strongest weapon that fits", func(t *testing.T) {
		action := PlanTurn(plannerRobot())

		assert.Equal(t, domain.ActionAttack, action.MainAction)
		// Sword alone uses both hands; the Stick no longer fits.
		assert.Equal(t, []int{1}, action.WeaponSlots)
	})

	t.Run("fills leftover hands with weaker weapons", func(t *testing.T) {
		r := plannerRobot()
		r.Hands = 3

		action := PlanTurn(r)

		assert.Equal(t, domain.ActionAttack, action.MainAction)
		assert.Equal(t, []int{0, 1}, action.WeaponSlots, "slots come back in ascending order")
	})

	t.Run("respects energy budget", func(t *testing.T) {
		r := plannerRobot()
		r.Energy = 3

		action := PlanTurn(r)

		assert.Equal(t, domain.ActionAttack, action.MainAction)
		assert.Equal(t, []int{0}, action.WeaponSlots)
	})

	t.Run("rests when nothing can fire", func(t *testing.T) {
		r := plannerRobot()
		r.Energy = 0

		action := PlanTurn(r)

		assert.Equal(t, domain.ActionRest, action.MainAction)
		assert.Empty(t, action.WeaponSlots)
	})

	t.Run("rests with no weapons", func(t *testing.T) {
		r := plannerRobot()
		r.Weapons = nil

		action := PlanTurn(r)

		assert.Equal(t, domain.ActionRest, action.MainAction)
	})

	t.Run("skips weapons without ammo", func(t *testing.T) {
		r := plannerRobot()
		r.Weapons = append(r.Weapons, domain.BattleWeapon{
			SlotIndex: 2, Name: "Rocket Launcher", Damage: 15, EnergyCost: 6, Accuracy: 70, Hands: 2,
			Requirements: []string{"Rocket"},
		})

		action := PlanTurn(r)
		assert.Equal(t, []int{1}, action.WeaponSlots, "no Rocket in gear")

		r.Gear = []string{"Rocket"}
		action = PlanTurn(r)
		assert.Equal(t, []int{2}, action.WeaponSlots, "launcher outdamages the sword once loaded")
	})

	t.Run("ammo is a presence check not a budget", func(t *testing.T) {
		r := plannerRobot()
		r.Hands = 4
		r.Weapons = []domain.BattleWeapon{
			{SlotIndex: 0, Name: "Rocket Launcher", Damage: 15, EnergyCost: 6, Accuracy: 70, Hands: 2, Requirements: []string{"Rocket"}},
			{SlotIndex: 1, Name: "Rocket Launcher", Damage: 15, EnergyCost: 6, Accuracy: 70, Hands: 2, Requirements: []string{"Rocket"}},
		}
		r.Gear = []string{"Rocket"}

		action := PlanTurn(r)

		// Both launchers are planned on one rocket; the second fires
		// dry at resolution.
		assert.Equal(t, []int{0, 1}, action.WeaponSlots)
	})

	t.Run("uses every consumable", func(t *testing.T) {
		r := plannerRobot()
		r.Consumables = []domain.BattleConsumable{
			{SlotIndex: 0, Name: "Repair Kit", Effects: domain.ConsumableEffects{HealthRestore: 10}},
			{SlotIndex: 1, Name: "Firecracker", Effects: domain.ConsumableEffects{Damage: 5}},
		}

		action := PlanTurn(r)

		assert.Equal(t, []int{0, 1}, action.ConsumablesUsed)
	})
}

func TestSuggestPlayerAction(t *testing.T) {
	r := plannerRobot()
	require.Equal(t, PlanTurn(r), SuggestPlayerAction(r))
}
