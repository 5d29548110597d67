// Package battle runs the battle state machine: starting a fight,
// resolving whole turns, and paying out rewards.
package battle

import (
	"fmt"

	"github.com/osse101/KidBotBattle_Go/internal/ai"
	"github.com/osse101/KidBotBattle_Go/internal/catalog"
	"github.com/osse101/KidBotBattle_Go/internal/combat"
	"github.com/osse101/KidBotBattle_Go/internal/domain"
	"github.com/osse101/KidBotBattle_Go/internal/robot"
)

// AvailableEnemies lists the opponents the player can challenge.
func AvailableEnemies(reg *catalog.Registry) []domain.Enemy {
	return reg.Enemies()
}

// Start opens a battle against the named enemy. The player enters with
// current health and energy; the enemy always starts fresh.
func Start(state domain.GameState, enemyName string, reg *catalog.Registry) (domain.GameState, error) {
	enemy, err := reg.Enemy(enemyName)
	if err != nil {
		return state, err
	}

	state.Phase = domain.PhaseBattle
	state.Battle = &domain.BattleState{
		EnemyName:   enemyName,
		Player:      newBattleRobot(state.PlayerName, state.Robot, reg),
		Enemy:       newBattleRobot(enemy.Name, enemyRobot(enemy, reg), reg),
		Turn:        1,
		CombatLog:   []domain.TurnResult{},
		TurnHistory: []domain.TurnSnapshot{},
		Outcome:     domain.OutcomeOngoing,
	}

	return state, nil
}

// ResolveTurn plays out one full turn: both sides' consumables, then
// the two main actions in random order, then the outcome check. The
// combat log is replaced each turn; HP snapshots accumulate.
func ResolveTurn(state domain.GameState, playerAction domain.TurnAction, reg *catalog.Registry, rnd domain.RandomFn) (domain.GameState, error) {
	if state.Battle == nil || state.Battle.Outcome != domain.OutcomeOngoing {
		return state, domain.ErrNoActiveBattle
	}

	b := *state.Battle
	player := b.Player
	enemy := b.Enemy
	var log []domain.TurnResult

	if playerAction.MainAction == domain.ActionSurrender {
		log = append(log, domain.TurnResult{Actor: player.Name, Action: domain.ActionSurrender})
		b.CombatLog = log
		b.Outcome = domain.OutcomeDefeat
		state.Battle = &b
		state.Robot.Fights++
		return state, nil
	}

	if playerAction.MainAction == domain.ActionAttack {
		if err := combat.ValidateWeaponSelection(player, playerAction.WeaponSlots); err != nil {
			return state, err
		}
	}

	// Consumables resolve for both sides before initiative is drawn.
	// Slots are checked against the current list, so an index shifted
	// out by an earlier removal is silently skipped.
	for _, slot := range playerAction.ConsumablesUsed {
		p, e, name, effect, err := combat.ResolveConsumable(player, enemy, slot)
		if err != nil {
			continue
		}
		player, enemy = p, e
		log = append(log, domain.TurnResult{
			Actor:            player.Name,
			Action:           domain.ActionConsumable,
			ConsumableName:   name,
			ConsumableEffect: effect,
		})
	}

	enemyAction := ai.PlanTurn(enemy)
	for _, slot := range enemyAction.ConsumablesUsed {
		e, p, name, effect, err := combat.ResolveConsumable(enemy, player, slot)
		if err != nil {
			continue
		}
		enemy, player = e, p
		log = append(log, domain.TurnResult{
			Actor:            enemy.Name,
			Action:           domain.ActionConsumable,
			ConsumableName:   name,
			ConsumableEffect: effect,
		})
	}

	order := []bool{true, false} // player first
	if rnd() < 0.5 {
		order[0], order[1] = order[1], order[0]
	}

	for _, isPlayer := range order {
		if player.Health <= 0 || enemy.Health <= 0 {
			break
		}

		action := playerAction
		if !isPlayer {
			action = enemyAction
		}

		if action.MainAction == domain.ActionAttack && len(action.WeaponSlots) > 0 {
			var results []domain.WeaponResult
			var actorName string
			if isPlayer {
				player, enemy, results = combat.ResolveAttack(player, enemy, action.WeaponSlots, rnd)
				actorName = player.Name
			} else {
				enemy, player, results = combat.ResolveAttack(enemy, player, action.WeaponSlots, rnd)
				actorName = enemy.Name
			}
			log = append(log, domain.TurnResult{
				Actor:         actorName,
				Action:        domain.ActionAttack,
				WeaponResults: results,
			})
		} else {
			var restored int
			var actorName string
			if isPlayer {
				player, restored = combat.ResolveRest(player)
				actorName = player.Name
			} else {
				enemy, restored = combat.ResolveRest(enemy)
				actorName = enemy.Name
			}
			log = append(log, domain.TurnResult{
				Actor:          actorName,
				Action:         domain.ActionRest,
				EnergyRestored: restored,
			})
		}
	}

	snapshot := domain.TurnSnapshot{
		Turn:        b.Turn,
		PlayerHP:    player.Health,
		PlayerMaxHP: player.MaxHealth,
		EnemyHP:     enemy.Health,
		EnemyMaxHP:  enemy.MaxHealth,
	}

	if enemy.Health <= 0 {
		enemyDef, err := reg.Enemy(b.EnemyName)
		if err != nil {
			return state, fmt.Errorf("battle enemy vanished from catalog: %w", err)
		}
		rewards, updated := applyVictory(state.Robot, enemyDef, b.Player, playerAction.ConsumablesUsed)
		b.Outcome = domain.OutcomeVictory
		b.Rewards = &rewards
		state.Robot = updated
	} else if player.Health <= 0 {
		b.Outcome = domain.OutcomeDefeat
		state.Robot.Fights++
	}

	b.Player = player
	b.Enemy = enemy
	b.Turn++
	b.CombatLog = log
	b.TurnHistory = append(b.TurnHistory, snapshot)
	state.Battle = &b

	return state, nil
}

// End returns to the menu, discarding the battle state. Rewards were
// already applied when the outcome was decided.
func End(state domain.GameState) domain.GameState {
	state.Phase = domain.PhaseMenu
	state.Battle = nil
	return state
}

// applyVictory pays out money (with the Money Maker bonus), experience
// and level-ups, bumps the win counters, and removes the consumables
// spent on the winning turn from the persistent inventory.
func applyVictory(r domain.Robot, enemy domain.Enemy, playerAtTurnStart domain.BattleRobot, consumablesUsed []int) (domain.Rewards, domain.Robot) {
	bonusPercent := 0
	for _, owned := range r.Inventory {
		if owned.ItemName == domain.ItemMoneyMaker {
			bonusPercent += domain.MoneyMakerBonusPercent
		}
	}
	totalMoney := enemy.Reward + enemy.Reward*bonusPercent/100

	newExp := r.Exp + enemy.ExpReward
	newLevel := robot.LevelFor(newExp)
	rewards := domain.Rewards{
		Money:     totalMoney,
		Exp:       enemy.ExpReward,
		LeveledUp: newLevel > r.Level,
		NewLevel:  newLevel,
	}

	r.Money += totalMoney
	r.Exp = newExp
	r.Level = newLevel
	r.Wins++
	r.Fights++

	// One persistent copy goes per distinct consumable name used this
	// turn, resolved against the start-of-turn battle slots.
	seen := make(map[string]bool)
	var consumedNames []string
	for _, slot := range consumablesUsed {
		if slot < 0 || slot >= len(playerAtTurnStart.Consumables) {
			continue
		}
		name := playerAtTurnStart.Consumables[slot].Name
		if !seen[name] {
			seen[name] = true
			consumedNames = append(consumedNames, name)
		}
	}

	inv := make([]domain.InventoryItem, len(r.Inventory))
	copy(inv, r.Inventory)
	for _, name := range consumedNames {
		for i, owned := range inv {
			if owned.Type == domain.ItemTypeConsumable && owned.ItemName == name {
				inv = append(inv[:i], inv[i+1:]...)
				break
			}
		}
	}
	r.Inventory = inv

	return rewards, r
}

// newBattleRobot materializes a battle snapshot from a persistent
// robot: current health and energy, effective maximums, and inventory
// items expanded into battle slots.
func newBattleRobot(name string, r domain.Robot, reg *catalog.Registry) domain.BattleRobot {
	stats := robot.EffectiveStats(r, reg)

	var weaponNames, gearNames, consumableNames []string
	for _, owned := range r.Inventory {
		switch owned.Type {
		case domain.ItemTypeWeapon:
			weaponNames = append(weaponNames, owned.ItemName)
		case domain.ItemTypeGear:
			gearNames = append(gearNames, owned.ItemName)
		case domain.ItemTypeConsumable:
			consumableNames = append(consumableNames, owned.ItemName)
		}
	}

	return domain.BattleRobot{
		Name:        name,
		Health:      r.Health,
		MaxHealth:   stats.MaxHealth,
		Energy:      r.Energy,
		MaxEnergy:   stats.MaxEnergy,
		Defence:     stats.Defence,
		Attack:      stats.Attack,
		Hands:       stats.Hands,
		Dodge:       stats.Dodge,
		Weapons:     buildBattleWeapons(weaponNames, reg),
		Gear:        gearNames,
		Consumables: buildBattleConsumables(consumableNames, reg),
	}
}

// enemyRobot expands a static enemy definition into a persistent-robot
// shape so the same battle factory serves both sides. The enemy is
// healed to its gear-adjusted maximums.
func enemyRobot(e domain.Enemy, reg *catalog.Registry) domain.Robot {
	r := robot.New()
	for _, name := range e.Weapons {
		r.Inventory = append(r.Inventory, domain.InventoryItem{ItemName: name, Type: domain.ItemTypeWeapon})
	}
	for _, name := range e.Gear {
		r.Inventory = append(r.Inventory, domain.InventoryItem{ItemName: name, Type: domain.ItemTypeGear})
	}
	for _, name := range e.Consumables {
		r.Inventory = append(r.Inventory, domain.InventoryItem{ItemName: name, Type: domain.ItemTypeConsumable})
	}
	return robot.Heal(r, reg)
}

func buildBattleWeapons(names []string, reg *catalog.Registry) []domain.BattleWeapon {
	var out []domain.BattleWeapon
	for i, name := range names {
		w, err := reg.Weapon(name)
		if err != nil {
			continue
		}
		out = append(out, domain.BattleWeapon{
			SlotIndex:    i,
			Name:         w.Name,
			Damage:       w.Damage,
			EnergyCost:   w.EnergyCost,
			Accuracy:     w.Accuracy,
			Hands:        w.Hands,
			Requirements: w.Requirements,
		})
	}
	return out
}

func buildBattleConsumables(names []string, reg *catalog.Registry) []domain.BattleConsumable {
	var out []domain.BattleConsumable
	for i, name := range names {
		c, err := reg.Consumable(name)
		if err != nil {
			continue
		}
		out = append(out, domain.BattleConsumable{
			SlotIndex: i,
			Name:      c.Name,
			Effects:   c.Effects,
		})
	}
	return out
}
