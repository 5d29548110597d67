package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/osse101/KidBotBattle_Go/internal/ai"
	"github.com/osse101/KidBotBattle_Go/internal/battle"
	"github.com/osse101/KidBotBattle_Go/internal/combat"
	"github.com/osse101/KidBotBattle_Go/internal/domain"
	"github.com/osse101/KidBotBattle_Go/internal/logger"
	"github.com/osse101/KidBotBattle_Go/internal/robot"
)

func (a *app) battleLoop() error {
	a.clearScreen()
	enemies := battle.AvailableEnemies(a.reg)

	fmt.Fprintln(a.out, "\n"+sectionHeader("CHOOSE OPPONENT"))
	for i, e := range enemies {
		fmt.Fprintf(a.out, "%d. %s (Lv.%d) - %s\n", i+1, purple(e.Name), e.Level, dim(e.Description))
	}
	fmt.Fprintln(a.out, "B. Back")

	input := strings.ToLower(a.ask("\n> "))
	if input == "b" || a.eof {
		return nil
	}

	num, err := strconv.Atoi(input)
	if err != nil || num < 1 || num > len(enemies) {
		fmt.Fprintln(a.out, "Invalid choice.")
		return nil
	}

	enemyName := enemies[num-1].Name
	state, err := battle.Start(a.state, enemyName, a.reg)
	if err != nil {
		return err
	}
	a.state = state
	logger.FromContext(a.ctx).Info("battle started", "enemy", enemyName)

	if a.state.FirstBattle {
		fmt.Fprintln(a.out, cyan("\nTIP: You can just hit Enter to let the AI pick your move"))
		a.state.FirstBattle = false
	}

	for a.state.Battle != nil && a.state.Battle.Outcome == domain.OutcomeOngoing {
		a.clearScreen()
		b := a.state.Battle

		fmt.Fprintln(a.out, turnHeader(b.Turn))
		fmt.Fprintln(a.out, formatBattleStatus(b.Player, b.Enemy))

		if len(b.CombatLog) > 0 {
			fmt.Fprintln(a.out, "\n"+yellow("── Last Turn ──"))
			fmt.Fprintln(a.out, formatCombatLog(b.CombatLog))
		}

		action := a.getPlayerAction()
		if action == nil {
			if a.eof {
				action = &domain.TurnAction{MainAction: domain.ActionSurrender}
			} else {
				continue
			}
		}

		state, err := battle.ResolveTurn(a.state, *action, a.reg, rand.Float64)
		if err != nil {
			fmt.Fprintln(a.out, red(err.Error()))
			continue
		}
		a.state = state
	}

	if b := a.state.Battle; b != nil {
		logger.FromContext(a.ctx).Info("battle finished",
			"enemy", b.EnemyName, "outcome", string(b.Outcome), "turns", len(b.TurnHistory))
		if b.Outcome == domain.OutcomeVictory && b.Rewards != nil {
			fmt.Fprintln(a.out, formatVictorySummary(b.TurnHistory, a.state.PlayerName, b.EnemyName, *b.Rewards))
			fmt.Fprintln(a.out, "\n"+robot.FormatStats(a.state.Robot, a.state.PlayerName, a.reg))
		} else {
			fmt.Fprintln(a.out, formatDefeat())
		}
		a.pause()
	}

	a.state = battle.End(a.state)
	return nil
}

// getPlayerAction prompts for one turn. A nil return means re-prompt.
func (a *app) getPlayerAction() *domain.TurnAction {
	player := a.state.Battle.Player
	suggestion := ai.SuggestPlayerAction(player)

	fmt.Fprintln(a.out, "\n1. Attack")
	fmt.Fprintln(a.out, "2. Use Item")
	fmt.Fprintln(a.out, "3. Rest")
	fmt.Fprintln(a.out, "4. Surrender")

	defaultStr := "[1]"
	switch suggestion.MainAction {
	case domain.ActionAttack:
		defaultStr = fmt.Sprintf("[1:%s]", joinSlots(suggestion.WeaponSlots))
	case domain.ActionRest:
		defaultStr = "[3]"
	}

	input := strings.ToLower(a.ask(fmt.Sprintf("\n%s> ", defaultStr)))
	if a.eof {
		return nil
	}

	switch input {
	case "":
		return &suggestion
	case "4", "q", "quit", "surrender", "forfeit", "give up":
		confirm := strings.ToLower(a.ask("Are you sure you want to surrender? (y/n) "))
		if confirm == "y" {
			return &domain.TurnAction{MainAction: domain.ActionSurrender}
		}
		return nil
	case "3":
		return &domain.TurnAction{MainAction: domain.ActionRest}
	case "2":
		return a.getConsumableAction(player, suggestion)
	case "1":
		action := a.getAttackAction(player, suggestion)
		return &action
	}

	return nil
}

func (a *app) getConsumableAction(player domain.BattleRobot, suggestion domain.TurnAction) *domain.TurnAction {
	if len(player.Consumables) == 0 {
		fmt.Fprintln(a.out, dim("No consumables available."))
		return nil
	}

	fmt.Fprintln(a.out, "\nConsumables:")
	for i, c := range player.Consumables {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, c.Name)
	}

	num, err := strconv.Atoi(a.ask("> "))
	if err != nil || num < 1 || num > len(player.Consumables) {
		return nil
	}

	fmt.Fprintln(a.out, green(fmt.Sprintf("Used %s!", player.Consumables[num-1].Name)))

	main := a.getMainActionAfterConsumable(player, suggestion)
	main.ConsumablesUsed = []int{num - 1}
	return &main
}

func (a *app) getMainActionAfterConsumable(player domain.BattleRobot, suggestion domain.TurnAction) domain.TurnAction {
	fmt.Fprintln(a.out, "\n1. Attack")
	fmt.Fprintln(a.out, "3. Rest")

	switch a.ask("> ") {
	case "", "1":
		return a.getAttackAction(player, suggestion)
	default:
		return domain.TurnAction{MainAction: domain.ActionRest}
	}
}

func (a *app) getAttackAction(player domain.BattleRobot, suggestion domain.TurnAction) domain.TurnAction {
	rest := domain.TurnAction{MainAction: domain.ActionRest}

	if len(player.Weapons) == 0 {
		fmt.Fprintln(a.out, dim("No weapons! Resting instead."))
		return rest
	}

	fmt.Fprintln(a.out, "\nWeapons:")
	for i, w := range player.Weapons {
		fmt.Fprintf(a.out, "  %d. %s (Dmg:%d Acc:%d ⚡%d ✋%d)\n", i+1, w.Name, w.Damage, w.Accuracy, w.EnergyCost, w.Hands)
	}

	input := a.ask(fmt.Sprintf("Select weapons (e.g. 1,2) [%s]> ", joinSlots(suggestion.WeaponSlots)))

	slots := suggestion.WeaponSlots
	if input != "" {
		slots = nil
		for _, part := range strings.Split(input, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				fmt.Fprintln(a.out, red(fmt.Sprintf("Invalid weapon slot: %s", part)))
				return rest
			}
			slots = append(slots, n-1)
		}
	}

	if err := combat.ValidateWeaponSelection(player, slots); err != nil {
		fmt.Fprintln(a.out, red(err.Error()))
		return rest
	}

	return domain.TurnAction{MainAction: domain.ActionAttack, WeaponSlots: slots}
}

// joinSlots renders zero-based weapon slots one-based, comma separated.
func joinSlots(slots []int) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = strconv.Itoa(s + 1)
	}
	return strings.Join(parts, ",")
}
