package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/osse101/KidBotBattle_Go/internal/domain"
)

var (
	purple = color.New(color.FgMagenta).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

const hpBarWidth = 20

// hpBar renders a fixed-width health bar like [████████░░░░] 8/12.
func hpBar(current, max int) string {
	ratio := 0.0
	if max > 0 {
		ratio = float64(current) / float64(max)
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * hpBarWidth))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", hpBarWidth-filled)
	return fmt.Sprintf("[%s] %d/%d", bar, current, max)
}

func turnHeader(turn int) string {
	return yellow(fmt.Sprintf("════════════ TURN %d ════════════", turn))
}

func sectionHeader(title string) string {
	return yellow(fmt.Sprintf("═══ %s ═══", title))
}

func formatBattleStatus(player, enemy domain.BattleRobot) string {
	lines := []string{
		fmt.Sprintf("%s  ♥ %s  ⚡ %s",
			purple(player.Name),
			cyan(hpBar(player.Health, player.MaxHealth)),
			cyan(fmt.Sprintf("%d/%d", player.Energy, player.MaxEnergy))),
		fmt.Sprintf("%s   ♥ %s  ⚡ %s",
			purple(enemy.Name),
			cyan(hpBar(enemy.Health, enemy.MaxHealth)),
			cyan(fmt.Sprintf("%d/%d", enemy.Energy, enemy.MaxEnergy))),
	}
	return strings.Join(lines, "\n")
}

func formatCombatLog(log []domain.TurnResult) string {
	var lines []string
	for _, entry := range log {
		switch entry.Action {
		case domain.ActionAttack:
			lines = append(lines, fmt.Sprintf("%s attacks!", purple(entry.Actor)))
			for _, wr := range entry.WeaponResults {
				if wr.Hit {
					lines = append(lines, fmt.Sprintf("  %s hits for %s damage", wr.WeaponName, red(fmt.Sprint(wr.Damage))))
				} else {
					lines = append(lines, fmt.Sprintf("  %s %s", wr.WeaponName, dim("misses!")))
				}
			}
		case domain.ActionRest:
			lines = append(lines, fmt.Sprintf("%s rests. %s ⚡", purple(entry.Actor), green(fmt.Sprintf("+%d", entry.EnergyRestored))))
		case domain.ActionSurrender:
			lines = append(lines, fmt.Sprintf("%s surrenders!", purple(entry.Actor)))
		case domain.ActionConsumable:
			lines = append(lines, fmt.Sprintf("%s uses %s! %s", purple(entry.Actor), entry.ConsumableName, entry.ConsumableEffect))
		}
	}
	return strings.Join(lines, "\n")
}

func formatVictorySummary(history []domain.TurnSnapshot, playerName, enemyName string, rewards domain.Rewards) string {
	lines := []string{
		"",
		green(bold("*** VICTORY! ***")),
		"",
		yellow("── Battle Summary ──"),
	}

	for _, snap := range history {
		lines = append(lines, fmt.Sprintf("Turn %d: %s %d/%d, %s %d/%d",
			snap.Turn, playerName, snap.PlayerHP, snap.PlayerMaxHP, enemyName, snap.EnemyHP, snap.EnemyMaxHP))
	}

	lines = append(lines,
		"",
		yellow("── Rewards ──"),
		fmt.Sprintf("+%d exp", rewards.Exp),
		fmt.Sprintf("+%s", purple(fmt.Sprintf("$%d", rewards.Money))),
	)

	if rewards.LeveledUp {
		lines = append(lines, "", green(bold(fmt.Sprintf("*** LEVEL UP! Now level %d! ***", rewards.NewLevel))))
	}

	return strings.Join(lines, "\n")
}

func formatDefeat() string {
	return red(bold("\n*** DEFEATED ***\n"))
}

func typePrefix(t domain.ItemType) string {
	switch t {
	case domain.ItemTypeWeapon:
		return "[W]"
	case domain.ItemTypeGear:
		return "[G]"
	default:
		return "[C]"
	}
}

func (a *app) clearScreen() {
	fmt.Fprint(a.out, "\x1b[2J\x1b[H")
}
