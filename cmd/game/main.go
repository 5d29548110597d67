package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/osse101/KidBotBattle_Go/internal/catalog"
	"github.com/osse101/KidBotBattle_Go/internal/config"
	"github.com/osse101/KidBotBattle_Go/internal/domain"
	"github.com/osse101/KidBotBattle_Go/internal/game"
	"github.com/osse101/KidBotBattle_Go/internal/logger"
	"github.com/osse101/KidBotBattle_Go/internal/robot"
)

const title = `
 _  ___     _   ____        _
| |/ (_) __| | | __ )  ___ | |_
| ' /| |/ _' | |  _ \ / _ \| __|
| . \| | (_| | | |_) | (_) | |_
|_|\_\_|\__,_| |____/ \___/ \__|

 ____        _   _   _        ____  _
| __ )  __ _| |_| |_| | ___  / ___|(_)_ __ ___
|  _ \ / _' | __| __| |/ _ \ \___ \| | '_ ' _ \
| |_) | (_| | |_| |_| |  __/  ___) | | | | | | |
|____/ \__,_|\__|\__|_|\___| |____/|_|_| |_| |_|
`

// app bundles the interactive session: input, output, catalog and the
// evolving game state.
type app struct {
	in    *bufio.Scanner
	out   io.Writer
	reg   *catalog.Registry
	state domain.GameState
	ctx   context.Context
	eof   bool
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	color.NoColor = color.NoColor || cfg.NoColor
	logger.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	a := &app{
		in:  bufio.NewScanner(os.Stdin),
		out: os.Stdout,
		reg: catalog.Default(),
		ctx: context.Background(),
	}

	fmt.Fprintf(a.out, "%s\n", title)

	playerName := cfg.PlayerName
	for strings.TrimSpace(playerName) == "" {
		playerName = a.ask("Player Name: ")
		if a.eof {
			return fmt.Errorf("no player name given")
		}
		if playerName == "" {
			fmt.Fprintln(a.out, "Name cannot be empty. Try again.")
		}
	}

	state, err := game.Start(playerName, a.reg)
	if err != nil {
		return err
	}
	a.state = state
	a.ctx = logger.WithGameID(a.ctx, state.GameID)
	logger.FromContext(a.ctx).Info("session started", "player", state.PlayerName)

	fmt.Fprintln(a.out, "\n"+robot.FormatStats(a.state.Robot, a.state.PlayerName, a.reg))

	return a.menuLoop()
}

func (a *app) menuLoop() error {
	for {
		fmt.Fprintln(a.out, "\n"+sectionHeader("MAIN MENU"))
		fmt.Fprintln(a.out, "1. Fight")
		fmt.Fprintln(a.out, "2. Shop")
		fmt.Fprintln(a.out, "3. Inspect Robot")
		fmt.Fprintln(a.out, "4. Quit")

		switch a.ask("\n> ") {
		case "1":
			if err := a.battleLoop(); err != nil {
				return err
			}
		case "2":
			a.shopLoop()
		case "3":
			a.clearScreen()
			fmt.Fprintln(a.out, "\n"+robot.FormatStats(a.state.Robot, a.state.PlayerName, a.reg))
			if len(a.state.Robot.Inventory) > 0 {
				fmt.Fprintln(a.out, "\n"+yellow("── Inventory ──"))
				for i, inv := range a.state.Robot.Inventory {
					fmt.Fprintf(a.out, "  %d. %s %s\n", i+1, typePrefix(inv.Type), inv.ItemName)
				}
			}
		case "4":
			logger.FromContext(a.ctx).Info("session ended",
				"wins", a.state.Robot.Wins, "fights", a.state.Robot.Fights)
			fmt.Fprintln(a.out, "\nThanks for playing!")
			return nil
		default:
			if a.eof {
				fmt.Fprintln(a.out, "\nThanks for playing!")
				return nil
			}
			fmt.Fprintln(a.out, "Invalid choice.")
		}
	}
}

// ask prints the prompt and returns one trimmed input line. EOF reads
// as an empty line so the loops fall through their defaults.
func (a *app) ask(prompt string) string {
	fmt.Fprint(a.out, prompt)
	if !a.in.Scan() {
		a.eof = true
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) pause() {
	a.ask("\nPress Enter to continue...")
}
