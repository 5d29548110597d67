// Package game creates new play sessions.
package game

import (
	"strings"

	"github.com/google/uuid"

	"github.com/osse101/KidBotBattle_Go/internal/catalog"
	"github.com/osse101/KidBotBattle_Go/internal/domain"
	"github.com/osse101/KidBotBattle_Go/internal/robot"
)

// Start creates a fresh session for the named player: a new robot at
// full health with starting money, sitting at the main menu.
func Start(playerName string, reg *catalog.Registry) (domain.GameState, error) {
	trimmed := strings.TrimSpace(playerName)
	if trimmed == "" {
		return domain.GameState{}, domain.ErrEmptyPlayerName
	}

	return domain.GameState{
		GameID:      uuid.NewString(),
		PlayerName:  trimmed,
		Robot:       robot.Heal(robot.New(), reg),
		Phase:       domain.PhaseMenu,
		FirstBattle: true,
	}, nil
}
