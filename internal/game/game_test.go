package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KidBotBattle_Go/internal/catalog"
	"github.com/osse101/KidBotBattle_Go/internal/domain"
)

func TestStart(t *testing.T) {
	reg := catalog.Default()

	t.Run("creates a fresh session", func(t *testing.T) {
		state, err := Start("Ada", reg)
		require.NoError(t, err)

		assert.NotEmpty(t, state.GameID)
		assert.Equal(t, "Ada", state.PlayerName)
		assert.Equal(t, domain.PhaseMenu, state.Phase)
		assert.Nil(t, state.Battle)
		assert.True(t, state.FirstBattle)

		assert.Equal(t, domain.StartingMoney, state.Robot.Money)
		assert.Equal(t, state.Robot.MaxHealth, state.Robot.Health)
		assert.Equal(t, state.Robot.MaxEnergy, state.Robot.Energy)
		assert.Empty(t, state.Robot.Inventory)
	})

	t.Run("trims the player name", func(t *testing.T) {
		state, err := Start("  Ada  ", reg)
		require.NoError(t, err)
		assert.Equal(t, "Ada", state.PlayerName)
	})

	t.Run("rejects empty names", func(t *testing.T) {
		_, err := Start("   ", reg)
		assert.ErrorIs(t, err, domain.ErrEmptyPlayerName)
	})

	t.Run("each session gets its own id", func(t *testing.T) {
		a, err := Start("Ada", reg)
		require.NoError(t, err)
		b, err := Start("Ada", reg)
		require.NoError(t, err)

		assert.NotEqual(t, a.GameID, b.GameID)
	})
}
