package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KidBotBattle_Go/internal/catalog"
	"github.com/osse101/KidBotBattle_Go/internal/domain"
	"github.com/osse101/KidBotBattle_Go/internal/robot"
)

func TestAdd(t *testing.T) {
	reg := catalog.Default()

	t.Run("adds weapon with unique instance id", func(t *testing.T) {
		r := robot.New()

		r, err := Add(r, "Stick", reg)
		require.NoError(t, err)
		r, err = Add(r, "Stick", reg)
		require.NoError(t, err)

		require.Len(t, r.Inventory, 2)
		assert.Equal(t, "Stick", r.Inventory[0].ItemName)
		assert.Equal(t, domain.ItemTypeWeapon, r.Inventory[0].Type)
		assert.NotEqual(t, r.Inventory[0].InstanceID, r.Inventory[1].InstanceID)
	})

	t.Run("unknown item", func(t *testing.T) {
		r := robot.New()

		_, err := Add(r, "Laser Cannon", reg)
		assert.ErrorIs(t, err, domain.ErrUnknownItem)
	})

	t.Run("inventory full", func(t *testing.T) {
		r := robot.New()
		var err error
		for i := 0; i < r.InventorySize; i++ {
			r, err = Add(r, "Repair Kit", reg)
			require.NoError(t, err)
		}

		_, err = Add(r, "Stick", reg)
		assert.ErrorIs(t, err, domain.ErrInventoryFull)
	})

	t.Run("duplicate gear rejected", func(t *testing.T) {
		r := robot.New()
		r, err := Add(r, "Propeller", reg)
		require.NoError(t, err)

		_, err = Add(r, "Propeller", reg)
		assert.ErrorIs(t, err, domain.ErrDuplicateGear)
	})

	t.Run("input robot not mutated", func(t *testing.T) {
		r := robot.New()

		_, err := Add(r, "Stick", reg)
		require.NoError(t, err)
		assert.Empty(t, r.Inventory)
	})
}

func TestRemove(t *testing.T) {
	reg := catalog.Default()

	t.Run("removes only the matching instance", func(t *testing.T) {
		r := robot.New()
		var err error
		r, err = Add(r, "Repair Kit", reg)
		require.NoError(t, err)
		r, err = Add(r, "Repair Kit", reg)
		require.NoError(t, err)
		firstID := r.Inventory[0].InstanceID
		secondID := r.Inventory[1].InstanceID

		r, err = Remove(r, firstID)
		require.NoError(t, err)

		require.Len(t, r.Inventory, 1)
		assert.Equal(t, secondID, r.Inventory[0].InstanceID)
	})

	t.Run("unknown instance id", func(t *testing.T) {
		r := robot.New()

		_, err := Remove(r, "no-such-instance")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})
}

func TestHasAndCount(t *testing.T) {
	reg := catalog.Default()

	r := robot.New()
	var err error
	r, err = Add(r, "Firecracker", reg)
	require.NoError(t, err)
	r, err = Add(r, "Firecracker", reg)
	require.NoError(t, err)

	assert.True(t, Has(r, "Firecracker"))
	assert.False(t, Has(r, "Oil Slick"))
	assert.Equal(t, 2, Count(r, "Firecracker"))
	assert.Equal(t, 0, Count(r, "Oil Slick"))
}

func TestByType(t *testing.T) {
	reg := catalog.Default()

	r := robot.New()
	var err error
	for _, name := range []string{"Stick", "Propeller", "Repair Kit"} {
		r, err = Add(r, name, reg)
		require.NoError(t, err)
	}

	weapons := ByType(r, domain.ItemTypeWeapon)
	require.Len(t, weapons, 1)
	assert.Equal(t, "Stick", weapons[0].ItemName)

	gear := ByType(r, domain.ItemTypeGear)
	require.Len(t, gear, 1)
	assert.Equal(t, "Propeller", gear[0].ItemName)

	assert.Empty(t, ByType(robot.New(), domain.ItemTypeWeapon))
}
