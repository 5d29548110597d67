package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/KidBotBattle_Go/internal/domain"
)

func TestNewRegistry(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.NotEmpty(t, r.Items())
	assert.NotEmpty(t, r.Enemies())
}

func TestRegistry_Weapon(t *testing.T) {
	r := Default()

	t.Run("starter weapon", func(t *testing.T) {
		w, err := r.Weapon("Stick")
		require.NoError(t, err)

		assert.Equal(t, 0, w.Level)
		assert.Equal(t, 50, w.MoneyCost)
		assert.Equal(t, 1, w.Damage)
		assert.Equal(t, 1, w.EnergyCost)
		assert.Equal(t, 80, w.Accuracy)
		assert.Equal(t, 1, w.Hands)
		assert.Empty(t, w.Requirements)
	})

	t.Run("ammo requirement", func(t *testing.T) {
		w, err := r.Weapon("Rocket Launcher")
		require.NoError(t, err)

		assert.Equal(t, []string{"Rocket"}, w.Requirements)
	})

	t.Run("unknown weapon", func(t *testing.T) {
		_, err := r.Weapon("Laser Cannon")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownItem)
		assert.Contains(t, err.Error(), "Laser Cannon")
	})
}

func TestRegistry_Gear(t *testing.T) {
	r := Default()

	t.Run("health bonus", func(t *testing.T) {
		g, err := r.Gear("Cardboard Armor")
		require.NoError(t, err)

		assert.Equal(t, 5, g.Effects.HealthBonus)
		assert.Equal(t, 40, g.MoneyCost)
	})

	t.Run("hands bonus chain", func(t *testing.T) {
		g, err := r.Gear("Fourth Arm")
		require.NoError(t, err)

		assert.Equal(t, 1, g.Effects.HandsBonus)
		assert.Equal(t, []string{"Third Arm"}, g.Requirements)
	})

	t.Run("ammo gear has no bonuses", func(t *testing.T) {
		g, err := r.Gear("Rocket")
		require.NoError(t, err)

		assert.Equal(t, domain.GearEffects{}, g.Effects)
	})

	t.Run("money bonus", func(t *testing.T) {
		g, err := r.Gear(domain.ItemMoneyMaker)
		require.NoError(t, err)

		assert.Equal(t, domain.MoneyMakerBonusPercent, g.Effects.MoneyBonusPercent)
	})
}

func TestRegistry_Consumable(t *testing.T) {
	r := Default()

	c, err := r.Consumable("Repair Kit")
	require.NoError(t, err)
	assert.Equal(t, 10, c.Effects.HealthRestore)

	c, err = r.Consumable("Oil Slick")
	require.NoError(t, err)
	assert.Equal(t, 10, c.Effects.EnemyDodgeReduction)

	_, err = r.Consumable("Stick")
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
}

func TestRegistry_Item(t *testing.T) {
	r := Default()

	tests := []struct {
		name     string
		wantType domain.ItemType
		wantCost int
	}{
		{"Stick", domain.ItemTypeWeapon, 50},
		{"Propeller", domain.ItemTypeGear, 60},
		{"Firecracker", domain.ItemTypeConsumable, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := r.Item(tt.name)
			require.NoError(t, err)

			assert.Equal(t, tt.wantType, item.Type)
			assert.Equal(t, tt.wantCost, item.MoneyCost)
		})
	}

	_, err := r.Item("Plasma Shield")
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
}

func TestRegistry_Enemy(t *testing.T) {
	r := Default()

	e, err := r.Enemy("MiniBot")
	require.NoError(t, err)

	assert.Equal(t, 1, e.Level)
	assert.Equal(t, []string{"Stick"}, e.Weapons)
	assert.Equal(t, []string{"Cardboard Armor", "Propeller"}, e.Gear)
	assert.Equal(t, 50, e.Reward)
	assert.Equal(t, 2, e.ExpReward)

	_, err = r.Enemy("MegaBot")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownEnemy)
}

func TestRegistry_Enemies(t *testing.T) {
	r := Default()

	enemies := r.Enemies()
	require.Len(t, enemies, 3)

	names := make([]string, len(enemies))
	for i, e := range enemies {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"MiniBot", "Sparky", "Firebot"}, names)
}

func TestValidate_RejectsBadConfigs(t *testing.T) {
	valid := func() (*ItemConfig, *EnemyConfig) {
		items, enemies, err := load()
		require.NoError(t, err)
		return items, enemies
	}

	t.Run("duplicate name across categories", func(t *testing.T) {
		items, enemies := valid()
		items.Gear = append(items.Gear, domain.Gear{Name: "Stick"})

		err := validate(items, enemies)
		assert.ErrorIs(t, err, ErrDuplicateName)
	})

	t.Run("dangling weapon requirement", func(t *testing.T) {
		items, enemies := valid()
		items.Weapons = append(items.Weapons, domain.Weapon{
			Name: "Railgun", Hands: 2, Requirements: []string{"Rail Slug"},
		})

		err := validate(items, enemies)
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("enemy with unknown loadout", func(t *testing.T) {
		items, enemies := valid()
		enemies.Enemies = append(enemies.Enemies, domain.Enemy{
			Name: "GlitchBot", Weapons: []string{"Missingno"},
		})

		err := validate(items, enemies)
		assert.ErrorIs(t, err, ErrInvalidReference)
		assert.Contains(t, err.Error(), "GlitchBot")
	})

	t.Run("embedded data is valid", func(t *testing.T) {
		items, enemies := valid()
		assert.NoError(t, validate(items, enemies))
	})
}
