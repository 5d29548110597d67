package combat_bench

import (
	"math/rand"
	"testing"

	"github.com/osse101/KidBotBattle_Go/internal/battle"
	"github.com/osse101/KidBotBattle_Go/internal/catalog"
	"github.com/osse101/KidBotBattle_Go/internal/combat"
	"github.com/osse101/KidBotBattle_Go/internal/domain"
	"github.com/osse101/KidBotBattle_Go/internal/inventory"
	"github.com/osse101/KidBotBattle_Go/internal/robot"
)

func benchGame(b *testing.B) domain.GameState {
	b.Helper()
	reg := catalog.Default()

	r := robot.New()
	r.Money = 10000
	r.Level = 10
	var err error
	for _, name := range []string{"Stick", "Cardboard Armor", "Repair Kit"} {
		r, err = inventory.Add(r, name, reg)
		if err != nil {
			b.Fatal(err)
		}
	}
	r = robot.Heal(r, reg)

	return domain.GameState{
		GameID:     "bench-game",
		PlayerName: "Bencher",
		Robot:      r,
		Phase:      domain.PhaseMenu,
	}
}

func BenchmarkResolveAttack(b *testing.B) {
	attacker := domain.BattleRobot{
		Name: "A", Health: 20, MaxHealth: 20, Energy: 1 << 30, MaxEnergy: 1 << 30, Hands: 2,
		Weapons: []domain.BattleWeapon{
			{SlotIndex: 0, Name: "Stick", Damage: 1, EnergyCost: 1, Accuracy: 80, Hands: 1},
		},
	}
	defender := domain.BattleRobot{Name: "D", Health: 1 << 30, MaxHealth: 1 << 30, Dodge: 10}
	rnd := rand.New(rand.NewSource(1)).Float64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = combat.ResolveAttack(attacker, defender, []int{0}, rnd)
	}
}

func BenchmarkResolveTurn(b *testing.B) {
	reg := catalog.Default()
	base, err := battle.Start(benchGame(b), "MiniBot", reg)
	if err != nil {
		b.Fatal(err)
	}
	action := domain.TurnAction{MainAction: domain.ActionAttack, WeaponSlots: []int{0}}
	rnd := rand.New(rand.NewSource(1)).Float64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := battle.ResolveTurn(base, action, reg, rnd); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFullBattle(b *testing.B) {
	reg := catalog.Default()
	action := domain.TurnAction{MainAction: domain.ActionAttack, WeaponSlots: []int{0}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rnd := rand.New(rand.NewSource(int64(i))).Float64
		state, err := battle.Start(benchGame(b), "MiniBot", reg)
		if err != nil {
			b.Fatal(err)
		}
		// Enough energy to swing every turn until someone drops.
		state.Battle.Player.Energy = 1 << 20
		for state.Battle.Outcome == domain.OutcomeOngoing {
			state, err = battle.ResolveTurn(state, action, reg, rnd)
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkEffectiveStats(b *testing.B) {
	reg := catalog.Default()
	state := benchGame(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = robot.EffectiveStats(state.Robot, reg)
	}
}
