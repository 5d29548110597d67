package domain

// RandomFn supplies uniform values in [0, 1). Callers inject it so
// battles replay deterministically under test.
type RandomFn func() float64

// BattleWeapon is a weapon materialized into a battle slot.
type BattleWeapon struct {
	SlotIndex    int      `json:"slot_index"`
	Name         string   `json:"name"`
	Damage       int      `json:"damage"`
	EnergyCost   int      `json:"energy_cost"`
	Accuracy     int      `json:"accuracy"`
	Hands        int      `json:"hands"`
	Requirements []string `json:"requirements,omitempty"`
}

// BattleConsumable is a consumable materialized into a battle slot.
type BattleConsumable struct {
	SlotIndex int               `json:"slot_index"`
	Name      string            `json:"name"`
	Effects   ConsumableEffects `json:"effects"`
}

// BattleRobot is the ephemeral combat snapshot of a combatant, scoped
// to a single battle. Gear is held as names only; attacks consume ammo
// entries from it.
type BattleRobot struct {
	Name        string             `json:"name"`
	Health      int                `json:"health"`
	MaxHealth   int                `json:"max_health"`
	Energy      int                `json:"energy"`
	MaxEnergy   int                `json:"max_energy"`
	Defence     int                `json:"defence"`
	Attack      int                `json:"attack"`
	Hands       int                `json:"hands"`
	Dodge       int                `json:"dodge"`
	Weapons     []BattleWeapon     `json:"weapons"`
	Gear        []string           `json:"gear"`
	Consumables []BattleConsumable `json:"consumables"`
}

// MainAction is what a combatant does with its turn. ActionConsumable
// only appears in turn logs, never as a submitted main action.
type MainAction string

const (
	ActionAttack     MainAction = "attack"
	ActionRest       MainAction = "rest"
	ActionSurrender  MainAction = "surrender"
	ActionConsumable MainAction = "consumable"
)

// TurnAction is one combatant's submitted move for a turn. Slot indices
// refer to the current BattleRobot's weapons/consumables arrays.
type TurnAction struct {
	MainAction      MainAction `json:"main_action"`
	WeaponSlots     []int      `json:"weapon_slots"`
	ConsumablesUsed []int      `json:"consumables_used"`
}

// WeaponResult records one weapon firing during an attack.
type WeaponResult struct {
	WeaponName string `json:"weapon_name"`
	Hit        bool   `json:"hit"`
	Damage     int    `json:"damage"`
}

// TurnResult is one structured log entry from a resolved turn.
type TurnResult struct {
	Actor            string         `json:"actor"`
	Action           MainAction     `json:"action"`
	WeaponResults    []WeaponResult `json:"weapon_results,omitempty"`
	ConsumableName   string         `json:"consumable_name,omitempty"`
	ConsumableEffect string         `json:"consumable_effect,omitempty"`
	EnergyRestored   int            `json:"energy_restored,omitempty"`
}

// TurnSnapshot records both sides' HP at the end of a turn, for
// end-of-battle summaries.
type TurnSnapshot struct {
	Turn        int `json:"turn"`
	PlayerHP    int `json:"player_hp"`
	PlayerMaxHP int `json:"player_max_hp"`
	EnemyHP     int `json:"enemy_hp"`
	EnemyMaxHP  int `json:"enemy_max_hp"`
}

// Outcome is the battle's lifecycle state.
type Outcome string

const (
	OutcomeOngoing Outcome = "ongoing"
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
)

// Rewards is what a victory pays out.
type Rewards struct {
	Money     int  `json:"money"`
	Exp       int  `json:"exp"`
	LeveledUp bool `json:"leveled_up"`
	NewLevel  int  `json:"new_level"`
}

// BattleState is the full state of one battle. CombatLog holds only the
// most recently resolved turn's entries; TurnHistory accumulates HP
// snapshots across the whole battle.
type BattleState struct {
	EnemyName   string         `json:"enemy_name"`
	Player      BattleRobot    `json:"player"`
	Enemy       BattleRobot    `json:"enemy"`
	Turn        int            `json:"turn"`
	CombatLog   []TurnResult   `json:"combat_log"`
	TurnHistory []TurnSnapshot `json:"turn_history"`
	Outcome     Outcome        `json:"outcome"`
	Rewards     *Rewards       `json:"rewards,omitempty"`
}
