package domain

// Default chassis stats every robot starts from. Effective stats are
// always recomputed from these plus gear, never from the working
// fields on Robot.
const (
	DefaultHealth        = 10
	DefaultEnergy        = 20
	DefaultDefence       = 0
	DefaultAttack        = 0
	DefaultHands         = 2
	DefaultDodge         = 0
	DefaultInventorySize = 4
)

// StartingMoney is granted once at robot creation.
const StartingMoney = 100

// RestEnergyRestore is the flat energy gain from a rest action,
// capped at max energy.
const RestEnergyRestore = 5

// ExpPerLevel drives leveling: level = exp / ExpPerLevel.
const ExpPerLevel = 10

// ItemMoneyMaker is matched by name when computing victory money
// bonuses: each owned copy adds MoneyMakerBonusPercent points.
const (
	ItemMoneyMaker         = "Money Maker"
	MoneyMakerBonusPercent = 20
)
