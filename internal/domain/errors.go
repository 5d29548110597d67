package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgUnknownItem  = "unknown item"
	ErrMsgUnknownEnemy = "unknown enemy"

	// Inventory errors
	ErrMsgInventoryFull = "inventory is full"
	ErrMsgDuplicateGear = "already own gear"
	ErrMsgItemNotFound  = "item not in inventory"

	// Shop errors
	ErrMsgInsufficientFunds = "not enough money"
	ErrMsgLevelTooLow       = "level too low"
	ErrMsgRequirementNotMet = "requirement not met"

	// Battle errors
	ErrMsgNoActiveBattle         = "no active battle"
	ErrMsgInvalidWeaponSelection = "invalid weapon selection"
	ErrMsgInvalidConsumableSlot  = "invalid consumable slot"

	// Input errors
	ErrMsgEmptyPlayerName = "player name must not be empty"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for
// additional context so callers can still match with errors.Is.
var (
	// Catalog errors
	ErrUnknownItem  = errors.New(ErrMsgUnknownItem)
	ErrUnknownEnemy = errors.New(ErrMsgUnknownEnemy)

	// Inventory errors
	ErrInventoryFull = errors.New(ErrMsgInventoryFull)
	ErrDuplicateGear = errors.New(ErrMsgDuplicateGear)
	ErrItemNotFound  = errors.New(ErrMsgItemNotFound)

	// Shop errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrLevelTooLow       = errors.New(ErrMsgLevelTooLow)
	ErrRequirementNotMet = errors.New(ErrMsgRequirementNotMet)

	// Battle errors
	ErrNoActiveBattle         = errors.New(ErrMsgNoActiveBattle)
	ErrInvalidWeaponSelection = errors.New(ErrMsgInvalidWeaponSelection)
	ErrInvalidConsumableSlot  = errors.New(ErrMsgInvalidConsumableSlot)

	// Input errors
	ErrEmptyPlayerName = errors.New(ErrMsgEmptyPlayerName)
)
