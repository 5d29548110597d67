package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/KidBotBattle_Go/internal/domain"
)

//go:embed data/items.json data/enemies.json
var dataFS embed.FS

// Sentinel errors for catalog loading
var (
	ErrDuplicateName    = errors.New("duplicate item name")
	ErrInvalidReference = errors.New("invalid item reference")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// ItemConfig is the JSON shape of the embedded item catalog.
type ItemConfig struct {
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Weapons     []domain.Weapon     `json:"weapons" validate:"dive"`
	Gear        []domain.Gear       `json:"gear" validate:"dive"`
	Consumables []domain.Consumable `json:"consumables" validate:"dive"`
}

// EnemyConfig is the JSON shape of the embedded enemy roster.
type EnemyConfig struct {
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Enemies     []domain.Enemy `json:"enemies" validate:"dive"`
}

// load reads and parses both embedded config files.
func load() (*ItemConfig, *EnemyConfig, error) {
	itemData, err := dataFS.ReadFile("data/items.json")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read item config: %w", err)
	}

	var itemConfig ItemConfig
	if err := json.Unmarshal(itemData, &itemConfig); err != nil {
		return nil, nil, fmt.Errorf("failed to parse item config: %w", err)
	}

	enemyData, err := dataFS.ReadFile("data/enemies.json")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read enemy config: %w", err)
	}

	var enemyConfig EnemyConfig
	if err := json.Unmarshal(enemyData, &enemyConfig); err != nil {
		return nil, nil, fmt.Errorf("failed to parse enemy config: %w", err)
	}

	return &itemConfig, &enemyConfig, nil
}

// validate checks the parsed configs for structural errors: field
// constraints, name collisions across categories, and dangling item
// references in requirements and enemy loadouts.
func validate(items *ItemConfig, enemies *EnemyConfig) error {
	v := validator.New()

	if err := v.Struct(items); err != nil {
		return fmt.Errorf("%w: item config: %w", ErrInvalidConfig, err)
	}
	if err := v.Struct(enemies); err != nil {
		return fmt.Errorf("%w: enemy config: %w", ErrInvalidConfig, err)
	}

	// Names are unique across every category, not just within one.
	names := make(map[string]bool)
	checkName := func(name string) error {
		if names[name] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateName, name)
		}
		names[name] = true
		return nil
	}

	for _, w := range items.Weapons {
		if err := checkName(w.Name); err != nil {
			return err
		}
	}
	for _, g := range items.Gear {
		if err := checkName(g.Name); err != nil {
			return err
		}
	}
	for _, c := range items.Consumables {
		if err := checkName(c.Name); err != nil {
			return err
		}
	}

	for _, w := range items.Weapons {
		for _, req := range w.Requirements {
			if !names[req] {
				return fmt.Errorf("%w: weapon '%s' requires non-existent item '%s'", ErrInvalidReference, w.Name, req)
			}
		}
	}
	for _, g := range items.Gear {
		for _, req := range g.Requirements {
			if !names[req] {
				return fmt.Errorf("%w: gear '%s' requires non-existent item '%s'", ErrInvalidReference, g.Name, req)
			}
		}
	}

	enemyNames := make(map[string]bool)
	for _, e := range enemies.Enemies {
		if enemyNames[e.Name] {
			return fmt.Errorf("%w: enemy '%s'", ErrDuplicateName, e.Name)
		}
		enemyNames[e.Name] = true

		for _, name := range e.Weapons {
			if !names[name] {
				return fmt.Errorf("%w: enemy '%s' carries non-existent weapon '%s'", ErrInvalidReference, e.Name, name)
			}
		}
		for _, name := range e.Gear {
			if !names[name] {
				return fmt.Errorf("%w: enemy '%s' carries non-existent gear '%s'", ErrInvalidReference, e.Name, name)
			}
		}
		for _, name := range e.Consumables {
			if !names[name] {
				return fmt.Errorf("%w: enemy '%s' carries non-existent consumable '%s'", ErrInvalidReference, e.Name, name)
			}
		}
	}

	return nil
}
