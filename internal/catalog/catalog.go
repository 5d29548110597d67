// Package catalog holds the static item and enemy definitions the rest
// of the game resolves names against. The data ships embedded in the
// binary and is validated once on first use.
package catalog

import (
	"fmt"
	"sync"

	"github.com/osse101/KidBotBattle_Go/internal/domain"
)

// Registry is an immutable, validated view of the item catalog and
// enemy roster. Lookup misses return domain.ErrUnknownItem or
// domain.ErrUnknownEnemy so callers can match with errors.Is.
type Registry struct {
	weapons     map[string]domain.Weapon
	gear        map[string]domain.Gear
	consumables map[string]domain.Consumable
	enemies     map[string]domain.Enemy

	// Insertion order from the config files, for stable listings.
	itemOrder  []domain.Item
	enemyOrder []domain.Enemy
}

// NewRegistry loads and validates the embedded catalog data.
func NewRegistry() (*Registry, error) {
	items, enemies, err := load()
	if err != nil {
		return nil, err
	}
	if err := validate(items, enemies); err != nil {
		return nil, err
	}

	r := &Registry{
		weapons:     make(map[string]domain.Weapon, len(items.Weapons)),
		gear:        make(map[string]domain.Gear, len(items.Gear)),
		consumables: make(map[string]domain.Consumable, len(items.Consumables)),
		enemies:     make(map[string]domain.Enemy, len(enemies.Enemies)),
	}

	for _, w := range items.Weapons {
		r.weapons[w.Name] = w
		r.itemOrder = append(r.itemOrder, w.AsItem())
	}
	for _, g := range items.Gear {
		r.gear[g.Name] = g
		r.itemOrder = append(r.itemOrder, g.AsItem())
	}
	for _, c := range items.Consumables {
		r.consumables[c.Name] = c
		r.itemOrder = append(r.itemOrder, c.AsItem())
	}
	for _, e := range enemies.Enemies {
		r.enemies[e.Name] = e
		r.enemyOrder = append(r.enemyOrder, e)
	}

	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the shared registry built from the embedded data.
// The embedded data is part of the binary, so a load failure here is a
// build defect and panics rather than returning an error to every
// call site.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = NewRegistry()
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("catalog: embedded data invalid: %v", defaultErr))
	}
	return defaultRegistry
}

// Weapon looks up a weapon definition by name.
func (r *Registry) Weapon(name string) (domain.Weapon, error) {
	w, ok := r.weapons[name]
	if !ok {
		return domain.Weapon{}, fmt.Errorf("%w: %s", domain.ErrUnknownItem, name)
	}
	return w, nil
}

// Gear looks up a gear definition by name.
func (r *Registry) Gear(name string) (domain.Gear, error) {
	g, ok := r.gear[name]
	if !ok {
		return domain.Gear{}, fmt.Errorf("%w: %s", domain.ErrUnknownItem, name)
	}
	return g, nil
}

// Consumable looks up a consumable definition by name.
func (r *Registry) Consumable(name string) (domain.Consumable, error) {
	c, ok := r.consumables[name]
	if !ok {
		return domain.Consumable{}, fmt.Errorf("%w: %s", domain.ErrUnknownItem, name)
	}
	return c, nil
}

// Item looks up any catalog entry by name, in its type-agnostic view.
func (r *Registry) Item(name string) (domain.Item, error) {
	if w, ok := r.weapons[name]; ok {
		return w.AsItem(), nil
	}
	if g, ok := r.gear[name]; ok {
		return g.AsItem(), nil
	}
	if c, ok := r.consumables[name]; ok {
		return c.AsItem(), nil
	}
	return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrUnknownItem, name)
}

// Enemy looks up an enemy definition by name.
func (r *Registry) Enemy(name string) (domain.Enemy, error) {
	e, ok := r.enemies[name]
	if !ok {
		return domain.Enemy{}, fmt.Errorf("%w: %s", domain.ErrUnknownEnemy, name)
	}
	return e, nil
}

// Items lists every catalog entry in config order.
func (r *Registry) Items() []domain.Item {
	out := make([]domain.Item, len(r.itemOrder))
	copy(out, r.itemOrder)
	return out
}

// Enemies lists every enemy in config order.
func (r *Registry) Enemies() []domain.Enemy {
	out := make([]domain.Enemy, len(r.enemyOrder))
	copy(out, r.enemyOrder)
	return out
}
