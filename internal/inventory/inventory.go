// Package inventory manages the items a robot owns. All operations
// return a new robot value; inputs are never mutated.
package inventory

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/KidBotBattle_Go/internal/catalog"
	"github.com/osse101/KidBotBattle_Go/internal/domain"
)

// Add places one instance of the named catalog item into the robot's
// inventory. Weapons and consumables stack as separate instances; gear
// is unique per robot.
func Add(r domain.Robot, itemName string, reg *catalog.Registry) (domain.Robot, error) {
	item, err := reg.Item(itemName)
	if err != nil {
		return r, err
	}

	if len(r.Inventory) >= r.InventorySize {
		return r, domain.ErrInventoryFull
	}

	if item.Type == domain.ItemTypeGear && Has(r, itemName) {
		return r, fmt.Errorf("%w: %s", domain.ErrDuplicateGear, itemName)
	}

	owned := domain.InventoryItem{
		InstanceID: uuid.NewString(),
		ItemName:   item.Name,
		Type:       item.Type,
	}

	out := r
	out.Inventory = make([]domain.InventoryItem, len(r.Inventory), len(r.Inventory)+1)
	copy(out.Inventory, r.Inventory)
	out.Inventory = append(out.Inventory, owned)

	return out, nil
}

// Remove takes the item with the given instance ID out of the
// inventory. Instance IDs are unique, so at most one entry matches.
func Remove(r domain.Robot, instanceID string) (domain.Robot, error) {
	idx := -1
	for i, owned := range r.Inventory {
		if owned.InstanceID == instanceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return r, fmt.Errorf("%w: %s", domain.ErrItemNotFound, instanceID)
	}

	out := r
	out.Inventory = make([]domain.InventoryItem, 0, len(r.Inventory)-1)
	out.Inventory = append(out.Inventory, r.Inventory[:idx]...)
	out.Inventory = append(out.Inventory, r.Inventory[idx+1:]...)

	return out, nil
}

// Has reports whether the robot owns at least one instance of the
// named item.
func Has(r domain.Robot, itemName string) bool {
	for _, owned := range r.Inventory {
		if owned.ItemName == itemName {
			return true
		}
	}
	return false
}

// Count returns how many instances of the named item the robot owns.
func Count(r domain.Robot, itemName string) int {
	n := 0
	for _, owned := range r.Inventory {
		if owned.ItemName == itemName {
			n++
		}
	}
	return n
}

// ByType lists the owned items of one type, preserving inventory order.
func ByType(r domain.Robot, t domain.ItemType) []domain.InventoryItem {
	var out []domain.InventoryItem
	for _, owned := range r.Inventory {
		if owned.Type == t {
			out = append(out, owned)
		}
	}
	return out
}
