// Package economy implements the shop: browsing the catalog with
// per-item purchasability, buying, and selling at half price.
package economy

import (
	"fmt"

	"github.com/osse101/KidBotBattle_Go/internal/catalog"
	"github.com/osse101/KidBotBattle_Go/internal/domain"
	"github.com/osse101/KidBotBattle_Go/internal/inventory"
	"github.com/osse101/KidBotBattle_Go/internal/robot"
)

// ShopItem is one catalog entry annotated with whether the robot can
// buy it right now, and the first blocking reason when it cannot.
type ShopItem struct {
	Item   domain.Item
	CanBuy bool
	Reason string
}

// BuyResult reports the outcome of a purchase attempt. Error holds a
// player-facing message when Success is false.
type BuyResult struct {
	Success bool
	Error   string
	Robot   domain.Robot
}

// SellResult reports the outcome of a sale.
type SellResult struct {
	Success bool
	Error   string
	Refund  int
	Robot   domain.Robot
}

// blockKind identifies why a purchase is blocked. Checks run in a
// fixed order and the first failure wins.
type blockKind int

const (
	blockNone blockKind = iota
	blockMoney
	blockInventoryFull
	blockLevel
	blockRequirement
	blockGearOwned
)

type purchaseBlock struct {
	kind    blockKind
	level   int
	missing string
}

// EnterShop repairs the robot for free. The shop doubles as the
// workshop between battles.
func EnterShop(r domain.Robot, reg *catalog.Registry) domain.Robot {
	return robot.Heal(r, reg)
}

// Catalog lists every item with purchasability for the given robot.
func Catalog(r domain.Robot, reg *catalog.Registry) []ShopItem {
	items := reg.Items()
	out := make([]ShopItem, 0, len(items))
	for _, item := range items {
		b := checkPurchase(r, item)
		out = append(out, ShopItem{
			Item:   item,
			CanBuy: b.kind == blockNone,
			Reason: catalogReason(b),
		})
	}
	return out
}

// Buy purchases one instance of the named item, deducting its cost.
func Buy(r domain.Robot, itemName string, reg *catalog.Registry) BuyResult {
	item, err := reg.Item(itemName)
	if err != nil {
		return BuyResult{Error: fmt.Sprintf("Unknown item: %s", itemName), Robot: r}
	}

	if b := checkPurchase(r, item); b.kind != blockNone {
		return BuyResult{Error: buyError(b), Robot: r}
	}

	updated, err := inventory.Add(r, item.Name, reg)
	if err != nil {
		return BuyResult{Error: err.Error(), Robot: r}
	}
	updated.Money -= item.MoneyCost

	return BuyResult{Success: true, Robot: updated}
}

// Sell removes the owned item with the given instance ID and refunds
// half its purchase price, rounded down.
func Sell(r domain.Robot, instanceID string, reg *catalog.Registry) SellResult {
	var owned *domain.InventoryItem
	for i := range r.Inventory {
		if r.Inventory[i].InstanceID == instanceID {
			owned = &r.Inventory[i]
			break
		}
	}
	if owned == nil {
		return SellResult{Error: "Item not in inventory", Robot: r}
	}

	item, err := reg.Item(owned.ItemName)
	if err != nil {
		return SellResult{Error: fmt.Sprintf("Unknown item: %s", owned.ItemName), Robot: r}
	}

	updated, err := inventory.Remove(r, instanceID)
	if err != nil {
		return SellResult{Error: "Item not in inventory", Robot: r}
	}

	refund := SellPrice(item)
	updated.Money += refund

	return SellResult{Success: true, Refund: refund, Robot: updated}
}

// SellPrice is half the purchase price, rounded down.
func SellPrice(item domain.Item) int {
	return item.MoneyCost / 2
}

// checkPurchase runs the purchase gates in display order: money,
// inventory space, level, item requirements, then gear uniqueness.
func checkPurchase(r domain.Robot, item domain.Item) purchaseBlock {
	if r.Money < item.MoneyCost {
		return purchaseBlock{kind: blockMoney}
	}
	if len(r.Inventory) >= r.InventorySize {
		return purchaseBlock{kind: blockInventoryFull}
	}
	if r.Level < item.Level {
		return purchaseBlock{kind: blockLevel, level: item.Level}
	}
	for _, req := range item.Requirements {
		if !inventory.Has(r, req) {
			return purchaseBlock{kind: blockRequirement, missing: req}
		}
	}
	if item.Type == domain.ItemTypeGear && inventory.Has(r, item.Name) {
		return purchaseBlock{kind: blockGearOwned}
	}
	return purchaseBlock{}
}

func catalogReason(b purchaseBlock) string {
	switch b.kind {
	case blockMoney:
		return "Not enough money"
	case blockInventoryFull:
		return "Inventory full"
	case blockLevel:
		return fmt.Sprintf("Requires level %d", b.level)
	case blockRequirement:
		return fmt.Sprintf("Requires %s", b.missing)
	case blockGearOwned:
		return "Already owned"
	default:
		return ""
	}
}

func buyError(b purchaseBlock) string {
	if b.kind == blockGearOwned {
		return "Already own this gear"
	}
	return catalogReason(b)
}
