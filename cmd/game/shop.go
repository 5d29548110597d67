package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/KidBotBattle_Go/internal/domain"
	"github.com/osse101/KidBotBattle_Go/internal/economy"
)

var itemTitle = cases.Title(language.English)

func (a *app) shopLoop() {
	// Entering the shop repairs the robot for free.
	a.state.Robot = economy.EnterShop(a.state.Robot, a.reg)

	for {
		a.clearScreen()
		r := a.state.Robot
		fmt.Fprintln(a.out, "\n"+sectionHeader("SHOP"))
		fmt.Fprintf(a.out, "Level: %d | Money: %s | Inventory: %d/%d\n",
			r.Level, purple(fmt.Sprintf("$%d", r.Money)), len(r.Inventory), r.InventorySize)
		fmt.Fprintln(a.out, "\n1. Buy")
		fmt.Fprintln(a.out, "2. Sell")
		fmt.Fprintln(a.out, "3. Inventory")
		fmt.Fprintln(a.out, "4. Back")

		switch strings.ToLower(a.ask("\n> ")) {
		case "1":
			a.buyLoop()
		case "2":
			a.sellLoop()
		case "3":
			a.showInventory()
			a.pause()
		case "4", "b":
			return
		default:
			if a.eof {
				return
			}
			fmt.Fprintln(a.out, "Invalid choice.")
		}
	}
}

func (a *app) buyLoop() {
	for {
		a.clearScreen()
		r := a.state.Robot
		fmt.Fprintln(a.out, "\n"+sectionHeader("BUY"))
		fmt.Fprintf(a.out, "Level: %d | Money: %s | Inventory: %d/%d\n",
			r.Level, purple(fmt.Sprintf("$%d", r.Money)), len(r.Inventory), r.InventorySize)
		fmt.Fprintln(a.out, "\nB. Back")

		listing := economy.Catalog(r, a.reg)
		for i, s := range listing {
			status := ""
			if !s.CanBuy {
				status = dim(fmt.Sprintf(" (%s)", s.Reason))
			}
			fmt.Fprintf(a.out, "%d. %s - %s%s\n", i+1, s.Item.Name, purple(fmt.Sprintf("$%d", s.Item.MoneyCost)), status)
		}

		input := strings.ToLower(a.ask("\n> "))
		if input == "b" || a.eof {
			return
		}

		if numStr, ok := cutShowCommand(input); ok {
			if num, err := strconv.Atoi(numStr); err == nil && num >= 1 && num <= len(listing) {
				a.showItemDetails(listing[num-1].Item)
				a.pause()
			}
			continue
		}

		name := ""
		if num, err := strconv.Atoi(input); err == nil {
			if num < 1 || num > len(listing) {
				continue
			}
			name = listing[num-1].Item.Name
		} else {
			// Typed item names are accepted too, in any casing.
			name = itemTitle.String(input)
		}

		res := economy.Buy(a.state.Robot, name, a.reg)
		if res.Success {
			a.state.Robot = res.Robot
			fmt.Fprintln(a.out, green(fmt.Sprintf("Bought %s!", name)))
		} else {
			fmt.Fprintln(a.out, red(res.Error))
		}
		a.pause()
	}
}

// cutShowCommand parses "show 3" or the shorthand "s3". A bare "s"
// followed by anything non-numeric is not a show command, so typed
// item names like "sword" still reach the buy path.
func cutShowCommand(input string) (string, bool) {
	if rest, ok := strings.CutPrefix(input, "show"); ok {
		return strings.TrimSpace(rest), true
	}
	if rest, ok := strings.CutPrefix(input, "s"); ok {
		rest = strings.TrimSpace(rest)
		if _, err := strconv.Atoi(rest); err == nil {
			return rest, true
		}
	}
	return "", false
}

func (a *app) showItemDetails(item domain.Item) {
	fmt.Fprintf(a.out, "\n%s (%s)\n", bold(item.Name), item.Type)
	fmt.Fprintf(a.out, "Level: %d | Cost: %s\n", item.Level, purple(fmt.Sprintf("$%d", item.MoneyCost)))
	if item.Type == domain.ItemTypeWeapon {
		if w, err := a.reg.Weapon(item.Name); err == nil {
			fmt.Fprintf(a.out, "Damage: %d | Accuracy: %d | Energy: %d | Hands: %d\n",
				w.Damage, w.Accuracy, w.EnergyCost, w.Hands)
		}
	}
	fmt.Fprintln(a.out, item.Description)
}

func (a *app) sellLoop() {
	for {
		a.clearScreen()
		r := a.state.Robot
		fmt.Fprintln(a.out, "\n"+sectionHeader("SELL"))
		fmt.Fprintf(a.out, "Money: %s | Inventory: %d\n", purple(fmt.Sprintf("$%d", r.Money)), len(r.Inventory))
		fmt.Fprintln(a.out, "\nB. Back")

		if len(r.Inventory) == 0 {
			fmt.Fprintln(a.out, dim("\nInventory is empty."))
			a.ask("\nPress Enter to go back...")
			return
		}

		for i, inv := range r.Inventory {
			price := 0
			if item, err := a.reg.Item(inv.ItemName); err == nil {
				price = economy.SellPrice(item)
			}
			fmt.Fprintf(a.out, "%d. %s - %s\n", i+1, inv.ItemName, purple(fmt.Sprintf("$%d", price)))
		}

		input := strings.ToLower(a.ask("\n> "))
		if input == "b" || a.eof {
			return
		}

		num, err := strconv.Atoi(input)
		if err != nil || num < 1 || num > len(r.Inventory) {
			continue
		}

		owned := r.Inventory[num-1]
		res := economy.Sell(a.state.Robot, owned.InstanceID, a.reg)
		if res.Success {
			a.state.Robot = res.Robot
			fmt.Fprintln(a.out, green(fmt.Sprintf("Sold %s for %s!", owned.ItemName, purple(fmt.Sprintf("$%d", res.Refund)))))
		} else {
			fmt.Fprintln(a.out, red(res.Error))
		}
		a.pause()
	}
}

func (a *app) showInventory() {
	r := a.state.Robot
	if len(r.Inventory) == 0 {
		fmt.Fprintln(a.out, dim("\nInventory is empty."))
		return
	}
	fmt.Fprintln(a.out, "\n"+yellow("── Inventory ──"))
	for i, inv := range r.Inventory {
		desc := ""
		if item, err := a.reg.Item(inv.ItemName); err == nil {
			desc = dim(" - " + item.Description)
		}
		fmt.Fprintf(a.out, "  %d. %s %s%s\n", i+1, typePrefix(inv.Type), inv.ItemName, desc)
	}
}
