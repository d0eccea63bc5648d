package inventory

import "github.com/cory-johannsen/idlecore/internal/game/stats"

// IntakePolicy controls how TakeLoot handles new items.
type IntakePolicy struct {
	// AutoEquip equips items that are upgrades the character can wear.
	AutoEquip bool
	// AutoSellCommon sells common items that do not fit in the bags.
	AutoSellCommon bool
	ClassStats     []stats.Primary
	PlayerLevel    int
}

// IntakeResult is the outcome of TakeLoot.
type IntakeResult struct {
	Equipment Equipment
	Inventory Inventory
	Equipped  []*Item
	Stored    []*Item
	Sold      []*Item
	// Lost holds items that fit nowhere and could not be sold.
	Lost []*Item
	Gold int
}

// TakeLoot processes items in order: upgrades are equipped when the policy
// allows, everything else goes to the bags. Overflow, including items
// displaced by an equip, is sold when common and AutoSellCommon is set and
// is otherwise lost.
//
// Postcondition: eq and inv are not modified. Every input item and every
// displaced item is reported in exactly one of Equipped, Stored, Sold or Lost.
func TakeLoot(eq Equipment, inv Inventory, items []*Item, policy IntakePolicy) IntakeResult {
	res := IntakeResult{Equipment: eq.Clone(), Inventory: inv.Clone()}

	overflow := func(it *Item) {
		if policy.AutoSellCommon && it.Quality == QualityCommon {
			res.Sold = append(res.Sold, it)
			res.Gold += it.SellValue
			return
		}
		res.Lost = append(res.Lost, it)
	}

	for _, it := range items {
		if it == nil {
			continue
		}
		if policy.AutoEquip && it.RequiredLevel <= policy.PlayerLevel &&
			IsUpgrade(it, res.Equipment[it.Slot], policy.ClassStats) {
			er := EquipItem(res.Equipment, res.Inventory, it)
			res.Equipment, res.Inventory = er.Equipment, er.Inventory
			res.Equipped = append(res.Equipped, it)
			if er.Unequipped != nil && er.Orphaned == nil {
				res.Stored = append(res.Stored, er.Unequipped)
			}
			if er.Orphaned != nil {
				overflow(er.Orphaned)
			}
			continue
		}
		next, ok := AddToInventory(res.Inventory, it)
		if !ok {
			overflow(it)
			continue
		}
		res.Inventory = next
		res.Stored = append(res.Stored, it)
	}
	return res
}
