package inventory

import "github.com/cory-johannsen/idlecore/internal/game/stats"

// Inventory is a fixed-capacity bag. A nil entry is an empty slot.
type Inventory []*Item

// NewInventory returns an empty inventory with capacity slots.
//
// Precondition: capacity >= 0.
func NewInventory(capacity int) Inventory {
	return make(Inventory, capacity)
}

// Clone returns a shallow copy of inv.
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	copy(out, inv)
	return out
}

// FreeSlots returns the number of empty slots.
func (inv Inventory) FreeSlots() int {
	n := 0
	for _, it := range inv {
		if it == nil {
			n++
		}
	}
	return n
}

func (inv Inventory) firstEmpty() int {
	for i, it := range inv {
		if it == nil {
			return i
		}
	}
	return -1
}

func (inv Inventory) indexOf(id string) int {
	for i, it := range inv {
		if it != nil && it.ID == id {
			return i
		}
	}
	return -1
}

// statWeights[main][stat] is the value of one point of stat to a class whose
// main stat is main.
var statWeights = map[stats.Primary]map[stats.Primary]float64{
	stats.Strength:  {stats.Strength: 1.0, stats.Agility: 0.3, stats.Intellect: 0.0, stats.Spirit: 0.1, stats.Stamina: 0.5},
	stats.Agility:   {stats.Strength: 0.3, stats.Agility: 1.0, stats.Intellect: 0.0, stats.Spirit: 0.1, stats.Stamina: 0.5},
	stats.Intellect: {stats.Strength: 0.0, stats.Agility: 0.1, stats.Intellect: 1.0, stats.Spirit: 0.6, stats.Stamina: 0.4},
	stats.Spirit:    {stats.Strength: 0.0, stats.Agility: 0.1, stats.Intellect: 0.6, stats.Spirit: 1.0, stats.Stamina: 0.4},
	stats.Stamina:   {stats.Strength: 0.5, stats.Agility: 0.3, stats.Intellect: 0.3, stats.Spirit: 0.3, stats.Stamina: 1.0},
}

const (
	unknownStatWeight = 0.1
	secondaryWeight   = 0.5
)

// ItemScore rates an item for a class whose primary stats are listed most
// important first. Scores are for comparing items, not for generation.
//
// Postcondition: an empty classStats list scores as a strength class.
func ItemScore(item *Item, classStats []stats.Primary) float64 {
	main := stats.Strength
	if len(classStats) > 0 {
		main = classStats[0]
	}
	weights, ok := statWeights[main]
	if !ok {
		weights = statWeights[stats.Strength]
	}

	score := 0.0
	for stat, v := range item.PrimaryStats {
		w, ok := weights[stat]
		if !ok {
			w = unknownStatWeight
		}
		score += float64(v) * w
	}
	for _, v := range item.SecondaryStats {
		score += float64(v) * secondaryWeight
	}
	return score
}

// IsUpgrade reports whether newItem should replace equipped.
//
// Postcondition: true when equipped is nil, otherwise true iff newItem scores
// strictly higher.
func IsUpgrade(newItem, equipped *Item, classStats []stats.Primary) bool {
	if equipped == nil {
		return true
	}
	return ItemScore(newItem, classStats) > ItemScore(equipped, classStats)
}

// EquipResult is the outcome of EquipItem.
type EquipResult struct {
	Equipment Equipment
	Inventory Inventory
	// Unequipped is the item previously in the slot, or nil.
	Unequipped *Item
	// Orphaned is set when Unequipped could not be stored because the
	// inventory was full. It is no longer held by Equipment or Inventory.
	Orphaned *Item
}

// EquipItem places item in its slot.
//
// Precondition: item is non-nil.
// Postcondition: eq and inv are not modified. item is removed from the
// returned inventory if it was there. The displaced item moves to the first
// empty inventory slot; if there is none it is reported in Orphaned.
func EquipItem(eq Equipment, inv Inventory, item *Item) EquipResult {
	current := eq[item.Slot]

	nextEq := eq.Clone()
	nextEq[item.Slot] = item

	nextInv := inv.Clone()
	if idx := nextInv.indexOf(item.ID); idx >= 0 {
		nextInv[idx] = nil
	}

	res := EquipResult{Equipment: nextEq, Inventory: nextInv, Unequipped: current}
	if current != nil {
		if idx := nextInv.firstEmpty(); idx >= 0 {
			nextInv[idx] = current
		} else {
			res.Orphaned = current
		}
	}
	return res
}

// UnequipResult is the outcome of UnequipItem.
type UnequipResult struct {
	Equipment Equipment
	Inventory Inventory
	Success   bool
}

// UnequipItem moves the item in slot to the first empty inventory slot.
//
// Postcondition: on failure (slot empty or inventory full) the inputs are
// returned as-is with Success false. On success the inputs are not modified.
func UnequipItem(eq Equipment, inv Inventory, slot Slot) UnequipResult {
	item := eq[slot]
	if item == nil {
		return UnequipResult{Equipment: eq, Inventory: inv}
	}
	idx := inv.firstEmpty()
	if idx < 0 {
		return UnequipResult{Equipment: eq, Inventory: inv}
	}

	nextEq := eq.Clone()
	delete(nextEq, slot)
	nextInv := inv.Clone()
	nextInv[idx] = item
	return UnequipResult{Equipment: nextEq, Inventory: nextInv, Success: true}
}

// AddToInventory stores item in the first empty slot.
//
// Postcondition: returns a new inventory and true on success; on a full
// inventory returns inv unchanged and false.
func AddToInventory(inv Inventory, item *Item) (Inventory, bool) {
	idx := inv.firstEmpty()
	if idx < 0 {
		return inv, false
	}
	next := inv.Clone()
	next[idx] = item
	return next, true
}
