package talent

import (
	"math"

	"github.com/cory-johannsen/idlecore/internal/game/balance"
)

// Allocation is a character's talent spend.
//
// Invariant: Spent equals the sum of Points, and Spent+Available is constant
// across AllocatePoint and Reset.
type Allocation struct {
	Points    map[string]int
	Spent     int
	Available int
}

// NewAllocation returns an empty allocation holding available points.
func NewAllocation(available int) Allocation {
	return Allocation{Points: map[string]int{}, Available: available}
}

// Rank returns the allocated rank of nodeID.
func (a Allocation) Rank(nodeID string) int {
	return a.Points[nodeID]
}

func (a Allocation) clone() Allocation {
	pts := make(map[string]int, len(a.Points))
	for k, v := range a.Points {
		pts[k] = v
	}
	return Allocation{Points: pts, Spent: a.Spent, Available: a.Available}
}

// pointsInTree sums the ranks allocated to nodes of t.
func pointsInTree(t *Tree, a Allocation) int {
	n := 0
	for _, node := range t.Nodes {
		n += a.Points[node.ID]
	}
	return n
}

// CanAllocatePoint reports whether one more point may go into nodeID.
//
// Postcondition: true iff a point is available, the node exists, it is below
// max rank, the tree already holds at least PointsRequired points, and any
// prerequisite node is at its max rank.
func CanAllocatePoint(t *Tree, nodeID string, a Allocation, _ *balance.Config) bool {
	if a.Available <= 0 {
		return false
	}
	node := t.Node(nodeID)
	if node == nil {
		return false
	}
	if a.Points[nodeID] >= node.MaxRank {
		return false
	}
	if pointsInTree(t, a) < node.PointsRequired {
		return false
	}
	if node.Prerequisite != "" {
		pre := t.Node(node.Prerequisite)
		if pre == nil || a.Points[pre.ID] < pre.MaxRank {
			return false
		}
	}
	return true
}

// AllocatePoint spends one point on nodeID.
//
// Postcondition: a is not modified. Returns a copy with the point spent, or
// an unchanged copy when CanAllocatePoint is false.
func AllocatePoint(t *Tree, nodeID string, a Allocation, cfg *balance.Config) Allocation {
	next := a.clone()
	if !CanAllocatePoint(t, nodeID, a, cfg) {
		return next
	}
	next.Points[nodeID]++
	next.Spent++
	next.Available--
	return next
}

// Reset refunds every spent point.
func Reset(a Allocation) Allocation {
	return NewAllocation(a.Spent + a.Available)
}

// RespecCost returns the gold price of the next respec:
// floor(base * level * perLevel * (1 + respecCount*multiplier)).
func RespecCost(level, respecCount int, cfg *balance.Config) int {
	t := cfg.Talents
	return int(math.Floor(t.RespecBaseCost * float64(level) * t.RespecCostPerLevel * (1 + float64(respecCount)*t.RespecCountMultiplier)))
}

// PointsForLevel returns the talent points a character of level has earned:
// one per level from the first talent level through the last, capped at the
// configured total.
func PointsForLevel(level int, cfg *balance.Config) int {
	t := cfg.Talents
	if level < t.FirstTalentLevel {
		return 0
	}
	n := min(level, t.LastTalentLevel) - t.FirstTalentLevel + 1
	return min(n, t.TotalPoints)
}

// Effects returns the active effect of every allocated node, in tree then
// node order. A node contributes the effect whose Rank equals its current
// rank exactly; a node with no such effect contributes nothing.
func Effects(trees []*Tree, a Allocation) []Effect {
	var out []Effect
	for _, t := range trees {
		for _, node := range t.Nodes {
			rank := a.Points[node.ID]
			if rank <= 0 {
				continue
			}
			for _, e := range node.Effects {
				if e.Rank == rank {
					out = append(out, e)
					break
				}
			}
		}
	}
	return out
}
