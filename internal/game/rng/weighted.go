package rng

// Weighted pairs a candidate with its selection weight.
type Weighted[T any] struct {
	Item   T
	Weight float64
}

// Choose selects one item with probability proportional to its weight.
// Items are scanned in slice order, so callers that build the slice from a
// map must sort it first to keep draws reproducible.
//
// Precondition: len(items) > 0. Panics with "rng: Choose called with no items" otherwise.
// Postcondition: consumes exactly one draw; returns the last item when
// floating-point rounding leaves the roll above every cumulative boundary.
func Choose[T any](r *Random, items []Weighted[T]) T {
	if len(items) == 0 {
		panic("rng: Choose called with no items")
	}
	total := 0.0
	for _, it := range items {
		total += it.Weight
	}
	roll := r.Next() * total
	for _, it := range items {
		roll -= it.Weight
		if roll <= 0 {
			return it.Item
		}
	}
	return items[len(items)-1].Item
}
