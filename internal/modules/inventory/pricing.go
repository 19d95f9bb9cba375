package inventory

import "github.com/google/uuid"

// RangeID identifies a date range inside one room's grid.
type RangeID = uuid.UUID

// PriceKey addresses a single cell of the pricing matrix. Keys are explicit
// structs instead of concatenated strings so lookups stay typo-proof.
type PriceKey struct {
	RangeID    RangeID
	Day        DayType
	Occupancy  int
	MealPlanID int64
}

// PricingGrid is one room's normalized price table:
// (range, day type, occupancy tier, meal plan) -> nightly price.
// Absent keys mean "not entered yet"; stored values are non-negative.
type PricingGrid struct {
	maxPersons int
	cells      map[PriceKey]int
}

func NewPricingGrid(maxPersons int) *PricingGrid {
	if maxPersons < 1 {
		maxPersons = 1
	}
	return &PricingGrid{maxPersons: maxPersons, cells: make(map[PriceKey]int)}
}

func (g *PricingGrid) MaxPersons() int { return g.maxPersons }

func (g *PricingGrid) Set(k PriceKey, price int) error {
	if price < 0 {
		return ErrInvalidPrice
	}
	if k.Occupancy < 1 || k.Occupancy > g.maxPersons {
		return ErrInvalidOccupancy
	}
	g.cells[k] = price
	return nil
}

func (g *PricingGrid) Get(k PriceKey) (int, bool) {
	v, ok := g.cells[k]
	return v, ok
}

func (g *PricingGrid) Clear(k PriceKey) {
	delete(g.cells, k)
}

// DropRange removes every cell belonging to a deleted range.
func (g *PricingGrid) DropRange(id RangeID) {
	for k := range g.cells {
		if k.RangeID == id {
			delete(g.cells, k)
		}
	}
}

// RebuildForOccupancy resets the grid for a new occupancy ceiling. All cells
// are dropped, not just tiers above the new ceiling: changing the ceiling
// restarts pricing for the room.
func (g *PricingGrid) RebuildForOccupancy(newMaxPersons int) {
	if newMaxPersons < 1 {
		newMaxPersons = 1
	}
	g.maxPersons = newMaxPersons
	g.cells = make(map[PriceKey]int)
}

// ApplyBaseToAll overwrites tiers 2..N with the tier-1 value for day, per
// range and meal plan. Meal plans with an empty tier-1 cell are skipped.
// Running it twice changes nothing.
func (g *PricingGrid) ApplyBaseToAll(day DayType, ranges []RangeID, mealPlans []int64, occupancies []int) {
	for _, rid := range ranges {
		for _, plan := range mealPlans {
			base, ok := g.cells[PriceKey{RangeID: rid, Day: day, Occupancy: 1, MealPlanID: plan}]
			if !ok {
				continue
			}
			for _, occ := range occupancies {
				if occ == 1 {
					continue
				}
				g.cells[PriceKey{RangeID: rid, Day: day, Occupancy: occ, MealPlanID: plan}] = base
			}
		}
	}
}

// BaseComplete reports whether the tier-1 cell is filled for every meal plan
// across every range for day.
func (g *PricingGrid) BaseComplete(day DayType, ranges []RangeID, mealPlans []int64) bool {
	if len(ranges) == 0 || len(mealPlans) == 0 {
		return false
	}
	for _, rid := range ranges {
		for _, plan := range mealPlans {
			if _, ok := g.cells[PriceKey{RangeID: rid, Day: day, Occupancy: 1, MealPlanID: plan}]; !ok {
				return false
			}
		}
	}
	return true
}

// BasePrice returns any tier-1 weekday price, used as the effective-price
// fallback for refund percentage derivation.
func (g *PricingGrid) BasePrice() (int, bool) {
	for k, v := range g.cells {
		if k.Day == Weekday && k.Occupancy == 1 {
			return v, true
		}
	}
	return 0, false
}

// MinPositive returns the smallest strictly positive price in the grid.
func (g *PricingGrid) MinPositive() (int, bool) {
	best, found := 0, false
	for _, v := range g.cells {
		if v <= 0 {
			continue
		}
		if !found || v < best {
			best, found = v, true
		}
	}
	return best, found
}

// Cells returns a copy of the table, for payload flattening.
func (g *PricingGrid) Cells() map[PriceKey]int {
	out := make(map[PriceKey]int, len(g.cells))
	for k, v := range g.cells {
		out[k] = v
	}
	return out
}
