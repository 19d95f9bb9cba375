package inventory

import (
	"sort"
	"time"
)

type Mode string

const (
	ModeNormal  Mode = "normal"
	ModeConfirm Mode = "confirm"
)

type DayType string

const (
	Weekday DayType = "week_days"
	Weekend DayType = "weekend_days"
)

// WeekendDaySet marks which weekdays a room prices as "weekend".
type WeekendDaySet map[time.Weekday]bool

func (s WeekendDaySet) Clone() WeekendDaySet {
	out := make(WeekendDaySet, len(s))
	for d, on := range s {
		if on {
			out[d] = true
		}
	}
	return out
}

func (s WeekendDaySet) Days() []time.Weekday {
	out := make([]time.Weekday, 0, len(s))
	for d, on := range s {
		if on {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var dayNames = map[time.Weekday]string{
	time.Sunday:    "sun",
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
}

// Names returns the sorted short day names, the stored representation.
func (s WeekendDaySet) Names() []string {
	days := s.Days()
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, dayNames[d])
	}
	return out
}

func WeekendFromNames(names []string) WeekendDaySet {
	byName := make(map[string]time.Weekday, len(dayNames))
	for d, n := range dayNames {
		byName[n] = d
	}
	out := make(WeekendDaySet)
	for _, n := range names {
		if d, ok := byName[n]; ok {
			out[d] = true
		}
	}
	return out
}

// RoomConfig is the per-room configuration being edited in one inventory
// session: capacities, selections, date ranges and the pricing structures.
type RoomConfig struct {
	RoomID int64
	Name   string

	Adults   int
	Children int
	Infants  int
	// MaxPersons is the occupancy ceiling; tiers run 1..MaxPersons.
	MaxPersons int
	// FrontRoomsCount is the rooms-available count mirrored across every
	// range in normal mode.
	FrontRoomsCount int

	// Empty selection means "all" for both of these.
	MealPlanIDs []int64
	Occupancies []int

	WeekendDays WeekendDaySet
	Ranges      []DateRange

	Grid   *PricingGrid
	Extras *ExtraCostMatrix
	Refund *RefundPolicy
	Hold   *HoldBookingPolicy

	BlackoutDates []string
}

func NewRoomConfig(roomID int64, name string, maxPersons int) *RoomConfig {
	if maxPersons < 1 {
		maxPersons = 1
	}
	return &RoomConfig{
		RoomID:      roomID,
		Name:        name,
		MaxPersons:  maxPersons,
		WeekendDays: make(WeekendDaySet),
		Grid:        NewPricingGrid(maxPersons),
		Extras:      NewExtraCostMatrix(),
		Refund:      &RefundPolicy{},
		Hold:        &HoldBookingPolicy{},
	}
}

// SetOccupancy updates the guest capacities. The ceiling is clamped to at
// least adults+children, and any ceiling change rebuilds the price grid,
// discarding previously entered prices.
func (r *RoomConfig) SetOccupancy(adults, children, infants, maxPersons int) {
	r.Adults, r.Children, r.Infants = adults, children, infants
	if sum := adults + children; maxPersons < sum {
		maxPersons = sum
	}
	if maxPersons < 1 {
		maxPersons = 1
	}
	if maxPersons != r.MaxPersons {
		r.MaxPersons = maxPersons
		r.Grid.RebuildForOccupancy(maxPersons)
		r.Occupancies = nil
	}
}

// EffectiveMealPlans resolves the empty-means-all rule against the catalog.
func (r *RoomConfig) EffectiveMealPlans(all []int64) []int64 {
	if len(r.MealPlanIDs) > 0 {
		return r.MealPlanIDs
	}
	return all
}

// EffectiveOccupancies resolves the empty-means-all rule against 1..MaxPersons.
func (r *RoomConfig) EffectiveOccupancies() []int {
	if len(r.Occupancies) > 0 {
		return r.Occupancies
	}
	out := make([]int, 0, r.MaxPersons)
	for i := 1; i <= r.MaxPersons; i++ {
		out = append(out, i)
	}
	return out
}

// HasWeekend reports whether any weekday is configured as weekend, which is
// what makes the weekend-side completeness checks mandatory.
func (r *RoomConfig) HasWeekend() bool {
	return len(r.WeekendDays.Days()) > 0
}

func (r *RoomConfig) rangeIDs() []RangeID {
	out := make([]RangeID, 0, len(r.Ranges))
	for _, rng := range r.Ranges {
		out = append(out, rng.ID)
	}
	return out
}

// ApplyBaseToAll copies each range's tier-1 price for day to the remaining
// occupancy tiers, per selected meal plan. Meal plans whose tier-1 cell is
// empty are skipped.
func (r *RoomConfig) ApplyBaseToAll(day DayType, allPlans []int64) {
	r.Grid.ApplyBaseToAll(day, r.rangeIDs(), r.EffectiveMealPlans(allPlans), r.EffectiveOccupancies())
}

// BasePricesComplete reports whether every selected meal plan has a tier-1
// price for day across every range. False when the room has no ranges, no
// meal plans or no occupancy tiers to price.
func (r *RoomConfig) BasePricesComplete(day DayType, allPlans []int64) bool {
	plans := r.EffectiveMealPlans(allPlans)
	if len(r.Ranges) == 0 || len(plans) == 0 || len(r.EffectiveOccupancies()) == 0 {
		return false
	}
	return r.Grid.BaseComplete(day, r.rangeIDs(), plans)
}

// ExtraCostsComplete reports whether all three guest kinds are priced for
// every selected meal plan on day.
func (r *RoomConfig) ExtraCostsComplete(day DayType, allPlans []int64) bool {
	plans := r.EffectiveMealPlans(allPlans)
	if len(plans) == 0 {
		return false
	}
	return r.Extras.Complete(day, plans)
}
