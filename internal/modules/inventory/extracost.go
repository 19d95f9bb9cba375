package inventory

import (
	"strconv"
	"strings"
)

// GuestKind distinguishes the three extra-cost rows of a room.
type GuestKind string

const (
	GuestAdult        GuestKind = "adult"
	GuestChild        GuestKind = "child"
	GuestChildWithBed GuestKind = "child_with_bed"
)

var guestKinds = []GuestKind{GuestAdult, GuestChild, GuestChildWithBed}

// ExtraKey addresses one extra-cost cell.
type ExtraKey struct {
	Day        DayType
	Kind       GuestKind
	MealPlanID int64
}

// ExtraCostMatrix is room-scoped (not range-scoped): per day type and guest
// kind, the extra amount charged per meal plan.
type ExtraCostMatrix struct {
	cells map[ExtraKey]int
}

func NewExtraCostMatrix() *ExtraCostMatrix {
	return &ExtraCostMatrix{cells: make(map[ExtraKey]int)}
}

// stripNonDigits keeps only [0-9], mirroring the entry-field sanitizer.
func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SetAmount sanitizes raw input to digits and stores the resulting amount.
// Input with no digits left clears the cell. Returns the stored amount and
// whether the cell is now set.
func (m *ExtraCostMatrix) SetAmount(k ExtraKey, raw string) (int, bool) {
	digits := stripNonDigits(raw)
	if digits == "" {
		delete(m.cells, k)
		return 0, false
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		// longer than an int; treat like non-numeric input
		delete(m.cells, k)
		return 0, false
	}
	m.cells[k] = v
	return v, true
}

func (m *ExtraCostMatrix) Set(k ExtraKey, amount int) error {
	if amount < 0 {
		return ErrInvalidPrice
	}
	m.cells[k] = amount
	return nil
}

func (m *ExtraCostMatrix) Get(k ExtraKey) (int, bool) {
	v, ok := m.cells[k]
	return v, ok
}

func (m *ExtraCostMatrix) Clear(k ExtraKey) {
	delete(m.cells, k)
}

// Complete reports whether all three guest kinds are filled for every given
// meal plan on day.
func (m *ExtraCostMatrix) Complete(day DayType, mealPlans []int64) bool {
	if len(mealPlans) == 0 {
		return false
	}
	for _, plan := range mealPlans {
		for _, kind := range guestKinds {
			if _, ok := m.cells[ExtraKey{Day: day, Kind: kind, MealPlanID: plan}]; !ok {
				return false
			}
		}
	}
	return true
}

// Cells returns a copy of the matrix, for payload flattening.
func (m *ExtraCostMatrix) Cells() map[ExtraKey]int {
	out := make(map[ExtraKey]int, len(m.cells))
	for k, v := range m.cells {
		out[k] = v
	}
	return out
}
