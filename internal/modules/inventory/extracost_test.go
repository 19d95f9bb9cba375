package inventory

import "testing"

func TestSetAmountStripsNonDigits(t *testing.T) {
	m := NewExtraCostMatrix()
	k := ExtraKey{Day: Weekday, Kind: GuestAdult, MealPlanID: 1}

	v, ok := m.SetAmount(k, " 1,200 ")
	if !ok || v != 1200 {
		t.Fatalf("expected sanitized 1200, got %d (set=%v)", v, ok)
	}

	v, ok = m.SetAmount(k, "abc")
	if ok {
		t.Fatalf("expected cell cleared on non-numeric input, got %d", v)
	}
	if _, ok := m.Get(k); ok {
		t.Fatal("expected cell absent after clearing input")
	}
}

func TestSetAmountEmptyClearsCell(t *testing.T) {
	m := NewExtraCostMatrix()
	k := ExtraKey{Day: Weekend, Kind: GuestChild, MealPlanID: 2}
	if _, ok := m.SetAmount(k, "300"); !ok {
		t.Fatal("expected cell set")
	}
	if _, ok := m.SetAmount(k, ""); ok {
		t.Fatal("expected empty input to clear the cell")
	}
}

func TestExtraCompleteNeedsAllGuestKinds(t *testing.T) {
	m := NewExtraCostMatrix()
	plans := []int64{1, 2}

	for _, plan := range plans {
		_ = m.Set(ExtraKey{Day: Weekday, Kind: GuestAdult, MealPlanID: plan}, 200)
		_ = m.Set(ExtraKey{Day: Weekday, Kind: GuestChild, MealPlanID: plan}, 100)
	}
	if m.Complete(Weekday, plans) {
		t.Fatal("missing child_with_bed cells should fail completeness")
	}

	for _, plan := range plans {
		_ = m.Set(ExtraKey{Day: Weekday, Kind: GuestChildWithBed, MealPlanID: plan}, 150)
	}
	if !m.Complete(Weekday, plans) {
		t.Fatal("expected completeness with all three guest kinds filled")
	}
	if m.Complete(Weekend, plans) {
		t.Fatal("weekend side untouched, should not be complete")
	}
}

func TestExtraCompleteFalseWithoutPlans(t *testing.T) {
	m := NewExtraCostMatrix()
	if m.Complete(Weekday, nil) {
		t.Fatal("no meal plans selected should never be complete")
	}
}
