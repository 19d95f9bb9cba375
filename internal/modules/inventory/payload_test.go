package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeDraft builds the scenario used across the orchestration tests: one
// room, one range, one meal plan, occupancy tiers {1,2}, weekday prices
// 1000/1500, no weekend days configured.
func completeDraft(t *testing.T) (*Draft, *RoomConfig) {
	t.Helper()

	d := NewDraft(ModeNormal)
	d.Header = Header{
		Country: "IN", State: "GA", City: "Panaji",
		HotelID: 7, CheckIn: date("2025-01-01"), CheckOut: date("2025-12-31"),
	}
	d.AllMealPlans = []int64{1}

	room := NewRoomConfig(101, "Deluxe", 2)
	room.Adults = 2
	room.FrontRoomsCount = 4
	room.Occupancies = []int{1, 2}
	d.AddRoom(room)

	rng, err := d.AddRange(101, date("2025-06-01"), date("2025-06-10"))
	require.NoError(t, err)

	require.NoError(t, room.Grid.Set(PriceKey{RangeID: rng.ID, Day: Weekday, Occupancy: 1, MealPlanID: 1}, 1000))
	require.NoError(t, room.Grid.Set(PriceKey{RangeID: rng.ID, Day: Weekday, Occupancy: 2, MealPlanID: 1}, 1500))

	for _, kind := range []GuestKind{GuestAdult, GuestChild, GuestChildWithBed} {
		require.NoError(t, room.Extras.Set(ExtraKey{Day: Weekday, Kind: kind, MealPlanID: 1}, 200))
	}
	return d, room
}

func TestCompletenessWithoutWeekendDays(t *testing.T) {
	d, room := completeDraft(t)

	assert.True(t, room.BasePricesComplete(Weekday, d.AllMealPlans))
	// no weekend configured, so weekend completeness is never demanded
	assert.False(t, room.HasWeekend())
	assert.Empty(t, d.Validate())
	assert.Equal(t, StatusReady, d.Status)
}

func TestBuildPayloadFlattensLineItems(t *testing.T) {
	d, _ := completeDraft(t)

	p, err := d.BuildPayload()
	require.NoError(t, err)
	require.Len(t, p.Items, 2)

	first, second := p.Items[0], p.Items[1]
	assert.Equal(t, int64(101), first.RoomID)
	assert.Equal(t, "2025-06-01", first.StartDate)
	assert.Equal(t, "2025-06-10", first.EndDate)
	assert.Equal(t, 1, first.Person)
	assert.Equal(t, 1000, first.Amount)
	assert.Equal(t, Weekday, first.Type)
	assert.Equal(t, 4, first.RoomsCount)

	assert.Equal(t, 2, second.Person)
	assert.Equal(t, 1500, second.Amount)
	assert.Equal(t, Weekday, second.Type)

	assert.Equal(t, StatusSaving, d.Status)
	require.Len(t, p.ExtraCosts, 3)
}

func TestBuildPayloadRefusesIncompleteDraft(t *testing.T) {
	d, room := completeDraft(t)
	room.Grid.Clear(PriceKey{RangeID: room.Ranges[0].ID, Day: Weekday, Occupancy: 1, MealPlanID: 1})

	_, err := d.BuildPayload()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Violations)
	assert.Contains(t, verr.Error(), "weekday base price")
	assert.Equal(t, StatusInvalid, d.Status)
}

func TestBuildPayloadDerivesRefundPercentages(t *testing.T) {
	d, room := completeDraft(t)
	room.Refund.Refundable = true
	require.NoError(t, room.Refund.AddRule(5, 500))

	p, err := d.BuildPayload()
	require.NoError(t, err)

	require.Len(t, p.Rooms, 1)
	rules := p.Rooms[0].RefundRules
	require.Len(t, rules, 1)
	// effective price falls back to the 1-person weekday price (1000)
	require.NotNil(t, rules[0].Percentage)
	assert.Equal(t, float64(50), *rules[0].Percentage)
}

func TestBuildPayloadPrefersExplicitPrice(t *testing.T) {
	d, room := completeDraft(t)
	explicit := 2000.0
	d.Price = &explicit
	room.Refund.Refundable = true
	require.NoError(t, room.Refund.AddRule(5, 500))

	p, err := d.BuildPayload()
	require.NoError(t, err)
	require.NotNil(t, p.Rooms[0].RefundRules[0].Percentage)
	assert.Equal(t, float64(25), *p.Rooms[0].RefundRules[0].Percentage)
}

func TestConfirmModeUsesPerRangeRoomsCount(t *testing.T) {
	d, room := completeDraft(t)
	d.Mode = ModeConfirm
	count := 9
	room.Ranges[0].RoomsCount = &count

	p, err := d.BuildPayload()
	require.NoError(t, err)
	for _, it := range p.Items {
		assert.Equal(t, 9, it.RoomsCount)
	}
}

func TestConfirmModeRequiresPerRangeRoomsCount(t *testing.T) {
	d, _ := completeDraft(t)
	d.Mode = ModeConfirm

	violations := d.Validate()
	require.NotEmpty(t, violations)
	assert.Contains(t, violations[0].Message, "rooms count")
}

func TestHydrateRoundTrip(t *testing.T) {
	d, room := completeDraft(t)
	room.Refund.Refundable = true
	require.NoError(t, room.Refund.AddRule(5, 500))
	room.Hold = &HoldBookingPolicy{Enabled: true, Type: HoldFlat, Amount: 800, CutoffDays: 10, LimitHours: 120}
	require.NoError(t, d.AddBlackoutDate("2025-06-05"))

	p, err := d.BuildPayload()
	require.NoError(t, err)

	restored, err := Hydrate(p)
	require.NoError(t, err)
	assert.Equal(t, StatusSaved, restored.Status)
	assert.Equal(t, d.Header.HotelID, restored.Header.HotelID)
	assert.Equal(t, []string{"2025-06-05"}, restored.Blackouts.Dates())

	r2, err := restored.Room(101)
	require.NoError(t, err)
	assert.Equal(t, room.MaxPersons, r2.MaxPersons)
	assert.True(t, r2.Hold.Enabled)
	assert.Equal(t, HoldFlat, r2.Hold.Type)

	p2, err := restored.BuildPayload()
	require.NoError(t, err)
	assert.ElementsMatch(t, p.Items, p2.Items)
	assert.ElementsMatch(t, p.ExtraCosts, p2.ExtraCosts)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	d := NewDraft(ModeNormal)
	d.AllMealPlans = []int64{1}
	room := NewRoomConfig(55, "Standard", 2)
	d.AddRoom(room)

	violations := d.Validate()
	// header misses 6 fields, the room misses adults, rooms count, range,
	// extras and prices are unratable without a range
	require.Greater(t, len(violations), 6)
	assert.Equal(t, StatusInvalid, d.Status)

	fields := make(map[string]bool)
	for _, v := range violations {
		fields[v.Field] = true
	}
	for _, f := range []string{"country", "hotel", "adults", "date_range", "extra_costs"} {
		assert.Truef(t, fields[f], "expected a violation for %q", f)
	}
}

func TestSetOccupancyClampsAndRebuilds(t *testing.T) {
	_, room := completeDraft(t)
	rng := room.Ranges[0]

	room.SetOccupancy(3, 2, 0, 2) // ceiling below adults+children gets clamped to 5
	assert.Equal(t, 5, room.MaxPersons)
	_, ok := room.Grid.Get(PriceKey{RangeID: rng.ID, Day: Weekday, Occupancy: 1, MealPlanID: 1})
	assert.False(t, ok, "prices are discarded when the ceiling changes")

	// same ceiling again leaves the grid alone
	_ = room.Grid.Set(PriceKey{RangeID: rng.ID, Day: Weekday, Occupancy: 1, MealPlanID: 1}, 100)
	room.SetOccupancy(3, 2, 0, 5)
	_, ok = room.Grid.Get(PriceKey{RangeID: rng.ID, Day: Weekday, Occupancy: 1, MealPlanID: 1})
	assert.True(t, ok)
}
