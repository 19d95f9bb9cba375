package inventory

import "sort"

// LineItem is the flat persisted pricing record: one row per
// room x range x occupancy x meal plan x day type with a price entered.
type LineItem struct {
	RoomID     int64   `json:"room_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Person     int     `json:"person"`
	MealType   int64   `json:"meal_type"`
	Amount     int     `json:"amount"`
	Type       DayType `json:"type"`
	RoomsCount int     `json:"rooms_count"`
}

// ExtraCostItem is the flat persisted extra-cost record.
type ExtraCostItem struct {
	RoomID     int64     `json:"room_id"`
	Day        DayType   `json:"type"`
	Kind       GuestKind `json:"guest_kind"`
	MealPlanID int64     `json:"meal_type"`
	Amount     int       `json:"amount"`
}

// RangeItem is the persisted form of a date range.
type RangeItem struct {
	From       string `json:"from"`
	To         string `json:"to"`
	RoomsCount *int   `json:"rooms_count,omitempty"`
}

// RoomPayload is the per-room detail row.
type RoomPayload struct {
	RoomID          int64    `json:"room_id"`
	Name            string   `json:"name"`
	Adults          int      `json:"adults"`
	Children        int      `json:"children"`
	Infants         int      `json:"infants"`
	MaxPersons      int      `json:"max_persons"`
	FrontRoomsCount int      `json:"front_rooms_count"`
	MealPlanIDs     []int64  `json:"meal_plan_ids,omitempty"`
	Occupancies     []int    `json:"occupancies,omitempty"`
	WeekendDays     []string `json:"weekend_days,omitempty"`

	Ranges []RangeItem `json:"ranges"`

	Refundable  bool                  `json:"refundable"`
	RefundRules []PersistedRefundRule `json:"refund_rules,omitempty"`

	HoldEnabled    bool     `json:"hold_enabled"`
	HoldType       HoldType `json:"hold_type,omitempty"`
	HoldAmount     float64  `json:"hold_amount,omitempty"`
	HoldCutoffDays int      `json:"hold_cutoff_days,omitempty"`
	HoldLimitHours int      `json:"hold_limit_hours,omitempty"`

	BlackoutDates []string `json:"blackout_dates,omitempty"`
}

// Payload is the normalized persistence form of a whole draft.
type Payload struct {
	Mode     Mode     `json:"mode" validate:"required,oneof=normal confirm"`
	Country  string   `json:"country"`
	State    string   `json:"state"`
	City     string   `json:"city"`
	HotelID  int64    `json:"hotel_id"`
	CheckIn  string   `json:"check_in"`
	CheckOut string   `json:"check_out"`
	Price    *float64 `json:"price,omitempty"`

	MealPlanIDs []int64 `json:"meal_plan_ids,omitempty"`

	Rooms      []RoomPayload   `json:"rooms"`
	Items      []LineItem      `json:"items"`
	ExtraCosts []ExtraCostItem `json:"extra_costs"`

	BlackoutDates []string `json:"blackout_dates,omitempty"`
}

// BuildPayload validates the draft and flattens it into the persistence
// payload. On violations it returns a *ValidationError and leaves the draft
// in StatusInvalid.
func (d *Draft) BuildPayload() (*Payload, error) {
	if v := d.Validate(); len(v) > 0 {
		return nil, &ValidationError{Violations: v}
	}

	p := &Payload{
		Mode:          d.Mode,
		Country:       d.Header.Country,
		State:         d.Header.State,
		City:          d.Header.City,
		HotelID:       d.Header.HotelID,
		CheckIn:       Day(d.Header.CheckIn).Format(DateLayout),
		CheckOut:      Day(d.Header.CheckOut).Format(DateLayout),
		Price:         d.Price,
		MealPlanIDs:   d.AllMealPlans,
		BlackoutDates: d.Blackouts.Dates(),
	}

	for _, room := range d.Rooms {
		p.Rooms = append(p.Rooms, d.roomPayload(room))
		p.Items = append(p.Items, d.roomLineItems(room)...)
		p.ExtraCosts = append(p.ExtraCosts, roomExtraCosts(room)...)
	}

	d.Status = StatusSaving
	return p, nil
}

func (d *Draft) roomPayload(room *RoomConfig) RoomPayload {
	ranges := make([]RangeItem, 0, len(room.Ranges))
	for _, r := range room.Ranges {
		ranges = append(ranges, RangeItem{
			From:       r.From.Format(DateLayout),
			To:         r.To.Format(DateLayout),
			RoomsCount: r.RoomsCount,
		})
	}
	rp := RoomPayload{
		RoomID:          room.RoomID,
		Name:            room.Name,
		Adults:          room.Adults,
		Children:        room.Children,
		Infants:         room.Infants,
		MaxPersons:      room.MaxPersons,
		FrontRoomsCount: room.FrontRoomsCount,
		MealPlanIDs:     room.MealPlanIDs,
		Occupancies:     room.Occupancies,
		WeekendDays:     room.WeekendDays.Names(),
		Ranges:          ranges,
		BlackoutDates:   room.BlackoutDates,
	}
	if room.Refund != nil {
		rp.Refundable = room.Refund.Refundable
		if room.Refund.Refundable {
			rp.RefundRules = room.Refund.ToPersistedForm(d.effectivePriceFor(room))
		}
	}
	if room.Hold != nil && room.Hold.Enabled {
		rp.HoldEnabled = true
		rp.HoldType = room.Hold.Type
		rp.HoldAmount = room.Hold.Amount
		rp.HoldCutoffDays = room.Hold.CutoffDays
		rp.HoldLimitHours = room.Hold.LimitHours
	}
	return rp
}

func (d *Draft) roomLineItems(room *RoomConfig) []LineItem {
	dayTypes := []DayType{Weekday}
	if room.HasWeekend() {
		dayTypes = append(dayTypes, Weekend)
	}
	plans := room.EffectiveMealPlans(d.AllMealPlans)
	occs := room.EffectiveOccupancies()

	var items []LineItem
	for _, rng := range room.Ranges {
		count := room.FrontRoomsCount
		if d.Mode == ModeConfirm && rng.RoomsCount != nil {
			count = *rng.RoomsCount
		}
		for _, day := range dayTypes {
			for _, occ := range occs {
				for _, plan := range plans {
					amount, ok := room.Grid.Get(PriceKey{RangeID: rng.ID, Day: day, Occupancy: occ, MealPlanID: plan})
					if !ok {
						continue
					}
					items = append(items, LineItem{
						RoomID:     room.RoomID,
						StartDate:  rng.From.Format(DateLayout),
						EndDate:    rng.To.Format(DateLayout),
						Person:     occ,
						MealType:   plan,
						Amount:     amount,
						Type:       day,
						RoomsCount: count,
					})
				}
			}
		}
	}
	return items
}

func roomExtraCosts(room *RoomConfig) []ExtraCostItem {
	cells := room.Extras.Cells()
	out := make([]ExtraCostItem, 0, len(cells))
	for k, v := range cells {
		out = append(out, ExtraCostItem{
			RoomID:     room.RoomID,
			Day:        k.Day,
			Kind:       k.Kind,
			MealPlanID: k.MealPlanID,
			Amount:     v,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.MealPlanID < b.MealPlanID
	})
	return out
}

// Hydrate rebuilds an editable draft from a previously persisted payload:
// the reverse of BuildPayload, used by the edit flow.
func Hydrate(p *Payload) (*Draft, error) {
	d := NewDraft(p.Mode)
	d.Status = StatusSaved
	d.Price = p.Price
	d.AllMealPlans = p.MealPlanIDs

	checkIn, err := ParseDate(p.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := ParseDate(p.CheckOut)
	if err != nil {
		return nil, err
	}
	d.Header = Header{
		Country: p.Country, State: p.State, City: p.City,
		HotelID: p.HotelID, CheckIn: checkIn, CheckOut: checkOut,
	}

	blackoutLists := [][]string{p.BlackoutDates}
	for _, rp := range p.Rooms {
		room, err := hydrateRoom(rp)
		if err != nil {
			return nil, err
		}
		d.Rooms = append(d.Rooms, room)
		blackoutLists = append(blackoutLists, rp.BlackoutDates)
	}
	d.Blackouts = HydrateBlackouts(blackoutLists...)

	if err := d.hydrateLineItems(p.Items); err != nil {
		return nil, err
	}
	for _, ec := range p.ExtraCosts {
		room, err := d.Room(ec.RoomID)
		if err != nil {
			return nil, err
		}
		if err := room.Extras.Set(ExtraKey{Day: ec.Day, Kind: ec.Kind, MealPlanID: ec.MealPlanID}, ec.Amount); err != nil {
			return nil, err
		}
	}

	// Rebuild the aggregate view from the first room's mirrored state.
	if d.Mode == ModeNormal && len(d.Rooms) > 0 {
		first := d.Rooms[0]
		d.GlobalWeekend = first.WeekendDays.Clone()
		for _, r := range first.Ranges {
			d.GlobalRanges = append(d.GlobalRanges, r.Period)
		}
	}
	return d, nil
}

func hydrateRoom(rp RoomPayload) (*RoomConfig, error) {
	room := NewRoomConfig(rp.RoomID, rp.Name, rp.MaxPersons)
	room.Adults = rp.Adults
	room.Children = rp.Children
	room.Infants = rp.Infants
	room.FrontRoomsCount = rp.FrontRoomsCount
	room.MealPlanIDs = rp.MealPlanIDs
	room.Occupancies = rp.Occupancies
	room.WeekendDays = WeekendFromNames(rp.WeekendDays)
	room.BlackoutDates = rp.BlackoutDates

	for _, ri := range rp.Ranges {
		from, err := ParseDate(ri.From)
		if err != nil {
			return nil, err
		}
		to, err := ParseDate(ri.To)
		if err != nil {
			return nil, err
		}
		p, err := NewPeriod(from, to)
		if err != nil {
			return nil, err
		}
		r := newDateRange(rp.RoomID, p)
		r.RoomsCount = ri.RoomsCount
		room.Ranges = append(room.Ranges, r)
	}

	room.Refund = &RefundPolicy{Refundable: rp.Refundable}
	for _, rr := range rp.RefundRules {
		room.Refund.Rules = append(room.Refund.Rules, RefundRule{
			DaysBeforeCheckin: rr.DaysBeforeCheckin,
			Amount:            rr.Amount,
		})
	}
	if rp.HoldEnabled {
		room.Hold = &HoldBookingPolicy{
			Enabled:    true,
			Type:       rp.HoldType,
			Amount:     rp.HoldAmount,
			CutoffDays: rp.HoldCutoffDays,
			LimitHours: rp.HoldLimitHours,
		}
	}
	return room, nil
}

// hydrateLineItems maps stored line items back onto grid cells, matching
// ranges by their date pair.
func (d *Draft) hydrateLineItems(items []LineItem) error {
	for _, it := range items {
		room, err := d.Room(it.RoomID)
		if err != nil {
			return err
		}
		var rid RangeID
		found := false
		for _, r := range room.Ranges {
			if r.From.Format(DateLayout) == it.StartDate && r.To.Format(DateLayout) == it.EndDate {
				rid, found = r.ID, true
				break
			}
		}
		if !found {
			return ErrRangeNotFound
		}
		if err := room.Grid.Set(PriceKey{RangeID: rid, Day: it.Type, Occupancy: it.Person, MealPlanID: it.MealType}, it.Amount); err != nil {
			return err
		}
	}
	return nil
}
