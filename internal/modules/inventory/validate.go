package inventory

// Validate walks the draft and collects every completeness violation instead
// of failing fast. The returned order is stable: header first, then rooms in
// selection order. A nil result moves the draft to StatusReady; otherwise it
// lands in StatusInvalid.
func (d *Draft) Validate() []Violation {
	d.Status = StatusValidating

	var out []Violation
	out = append(out, d.validateHeader()...)
	for _, room := range d.Rooms {
		out = append(out, d.validateRoom(room)...)
	}
	if len(d.Rooms) == 0 {
		out = append(out, violationf(0, "rooms", "select at least one room"))
	}

	if len(out) > 0 {
		d.Status = StatusInvalid
	} else {
		d.Status = StatusReady
	}
	return out
}

func (d *Draft) validateHeader() []Violation {
	var out []Violation
	h := d.Header
	if h.Country == "" {
		out = append(out, violationf(0, "country", "country is required"))
	}
	if h.State == "" {
		out = append(out, violationf(0, "state", "state is required"))
	}
	if h.City == "" {
		out = append(out, violationf(0, "city", "city is required"))
	}
	if h.HotelID == 0 {
		out = append(out, violationf(0, "hotel", "hotel is required"))
	}
	if h.CheckIn.IsZero() {
		out = append(out, violationf(0, "check_in", "check-in date is required"))
	}
	if h.CheckOut.IsZero() {
		out = append(out, violationf(0, "check_out", "check-out date is required"))
	}
	if !h.CheckIn.IsZero() && !h.CheckOut.IsZero() && Day(h.CheckIn).After(Day(h.CheckOut)) {
		out = append(out, violationf(0, "check_out", "check-out must not be before check-in"))
	}
	return out
}

func (d *Draft) validateRoom(room *RoomConfig) []Violation {
	var out []Violation
	name := room.Name

	if room.Adults < 1 {
		out = append(out, violationf(room.RoomID, "adults", "room %s: number of adults is required", name))
	}
	if room.Children < 0 {
		out = append(out, violationf(room.RoomID, "children", "room %s: number of children is invalid", name))
	}
	if room.Infants < 0 {
		out = append(out, violationf(room.RoomID, "infants", "room %s: number of infants is invalid", name))
	}
	if room.MaxPersons < 1 {
		out = append(out, violationf(room.RoomID, "max_persons", "room %s: max persons is required", name))
	}
	if d.Mode == ModeNormal && room.FrontRoomsCount < 1 {
		out = append(out, violationf(room.RoomID, "rooms_count", "room %s: number of rooms is required", name))
	}

	if len(room.Ranges) == 0 {
		out = append(out, violationf(room.RoomID, "date_range", "room %s: add at least one date range", name))
	} else if d.Mode == ModeConfirm {
		for i, rng := range room.Ranges {
			if rng.RoomsCount == nil || *rng.RoomsCount < 1 {
				out = append(out, violationf(room.RoomID, "rooms_count",
					"room %s: rooms count is required for range %d (%s to %s)",
					name, i+1, rng.From.Format(DateLayout), rng.To.Format(DateLayout)))
			}
		}
	}

	plans := room.EffectiveMealPlans(d.AllMealPlans)
	if len(plans) == 0 {
		out = append(out, violationf(room.RoomID, "meal_plans", "room %s: select at least one meal plan", name))
		return out
	}

	if !room.ExtraCostsComplete(Weekday, d.AllMealPlans) {
		out = append(out, violationf(room.RoomID, "extra_costs", "room %s: fill all weekday extra costs", name))
	}
	if room.HasWeekend() && !room.ExtraCostsComplete(Weekend, d.AllMealPlans) {
		out = append(out, violationf(room.RoomID, "extra_costs", "room %s: fill all weekend extra costs", name))
	}

	if len(room.Ranges) > 0 {
		if !room.BasePricesComplete(Weekday, d.AllMealPlans) {
			out = append(out, violationf(room.RoomID, "prices", "room %s: fill the weekday base price for every meal plan", name))
		}
		if room.HasWeekend() && !room.BasePricesComplete(Weekend, d.AllMealPlans) {
			out = append(out, violationf(room.RoomID, "prices", "room %s: fill the weekend base price for every meal plan", name))
		}
	}

	if room.Hold != nil && room.Hold.Enabled {
		price := d.effectivePriceFor(room)
		for _, err := range room.Hold.Check(price) {
			out = append(out, violationf(room.RoomID, "hold_booking", "room %s: %s", name, err.Error()))
		}
		if room.Hold.Amount <= 0 {
			out = append(out, violationf(room.RoomID, "hold_amount", "room %s: hold amount is required", name))
		}
		if room.Hold.CutoffDays < 1 {
			out = append(out, violationf(room.RoomID, "hold_cutoff", "room %s: hold cutoff days are required", name))
		}
		if room.Hold.LimitHours < 1 {
			out = append(out, violationf(room.RoomID, "hold_limit", "room %s: hold validity hours are required", name))
		}
	}

	return out
}

// effectivePriceFor derives the nightly reference price for a room: the
// explicit draft price when set, else the room's 1-person weekday price,
// else the minimum positive price anywhere in its grid, else 0.
func (d *Draft) effectivePriceFor(room *RoomConfig) float64 {
	if d.Price != nil && *d.Price > 0 {
		return *d.Price
	}
	if v, ok := room.Grid.BasePrice(); ok {
		return float64(v)
	}
	if v, ok := room.Grid.MinPositive(); ok {
		return float64(v)
	}
	return 0
}
