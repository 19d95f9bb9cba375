package inventory

import "time"

// Status tracks the save lifecycle of an inventory draft.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusValidating Status = "validating"
	StatusInvalid    Status = "invalid"
	StatusReady      Status = "ready"
	StatusSaving     Status = "saving"
	StatusSaved      Status = "saved"
	StatusSaveFailed Status = "save_failed"
)

// Header carries the inventory-level required fields.
type Header struct {
	Country  string    `json:"country"`
	State    string    `json:"state"`
	City     string    `json:"city"`
	HotelID  int64     `json:"hotel_id"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

// Draft is one inventory-configuration session: header, selected rooms with
// their pricing structures, and the aggregate (normal-mode) state mirrored
// into rooms. Everything is in-memory until BuildPayload.
type Draft struct {
	Mode   Mode
	Status Status
	Header Header

	// Price is the explicit nightly price, first choice for deriving
	// refund percentages and checking hold amounts.
	Price *float64

	// AllMealPlans is the meal-plan catalog, needed to resolve the
	// empty-selection-means-all rule.
	AllMealPlans []int64

	Rooms []*RoomConfig

	GlobalRanges  []Period
	GlobalWeekend WeekendDaySet
	Blackouts     *BlackoutDateSet
}

func NewDraft(mode Mode) *Draft {
	return &Draft{
		Mode:          mode,
		Status:        StatusDraft,
		GlobalWeekend: make(WeekendDaySet),
		Blackouts:     NewBlackoutDateSet(),
	}
}

// Room finds a selected room by id.
func (d *Draft) Room(roomID int64) (*RoomConfig, error) {
	for _, r := range d.Rooms {
		if r.RoomID == roomID {
			return r, nil
		}
	}
	return nil, ErrRoomNotFound
}

// AddRoom selects a room for this session and, in normal mode, immediately
// projects the aggregate ranges and weekend days onto it.
func (d *Draft) AddRoom(room *RoomConfig) {
	if _, err := d.Room(room.RoomID); err == nil {
		return
	}
	d.Rooms = append(d.Rooms, room)
	if d.Mode == ModeNormal {
		d.MirrorOnRoomSelectionChange([]int64{room.RoomID})
	}
}

// RemoveRoom deselects a room, discarding its configuration.
func (d *Draft) RemoveRoom(roomID int64) {
	for i, r := range d.Rooms {
		if r.RoomID == roomID {
			d.Rooms = append(d.Rooms[:i], d.Rooms[i+1:]...)
			return
		}
	}
}

// SetGlobalWeekend replaces the aggregate weekend-day set and re-mirrors it
// into every selected room.
func (d *Draft) SetGlobalWeekend(days WeekendDaySet) {
	d.GlobalWeekend = days.Clone()
	for _, room := range d.Rooms {
		room.WeekendDays = days.Clone()
	}
}

// AddBlackoutDate enforces dedup interactively; duplicates come back as
// ErrDuplicateBlackoutDate with the set unchanged.
func (d *Draft) AddBlackoutDate(date string) error {
	return d.Blackouts.Add(date)
}
