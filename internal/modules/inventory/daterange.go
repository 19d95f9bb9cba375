package inventory

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO yyyy-mm-dd string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Day truncates a timestamp to its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Period is a contiguous inclusive date interval.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func NewPeriod(from, to time.Time) (Period, error) {
	from, to = Day(from), Day(to)
	if from.After(to) {
		return Period{}, ErrInvalidRange
	}
	return Period{From: from, To: to}, nil
}

// Overlaps reports closed-interval intersection: startA <= endB && endA >= startB.
func (p Period) Overlaps(o Period) bool {
	return !p.From.After(o.To) && !p.To.Before(o.From)
}

func (p Period) Equal(o Period) bool {
	return p.From.Equal(o.From) && p.To.Equal(o.To)
}

// DateRange is a period bound to one room. In confirm mode every range
// carries its own rooms-available count.
type DateRange struct {
	ID     uuid.UUID `json:"id"`
	RoomID int64     `json:"room_id"`
	Period
	RoomsCount *int `json:"rooms_count,omitempty"`
}

func newDateRange(roomID int64, p Period) DateRange {
	return DateRange{ID: uuid.New(), RoomID: roomID, Period: p}
}

// checkPeriod rejects duplicates and overlaps against an existing collection.
func checkPeriod(existing []DateRange, p Period) error {
	for _, r := range existing {
		if r.Period.Equal(p) {
			return ErrDuplicateRange
		}
		if r.Period.Overlaps(p) {
			return ErrOverlappingRange
		}
	}
	return nil
}

// AddRange validates and appends a per-room range.
func (d *Draft) AddRange(roomID int64, from, to time.Time) (*DateRange, error) {
	room, err := d.Room(roomID)
	if err != nil {
		return nil, err
	}
	p, err := NewPeriod(from, to)
	if err != nil {
		return nil, err
	}
	if err := checkPeriod(room.Ranges, p); err != nil {
		return nil, err
	}
	r := newDateRange(roomID, p)
	room.Ranges = append(room.Ranges, r)
	return &room.Ranges[len(room.Ranges)-1], nil
}

// RemoveRange drops a room's range by position.
func (d *Draft) RemoveRange(roomID int64, index int) error {
	room, err := d.Room(roomID)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(room.Ranges) {
		return ErrRangeNotFound
	}
	removed := room.Ranges[index]
	room.Ranges = append(room.Ranges[:index], room.Ranges[index+1:]...)
	room.Grid.DropRange(removed.ID)
	return nil
}

// AggregateAddRange (normal mode) validates against the global list and
// mirrors the accepted period into every selected room. Rooms that already
// hold an identical period are skipped so re-mirroring stays idempotent.
func (d *Draft) AggregateAddRange(from, to time.Time) error {
	p, err := NewPeriod(from, to)
	if err != nil {
		return err
	}
	for _, g := range d.GlobalRanges {
		if g.Equal(p) {
			return ErrDuplicateRange
		}
		if g.Overlaps(p) {
			return ErrOverlappingRange
		}
	}
	d.GlobalRanges = append(d.GlobalRanges, p)
	for _, room := range d.Rooms {
		mirrorPeriod(room, p)
	}
	return nil
}

// AggregateRemoveRange drops a global period and its mirror from every room.
func (d *Draft) AggregateRemoveRange(index int) error {
	if index < 0 || index >= len(d.GlobalRanges) {
		return ErrRangeNotFound
	}
	p := d.GlobalRanges[index]
	d.GlobalRanges = append(d.GlobalRanges[:index], d.GlobalRanges[index+1:]...)
	for _, room := range d.Rooms {
		for i, r := range room.Ranges {
			if r.Period.Equal(p) {
				room.Ranges = append(room.Ranges[:i], room.Ranges[i+1:]...)
				room.Grid.DropRange(r.ID)
				break
			}
		}
	}
	return nil
}

func mirrorPeriod(room *RoomConfig, p Period) {
	for _, r := range room.Ranges {
		if r.Period.Equal(p) {
			return
		}
	}
	room.Ranges = append(room.Ranges, newDateRange(room.RoomID, p))
}

// MirrorOnRoomSelectionChange projects the aggregate state (global ranges and
// the global weekend-day set) onto rooms that just became selected. The
// aggregate list stays the single source of truth; rooms only ever receive
// copies.
func (d *Draft) MirrorOnRoomSelectionChange(newRoomIDs []int64) {
	for _, id := range newRoomIDs {
		room, err := d.Room(id)
		if err != nil {
			continue
		}
		if len(room.WeekendDays) == 0 {
			room.WeekendDays = d.GlobalWeekend.Clone()
		}
		for _, p := range d.GlobalRanges {
			mirrorPeriod(room, p)
		}
	}
}
