package inventory

// BlackoutDateSet is an ordered, deduplicated set of ISO dates excluded from
// booking, maintained hotel-wide across the selected rooms.
type BlackoutDateSet struct {
	dates []string
	seen  map[string]bool
}

func NewBlackoutDateSet(dates ...string) *BlackoutDateSet {
	s := &BlackoutDateSet{seen: make(map[string]bool)}
	for _, d := range dates {
		_ = s.Add(d)
	}
	return s
}

// Add inserts an ISO date, rejecting malformed input and duplicates.
func (s *BlackoutDateSet) Add(date string) error {
	if _, err := ParseDate(date); err != nil {
		return err
	}
	if s.seen[date] {
		return ErrDuplicateBlackoutDate
	}
	s.seen[date] = true
	s.dates = append(s.dates, date)
	return nil
}

func (s *BlackoutDateSet) Remove(index int) error {
	if index < 0 || index >= len(s.dates) {
		return ErrInvalidDate
	}
	delete(s.seen, s.dates[index])
	s.dates = append(s.dates[:index], s.dates[index+1:]...)
	return nil
}

func (s *BlackoutDateSet) Len() int { return len(s.dates) }

func (s *BlackoutDateSet) Dates() []string {
	out := make([]string, len(s.dates))
	copy(out, s.dates)
	return out
}

// HydrateBlackouts unions the stored per-room blackout lists into one set,
// keeping first-seen order and silently dropping duplicates and junk.
func HydrateBlackouts(roomLists ...[]string) *BlackoutDateSet {
	s := NewBlackoutDateSet()
	for _, list := range roomLists {
		for _, d := range list {
			_ = s.Add(d)
		}
	}
	return s
}
