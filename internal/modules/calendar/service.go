package calendar

import (
	"context"
	"fmt"
	"io"

	"travelhub/internal/domain"
	"travelhub/internal/repository"
)

// Service imports and serves per-room daily availability.
type Service struct {
	availability *repository.AvailabilityRepository
	hotels       *repository.HotelRepository
}

func NewService(availability *repository.AvailabilityRepository, hotels *repository.HotelRepository) *Service {
	return &Service{availability: availability, hotels: hotels}
}

// ImportResult reports what an upload changed.
type ImportResult struct {
	Imported  int                      `json:"imported"`
	Calendars map[int64]map[string]int `json:"calendars"`
}

// Import parses an uploaded CSV and merges the rows into the stored
// calendars. roomID != 0 pins the two-column format to that room; 0 expects
// the three-column global format. Dates present in the file overwrite the
// stored counts, everything else is left alone.
func (s *Service) Import(ctx context.Context, roomID int64, r io.Reader) (*ImportResult, error) {
	if roomID != 0 {
		if _, err := s.hotels.GetRoom(ctx, roomID); err != nil {
			return nil, fmt.Errorf("room %d: %w", roomID, err)
		}
	}

	entries, err := ParseCSV(r, roomID)
	if err != nil {
		return nil, err
	}

	byRoom := make(map[int64][]Entry)
	for _, e := range entries {
		byRoom[e.RoomID] = append(byRoom[e.RoomID], e)
	}

	result := &ImportResult{Imported: len(entries), Calendars: make(map[int64]map[string]int)}
	var rows []domain.RoomAvailability
	for id, roomEntries := range byRoom {
		existing, err := s.Calendar(ctx, id)
		if err != nil {
			return nil, err
		}
		result.Calendars[id] = Merge(existing, roomEntries)
		for _, e := range roomEntries {
			rows = append(rows, domain.RoomAvailability{RoomID: e.RoomID, Date: e.Date, NoOfRoom: e.NoOfRoom})
		}
	}
	if err := s.availability.Upsert(ctx, rows); err != nil {
		return nil, fmt.Errorf("store availability: %w", err)
	}
	return result, nil
}

// Calendar returns a room's stored date->count mapping.
func (s *Service) Calendar(ctx context.Context, roomID int64) (map[string]int, error) {
	rows, err := s.availability.ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Date] = row.NoOfRoom
	}
	return out, nil
}

// Sample returns the downloadable example file.
func (s *Service) Sample(roomID int64) []byte {
	return SampleCSV(roomID)
}
