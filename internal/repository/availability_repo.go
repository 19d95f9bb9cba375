package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travelhub/internal/domain"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) ListByRoom(ctx context.Context, roomID int64) ([]domain.RoomAvailability, error) {
	var rows []domain.RoomAvailability
	if err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("date").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Upsert overwrites the count for each (room, date) pair, leaving other
// dates untouched.
func (r *AvailabilityRepository) Upsert(ctx context.Context, rows []domain.RoomAvailability) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"no_of_room", "updated_at"}),
	}).Create(&rows).Error
}
