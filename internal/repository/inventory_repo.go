package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelhub/internal/domain"
)

// InventoryRows groups every row family belonging to one inventory; the
// service layer maps it to and from the engine payload.
type InventoryRows struct {
	Header     domain.Inventory
	Rooms      []domain.InventoryRoom
	Items      []domain.InventoryLineItem
	ExtraCosts []domain.InventoryExtraCost
}

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Save persists all row families atomically. For updates the child rows are
// replaced wholesale; the flattened payload is the source of truth.
func (r *InventoryRepository) Save(ctx context.Context, rows *InventoryRows) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&rows.Header).Error; err != nil {
			return err
		}
		id := rows.Header.ID

		for _, model := range []any{
			&domain.InventoryRoom{},
			&domain.InventoryLineItem{},
			&domain.InventoryExtraCost{},
		} {
			if err := tx.Where("inventory_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}

		for i := range rows.Rooms {
			rows.Rooms[i].ID = 0
			rows.Rooms[i].InventoryID = id
		}
		if len(rows.Rooms) > 0 {
			if err := tx.Create(&rows.Rooms).Error; err != nil {
				return err
			}
		}
		for i := range rows.Items {
			rows.Items[i].ID = 0
			rows.Items[i].InventoryID = id
		}
		if len(rows.Items) > 0 {
			if err := tx.Create(&rows.Items).Error; err != nil {
				return err
			}
		}
		for i := range rows.ExtraCosts {
			rows.ExtraCosts[i].ID = 0
			rows.ExtraCosts[i].InventoryID = id
		}
		if len(rows.ExtraCosts) > 0 {
			if err := tx.Create(&rows.ExtraCosts).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *InventoryRepository) Get(ctx context.Context, id uuid.UUID) (*InventoryRows, error) {
	var rows InventoryRows
	db := r.db.WithContext(ctx)

	if err := db.First(&rows.Header, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := db.Where("inventory_id = ?", id).Order("id").Find(&rows.Rooms).Error; err != nil {
		return nil, err
	}
	if err := db.Where("inventory_id = ?", id).Order("id").Find(&rows.Items).Error; err != nil {
		return nil, err
	}
	if err := db.Where("inventory_id = ?", id).Order("id").Find(&rows.ExtraCosts).Error; err != nil {
		return nil, err
	}
	return &rows, nil
}

func (r *InventoryRepository) List(ctx context.Context, hotelID int64) ([]domain.Inventory, error) {
	var out []domain.Inventory
	q := r.db.WithContext(ctx).Order("created_at desc")
	if hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
