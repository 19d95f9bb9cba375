package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Inventory is the persisted header of one pricing/availability
// configuration for a hotel.
type Inventory struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	HotelID int64     `json:"hotel_id" gorm:"index;not null"`

	Mode   string `json:"mode" gorm:"size:16;not null"`
	Status string `json:"status" gorm:"size:16;not null"`

	Country  string    `json:"country" gorm:"size:100"`
	State    string    `json:"state" gorm:"size:100"`
	City     string    `json:"city" gorm:"size:100"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`

	// Price is the explicit nightly price, when the operator entered one.
	Price *float64 `json:"price,omitempty"`

	// BlackoutDates is the hotel-wide union, stored as a JSON array.
	BlackoutDates datatypes.JSON `json:"blackout_dates,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Rooms []InventoryRoom     `json:"rooms,omitempty" gorm:"foreignKey:InventoryID"`
	Items []InventoryLineItem `json:"items,omitempty" gorm:"foreignKey:InventoryID"`
}

func (Inventory) TableName() string { return "inventories" }

func (i *Inventory) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// InventoryRoom is the per-room detail row of an inventory.
type InventoryRoom struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	InventoryID uuid.UUID `json:"inventory_id" gorm:"type:uuid;index;not null"`
	RoomID      int64     `json:"room_id" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"size:255"`

	Adults          int `json:"adults"`
	Children        int `json:"children"`
	Infants         int `json:"infants"`
	MaxPersons      int `json:"max_persons"`
	FrontRoomsCount int `json:"front_rooms_count"`

	// JSON arrays: selected meal plan ids, occupancy tiers, weekend day
	// names and the room's date ranges.
	MealPlanIDs   datatypes.JSON `json:"meal_plan_ids,omitempty"`
	Occupancies   datatypes.JSON `json:"occupancies,omitempty"`
	WeekendDays   datatypes.JSON `json:"weekend_days,omitempty"`
	Ranges        datatypes.JSON `json:"ranges,omitempty"`
	BlackoutDates datatypes.JSON `json:"blackout_dates,omitempty"`

	Refundable  bool           `json:"refundable"`
	RefundRules datatypes.JSON `json:"refund_rules,omitempty"`

	HoldEnabled    bool    `json:"hold_enabled"`
	HoldType       string  `json:"hold_type" gorm:"size:16"`
	HoldAmount     float64 `json:"hold_amount"`
	HoldCutoffDays int     `json:"hold_cutoff_days"`
	HoldLimitHours int     `json:"hold_limit_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InventoryLineItem is one flattened priced record:
// room x range x occupancy x meal plan x day type.
type InventoryLineItem struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	InventoryID uuid.UUID `json:"inventory_id" gorm:"type:uuid;index;not null"`

	RoomID     int64  `json:"room_id" gorm:"index;not null"`
	StartDate  string `json:"start_date" gorm:"size:10;not null"`
	EndDate    string `json:"end_date" gorm:"size:10;not null"`
	Person     int    `json:"person" gorm:"not null"`
	MealType   int64  `json:"meal_type" gorm:"not null"`
	Amount     int    `json:"amount" gorm:"not null"`
	Type       string `json:"type" gorm:"size:16;not null"`
	RoomsCount int    `json:"rooms_count"`

	CreatedAt time.Time `json:"created_at"`
}

// InventoryExtraCost is one extra-bed/child amount row, room-scoped.
type InventoryExtraCost struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	InventoryID uuid.UUID `json:"inventory_id" gorm:"type:uuid;index;not null"`

	RoomID     int64  `json:"room_id" gorm:"index;not null"`
	Type       string `json:"type" gorm:"size:16;not null"`
	GuestKind  string `json:"guest_kind" gorm:"size:16;not null"`
	MealPlanID int64  `json:"meal_type" gorm:"not null"`
	Amount     int    `json:"amount" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
}
