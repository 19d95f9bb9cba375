package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	ID      int64  `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:255;not null"`
	Country string `json:"country" gorm:"size:100"`
	State   string `json:"state" gorm:"size:100"`
	City    string `json:"city" gorm:"size:100"`
	Address string `json:"address" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}

type Room struct {
	ID      int64  `json:"id" gorm:"primaryKey"`
	HotelID int64  `json:"hotel_id" gorm:"index;not null"`
	Name    string `json:"name" gorm:"size:255;not null"`

	MaxAdults   int `json:"max_adults"`
	MaxChildren int `json:"max_children"`
	MaxInfants  int `json:"max_infants"`
	MaxPersons  int `json:"max_persons"`

	// BlackoutDates stores the room's excluded ISO dates as a JSON array.
	BlackoutDates datatypes.JSON `json:"blackout_dates,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
