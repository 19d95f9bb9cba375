package domain

import "time"

// RoomAvailability is one date's rooms-on-sale count for a room. Imports
// upsert on (room_id, date).
type RoomAvailability struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	RoomID   int64  `json:"room_id" gorm:"not null;uniqueIndex:idx_room_date"`
	Date     string `json:"date" gorm:"size:10;not null;uniqueIndex:idx_room_date"`
	NoOfRoom int    `json:"no_of_room" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RoomAvailability) TableName() string { return "room_availabilities" }
