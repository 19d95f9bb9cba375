package domain

import "time"

// MealPlan is reference data (CP, MAP, AP, EP and friends).
type MealPlan struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
}
