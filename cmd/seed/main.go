package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travelhub/internal/database"
	"travelhub/internal/domain"
)

// Seeds reference data for local development: the standard meal plans
// and a sample hotel with two rooms.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "travelhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if err := seedMealPlans(db); err != nil {
		log.Fatalf("seed meal plans: %v", err)
	}
	if err := seedSampleHotel(db); err != nil {
		log.Fatalf("seed hotel: %v", err)
	}

	log.Println("seed complete")
}

func seedMealPlans(db *gorm.DB) error {
	plans := []domain.MealPlan{
		{Name: "CP"},  // room + breakfast
		{Name: "MAP"}, // breakfast + one major meal
		{Name: "AP"},  // all meals
		{Name: "EP"},  // room only
	}
	for _, p := range plans {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedSampleHotel(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Hotel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("hotels already present, skipping sample hotel")
		return nil
	}

	hotel := domain.Hotel{
		Name:    "Seaview Residency",
		Country: "India",
		State:   "Goa",
		City:    "Panaji",
		Address: "12 Miramar Beach Road",
		Rooms: []domain.Room{
			{Name: "Deluxe Room", MaxAdults: 2, MaxChildren: 1, MaxInfants: 1, MaxPersons: 3},
			{Name: "Family Suite", MaxAdults: 3, MaxChildren: 2, MaxInfants: 1, MaxPersons: 5},
		},
	}
	return db.Create(&hotel).Error
}
