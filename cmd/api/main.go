package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"travelhub/internal/database"
	"travelhub/internal/middleware"
	"travelhub/internal/modules/calendar"
	"travelhub/internal/modules/catalog"
	"travelhub/internal/modules/inventory"
	"travelhub/internal/repository"
)

func main() {
	// .env is optional; real deployments use environment variables
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, continuing with environment variables")
	}

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

	hotelRepo := repository.NewHotelRepository(db)
	mealPlanRepo := repository.NewMealPlanRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)

	catalogHandler := catalog.NewHandler(catalog.NewService(hotelRepo, mealPlanRepo))
	inventoryHandler := inventory.NewHandler(inventory.NewService(inventoryRepo, mealPlanRepo))
	calendarHandler := calendar.NewHandler(calendar.NewService(availabilityRepo, hotelRepo))

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)
		inventoryHandler.RegisterRoutes(v1)
		calendarHandler.RegisterRoutes(v1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("server stopped")
}
