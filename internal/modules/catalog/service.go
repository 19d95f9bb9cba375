package catalog

import (
	"context"
	"errors"

	"travelhub/internal/domain"
	"travelhub/internal/repository"
)

var ErrDuplicateName = errors.New("name already exists")

// Service exposes the reference data the inventory screens consume: meal
// plans, hotels and their rooms.
type Service struct {
	hotels    *repository.HotelRepository
	mealPlans *repository.MealPlanRepository
}

func NewService(hotels *repository.HotelRepository, mealPlans *repository.MealPlanRepository) *Service {
	return &Service{hotels: hotels, mealPlans: mealPlans}
}

func (s *Service) ListMealPlans(ctx context.Context) ([]domain.MealPlan, error) {
	return s.mealPlans.List(ctx)
}

func (s *Service) CreateMealPlan(ctx context.Context, req CreateMealPlanRequest) (*domain.MealPlan, error) {
	plan := &domain.MealPlan{Name: req.Name}
	if err := s.mealPlans.Create(ctx, plan); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return plan, nil
}

func (s *Service) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	return s.hotels.List(ctx)
}

func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	return s.hotels.GetByID(ctx, id)
}

func (s *Service) CreateHotel(ctx context.Context, req CreateHotelRequest) (*domain.Hotel, error) {
	hotel := &domain.Hotel{
		Name:    req.Name,
		Country: req.Country,
		State:   req.State,
		City:    req.City,
		Address: req.Address,
	}
	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *Service) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return s.hotels.ListRooms(ctx, hotelID)
}

func (s *Service) CreateRoom(ctx context.Context, hotelID int64, req CreateRoomRequest) (*domain.Room, error) {
	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		return nil, err
	}
	maxPersons := req.MaxPersons
	if sum := req.MaxAdults + req.MaxChildren; maxPersons < sum {
		maxPersons = sum
	}
	room := &domain.Room{
		HotelID:     hotelID,
		Name:        req.Name,
		MaxAdults:   req.MaxAdults,
		MaxChildren: req.MaxChildren,
		MaxInfants:  req.MaxInfants,
		MaxPersons:  maxPersons,
	}
	if err := s.hotels.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}
