package repository

import (
	"context"

	"gorm.io/gorm"

	"travelhub/internal/domain"
)

type MealPlanRepository struct {
	db *gorm.DB
}

func NewMealPlanRepository(db *gorm.DB) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

func (r *MealPlanRepository) List(ctx context.Context) ([]domain.MealPlan, error) {
	var plans []domain.MealPlan
	if err := r.db.WithContext(ctx).Order("id").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *MealPlanRepository) Create(ctx context.Context, plan *domain.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}
