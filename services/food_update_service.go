package services

import (
	"fmt"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"

	"gorm.io/gorm"
)

// FoodUpdateService reads the audit trail. Rows are written only by
// FoodService; there is deliberately no update or delete here.
type FoodUpdateService struct {
	db *gorm.DB
}

func NewFoodUpdateService(db *gorm.DB) *FoodUpdateService {
	return &FoodUpdateService{db: db}
}

func (s *FoodUpdateService) ListRecent(limit int) ([]models.FoodUpdate, error) {
	if limit <= 0 {
		limit = 50
	}
	var updates []models.FoodUpdate
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&updates).Error; err != nil {
		return nil, fmt.Errorf("failed to list food updates: %w", err)
	}
	return updates, nil
}

func (s *FoodUpdateService) ListByFood(foodID uint) ([]models.FoodUpdate, error) {
	var updates []models.FoodUpdate
	if err := s.db.Where("food_item_id = ?", foodID).Order("created_at DESC").Find(&updates).Error; err != nil {
		return nil, fmt.Errorf("failed to list food updates: %w", err)
	}
	return updates, nil
}

func (s *FoodUpdateService) ListByUser(userID uint) ([]models.FoodUpdate, error) {
	var updates []models.FoodUpdate
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&updates).Error; err != nil {
		return nil, fmt.Errorf("failed to list food updates: %w", err)
	}
	return updates, nil
}
