package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"
	"github.com/NguyenHoangLe0701/NutriCook-sub000/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentMirror pushes relational writes into the document store so the
// mobile client sees the same catalog. Writes are eventually mirrored, not
// synchronized: a mirror failure is logged and never rolls back the
// relational write.
type ContentMirror interface {
	MirrorFoodItem(ctx context.Context, item models.MirrorFoodItem) error
	DeleteFoodItemMirror(ctx context.Context, id string) error
	MirrorCategory(ctx context.Context, category models.MirrorCategory) error
	DeleteCategoryMirror(ctx context.Context, id string) error
}

type FoodService struct {
	db       *gorm.DB
	uploader *utils.ImageUploader // optional
	mirror   ContentMirror        // optional
}

func NewFoodService(db *gorm.DB, uploader *utils.ImageUploader, mirror ContentMirror) *FoodService {
	return &FoodService{db: db, uploader: uploader, mirror: mirror}
}

func (s *FoodService) List() ([]models.FoodItem, error) {
	var foods []models.FoodItem
	if err := s.db.Preload("Category").Order("name").Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	return foods, nil
}

func (s *FoodService) Get(id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	if err := s.db.Preload("Category").Preload("User").First(&food, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: food item %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &food, nil
}

// Search matches the name substring case-insensitively.
func (s *FoodService) Search(query string) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	if err := s.db.Preload("Category").
		Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		Order("name").
		Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("food search failed: %w", err)
	}
	return foods, nil
}

func (s *FoodService) ListByCategory(categoryID uint) ([]models.FoodItem, error) {
	var foods []models.FoodItem
	if err := s.db.Where("category_id = ?", categoryID).Order("name").Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("failed to list foods by category: %w", err)
	}
	return foods, nil
}

// Create validates the category reference up front, optionally uploads a
// base64 image, writes the row together with its CREATE audit entry, then
// mirrors best-effort.
func (s *FoodService) Create(food *models.FoodItem, actorID uint, base64Image string) error {
	var category models.Category
	if err := s.db.First(&category, food.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d does not exist", ErrConflict, food.CategoryID)
		}
		return err
	}

	if base64Image != "" && s.uploader != nil {
		url, err := s.uploader.UploadBase64Image(context.Background(), base64Image, "food")
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		food.ImageURL = url
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(food).Error; err != nil {
			return err
		}
		return tx.Create(&models.FoodUpdate{
			UserID:     actorID,
			FoodItemID: food.ID,
			Action:     models.ActionCreate,
			NewValue:   snapshot(food),
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create food item: %w", err)
	}

	s.mirrorFood(food, category.Name)
	return nil
}

func (s *FoodService) Update(food *models.FoodItem, actorID uint, base64Image string) error {
	old, err := s.Get(food.ID)
	if err != nil {
		return err
	}

	var category models.Category
	if err := s.db.First(&category, food.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category %d does not exist", ErrConflict, food.CategoryID)
		}
		return err
	}

	if base64Image != "" && s.uploader != nil {
		url, err := s.uploader.UploadBase64Image(context.Background(), base64Image, "food")
		if err != nil {
			return fmt.Errorf("failed to upload image: %w", err)
		}
		food.ImageURL = url
	} else if food.ImageURL == "" {
		food.ImageURL = old.ImageURL
	}

	// The struct usually arrives with the association preloaded by Get. Saving
	// associations would write the stale Category.ID back over the new
	// CategoryID, so replace it and keep the save row-only.
	food.Category = category

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(food).Error; err != nil {
			return err
		}
		return tx.Create(&models.FoodUpdate{
			UserID:     actorID,
			FoodItemID: food.ID,
			Action:     models.ActionUpdate,
			OldValue:   snapshot(old),
			NewValue:   snapshot(food),
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update food item: %w", err)
	}

	s.mirrorFood(food, category.Name)
	return nil
}

func (s *FoodService) Delete(id uint, actorID uint) error {
	food, err := s.Get(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.FoodUpdate{
			UserID:     actorID,
			FoodItemID: food.ID,
			Action:     models.ActionDelete,
			OldValue:   snapshot(food),
		}).Error; err != nil {
			return err
		}
		return tx.Delete(food).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete food item: %w", err)
	}

	if s.mirror != nil {
		if err := s.mirror.DeleteFoodItemMirror(context.Background(), strconv.FormatUint(uint64(id), 10)); err != nil {
			log.Printf("mirror delete of food %d failed: %v", id, err)
		}
	}
	return nil
}

func (s *FoodService) mirrorFood(food *models.FoodItem, categoryName string) {
	if s.mirror == nil {
		return
	}
	item := models.MirrorFoodItem{
		ID:           strconv.FormatUint(uint64(food.ID), 10),
		Name:         food.Name,
		Calories:     food.Calories,
		ImageURL:     food.ImageURL,
		CategoryID:   strconv.FormatUint(uint64(food.CategoryID), 10),
		CategoryName: categoryName,
		Available:    food.Available,
	}
	if err := s.mirror.MirrorFoodItem(context.Background(), item); err != nil {
		log.Printf("mirror of food %d failed: %v", food.ID, err)
	}
}

func snapshot(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
