package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db     *gorm.DB
	mirror ContentMirror // optional
}

func NewCategoryService(db *gorm.DB, mirror ContentMirror) *CategoryService {
	return &CategoryService{db: db, mirror: mirror}
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Get(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &category, nil
}

// FindByName matches case-insensitively; names are unique so at most one row
// can match.
func (s *CategoryService) FindByName(name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("LOWER(name) = LOWER(?)", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %q", ErrNotFound, name)
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Create(category *models.Category) error {
	if err := s.checkNameUnique(category.Name, 0); err != nil {
		return err
	}
	if err := s.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	s.mirrorCategory(category)
	return nil
}

func (s *CategoryService) Update(category *models.Category) error {
	if _, err := s.Get(category.ID); err != nil {
		return err
	}
	if err := s.checkNameUnique(category.Name, category.ID); err != nil {
		return err
	}
	if err := s.db.Save(category).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	s.mirrorCategory(category)
	return nil
}

// Delete is rejected while any food item still references the category; the
// delete is not attempted in that case.
func (s *CategoryService) Delete(id uint) error {
	category, err := s.Get(id)
	if err != nil {
		return err
	}

	var foods int64
	if err := s.db.Model(&models.FoodItem{}).Where("category_id = ?", id).Count(&foods).Error; err != nil {
		return err
	}
	if foods > 0 {
		return fmt.Errorf("%w: category %q still has %d food item(s)", ErrConflict, category.Name, foods)
	}

	if err := s.db.Delete(category).Error; err != nil {
		return err
	}

	if s.mirror != nil {
		if err := s.mirror.DeleteCategoryMirror(context.Background(), strconv.FormatUint(uint64(id), 10)); err != nil {
			log.Printf("mirror delete of category %d failed: %v", id, err)
		}
	}
	return nil
}

func (s *CategoryService) mirrorCategory(category *models.Category) {
	if s.mirror == nil {
		return
	}
	doc := models.MirrorCategory{
		ID:    strconv.FormatUint(uint64(category.ID), 10),
		Name:  category.Name,
		Icon:  category.Icon,
		Color: category.Color,
	}
	if err := s.mirror.MirrorCategory(context.Background(), doc); err != nil {
		log.Printf("mirror of category %d failed: %v", category.ID, err)
	}
}

func (s *CategoryService) checkNameUnique(name string, excludeID uint) error {
	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("LOWER(name) = LOWER(?) AND id <> ?", name, excludeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: category name %q already exists", ErrConflict, name)
	}
	return nil
}
