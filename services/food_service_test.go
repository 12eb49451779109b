package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingMirror struct {
	foods      []models.MirrorFoodItem
	categories []models.MirrorCategory
	deleted    []string
	err        error
}

func (m *recordingMirror) MirrorFoodItem(ctx context.Context, item models.MirrorFoodItem) error {
	if m.err != nil {
		return m.err
	}
	m.foods = append(m.foods, item)
	return nil
}

func (m *recordingMirror) DeleteFoodItemMirror(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *recordingMirror) MirrorCategory(ctx context.Context, category models.MirrorCategory) error {
	if m.err != nil {
		return m.err
	}
	m.categories = append(m.categories, category)
	return nil
}

func (m *recordingMirror) DeleteCategoryMirror(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func auditRows(t *testing.T, db *gorm.DB, foodID uint) []models.FoodUpdate {
	t.Helper()
	var rows []models.FoodUpdate
	require.NoError(t, db.Where("food_item_id = ?", foodID).Order("id").Find(&rows).Error)
	return rows
}

func TestFoodServiceCreateWritesAudit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db, nil, nil)
	category := seedCategory(t, db, "Noodles")

	food := models.FoodItem{Name: "Bun Cha", CategoryID: category.ID, Calories: "450 kcal"}
	require.NoError(t, svc.Create(&food, 7, ""))

	rows := auditRows(t, db, food.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, models.ActionCreate, rows[0].Action)
	assert.EqualValues(t, 7, rows[0].UserID)
	assert.Empty(t, rows[0].OldValue)
	assert.Contains(t, rows[0].NewValue, "Bun Cha")
}

func TestFoodServiceUpdateAndDeleteAudit(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db, nil, nil)
	category := seedCategory(t, db, "Noodles")

	food := models.FoodItem{Name: "Pho Bo", CategoryID: category.ID}
	require.NoError(t, svc.Create(&food, 1, ""))

	food.Calories = "400 kcal"
	require.NoError(t, svc.Update(&food, 2, ""))

	require.NoError(t, svc.Delete(food.ID, 3))

	rows := auditRows(t, db, food.ID)
	require.Len(t, rows, 3)
	assert.Equal(t, models.ActionUpdate, rows[1].Action)
	assert.Contains(t, rows[1].OldValue, "Pho Bo")
	assert.Contains(t, rows[1].NewValue, "400 kcal")
	assert.Equal(t, models.ActionDelete, rows[2].Action)
	assert.Contains(t, rows[2].OldValue, "Pho Bo")
	assert.EqualValues(t, 3, rows[2].UserID)
}

func TestFoodServiceUpdateMovesToNewCategory(t *testing.T) {
	db := setupTestDB(t)
	mirror := &recordingMirror{}
	svc := NewFoodService(db, nil, mirror)
	soups := seedCategory(t, db, "Soups")
	salads := seedCategory(t, db, "Salads")

	food := models.FoodItem{Name: "Goi Cuon", CategoryID: soups.ID}
	require.NoError(t, svc.Create(&food, 1, ""))

	// The admin path loads the row with its association before editing.
	loaded, err := svc.Get(food.ID)
	require.NoError(t, err)
	require.Equal(t, soups.ID, loaded.Category.ID)

	loaded.CategoryID = salads.ID
	require.NoError(t, svc.Update(loaded, 1, ""))

	var reloaded models.FoodItem
	require.NoError(t, db.First(&reloaded, food.ID).Error)
	assert.Equal(t, salads.ID, reloaded.CategoryID)

	// Audit and mirror record the new pairing, not the preloaded one.
	rows := auditRows(t, db, food.ID)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1].NewValue, fmt.Sprintf(`"category_id":%d`, salads.ID))

	require.Len(t, mirror.foods, 2)
	assert.Equal(t, fmt.Sprintf("%d", salads.ID), mirror.foods[1].CategoryID)
	assert.Equal(t, "Salads", mirror.foods[1].CategoryName)
}

func TestFoodServiceCreateUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db, nil, nil)

	food := models.FoodItem{Name: "Nowhere", CategoryID: 42}
	err := svc.Create(&food, 1, "")
	assert.ErrorIs(t, err, ErrConflict)

	var count int64
	db.Model(&models.FoodItem{}).Count(&count)
	assert.Zero(t, count)
}

func TestFoodServiceMirrorFailureDoesNotFailWrite(t *testing.T) {
	db := setupTestDB(t)
	mirror := &recordingMirror{err: fmt.Errorf("%w: dynamo down", ErrUnavailable)}
	svc := NewFoodService(db, nil, mirror)
	category := seedCategory(t, db, "Rice")

	food := models.FoodItem{Name: "Com Tam", CategoryID: category.ID}
	require.NoError(t, svc.Create(&food, 1, ""))

	// The relational write survives the mirror failure.
	_, err := svc.Get(food.ID)
	assert.NoError(t, err)
}

func TestFoodServiceMirrorsDenormalizedCategory(t *testing.T) {
	db := setupTestDB(t)
	mirror := &recordingMirror{}
	svc := NewFoodService(db, nil, mirror)
	category := seedCategory(t, db, "Grilled")

	food := models.FoodItem{Name: "Nem Nuong", CategoryID: category.ID, Available: true}
	require.NoError(t, svc.Create(&food, 1, ""))

	require.Len(t, mirror.foods, 1)
	assert.Equal(t, "Grilled", mirror.foods[0].CategoryName)
	assert.NotEmpty(t, mirror.foods[0].CategoryID)
}

func TestFoodServiceSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFoodService(db, nil, nil)
	category := seedCategory(t, db, "Noodles")

	for _, name := range []string{"Pho Bo", "Pho Ga", "Banh Mi"} {
		require.NoError(t, svc.Create(&models.FoodItem{Name: name, CategoryID: category.ID}, 1, ""))
	}

	foods, err := svc.Search("pho")
	require.NoError(t, err)
	assert.Len(t, foods, 2)

	foods, err = svc.ListByCategory(category.ID)
	require.NoError(t, err)
	assert.Len(t, foods, 3)
}
