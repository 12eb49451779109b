package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"
	"github.com/NguyenHoangLe0701/NutriCook-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupFoodController(t *testing.T) (*FoodController, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.FoodItem{}, &models.FoodUpdate{}))
	return NewFoodController(services.NewFoodService(db, nil, nil)), db
}

func postJSON(c *gin.Context, path, body string) {
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
}

func TestFoodCreateWithActorRecordsUploader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fc, db := setupFoodController(t)

	admin := models.User{Username: "root", Email: "root@example.com", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&admin).Error)
	category := models.Category{Name: "Soups"}
	require.NoError(t, db.Create(&category).Error)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", admin.ID)
	postJSON(c, "/admin/foods", fmt.Sprintf(`{"name":"Pho","category_id":%d}`, category.ID))

	fc.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var food models.FoodItem
	require.NoError(t, db.First(&food).Error)
	require.NotNil(t, food.UserID)
	assert.Equal(t, admin.ID, *food.UserID)
}

func TestFoodCreateWithoutActorLeavesUploaderUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	fc, db := setupFoodController(t)

	category := models.Category{Name: "Soups"}
	require.NoError(t, db.Create(&category).Error)

	// No userID in the context. The row must not reference user 0.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	postJSON(c, "/admin/foods", fmt.Sprintf(`{"name":"Pho","category_id":%d}`, category.ID))

	fc.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var food models.FoodItem
	require.NoError(t, db.First(&food).Error)
	assert.Nil(t, food.UserID)
}
