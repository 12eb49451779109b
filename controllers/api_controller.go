package controllers

import (
	"net/http"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/services"

	"github.com/gin-gonic/gin"
)

// APIController is the small public JSON API the mobile client reads the
// catalog from.
type APIController struct {
	Categories *services.CategoryService
	Foods      *services.FoodService
}

func NewAPIController(categories *services.CategoryService, foods *services.FoodService) *APIController {
	return &APIController{Categories: categories, Foods: foods}
}

// GET /api/categories
func (a *APIController) ListCategories(c *gin.Context) {
	categories, err := a.Categories.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GET /api/foods
func (a *APIController) ListFoods(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		foods, err := a.Foods.Search(q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, foods)
		return
	}
	foods, err := a.Foods.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /api/categories/:id/foods
func (a *APIController) FoodsByCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	foods, err := a.Foods.ListByCategory(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /api/foods/:id
func (a *APIController) Food(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	food, err := a.Foods.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}
