package controllers

import (
	"net/http"
	"strconv"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/services"

	"github.com/gin-gonic/gin"
)

type FoodUpdateController struct {
	Updates *services.FoodUpdateService
}

func NewFoodUpdateController(updates *services.FoodUpdateService) *FoodUpdateController {
	return &FoodUpdateController{Updates: updates}
}

// GET /admin/updates?limit=50
func (fu *FoodUpdateController) ListRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	updates, err := fu.Updates.ListRecent(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updates)
}

// GET /admin/updates/food/:id
func (fu *FoodUpdateController) ListByFood(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	updates, err := fu.Updates.ListByFood(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updates)
}

// GET /admin/updates/user/:id
func (fu *FoodUpdateController) ListByUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	updates, err := fu.Updates.ListByUser(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updates)
}
