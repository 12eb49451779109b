package controllers

import (
	"net/http"
	"strconv"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	// Nil when the mobile integration is disabled; endpoints then degrade to
	// empty results instead of failing.
	Nutrition *services.NutritionService
}

func NewNutritionController(nutrition *services.NutritionService) *NutritionController {
	return &NutritionController{Nutrition: nutrition}
}

// GET /admin/nutrition/stats
func (nc *NutritionController) AllStats(c *gin.Context) {
	if nc.Nutrition == nil {
		c.JSON(http.StatusOK, []services.NutritionStats{})
		return
	}
	stats, err := nc.Nutrition.AllUsersStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /admin/nutrition/stats/:userId
func (nc *NutritionController) UserStats(c *gin.Context) {
	if nc.Nutrition == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "mobile integration disabled"})
		return
	}
	stats, err := nc.Nutrition.CalculateStats(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /admin/nutrition/logs/:userId?limit=7
func (nc *NutritionController) UserLogs(c *gin.Context) {
	if nc.Nutrition == nil {
		c.JSON(http.StatusOK, []any{})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "7"))
	logs, err := nc.Nutrition.UserDailyLogs(c.Request.Context(), c.Param("userId"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
