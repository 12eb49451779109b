package controllers

import (
	"net/http"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"
	"github.com/NguyenHoangLe0701/NutriCook-sub000/services"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService) *CategoryController {
	return &CategoryController{Categories: categories}
}

// GET /admin/categories
func (cc *CategoryController) List(c *gin.Context) {
	categories, err := cc.Categories.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GET /admin/categories/:id
func (cc *CategoryController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	category, err := cc.Categories.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

type categoryReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// POST /admin/categories
func (cc *CategoryController) Create(c *gin.Context) {
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}
	if err := cc.Categories.Create(&category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// PUT /admin/categories/:id
func (cc *CategoryController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := cc.Categories.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	category.Name = req.Name
	category.Description = req.Description
	category.Icon = req.Icon
	category.Color = req.Color

	if err := cc.Categories.Update(category); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DELETE /admin/categories/:id
func (cc *CategoryController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := cc.Categories.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
