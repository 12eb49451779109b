package controllers

import (
	"net/http"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"
	"github.com/NguyenHoangLe0701/NutriCook-sub000/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{Foods: foods}
}

// GET /admin/foods
func (fc *FoodController) List(c *gin.Context) {
	foods, err := fc.Foods.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /admin/foods/search?q=apple
func (fc *FoodController) Search(c *gin.Context) {
	foods, err := fc.Foods.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

// GET /admin/foods/:id
func (fc *FoodController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	food, err := fc.Foods.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

type foodReq struct {
	Name        string `json:"name" binding:"required"`
	Calories    string `json:"calories"`
	Description string `json:"description"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	Available   *bool  `json:"available"`

	Fat         string `json:"fat"`
	Carbs       string `json:"carbs"`
	Protein     string `json:"protein"`
	Cholesterol string `json:"cholesterol"`
	Sodium      string `json:"sodium"`
	Vitamin     string `json:"vitamin"`
	VitaminA    string `json:"vitamin_a"`
	VitaminB    string `json:"vitamin_b"`
	VitaminC    string `json:"vitamin_c"`
	VitaminD    string `json:"vitamin_d"`
	Unit        string `json:"unit"`

	// "data:<mime>;base64,<data>"; uploaded to the image host when present.
	ImageBase64 string `json:"image_base64"`
	ImageURL    string `json:"image_url"`
}

func (r *foodReq) apply(food *models.FoodItem) {
	food.Name = r.Name
	food.Calories = r.Calories
	food.Description = r.Description
	food.CategoryID = r.CategoryID
	if r.Available != nil {
		food.Available = *r.Available
	} else {
		food.Available = true
	}
	food.Fat = r.Fat
	food.Carbs = r.Carbs
	food.Protein = r.Protein
	food.Cholesterol = r.Cholesterol
	food.Sodium = r.Sodium
	food.Vitamin = r.Vitamin
	food.VitaminA = r.VitaminA
	food.VitaminB = r.VitaminB
	food.VitaminC = r.VitaminC
	food.VitaminD = r.VitaminD
	food.Unit = r.Unit
	if r.ImageURL != "" {
		food.ImageURL = r.ImageURL
	}
}

// POST /admin/foods
func (fc *FoodController) Create(c *gin.Context) {
	var req foodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actorID := c.GetUint("userID")
	var food models.FoodItem
	if actorID != 0 {
		food.UserID = &actorID
	}
	req.apply(&food)

	if err := fc.Foods.Create(&food, actorID, req.ImageBase64); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

// PUT /admin/foods/:id
func (fc *FoodController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req foodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := fc.Foods.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	req.apply(food)

	if err := fc.Foods.Update(food, c.GetUint("userID"), req.ImageBase64); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// DELETE /admin/foods/:id
func (fc *FoodController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := fc.Foods.Delete(id, c.GetUint("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "food deleted"})
}
