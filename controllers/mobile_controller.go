package controllers

import (
	"net/http"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"
	"github.com/NguyenHoangLe0701/NutriCook-sub000/services"

	"github.com/gin-gonic/gin"
)

// MobileController exposes mobile-authored content (posts, reviews, user
// recipes) for moderation. Content is only ever soft-deleted.
type MobileController struct {
	// Nil when the mobile integration is disabled.
	Store *services.MobileStore
}

func NewMobileController(store *services.MobileStore) *MobileController {
	return &MobileController{Store: store}
}

// GET /admin/mobile/users
func (mc *MobileController) Users(c *gin.Context) {
	if mc.Store == nil {
		c.JSON(http.StatusOK, []models.MobileUser{})
		return
	}
	users, err := mc.Store.Users(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /admin/mobile/posts
func (mc *MobileController) Posts(c *gin.Context) {
	if mc.Store == nil {
		c.JSON(http.StatusOK, []models.Post{})
		return
	}
	posts, err := mc.Store.Posts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// DELETE /admin/mobile/posts/:id
func (mc *MobileController) DeletePost(c *gin.Context) {
	if mc.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "mobile integration disabled"})
		return
	}
	if err := mc.Store.SoftDeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post hidden"})
}

// GET /admin/mobile/reviews
func (mc *MobileController) Reviews(c *gin.Context) {
	if mc.Store == nil {
		c.JSON(http.StatusOK, []models.Review{})
		return
	}
	reviews, err := mc.Store.Reviews(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// DELETE /admin/mobile/reviews/:id
func (mc *MobileController) DeleteReview(c *gin.Context) {
	if mc.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "mobile integration disabled"})
		return
	}
	if err := mc.Store.SoftDeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review hidden"})
}

// GET /admin/mobile/recipes
func (mc *MobileController) Recipes(c *gin.Context) {
	if mc.Store == nil {
		c.JSON(http.StatusOK, []models.UserRecipe{})
		return
	}
	recipes, err := mc.Store.UserRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// DELETE /admin/mobile/recipes/:id
func (mc *MobileController) DeleteRecipe(c *gin.Context) {
	if mc.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "mobile integration disabled"})
		return
	}
	if err := mc.Store.SoftDeleteUserRecipe(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe hidden"})
}
