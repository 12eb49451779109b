package controllers

import (
	"net/http"
	"strconv"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"
	"github.com/NguyenHoangLe0701/NutriCook-sub000/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// GET /admin/users
func (u *UserController) List(c *gin.Context) {
	users, err := u.Users.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /admin/users/:id
func (u *UserController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := u.Users.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type userReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
	Role     string `json:"role"`
}

// POST /admin/users
func (u *UserController) Create(c *gin.Context) {
	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Avatar:   req.Avatar,
		Role:     req.Role,
	}
	if err := u.Users.Create(&user, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// PUT /admin/users/:id
func (u *UserController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req userReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := u.Users.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	existing.Username = req.Username
	existing.Email = req.Email
	existing.FullName = req.FullName
	existing.Avatar = req.Avatar
	if req.Role != "" {
		existing.Role = req.Role
	}

	if err := u.Users.Update(existing); err != nil {
		respondError(c, err)
		return
	}
	if req.Password != "" {
		if err := u.Users.ChangePassword(id, req.Password); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, existing)
}

// DELETE /admin/users/:id
func (u *UserController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := u.Users.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

type enableReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// PATCH /admin/users/:id/enabled
func (u *UserController) SetEnabled(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req enableReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enabled is required"})
		return
	}
	if err := u.Users.SetEnabled(id, *req.Enabled); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": *req.Enabled})
}
