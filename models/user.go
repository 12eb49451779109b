package models

import "gorm.io/gorm"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
	Role     string `gorm:"size:16;default:USER" json:"role"`
	Enabled  bool   `gorm:"default:true" json:"enabled"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
