package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `gorm:"size:32" json:"color"`
}
