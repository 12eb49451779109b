package models

import "gorm.io/gorm"

type FoodItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Calories    string `json:"calories"` // free text, e.g. "250 kcal / 100g"
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`

	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Category   Category `gorm:"constraint:OnDelete:CASCADE" json:"category"`

	// Uploader; kept when the user account is removed.
	UserID *uint `gorm:"index" json:"user_id"`
	User   *User `gorm:"constraint:OnDelete:SET NULL" json:"user,omitempty"`

	Available    bool    `gorm:"default:true" json:"available"`
	Rating       float64 `json:"rating"`
	ReviewsCount int     `json:"reviews_count"`

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
	Unit        string `gorm:"size:32" json:"unit"`
}
