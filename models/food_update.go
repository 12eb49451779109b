package models

import "time"

const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// FoodUpdate is an append-only audit row. Rows are written by FoodService on
// every food mutation and never modified afterwards.
type FoodUpdate struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"index" json:"user_id"`
	FoodItemID uint   `gorm:"index" json:"food_item_id"`
	Action     string `gorm:"size:16;not null" json:"action"`
	OldValue   string `gorm:"type:text" json:"old_value"`
	NewValue   string `gorm:"type:text" json:"new_value"`
	CreatedAt  time.Time
}
