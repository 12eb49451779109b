package models

// Document-store shapes. These mirror what the mobile client writes to
// DynamoDB; the admin backend reads them and only ever soft-deletes content.

type MobileUser struct {
	UserID         string  `dynamodbav:"userId" json:"user_id"`
	FullName       string  `dynamodbav:"fullName" json:"full_name"`
	Email          string  `dynamodbav:"email" json:"email"`
	Avatar         string  `dynamodbav:"avatar" json:"avatar"`
	FCMToken       string  `dynamodbav:"fcmToken" json:"fcm_token,omitempty"`
	CaloriesTarget float64 `dynamodbav:"caloriesTarget" json:"calories_target"`
	// Epoch milliseconds; 0 when the mobile client never set it.
	CreatedAt int64 `dynamodbav:"createdAt" json:"created_at"`
}

// DailyLog is one day's aggregated intake for a user, keyed by ISO date.
// Upserted by the mobile client, read-only here.
type DailyLog struct {
	Date      string  `dynamodbav:"date" json:"date"` // "2006-01-02"
	Calories  float64 `dynamodbav:"calories" json:"calories"`
	Protein   float64 `dynamodbav:"protein" json:"protein"`
	Fat       float64 `dynamodbav:"fat" json:"fat"`
	Carbs     float64 `dynamodbav:"carbs" json:"carbs"`
	UpdatedAt int64   `dynamodbav:"updatedAt" json:"updated_at"`
}

type Post struct {
	ID        string `dynamodbav:"id" json:"id"`
	UserID    string `dynamodbav:"userId" json:"user_id"`
	Content   string `dynamodbav:"content" json:"content"`
	ImageURL  string `dynamodbav:"imageUrl" json:"image_url"`
	Deleted   bool   `dynamodbav:"deleted" json:"deleted"`
	CreatedAt int64  `dynamodbav:"createdAt" json:"created_at"`
}

type Review struct {
	ID         string  `dynamodbav:"id" json:"id"`
	UserID     string  `dynamodbav:"userId" json:"user_id"`
	FoodItemID string  `dynamodbav:"foodItemId" json:"food_item_id"`
	Rating     float64 `dynamodbav:"rating" json:"rating"`
	Comment    string  `dynamodbav:"comment" json:"comment"`
	Deleted    bool    `dynamodbav:"deleted" json:"deleted"`
	CreatedAt  int64   `dynamodbav:"createdAt" json:"created_at"`
}

type UserRecipe struct {
	ID          string `dynamodbav:"id" json:"id"`
	UserID      string `dynamodbav:"userId" json:"user_id"`
	Title       string `dynamodbav:"title" json:"title"`
	Ingredients string `dynamodbav:"ingredients" json:"ingredients"`
	Steps       string `dynamodbav:"steps" json:"steps"`
	ImageURL    string `dynamodbav:"imageUrl" json:"image_url"`
	Deleted     bool   `dynamodbav:"deleted" json:"deleted"`
	CreatedAt   int64  `dynamodbav:"createdAt" json:"created_at"`
}

// MirrorFoodItem is the denormalized document-store copy of a FoodItem. The
// categoryId/categoryName pair stands in for the relational FK.
type MirrorFoodItem struct {
	ID           string `dynamodbav:"id" json:"id"`
	Name         string `dynamodbav:"name" json:"name"`
	Calories     string `dynamodbav:"calories" json:"calories"`
	ImageURL     string `dynamodbav:"imageUrl" json:"image_url"`
	CategoryID   string `dynamodbav:"categoryId" json:"category_id"`
	CategoryName string `dynamodbav:"categoryName" json:"category_name"`
	Available    bool   `dynamodbav:"available" json:"available"`
}

type MirrorCategory struct {
	ID    string `dynamodbav:"id" json:"id"`
	Name  string `dynamodbav:"name" json:"name"`
	Icon  string `dynamodbav:"icon" json:"icon"`
	Color string `dynamodbav:"color" json:"color"`
}
