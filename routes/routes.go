package routes

import (
	"github.com/NguyenHoangLe0701/NutriCook-sub000/controllers"
	"github.com/NguyenHoangLe0701/NutriCook-sub000/middlewares"

	"github.com/gin-gonic/gin"
)

type Controllers struct {
	Auth          *controllers.AuthController
	Users         *controllers.UserController
	Categories    *controllers.CategoryController
	Foods         *controllers.FoodController
	Updates       *controllers.FoodUpdateController
	Nutrition     *controllers.NutritionController
	Notifications *controllers.NotificationController
	Mobile        *controllers.MobileController
	API           *controllers.APIController
}

func SetupRouter(jwtSecret string, c Controllers) *gin.Engine {
	r := gin.Default()

	r.POST("/auth/login", c.Auth.Login)

	// Public read-only API for the mobile client.
	api := r.Group("/api")
	{
		api.GET("/categories", c.API.ListCategories)
		api.GET("/categories/:id/foods", c.API.FoodsByCategory)
		api.GET("/foods", c.API.ListFoods)
		api.GET("/foods/:id", c.API.Food)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AdminRequired(jwtSecret))
	{
		admin.GET("/users", c.Users.List)
		admin.POST("/users", c.Users.Create)
		admin.GET("/users/:id", c.Users.Get)
		admin.PUT("/users/:id", c.Users.Update)
		admin.DELETE("/users/:id", c.Users.Delete)
		admin.PATCH("/users/:id/enabled", c.Users.SetEnabled)

		admin.GET("/categories", c.Categories.List)
		admin.POST("/categories", c.Categories.Create)
		admin.GET("/categories/:id", c.Categories.Get)
		admin.PUT("/categories/:id", c.Categories.Update)
		admin.DELETE("/categories/:id", c.Categories.Delete)

		admin.GET("/foods", c.Foods.List)
		admin.GET("/foods/search", c.Foods.Search)
		admin.POST("/foods", c.Foods.Create)
		admin.GET("/foods/:id", c.Foods.Get)
		admin.PUT("/foods/:id", c.Foods.Update)
		admin.DELETE("/foods/:id", c.Foods.Delete)

		admin.GET("/updates", c.Updates.ListRecent)
		admin.GET("/updates/food/:id", c.Updates.ListByFood)
		admin.GET("/updates/user/:id", c.Updates.ListByUser)

		admin.GET("/nutrition/stats", c.Nutrition.AllStats)
		admin.GET("/nutrition/stats/:userId", c.Nutrition.UserStats)
		admin.GET("/nutrition/logs/:userId", c.Nutrition.UserLogs)

		admin.POST("/notifications/send", c.Notifications.Send)

		admin.GET("/mobile/users", c.Mobile.Users)
		admin.GET("/mobile/posts", c.Mobile.Posts)
		admin.DELETE("/mobile/posts/:id", c.Mobile.DeletePost)
		admin.GET("/mobile/reviews", c.Mobile.Reviews)
		admin.DELETE("/mobile/reviews/:id", c.Mobile.DeleteReview)
		admin.GET("/mobile/recipes", c.Mobile.Recipes)
		admin.DELETE("/mobile/recipes/:id", c.Mobile.DeleteRecipe)
	}

	return r
}
