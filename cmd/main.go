package main

import (
	"context"
	"log"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/config"
	"github.com/NguyenHoangLe0701/NutriCook-sub000/controllers"
	"github.com/NguyenHoangLe0701/NutriCook-sub000/routes"
	"github.com/NguyenHoangLe0701/NutriCook-sub000/services"
	"github.com/NguyenHoangLe0701/NutriCook-sub000/utils"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	var (
		mobileStore *services.MobileStore
		pushService *services.PushService
		uploader    *utils.ImageUploader
		mailer      *utils.Mailer
	)
	if cfg.MobileSyncEnabled {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			log.Fatalf("AWS config load failed: %v", err)
		}

		mobileStore = services.NewMobileStore(dynamodb.NewFromConfig(awsCfg), cfg.DynamoTablePrefix)
		publisher := services.NewSNSPublisher(awssns.NewFromConfig(awsCfg), cfg.SNSPlatformARN)
		pushService = services.NewPushService(publisher, mobileStore)
		if cfg.S3Bucket != "" {
			uploader = utils.NewImageUploader(s3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.CDNBaseURL)
		}
		if cfg.SESSender != "" {
			mailer = utils.NewMailer(ses.NewFromConfig(awsCfg), cfg.SESSender)
		}
	} else {
		log.Println("mobile integration disabled, running with the relational store only")
	}

	// services.MobileStore is optional everywhere; a nil interface keeps the
	// mirror writes off without extra branching in the services.
	var mirror services.ContentMirror
	if mobileStore != nil {
		mirror = mobileStore
	}

	userService := services.NewUserService(db, mailer)
	categoryService := services.NewCategoryService(db, mirror)
	foodService := services.NewFoodService(db, uploader, mirror)
	updateService := services.NewFoodUpdateService(db)

	var nutritionService *services.NutritionService
	if mobileStore != nil {
		nutritionService = services.NewNutritionService(mobileStore)
	}

	r := routes.SetupRouter(cfg.JWTSecret, routes.Controllers{
		Auth:          controllers.NewAuthController(userService, cfg.JWTSecret),
		Users:         controllers.NewUserController(userService),
		Categories:    controllers.NewCategoryController(categoryService),
		Foods:         controllers.NewFoodController(foodService),
		Updates:       controllers.NewFoodUpdateController(updateService),
		Nutrition:     controllers.NewNutritionController(nutritionService),
		Notifications: controllers.NewNotificationController(pushService),
		Mobile:        controllers.NewMobileController(mobileStore),
		API:           controllers.NewAPIController(categoryService, foodService),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
