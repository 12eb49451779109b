package config

import (
	"fmt"
	"log"
	"os"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config is built once at startup and handed to the components that need it.
type Config struct {
	Port string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret string

	// Mobile integration (document store, push, images, mail). When
	// MobileSyncEnabled is false none of the AWS clients are constructed and
	// the related endpoints degrade to empty results.
	MobileSyncEnabled bool
	AWSRegion         string
	DynamoTablePrefix string
	SNSPlatformARN    string
	S3Bucket          string
	CDNBaseURL        string
	SESSender         string
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	return &Config{
		Port:       getEnvOrDefault("PORT", "8080"),
		DBHost:     getEnvOrDefault("DB_HOST", "localhost"),
		DBUser:     getEnvOrDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnvOrDefault("DB_NAME", "nutricook"),
		DBPort:     getEnvOrDefault("DB_PORT", "5432"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		MobileSyncEnabled: os.Getenv("MOBILE_SYNC_ENABLED") == "true",
		AWSRegion:         getEnvOrDefault("AWS_REGION", "ap-southeast-1"),
		DynamoTablePrefix: getEnvOrDefault("DYNAMO_TABLE_PREFIX", "nutricook_"),
		SNSPlatformARN:    os.Getenv("SNS_FCM_ARN"),
		S3Bucket:          os.Getenv("S3_BUCKET"),
		CDNBaseURL:        os.Getenv("CLOUDFRONT_URL"),
		SESSender:         os.Getenv("SES_EMAIL"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// ConnectDB opens the relational store and ensures the schema exists. Schema
// setup is create-if-missing, safe to run on every start.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.FoodItem{},
		&models.FoodUpdate{},
	); err != nil {
		return nil, fmt.Errorf("schema setup failed: %w", err)
	}

	return db, nil
}
