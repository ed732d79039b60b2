// @title           SiteGate HTTP Service API
// @version         1.0
// @description     A facility access control service tracking visitor and vehicle presence
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.yourcompany.com/support
// @contact.email  support@yourcompany.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"sitegate-http-service/config"
	"sitegate-http-service/models"
	"sitegate-http-service/routes"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// Load the .env file; environment variables may also be set externally
	if err := godotenv.Load(); err != nil {
		config.Warning("Could not load .env file: %v", err)
	} else {
		config.Info("Loaded .env file")
	}

	cfg := config.GetConfig()

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := autoMigrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	ensureAdminExists(db, cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	r := routes.SetupRouter(db, cfg, redisClient)

	port := cfg.ServerPort
	if port == "" {
		port = "8080"
	}

	config.Info("Server listening on: http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// initDB initializes the database connection
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("Database connection established")
	return db, nil
}

// autoMigrate migrates all models, only adding new columns and tables
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Account{},
		&models.Worker{},
		&models.Supplier{},
		&models.LeoniPersonnel{},
		&models.Vehicle{},
		&models.PresenceEntry{},
		&models.VehiclePresence{},
		&models.MonthlyVisit{},
		&models.SchedulePresence{},
		&models.Incident{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// ensureAdminExists makes sure at least one admin account exists
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Account{}).Where("role = ?", models.RoleAdmin).Count(&count)

	if count == 0 {
		// The BeforeCreate hook hashes the plaintext password
		admin := models.Account{
			Name:       "Administrator",
			Email:      cfg.DefaultAdminEmail,
			Password:   cfg.DefaultAdminPassword,
			Role:       models.RoleAdmin,
			IsApproved: true,
			IsActive:   true,
		}

		result := db.Create(&admin)
		if result.Error != nil {
			log.Printf("Failed to create default admin account: %v", result.Error)
			return
		}

		log.Printf("Created default admin account (email: %s)", cfg.DefaultAdminEmail)
	}
}
