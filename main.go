// @title           Visitor HTTP Service API
// @version         1.0
// @description     A visitor check-in and check-out register for an office front desk

// @contact.name   API Support
// @contact.email  support@example.com

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

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"visitor-http-service/config"
	"visitor-http-service/models"
	"visitor-http-service/routes"
	"visitor-http-service/services/container"
)

func main() {
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// A missing .env file is fine; the environment may already be set
	if err := godotenv.Load(); err != nil {
		config.Warning("could not load .env file: %v", err)
	} else {
		config.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	if cfg.DBMigrationMode == "drop" {
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("drop and recreate failed: %v", err)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			log.Fatalf("auto migration failed: %v", err)
		}
	}

	ensureAdminExists(db, cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	defer serviceContainer.Close()

	r := routes.SetupRouter(serviceContainer, db, cfg)

	port := cfg.ServerPort
	if port == "" {
		port = "8080"
	}

	config.Info("server listening on: http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("failed to start server: %v", err)
		os.Exit(1)
	}
}

// initDB opens the database connection
func initDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	config.Info("database connection established")
	return db, nil
}

// autoMigrate migrates all models; new columns and tables only
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Role{},
		&models.Purpose{},
		&models.Host{},
		&models.Guest{},
		&models.Visit{},
	)
}

// dropAndRecreateTables drops every table and migrates from scratch.
// Dependent tables go first so foreign keys don't block the drop.
func dropAndRecreateTables(db *gorm.DB) error {
	tables := []interface{}{
		&models.Visit{},
		&models.Guest{},
		&models.Host{},
		&models.Purpose{},
		&models.Role{},
		&models.Department{},
		&models.User{},
	}
	for _, table := range tables {
		if err := db.Migrator().DropTable(table); err != nil {
			return err
		}
	}
	return autoMigrate(db)
}

// ensureAdminExists creates the default admin account when no admin is
// present, so a fresh install is immediately usable
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error; err != nil {
		config.Error("failed to check for admin account: %v", err)
		return
	}
	if count > 0 {
		return
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: cfg.DefaultAdminPassword,
		Role:     models.UserRoleAdmin,
		IsActive: true,
	}
	if err := db.Create(admin).Error; err != nil {
		config.Error("failed to create default admin account: %v", err)
		return
	}
	config.Info("created default admin account (username: admin)")
}
