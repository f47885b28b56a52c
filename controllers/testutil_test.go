package controllers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"visitor-http-service/config"
	"visitor-http-service/models"
	"visitor-http-service/services/container"
)

// newTestContainer builds a service container backed by an in-memory
// database, without Redis or WhatsApp
func newTestContainer(t *testing.T) (*container.ServiceContainer, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Role{},
		&models.Purpose{},
		&models.Host{},
		&models.Guest{},
		&models.Visit{},
	))

	cfg := &config.Config{
		UploadDir:            t.TempDir(),
		MaxUploadSizeMB:      5,
		AllowedImageTypes:    []string{"image/jpeg", "image/png", "image/gif"},
		JWTSecretKey:         "test-secret-key",
		DefaultAdminPassword: "admin123",
	}

	return container.NewServiceContainer(db, cfg, nil), db
}
