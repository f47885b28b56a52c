package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"visitor-http-service/config"
	"visitor-http-service/models"
)

// setupTestDB opens a fresh in-memory database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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

	return db
}

// testConfig returns a config suitable for tests
func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		UploadDir:            t.TempDir(),
		MaxUploadSizeMB:      5,
		AllowedImageTypes:    []string{"image/jpeg", "image/png", "image/gif"},
		JWTSecretKey:         "test-secret-key",
		DefaultAdminPassword: "admin123",
	}
}

// seedPurpose inserts a purpose and returns it
func seedPurpose(t *testing.T, db *gorm.DB, name string) *models.Purpose {
	t.Helper()

	purpose := &models.Purpose{Name: name, IsActive: true}
	require.NoError(t, db.Create(purpose).Error)
	return purpose
}

// seedHost inserts a host, optionally under a department
func seedHost(t *testing.T, db *gorm.DB, name, email string, departmentID *uint) *models.Host {
	t.Helper()

	host := &models.Host{
		Name:         name,
		Email:        email,
		DepartmentID: departmentID,
		IsActive:     true,
	}
	require.NoError(t, db.Create(host).Error)
	return host
}
