package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"visitor-http-service/config"
	"visitor-http-service/models"
	"visitor-http-service/services"
)

func setupAuthTest(t *testing.T) (*gorm.DB, services.InterfaceJWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := &config.Config{JWTSecretKey: "test-secret-key"}
	InitAuthMiddleware(cfg, db)

	return db, services.NewJWTService(cfg)
}

func protectedRouter(adminOnly bool) *gin.Engine {
	r := gin.New()
	group := r.Group("/")
	group.Use(Authentication())
	if adminOnly {
		group.Use(AuthenticateAdmin())
	}
	group.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": c.GetString("role")})
	})
	return r
}

func TestAuthenticationRejectsMissingAndMalformedHeaders(t *testing.T) {
	setupAuthTest(t)
	r := protectedRouter(false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticationAcceptsValidToken(t *testing.T) {
	db, jwtSvc := setupAuthTest(t)

	user := &models.User{
		Username: "frontdesk",
		Email:    "frontdesk@example.com",
		Password: "secret123",
		Role:     models.UserRoleUser,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)

	token, err := jwtSvc.GenerateToken(user.ID, user.Username, user.Role)
	require.NoError(t, err)

	r := protectedRouter(false)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticationRejectsDisabledAccount(t *testing.T) {
	db, jwtSvc := setupAuthTest(t)

	user := &models.User{
		Username: "frontdesk",
		Email:    "frontdesk@example.com",
		Password: "secret123",
		Role:     models.UserRoleUser,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)

	token, err := jwtSvc.GenerateToken(user.ID, user.Username, user.Role)
	require.NoError(t, err)

	// Token stays valid, but the account behind it gets disabled
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	r := protectedRouter(false)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateAdminRequiresAdminRole(t *testing.T) {
	db, jwtSvc := setupAuthTest(t)

	user := &models.User{
		Username: "frontdesk",
		Email:    "frontdesk@example.com",
		Password: "secret123",
		Role:     models.UserRoleUser,
		IsActive: true,
	}
	admin := &models.User{
		Username: "boss",
		Email:    "boss@example.com",
		Password: "secret123",
		Role:     models.UserRoleAdmin,
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(admin).Error)

	r := protectedRouter(true)

	userToken, err := jwtSvc.GenerateToken(user.ID, user.Username, user.Role)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := jwtSvc.GenerateToken(admin.ID, admin.Username, admin.Role)
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
