package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"visitor-http-service/models"
	"visitor-http-service/services/container"
)

func guestRouter(c *container.ServiceContainer) *gin.Engine {
	r := gin.New()
	r.POST("/api/guests", HandleGuestFunc(c, "registerGuest"))
	r.GET("/api/guests/search", HandleGuestFunc(c, "searchGuests"))
	r.PUT("/api/guests/:id/checkout", HandleGuestFunc(c, "checkOutGuest"))
	r.PUT("/api/visits/:id/checkout", HandleVisitFunc(c, "checkOutVisit"))
	return r
}

func seedPurposeRow(t *testing.T, db *gorm.DB) *models.Purpose {
	t.Helper()
	purpose := &models.Purpose{Name: "Meeting", IsActive: true}
	require.NoError(t, db.Create(purpose).Error)
	return purpose
}

func postJSON(t *testing.T, r *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterGuestEndpoint(t *testing.T) {
	c, db := newTestContainer(t)
	purpose := seedPurposeRow(t, db)
	r := guestRouter(c)

	w := postJSON(t, r, "/api/guests", gin.H{
		"name":       "Jane Doe",
		"phone":      "081234567890",
		"company":    "Acme Corp",
		"purpose_id": purpose.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			Guest models.Guest `json:"guest"`
			Visit models.Visit `json:"visit"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.NotEmpty(t, resp.Data.Guest.ID)
	assert.Equal(t, models.VisitStatusCheckedIn, resp.Data.Visit.Status)
}

func TestRegisterGuestEndpointValidation(t *testing.T) {
	c, db := newTestContainer(t)
	purpose := seedPurposeRow(t, db)
	r := guestRouter(c)

	// Missing required fields
	w := postJSON(t, r, "/api/guests", gin.H{"name": "Jane Doe"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown purpose
	w = postJSON(t, r, "/api/guests", gin.H{
		"name":       "Jane Doe",
		"phone":      "0811",
		"purpose_id": 999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Unknown host
	w = postJSON(t, r, "/api/guests", gin.H{
		"name":       "Jane Doe",
		"phone":      "0811",
		"purpose_id": purpose.ID,
		"host_id":    999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGuestCheckoutEndpoint(t *testing.T) {
	c, db := newTestContainer(t)
	purpose := seedPurposeRow(t, db)
	r := guestRouter(c)

	w := postJSON(t, r, "/api/guests", gin.H{
		"name":       "Jane Doe",
		"phone":      "081234567890",
		"purpose_id": purpose.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			Guest models.Guest `json:"guest"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	guestID := resp.Data.Guest.ID

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/guests/%s/checkout", guestID), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Nothing left to check out
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/guests/%s/checkout", guestID), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestVisitCheckoutEndpointConflict(t *testing.T) {
	c, db := newTestContainer(t)
	purpose := seedPurposeRow(t, db)
	r := guestRouter(c)

	w := postJSON(t, r, "/api/guests", gin.H{
		"name":       "Jane Doe",
		"phone":      "081234567890",
		"purpose_id": purpose.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			Visit models.Visit `json:"visit"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	visitID := resp.Data.Visit.ID

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/visits/%s/checkout", visitID), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// A visit checks out exactly once
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/visits/%s/checkout", visitID), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/visits/no-such-visit/checkout", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGuestSearchEndpoint(t *testing.T) {
	c, db := newTestContainer(t)
	purpose := seedPurposeRow(t, db)
	r := guestRouter(c)

	w := postJSON(t, r, "/api/guests", gin.H{
		"name":       "Jane Doe",
		"phone":      "081234567890",
		"purpose_id": purpose.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/guests/search?query=jane", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Guest `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)

	// The short-form parameter still works
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/guests/search?q=jane", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	resp.Data = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)

	// Missing query parameter
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/guests/search", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
