package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitor-http-service/internal/error/code"
	"visitor-http-service/services/container"
)

func uploadRouter(c *container.ServiceContainer) *gin.Engine {
	r := gin.New()
	r.POST("/api/upload/id-photo", HandleUploadFunc(c, "uploadIDPhoto"))
	return r
}

func uploadRequest(t *testing.T, filename, contentType string, size int) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="idPhoto"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload/id-photo", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadIDPhoto(t *testing.T) {
	c, _ := newTestContainer(t)
	r := uploadRouter(c)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "photo.jpg", "image/jpeg", 1024))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			Path string `json:"path"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, code.ErrSuccess, resp.Code)
	assert.True(t, strings.HasPrefix(resp.Data.Path, "/uploads/"))
}

func TestUploadIDPhotoRejectsOversizedFile(t *testing.T) {
	c, _ := newTestContainer(t)
	r := uploadRouter(c)

	// 6MB exceeds the 5MB limit
	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "photo.jpg", "image/jpeg", 6<<20))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, code.ErrUploadTooLarge, resp.Code)
}

func TestUploadIDPhotoRejectsDisallowedType(t *testing.T) {
	c, _ := newTestContainer(t)
	r := uploadRouter(c)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "malware.exe", "application/octet-stream", 1024))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, code.ErrUploadBadType, resp.Code)
}

func TestUploadIDPhotoRequiresFile(t *testing.T) {
	c, _ := newTestContainer(t)
	r := uploadRouter(c)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload/id-photo", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, code.ErrUploadMissing, resp.Code)
}
