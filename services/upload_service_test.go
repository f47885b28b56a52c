package services

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a multipart.FileHeader the way Gin would hand it
// to the service
func makeFileHeader(t *testing.T, filename, contentType string, size int) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="idPhoto"; filename="` + filename + `"`}
	if contentType != "" {
		header["Content-Type"] = []string{contentType}
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["idPhoto"][0]
}

func TestSaveIDPhoto(t *testing.T) {
	cfg := testConfig(t)
	svc := NewUploadService(cfg)

	fileHeader := makeFileHeader(t, "photo.jpg", "image/jpeg", 1024)
	path, err := svc.SaveIDPhoto(fileHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/id-photo-"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	stored := filepath.Join(cfg.UploadDir, filepath.Base(path))
	info, err := os.Stat(stored)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), info.Size())
}

func TestSaveIDPhotoRejectsOversizedFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxUploadSizeMB = 1
	svc := NewUploadService(cfg)

	fileHeader := makeFileHeader(t, "photo.jpg", "image/jpeg", 2<<20)
	_, err := svc.SaveIDPhoto(fileHeader)
	require.EqualError(t, err, "uploaded file exceeds the size limit")

	// Nothing may be written on rejection
	entries, err := os.ReadDir(cfg.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveIDPhotoRejectsDisallowedType(t *testing.T) {
	cfg := testConfig(t)
	svc := NewUploadService(cfg)

	fileHeader := makeFileHeader(t, "notes.pdf", "application/pdf", 1024)
	_, err := svc.SaveIDPhoto(fileHeader)
	require.EqualError(t, err, "uploaded file type is not allowed")
}

func TestSaveIDPhotoFallsBackToFilenameExtension(t *testing.T) {
	cfg := testConfig(t)
	svc := NewUploadService(cfg)

	// No usable content type; the .png extension decides
	fileHeader := makeFileHeader(t, "photo.png", "application/octet-stream", 512)
	path, err := svc.SaveIDPhoto(fileHeader)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".png"))
}
