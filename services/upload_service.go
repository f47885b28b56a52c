package services

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"visitor-http-service/config"
	"visitor-http-service/utils"
)

// InterfaceUploadService defines the upload service interface
type InterfaceUploadService interface {
	SaveIDPhoto(fileHeader *multipart.FileHeader) (string, error)
}

// UploadService stores uploaded ID photos on local disk
type UploadService struct {
	Config *config.Config
}

// NewUploadService creates a new upload service
func NewUploadService(cfg *config.Config) InterfaceUploadService {
	return &UploadService{Config: cfg}
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// SaveIDPhoto validates and stores an uploaded photo. Validation happens
// before anything touches the disk; on success the relative path to be
// persisted on the guest record is returned.
func (s *UploadService) SaveIDPhoto(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > s.Config.MaxUploadSizeBytes() {
		return "", errors.New("uploaded file exceeds the size limit")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext, ok := imageExtensions[contentType]
	if !ok {
		// Fall back to the filename when the client sent no usable type
		switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
		case ".jpg", ".jpeg":
			ext = ".jpg"
		case ".png":
			ext = ".png"
		case ".gif":
			ext = ".gif"
		default:
			return "", errors.New("uploaded file type is not allowed")
		}
	}

	if err := os.MkdirAll(s.Config.UploadDir, 0755); err != nil {
		return "", err
	}

	filename := utils.RandomFileName("id-photo", ext)
	dstPath := filepath.Join(s.Config.UploadDir, filename)

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", err
	}

	return "/uploads/" + filename, nil
}
