package services

import (
	"errors"

	"gorm.io/gorm"

	"visitor-http-service/config"
	"visitor-http-service/models"
)

// InterfacePurposeService defines the purpose service interface
type InterfacePurposeService interface {
	GetAllPurposes(query models.PaginationQuery) ([]models.Purpose, int64, error)
	GetActivePurposes() ([]models.Purpose, error)
	GetPurposeByID(id uint) (*models.Purpose, error)
	CreatePurpose(purpose *models.Purpose) error
	UpdatePurpose(id uint, updates map[string]interface{}) (*models.Purpose, error)
	DeletePurpose(id uint) error
}

// PurposeService provides visit purpose reference data administration
type PurposeService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPurposeService creates a new purpose service
func NewPurposeService(db *gorm.DB, cfg *config.Config) InterfacePurposeService {
	return &PurposeService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllPurposes lists purposes with pagination and search
func (s *PurposeService) GetAllPurposes(query models.PaginationQuery) ([]models.Purpose, int64, error) {
	var purposes []models.Purpose
	var total int64

	db := s.DB.Model(&models.Purpose{})
	if query.Search != "" {
		db = db.Where("name LIKE ?", "%"+query.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	if err := db.Order("name").Limit(query.Limit).Offset(offset).Find(&purposes).Error; err != nil {
		return nil, 0, err
	}

	return purposes, total, nil
}

// 2 GetActivePurposes returns the purposes offered on the kiosk form
func (s *PurposeService) GetActivePurposes() ([]models.Purpose, error) {
	var purposes []models.Purpose
	if err := s.DB.Where("is_active = ?", true).Order("name").Find(&purposes).Error; err != nil {
		return nil, err
	}
	return purposes, nil
}

// 3 GetPurposeByID returns a purpose by ID
func (s *PurposeService) GetPurposeByID(id uint) (*models.Purpose, error) {
	var purpose models.Purpose
	if err := s.DB.First(&purpose, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("purpose not found")
		}
		return nil, err
	}
	return &purpose, nil
}

// 4 CreatePurpose creates a new purpose
func (s *PurposeService) CreatePurpose(purpose *models.Purpose) error {
	var count int64
	if err := s.DB.Model(&models.Purpose{}).Where("name = ?", purpose.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("name already in use")
	}

	return s.DB.Create(purpose).Error
}

// 5 UpdatePurpose updates a purpose
func (s *PurposeService) UpdatePurpose(id uint, updates map[string]interface{}) (*models.Purpose, error) {
	purpose, err := s.GetPurposeByID(id)
	if err != nil {
		return nil, err
	}

	if name, ok := updates["name"].(string); ok && name != purpose.Name {
		var count int64
		if err := s.DB.Model(&models.Purpose{}).Where("name = ? AND id != ?", name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("name already in use")
		}
	}

	if err := s.DB.Model(purpose).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetPurposeByID(id)
}

// 6 DeletePurpose deletes a purpose unless visits still reference it
func (s *PurposeService) DeletePurpose(id uint) error {
	purpose, err := s.GetPurposeByID(id)
	if err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.Visit{}).Where("purpose_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("record is still in use")
	}

	return s.DB.Delete(purpose).Error
}
