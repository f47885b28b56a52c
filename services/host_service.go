package services

import (
	"errors"

	"gorm.io/gorm"

	"visitor-http-service/config"
	"visitor-http-service/models"
)

// InterfaceHostService defines the host service interface
type InterfaceHostService interface {
	GetAllHosts(query models.PaginationQuery) ([]models.Host, int64, error)
	GetHostByID(id uint) (*models.Host, error)
	CreateHost(host *models.Host) error
	UpdateHost(id uint, updates map[string]interface{}) (*models.Host, error)
	DeleteHost(id uint) error
}

// HostService provides host administration
type HostService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewHostService creates a new host service
func NewHostService(db *gorm.DB, cfg *config.Config) InterfaceHostService {
	return &HostService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllHosts lists hosts with pagination and search
func (s *HostService) GetAllHosts(query models.PaginationQuery) ([]models.Host, int64, error) {
	var hosts []models.Host
	var total int64

	db := s.DB.Model(&models.Host{})
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		db = db.Where("name LIKE ? OR email LIKE ?", pattern, pattern)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	if err := db.Preload("Department").Preload("Role").
		Order("name").
		Limit(query.Limit).Offset(offset).
		Find(&hosts).Error; err != nil {
		return nil, 0, err
	}

	return hosts, total, nil
}

// 2 GetHostByID returns a host by ID
func (s *HostService) GetHostByID(id uint) (*models.Host, error) {
	var host models.Host
	if err := s.DB.Preload("Department").Preload("Role").First(&host, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("host not found")
		}
		return nil, err
	}
	return &host, nil
}

// 3 CreateHost creates a new host
func (s *HostService) CreateHost(host *models.Host) error {
	// The email must be unique
	var count int64
	if err := s.DB.Model(&models.Host{}).Where("email = ?", host.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("email already in use")
	}

	if host.DepartmentID != nil {
		var department models.Department
		if err := s.DB.First(&department, *host.DepartmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("department not found")
			}
			return err
		}
	}
	if host.RoleID != nil {
		var role models.Role
		if err := s.DB.First(&role, *host.RoleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("role not found")
			}
			return err
		}
	}

	return s.DB.Create(host).Error
}

// 4 UpdateHost updates a host's fields
func (s *HostService) UpdateHost(id uint, updates map[string]interface{}) (*models.Host, error) {
	host, err := s.GetHostByID(id)
	if err != nil {
		return nil, err
	}

	// Changing the email requires a uniqueness check
	if email, ok := updates["email"].(string); ok && email != host.Email {
		var count int64
		if err := s.DB.Model(&models.Host{}).Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("email already in use")
		}
	}

	if departmentID, ok := updates["department_id"].(uint); ok && departmentID != 0 {
		var department models.Department
		if err := s.DB.First(&department, departmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("department not found")
			}
			return nil, err
		}
	}
	if roleID, ok := updates["role_id"].(uint); ok && roleID != 0 {
		var role models.Role
		if err := s.DB.First(&role, roleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("role not found")
			}
			return nil, err
		}
	}

	if err := s.DB.Model(host).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetHostByID(id)
}

// 5 DeleteHost deletes a host. Visits keep their rows; the host
// reference on them becomes dangling history, as with the dashboard's
// explicit visit delete.
func (s *HostService) DeleteHost(id uint) error {
	host, err := s.GetHostByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(host).Error
}
