package services

import (
	"errors"

	"gorm.io/gorm"

	"visitor-http-service/config"
	"visitor-http-service/models"
)

// InterfaceRoleService defines the role service interface
type InterfaceRoleService interface {
	GetAllRoles(query models.PaginationQuery) ([]models.Role, int64, error)
	GetRoleByID(id uint) (*models.Role, error)
	CreateRole(role *models.Role) error
	UpdateRole(id uint, updates map[string]interface{}) (*models.Role, error)
	DeleteRole(id uint) error
}

// RoleService provides role reference data administration
type RoleService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRoleService creates a new role service
func NewRoleService(db *gorm.DB, cfg *config.Config) InterfaceRoleService {
	return &RoleService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllRoles lists roles with pagination and search
func (s *RoleService) GetAllRoles(query models.PaginationQuery) ([]models.Role, int64, error) {
	var roles []models.Role
	var total int64

	db := s.DB.Model(&models.Role{})
	if query.Search != "" {
		db = db.Where("name LIKE ?", "%"+query.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	if err := db.Order("name").Limit(query.Limit).Offset(offset).Find(&roles).Error; err != nil {
		return nil, 0, err
	}

	return roles, total, nil
}

// 2 GetRoleByID returns a role by ID
func (s *RoleService) GetRoleByID(id uint) (*models.Role, error) {
	var role models.Role
	if err := s.DB.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("role not found")
		}
		return nil, err
	}
	return &role, nil
}

// 3 CreateRole creates a new role
func (s *RoleService) CreateRole(role *models.Role) error {
	var count int64
	if err := s.DB.Model(&models.Role{}).Where("name = ?", role.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("name already in use")
	}

	return s.DB.Create(role).Error
}

// 4 UpdateRole updates a role
func (s *RoleService) UpdateRole(id uint, updates map[string]interface{}) (*models.Role, error) {
	role, err := s.GetRoleByID(id)
	if err != nil {
		return nil, err
	}

	if name, ok := updates["name"].(string); ok && name != role.Name {
		var count int64
		if err := s.DB.Model(&models.Role{}).Where("name = ? AND id != ?", name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("name already in use")
		}
	}

	if err := s.DB.Model(role).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetRoleByID(id)
}

// 5 DeleteRole deletes a role unless hosts still reference it
func (s *RoleService) DeleteRole(id uint) error {
	role, err := s.GetRoleByID(id)
	if err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.Host{}).Where("role_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("record is still in use")
	}

	return s.DB.Delete(role).Error
}
