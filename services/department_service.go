package services

import (
	"errors"

	"gorm.io/gorm"

	"visitor-http-service/config"
	"visitor-http-service/models"
)

// InterfaceDepartmentService defines the department service interface
type InterfaceDepartmentService interface {
	GetAllDepartments(query models.PaginationQuery) ([]models.Department, int64, error)
	GetDepartmentByID(id uint) (*models.Department, error)
	CreateDepartment(department *models.Department) error
	UpdateDepartment(id uint, updates map[string]interface{}) (*models.Department, error)
	DeleteDepartment(id uint) error
}

// DepartmentService provides department reference data administration
type DepartmentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewDepartmentService creates a new department service
func NewDepartmentService(db *gorm.DB, cfg *config.Config) InterfaceDepartmentService {
	return &DepartmentService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllDepartments lists departments with pagination and search
func (s *DepartmentService) GetAllDepartments(query models.PaginationQuery) ([]models.Department, int64, error) {
	var departments []models.Department
	var total int64

	db := s.DB.Model(&models.Department{})
	if query.Search != "" {
		db = db.Where("name LIKE ?", "%"+query.Search+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	if err := db.Order("name").Limit(query.Limit).Offset(offset).Find(&departments).Error; err != nil {
		return nil, 0, err
	}

	return departments, total, nil
}

// 2 GetDepartmentByID returns a department by ID
func (s *DepartmentService) GetDepartmentByID(id uint) (*models.Department, error) {
	var department models.Department
	if err := s.DB.First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("department not found")
		}
		return nil, err
	}
	return &department, nil
}

// 3 CreateDepartment creates a new department
func (s *DepartmentService) CreateDepartment(department *models.Department) error {
	var count int64
	if err := s.DB.Model(&models.Department{}).Where("name = ?", department.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("name already in use")
	}

	return s.DB.Create(department).Error
}

// 4 UpdateDepartment updates a department
func (s *DepartmentService) UpdateDepartment(id uint, updates map[string]interface{}) (*models.Department, error) {
	department, err := s.GetDepartmentByID(id)
	if err != nil {
		return nil, err
	}

	if name, ok := updates["name"].(string); ok && name != department.Name {
		var count int64
		if err := s.DB.Model(&models.Department{}).Where("name = ? AND id != ?", name, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("name already in use")
		}
	}

	if err := s.DB.Model(department).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetDepartmentByID(id)
}

// 5 DeleteDepartment deletes a department unless hosts still reference it
func (s *DepartmentService) DeleteDepartment(id uint) error {
	department, err := s.GetDepartmentByID(id)
	if err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.Host{}).Where("department_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("record is still in use")
	}

	return s.DB.Delete(department).Error
}
