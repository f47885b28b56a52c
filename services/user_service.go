package services

import (
	"errors"

	"gorm.io/gorm"

	"visitor-http-service/config"
	"visitor-http-service/models"
	"visitor-http-service/utils"
)

// InterfaceUserService defines the user service interface
type InterfaceUserService interface {
	Authenticate(username, password string) (*models.User, error)
	GetAllUsers(query models.PaginationQuery) ([]models.User, int64, error)
	GetUserByID(id uint) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(id uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id uint) error
}

// UserService provides dashboard account administration and login
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService creates a new user service
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Authenticate verifies a username/password pair. Disabled accounts
// cannot log in even with the right password.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid username or password")
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("invalid username or password")
	}

	if !user.IsActive {
		return nil, errors.New("user account is disabled")
	}

	return &user, nil
}

// 2 GetAllUsers lists users with pagination and search
func (s *UserService) GetAllUsers(query models.PaginationQuery) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	db := s.DB.Model(&models.User{})
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		db = db.Where("username LIKE ? OR email LIKE ?", pattern, pattern)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	if err := db.Order("username").Limit(query.Limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// 3 GetUserByID returns a user by ID
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// 4 CreateUser creates a new user. The password is hashed by the model hook.
func (s *UserService) CreateUser(user *models.User) error {
	var count int64
	if err := s.DB.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("username already exists")
	}

	if err := s.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("email already in use")
	}

	if user.Role == "" {
		user.Role = models.UserRoleUser
	}

	return s.DB.Create(user).Error
}

// 5 UpdateUser updates a user's fields, hashing a changed password
func (s *UserService) UpdateUser(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if username, ok := updates["username"].(string); ok && username != user.Username {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("username = ? AND id != ?", username, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("username already exists")
		}
	}

	if email, ok := updates["email"].(string); ok && email != user.Email {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("email already in use")
		}
	}

	// Map updates bypass the model hooks, so hash here
	if password, ok := updates["password"].(string); ok {
		hashedPassword, err := utils.HashPassword(password)
		if err != nil {
			return nil, errors.New("failed to hash password")
		}
		updates["password"] = hashedPassword
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetUserByID(id)
}

// 6 DeleteUser deletes a user, keeping at least one admin in the system
func (s *UserService) DeleteUser(id uint) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	if user.Role == models.UserRoleAdmin {
		var count int64
		if err := s.DB.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error; err != nil {
			return err
		}
		if count <= 1 {
			return errors.New("cannot delete the last admin user")
		}
	}

	return s.DB.Delete(user).Error
}
