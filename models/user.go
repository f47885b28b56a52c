package models

import (
	"gorm.io/gorm"

	"visitor-http-service/utils"
)

// User roles
const (
	UserRoleAdmin = "admin"
	UserRoleUser  = "user"
)

// User represents a dashboard account
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	Email    string `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Password string `gorm:"type:varchar(100);not null" json:"-"` // never exposed in JSON
	Role     string `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// BeforeCreate is a GORM hook that hashes the password before a new record is written
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Password != "" {
		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}

// BeforeSave is a GORM hook that hashes the password if a plaintext one was set.
// bcrypt hashes are 60 characters, anything shorter is treated as plaintext.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password != "" && len(u.Password) < 60 {
		hashedPassword, err := utils.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hashedPassword
	}
	return nil
}
