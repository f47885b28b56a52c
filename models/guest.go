package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guest represents a visitor registered at the front desk.
// Uniqueness by phone number is enforced at the application level
// (find-or-create), not with a database constraint.
type Guest struct {
	ID          string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Phone       string    `gorm:"type:varchar(20);not null;index" json:"phone"`
	Email       string    `gorm:"type:varchar(100)" json:"email"`
	Company     string    `gorm:"type:varchar(100)" json:"company"`
	Role        string    `gorm:"type:varchar(100)" json:"role"`
	IDNumber    string    `gorm:"type:varchar(50)" json:"id_number"`
	IDPhotoPath string    `gorm:"type:varchar(255)" json:"id_photo_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Visits []Visit `gorm:"foreignKey:GuestID" json:"visits,omitempty"`
}

// BeforeCreate is a GORM hook that assigns a UUID primary key
func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
