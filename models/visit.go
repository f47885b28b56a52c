package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitStatus represents the lifecycle state of a visit
type VisitStatus string

const (
	VisitStatusCheckedIn  VisitStatus = "checked_in"
	VisitStatusCheckedOut VisitStatus = "checked_out"
)

// Visit represents one check-in at the front desk. A visit always
// references a guest and a purpose; the host is optional. The status
// moves from checked_in to checked_out exactly once.
type Visit struct {
	ID            string      `gorm:"type:char(36);primaryKey" json:"id"`
	GuestID       string      `gorm:"type:char(36);not null;index" json:"guest_id"`
	HostID        *uint       `gorm:"index" json:"host_id"`
	PurposeID     uint        `gorm:"not null;index" json:"purpose_id"`
	CustomPurpose string      `gorm:"type:varchar(255)" json:"custom_purpose"`
	VisitDate     time.Time   `gorm:"type:date;not null;index" json:"visit_date"`
	CheckInTime   time.Time   `gorm:"not null" json:"check_in_time"`
	CheckOutTime  *time.Time  `json:"check_out_time"`
	Status        VisitStatus `gorm:"type:varchar(20);not null;default:'checked_in';index" json:"status"`
	Notes         string      `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	// Relations
	Guest   *Guest   `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Host    *Host    `gorm:"foreignKey:HostID" json:"host,omitempty"`
	Purpose *Purpose `gorm:"foreignKey:PurposeID" json:"purpose,omitempty"`
}

// BeforeCreate is a GORM hook that assigns a UUID primary key
func (v *Visit) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
