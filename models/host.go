package models

// Host represents an employee who receives visitors
type Host struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Email        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"email"`
	Phone        string `gorm:"type:varchar(20)" json:"phone"`
	DepartmentID *uint  `json:"department_id"`
	RoleID       *uint  `json:"role_id"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	// Relations
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Role       *Role       `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Visits     []Visit     `gorm:"foreignKey:HostID" json:"visits,omitempty"`
}
