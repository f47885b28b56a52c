package models

// Department is reference data grouping hosts
type Department struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	// Relations
	Hosts []Host `gorm:"foreignKey:DepartmentID" json:"hosts,omitempty"`
}
