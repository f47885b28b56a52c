package models

// Purpose is reference data for the reason of a visit
type Purpose struct {
	BaseModel
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	// Relations
	Visits []Visit `gorm:"foreignKey:PurposeID" json:"visits,omitempty"`
}
