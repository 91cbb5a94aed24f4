package models

// Service est une prestation proposée par le groupe ou une filiale.
type Service struct {
	BaseModel
	Title        string  `gorm:"type:varchar(200);not null" json:"title"`
	Description  string  `gorm:"type:text" json:"description"`
	IconURL      string  `gorm:"type:varchar(500)" json:"iconURL"`
	EntityID     *string `gorm:"type:uuid;index" json:"entityId"`
	DisplayOrder int     `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool    `gorm:"default:true;index" json:"isActive"`
}
