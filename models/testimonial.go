package models

// Testimonial est un témoignage client ou collaborateur.
type Testimonial struct {
	BaseModel
	Author       string `gorm:"type:varchar(150);not null" json:"author"`
	Role         string `gorm:"type:varchar(150)" json:"role"`
	Company      string `gorm:"type:varchar(150)" json:"company"`
	Quote        string `gorm:"type:text;not null" json:"quote"`
	AvatarURL    string `gorm:"type:varchar(500)" json:"avatarURL"`
	DisplayOrder int    `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool   `gorm:"default:true;index" json:"isActive"`
}
