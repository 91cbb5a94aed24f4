package models

// PartnerCategory regroupe les partenaires (institutionnels, techniques...).
type PartnerCategory struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	DisplayOrder int    `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool   `gorm:"default:true;index" json:"isActive"`
}

// Partner est un partenaire affiché sur le site public.
type Partner struct {
	BaseModel
	Name         string  `gorm:"type:varchar(150);not null" json:"name"`
	LogoURL      string  `gorm:"type:varchar(500)" json:"logoURL"`
	WebsiteURL   string  `gorm:"type:varchar(500)" json:"websiteURL"`
	CategoryID   *string `gorm:"type:uuid;index" json:"categoryId"`
	DisplayOrder int     `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool    `gorm:"default:true;index" json:"isActive"`
}
