package models

// SiteSetting est la configuration générale du site. Table à une seule ligne.
type SiteSetting struct {
	BaseModel
	SiteName   string `gorm:"type:varchar(150);not null" json:"siteName"`
	Tagline    string `gorm:"type:varchar(300)" json:"tagline"`
	LogoURL    string `gorm:"type:varchar(500)" json:"logoURL"`
	FaviconURL string `gorm:"type:varchar(500)" json:"faviconURL"`
	FooterText string `gorm:"type:varchar(500)" json:"footerText"`
}

// ContactInfo sont les coordonnées affichées sur le site. Table à une seule ligne.
type ContactInfo struct {
	BaseModel
	Address      string `gorm:"type:varchar(300)" json:"address"`
	Phone        string `gorm:"type:varchar(50)" json:"phone"`
	Email        string `gorm:"type:varchar(150)" json:"email"`
	OpeningHours string `gorm:"type:varchar(300)" json:"openingHours"`
	MapEmbedURL  string `gorm:"type:varchar(500)" json:"mapEmbedURL"`
}

// SocialLink est un lien réseau social du pied de page.
type SocialLink struct {
	BaseModel
	Network      string `gorm:"type:varchar(50);not null" json:"network"`
	URL          string `gorm:"type:varchar(500);not null" json:"url"`
	Icon         string `gorm:"type:varchar(100)" json:"icon"`
	DisplayOrder int    `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool   `gorm:"default:true;index" json:"isActive"`
}
