package models

// FAQCategory regroupe les questions fréquentes par rubrique.
type FAQCategory struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	DisplayOrder int    `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool   `gorm:"default:true;index" json:"isActive"`
}

// FAQItem est une question/réponse de la FAQ publique.
type FAQItem struct {
	BaseModel
	Question     string  `gorm:"type:varchar(300);not null" json:"question"`
	Answer       string  `gorm:"type:text;not null" json:"answer"`
	CategoryID   *string `gorm:"type:uuid;index" json:"categoryId"`
	DisplayOrder int     `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool    `gorm:"default:true;index" json:"isActive"`
}
