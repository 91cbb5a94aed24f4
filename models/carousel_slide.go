package models

// CarouselSlide est une diapositive du carrousel d'accueil.
type CarouselSlide struct {
	BaseModel
	Title        string `gorm:"type:varchar(200);not null" json:"title"`
	Subtitle     string `gorm:"type:varchar(300)" json:"subtitle"`
	ImageURL     string `gorm:"type:varchar(500)" json:"imageURL"`
	CTALabel     string `gorm:"type:varchar(100)" json:"ctaLabel"`
	CTAURL       string `gorm:"type:varchar(500)" json:"ctaURL"`
	DisplayOrder int    `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool   `gorm:"default:true;index" json:"isActive"`
}
