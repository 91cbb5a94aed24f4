package models

// Entity est une filiale du groupe. Un EntityID nul sur une ressource liée
// signifie "rattachée à la holding".
type Entity struct {
	BaseModel
	Name         string `gorm:"type:varchar(150);not null" json:"name"`
	Slug         string `gorm:"type:varchar(150);index" json:"slug"`
	Sector       string `gorm:"type:varchar(150)" json:"sector"`
	Description  string `gorm:"type:text" json:"description"`
	LogoURL      string `gorm:"type:varchar(500)" json:"logoURL"`
	WebsiteURL   string `gorm:"type:varchar(500)" json:"websiteURL"`
	DisplayOrder int    `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool   `gorm:"default:true;index" json:"isActive"`
}

func (e *Entity) SlugValue() string        { return e.Slug }
func (e *Entity) SetSlugValue(slug string) { e.Slug = slug }
func (e *Entity) SlugSource() string       { return e.Name }
