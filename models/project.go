package models

// Project est une réalisation mise en avant sur le site public.
type Project struct {
	BaseModel
	Title        string  `gorm:"type:varchar(200);not null" json:"title"`
	Slug         string  `gorm:"type:varchar(200);index" json:"slug"`
	Description  string  `gorm:"type:text" json:"description"`
	ImageURL     string  `gorm:"type:varchar(500)" json:"imageURL"`
	Location     string  `gorm:"type:varchar(150)" json:"location"`
	Year         int     `json:"year"`
	EntityID     *string `gorm:"type:uuid;index" json:"entityId"`
	DisplayOrder int     `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool    `gorm:"default:true;index" json:"isActive"`
}

func (p *Project) SlugValue() string        { return p.Slug }
func (p *Project) SetSlugValue(slug string) { p.Slug = slug }
func (p *Project) SlugSource() string       { return p.Title }
