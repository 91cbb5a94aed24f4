package models

// ProductCategory regroupe les produits du catalogue.
type ProductCategory struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Slug         string `gorm:"type:varchar(100);index" json:"slug"`
	DisplayOrder int    `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool   `gorm:"default:true;index" json:"isActive"`
}

func (c *ProductCategory) SlugValue() string        { return c.Slug }
func (c *ProductCategory) SetSlugValue(slug string) { c.Slug = slug }
func (c *ProductCategory) SlugSource() string       { return c.Name }

// Product est un produit du catalogue public.
type Product struct {
	BaseModel
	Name         string  `gorm:"type:varchar(200);not null" json:"name"`
	Slug         string  `gorm:"type:varchar(200);index" json:"slug"`
	Description  string  `gorm:"type:text" json:"description"`
	ImageURL     string  `gorm:"type:varchar(500)" json:"imageURL"`
	CategoryID   *string `gorm:"type:uuid;index" json:"categoryId"`
	DisplayOrder int     `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool    `gorm:"default:true;index" json:"isActive"`
}

func (p *Product) SlugValue() string        { return p.Slug }
func (p *Product) SetSlugValue(slug string) { p.Slug = slug }
func (p *Product) SlugSource() string       { return p.Name }
