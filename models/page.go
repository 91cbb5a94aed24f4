package models

import "time"

// PageContent est une page éditoriale (mentions légales, à propos...).
type PageContent struct {
	BaseModel
	Title           string     `gorm:"type:varchar(200);not null" json:"title"`
	Slug            string     `gorm:"type:varchar(200);index" json:"slug"`
	Content         string     `gorm:"type:text" json:"content"`
	MetaDescription string     `gorm:"type:varchar(300)" json:"metaDescription"`
	DisplayOrder    int        `gorm:"not null;default:0;index" json:"displayOrder"`
	IsPublished     bool       `gorm:"default:false;index" json:"isPublished"`
	PublishedAt     *time.Time `json:"publishedAt"`
}

func (p *PageContent) SlugValue() string        { return p.Slug }
func (p *PageContent) SetSlugValue(slug string) { p.Slug = slug }
func (p *PageContent) SlugSource() string       { return p.Title }

func (p *PageContent) PublishedFlag() bool           { return p.IsPublished }
func (p *PageContent) PublishedTime() *time.Time     { return p.PublishedAt }
func (p *PageContent) SetPublishedTime(t *time.Time) { p.PublishedAt = t }
