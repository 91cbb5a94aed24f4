package models

import "time"

// PressRelease est un communiqué de presse téléchargeable.
type PressRelease struct {
	BaseModel
	Title       string     `gorm:"type:varchar(250);not null" json:"title"`
	Slug        string     `gorm:"type:varchar(250);index" json:"slug"`
	Excerpt     string     `gorm:"type:varchar(500)" json:"excerpt"`
	FileURL     string     `gorm:"type:varchar(500)" json:"fileURL"`
	IsPublished bool       `gorm:"default:false;index" json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
}

func (p *PressRelease) SlugValue() string        { return p.Slug }
func (p *PressRelease) SetSlugValue(slug string) { p.Slug = slug }
func (p *PressRelease) SlugSource() string       { return p.Title }

func (p *PressRelease) PublishedFlag() bool           { return p.IsPublished }
func (p *PressRelease) PublishedTime() *time.Time     { return p.PublishedAt }
func (p *PressRelease) SetPublishedTime(t *time.Time) { p.PublishedAt = t }
