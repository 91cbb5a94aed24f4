package models

import "time"

// NewsCategory regroupe les actualités par thème.
type NewsCategory struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	DisplayOrder int    `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool   `gorm:"default:true;index" json:"isActive"`
}

// NewsArticle est une actualité du groupe. Visible publiquement quand elle est
// publiée et datée.
type NewsArticle struct {
	BaseModel
	Title       string     `gorm:"type:varchar(250);not null" json:"title"`
	Slug        string     `gorm:"type:varchar(250);index" json:"slug"`
	Excerpt     string     `gorm:"type:varchar(500)" json:"excerpt"`
	Content     string     `gorm:"type:text" json:"content"`
	ImageURL    string     `gorm:"type:varchar(500)" json:"imageURL"`
	CategoryID  *string    `gorm:"type:uuid;index" json:"categoryId"`
	IsPublished bool       `gorm:"default:false;index" json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt"`
}

func (a *NewsArticle) SlugValue() string        { return a.Slug }
func (a *NewsArticle) SetSlugValue(slug string) { a.Slug = slug }
func (a *NewsArticle) SlugSource() string       { return a.Title }

func (a *NewsArticle) PublishedFlag() bool           { return a.IsPublished }
func (a *NewsArticle) PublishedTime() *time.Time     { return a.PublishedAt }
func (a *NewsArticle) SetPublishedTime(t *time.Time) { a.PublishedAt = t }
