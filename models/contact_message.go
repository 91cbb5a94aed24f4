package models

// ContactMessage est un message reçu via le formulaire de contact public.
type ContactMessage struct {
	BaseModel
	Name    string `gorm:"type:varchar(150);not null" json:"name"`
	Email   string `gorm:"type:varchar(150);not null" json:"email"`
	Subject string `gorm:"type:varchar(200)" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
}
