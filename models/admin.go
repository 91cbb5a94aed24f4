package models

// Admin est un compte du back-office. Le mot de passe est stocké haché
// (bcrypt) et n'est jamais sérialisé.
type Admin struct {
	BaseModel
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(200);not null" json:"-"`
	DisplayName  string `gorm:"type:varchar(150)" json:"displayName"`
}
