package models

// Types de contrat usuels, à titre indicatif (la colonne reste libre).
const (
	ContractCDI        = "CDI"
	ContractCDD        = "CDD"
	ContractInternship = "Stage"
	ContractApprentice = "Alternance"
)

// JobOffer est une offre d'emploi, rattachée à une filiale ou à la holding
// (EntityID nul). Aucune contrainte d'intégrité: la suppression d'une filiale
// laisse la référence orpheline.
type JobOffer struct {
	BaseModel
	Title        string  `gorm:"type:varchar(200);not null" json:"title"`
	Location     string  `gorm:"type:varchar(150)" json:"location"`
	ContractType string  `gorm:"type:varchar(50)" json:"contractType"`
	Description  string  `gorm:"type:text" json:"description"`
	Requirements string  `gorm:"type:text" json:"requirements"`
	EntityID     *string `gorm:"type:uuid;index" json:"entityId"`
	DisplayOrder int     `gorm:"not null;default:0;index" json:"displayOrder"`
	IsActive     bool    `gorm:"default:true;index" json:"isActive"`
}
