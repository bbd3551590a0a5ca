package models

// PreparationHoraire is one placed cell of the schedule preparation grid.
// Saves replace the whole grid for a year, so rows have no identity beyond
// their content.
// OccupationCours is one teacher's stake on a cours, as consumed by the
// schedule preparation grid.
type OccupationCours struct {
	CodeCours     string `json:"codecours"`
	EnseignantID  int    `json:"enseignantid"`
	NomComplet    string `json:"nomcomplet"`
	EstFictif     bool   `json:"estfictif"`
	NbGroupesPris int    `json:"nbgroupespris"`
}

type PreparationHoraire struct {
	ID              int    `json:"id" gorm:"primaryKey;autoIncrement"`
	AnneeID         int    `json:"annee_id" gorm:"not null"`
	SecondaireLevel int    `json:"secondaire_level" gorm:"not null" validate:"required,min=1,max=5"`
	CodeCours       string `json:"codecours" gorm:"not null" validate:"required"`
	AnneeIDCours    int    `json:"annee_id_cours" gorm:"not null"`
	EnseignantID    int    `json:"enseignant_id" gorm:"not null"`
	ColonneAssignee string `json:"colonne_assignee" gorm:"not null" validate:"required"`
}
