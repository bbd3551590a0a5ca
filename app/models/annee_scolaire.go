package models

// AnneeScolaire is a school year. Exactly one year is flagged courante;
// every cours, enseignant and attribution hangs off a year.
type AnneeScolaire struct {
	AnneeID     int    `json:"annee_id" gorm:"primaryKey;autoIncrement"`
	Libelle     string `json:"libelle" gorm:"uniqueIndex;not null" validate:"required"`
	EstCourante bool   `json:"est_courante" gorm:"default:false"`
}
