package models

// Enseignant is a teacher attached to a champ for one school year. Fictif
// rows ("Tâche restante") are placeholders holding groups nobody has taken;
// they never count as full-time staff.
type Enseignant struct {
	EnseignantID  int    `json:"enseignantid" gorm:"primaryKey;autoIncrement"`
	AnneeID       int    `json:"annee_id" gorm:"not null"`
	ChampNo       string `json:"champno" gorm:"not null" validate:"required"`
	Nom           string `json:"nom" gorm:"not null"`
	Prenom        string `json:"prenom"`
	NomComplet    string `json:"nomcomplet" gorm:"not null" validate:"required"`
	EstTempsPlein bool   `json:"esttempsplein" gorm:"default:true"`
	EstFictif     bool   `json:"estfictif" gorm:"default:false"`
}
