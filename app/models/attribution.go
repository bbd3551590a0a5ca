package models

// AttributionCours records that a teacher took nbgroupespris groups of a
// cours. One row per (enseignant, cours); repeated takes increment the
// counter instead of adding rows. nbgroupespris is always positive.
type AttributionCours struct {
	AttributionID int    `json:"attributionid" gorm:"primaryKey;autoIncrement"`
	EnseignantID  int    `json:"enseignantid" gorm:"not null"`
	CodeCours     string `json:"codecours" gorm:"not null"`
	AnneeIDCours  int    `json:"annee_id_cours" gorm:"not null"`
	AnneeID       int    `json:"annee_id" gorm:"not null"`
	NbGroupesPris int    `json:"nbgroupespris" gorm:"not null" validate:"gt=0"`
}

// AttributionDetail is an attribution joined with its cours, as consumed by
// the period computations and the champ page.
type AttributionDetail struct {
	AttributionID   int     `json:"attributionid"`
	EnseignantID    int     `json:"enseignantid"`
	CodeCours       string  `json:"codecours"`
	AnneeIDCours    int     `json:"annee_id_cours"`
	CoursDescriptif string  `json:"coursdescriptif"`
	NbGroupesPris   int     `json:"nbgroupespris"`
	NbPeriodes      float64 `json:"nbperiodes"`
	EstCoursAutre   bool    `json:"estcoursautre"`
}
