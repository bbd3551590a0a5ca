package models

// Cours is identified by (codecours, annee_id): the same code can exist in
// several school years with different parameters.
type Cours struct {
	CodeCours       string  `json:"codecours" gorm:"primaryKey" validate:"required"`
	AnneeID         int     `json:"annee_id" gorm:"primaryKey"`
	ChampNo         string  `json:"champno" gorm:"not null" validate:"required"`
	CoursDescriptif string  `json:"coursdescriptif" gorm:"not null"`
	NbPeriodes      float64 `json:"nbperiodes" gorm:"type:numeric(6,2);not null" validate:"gte=0"`
	NbGroupeInitial int     `json:"nbgroupeinitial" gorm:"not null" validate:"gte=0"`
	EstCoursAutre   bool    `json:"estcoursautre" gorm:"default:false"`
	FinancementCode *string `json:"financement_code,omitempty"`
}

// CoursAvecRestants is a cours joined with its attribution tally.
type CoursAvecRestants struct {
	Cours
	GroupesRestants   int     `json:"groupes_restants"`
	GroupesPris       int     `json:"groupes_pris"`
	PeriodesRestantes float64 `json:"periodes_restantes"`
}
