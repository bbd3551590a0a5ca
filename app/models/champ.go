package models

type Champ struct {
	ChampNo  string `json:"champ_no" gorm:"primaryKey" validate:"required"`
	ChampNom string `json:"champ_nom" gorm:"not null" validate:"required"`
}

// ChampAnneeStatut carries the per-year lock and confirmation flags of a
// champ. The row is created lazily on the first toggle; a missing row reads
// as unlocked and unconfirmed.
type ChampAnneeStatut struct {
	ChampNo       string `json:"champ_no" gorm:"primaryKey"`
	AnneeID       int    `json:"annee_id" gorm:"primaryKey"`
	EstVerrouille bool   `json:"est_verrouille" gorm:"default:false"`
	EstConfirme   bool   `json:"est_confirme" gorm:"default:false"`
}
