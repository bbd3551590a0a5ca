package models

// TypeFinancement labels how a cours is funded (régulier, sport-études...).
// The code is immutable once created; only the libelle can change.
type TypeFinancement struct {
	Code    string `json:"code" gorm:"primaryKey" validate:"required"`
	Libelle string `json:"libelle" gorm:"not null" validate:"required"`
}
