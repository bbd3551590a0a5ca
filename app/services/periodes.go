package services

import "github.com/Cloutiere/Gestion-administrative/app/models"

// PeriodesBreakdown splits a teacher's load between regular cours and the
// "autres tâches" bucket. Every figure is nbperiodes × nbgroupespris.
type PeriodesBreakdown struct {
	PeriodesCours  float64 `json:"periodes_cours"`
	PeriodesAutres float64 `json:"periodes_autres"`
	TotalPeriodes  float64 `json:"total_periodes"`
}

// CalculerPeriodes computes the period breakdown for a set of attributions.
func CalculerPeriodes(attributions []*models.AttributionDetail) PeriodesBreakdown {
	var b PeriodesBreakdown
	for _, a := range attributions {
		periodes := a.NbPeriodes * float64(a.NbGroupesPris)
		if a.EstCoursAutre {
			b.PeriodesAutres += periodes
		} else {
			b.PeriodesCours += periodes
		}
	}
	b.TotalPeriodes = b.PeriodesCours + b.PeriodesAutres
	return b
}

// MoyenneChamp averages the total periods of the full-time teachers of a
// champ. Teachers map to their attribution lists; part-time and fictif
// entries must already be excluded by the caller's query. No full-time
// teacher means a zero average, not a division by zero.
func MoyenneChamp(totaux []float64) float64 {
	if len(totaux) == 0 {
		return 0
	}
	var somme float64
	for _, t := range totaux {
		somme += t
	}
	return somme / float64(len(totaux))
}
