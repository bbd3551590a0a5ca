package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

func TestCalculerPeriodes(t *testing.T) {
	tests := []struct {
		name         string
		attributions []*models.AttributionDetail
		wantCours    float64
		wantAutres   float64
		wantTotal    float64
	}{
		{
			name:         "aucune attribution",
			attributions: nil,
			wantCours:    0, wantAutres: 0, wantTotal: 0,
		},
		{
			name: "cours reguliers seulement",
			attributions: []*models.AttributionDetail{
				{CodeCours: "MAT101", NbPeriodes: 4, NbGroupesPris: 3},
				{CodeCours: "MAT201", NbPeriodes: 6, NbGroupesPris: 1},
			},
			wantCours: 18, wantAutres: 0, wantTotal: 18,
		},
		{
			name: "melange cours et autres taches",
			attributions: []*models.AttributionDetail{
				{CodeCours: "FRA101", NbPeriodes: 8, NbGroupesPris: 2},
				{CodeCours: "ENCADR", NbPeriodes: 3, NbGroupesPris: 1, EstCoursAutre: true},
			},
			wantCours: 16, wantAutres: 3, wantTotal: 19,
		},
		{
			name: "periodes decimales",
			attributions: []*models.AttributionDetail{
				{CodeCours: "A1DP36", NbPeriodes: 2.00, NbGroupesPris: 35},
			},
			wantCours: 70.00, wantAutres: 0, wantTotal: 70.00,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := CalculerPeriodes(tt.attributions)
			assert.InDelta(t, tt.wantCours, b.PeriodesCours, 1e-9)
			assert.InDelta(t, tt.wantAutres, b.PeriodesAutres, 1e-9)
			assert.InDelta(t, tt.wantTotal, b.TotalPeriodes, 1e-9)
		})
	}
}

func TestMoyenneChamp(t *testing.T) {
	assert.Equal(t, 0.0, MoyenneChamp(nil), "aucun temps plein donne une moyenne nulle")
	assert.Equal(t, 0.0, MoyenneChamp([]float64{}))
	assert.InDelta(t, 24.0, MoyenneChamp([]float64{24.0}), 1e-9)
	assert.InDelta(t, 23.5, MoyenneChamp([]float64{22.0, 25.0}), 1e-9)
}
