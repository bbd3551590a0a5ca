package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

func TestBuildSommaire(t *testing.T) {
	rows := []*models.SommaireRow{
		{ChampNo: "01", ChampNom: "Adaptation scolaire", NbEnseignantsTP: 4, PeriodesChoisiesTP: 100, EstConfirme: true},
		{ChampNo: "06", ChampNom: "Mathématique", NbEnseignantsTP: 2, PeriodesChoisiesTP: 46},
		{ChampNo: "13", ChampNom: "Musique", NbEnseignantsTP: 0, PeriodesChoisiesTP: 0},
	}

	s := BuildSommaire(rows)
	require.Len(t, s.Champs, 3)

	adapt := s.Champs[0]
	assert.InDelta(t, 25.0, adapt.Moyenne, 1e-9)
	assert.InDelta(t, 100-24.0*4, adapt.PeriodesMagiques, 1e-9)
	assert.InDelta(t, 0.6*4, adapt.ChiffreMagique, 1e-9)
	assert.True(t, adapt.EstConfirme)

	math := s.Champs[1]
	assert.InDelta(t, 23.0, math.Moyenne, 1e-9)
	assert.InDelta(t, -2.0, math.PeriodesMagiques, 1e-9)

	musique := s.Champs[2]
	assert.Equal(t, 0.0, musique.Moyenne, "un champ sans temps plein garde une moyenne nulle")
	assert.Equal(t, 0.0, musique.PeriodesMagiques)
	assert.Equal(t, 0.0, musique.ChiffreMagique)

	assert.Equal(t, 6, s.GrandTotaux.TotalEnseignantsTP)
	assert.InDelta(t, 146.0, s.GrandTotaux.TotalPeriodesChoisiesTP, 1e-9)
	assert.InDelta(t, adapt.PeriodesMagiques+math.PeriodesMagiques, s.GrandTotaux.TotalPeriodesMagiques, 1e-9)
	assert.InDelta(t, 0.6*6, s.GrandTotaux.ChiffreMagique, 1e-9)
	assert.InDelta(t, 146.0/6, s.MoyenneGenerale, 1e-9)

	// Only the confirmed champ feeds the preliminary average and the
	// confirmed surplus; the solde compares that surplus to the school-wide
	// chiffre magique.
	assert.InDelta(t, 25.0, s.MoyennePreliminaireConfirmee, 1e-9)
	assert.InDelta(t, adapt.PeriodesMagiques, s.PeriodesMagiquesConfirmees, 1e-9)
	assert.InDelta(t, adapt.PeriodesMagiques-0.6*6, s.SoldeConfirme, 1e-9)
}

func TestBuildSommaireVide(t *testing.T) {
	s := BuildSommaire(nil)
	assert.Empty(t, s.Champs)
	assert.Equal(t, 0.0, s.MoyenneGenerale)
	assert.Equal(t, 0.0, s.MoyennePreliminaireConfirmee)
}

func TestBuildSommaireAucunChampConfirme(t *testing.T) {
	s := BuildSommaire([]*models.SommaireRow{
		{ChampNo: "06", NbEnseignantsTP: 3, PeriodesChoisiesTP: 72},
	})
	assert.InDelta(t, 24.0, s.MoyenneGenerale, 1e-9)
	assert.Equal(t, 0.0, s.MoyennePreliminaireConfirmee)
	assert.Equal(t, 0.0, s.PeriodesMagiquesConfirmees)
	assert.InDelta(t, -0.6*3, s.SoldeConfirme, 1e-9, "sans champ confirmé le solde vaut moins le chiffre magique")
}
