package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

func preparationFixture() ([]*models.Champ, []*models.CoursAvecRestants, []*models.OccupationCours) {
	champs := []*models.Champ{
		{ChampNo: "06", ChampNom: "Mathématique"},
		{ChampNo: "08", ChampNom: "Français"},
	}
	cours := []*models.CoursAvecRestants{
		{Cours: models.Cours{CodeCours: "MAT101", ChampNo: "06", NbPeriodes: 4, NbGroupeInitial: 3}},
		{Cours: models.Cours{CodeCours: "FRA101", ChampNo: "08", NbPeriodes: 6, NbGroupeInitial: 2}},
	}
	occupations := []*models.OccupationCours{
		{CodeCours: "MAT101", EnseignantID: 1, NomComplet: "Alice Tremblay", NbGroupesPris: 2},
		{CodeCours: "MAT101", EnseignantID: 2, NomComplet: "Benoit Roy", NbGroupesPris: 1},
		{CodeCours: "FRA101", EnseignantID: 3, NomComplet: "08-Tâche restante-1", EstFictif: true, NbGroupesPris: 2},
	}
	return champs, cours, occupations
}

func TestBuildPreparationDataDeplieLesGroupes(t *testing.T) {
	champs, cours, occupations := preparationFixture()

	data := BuildPreparationData(champs, cours, occupations, nil)

	assert.Len(t, data.AllChamps, 2)
	assert.Len(t, data.CoursParChamp["06"], 1)
	assert.Len(t, data.CoursParChamp["08"], 1)

	// A teacher holding two groups appears twice in the pool.
	require.Len(t, data.EnseignantsParCours["MAT101"], 3)
	assert.Equal(t, 1, data.EnseignantsParCours["MAT101"][0].EnseignantID)
	assert.Equal(t, 1, data.EnseignantsParCours["MAT101"][1].EnseignantID)
	assert.Equal(t, 2, data.EnseignantsParCours["MAT101"][2].EnseignantID)

	require.Len(t, data.EnseignantsParCours["FRA101"], 2)
	assert.True(t, data.EnseignantsParCours["FRA101"][0].EstFictif)

	assert.Empty(t, data.PreparedGrid)
}

func TestBuildPreparationDataRejoueLesCellules(t *testing.T) {
	champs, cours, occupations := preparationFixture()
	cells := []*models.PreparationHoraire{
		{SecondaireLevel: 1, CodeCours: "MAT101", EnseignantID: 1, ColonneAssignee: "A"},
		{SecondaireLevel: 1, CodeCours: "MAT101", EnseignantID: 2, ColonneAssignee: "B"},
		{SecondaireLevel: 3, CodeCours: "FRA101", EnseignantID: 3, ColonneAssignee: "A"},
	}

	data := BuildPreparationData(champs, cours, occupations, cells)

	require.Len(t, data.PreparedGrid[1], 1)
	item := data.PreparedGrid[1][0]
	assert.Equal(t, "MAT101", item.Cours.CodeCours)
	assert.Equal(t, []int{1}, item.AssignedTeachersByCol["A"])
	assert.Equal(t, []int{2}, item.AssignedTeachersByCol["B"])

	// Alice holds two groups but only one was dropped on a column.
	require.Len(t, item.UnassignedTeachers, 1)
	assert.Equal(t, 1, item.UnassignedTeachers[0].EnseignantID)

	require.Len(t, data.PreparedGrid[3], 1)
	fra := data.PreparedGrid[3][0]
	assert.Len(t, fra.UnassignedTeachers, 1, "un des deux groupes de la tâche restante reste en attente")
}

func TestBuildPreparationDataIgnoreLesCoursInconnus(t *testing.T) {
	champs, cours, occupations := preparationFixture()
	cells := []*models.PreparationHoraire{
		{SecondaireLevel: 2, CodeCours: "DISPARU", EnseignantID: 1, ColonneAssignee: "A"},
	}

	data := BuildPreparationData(champs, cours, occupations, cells)
	assert.Empty(t, data.PreparedGrid)
}

func TestSauvegarderPreparationHoraireValidation(t *testing.T) {
	tests := []struct {
		name string
		cell *models.PreparationHoraire
	}{
		{"niveau trop bas", &models.PreparationHoraire{SecondaireLevel: 0, CodeCours: "MAT101", AnneeIDCours: 1, EnseignantID: 1, ColonneAssignee: "A"}},
		{"niveau trop haut", &models.PreparationHoraire{SecondaireLevel: 6, CodeCours: "MAT101", AnneeIDCours: 1, EnseignantID: 1, ColonneAssignee: "A"}},
		{"cours manquant", &models.PreparationHoraire{SecondaireLevel: 1, AnneeIDCours: 1, EnseignantID: 1, ColonneAssignee: "A"}},
		{"enseignant manquant", &models.PreparationHoraire{SecondaireLevel: 1, CodeCours: "MAT101", AnneeIDCours: 1, ColonneAssignee: "A"}},
		{"colonne manquante", &models.PreparationHoraire{SecondaireLevel: 1, CodeCours: "MAT101", AnneeIDCours: 1, EnseignantID: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SauvegarderPreparationHoraire(nil, 1, []*models.PreparationHoraire{tt.cell})
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, 400, HTTPStatus(err))
		})
	}
}
