package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

func TestNettoyerTitreFeuille(t *testing.T) {
	assert.Equal(t, "06-Mathématique", nettoyerTitreFeuille("06-Mathématique"))
	assert.Equal(t, "AB", nettoyerTitreFeuille("A[/\\?*:]B"))
	long := "01-Adaptation scolaire et orthopédagogie"
	assert.LessOrEqual(t, len([]rune(nettoyerTitreFeuille(long))), 31)
}

func TestRaccourcirTache(t *testing.T) {
	assert.Equal(t, "Tâche restante-2", raccourcirTache("06-Tâche restante-2"))
	assert.Equal(t, "Alice Tremblay", raccourcirTache("Alice Tremblay"))
}

func TestGenererExportTaches(t *testing.T) {
	rows := []*models.TacheExportRow{
		{ChampNo: "06", ChampNom: "Mathématique", Nom: "Tremblay", Prenom: "Alice",
			CodeCours: "MAT101", CoursDescriptif: "Maths 1", TotalGroupesPris: 2, NbPeriodes: 4},
		{ChampNo: "06", ChampNom: "Mathématique", Nom: "Tremblay", Prenom: "Alice",
			CodeCours: "ENCADR", CoursDescriptif: "Encadrement", EstCoursAutre: true, TotalGroupesPris: 1, NbPeriodes: 3},
		{ChampNo: "06", ChampNom: "Mathématique", Nom: "Roy", Prenom: "Benoit",
			CodeCours: "MAT201", CoursDescriptif: "Maths 2", TotalGroupesPris: 1, NbPeriodes: 6},
	}

	f, err := GenererExportTaches(rows)
	require.NoError(t, err)
	defer f.Close()

	sheet := "06-Mathématique"
	assert.Contains(t, f.GetSheetList(), sheet)
	assert.NotContains(t, f.GetSheetList(), "Sheet1")

	v, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Enseignant", v)

	v, err = f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Alice Tremblay", v)

	// Subtotal after Alice's two lines: 2×4 + 1×3.
	v, err = f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Total pour Alice Tremblay", v)
	v, err = f.GetCellValue(sheet, "G4")
	require.NoError(t, err)
	assert.Equal(t, "11", v)

	v, err = f.GetCellValue(sheet, "A6")
	require.NoError(t, err)
	assert.Equal(t, "Total pour Benoit Roy", v)

	v, err = f.GetCellValue(sheet, "A7")
	require.NoError(t, err)
	assert.Equal(t, "Total du champ", v)
	v, err = f.GetCellValue(sheet, "G7")
	require.NoError(t, err)
	assert.Equal(t, "17", v)
}

func TestGenererExportOrgScolaire(t *testing.T) {
	rows := []*models.OrgScolaireRow{
		{ChampNo: "06", ChampNom: "Mathématique", NomComplet: "Alice Tremblay",
			EstTempsPlein: true, FinancementCode: "", Periodes: 20},
		{ChampNo: "06", ChampNom: "Mathématique", NomComplet: "Alice Tremblay",
			EstTempsPlein: true, FinancementCode: "SPORT", Periodes: 4},
		{ChampNo: "06", ChampNom: "Mathématique", NomComplet: "06-Tâche restante-1",
			EstFictif: true, FinancementCode: "", Periodes: 8},
	}
	nonAttribue := map[string]float64{"": 12, "SPORT": 2}
	financements := []*models.TypeFinancement{{Code: "SPORT", Libelle: "Sport-études"}}

	f, err := GenererExportOrgScolaire(rows, nonAttribue, financements)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Organisation scolaire"
	require.Contains(t, f.GetSheetList(), sheet)

	v, err := f.GetCellValue(sheet, "D1")
	require.NoError(t, err)
	assert.Equal(t, "PÉRIODES", v)
	v, err = f.GetCellValue(sheet, "E1")
	require.NoError(t, err)
	assert.Equal(t, "PÉRIODES SPORT-ÉTUDES", v)
	v, err = f.GetCellValue(sheet, "F1")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", v)

	// The real teacher comes before the tâche restante of the same champ.
	v, err = f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Alice Tremblay", v)
	v, err = f.GetCellValue(sheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "24", v)

	v, err = f.GetCellValue(sheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "Tâche restante-1", v)

	v, err = f.GetCellValue(sheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "Non attribué", v)
	v, err = f.GetCellValue(sheet, "D4")
	require.NoError(t, err)
	assert.Equal(t, "12", v)

	// Grand total: 20+4+8 attributed plus 14 unassigned.
	v, err = f.GetCellValue(sheet, "B5")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", v)
	v, err = f.GetCellValue(sheet, "F5")
	require.NoError(t, err)
	assert.Equal(t, "46", v)
}

func TestGenererExportPeriodesRestantes(t *testing.T) {
	cours := []*models.CoursAvecRestants{
		{Cours: models.Cours{ChampNo: "06", CodeCours: "MAT101", CoursDescriptif: "Maths 1", NbPeriodes: 4},
			GroupesRestants: 2, PeriodesRestantes: 8},
		{Cours: models.Cours{ChampNo: "08", CodeCours: "FRA101", CoursDescriptif: "Français 1", NbPeriodes: 6},
			GroupesRestants: 0, PeriodesRestantes: 0},
	}

	f, err := GenererExportPeriodesRestantes(cours)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Périodes restantes"
	v, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "MAT101", v)

	// The exhausted cours is skipped, so the total lands on row 3.
	v, err = f.GetCellValue(sheet, "E3")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", v)
	v, err = f.GetCellValue(sheet, "F3")
	require.NoError(t, err)
	assert.Equal(t, "8", v)
}
