package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseBooleen(t *testing.T) {
	for _, token := range []string{"VRAI", "vrai", "TRUE", "OUI", "yes", "1", " Vrai "} {
		assert.True(t, parseBooleen(token), token)
	}
	for _, token := range []string{"", "FAUX", "FALSE", "NON", "0", "2"} {
		assert.False(t, parseBooleen(token), token)
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"4", 4, false},
		{"4.5", 4.5, false},
		{"4,5", 4.5, false},
		{" 2,00 ", 2, false},
		{"", 0, false},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseDecimal(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}
}

func TestParseEntier(t *testing.T) {
	got, err := parseEntier("36.0")
	require.NoError(t, err)
	assert.Equal(t, 36, got)

	got, err = parseEntier("")
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func workbookFromRows(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseCoursWorkbook(t *testing.T) {
	buf := workbookFromRows(t, [][]interface{}{
		{"Champ", "Code", "Ignoré", "Description", "Nb groupes", "Nb périodes", "Cours autre", "Financement"},
		{"06", "MAT101", "x", "Mathématique 1re secondaire", "3", "4,00", "FAUX", "SPORT"},
		{"08", "ENCADR", "", "Encadrement", "1", "3", "VRAI", ""},
		{"", "", "", "", "", "", "", ""},
	})

	cours, err := ParseCoursWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, cours, 2)

	assert.Equal(t, "06", cours[0].ChampNo)
	assert.Equal(t, "MAT101", cours[0].CodeCours)
	assert.Equal(t, "Mathématique 1re secondaire", cours[0].CoursDescriptif)
	assert.Equal(t, 3, cours[0].NbGroupeInitial)
	assert.InDelta(t, 4.0, cours[0].NbPeriodes, 1e-9)
	assert.False(t, cours[0].EstCoursAutre)
	require.NotNil(t, cours[0].FinancementCode)
	assert.Equal(t, "SPORT", *cours[0].FinancementCode)

	assert.True(t, cours[1].EstCoursAutre)
	assert.Nil(t, cours[1].FinancementCode)
}

func TestParseCoursWorkbookRefuseFinancementSurCoursAutre(t *testing.T) {
	buf := workbookFromRows(t, [][]interface{}{
		{"Champ", "Code", "Ignoré", "Description", "Nb groupes", "Nb périodes", "Cours autre", "Financement"},
		{"08", "ENCADR", "", "Encadrement", "1", "3", "VRAI", "FIN1"},
	})

	_, err := ParseCoursWorkbook(buf)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "Ligne 2")
}

func TestParseCoursWorkbookLigneIncomplete(t *testing.T) {
	buf := workbookFromRows(t, [][]interface{}{
		{"Champ", "Code"},
		{"06", ""},
	})

	_, err := ParseCoursWorkbook(buf)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestParseCoursWorkbookFichierIllisible(t *testing.T) {
	_, err := ParseCoursWorkbook(bytes.NewBufferString("pas un classeur"))
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestParseEnseignantsWorkbook(t *testing.T) {
	buf := workbookFromRows(t, [][]interface{}{
		{"Champ", "Nom", "Prénom", "Temps plein"},
		{"06", "Tremblay", "Alice", "VRAI"},
		{"06", "Roy", "Benoit", "FAUX"},
		{"08", "Gagnon", "", "OUI"},
	})

	enseignants, err := ParseEnseignantsWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, enseignants, 3)

	assert.Equal(t, "Alice Tremblay", enseignants[0].NomComplet)
	assert.True(t, enseignants[0].EstTempsPlein)
	assert.False(t, enseignants[1].EstTempsPlein)
	assert.Equal(t, "Gagnon", enseignants[2].NomComplet, "le prénom vide ne laisse pas d'espace en tête")
}
