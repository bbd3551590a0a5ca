package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

func TestCheckChampDeverrouilleIgnoreLesFictifs(t *testing.T) {
	// Un fictif passe avant toute lecture du statut: le db nil garantit
	// qu'aucune requête n'est émise.
	assert.NoError(t, checkChampDeverrouille(nil, "06", 1, true))
}

func TestNouvelleTacheRestante(t *testing.T) {
	e := nouvelleTacheRestante("06", 3, 2)
	require.NotNil(t, e)
	assert.Equal(t, "06-Tâche restante-3", e.NomComplet)
	assert.Equal(t, e.NomComplet, e.Nom)
	assert.Equal(t, "06", e.ChampNo)
	assert.Equal(t, 3, e.AnneeID)
	assert.True(t, e.EstFictif)
	assert.True(t, e.EstTempsPlein, "une tâche restante compte comme un temps plein")
}

// Le script de la page champ patche le DOM à partir de ces clés; elles font
// partie du contrat avec le client.
func TestAttributionResultContratJSON(t *testing.T) {
	result := &AttributionResult{
		EnseignantID:         7,
		CodeCours:            "MAT101",
		AnneeIDCours:         1,
		PeriodesEnseignant:   PeriodesBreakdown{PeriodesCours: 12, TotalPeriodes: 12},
		GroupesRestantsCours: 2,
		AttributionsEnseignant: []*models.AttributionDetail{
			{CodeCours: "MAT101", NbGroupesPris: 3},
		},
	}
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	for _, key := range []string{
		`"enseignant_id"`, `"code_cours"`, `"periodes_enseignant"`,
		`"periodes_cours"`, `"total_periodes"`, `"groupes_restants_cours"`,
		`"attributions_enseignant"`, `"nbgroupespris"`,
	} {
		assert.Contains(t, string(raw), key)
	}

	libere, err := json.Marshal(&CoursLibere{CodeCours: "MAT101", NouveauxGroupesRestants: 5})
	require.NoError(t, err)
	assert.Contains(t, string(libere), `"codecours"`)
	assert.Contains(t, string(libere), `"nouveaux_groupes_restants"`)
}
