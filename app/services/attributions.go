package services

import (
	"database/sql"
	"fmt"

	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/models"
)

// AttributionResult is what the champ page needs to refresh itself after a
// ledger mutation: the teacher's recomputed load and the cours counter.
type AttributionResult struct {
	EnseignantID           int                         `json:"enseignant_id"`
	CodeCours              string                      `json:"code_cours"`
	AnneeIDCours           int                         `json:"annee_id_cours"`
	PeriodesEnseignant     PeriodesBreakdown           `json:"periodes_enseignant"`
	GroupesRestantsCours   int                         `json:"groupes_restants_cours"`
	AttributionsEnseignant []*models.AttributionDetail `json:"attributions_enseignant"`
}

// CoursLibere describes one cours whose groups were released by deleting a
// teacher.
type CoursLibere struct {
	CodeCours               string `json:"codecours"`
	NouveauxGroupesRestants int    `json:"nouveaux_groupes_restants"`
}

// checkChampDeverrouille refuses mutations on a locked champ, except for
// fictif teachers: the tâches restantes stay workable after the lock.
func checkChampDeverrouille(db *sql.DB, champNo string, anneeID int, estFictif bool) error {
	if estFictif {
		return nil
	}
	statut, err := database.GetChampStatut(db, champNo, anneeID)
	if err != nil {
		return err
	}
	if statut.EstVerrouille {
		return &ForbiddenError{Message: "Ce champ est verrouillé, aucune modification n'est permise."}
	}
	return nil
}

// AjouterAttribution gives one more group of a cours to a teacher, guarding
// existence, champ coherence, the year lock and the remaining capacity.
func AjouterAttribution(db *sql.DB, enseignantID int, codeCours string, anneeID int) (*AttributionResult, error) {
	enseignant, err := database.GetEnseignantByID(db, enseignantID)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Message: "Enseignant non trouvé."}
	}
	if err != nil {
		return nil, err
	}

	cours, err := database.GetCours(db, codeCours, anneeID)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Message: "Cours non trouvé pour cette année."}
	}
	if err != nil {
		return nil, err
	}

	if enseignant.AnneeID != anneeID {
		return nil, &ValidationError{Message: "L'enseignant n'appartient pas à l'année scolaire active."}
	}
	if enseignant.ChampNo != cours.ChampNo {
		return nil, &ValidationError{Message: "L'enseignant et le cours n'appartiennent pas au même champ."}
	}

	if err := checkChampDeverrouille(db, cours.ChampNo, anneeID, enseignant.EstFictif); err != nil {
		return nil, err
	}

	pris, err := database.SumGroupesPris(db, codeCours, anneeID)
	if err != nil {
		return nil, err
	}
	if pris >= cours.NbGroupeInitial {
		return nil, &ConflictError{Message: "Plus de groupes disponibles pour ce cours."}
	}

	if err := database.IncrementAttribution(db, enseignantID, codeCours, anneeID); err != nil {
		return nil, err
	}
	return buildAttributionResult(db, enseignantID, codeCours, anneeID, cours.NbGroupeInitial)
}

// SupprimerAttribution takes one group back from a teacher, under the same
// lock rule as the addition.
func SupprimerAttribution(db *sql.DB, enseignantID int, codeCours string, anneeID int) (*AttributionResult, error) {
	enseignant, err := database.GetEnseignantByID(db, enseignantID)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Message: "Enseignant non trouvé."}
	}
	if err != nil {
		return nil, err
	}

	cours, err := database.GetCours(db, codeCours, anneeID)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Message: "Cours non trouvé pour cette année."}
	}
	if err != nil {
		return nil, err
	}

	if err := checkChampDeverrouille(db, enseignant.ChampNo, anneeID, enseignant.EstFictif); err != nil {
		return nil, err
	}

	err = database.DecrementAttribution(db, enseignantID, codeCours, anneeID)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Message: "Attribution non trouvée."}
	}
	if err != nil {
		return nil, err
	}
	return buildAttributionResult(db, enseignantID, codeCours, anneeID, cours.NbGroupeInitial)
}

func buildAttributionResult(db *sql.DB, enseignantID int, codeCours string, anneeID, nbGroupeInitial int) (*AttributionResult, error) {
	attributions, err := database.GetAttributionsEnseignant(db, enseignantID)
	if err != nil {
		return nil, err
	}
	pris, err := database.SumGroupesPris(db, codeCours, anneeID)
	if err != nil {
		return nil, err
	}
	return &AttributionResult{
		EnseignantID:           enseignantID,
		CodeCours:              codeCours,
		AnneeIDCours:           anneeID,
		PeriodesEnseignant:     CalculerPeriodes(attributions),
		GroupesRestantsCours:   nbGroupeInitial - pris,
		AttributionsEnseignant: attributions,
	}, nil
}

// nouvelleTacheRestante builds the fictif placeholder following the highest
// existing suffix. Placeholders count as full-time so the champ's surplus
// keeps reflecting the load they still carry.
func nouvelleTacheRestante(champNo string, anneeID, dernierSuffixe int) *models.Enseignant {
	nomComplet := fmt.Sprintf("%s-Tâche restante-%d", champNo, dernierSuffixe+1)
	return &models.Enseignant{
		AnneeID:       anneeID,
		ChampNo:       champNo,
		Nom:           nomComplet,
		NomComplet:    nomComplet,
		EstTempsPlein: true,
		EstFictif:     true,
	}
}

// CreerTacheRestante creates the next fictif "Tâche restante" placeholder of
// a champ. Numbering is per champ and per year, continuing after the highest
// existing suffix. The champ lock does not apply to placeholders.
func CreerTacheRestante(db *sql.DB, champNo string, anneeID int) (*models.Enseignant, error) {
	champ, err := database.GetChampByNo(db, champNo)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Message: "Champ non trouvé."}
	}
	if err != nil {
		return nil, err
	}

	max, err := database.GetMaxTacheSuffix(db, champNo, anneeID)
	if err != nil {
		return nil, err
	}

	enseignant := nouvelleTacheRestante(champ.ChampNo, anneeID, max)
	if err := database.CreateEnseignant(db, enseignant); err != nil {
		return nil, err
	}
	return enseignant, nil
}

// SupprimerTacheRestante deletes a fictif teacher and reports, per cours,
// how many groups became available again. Real teachers are only removable
// through the administration, and the champ lock never blocks this path.
func SupprimerTacheRestante(db *sql.DB, enseignantID int) ([]*CoursLibere, error) {
	enseignant, err := database.GetEnseignantByID(db, enseignantID)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{Message: "Enseignant non trouvé."}
	}
	if err != nil {
		return nil, err
	}
	if !enseignant.EstFictif {
		return nil, &ForbiddenError{Message: "Seules les tâches restantes peuvent être supprimées ici."}
	}

	attributions, err := database.GetAttributionsEnseignant(db, enseignantID)
	if err != nil {
		return nil, err
	}

	var liberes []*CoursLibere
	for _, a := range attributions {
		pris, err := database.SumGroupesPris(db, a.CodeCours, a.AnneeIDCours)
		if err != nil {
			return nil, err
		}
		cours, err := database.GetCours(db, a.CodeCours, a.AnneeIDCours)
		if err != nil {
			return nil, err
		}
		liberes = append(liberes, &CoursLibere{
			CodeCours:               a.CodeCours,
			NouveauxGroupesRestants: cours.NbGroupeInitial - pris + a.NbGroupesPris,
		})
	}

	if err := database.DeleteEnseignant(db, enseignantID); err != nil {
		return nil, err
	}
	return liberes, nil
}
