package database

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

func GetPreparationHoraire(db *sql.DB, anneeID int) ([]*models.PreparationHoraire, error) {
	rows, err := db.Query(`SELECT id, annee_id, secondaire_level, codecours, annee_id_cours,
			  enseignant_id, colonne_assignee
			  FROM preparation_horaire
			  WHERE annee_id = $1
			  ORDER BY secondaire_level, codecours, colonne_assignee`, anneeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cells []*models.PreparationHoraire
	for rows.Next() {
		cell := &models.PreparationHoraire{}
		if err := rows.Scan(&cell.ID, &cell.AnneeID, &cell.SecondaireLevel, &cell.CodeCours,
			&cell.AnneeIDCours, &cell.EnseignantID, &cell.ColonneAssignee); err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
	return cells, rows.Err()
}

// GetOccupationsCours lists, per cours of a year, who took groups and how
// many. The schedule grid unfolds these into one slot per group.
func GetOccupationsCours(db *sql.DB, anneeID int) ([]*models.OccupationCours, error) {
	rows, err := db.Query(`
		SELECT ac.codecours, ac.enseignantid, e.nomcomplet, e.estfictif, ac.nbgroupespris
		FROM attributions_cours ac
		JOIN enseignants e ON e.enseignantid = ac.enseignantid
		WHERE ac.annee_id = $1
		ORDER BY ac.codecours, e.nomcomplet`, anneeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var occupations []*models.OccupationCours
	for rows.Next() {
		o := &models.OccupationCours{}
		if err := rows.Scan(&o.CodeCours, &o.EnseignantID, &o.NomComplet,
			&o.EstFictif, &o.NbGroupesPris); err != nil {
			return nil, err
		}
		occupations = append(occupations, o)
	}
	return occupations, rows.Err()
}

// ReplacePreparationHoraire swaps the whole grid of a year for the given
// cells in one transaction. An empty slice clears the grid.
func ReplacePreparationHoraire(db *sql.DB, anneeID int, cells []*models.PreparationHoraire) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM preparation_horaire WHERE annee_id = $1`, anneeID); err != nil {
		return err
	}
	for _, cell := range cells {
		if _, err := tx.Exec(`INSERT INTO preparation_horaire
				  (annee_id, secondaire_level, codecours, annee_id_cours, enseignant_id, colonne_assignee)
				  VALUES ($1, $2, $3, $4, $5, $6)`,
			anneeID, cell.SecondaireLevel, cell.CodeCours, cell.AnneeIDCours,
			cell.EnseignantID, cell.ColonneAssignee); err != nil {
			return err
		}
	}
	return tx.Commit()
}
