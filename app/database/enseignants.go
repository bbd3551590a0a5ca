package database

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

func GetEnseignantsParChamp(db *sql.DB, champNo string, anneeID int) ([]*models.Enseignant, error) {
	rows, err := db.Query(`SELECT enseignantid, annee_id, champno, nom, prenom, nomcomplet,
			  esttempsplein, estfictif
			  FROM enseignants
			  WHERE champno = $1 AND annee_id = $2
			  ORDER BY estfictif, nom, prenom`, champNo, anneeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enseignants []*models.Enseignant
	for rows.Next() {
		e := &models.Enseignant{}
		if err := rows.Scan(&e.EnseignantID, &e.AnneeID, &e.ChampNo, &e.Nom, &e.Prenom,
			&e.NomComplet, &e.EstTempsPlein, &e.EstFictif); err != nil {
			return nil, err
		}
		enseignants = append(enseignants, e)
	}
	return enseignants, rows.Err()
}

func GetAllEnseignants(db *sql.DB, anneeID int) ([]*models.Enseignant, error) {
	rows, err := db.Query(`SELECT enseignantid, annee_id, champno, nom, prenom, nomcomplet,
			  esttempsplein, estfictif
			  FROM enseignants
			  WHERE annee_id = $1
			  ORDER BY champno, estfictif, nom, prenom`, anneeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enseignants []*models.Enseignant
	for rows.Next() {
		e := &models.Enseignant{}
		if err := rows.Scan(&e.EnseignantID, &e.AnneeID, &e.ChampNo, &e.Nom, &e.Prenom,
			&e.NomComplet, &e.EstTempsPlein, &e.EstFictif); err != nil {
			return nil, err
		}
		enseignants = append(enseignants, e)
	}
	return enseignants, rows.Err()
}

func GetEnseignantByID(db *sql.DB, enseignantID int) (*models.Enseignant, error) {
	e := &models.Enseignant{}
	err := db.QueryRow(`SELECT enseignantid, annee_id, champno, nom, prenom, nomcomplet,
			  esttempsplein, estfictif
			  FROM enseignants WHERE enseignantid = $1`, enseignantID).
		Scan(&e.EnseignantID, &e.AnneeID, &e.ChampNo, &e.Nom, &e.Prenom,
			&e.NomComplet, &e.EstTempsPlein, &e.EstFictif)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func CreateEnseignant(db *sql.DB, e *models.Enseignant) error {
	return db.QueryRow(`INSERT INTO enseignants (annee_id, champno, nom, prenom, nomcomplet,
			  esttempsplein, estfictif)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING enseignantid`,
		e.AnneeID, e.ChampNo, e.Nom, e.Prenom, e.NomComplet, e.EstTempsPlein, e.EstFictif).
		Scan(&e.EnseignantID)
}

func UpdateEnseignant(db *sql.DB, e *models.Enseignant) error {
	res, err := db.Exec(`UPDATE enseignants SET champno = $1, nom = $2, prenom = $3,
			  nomcomplet = $4, esttempsplein = $5
			  WHERE enseignantid = $6`,
		e.ChampNo, e.Nom, e.Prenom, e.NomComplet, e.EstTempsPlein, e.EnseignantID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteEnseignant removes the teacher; attribution rows cascade. Callers
// wanting the freed groups must collect them before deleting.
func DeleteEnseignant(db *sql.DB, enseignantID int) error {
	res, err := db.Exec(`DELETE FROM enseignants WHERE enseignantid = $1`, enseignantID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetMaxTacheSuffix returns the highest numeric suffix among the fictif
// "Tâche restante" teachers of a champ for a year, 0 when there are none.
// Numbering restarts at 1 in every champ and every year.
func GetMaxTacheSuffix(db *sql.DB, champNo string, anneeID int) (int, error) {
	var max int
	err := db.QueryRow(`
		SELECT COALESCE(MAX(
			NULLIF(regexp_replace(nomcomplet, '^.*-', ''), '')::INTEGER), 0)
		FROM enseignants
		WHERE champno = $1 AND annee_id = $2 AND estfictif = TRUE
		  AND nomcomplet ~ '-[0-9]+$'`, champNo, anneeID).Scan(&max)
	return max, err
}
