package database

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

// GetAttributionsEnseignant lists a teacher's attributions joined with the
// cours parameters, ready for period computation.
func GetAttributionsEnseignant(db *sql.DB, enseignantID int) ([]*models.AttributionDetail, error) {
	rows, err := db.Query(`
		SELECT ac.attributionid, ac.enseignantid, ac.codecours, ac.annee_id_cours,
			   c.coursdescriptif, ac.nbgroupespris, c.nbperiodes, c.estcoursautre
		FROM attributions_cours ac
		JOIN cours c ON c.codecours = ac.codecours AND c.annee_id = ac.annee_id_cours
		WHERE ac.enseignantid = $1
		ORDER BY ac.codecours`, enseignantID)
	if err != nil {
		return nil, err
	}
	return scanAttributionDetails(rows)
}

// GetAttributionsParChamp lists every attribution of a champ for a year,
// with the cours joined, ordered by teacher then cours.
func GetAttributionsParChamp(db *sql.DB, champNo string, anneeID int) (map[int][]*models.AttributionDetail, error) {
	rows, err := db.Query(`
		SELECT ac.attributionid, ac.enseignantid, ac.codecours, ac.annee_id_cours,
			   c.coursdescriptif, ac.nbgroupespris, c.nbperiodes, c.estcoursautre
		FROM attributions_cours ac
		JOIN cours c ON c.codecours = ac.codecours AND c.annee_id = ac.annee_id_cours
		JOIN enseignants e ON e.enseignantid = ac.enseignantid
		WHERE e.champno = $1 AND ac.annee_id = $2
		ORDER BY ac.enseignantid, ac.codecours`, champNo, anneeID)
	if err != nil {
		return nil, err
	}
	details, err := scanAttributionDetails(rows)
	if err != nil {
		return nil, err
	}

	parEnseignant := make(map[int][]*models.AttributionDetail)
	for _, d := range details {
		parEnseignant[d.EnseignantID] = append(parEnseignant[d.EnseignantID], d)
	}
	return parEnseignant, nil
}

func scanAttributionDetails(rows *sql.Rows) ([]*models.AttributionDetail, error) {
	defer rows.Close()

	var details []*models.AttributionDetail
	for rows.Next() {
		d := &models.AttributionDetail{}
		if err := rows.Scan(&d.AttributionID, &d.EnseignantID, &d.CodeCours, &d.AnneeIDCours,
			&d.CoursDescriptif, &d.NbGroupesPris, &d.NbPeriodes, &d.EstCoursAutre); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

// SumGroupesPris totals the groups already taken on a cours.
func SumGroupesPris(db *sql.DB, codeCours string, anneeID int) (int, error) {
	var total int
	err := db.QueryRow(`SELECT COALESCE(SUM(nbgroupespris), 0) FROM attributions_cours
			  WHERE codecours = $1 AND annee_id_cours = $2`, codeCours, anneeID).Scan(&total)
	return total, err
}

// IncrementAttribution adds one group to the (enseignant, cours) attribution,
// creating the row on first take.
func IncrementAttribution(db *sql.DB, enseignantID int, codeCours string, anneeID int) error {
	_, err := db.Exec(`
		INSERT INTO attributions_cours (enseignantid, codecours, annee_id_cours, annee_id, nbgroupespris)
		VALUES ($1, $2, $3, $3, 1)
		ON CONFLICT (enseignantid, codecours, annee_id_cours)
		DO UPDATE SET nbgroupespris = attributions_cours.nbgroupespris + 1`,
		enseignantID, codeCours, anneeID)
	return err
}

// DecrementAttribution removes one group from the attribution, deleting the
// row when the counter reaches zero. Returns sql.ErrNoRows when the teacher
// holds no group of that cours.
func DecrementAttribution(db *sql.DB, enseignantID int, codeCours string, anneeID int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var nbGroupes int
	err = tx.QueryRow(`SELECT nbgroupespris FROM attributions_cours
			  WHERE enseignantid = $1 AND codecours = $2 AND annee_id_cours = $3
			  FOR UPDATE`, enseignantID, codeCours, anneeID).Scan(&nbGroupes)
	if err != nil {
		return err
	}

	if nbGroupes <= 1 {
		_, err = tx.Exec(`DELETE FROM attributions_cours
				  WHERE enseignantid = $1 AND codecours = $2 AND annee_id_cours = $3`,
			enseignantID, codeCours, anneeID)
	} else {
		_, err = tx.Exec(`UPDATE attributions_cours SET nbgroupespris = nbgroupespris - 1
				  WHERE enseignantid = $1 AND codecours = $2 AND annee_id_cours = $3`,
			enseignantID, codeCours, anneeID)
	}
	if err != nil {
		return err
	}
	return tx.Commit()
}
