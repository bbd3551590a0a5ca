package database

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

func GetAllAnnees(db *sql.DB) ([]*models.AnneeScolaire, error) {
	rows, err := db.Query(`SELECT annee_id, libelle, est_courante
			  FROM annees_scolaires ORDER BY libelle DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var annees []*models.AnneeScolaire
	for rows.Next() {
		annee := &models.AnneeScolaire{}
		if err := rows.Scan(&annee.AnneeID, &annee.Libelle, &annee.EstCourante); err != nil {
			return nil, err
		}
		annees = append(annees, annee)
	}
	return annees, rows.Err()
}

func GetAnneeByID(db *sql.DB, anneeID int) (*models.AnneeScolaire, error) {
	annee := &models.AnneeScolaire{}
	err := db.QueryRow(`SELECT annee_id, libelle, est_courante
			  FROM annees_scolaires WHERE annee_id = $1`, anneeID).
		Scan(&annee.AnneeID, &annee.Libelle, &annee.EstCourante)
	if err != nil {
		return nil, err
	}
	return annee, nil
}

// GetAnneeCourante returns the year flagged courante, or sql.ErrNoRows when
// no year exists yet.
func GetAnneeCourante(db *sql.DB) (*models.AnneeScolaire, error) {
	annee := &models.AnneeScolaire{}
	err := db.QueryRow(`SELECT annee_id, libelle, est_courante
			  FROM annees_scolaires WHERE est_courante = TRUE`).
		Scan(&annee.AnneeID, &annee.Libelle, &annee.EstCourante)
	if err != nil {
		return nil, err
	}
	return annee, nil
}

// CreateAnnee inserts a school year. The very first year automatically
// becomes the current one.
func CreateAnnee(db *sql.DB, libelle string) (*models.AnneeScolaire, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM annees_scolaires`).Scan(&count); err != nil {
		return nil, err
	}

	annee := &models.AnneeScolaire{Libelle: libelle, EstCourante: count == 0}
	err = tx.QueryRow(`INSERT INTO annees_scolaires (libelle, est_courante)
			  VALUES ($1, $2) RETURNING annee_id`, annee.Libelle, annee.EstCourante).
		Scan(&annee.AnneeID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return annee, nil
}

// SetAnneeCourante moves the courante flag to the given year.
func SetAnneeCourante(db *sql.DB, anneeID int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE annees_scolaires SET est_courante = FALSE WHERE est_courante = TRUE`); err != nil {
		return err
	}
	res, err := tx.Exec(`UPDATE annees_scolaires SET est_courante = TRUE WHERE annee_id = $1`, anneeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}
