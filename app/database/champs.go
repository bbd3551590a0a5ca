package database

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

func GetAllChamps(db *sql.DB) ([]*models.Champ, error) {
	rows, err := db.Query(`SELECT champno, champnom FROM champs ORDER BY champno`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var champs []*models.Champ
	for rows.Next() {
		champ := &models.Champ{}
		if err := rows.Scan(&champ.ChampNo, &champ.ChampNom); err != nil {
			return nil, err
		}
		champs = append(champs, champ)
	}
	return champs, rows.Err()
}

func GetChampByNo(db *sql.DB, champNo string) (*models.Champ, error) {
	champ := &models.Champ{}
	err := db.QueryRow(`SELECT champno, champnom FROM champs WHERE champno = $1`, champNo).
		Scan(&champ.ChampNo, &champ.ChampNom)
	if err != nil {
		return nil, err
	}
	return champ, nil
}

// GetChampStatut reads the lock/confirm flags of a champ for a year. A champ
// without a status row is unlocked and unconfirmed.
func GetChampStatut(db *sql.DB, champNo string, anneeID int) (*models.ChampAnneeStatut, error) {
	statut := &models.ChampAnneeStatut{ChampNo: champNo, AnneeID: anneeID}
	err := db.QueryRow(`SELECT est_verrouille, est_confirme FROM champ_annee_statuts
			  WHERE champ_no = $1 AND annee_id = $2`, champNo, anneeID).
		Scan(&statut.EstVerrouille, &statut.EstConfirme)
	if err == sql.ErrNoRows {
		return statut, nil
	}
	if err != nil {
		return nil, err
	}
	return statut, nil
}

func GetStatutsForAnnee(db *sql.DB, anneeID int) (map[string]*models.ChampAnneeStatut, error) {
	rows, err := db.Query(`SELECT champ_no, est_verrouille, est_confirme
			  FROM champ_annee_statuts WHERE annee_id = $1`, anneeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuts := make(map[string]*models.ChampAnneeStatut)
	for rows.Next() {
		statut := &models.ChampAnneeStatut{AnneeID: anneeID}
		if err := rows.Scan(&statut.ChampNo, &statut.EstVerrouille, &statut.EstConfirme); err != nil {
			return nil, err
		}
		statuts[statut.ChampNo] = statut
	}
	return statuts, rows.Err()
}

// ToggleChampVerrou flips the lock flag for (champ, annee), creating the
// status row when it does not exist yet, and returns the new value.
func ToggleChampVerrou(db *sql.DB, champNo string, anneeID int) (bool, error) {
	var verrouille bool
	err := db.QueryRow(`
		INSERT INTO champ_annee_statuts (champ_no, annee_id, est_verrouille, est_confirme)
		VALUES ($1, $2, TRUE, FALSE)
		ON CONFLICT (champ_no, annee_id)
		DO UPDATE SET est_verrouille = NOT champ_annee_statuts.est_verrouille
		RETURNING est_verrouille`, champNo, anneeID).Scan(&verrouille)
	return verrouille, err
}

// ToggleChampConfirmation flips the confirmation flag for (champ, annee),
// independent of the lock, and returns the new value.
func ToggleChampConfirmation(db *sql.DB, champNo string, anneeID int) (bool, error) {
	var confirme bool
	err := db.QueryRow(`
		INSERT INTO champ_annee_statuts (champ_no, annee_id, est_verrouille, est_confirme)
		VALUES ($1, $2, FALSE, TRUE)
		ON CONFLICT (champ_no, annee_id)
		DO UPDATE SET est_confirme = NOT champ_annee_statuts.est_confirme
		RETURNING est_confirme`, champNo, anneeID).Scan(&confirme)
	return confirme, err
}
