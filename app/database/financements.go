package database

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

func GetAllFinancements(db *sql.DB) ([]*models.TypeFinancement, error) {
	rows, err := db.Query(`SELECT code, libelle FROM types_financement ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var financements []*models.TypeFinancement
	for rows.Next() {
		f := &models.TypeFinancement{}
		if err := rows.Scan(&f.Code, &f.Libelle); err != nil {
			return nil, err
		}
		financements = append(financements, f)
	}
	return financements, rows.Err()
}

func GetFinancementByCode(db *sql.DB, code string) (*models.TypeFinancement, error) {
	f := &models.TypeFinancement{}
	err := db.QueryRow(`SELECT code, libelle FROM types_financement WHERE code = $1`, code).
		Scan(&f.Code, &f.Libelle)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func CreateFinancement(db *sql.DB, f *models.TypeFinancement) error {
	_, err := db.Exec(`INSERT INTO types_financement (code, libelle) VALUES ($1, $2)`,
		f.Code, f.Libelle)
	return err
}

// UpdateFinancement changes the libelle only; the code is immutable.
func UpdateFinancement(db *sql.DB, f *models.TypeFinancement) error {
	res, err := db.Exec(`UPDATE types_financement SET libelle = $1 WHERE code = $2`,
		f.Libelle, f.Code)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteFinancement(db *sql.DB, code string) error {
	res, err := db.Exec(`DELETE FROM types_financement WHERE code = $1`, code)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
