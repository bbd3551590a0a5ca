package database

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

const coursAvecRestantsQuery = `
	SELECT c.codecours, c.annee_id, c.champno, c.coursdescriptif, c.nbperiodes,
		   c.nbgroupeinitial, c.estcoursautre, c.financement_code,
		   COALESCE(SUM(ac.nbgroupespris), 0) AS groupes_pris
	FROM cours c
	LEFT JOIN attributions_cours ac
		ON ac.codecours = c.codecours AND ac.annee_id_cours = c.annee_id
`

func scanCoursAvecRestants(rows *sql.Rows) ([]*models.CoursAvecRestants, error) {
	defer rows.Close()

	var result []*models.CoursAvecRestants
	for rows.Next() {
		c := &models.CoursAvecRestants{}
		if err := rows.Scan(&c.CodeCours, &c.AnneeID, &c.ChampNo, &c.CoursDescriptif,
			&c.NbPeriodes, &c.NbGroupeInitial, &c.EstCoursAutre, &c.FinancementCode,
			&c.GroupesPris); err != nil {
			return nil, err
		}
		c.GroupesRestants = c.NbGroupeInitial - c.GroupesPris
		c.PeriodesRestantes = float64(c.GroupesRestants) * c.NbPeriodes
		result = append(result, c)
	}
	return result, rows.Err()
}

func GetCoursParChamp(db *sql.DB, champNo string, anneeID int) ([]*models.CoursAvecRestants, error) {
	rows, err := db.Query(coursAvecRestantsQuery+`
		WHERE c.champno = $1 AND c.annee_id = $2
		GROUP BY c.codecours, c.annee_id
		ORDER BY c.codecours`, champNo, anneeID)
	if err != nil {
		return nil, err
	}
	return scanCoursAvecRestants(rows)
}

func GetAllCoursAvecRestants(db *sql.DB, anneeID int) ([]*models.CoursAvecRestants, error) {
	rows, err := db.Query(coursAvecRestantsQuery+`
		WHERE c.annee_id = $1
		GROUP BY c.codecours, c.annee_id
		ORDER BY c.champno, c.codecours`, anneeID)
	if err != nil {
		return nil, err
	}
	return scanCoursAvecRestants(rows)
}

func GetCours(db *sql.DB, codeCours string, anneeID int) (*models.Cours, error) {
	c := &models.Cours{}
	err := db.QueryRow(`SELECT codecours, annee_id, champno, coursdescriptif, nbperiodes,
			  nbgroupeinitial, estcoursautre, financement_code
			  FROM cours WHERE codecours = $1 AND annee_id = $2`, codeCours, anneeID).
		Scan(&c.CodeCours, &c.AnneeID, &c.ChampNo, &c.CoursDescriptif, &c.NbPeriodes,
			&c.NbGroupeInitial, &c.EstCoursAutre, &c.FinancementCode)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func CreateCours(db *sql.DB, c *models.Cours) error {
	_, err := db.Exec(`INSERT INTO cours (codecours, annee_id, champno, coursdescriptif,
			  nbperiodes, nbgroupeinitial, estcoursautre, financement_code)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.CodeCours, c.AnneeID, c.ChampNo, c.CoursDescriptif,
		c.NbPeriodes, c.NbGroupeInitial, c.EstCoursAutre, c.FinancementCode)
	return err
}

// UpdateCours rewrites every mutable column; the (codecours, annee_id) key
// never changes.
func UpdateCours(db *sql.DB, c *models.Cours) error {
	res, err := db.Exec(`UPDATE cours SET champno = $1, coursdescriptif = $2, nbperiodes = $3,
			  nbgroupeinitial = $4, estcoursautre = $5, financement_code = $6
			  WHERE codecours = $7 AND annee_id = $8`,
		c.ChampNo, c.CoursDescriptif, c.NbPeriodes, c.NbGroupeInitial,
		c.EstCoursAutre, c.FinancementCode, c.CodeCours, c.AnneeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func DeleteCours(db *sql.DB, codeCours string, anneeID int) error {
	res, err := db.Exec(`DELETE FROM cours WHERE codecours = $1 AND annee_id = $2`, codeCours, anneeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func ReassignCoursChamp(db *sql.DB, codeCours string, anneeID int, champNo string) error {
	res, err := db.Exec(`UPDATE cours SET champno = $1 WHERE codecours = $2 AND annee_id = $3`,
		champNo, codeCours, anneeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func ReassignCoursFinancement(db *sql.DB, codeCours string, anneeID int, financementCode *string) error {
	res, err := db.Exec(`UPDATE cours SET financement_code = $1 WHERE codecours = $2 AND annee_id = $3`,
		financementCode, codeCours, anneeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
