package services

import (
	"database/sql"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/xuri/excelize/v2"
)

// ImportationStats summarizes a destructive import: what was inserted and
// what the full replace wiped out first.
type ImportationStats struct {
	Imported            int `json:"imported_count"`
	DeletedAttributions int `json:"deleted_attributions_count"`
	DeletedMainEntities int `json:"deleted_main_entities_count"`
}

// parseBooleen accepts the tokens seen in the school's spreadsheets.
func parseBooleen(token string) bool {
	switch strings.ToUpper(strings.TrimSpace(token)) {
	case "VRAI", "TRUE", "OUI", "YES", "1":
		return true
	}
	return false
}

// parseDecimal reads a number whose decimal separator may be a comma.
func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseEntier(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	// Spreadsheets sometimes carry counts as "36.0".
	f, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// ParseCoursWorkbook reads the cours sheet: champ, code, (ignored),
// descriptif, nb groupes, nb périodes, cours autre, financement. The header
// row is skipped and blank lines are ignored.
func ParseCoursWorkbook(r io.Reader) ([]*models.Cours, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ValidationError{Message: "Fichier Excel illisible."}
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	var result []*models.Cours
	for i, row := range rows {
		if i == 0 {
			continue
		}
		champNo := cell(row, 0)
		codeCours := cell(row, 1)
		if champNo == "" && codeCours == "" {
			continue
		}
		if champNo == "" || codeCours == "" {
			return nil, &ValidationError{Message: fmt.Sprintf("Ligne %d : champ et code du cours sont obligatoires.", i+1)}
		}

		nbGroupes, err := parseEntier(cell(row, 4))
		if err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("Ligne %d : nombre de groupes invalide.", i+1)}
		}
		nbPeriodes, err := parseDecimal(cell(row, 5))
		if err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("Ligne %d : nombre de périodes invalide.", i+1)}
		}

		cours := &models.Cours{
			ChampNo:         champNo,
			CodeCours:       codeCours,
			CoursDescriptif: cell(row, 3),
			NbGroupeInitial: nbGroupes,
			NbPeriodes:      nbPeriodes,
			EstCoursAutre:   parseBooleen(cell(row, 6)),
		}
		if code := cell(row, 7); code != "" {
			cours.FinancementCode = &code
		}
		if err := ValiderFinancementCours(cours.EstCoursAutre, cours.FinancementCode); err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("Ligne %d : un cours autre ne peut pas porter de financement.", i+1)}
		}
		result = append(result, cours)
	}
	return result, nil
}

// ParseEnseignantsWorkbook reads the teacher sheet: champ, nom, prénom,
// temps plein.
func ParseEnseignantsWorkbook(r io.Reader) ([]*models.Enseignant, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &ValidationError{Message: "Fichier Excel illisible."}
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	var result []*models.Enseignant
	for i, row := range rows {
		if i == 0 {
			continue
		}
		champNo := cell(row, 0)
		nom := cell(row, 1)
		prenom := cell(row, 2)
		if champNo == "" && nom == "" {
			continue
		}
		if champNo == "" || nom == "" {
			return nil, &ValidationError{Message: fmt.Sprintf("Ligne %d : champ et nom sont obligatoires.", i+1)}
		}

		result = append(result, &models.Enseignant{
			ChampNo:       champNo,
			Nom:           nom,
			Prenom:        prenom,
			NomComplet:    strings.TrimSpace(prenom + " " + nom),
			EstTempsPlein: parseBooleen(cell(row, 3)),
		})
	}
	return result, nil
}

// SaveImportedCours replaces every cours of the year with the parsed rows.
// The year's attributions go first, then the cours themselves; any failure
// rolls the whole import back.
func SaveImportedCours(db *sql.DB, anneeID int, cours []*models.Cours) (*ImportationStats, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stats := &ImportationStats{}
	if stats.DeletedAttributions, err = execAffected(tx,
		`DELETE FROM attributions_cours WHERE annee_id = $1`, anneeID); err != nil {
		return nil, err
	}
	if stats.DeletedMainEntities, err = execAffected(tx,
		`DELETE FROM cours WHERE annee_id = $1`, anneeID); err != nil {
		return nil, err
	}

	for _, c := range cours {
		if _, err := tx.Exec(`INSERT INTO cours (codecours, annee_id, champno, coursdescriptif,
				  nbperiodes, nbgroupeinitial, estcoursautre, financement_code)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			c.CodeCours, anneeID, c.ChampNo, c.CoursDescriptif,
			c.NbPeriodes, c.NbGroupeInitial, c.EstCoursAutre, c.FinancementCode); err != nil {
			if IsUniqueViolation(err) {
				return nil, &ConflictError{Message: fmt.Sprintf("Le cours %s apparaît plus d'une fois dans le fichier.", c.CodeCours)}
			}
			if IsForeignKeyViolation(err) {
				return nil, &ValidationError{Message: fmt.Sprintf("Le cours %s référence un champ ou un financement inconnu.", c.CodeCours)}
			}
			return nil, err
		}
		stats.Imported++
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return stats, nil
}

// SaveImportedEnseignants replaces every teacher of the year, fictif
// placeholders included, with the parsed rows.
func SaveImportedEnseignants(db *sql.DB, anneeID int, enseignants []*models.Enseignant) (*ImportationStats, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stats := &ImportationStats{}
	if stats.DeletedAttributions, err = execAffected(tx,
		`DELETE FROM attributions_cours WHERE annee_id = $1`, anneeID); err != nil {
		return nil, err
	}
	if stats.DeletedMainEntities, err = execAffected(tx,
		`DELETE FROM enseignants WHERE annee_id = $1`, anneeID); err != nil {
		return nil, err
	}

	for _, e := range enseignants {
		if _, err := tx.Exec(`INSERT INTO enseignants (annee_id, champno, nom, prenom, nomcomplet,
				  esttempsplein, estfictif)
				  VALUES ($1, $2, $3, $4, $5, $6, FALSE)`,
			anneeID, e.ChampNo, e.Nom, e.Prenom, e.NomComplet, e.EstTempsPlein); err != nil {
			if IsUniqueViolation(err) {
				return nil, &ConflictError{Message: fmt.Sprintf("L'enseignant %s apparaît plus d'une fois dans le fichier.", e.NomComplet)}
			}
			if IsForeignKeyViolation(err) {
				return nil, &ValidationError{Message: fmt.Sprintf("L'enseignant %s référence un champ inconnu.", e.NomComplet)}
			}
			return nil, err
		}
		stats.Imported++
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return stats, nil
}

func execAffected(tx *sql.Tx, query string, args ...interface{}) (int, error) {
	res, err := tx.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
