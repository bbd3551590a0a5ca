package database

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/models"
)

// GetSommaireRows aggregates, per champ, the full-time headcount and their
// chosen periods for a year. Champs without a single teacher still get a
// row, so the dashboard shows the whole school.
func GetSommaireRows(db *sql.DB, anneeID int) ([]*models.SommaireRow, error) {
	rows, err := db.Query(`
		SELECT ch.champno, ch.champnom,
			   COALESCE(s.est_verrouille, FALSE), COALESCE(s.est_confirme, FALSE),
			   COUNT(DISTINCT e.enseignantid) FILTER (WHERE e.esttempsplein AND NOT e.estfictif),
			   COALESCE(SUM(c.nbperiodes * ac.nbgroupespris)
					FILTER (WHERE e.esttempsplein AND NOT e.estfictif), 0)
		FROM champs ch
		LEFT JOIN champ_annee_statuts s ON s.champ_no = ch.champno AND s.annee_id = $1
		LEFT JOIN enseignants e ON e.champno = ch.champno AND e.annee_id = $1
		LEFT JOIN attributions_cours ac ON ac.enseignantid = e.enseignantid
		LEFT JOIN cours c ON c.codecours = ac.codecours AND c.annee_id = ac.annee_id_cours
		GROUP BY ch.champno, ch.champnom, s.est_verrouille, s.est_confirme
		ORDER BY ch.champno`, anneeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.SommaireRow
	for rows.Next() {
		r := &models.SommaireRow{}
		if err := rows.Scan(&r.ChampNo, &r.ChampNom, &r.EstVerrouille, &r.EstConfirme,
			&r.NbEnseignantsTP, &r.PeriodesChoisiesTP); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetTachesExportRows lists aggregated attributions for the tâches export,
// fictif placeholders excluded, ordered champ / teacher / cours.
func GetTachesExportRows(db *sql.DB, anneeID int) ([]*models.TacheExportRow, error) {
	rows, err := db.Query(`
		SELECT e.champno, ch.champnom, e.nom, e.prenom, ac.codecours, c.coursdescriptif,
			   c.estcoursautre, SUM(ac.nbgroupespris), c.nbperiodes
		FROM attributions_cours ac
		JOIN enseignants e ON e.enseignantid = ac.enseignantid
		JOIN champs ch ON ch.champno = e.champno
		JOIN cours c ON c.codecours = ac.codecours AND c.annee_id = ac.annee_id_cours
		WHERE ac.annee_id = $1 AND NOT e.estfictif
		GROUP BY e.champno, ch.champnom, e.nom, e.prenom, ac.codecours,
				 c.coursdescriptif, c.estcoursautre, c.nbperiodes
		ORDER BY e.champno, e.nom, e.prenom, ac.codecours`, anneeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.TacheExportRow
	for rows.Next() {
		r := &models.TacheExportRow{}
		if err := rows.Scan(&r.ChampNo, &r.ChampNom, &r.Nom, &r.Prenom, &r.CodeCours,
			&r.CoursDescriptif, &r.EstCoursAutre, &r.TotalGroupesPris, &r.NbPeriodes); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetOrgScolaireRows returns, per teacher and financement code, the periods
// taken for a year. The financement code is empty for unfunded cours.
func GetOrgScolaireRows(db *sql.DB, anneeID int) ([]*models.OrgScolaireRow, error) {
	rows, err := db.Query(`
		SELECT e.champno, ch.champnom, e.nomcomplet, e.estfictif, e.esttempsplein,
			   COALESCE(c.financement_code, ''), SUM(c.nbperiodes * ac.nbgroupespris)
		FROM attributions_cours ac
		JOIN enseignants e ON e.enseignantid = ac.enseignantid
		JOIN champs ch ON ch.champno = e.champno
		JOIN cours c ON c.codecours = ac.codecours AND c.annee_id = ac.annee_id_cours
		WHERE ac.annee_id = $1
		GROUP BY e.champno, ch.champnom, e.nomcomplet, e.estfictif, e.esttempsplein,
				 COALESCE(c.financement_code, '')
		ORDER BY e.champno, e.estfictif, e.nomcomplet`, anneeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.OrgScolaireRow
	for rows.Next() {
		r := &models.OrgScolaireRow{}
		if err := rows.Scan(&r.ChampNo, &r.ChampNom, &r.NomComplet, &r.EstFictif,
			&r.EstTempsPlein, &r.FinancementCode, &r.Periodes); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetPeriodesNonAttribuees totals, per financement code, the periods of
// groups nobody has taken yet. Feeds the "Non attribué" export row.
func GetPeriodesNonAttribuees(db *sql.DB, anneeID int) (map[string]float64, error) {
	rows, err := db.Query(`
		SELECT COALESCE(c.financement_code, ''),
			   SUM(c.nbperiodes * (c.nbgroupeinitial - COALESCE(pris.total, 0)))
		FROM cours c
		LEFT JOIN (
			SELECT codecours, annee_id_cours, SUM(nbgroupespris) AS total
			FROM attributions_cours
			GROUP BY codecours, annee_id_cours
		) pris ON pris.codecours = c.codecours AND pris.annee_id_cours = c.annee_id
		WHERE c.annee_id = $1 AND c.nbgroupeinitial - COALESCE(pris.total, 0) > 0
		GROUP BY COALESCE(c.financement_code, '')`, anneeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]float64)
	for rows.Next() {
		var code string
		var periodes float64
		if err := rows.Scan(&code, &periodes); err != nil {
			return nil, err
		}
		result[code] = periodes
	}
	return result, rows.Err()
}
