package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/xuri/excelize/v2"
)

func nettoyerTitreFeuille(titre string) string {
	var b strings.Builder
	for _, r := range titre {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		b.WriteRune(r)
	}
	s := strings.TrimSpace(b.String())
	if runes := []rune(s); len(runes) > 31 {
		s = string(runes[:31])
	}
	return s
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
	})
}

func subtotalStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"F2F2F2"}, Pattern: 1},
	})
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func ouiNon(b bool) string {
	if b {
		return "Oui"
	}
	return "Non"
}

// GenererExportTaches builds the tâches workbook: one sheet per champ, a
// subtotal line after each teacher and a grand total per sheet.
func GenererExportTaches(rows []*models.TacheExportRow) (*excelize.File, error) {
	f := excelize.NewFile()
	hdr, err := headerStyle(f)
	if err != nil {
		return nil, err
	}
	sub, err := subtotalStyle(f)
	if err != nil {
		return nil, err
	}

	headers := []interface{}{"Enseignant", "Code cours", "Description", "Cours autre",
		"Nb. grp.", "Pér./ groupe", "Pér. Total"}

	perChamp := make(map[string][]*models.TacheExportRow)
	var ordre []string
	for _, r := range rows {
		if _, ok := perChamp[r.ChampNo]; !ok {
			ordre = append(ordre, r.ChampNo)
		}
		perChamp[r.ChampNo] = append(perChamp[r.ChampNo], r)
	}
	sort.Strings(ordre)

	for _, champNo := range ordre {
		champRows := perChamp[champNo]
		sheet := nettoyerTitreFeuille(fmt.Sprintf("%s-%s", champNo, champRows[0].ChampNom))
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}

		if err := setRow(f, sheet, 1, headers); err != nil {
			return nil, err
		}
		if err := styleRow(f, sheet, 1, len(headers), hdr); err != nil {
			return nil, err
		}

		rowNum := 2
		var totalChamp, totalEnseignant float64
		previous := ""
		flushSubtotal := func(name string) error {
			values := []interface{}{fmt.Sprintf("Total pour %s", name), "", "", "", "", "", totalEnseignant}
			if err := setRow(f, sheet, rowNum, values); err != nil {
				return err
			}
			if err := styleRow(f, sheet, rowNum, len(headers), sub); err != nil {
				return err
			}
			rowNum++
			totalEnseignant = 0
			return nil
		}

		for _, r := range champRows {
			nom := fmt.Sprintf("%s %s", r.Prenom, r.Nom)
			if previous != "" && nom != previous {
				if err := flushSubtotal(previous); err != nil {
					return nil, err
				}
			}
			periodes := r.NbPeriodes * float64(r.TotalGroupesPris)
			values := []interface{}{nom, r.CodeCours, r.CoursDescriptif, ouiNon(r.EstCoursAutre),
				r.TotalGroupesPris, r.NbPeriodes, periodes}
			if err := setRow(f, sheet, rowNum, values); err != nil {
				return nil, err
			}
			rowNum++
			totalEnseignant += periodes
			totalChamp += periodes
			previous = nom
		}
		if previous != "" {
			if err := flushSubtotal(previous); err != nil {
				return nil, err
			}
		}

		values := []interface{}{"Total du champ", "", "", "", "", "", totalChamp}
		if err := setRow(f, sheet, rowNum, values); err != nil {
			return nil, err
		}
		if err := styleRow(f, sheet, rowNum, len(headers), hdr); err != nil {
			return nil, err
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

func styleRow(f *excelize.File, sheet string, row, cols, style int) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, start, end, style)
}

// raccourcirTache shortens "«champ»-Tâche restante-N" to "Tâche restante-N".
func raccourcirTache(nomComplet string) string {
	if idx := strings.Index(nomComplet, "Tâche"); idx > 0 {
		return nomComplet[idx:]
	}
	return nomComplet
}

// GenererExportOrgScolaire builds the organisation scolaire workbook: one
// line per teacher with periods pivoted into one column per financement
// type, real teachers first, tâches restantes after them, and a final "Non
// attribué" line holding the periods nobody took.
func GenererExportOrgScolaire(rows []*models.OrgScolaireRow, nonAttribue map[string]float64,
	financements []*models.TypeFinancement) (*excelize.File, error) {

	f := excelize.NewFile()
	sheet := "Organisation scolaire"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	hdr, err := headerStyle(f)
	if err != nil {
		return nil, err
	}
	sub, err := subtotalStyle(f)
	if err != nil {
		return nil, err
	}

	// Column layout: fixed columns, then one per financement code seen in
	// the data, the unfunded bucket first.
	codes := []string{""}
	libelles := map[string]string{"": "PÉRIODES"}
	for _, fin := range financements {
		codes = append(codes, fin.Code)
		libelles[fin.Code] = "PÉRIODES " + strings.ToUpper(fin.Libelle)
	}

	headers := []interface{}{"Champ", "Enseignant", "Temps plein"}
	for _, code := range codes {
		headers = append(headers, libelles[code])
	}
	headers = append(headers, "TOTAL")
	if err := setRow(f, sheet, 1, headers); err != nil {
		return nil, err
	}
	if err := styleRow(f, sheet, 1, len(headers), hdr); err != nil {
		return nil, err
	}

	// Pivot: one line per teacher, fictif placeholders ranked after the
	// real staff of their champ.
	type ligne struct {
		champNo    string
		champNom   string
		nom        string
		estFictif  bool
		tempsPlein bool
		periodes   map[string]float64
	}
	lignes := make(map[string]*ligne)
	var ordre []string
	for _, r := range rows {
		key := r.ChampNo + "\x00" + r.NomComplet
		l, ok := lignes[key]
		if !ok {
			l = &ligne{champNo: r.ChampNo, champNom: r.ChampNom, nom: r.NomComplet,
				estFictif: r.EstFictif, tempsPlein: r.EstTempsPlein,
				periodes: make(map[string]float64)}
			lignes[key] = l
			ordre = append(ordre, key)
		}
		l.periodes[r.FinancementCode] += r.Periodes
	}
	sort.Slice(ordre, func(i, j int) bool {
		a, b := lignes[ordre[i]], lignes[ordre[j]]
		if a.champNo != b.champNo {
			return a.champNo < b.champNo
		}
		if a.estFictif != b.estFictif {
			return !a.estFictif
		}
		return a.nom < b.nom
	})

	rowNum := 2
	totaux := make(map[string]float64)
	writeLigne := func(champ, nom string, tempsPlein interface{}, periodes map[string]float64, style int) error {
		values := []interface{}{champ, nom, tempsPlein}
		var total float64
		for _, code := range codes {
			values = append(values, periodes[code])
			total += periodes[code]
			totaux[code] += periodes[code]
		}
		values = append(values, total)
		if err := setRow(f, sheet, rowNum, values); err != nil {
			return err
		}
		if style != 0 {
			if err := styleRow(f, sheet, rowNum, len(values), style); err != nil {
				return err
			}
		}
		rowNum++
		return nil
	}

	for _, key := range ordre {
		l := lignes[key]
		nom := l.nom
		tempsPlein := interface{}(ouiNon(l.tempsPlein))
		if l.estFictif {
			nom = raccourcirTache(nom)
			tempsPlein = ""
		}
		if err := writeLigne(fmt.Sprintf("%s-%s", l.champNo, l.champNom), nom, tempsPlein, l.periodes, 0); err != nil {
			return nil, err
		}
	}

	if err := writeLigne("", "Non attribué", "", nonAttribue, sub); err != nil {
		return nil, err
	}

	// Column totals, the already-accumulated Non attribué line included.
	values := []interface{}{"", "TOTAL", ""}
	var total float64
	for _, code := range codes {
		values = append(values, totaux[code])
		total += totaux[code]
	}
	values = append(values, total)
	if err := setRow(f, sheet, rowNum, values); err != nil {
		return nil, err
	}
	if err := styleRow(f, sheet, rowNum, len(values), hdr); err != nil {
		return nil, err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

// GenererExportPeriodesRestantes lists every cours with groups still open.
func GenererExportPeriodesRestantes(cours []*models.CoursAvecRestants) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Périodes restantes"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	hdr, err := headerStyle(f)
	if err != nil {
		return nil, err
	}

	headers := []interface{}{"Champ", "Code cours", "Description", "Groupes restants",
		"Pér./ groupe", "Périodes restantes"}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return nil, err
	}
	if err := styleRow(f, sheet, 1, len(headers), hdr); err != nil {
		return nil, err
	}

	rowNum := 2
	var totalPeriodes float64
	for _, c := range cours {
		if c.GroupesRestants <= 0 {
			continue
		}
		values := []interface{}{c.ChampNo, c.CodeCours, c.CoursDescriptif,
			c.GroupesRestants, c.NbPeriodes, c.PeriodesRestantes}
		if err := setRow(f, sheet, rowNum, values); err != nil {
			return nil, err
		}
		totalPeriodes += c.PeriodesRestantes
		rowNum++
	}

	values := []interface{}{"", "", "", "", "TOTAL", totalPeriodes}
	if err := setRow(f, sheet, rowNum, values); err != nil {
		return nil, err
	}
	if err := styleRow(f, sheet, rowNum, len(values), hdr); err != nil {
		return nil, err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}
