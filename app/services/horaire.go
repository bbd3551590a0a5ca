package services

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/models"
)

// TeacherSlot is one draggable teacher occurrence in the schedule grid; a
// teacher holding three groups of a cours appears three times.
type TeacherSlot struct {
	EnseignantID int    `json:"enseignantid"`
	NomComplet   string `json:"nomcomplet"`
	EstFictif    bool   `json:"estfictif"`
}

// GrilleItem is one cours placed on a secondaire level: its slots already
// dropped on a column, and the ones still waiting on the side.
type GrilleItem struct {
	Cours                 *models.CoursAvecRestants `json:"cours"`
	AssignedTeachersByCol map[string][]int          `json:"assigned_teachers_by_col"`
	UnassignedTeachers    []*TeacherSlot            `json:"unassigned_teachers"`
}

// PreparationData feeds the schedule preparation page.
type PreparationData struct {
	AllChamps           []*models.Champ                        `json:"all_champs"`
	CoursParChamp       map[string][]*models.CoursAvecRestants `json:"cours_par_champ"`
	EnseignantsParCours map[string][]*TeacherSlot              `json:"enseignants_par_cours"`
	PreparedGrid        map[int][]*GrilleItem                  `json:"prepared_grid"`
}

// GetPreparationHoraireData assembles the grid page payload for a year.
func GetPreparationHoraireData(db *sql.DB, anneeID int) (*PreparationData, error) {
	champs, err := database.GetAllChamps(db)
	if err != nil {
		return nil, err
	}
	cours, err := database.GetAllCoursAvecRestants(db, anneeID)
	if err != nil {
		return nil, err
	}
	occupations, err := database.GetOccupationsCours(db, anneeID)
	if err != nil {
		return nil, err
	}
	cells, err := database.GetPreparationHoraire(db, anneeID)
	if err != nil {
		return nil, err
	}
	return BuildPreparationData(champs, cours, occupations, cells), nil
}

// BuildPreparationData unfolds the attributions into teacher slots and
// replays the saved cells over them.
func BuildPreparationData(champs []*models.Champ, cours []*models.CoursAvecRestants,
	occupations []*models.OccupationCours, cells []*models.PreparationHoraire) *PreparationData {

	data := &PreparationData{
		AllChamps:           champs,
		CoursParChamp:       make(map[string][]*models.CoursAvecRestants),
		EnseignantsParCours: make(map[string][]*TeacherSlot),
		PreparedGrid:        make(map[int][]*GrilleItem),
	}

	coursParCode := make(map[string]*models.CoursAvecRestants)
	for _, c := range cours {
		data.CoursParChamp[c.ChampNo] = append(data.CoursParChamp[c.ChampNo], c)
		coursParCode[c.CodeCours] = c
	}

	for _, o := range occupations {
		for i := 0; i < o.NbGroupesPris; i++ {
			data.EnseignantsParCours[o.CodeCours] = append(data.EnseignantsParCours[o.CodeCours],
				&TeacherSlot{EnseignantID: o.EnseignantID, NomComplet: o.NomComplet, EstFictif: o.EstFictif})
		}
	}

	// One grid item per (level, cours) pair seen in the saved cells.
	items := make(map[int]map[string]*GrilleItem)
	for _, cell := range cells {
		c, ok := coursParCode[cell.CodeCours]
		if !ok {
			continue
		}
		if items[cell.SecondaireLevel] == nil {
			items[cell.SecondaireLevel] = make(map[string]*GrilleItem)
		}
		item, ok := items[cell.SecondaireLevel][cell.CodeCours]
		if !ok {
			item = &GrilleItem{Cours: c, AssignedTeachersByCol: make(map[string][]int)}
			items[cell.SecondaireLevel][cell.CodeCours] = item
			data.PreparedGrid[cell.SecondaireLevel] = append(data.PreparedGrid[cell.SecondaireLevel], item)
		}
		item.AssignedTeachersByCol[cell.ColonneAssignee] =
			append(item.AssignedTeachersByCol[cell.ColonneAssignee], cell.EnseignantID)
	}

	// Whatever was not dropped on a column stays in the unassigned pool.
	for _, perCours := range items {
		for codeCours, item := range perCours {
			assigned := make(map[int]int)
			for _, ids := range item.AssignedTeachersByCol {
				for _, id := range ids {
					assigned[id]++
				}
			}
			for _, slot := range data.EnseignantsParCours[codeCours] {
				if assigned[slot.EnseignantID] > 0 {
					assigned[slot.EnseignantID]--
					continue
				}
				item.UnassignedTeachers = append(item.UnassignedTeachers, slot)
			}
		}
	}
	return data
}

// SauvegarderPreparationHoraire validates the posted cells and swaps the
// whole grid of the year, clearing it when the list is empty.
func SauvegarderPreparationHoraire(db *sql.DB, anneeID int, cells []*models.PreparationHoraire) error {
	for _, cell := range cells {
		if cell.SecondaireLevel < 1 || cell.SecondaireLevel > 5 ||
			cell.CodeCours == "" || cell.AnneeIDCours == 0 ||
			cell.EnseignantID == 0 || cell.ColonneAssignee == "" {
			return &ValidationError{Message: "Données d'assignation invalides ou incomplètes."}
		}
	}
	return database.ReplacePreparationHoraire(db, anneeID, cells)
}
