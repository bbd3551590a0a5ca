package models

// SommaireRow is the raw per-champ aggregate the dashboard summary is built
// from: full-time headcount and their chosen periods for one year.
type SommaireRow struct {
	ChampNo            string  `json:"champ_no"`
	ChampNom           string  `json:"champ_nom"`
	EstVerrouille      bool    `json:"est_verrouille"`
	EstConfirme        bool    `json:"est_confirme"`
	NbEnseignantsTP    int     `json:"nb_enseignants_tp"`
	PeriodesChoisiesTP float64 `json:"periodes_choisies_tp"`
}

// TacheExportRow is one aggregated attribution line of the tâches export.
type TacheExportRow struct {
	ChampNo          string
	ChampNom         string
	Nom              string
	Prenom           string
	CodeCours        string
	CoursDescriptif  string
	EstCoursAutre    bool
	TotalGroupesPris int
	NbPeriodes       float64
}

// OrgScolaireRow carries one teacher's periods under one financement type,
// feeding the pivoted organisation scolaire export.
type OrgScolaireRow struct {
	ChampNo         string
	ChampNom        string
	NomComplet      string
	EstFictif       bool
	EstTempsPlein   bool
	FinancementCode string
	Periodes        float64
}
