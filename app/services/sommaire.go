package services

import "github.com/Cloutiere/Gestion-administrative/app/models"

// PeriodesCible is the yearly period target of a full-time teacher; the
// "périodes magiques" of a champ is its surplus over that target.
const PeriodesCible = 24.0

// FacteurChiffreMagique converts a full-time headcount into the chiffre
// magique used when balancing the school staffing.
const FacteurChiffreMagique = 0.6

type ChampSommaire struct {
	ChampNo            string  `json:"champ_no"`
	ChampNom           string  `json:"champ_nom"`
	EstVerrouille      bool    `json:"est_verrouille"`
	EstConfirme        bool    `json:"est_confirme"`
	NbEnseignantsTP    int     `json:"nb_enseignants_tp"`
	PeriodesChoisiesTP float64 `json:"periodes_choisies_tp"`
	Moyenne            float64 `json:"moyenne"`
	PeriodesMagiques   float64 `json:"periodes_magiques"`
	ChiffreMagique     float64 `json:"chiffre_magique"`
}

type GrandTotaux struct {
	TotalEnseignantsTP      int     `json:"total_enseignants_tp"`
	TotalPeriodesChoisiesTP float64 `json:"total_periodes_choisies_tp"`
	TotalPeriodesMagiques   float64 `json:"total_periodes_magiques"`
	ChiffreMagique          float64 `json:"chiffre_magique"`
}

type Sommaire struct {
	Champs                       []*ChampSommaire `json:"champs"`
	GrandTotaux                  GrandTotaux      `json:"grand_totals"`
	MoyenneGenerale              float64          `json:"moyenne_generale"`
	MoyennePreliminaireConfirmee float64          `json:"moyenne_preliminaire_confirmee"`
	PeriodesMagiquesConfirmees   float64          `json:"periodes_magiques_confirmees"`
	SoldeConfirme                float64          `json:"solde_confirme"`
}

// BuildSommaire derives the dashboard summary from the per-champ aggregates.
// Champs without full-time teachers keep a zero average, and the confirmed
// preliminary average only counts champs whose choices were confirmed.
func BuildSommaire(rows []*models.SommaireRow) *Sommaire {
	sommaire := &Sommaire{Champs: make([]*ChampSommaire, 0, len(rows))}

	var confirmeTP int
	var confirmePeriodes float64
	for _, r := range rows {
		champ := &ChampSommaire{
			ChampNo:            r.ChampNo,
			ChampNom:           r.ChampNom,
			EstVerrouille:      r.EstVerrouille,
			EstConfirme:        r.EstConfirme,
			NbEnseignantsTP:    r.NbEnseignantsTP,
			PeriodesChoisiesTP: r.PeriodesChoisiesTP,
			PeriodesMagiques:   r.PeriodesChoisiesTP - PeriodesCible*float64(r.NbEnseignantsTP),
			ChiffreMagique:     FacteurChiffreMagique * float64(r.NbEnseignantsTP),
		}
		if r.NbEnseignantsTP > 0 {
			champ.Moyenne = r.PeriodesChoisiesTP / float64(r.NbEnseignantsTP)
		}
		sommaire.Champs = append(sommaire.Champs, champ)

		sommaire.GrandTotaux.TotalEnseignantsTP += r.NbEnseignantsTP
		sommaire.GrandTotaux.TotalPeriodesChoisiesTP += r.PeriodesChoisiesTP
		sommaire.GrandTotaux.TotalPeriodesMagiques += champ.PeriodesMagiques
		if r.EstConfirme {
			confirmeTP += r.NbEnseignantsTP
			confirmePeriodes += r.PeriodesChoisiesTP
			sommaire.PeriodesMagiquesConfirmees += champ.PeriodesMagiques
		}
	}
	sommaire.GrandTotaux.ChiffreMagique = FacteurChiffreMagique * float64(sommaire.GrandTotaux.TotalEnseignantsTP)
	// Solde final: surplus confirmé rapporté au chiffre magique de l'école.
	sommaire.SoldeConfirme = sommaire.PeriodesMagiquesConfirmees - sommaire.GrandTotaux.ChiffreMagique

	if sommaire.GrandTotaux.TotalEnseignantsTP > 0 {
		sommaire.MoyenneGenerale = sommaire.GrandTotaux.TotalPeriodesChoisiesTP /
			float64(sommaire.GrandTotaux.TotalEnseignantsTP)
	}
	if confirmeTP > 0 {
		sommaire.MoyennePreliminaireConfirmee = confirmePeriodes / float64(confirmeTP)
	}
	return sommaire
}
