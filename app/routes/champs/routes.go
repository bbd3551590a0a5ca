package champs

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/Cloutiere/Gestion-administrative/app/routes/annees"
	"github.com/Cloutiere/Gestion-administrative/app/routes/auth"
	"github.com/Cloutiere/Gestion-administrative/app/services"

	"github.com/gofiber/fiber/v2"
)

func SetupChampsRoutes(app *fiber.App) {
	app.Get("/champ/:champno", auth.AuthMiddleware, ShowChampPage)

	api := app.Group("/api", auth.AuthMiddleware)
	api.Post("/attributions/ajouter", AjouterAttributionAPI)
	api.Post("/attributions/supprimer", SupprimerAttributionAPI)
	api.Post("/champs/:champno/taches_restantes/creer", CreerTacheRestanteAPI)
	api.Post("/enseignants/:id/supprimer", SupprimerEnseignantAPI)

	admin := app.Group("/admin/api/champs", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/:champno/basculer_verrou", BasculerVerrouAPI)
	admin.Post("/:champno/basculer_confirmation", BasculerConfirmationAPI)
}

// ShowIndexPage routes each user to their landing place: the dashboard for
// admins and observers, straight to the champ page when the user only has
// one champ, a champ list otherwise.
func ShowIndexPage(c *fiber.Ctx) error {
	user := auth.CurrentUser(c)
	if user.IsAdmin || user.IsDashboardOnly {
		return c.Redirect("/admin/sommaire")
	}
	if len(user.AllowedChamps) == 1 {
		return c.Redirect("/champ/" + user.AllowedChamps[0])
	}

	db := config.GetDB()
	champs, err := database.GetAllChamps(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	accessibles := make([]*models.Champ, 0, len(user.AllowedChamps))
	for _, champ := range champs {
		if user.CanAccessChamp(champ.ChampNo) {
			accessibles = append(accessibles, champ)
		}
	}

	return c.Render("index", fiber.Map{
		"Title":       "Accueil - Gestion administrative",
		"CurrentPage": "index",
		"Champs":      accessibles,
	})
}

// EnseignantAvecCharge pairs a teacher with its attributions and period
// breakdown for the champ page.
type EnseignantAvecCharge struct {
	Enseignant   *models.Enseignant          `json:"enseignant"`
	Attributions []*models.AttributionDetail `json:"attributions"`
	Periodes     services.PeriodesBreakdown  `json:"periodes"`
}

func ShowChampPage(c *fiber.Ctx) error {
	db := config.GetDB()
	user := auth.CurrentUser(c)
	champNo := c.Params("champno")

	if !user.IsAdmin && !user.CanAccessChamp(champNo) {
		return fiber.NewError(fiber.StatusForbidden, "Vous n'avez pas accès à ce champ.")
	}

	champ, err := database.GetChampByNo(db, champNo)
	if err == sql.ErrNoRows {
		return fiber.NewError(fiber.StatusNotFound, "Champ non trouvé.")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	annee, err := annees.ActiveAnnee(c, db)
	if err == sql.ErrNoRows {
		if user.IsAdmin {
			return c.Redirect("/admin/administration")
		}
		return fiber.NewError(fiber.StatusNotFound, "Aucune année scolaire active.")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	statut, err := database.GetChampStatut(db, champNo, annee.AnneeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	enseignants, err := database.GetEnseignantsParChamp(db, champNo, annee.AnneeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	attributions, err := database.GetAttributionsParChamp(db, champNo, annee.AnneeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	charges := make([]*EnseignantAvecCharge, 0, len(enseignants))
	var totauxTP []float64
	for _, e := range enseignants {
		charge := &EnseignantAvecCharge{
			Enseignant:   e,
			Attributions: attributions[e.EnseignantID],
			Periodes:     services.CalculerPeriodes(attributions[e.EnseignantID]),
		}
		charges = append(charges, charge)
		if e.EstTempsPlein && !e.EstFictif {
			totauxTP = append(totauxTP, charge.Periodes.TotalPeriodes)
		}
	}

	cours, err := database.GetCoursParChamp(db, champNo, annee.AnneeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	return c.Render("champ", fiber.Map{
		"Title":       champ.ChampNo + " - " + champ.ChampNom,
		"CurrentPage": "champ",
		"Champ":       champ,
		"Annee":       annee,
		"Statut":      statut,
		"Enseignants": charges,
		"Cours":       cours,
		"Moyenne":     services.MoyenneChamp(totauxTP),
	})
}
