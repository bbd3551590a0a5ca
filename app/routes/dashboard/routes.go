package dashboard

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

func SetupDashboardRoutes(app *fiber.App) {
	// Observers (dashboard_only) share the read surface with admins.
	pages := app.Group("/admin", auth.AuthMiddleware,
		auth.RoleMiddleware(models.RoleAdmin, models.RoleDashboardOnly))
	pages.Get("/sommaire", ShowSommairePage)
	pages.Get("/detail_taches", ShowDetailTachesPage)
	pages.Get("/api/sommaire/donnees", GetSommaireAPI)
	pages.Get("/exporter/taches", ExportTaches)
	pages.Get("/exporter/org_scolaire", ExportOrgScolaire)
	pages.Get("/exporter/periodes_restantes", ExportPeriodesRestantes)

	admin := app.Group("/admin", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	admin.Get("/administration", ShowAdministrationPage)
}

func ShowSommairePage(c *fiber.Ctx) error {
	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err == sql.ErrNoRows {
		return c.Redirect("/admin/administration")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	rows, err := database.GetSommaireRows(db, annee.AnneeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	toutes, err := database.GetAllAnnees(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	return c.Render("sommaire", fiber.Map{
		"Title":       "Sommaire - Gestion administrative",
		"CurrentPage": "sommaire",
		"Annee":       annee,
		"Annees":      toutes,
		"Sommaire":    services.BuildSommaire(rows),
	})
}

func ShowDetailTachesPage(c *fiber.Ctx) error {
	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err == sql.ErrNoRows {
		return c.Redirect("/admin/administration")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	champs, err := database.GetAllChamps(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	type ChampDetail struct {
		Champ       *models.Champ
		Enseignants []fiber.Map
	}

	details := make([]*ChampDetail, 0, len(champs))
	for _, champ := range champs {
		enseignants, err := database.GetEnseignantsParChamp(db, champ.ChampNo, annee.AnneeID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error")
		}
		attributions, err := database.GetAttributionsParChamp(db, champ.ChampNo, annee.AnneeID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Database error")
		}

		detail := &ChampDetail{Champ: champ}
		for _, e := range enseignants {
			detail.Enseignants = append(detail.Enseignants, fiber.Map{
				"enseignant":   e,
				"attributions": attributions[e.EnseignantID],
				"periodes":     services.CalculerPeriodes(attributions[e.EnseignantID]),
			})
		}
		details = append(details, detail)
	}

	return c.Render("detail_taches", fiber.Map{
		"Title":       "Détail des tâches - Gestion administrative",
		"CurrentPage": "detail_taches",
		"Annee":       annee,
		"Champs":      details,
	})
}

func ShowAdministrationPage(c *fiber.Ctx) error {
	db := config.GetDB()

	toutes, err := database.GetAllAnnees(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	champs, err := database.GetAllChamps(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}
	financements, err := database.GetAllFinancements(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	data := fiber.Map{
		"Title":        "Administration - Gestion administrative",
		"CurrentPage":  "administration",
		"Annees":       toutes,
		"Champs":       champs,
		"Financements": financements,
	}

	if annee, err := annees.ActiveAnnee(c, db); err == nil {
		data["Annee"] = annee
	} else if err != sql.ErrNoRows {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	return c.Render("administration", data)
}
