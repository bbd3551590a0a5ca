package horaire

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/Cloutiere/Gestion-administrative/app/routes/annees"
	"github.com/Cloutiere/Gestion-administrative/app/routes/auth"
	"github.com/Cloutiere/Gestion-administrative/app/services"

	"github.com/gofiber/fiber/v2"
)

func SetupHoraireRoutes(app *fiber.App) {
	admin := app.Group("/admin", auth.AuthMiddleware,
		auth.RoleMiddleware(models.RoleAdmin, models.RoleDashboardOnly))
	admin.Get("/preparation_horaire", ShowPreparationHorairePage)

	api := app.Group("/admin/api/preparation_horaire", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	api.Get("/donnees", GetPreparationDataAPI)
	api.Post("/sauvegarder", SauvegarderAPI)
}

func ShowPreparationHorairePage(c *fiber.Ctx) error {
	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err == sql.ErrNoRows {
		return c.Redirect("/admin/administration")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	data, err := services.GetPreparationHoraireData(db, annee.AnneeID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	return c.Render("preparation_horaire", fiber.Map{
		"Title":       "Préparation de l'horaire - Gestion administrative",
		"CurrentPage": "preparation_horaire",
		"Annee":       annee,
		"Preparation": data,
	})
}
