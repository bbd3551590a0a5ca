package annees

import (
	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/Cloutiere/Gestion-administrative/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAnneesRoutes(app *fiber.App) {
	// Any authenticated user can list years and pin one on their session.
	api := app.Group("/api/annees", auth.AuthMiddleware)
	api.Get("/", GetAnneesAPI)
	api.Post("/changer_active", ChangerActiveAPI)

	// Creating years and moving the courante flag is administration.
	admin := app.Group("/admin/api/annees", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/creer", CreateAnneeAPI)
	admin.Post("/set_courante", SetCouranteAPI)
}
