package imports

import (
	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/Cloutiere/Gestion-administrative/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupImportsRoutes(app *fiber.App) {
	admin := app.Group("/admin/api/importer", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/cours", ImportCoursAPI)
	admin.Post("/enseignants", ImportEnseignantsAPI)
}
