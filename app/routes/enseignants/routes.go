package enseignants

import (
	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/Cloutiere/Gestion-administrative/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupEnseignantsRoutes(app *fiber.App) {
	admin := app.Group("/admin/api/enseignants", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	admin.Get("/", GetEnseignantsAPI)
	admin.Post("/", CreateEnseignantAPI)
	admin.Put("/:id", UpdateEnseignantAPI)
	admin.Delete("/:id", DeleteEnseignantAPI)
}
