package cours

import (
	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/Cloutiere/Gestion-administrative/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupCoursRoutes(app *fiber.App) {
	admin := app.Group("/admin/api/cours", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	admin.Get("/", GetCoursAPI)
	admin.Post("/", CreateCoursAPI)
	admin.Put("/:codecours", UpdateCoursAPI)
	admin.Delete("/:codecours", DeleteCoursAPI)
	admin.Post("/:codecours/reassigner_champ", ReassignerChampAPI)
	admin.Post("/:codecours/reassigner_financement", ReassignerFinancementAPI)
}
