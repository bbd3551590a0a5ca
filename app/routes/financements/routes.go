package financements

import (
	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/Cloutiere/Gestion-administrative/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupFinancementsRoutes(app *fiber.App) {
	admin := app.Group("/admin/api/financements", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	admin.Get("/", GetFinancementsAPI)
	admin.Post("/", CreateFinancementAPI)
	admin.Put("/:code", UpdateFinancementAPI)
	admin.Delete("/:code", DeleteFinancementAPI)
}
