package users

import (
	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/Cloutiere/Gestion-administrative/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupUsersRoutes(app *fiber.App) {
	admin := app.Group("/admin/api/users", auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	admin.Get("/", GetUsersAPI)
	admin.Post("/", CreateUserAPI)
	admin.Put("/:id/role", UpdateUserRoleAPI)
	admin.Post("/:id/reset_password", ResetPasswordAPI)
	admin.Delete("/:id", DeleteUserAPI)
}
