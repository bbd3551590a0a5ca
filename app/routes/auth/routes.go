package auth

import (
	"strings"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Get("/login", ShowLoginPage)
	auth.Post("/login", LoginAPI)
	auth.Post("/register", RegisterAPI)
	auth.Post("/logout", LogoutAPI)

	// Protected routes
	auth.Use(AuthMiddleware)
	auth.Post("/change-password", ChangePasswordAPI)
}

func ShowLoginPage(c *fiber.Ctx) error {
	// Check if already logged in
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString); err == nil {
			return c.Redirect("/")
		}
	}

	// Registration is only offered while the user table is empty: the
	// first account created becomes the administrator.
	count, err := database.CountUsers(config.GetDB())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Database error")
	}

	return c.Render("auth/login", fiber.Map{
		"Title":             "Connexion - Gestion administrative",
		"AllowRegistration": count == 0,
	}, "")
}

// isAPIRequest tells JSON endpoints apart from rendered pages; the admin
// APIs live under /admin/api/.
func isAPIRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/") || strings.HasPrefix(c.Path(), "/admin/api/")
}

// AuthMiddleware validates the JWT and sets the user context
func AuthMiddleware(c *fiber.Ctx) error {
	// Get JWT token from cookie or Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		if isAPIRequest(c) {
			return c.Status(401).JSON(fiber.Map{"error": "No token found"})
		}
		return c.Redirect("/auth/login")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if isAPIRequest(c) {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}
		return c.Redirect("/auth/login")
	}

	user := &models.Utilisateur{
		ID:              claims.UserID,
		Username:        claims.Username,
		IsAdmin:         claims.Role == string(models.RoleAdmin),
		IsDashboardOnly: claims.Role == string(models.RoleDashboardOnly),
		AllowedChamps:   claims.AllowedChamps,
	}

	c.Locals("user_id", user.ID)
	c.Locals("username", user.Username)
	c.Locals("user_role", claims.Role)
	c.Locals("user", user)

	return c.Next()
}

// RoleMiddleware checks if the user has one of the required roles
func RoleMiddleware(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := models.UserRole(c.Locals("user_role").(string))

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if isAPIRequest(c) {
			return c.Status(403).JSON(fiber.Map{"error": "Accès non autorisé."})
		}

		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Accès interdit - Gestion administrative",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Accès interdit",
			"ErrorMessage": "Vous n'avez pas les droits nécessaires pour consulter cette page.",
			"user":         c.Locals("user"),
		})
	}
}

// CurrentUser pulls the authenticated user back out of the request context.
func CurrentUser(c *fiber.Ctx) *models.Utilisateur {
	return c.Locals("user").(*models.Utilisateur)
}
