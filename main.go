package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/routes/annees"
	"github.com/Cloutiere/Gestion-administrative/app/routes/auth"
	"github.com/Cloutiere/Gestion-administrative/app/routes/champs"
	"github.com/Cloutiere/Gestion-administrative/app/routes/cours"
	"github.com/Cloutiere/Gestion-administrative/app/routes/dashboard"
	"github.com/Cloutiere/Gestion-administrative/app/routes/enseignants"
	"github.com/Cloutiere/Gestion-administrative/app/routes/financements"
	"github.com/Cloutiere/Gestion-administrative/app/routes/horaire"
	"github.com/Cloutiere/Gestion-administrative/app/routes/imports"
	"github.com/Cloutiere/Gestion-administrative/app/routes/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// API requests get JSON, web requests get rendered error pages
	path := c.Path()
	if (len(path) >= 5 && path[:5] == "/api/") ||
		(len(path) >= 11 && path[:11] == "/admin/api/") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page non trouvée - Gestion administrative",
			"CurrentPage": "",
		})
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Accès interdit - Gestion administrative",
			"CurrentPage":  "",
			"ErrorCode":    "403",
			"ErrorTitle":   "Accès interdit",
			"ErrorMessage": "Vous n'avez pas les droits nécessaires pour consulter cette page.",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Non autorisé - Gestion administrative",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Non autorisé",
			"ErrorMessage": "Veuillez vous connecter pour accéder à cette page.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Erreur serveur - Gestion administrative",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Erreur interne",
			"ErrorMessage": "Une erreur technique est survenue. Veuillez réessayer plus tard.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Erreur - Gestion administrative",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "Une erreur est survenue",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Landing page routes each role to its home
	app.Get("/", auth.AuthMiddleware, champs.ShowIndexPage)

	auth.SetupAuthRoutes(app)
	annees.SetupAnneesRoutes(app)
	champs.SetupChampsRoutes(app)
	cours.SetupCoursRoutes(app)
	enseignants.SetupEnseignantsRoutes(app)
	financements.SetupFinancementsRoutes(app)
	users.SetupUsersRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	horaire.SetupHoraireRoutes(app)
	imports.SetupImportsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page non trouvée")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
