package dashboard

import (
	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/routes/annees"
	"github.com/Cloutiere/Gestion-administrative/app/services"

	"github.com/gofiber/fiber/v2"
)

// GetSommaireAPI feeds the live dashboard: per-champ aggregates plus the
// school-wide totals and averages.
func GetSommaireAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	rows, err := database.GetSommaireRows(db, annee.AnneeID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"annee":    annee,
		"sommaire": services.BuildSommaire(rows),
	})
}
