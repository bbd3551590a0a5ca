package horaire

import (
	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/Cloutiere/Gestion-administrative/app/routes/annees"
	"github.com/Cloutiere/Gestion-administrative/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetPreparationDataAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	data, err := services.GetPreparationHoraireData(db, annee.AnneeID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"annee": annee, "preparation": data})
}

func SauvegarderAPI(c *fiber.Ctx) error {
	type SauvegardeRequest struct {
		Assignments []*models.PreparationHoraire `json:"assignments"`
	}

	var req SauvegardeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	// The grid only references cours of the active year.
	for _, cell := range req.Assignments {
		if cell.AnneeIDCours == 0 {
			cell.AnneeIDCours = annee.AnneeID
		}
	}

	if err := services.SauvegarderPreparationHoraire(db, annee.AnneeID, req.Assignments); err != nil {
		status := services.HTTPStatus(err)
		if status == 500 {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Préparation de l'horaire sauvegardée."})
}
