package financements

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/Cloutiere/Gestion-administrative/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetFinancementsAPI(c *fiber.Ctx) error {
	financements, err := database.GetAllFinancements(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"financements": financements})
}

func CreateFinancementAPI(c *fiber.Ctx) error {
	type FinancementRequest struct {
		Code    string `json:"code"`
		Libelle string `json:"libelle"`
	}

	var req FinancementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Code == "" || req.Libelle == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Le code et le libellé sont obligatoires."})
	}

	financement := &models.TypeFinancement{Code: req.Code, Libelle: req.Libelle}
	if err := database.CreateFinancement(config.GetDB(), financement); err != nil {
		if services.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "Ce type de financement existe déjà."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":     "Type de financement créé.",
		"financement": financement,
	})
}

// UpdateFinancementAPI only touches the libelle: the code identifies the
// financement in every cours row and never changes.
func UpdateFinancementAPI(c *fiber.Ctx) error {
	type FinancementRequest struct {
		Libelle string `json:"libelle"`
	}

	var req FinancementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Libelle == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Le libellé est obligatoire."})
	}

	financement := &models.TypeFinancement{Code: c.Params("code"), Libelle: req.Libelle}
	if err := database.UpdateFinancement(config.GetDB(), financement); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Type de financement non trouvé."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"message":     "Type de financement modifié.",
		"financement": financement,
	})
}

func DeleteFinancementAPI(c *fiber.Ctx) error {
	if err := database.DeleteFinancement(config.GetDB(), c.Params("code")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Type de financement non trouvé."})
		}
		if services.IsForeignKeyViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "Impossible de supprimer : des cours utilisent ce financement."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"message": "Type de financement supprimé."})
}
