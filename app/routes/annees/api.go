package annees

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/services"

	"github.com/gofiber/fiber/v2"
)

func GetAnneesAPI(c *fiber.Ctx) error {
	annees, err := database.GetAllAnnees(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"annees": annees})
}

func CreateAnneeAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		Libelle string `json:"libelle" form:"libelle"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.Libelle == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Le libellé de l'année est obligatoire."})
	}

	annee, err := database.CreateAnnee(config.GetDB(), req.Libelle)
	if err != nil {
		if services.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "Cette année scolaire existe déjà."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Année scolaire créée.",
		"annee":   annee,
	})
}

func SetCouranteAPI(c *fiber.Ctx) error {
	type SetCouranteRequest struct {
		AnneeID int `json:"annee_id" form:"annee_id"`
	}

	var req SetCouranteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := database.SetAnneeCourante(config.GetDB(), req.AnneeID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Année scolaire non trouvée."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"message": "Année courante mise à jour."})
}

// ChangerActiveAPI pins a year on the requester's session through a cookie;
// the data itself is untouched.
func ChangerActiveAPI(c *fiber.Ctx) error {
	type ChangerRequest struct {
		AnneeID int `json:"annee_id" form:"annee_id"`
	}

	var req ChangerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	annee, err := database.GetAnneeByID(config.GetDB(), req.AnneeID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Année scolaire non trouvée."})
	}

	c.Cookie(&fiber.Cookie{
		Name:     anneeCookie,
		Value:    strconv.Itoa(annee.AnneeID),
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Année active changée.",
		"annee":   annee,
	})
}
