package enseignants

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/Cloutiere/Gestion-administrative/app/routes/annees"
	"github.com/Cloutiere/Gestion-administrative/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type EnseignantRequest struct {
	ChampNo       string `json:"champno" validate:"required"`
	Nom           string `json:"nom" validate:"required"`
	Prenom        string `json:"prenom"`
	EstTempsPlein bool   `json:"esttempsplein"`
}

func GetEnseignantsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	enseignants, err := database.GetAllEnseignants(db, annee.AnneeID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"enseignants": enseignants, "annee": annee})
}

func CreateEnseignantAPI(c *fiber.Ctx) error {
	var req EnseignantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Données de l'enseignant invalides ou incomplètes."})
	}

	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	enseignant := &models.Enseignant{
		AnneeID:       annee.AnneeID,
		ChampNo:       req.ChampNo,
		Nom:           req.Nom,
		Prenom:        req.Prenom,
		NomComplet:    strings.TrimSpace(req.Prenom + " " + req.Nom),
		EstTempsPlein: req.EstTempsPlein,
	}
	if err := database.CreateEnseignant(db, enseignant); err != nil {
		if services.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "Un enseignant portant ce nom existe déjà pour cette année."})
		}
		if services.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Champ inconnu."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":    "Enseignant créé.",
		"enseignant": enseignant,
	})
}

func UpdateEnseignantAPI(c *fiber.Ctx) error {
	enseignantID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide."})
	}

	var req EnseignantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Données de l'enseignant invalides ou incomplètes."})
	}

	db := config.GetDB()
	existant, err := database.GetEnseignantByID(db, enseignantID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Enseignant non trouvé."})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	// Fictif placeholders are managed from the champ page, never edited here.
	if existant.EstFictif {
		return c.Status(403).JSON(fiber.Map{"error": "Les tâches restantes ne sont pas modifiables."})
	}

	enseignant := &models.Enseignant{
		EnseignantID:  enseignantID,
		ChampNo:       req.ChampNo,
		Nom:           req.Nom,
		Prenom:        req.Prenom,
		NomComplet:    strings.TrimSpace(req.Prenom + " " + req.Nom),
		EstTempsPlein: req.EstTempsPlein,
	}
	if err := database.UpdateEnseignant(db, enseignant); err != nil {
		if services.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "Un enseignant portant ce nom existe déjà pour cette année."})
		}
		if services.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Champ inconnu."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"message":    "Enseignant modifié.",
		"enseignant": enseignant,
	})
}

func DeleteEnseignantAPI(c *fiber.Ctx) error {
	enseignantID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide."})
	}

	db := config.GetDB()
	existant, err := database.GetEnseignantByID(db, enseignantID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Enseignant non trouvé."})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if existant.EstFictif {
		return c.Status(403).JSON(fiber.Map{"error": "Les tâches restantes se suppriment depuis la page du champ."})
	}

	if err := database.DeleteEnseignant(db, enseignantID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"message": "Enseignant supprimé."})
}
