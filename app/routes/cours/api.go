package cours

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/Cloutiere/Gestion-administrative/app/routes/annees"
	"github.com/Cloutiere/Gestion-administrative/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CoursRequest struct {
	CodeCours       string  `json:"codecours" validate:"required"`
	ChampNo         string  `json:"champno" validate:"required"`
	CoursDescriptif string  `json:"coursdescriptif"`
	NbPeriodes      float64 `json:"nbperiodes" validate:"gte=0"`
	NbGroupeInitial int     `json:"nbgroupeinitial" validate:"gte=0"`
	EstCoursAutre   bool    `json:"estcoursautre"`
	FinancementCode *string `json:"financement_code"`
}

func GetCoursAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	cours, err := database.GetAllCoursAvecRestants(db, annee.AnneeID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(fiber.Map{"cours": cours, "annee": annee})
}

func CreateCoursAPI(c *fiber.Ctx) error {
	var req CoursRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Données du cours invalides ou incomplètes."})
	}
	if err := services.ValiderFinancementCours(req.EstCoursAutre, req.FinancementCode); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	cours := &models.Cours{
		CodeCours:       req.CodeCours,
		AnneeID:         annee.AnneeID,
		ChampNo:         req.ChampNo,
		CoursDescriptif: req.CoursDescriptif,
		NbPeriodes:      req.NbPeriodes,
		NbGroupeInitial: req.NbGroupeInitial,
		EstCoursAutre:   req.EstCoursAutre,
		FinancementCode: req.FinancementCode,
	}
	if err := database.CreateCours(db, cours); err != nil {
		if services.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "Ce cours existe déjà pour cette année."})
		}
		if services.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Champ ou financement inconnu."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Cours créé.",
		"cours":   cours,
	})
}

func UpdateCoursAPI(c *fiber.Ctx) error {
	var req CoursRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	req.CodeCours = c.Params("codecours")
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Données du cours invalides ou incomplètes."})
	}
	if err := services.ValiderFinancementCours(req.EstCoursAutre, req.FinancementCode); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	cours := &models.Cours{
		CodeCours:       req.CodeCours,
		AnneeID:         annee.AnneeID,
		ChampNo:         req.ChampNo,
		CoursDescriptif: req.CoursDescriptif,
		NbPeriodes:      req.NbPeriodes,
		NbGroupeInitial: req.NbGroupeInitial,
		EstCoursAutre:   req.EstCoursAutre,
		FinancementCode: req.FinancementCode,
	}
	if err := database.UpdateCours(db, cours); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Cours non trouvé."})
		}
		if services.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Champ ou financement inconnu."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"message": "Cours modifié.",
		"cours":   cours,
	})
}

func DeleteCoursAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	if err := database.DeleteCours(db, c.Params("codecours"), annee.AnneeID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Cours non trouvé."})
		}
		if services.IsForeignKeyViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "Impossible de supprimer ce cours : des attributions y sont rattachées."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"message": "Cours supprimé."})
}

func ReassignerChampAPI(c *fiber.Ctx) error {
	type ReassignRequest struct {
		ChampNo string `json:"champno" validate:"required"`
	}

	var req ReassignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Champ cible manquant."})
	}

	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	if err := database.ReassignCoursChamp(db, c.Params("codecours"), annee.AnneeID, req.ChampNo); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Cours non trouvé."})
		}
		if services.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Champ cible inconnu."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"message": "Cours réassigné."})
}

func ReassignerFinancementAPI(c *fiber.Ctx) error {
	type ReassignRequest struct {
		FinancementCode *string `json:"financement_code"`
	}

	var req ReassignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	cours, err := database.GetCours(db, c.Params("codecours"), annee.AnneeID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Cours non trouvé."})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := services.ValiderFinancementCours(cours.EstCoursAutre, req.FinancementCode); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.ReassignCoursFinancement(db, c.Params("codecours"), annee.AnneeID, req.FinancementCode); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Cours non trouvé."})
		}
		if services.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Financement inconnu."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"message": "Financement du cours mis à jour."})
}
