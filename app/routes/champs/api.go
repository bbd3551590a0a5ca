package champs

import (
	"database/sql"
	"strconv"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/routes/annees"
	"github.com/Cloutiere/Gestion-administrative/app/routes/auth"
	"github.com/Cloutiere/Gestion-administrative/app/services"

	"github.com/gofiber/fiber/v2"
)

func serviceError(c *fiber.Ctx, err error) error {
	status := services.HTTPStatus(err)
	if status == 500 {
		return c.Status(500).JSON(fiber.Map{"error": "Une erreur interne est survenue."})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// checkChampAccess guards ledger mutations: admins pass, observers and
// users without the champ never do.
func checkChampAccess(c *fiber.Ctx, champNo string) error {
	user := auth.CurrentUser(c)
	if !user.CanAccessChamp(champNo) {
		return c.Status(403).JSON(fiber.Map{"error": "Vous n'avez pas accès à ce champ."})
	}
	return nil
}

func AjouterAttributionAPI(c *fiber.Ctx) error {
	type AjoutRequest struct {
		EnseignantID int    `json:"enseignant_id"`
		CodeCours    string `json:"code_cours"`
	}

	var req AjoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	enseignant, err := database.GetEnseignantByID(db, req.EnseignantID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Enseignant non trouvé."})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := checkChampAccess(c, enseignant.ChampNo); err != nil {
		return err
	}

	result, err := services.AjouterAttribution(db, req.EnseignantID, req.CodeCours, annee.AnneeID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Attribution ajoutée.",
		"result":  result,
	})
}

func SupprimerAttributionAPI(c *fiber.Ctx) error {
	type SuppressionRequest struct {
		EnseignantID int    `json:"enseignant_id"`
		CodeCours    string `json:"code_cours"`
	}

	var req SuppressionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	enseignant, err := database.GetEnseignantByID(db, req.EnseignantID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Enseignant non trouvé."})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := checkChampAccess(c, enseignant.ChampNo); err != nil {
		return err
	}

	result, err := services.SupprimerAttribution(db, req.EnseignantID, req.CodeCours, annee.AnneeID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Attribution retirée.",
		"result":  result,
	})
}

func CreerTacheRestanteAPI(c *fiber.Ctx) error {
	champNo := c.Params("champno")
	if err := checkChampAccess(c, champNo); err != nil {
		return err
	}

	db := config.GetDB()
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	enseignant, err := services.CreerTacheRestante(db, champNo, annee.AnneeID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":    true,
		"message":    "Tâche restante créée.",
		"enseignant": enseignant,
	})
}

func SupprimerEnseignantAPI(c *fiber.Ctx) error {
	enseignantID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide."})
	}

	db := config.GetDB()
	enseignant, err := database.GetEnseignantByID(db, enseignantID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Enseignant non trouvé."})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if err := checkChampAccess(c, enseignant.ChampNo); err != nil {
		return err
	}

	liberes, err := services.SupprimerTacheRestante(db, enseignantID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":               true,
		"message":               "Tâche restante supprimée.",
		"cours_liberes_details": liberes,
	})
}

func BasculerVerrouAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	champNo := c.Params("champno")

	if _, err := database.GetChampByNo(db, champNo); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Champ non trouvé."})
	}
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	verrouille, err := database.ToggleChampVerrou(db, champNo, annee.AnneeID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"champ_no":       champNo,
		"est_verrouille": verrouille,
	})
}

func BasculerConfirmationAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	champNo := c.Params("champno")

	if _, err := database.GetChampByNo(db, champNo); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Champ non trouvé."})
	}
	annee, err := annees.ActiveAnnee(c, db)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Aucune année scolaire active."})
	}

	confirme, err := database.ToggleChampConfirmation(db, champNo, annee.AnneeID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"champ_no":     champNo,
		"est_confirme": confirme,
	})
}
