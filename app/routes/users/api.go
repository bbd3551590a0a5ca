package users

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/Cloutiere/Gestion-administrative/app/routes/auth"
	"github.com/Cloutiere/Gestion-administrative/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type UserRequest struct {
	Username      string   `json:"username" validate:"required"`
	Password      string   `json:"password" validate:"required,min=6"`
	Role          string   `json:"role" validate:"required,oneof=admin dashboard_only specific_champs"`
	AllowedChamps []string `json:"allowed_champs"`
}

func GetUsersAPI(c *fiber.Ctx) error {
	users, err := database.GetAllUsers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	payload := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		payload = append(payload, fiber.Map{
			"id":             user.ID,
			"username":       user.Username,
			"role":           user.Role(),
			"allowed_champs": user.AllowedChamps,
		})
	}
	return c.JSON(fiber.Map{"users": payload})
}

func CreateUserAPI(c *fiber.Ctx) error {
	var req UserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Données de l'utilisateur invalides ou incomplètes."})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	db := config.GetDB()
	user := &models.Utilisateur{
		Username:        req.Username,
		PasswordHash:    hash,
		IsAdmin:         req.Role == string(models.RoleAdmin),
		IsDashboardOnly: req.Role == string(models.RoleDashboardOnly),
	}
	if err := database.CreateUser(db, user); err != nil {
		if services.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "Ce nom d'utilisateur est déjà pris."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if req.Role == string(models.RoleSpecificChamps) && len(req.AllowedChamps) > 0 {
		if err := database.UpdateUserRole(db, user.ID, user.IsAdmin, user.IsDashboardOnly, req.AllowedChamps); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		user.AllowedChamps = req.AllowedChamps
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Utilisateur créé.",
		"user": fiber.Map{
			"id":             user.ID,
			"username":       user.Username,
			"role":           user.Role(),
			"allowed_champs": user.AllowedChamps,
		},
	})
}

func UpdateUserRoleAPI(c *fiber.Ctx) error {
	type RoleRequest struct {
		Role          string   `json:"role" validate:"required,oneof=admin dashboard_only specific_champs"`
		AllowedChamps []string `json:"allowed_champs"`
	}

	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Rôle invalide."})
	}

	db := config.GetDB()
	userID := c.Params("id")
	user, err := database.GetUserByID(db, userID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Utilisateur non trouvé."})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	// Demoting the last administrator would lock everyone out.
	if user.IsAdmin && req.Role != string(models.RoleAdmin) {
		admins, err := database.CountAdmins(db)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if admins <= 1 {
			return c.Status(409).JSON(fiber.Map{"error": "Impossible de retirer le dernier administrateur."})
		}
	}

	champs := req.AllowedChamps
	if req.Role != string(models.RoleSpecificChamps) {
		champs = nil
	}
	if err := database.UpdateUserRole(db, userID,
		req.Role == string(models.RoleAdmin),
		req.Role == string(models.RoleDashboardOnly), champs); err != nil {
		if services.IsForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{"error": "Un des champs accordés est inconnu."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"message": "Rôle mis à jour."})
}

func ResetPasswordAPI(c *fiber.Ctx) error {
	type ResetRequest struct {
		NewPassword string `json:"new_password" validate:"required,min=6"`
	}

	var req ResetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Le mot de passe doit contenir au moins 6 caractères."})
	}

	db := config.GetDB()
	userID := c.Params("id")
	if _, err := database.GetUserByID(db, userID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Utilisateur non trouvé."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}
	if err := database.UpdateUserPassword(db, userID, hash); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"message": "Mot de passe réinitialisé."})
}

func DeleteUserAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	userID := c.Params("id")

	if userID == c.Locals("user_id").(string) {
		return c.Status(409).JSON(fiber.Map{"error": "Vous ne pouvez pas supprimer votre propre compte."})
	}

	user, err := database.GetUserByID(db, userID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Utilisateur non trouvé."})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if user.IsAdmin {
		admins, err := database.CountAdmins(db)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}
		if admins <= 1 {
			return c.Status(409).JSON(fiber.Map{"error": "Impossible de supprimer le dernier administrateur."})
		}
	}

	if err := database.DeleteUser(db, userID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{"message": "Utilisateur supprimé."})
}
