package auth

import (
	"database/sql"
	"time"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/models"

	"github.com/gofiber/fiber/v2"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	user, err := database.GetUserByUsername(config.GetDB(), req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"error": "Nom d'utilisateur ou mot de passe invalide."})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.PasswordHash) {
		return c.Status(401).JSON(fiber.Map{"error": "Nom d'utilisateur ou mot de passe invalide."})
	}

	token, err := GenerateJWT(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	// Set JWT as HTTP-only cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Connexion réussie.",
		"user": fiber.Map{
			"id":             user.ID,
			"username":       user.Username,
			"role":           user.Role(),
			"allowed_champs": user.AllowedChamps,
		},
	})
}

// RegisterAPI only works while the user table is empty: it bootstraps the
// first administrator account.
func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Username        string `json:"username" form:"username"`
		Password        string `json:"password" form:"password"`
		ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	count, err := database.CountUsers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if count > 0 {
		return c.Status(403).JSON(fiber.Map{"error": "L'inscription n'est plus disponible."})
	}

	if req.Username == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Le nom d'utilisateur est obligatoire."})
	}
	if len(req.Password) < 6 {
		return c.Status(400).JSON(fiber.Map{"error": "Le mot de passe doit contenir au moins 6 caractères."})
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		return c.Status(400).JSON(fiber.Map{"error": "Les mots de passe ne correspondent pas."})
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := &models.Utilisateur{Username: req.Username, PasswordHash: hash, IsAdmin: true}
	if err := database.CreateUser(config.GetDB(), user); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Compte administrateur créé. Vous pouvez maintenant vous connecter.",
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	// Clear JWT cookie
	c.Cookie(&fiber.Cookie{
		Name:     "jwt_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/auth/login")
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	userID := c.Locals("user_id").(string)
	user, err := database.GetUserByID(config.GetDB(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	if !CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return c.Status(400).JSON(fiber.Map{"error": "Le mot de passe actuel est incorrect."})
	}
	if len(req.NewPassword) < 6 {
		return c.Status(400).JSON(fiber.Map{"error": "Le mot de passe doit contenir au moins 6 caractères."})
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}
	if err := database.UpdateUserPassword(config.GetDB(), userID, hash); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"message": "Mot de passe modifié."})
}
