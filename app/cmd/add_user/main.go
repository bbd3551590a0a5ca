package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
	"github.com/Cloutiere/Gestion-administrative/app/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "nom d'utilisateur du compte à créer")
	password := flag.String("password", "", "mot de passe du compte")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Println("Usage: add_user -username <nom> -password <mot de passe>")
		os.Exit(1)
	}
	if len(*password) < 6 {
		fmt.Println("Le mot de passe doit contenir au moins 6 caractères")
		os.Exit(1)
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 14)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	user := &models.Utilisateur{
		Username:     *username,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Admin user created successfully: %s\n", user.Username)
}
