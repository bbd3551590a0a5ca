package main

import (
	"log"

	"github.com/Cloutiere/Gestion-administrative/app/config"
	"github.com/Cloutiere/Gestion-administrative/app/database"
)

// Runs the schema migrations without starting the web server, for
// provisioning a fresh database.
func main() {
	log.Println("Starting standalone migration...")

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	log.Println("Migration completed successfully!")
}
