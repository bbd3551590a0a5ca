package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB *sql.DB
}

var AppConfig *Config

// InitDB connects to PostgreSQL using DATABASE_URL when set, otherwise the
// individual PG* variables, and wires the shared connection pool.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	psqlInfo := os.Getenv("DATABASE_URL")
	if psqlInfo == "" {
		host := envOr("PGHOST", "localhost")
		port := envOr("PGPORT", "5432")
		user := envOr("PGUSER", "postgres")
		password := os.Getenv("PGPASSWORD")
		dbname := envOr("PGDATABASE", "gestion_administrative")

		psqlInfo = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable connect_timeout=60",
			host, port, user, password, dbname)
		log.Printf("Connecting to database %s at %s:%s", dbname, host, port)
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{DB: db}
	log.Println("Database connected successfully")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
