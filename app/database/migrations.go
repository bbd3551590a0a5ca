package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	migrations := []func(*sql.DB) error{
		createAnneesScolairesTable,
		createChampsTable,
		createTypesFinancementTable,
		createChampAnneeStatutsTable,
		createCoursTable,
		createEnseignantsTable,
		createAttributionsCoursTable,
		createUtilisateursTable,
		createUserChampAccessTable,
		createPreparationHoraireTable,
		addFinancementCodeColumn,
		addCoursAutreSansFinancementCheck,
	}
	for _, m := range migrations {
		if err := m(db); err != nil {
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createAnneesScolairesTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS annees_scolaires (
			annee_id SERIAL PRIMARY KEY,
			libelle TEXT NOT NULL UNIQUE,
			est_courante BOOLEAN NOT NULL DEFAULT FALSE
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create annees_scolaires table: %v", err)
	}
	return err
}

func createChampsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS champs (
			champno TEXT PRIMARY KEY,
			champnom TEXT NOT NULL
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create champs table: %v", err)
	}
	return err
}

func createTypesFinancementTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS types_financement (
			code TEXT PRIMARY KEY,
			libelle TEXT NOT NULL
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create types_financement table: %v", err)
	}
	return err
}

func createChampAnneeStatutsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS champ_annee_statuts (
			champ_no TEXT NOT NULL REFERENCES champs(champno) ON DELETE CASCADE,
			annee_id INTEGER NOT NULL REFERENCES annees_scolaires(annee_id) ON DELETE CASCADE,
			est_verrouille BOOLEAN NOT NULL DEFAULT FALSE,
			est_confirme BOOLEAN NOT NULL DEFAULT FALSE,
			PRIMARY KEY (champ_no, annee_id)
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create champ_annee_statuts table: %v", err)
	}
	return err
}

func createCoursTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS cours (
			codecours TEXT NOT NULL,
			annee_id INTEGER NOT NULL REFERENCES annees_scolaires(annee_id) ON DELETE CASCADE,
			champno TEXT NOT NULL REFERENCES champs(champno),
			coursdescriptif TEXT NOT NULL DEFAULT '',
			nbperiodes NUMERIC(6,2) NOT NULL DEFAULT 0,
			nbgroupeinitial INTEGER NOT NULL DEFAULT 0,
			estcoursautre BOOLEAN NOT NULL DEFAULT FALSE,
			PRIMARY KEY (codecours, annee_id)
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create cours table: %v", err)
	}
	return err
}

func createEnseignantsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS enseignants (
			enseignantid SERIAL PRIMARY KEY,
			annee_id INTEGER NOT NULL REFERENCES annees_scolaires(annee_id) ON DELETE CASCADE,
			champno TEXT NOT NULL REFERENCES champs(champno),
			nom TEXT NOT NULL,
			prenom TEXT NOT NULL DEFAULT '',
			nomcomplet TEXT NOT NULL,
			esttempsplein BOOLEAN NOT NULL DEFAULT TRUE,
			estfictif BOOLEAN NOT NULL DEFAULT FALSE,
			UNIQUE (nomcomplet, annee_id)
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create enseignants table: %v", err)
	}
	return err
}

func createAttributionsCoursTable(db *sql.DB) error {
	// Deleting a cours with attributions must fail, so the cours foreign key
	// stays NO ACTION while teacher deletion cascades.
	query := `
		CREATE TABLE IF NOT EXISTS attributions_cours (
			attributionid SERIAL PRIMARY KEY,
			enseignantid INTEGER NOT NULL REFERENCES enseignants(enseignantid) ON DELETE CASCADE,
			codecours TEXT NOT NULL,
			annee_id_cours INTEGER NOT NULL,
			annee_id INTEGER NOT NULL REFERENCES annees_scolaires(annee_id) ON DELETE CASCADE,
			nbgroupespris INTEGER NOT NULL CHECK (nbgroupespris > 0),
			FOREIGN KEY (codecours, annee_id_cours) REFERENCES cours(codecours, annee_id),
			UNIQUE (enseignantid, codecours, annee_id_cours)
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create attributions_cours table: %v", err)
	}
	return err
}

func createUtilisateursTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS utilisateurs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			is_dashboard_only BOOLEAN NOT NULL DEFAULT FALSE
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create utilisateurs table: %v", err)
	}
	return err
}

func createUserChampAccessTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS user_champ_access (
			utilisateur_id UUID NOT NULL REFERENCES utilisateurs(id) ON DELETE CASCADE,
			champ_no TEXT NOT NULL REFERENCES champs(champno) ON DELETE CASCADE,
			PRIMARY KEY (utilisateur_id, champ_no)
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create user_champ_access table: %v", err)
	}
	return err
}

func createPreparationHoraireTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS preparation_horaire (
			id SERIAL PRIMARY KEY,
			annee_id INTEGER NOT NULL REFERENCES annees_scolaires(annee_id) ON DELETE CASCADE,
			secondaire_level INTEGER NOT NULL CHECK (secondaire_level BETWEEN 1 AND 5),
			codecours TEXT NOT NULL,
			annee_id_cours INTEGER NOT NULL,
			enseignant_id INTEGER NOT NULL REFERENCES enseignants(enseignantid) ON DELETE CASCADE,
			colonne_assignee TEXT NOT NULL,
			FOREIGN KEY (codecours, annee_id_cours) REFERENCES cours(codecours, annee_id) ON DELETE CASCADE
		);
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to create preparation_horaire table: %v", err)
	}
	return err
}

func addFinancementCodeColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'cours'
				AND column_name = 'financement_code'
			) THEN
				ALTER TABLE cours ADD COLUMN financement_code TEXT REFERENCES types_financement(code);
				RAISE NOTICE 'Added financement_code column to cours';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for financement_code column: %v", err)
		return err
	}
	return nil
}

func addCoursAutreSansFinancementCheck(db *sql.DB) error {
	// Les "autres tâches" ne portent jamais de financement.
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM pg_constraint
				WHERE conname = 'cours_autre_sans_financement'
			) THEN
				ALTER TABLE cours ADD CONSTRAINT cours_autre_sans_financement
					CHECK (estcoursautre = FALSE OR financement_code IS NULL);
				RAISE NOTICE 'Added cours_autre_sans_financement constraint';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for cours_autre_sans_financement constraint: %v", err)
		return err
	}
	return nil
}
