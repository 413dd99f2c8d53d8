package main

import (
	"log"
	"os"

	"swimtrack-be/internal/model"
	"swimtrack-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn, true)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: extensions AutoMigrate cannot create
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate in dependency order so foreign keys resolve
	log.Println("Step 2: Running AutoMigrate for 7 Tables...")

	models := []interface{}{
		&model.Team{},
		&model.Season{},
		&model.Meet{},
		&model.Event{},
		&model.Person{},
		&model.Athlete{},
		&model.Result{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: constraints and indexes gorm tags cannot express
	log.Println("Step 3: Creating Constraints and Indexes...")

	postMigrationSQL := []string{
		`DO $$ BEGIN
		   ALTER TABLE teams ADD CONSTRAINT chk_teams_season_count_non_negative CHECK (season_count >= 0);
		 EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,

		`CREATE UNIQUE INDEX IF NOT EXISTS idx_athletes_person_season
		 ON athletes (person_id, season_id) WHERE deleted_at IS NULL;`,

		`CREATE INDEX IF NOT EXISTS idx_results_event_time
		 ON results (event_id, time_hundredths) WHERE deleted_at IS NULL;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
