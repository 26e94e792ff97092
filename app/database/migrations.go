package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema and applies incremental updates. Every
// statement is idempotent so the app can run it on every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS grades (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			code VARCHAR(10) NOT NULL UNIQUE,
			name VARCHAR(100) NOT NULL,
			monthly_fee NUMERIC(10,2) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			full_name VARCHAR(100) NOT NULL,
			grade_id UUID NOT NULL REFERENCES grades(id) ON DELETE CASCADE,
			guardian_phone VARCHAR(20) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			month VARCHAR(10) NOT NULL,
			year INT NOT NULL,
			amount NUMERIC(10,2) NOT NULL,
			is_paid BOOLEAN NOT NULL DEFAULT FALSE,
			paid_at TIMESTAMPTZ,
			UNIQUE (student_id, month, year)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_payments_student_year ON payments (student_id, year)`,
		`CREATE INDEX IF NOT EXISTS idx_students_grade ON students (grade_id)`,

		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(100) NOT NULL,
			first_name VARCHAR(50) NOT NULL,
			last_name VARCHAR(50) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	if err := addIsExemptColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// is_exempt was added after the first deployment, so it is applied as an
// incremental change instead of being folded into the CREATE TABLE.
func addIsExemptColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'students'
				AND column_name = 'is_exempt'
			) THEN
				ALTER TABLE students ADD COLUMN is_exempt BOOLEAN NOT NULL DEFAULT FALSE;
				RAISE NOTICE 'Added is_exempt column to students';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for is_exempt column: %v", err)
	}
	return err
}
