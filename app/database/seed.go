package database

import (
	"database/sql"
	"log"

	"student-management/app/models"
)

// SeedData fills the database with the six grades and a handful of sample
// students. Grades are upserted by code; students are only created when a
// student with the same name does not exist yet, so the seeder can run
// repeatedly.
func SeedData(db *sql.DB, year int) error {
	log.Println("Creating grades...")

	for _, code := range models.GradeCodes {
		query := `INSERT INTO grades (code, name, monthly_fee)
				  VALUES ($1, $2, 500.00)
				  ON CONFLICT (code) DO NOTHING`
		if _, err := db.Exec(query, code, code.DisplayName()); err != nil {
			return err
		}
	}

	log.Println("Creating students...")

	samples := []models.StudentInput{
		{FullName: "Ahmed Mohamed Ali", GradeCode: "grade1", GuardianPhone: "01234567890"},
		{FullName: "Fatma Ahmed Hassan", GradeCode: "grade2", GuardianPhone: "01098765432"},
		{FullName: "Mohamed Abdallah Sayed", GradeCode: "grade3", GuardianPhone: "01123456789"},
		{FullName: "Mariam Hossam Eldin", GradeCode: "grade4", GuardianPhone: "01187654321"},
		{FullName: "Youssef Khaled Mohamed", GradeCode: "grade5", GuardianPhone: "01156789012"},
		{FullName: "Noura Samy Ahmed", GradeCode: "grade6", GuardianPhone: "01165432109"},
	}

	for i := range samples {
		input := &samples[i]

		var exists bool
		err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM students WHERE full_name = $1)`, input.FullName).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		grade, err := GetGradeByCode(db, models.GradeCode(input.GradeCode))
		if err != nil {
			return err
		}

		student, err := CreateStudent(db, input, grade, year)
		if err != nil {
			return err
		}
		log.Printf("Created student: %s", student.FullName)
	}

	return nil
}
