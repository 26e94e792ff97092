package main

import (
	"log"

	"student-management/app/config"
	"student-management/app/database"
)

func main() {
	log.Println("Seeding sample data...")

	config.Load()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if err := database.SeedData(db, config.AppConfig.AcademicYear); err != nil {
		log.Fatal("Failed to seed data:", err)
	}

	log.Println("Seeding completed successfully!")
}
