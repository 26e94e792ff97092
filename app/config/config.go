package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Config holds the process-wide settings. Site identity values are static
// configuration, loaded once at startup.
type Config struct {
	DB           *sql.DB
	Port         string
	JWTSecret    string
	AcademicYear int
	SiteTitle    string
	SiteHeader   string
}

var AppConfig *Config

// Load reads the environment (and an optional .env file), opens the database
// pool and fills AppConfig. It exits on a missing or unreachable database.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := getEnv("DB_HOST", "localhost")
		port := getEnv("DB_PORT", "5432")
		user := getEnv("DB_USER", "postgres")
		password := os.Getenv("DB_PASSWORD")
		dbname := getEnv("DB_NAME", "student_management")

		dsn = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable", host, port, user, dbname)
		if password != "" {
			dsn += " password=" + password
		}
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection:", err)
	}

	AppConfig = &Config{
		DB:           db,
		Port:         getEnv("PORT", "8000"),
		JWTSecret:    getEnv("JWT_SECRET", "student-management-secret-key"),
		AcademicYear: getEnvInt("ACADEMIC_YEAR", 2025),
		SiteTitle:    getEnv("SITE_TITLE", "Student Management"),
		SiteHeader:   getEnv("SITE_HEADER", "Student Management System - Mr. Mohamed Ali"),
	}
	log.Println("Database connected successfully")
}

// GetDB returns the shared connection pool.
func GetDB() *sql.DB {
	return AppConfig.DB
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Invalid value for %s: %q, using %d", key, v, fallback)
	}
	return fallback
}
