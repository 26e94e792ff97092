package dashboard

import (
	"fmt"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/routes/students"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	app.Get("/", DashboardPage)

	// API routes
	app.Get("/api/dashboard-stats", GetDashboardStatsAPI)
	app.Get("/api/monthly-revenue", GetMonthlyRevenueAPI)
}

// DashboardPage renders the statistics dashboard, optionally restricted to a
// grade selection.
func DashboardPage(c *fiber.Ctx) error {
	selectedGrades := students.ParseGradesQuery(c)
	year := students.CycleYear(c)
	db := config.GetDB()

	stats, err := dashboardStats(selectedGrades, year)
	if err != nil {
		return fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	gradeStats, err := database.GradeStudentCounts(db, selectedGrades)
	if err != nil {
		return fmt.Errorf("failed to load grade breakdown: %w", err)
	}

	grades, err := database.GetAllGrades(db)
	if err != nil {
		return fmt.Errorf("failed to load grades: %w", err)
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":          "Dashboard",
		"CurrentPage":    "dashboard",
		"SiteHeader":     config.AppConfig.SiteHeader,
		"Stats":          stats,
		"GradeStats":     gradeStats,
		"Grades":         grades,
		"SelectedGrades": selectedGrades,
		"Year":           year,
		"user":           c.Locals("user"),
	})
}
