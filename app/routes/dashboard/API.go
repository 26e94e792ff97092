package dashboard

import (
	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/models"
	"student-management/app/routes/students"

	"github.com/gofiber/fiber/v2"
)

// dashboardStats aggregates the headline numbers over existing payment rows
// for the selected grades.
func dashboardStats(gradeCodes []string, year int) (*models.DashboardStats, error) {
	db := config.GetDB()

	totalStudents, err := database.CountStudents(db, gradeCodes)
	if err != nil {
		return nil, err
	}

	totalGrades, err := database.CountGrades(db)
	if err != nil {
		return nil, err
	}

	totalPaid, totalPending, err := database.DashboardTotals(db, gradeCodes, year)
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalStudents: totalStudents,
		TotalGrades:   totalGrades,
		TotalPaid:     totalPaid,
		TotalPending:  totalPending,
	}, nil
}

// GetDashboardStatsAPI returns updated dashboard statistics as JSON.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	stats, err := dashboardStats(students.ParseGradesQuery(c), students.CycleYear(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

// GetMonthlyRevenueAPI returns one month's collected amount and distinct
// paying-student count, grouped by grade code.
func GetMonthlyRevenueAPI(c *fiber.Ctx) error {
	month, err := models.ParseMonth(c.Query("month", string(models.April)))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Unknown month"})
	}

	revenue, err := database.MonthlyRevenueByGrade(
		config.GetDB(), month, students.CycleYear(c), students.ParseGradesQuery(c))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    revenue,
	})
}
