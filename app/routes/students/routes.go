package students

import (
	"errors"
	"fmt"
	"strings"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/models"
	"student-management/app/routes/auth"
	"student-management/app/services"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")

	// Routes. The static paths must be registered before "/:id".
	students.Get("/select-grade", GradeSelectionPage)
	students.Get("/", StudentsListPage)
	students.Get("/add", auth.AuthMiddleware, AddStudentPage)
	students.Post("/add", auth.AuthMiddleware, AddStudentSubmit)
	students.Get("/:id", StudentDetailPage)
	students.Get("/:id/update", auth.AuthMiddleware, UpdateStudentPage)
	students.Post("/:id/update", auth.AuthMiddleware, UpdateStudentSubmit)
	students.Get("/:id/delete", auth.AuthMiddleware, DeleteStudentPage)
	students.Post("/:id/delete", auth.AuthMiddleware, DeleteStudentSubmit)

	// API routes
	app.Post("/api/update-payment", UpdatePaymentAPI)
	app.Get("/api/students/:id/summary", StudentSummaryAPI)
}

// ParseGradesQuery reads the repeatable "grades" parameter; each value may
// also carry a comma-separated list. The dashboard and export packages share
// this.
func ParseGradesQuery(c *fiber.Ctx) []string {
	var grades []string
	for _, raw := range c.Context().QueryArgs().PeekMulti("grades") {
		for _, part := range strings.Split(string(raw), ",") {
			if part = strings.TrimSpace(part); part != "" {
				grades = append(grades, part)
			}
		}
	}
	return grades
}

// CycleYear returns the target cycle year, defaulting to the configured
// academic year.
func CycleYear(c *fiber.Ctx) int {
	return c.QueryInt("year", config.AppConfig.AcademicYear)
}

// GradeSelectionPage shows the mandatory grade picker.
func GradeSelectionPage(c *fiber.Ctx) error {
	return renderGradeSelection(c, "")
}

func renderGradeSelection(c *fiber.Ctx, message string) error {
	grades, err := database.GetAllGrades(config.GetDB())
	if err != nil {
		return fmt.Errorf("failed to load grades: %w", err)
	}

	return c.Render("students/select_grade", fiber.Map{
		"Title":        "Select Grade",
		"CurrentPage":  "students",
		"Grades":       grades,
		"ErrorMessage": message,
		"user":         c.Locals("user"),
	})
}

// StudentsListPage renders the filtered student list. Requesting it without a
// grade selection falls back to the grade picker; this gate is deliberate,
// not a default to "all".
func StudentsListPage(c *fiber.Ctx) error {
	selectedGrades := ParseGradesQuery(c)
	year := CycleYear(c)

	filters := services.StudentFilters{
		Grades:        selectedGrades,
		Search:        c.Query("search"),
		Month:         c.Query("month"),
		PaymentStatus: c.Query("payment_status"),
		SortBy:        models.SortKey(c.Query("sort", string(models.SortByName))),
	}

	if filters.Month != "" && filters.Month != "all" {
		if _, err := models.ParseMonth(filters.Month); err != nil {
			return renderGradeSelection(c, "Unknown month in request")
		}
	}

	db := config.GetDB()
	candidates, err := database.GetStudents(db, selectedGrades, filters.Search)
	if err != nil {
		return fmt.Errorf("failed to load students: %w", err)
	}

	ids := make([]string, len(candidates))
	for i, s := range candidates {
		ids[i] = s.ID
	}
	paymentsByStudent, err := database.GetPaymentsForStudents(db, ids, year)
	if err != nil {
		return fmt.Errorf("failed to load payments: %w", err)
	}

	result, err := services.BuildStudentList(candidates, paymentsByStudent, year, filters)
	if err != nil {
		if errors.Is(err, services.ErrGradeSelectionRequired) {
			return renderGradeSelection(c, "Please select at least one grade to view the student list")
		}
		return err
	}

	if len(result.Rows) == 0 && filters.Search == "" && filters.Month == "" && filters.PaymentStatus == "" {
		return renderGradeSelection(c, "There are no students in the selected grades")
	}

	grades, err := database.GetAllGrades(config.GetDB())
	if err != nil {
		return fmt.Errorf("failed to load grades: %w", err)
	}

	return c.Render("students/index", fiber.Map{
		"Title":          "Students",
		"CurrentPage":    "students",
		"Rows":           result.Rows,
		"Months":         models.Months,
		"Grades":         grades,
		"SelectedGrades": selectedGrades,
		"Filters":        filters,
		"Year":           year,
		"TotalPaid":      result.TotalPaid,
		"TotalPending":   result.TotalPending,
		"user":           c.Locals("user"),
	})
}

// StudentDetailPage renders one student's yearly payment picture.
func StudentDetailPage(c *fiber.Ctx) error {
	year := CycleYear(c)

	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrStudentNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	payments, err := database.GetPaymentsForStudent(config.GetDB(), student.ID, year)
	if err != nil {
		return fmt.Errorf("failed to load payments: %w", err)
	}

	summary := services.ComputePaymentSummary(student.Grade.MonthlyFee, payments, year)

	return c.Render("students/view", fiber.Map{
		"Title":       student.FullName,
		"CurrentPage": "students",
		"Student":     student,
		"Summary":     summary,
		"Year":        year,
		"user":        c.Locals("user"),
	})
}
