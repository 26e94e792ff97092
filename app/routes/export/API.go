package export

import (
	"bytes"
	"fmt"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/models"
	"student-management/app/routes/students"
	"student-management/app/services"

	"github.com/gofiber/fiber/v2"
)

// ExportStudentsCSV streams the student list as CSV, one row per student with
// a paid/unpaid column per month in fixed cycle order. Unlike the list page,
// an empty grade selection exports everything.
func ExportStudentsCSV(c *fiber.Ctx) error {
	selectedGrades := students.ParseGradesQuery(c)
	if len(selectedGrades) == 0 {
		selectedGrades = []string{"all"}
	}
	year := students.CycleYear(c)
	db := config.GetDB()

	candidates, err := database.GetStudents(db, selectedGrades, "")
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

	result, err := services.BuildStudentList(candidates, paymentsByStudent, year, services.StudentFilters{
		Grades: selectedGrades,
		SortBy: models.SortByName,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := WriteStudentsCSV(&buf, result.Rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="students_data.csv"`)
	return c.Send(buf.Bytes())
}
