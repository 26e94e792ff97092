package students

import (
	"errors"
	"fmt"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseStudentForm binds and validates the add/edit form payload.
func parseStudentForm(c *fiber.Ctx) (*models.StudentInput, *models.Grade, error) {
	input := &models.StudentInput{}
	if err := c.BodyParser(input); err != nil {
		return nil, nil, fmt.Errorf("invalid form data: %w", err)
	}
	if err := validate.Struct(input); err != nil {
		return nil, nil, err
	}

	code, err := models.ParseGradeCode(input.GradeCode)
	if err != nil {
		return nil, nil, err
	}

	grade, err := database.GetGradeByCode(config.GetDB(), code)
	if err != nil {
		return nil, nil, err
	}
	return input, grade, nil
}

func renderStudentForm(c *fiber.Ctx, template, title string, student *models.Student, formError string) error {
	grades, err := database.GetAllGrades(config.GetDB())
	if err != nil {
		return fmt.Errorf("failed to load grades: %w", err)
	}

	return c.Render(template, fiber.Map{
		"Title":       title,
		"CurrentPage": "students",
		"Grades":      grades,
		"Student":     student,
		"FormError":   formError,
		"user":        c.Locals("user"),
	})
}

// AddStudentPage shows the empty add-student form.
func AddStudentPage(c *fiber.Ctx) error {
	return renderStudentForm(c, "students/add", "Add Student", nil, "")
}

// AddStudentSubmit creates the student together with its 11 unpaid payment
// rows for the current cycle year.
func AddStudentSubmit(c *fiber.Ctx) error {
	input, grade, err := parseStudentForm(c)
	if err != nil {
		return renderStudentForm(c, "students/add", "Add Student", nil, "Please correct the errors in the form")
	}

	student, err := database.CreateStudent(config.GetDB(), input, grade, config.AppConfig.AcademicYear)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}

	return c.Redirect(fmt.Sprintf("/students/?grades=%s", student.Grade.Code))
}

// UpdateStudentPage shows the edit form pre-filled with the student.
func UpdateStudentPage(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrStudentNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	return renderStudentForm(c, "students/edit", "Edit Student: "+student.FullName, student, "")
}

func UpdateStudentSubmit(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrStudentNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	input, grade, err := parseStudentForm(c)
	if err != nil {
		return renderStudentForm(c, "students/edit", "Edit Student: "+student.FullName, student, "Please correct the errors in the form")
	}

	if err := database.UpdateStudent(config.GetDB(), student.ID, input, grade); err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}

	return c.Redirect(fmt.Sprintf("/students/?grades=%s", grade.Code))
}

// DeleteStudentPage shows the delete confirmation.
func DeleteStudentPage(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrStudentNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}

	return c.Render("students/delete", fiber.Map{
		"Title":       "Delete Student: " + student.FullName,
		"CurrentPage": "students",
		"Student":     student,
		"user":        c.Locals("user"),
	})
}

// DeleteStudentSubmit removes the student; payment rows cascade.
func DeleteStudentSubmit(c *fiber.Ctx) error {
	if err := database.DeleteStudent(config.GetDB(), c.Params("id")); err != nil {
		if errors.Is(err, database.ErrStudentNotFound) {
			return fiber.ErrNotFound
		}
		return err
	}
	return c.Redirect("/students/select-grade")
}
