package students

import (
	"errors"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/models"
	"student-management/app/services"

	"github.com/gofiber/fiber/v2"
)

// UpdatePaymentAPI sets the paid flag for one (student, month, year) cell,
// creating the row with the grade's current fee on first touch. Only a
// missing student and malformed input are converted to {success:false}
// responses; anything else (storage failures and the like) propagates to the
// app error handler.
func UpdatePaymentAPI(c *fiber.Ctx) error {
	type updatePaymentRequest struct {
		StudentID string `json:"student_id"`
		Month     string `json:"month"`
		Year      int    `json:"year"`
		IsPaid    *bool  `json:"is_paid"`
	}

	var req updatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if req.StudentID == "" || req.Month == "" || req.IsPaid == nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "student_id, month and is_paid are required"})
	}

	month, err := models.ParseMonth(req.Month)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Unknown month: " + req.Month})
	}

	year := req.Year
	if year == 0 {
		year = config.AppConfig.AcademicYear
	}

	db := config.GetDB()
	student, err := database.GetStudentByID(db, req.StudentID)
	if err != nil {
		if errors.Is(err, database.ErrStudentNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "message": "Student not found"})
		}
		return err
	}

	payment, err := database.UpsertPaymentStatus(db, student.ID, month, year, *req.IsPaid, student.Grade.MonthlyFee)
	if err != nil {
		return err
	}

	totalPaid, err := database.StudentTotalPaid(db, student.ID, year)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":            true,
		"message":            "Payment status updated successfully",
		"payment_amount":     payment.Amount,
		"student_total_paid": totalPaid,
		"student_name":       student.FullName,
	})
}

// StudentSummaryAPI returns one student's computed payment summary as JSON;
// the detail page refreshes itself from this after checkbox toggles.
func StudentSummaryAPI(c *fiber.Ctx) error {
	year := CycleYear(c)

	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrStudentNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "message": "Student not found"})
		}
		return err
	}

	payments, err := database.GetPaymentsForStudent(config.GetDB(), student.ID, year)
	if err != nil {
		return err
	}

	summary := services.ComputePaymentSummary(student.Grade.MonthlyFee, payments, year)

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"student": student,
			"summary": summary,
		},
	})
}
