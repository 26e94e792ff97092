package grades

import (
	"errors"

	"student-management/app/config"
	"student-management/app/database"
	"student-management/app/models"

	"github.com/gofiber/fiber/v2"
)

// GetGradesAPI returns every grade with its current monthly fee.
func GetGradesAPI(c *fiber.Ctx) error {
	grades, err := database.GetAllGrades(config.GetDB())
	if err != nil {
		return err
	}
	if grades == nil {
		grades = make([]*models.Grade, 0)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    grades,
	})
}

// UpdateGradeFeeAPI changes a grade's monthly fee. Existing payment rows keep
// their snapshot amount.
func UpdateGradeFeeAPI(c *fiber.Ctx) error {
	code, err := models.ParseGradeCode(c.Params("code"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Unknown grade code"})
	}

	type feeRequest struct {
		MonthlyFee *float64 `json:"monthly_fee"`
	}
	var req feeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if req.MonthlyFee == nil || *req.MonthlyFee < 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "message": "monthly_fee must be a non-negative number"})
	}

	if err := database.UpdateGradeFee(config.GetDB(), code, *req.MonthlyFee); err != nil {
		if errors.Is(err, database.ErrGradeNotFound) {
			return c.Status(404).JSON(fiber.Map{"success": false, "message": "Grade not found"})
		}
		return err
	}

	grade, err := database.GetGradeByCode(config.GetDB(), code)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    grade,
	})
}
