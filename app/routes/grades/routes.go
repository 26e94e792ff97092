package grades

import (
	"student-management/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupGradesRoutes(app *fiber.App) {
	api := app.Group("/api/grades")

	api.Get("/", GetGradesAPI)
	api.Put("/:code", auth.AuthMiddleware, UpdateGradeFeeAPI)
}
