package export

import (
	"github.com/gofiber/fiber/v2"
)

func SetupExportRoutes(app *fiber.App) {
	export := app.Group("/export")

	export.Get("/students-csv", ExportStudentsCSV)
}
