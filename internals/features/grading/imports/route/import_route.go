// file: internals/features/grading/imports/route/import_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/grading/imports/controller"
	middlewares "sekolahku_backend/internals/middlewares"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func ImportRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewImportController(db)

	g := api.Group("/grades")
	g.Post("/import", middlewares.ImportRateLimiter(), authMW.AdminOnly("import nilai"), ctl.ImportGrades)
	g.Get("/export", authMW.AdvisorOrAdmin("export lembar nilai"), ctl.ExportGrades)
}
