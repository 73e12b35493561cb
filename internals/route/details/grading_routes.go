// file: internals/route/details/grading_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeRoute "sekolahku_backend/internals/features/grading/grades/route"
	gradingSystemRoute "sekolahku_backend/internals/features/grading/gradingsystems/route"
	importRoute "sekolahku_backend/internals/features/grading/imports/route"
)

func GradingRoutes(api fiber.Router, db *gorm.DB) {
	gradingSystemRoute.GradingSystemRoutes(api, db)
	// import/export lebih dulu supaya /grades/export tidak tertelan /grades/:id
	importRoute.ImportRoutes(api, db)
	gradeRoute.GradeRoutes(api, db)
}
