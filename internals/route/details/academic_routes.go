// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	advisorRoute "sekolahku_backend/internals/features/academics/advisors/route"
	studentRoute "sekolahku_backend/internals/features/academics/students/route"
	subjectRoute "sekolahku_backend/internals/features/academics/subjects/route"
)

func AcademicRoutes(api fiber.Router, db *gorm.DB) {
	studentRoute.StudentRoutes(api, db)
	subjectRoute.SubjectRoutes(api, db)
	advisorRoute.AdvisorRoutes(api, db)
}
