// file: internals/route/details/attendance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "sekolahku_backend/internals/features/attendance/records/route"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	attendanceRoute.AttendanceRoutes(api, db)
}
