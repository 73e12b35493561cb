// file: internals/features/attendance/records/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/attendance/records/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	a := api.Group("/attendance")
	a.Get("/", authMW.AdvisorOrAdmin("daftar absensi"), ctl.List)
	a.Get("/rate/:student_id", authMW.AdvisorOrAdmin("attendance rate"), ctl.Rate)
	a.Post("/", authMW.AdvisorOrAdmin("input absensi"), ctl.Create)
	a.Patch("/:id", authMW.AdvisorOrAdmin("ubah absensi"), ctl.Update)
	a.Delete("/:id", authMW.AdminOnly("hapus absensi"), ctl.Delete)
}
