// file: internals/features/academics/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/academics/students/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewStudentController(db)

	g := api.Group("/students")
	g.Get("/", authMW.AdvisorOrAdmin("daftar siswa"), ctl.List)
	g.Get("/:id", authMW.AdvisorOrAdmin("detail siswa"), ctl.GetByID)
	g.Post("/", authMW.AdminOnly("daftar siswa baru"), ctl.Create)
	g.Patch("/:id", authMW.AdminOnly("ubah siswa"), ctl.Update)
	g.Delete("/:id", authMW.AdminOnly("hapus siswa"), ctl.Delete)
}
