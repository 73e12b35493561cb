package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/academics/subjects/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func SubjectRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db)

	g := api.Group("/subjects")
	g.Get("/", authMW.AdvisorOrAdmin("daftar mapel"), ctl.List)
	g.Post("/", authMW.AdminOnly("buat mapel"), ctl.Create)
	g.Patch("/:id", authMW.AdminOnly("ubah mapel"), ctl.Update)
	g.Delete("/:id", authMW.AdminOnly("hapus mapel"), ctl.Delete)
}
