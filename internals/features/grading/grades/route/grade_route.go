// file: internals/features/grading/grades/route/grade_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/grading/grades/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func GradeRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewGradeController(db)

	g := api.Group("/grades")
	g.Get("/", authMW.AdvisorOrAdmin("daftar nilai"), ctl.List)
	g.Get("/:id", authMW.AdvisorOrAdmin("detail nilai"), ctl.GetByID)
	g.Post("/", authMW.AdvisorOrAdmin("input nilai"), ctl.Create)
	g.Patch("/:id", authMW.AdvisorOrAdmin("ubah nilai"), ctl.Update)
	g.Delete("/:id", authMW.AdminOnly("hapus nilai"), ctl.Delete)
	g.Post("/recompute", authMW.AdminOnly("recompute nilai"), ctl.Recompute)
}
