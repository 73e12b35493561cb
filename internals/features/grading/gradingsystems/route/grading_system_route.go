// file: internals/features/grading/gradingsystems/route/grading_system_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/grading/gradingsystems/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func GradingSystemRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewGradingSystemController(db)

	g := api.Group("/grading-systems")
	g.Get("/", authMW.AdvisorOrAdmin("daftar grading system"), ctl.List)
	g.Get("/active", authMW.AdvisorOrAdmin("grading system aktif"), ctl.GetActive)
	g.Post("/", authMW.AdminOnly("buat grading system"), ctl.Create)
	g.Patch("/:id", authMW.AdminOnly("ubah grading system"), ctl.Update)
	g.Post("/:id/activate", authMW.AdminOnly("aktivasi grading system"), ctl.Activate)
	g.Delete("/:id", authMW.AdminOnly("hapus grading system"), ctl.Delete)
}
