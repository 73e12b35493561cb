package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/academics/advisors/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func AdvisorRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAdvisorController(db)

	g := api.Group("/advisors", authMW.AdminOnly("manajemen advisor"))
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)

	g.Get("/:id/assignments", ctl.ListAssignments)
	g.Post("/:id/assignments", ctl.CreateAssignment)
	g.Delete("/:id/assignments/:assignment_id", ctl.DeleteAssignment)
}
