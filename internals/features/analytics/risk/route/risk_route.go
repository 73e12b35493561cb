// file: internals/features/analytics/risk/route/risk_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "sekolahku_backend/internals/features/analytics/risk/controller"
	authMW "sekolahku_backend/internals/middlewares/auth"
)

func RiskRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewRiskController(db)

	a := api.Group("/analytics")
	a.Get("/at-risk", authMW.AdvisorOrAdmin("daftar siswa berisiko"), ctl.AtRisk)
	a.Get("/summary", authMW.AdvisorOrAdmin("ringkasan risiko"), ctl.Summary)
	a.Get("/risk/:student_id", authMW.AdvisorOrAdmin("detail risiko siswa"), ctl.GetByStudent)
	a.Get("/trend/:student_id", authMW.AdvisorOrAdmin("trend nilai siswa"), ctl.Trend)
	a.Post("/recompute", authMW.AdminOnly("recompute risiko"), ctl.Recompute)
}
