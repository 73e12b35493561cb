// file: internals/route/details/analytics_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	riskRoute "sekolahku_backend/internals/features/analytics/risk/route"
)

func AnalyticsRoutes(api fiber.Router, db *gorm.DB) {
	riskRoute.RiskRoutes(api, db)
}
