// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMW "sekolahku_backend/internals/middlewares/auth"
	routeDetails "sekolahku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Health + root (tanpa token)
	BaseRoutes(app, db)

	// ===================== API (bertoken) =====================
	log.Println("[INFO] Setting up API group...")
	api := app.Group("/api", authMW.AuthMiddleware())

	log.Println("[INFO] Mounting Academic routes...")
	routeDetails.AcademicRoutes(api, db)

	log.Println("[INFO] Mounting Grading routes...")
	routeDetails.GradingRoutes(api, db)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceRoutes(api, db)

	log.Println("[INFO] Mounting Analytics routes...")
	routeDetails.AnalyticsRoutes(api, db)
}
