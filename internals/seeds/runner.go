// file: internals/seeds/runner.go
package seeds

import (
	"gorm.io/gorm"

	grading "sekolahku_backend/internals/seeds/grading"
)

// RunAllSeeds dijalankan setelah migrasi. Semua seed idempotent.
func RunAllSeeds(db *gorm.DB) {
	grading.SeedDefaultGradingSystem(db)
}
