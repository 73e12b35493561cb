// file: internals/seeds/grading/seed_grading_system.go
package grading

import (
	"log"

	"gorm.io/gorm"

	gradeSvc "sekolahku_backend/internals/features/grading/grades/service"
	model "sekolahku_backend/internals/features/grading/gradingsystems/model"
)

// SeedDefaultGradingSystem memastikan selalu ada satu konfigurasi bobot aktif.
// Dilewati bila tabel sudah berisi.
func SeedDefaultGradingSystem(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.GradingSystemModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ Gagal cek grading systems: %v", err)
		return
	}
	if count > 0 {
		log.Println("ℹ️ Grading system sudah ada, seed dilewati.")
		return
	}

	w := gradeSvc.DefaultWeights()
	row := model.GradingSystemModel{
		GradingSystemName:                       "Standard DepEd",
		GradingSystemWrittenWorkPercent:         w.WrittenWork,
		GradingSystemPerformanceTaskPercent:     w.PerformanceTask,
		GradingSystemQuarterlyAssessmentPercent: w.QuarterlyAssessment,
		GradingSystemIsActive:                   true,
	}
	if err := db.Create(&row).Error; err != nil {
		log.Printf("❌ Gagal seed grading system default: %v", err)
		return
	}
	log.Println("✅ Grading system default tersimpan (aktif).")
}
