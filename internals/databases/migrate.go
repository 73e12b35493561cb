// file: internals/databases/migrate.go
package database

import (
	"log"

	advisorModel "sekolahku_backend/internals/features/academics/advisors/model"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
	subjectModel "sekolahku_backend/internals/features/academics/subjects/model"
	riskModel "sekolahku_backend/internals/features/analytics/risk/model"
	attendanceModel "sekolahku_backend/internals/features/attendance/records/model"
	gradeModel "sekolahku_backend/internals/features/grading/grades/model"
	gradingSystemModel "sekolahku_backend/internals/features/grading/gradingsystems/model"
)

// AutoMigrate dijalankan saat DB_AUTOMIGRATE=true (dev / first deploy).
// Production memakai migrasi SQL terkelola.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&studentModel.StudentModel{},
		&subjectModel.SubjectModel{},
		&advisorModel.AdvisorModel{},
		&advisorModel.AdvisoryAssignmentModel{},
		&gradingSystemModel.GradingSystemModel{},
		&gradeModel.GradeModel{},
		&attendanceModel.AttendanceModel{},
		&riskModel.RiskSnapshotModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	// Partial unique index: paksa maksimal satu grading system aktif di level
	// storage, bukan cuma lewat urutan deactivate-then-activate aplikasi.
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS ux_grading_systems_one_active
		ON grading_systems (grading_system_is_active)
		WHERE grading_system_is_active = true AND grading_system_deleted_at IS NULL
	`).Error; err != nil {
		log.Fatalf("❌ Gagal membuat index ux_grading_systems_one_active: %v", err)
	}

	log.Println("✅ AutoMigrate selesai.")
}
