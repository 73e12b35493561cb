// file: internals/features/grading/gradingsystems/model/grading_system_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradingSystemModel: konfigurasi bobot bernama. Tepat satu baris aktif —
// dijaga partial unique index ux_grading_systems_one_active (lihat migrasi),
// bukan sekadar logika deactivate-then-activate di aplikasi.
type GradingSystemModel struct {
	GradingSystemID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grading_system_id" json:"grading_system_id"`
	GradingSystemName string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_grading_systems_name;column:grading_system_name" json:"grading_system_name"`

	GradingSystemWrittenWorkPercent         float64 `gorm:"type:numeric(5,2);not null;column:grading_system_written_work_percent" json:"grading_system_written_work_percent"`
	GradingSystemPerformanceTaskPercent     float64 `gorm:"type:numeric(5,2);not null;column:grading_system_performance_task_percent" json:"grading_system_performance_task_percent"`
	GradingSystemQuarterlyAssessmentPercent float64 `gorm:"type:numeric(5,2);not null;column:grading_system_quarterly_assessment_percent" json:"grading_system_quarterly_assessment_percent"`

	GradingSystemIsActive bool `gorm:"not null;default:false;column:grading_system_is_active" json:"grading_system_is_active"`

	GradingSystemCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grading_system_created_at" json:"grading_system_created_at"`
	GradingSystemUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grading_system_updated_at" json:"grading_system_updated_at"`
	GradingSystemDeletedAt gorm.DeletedAt `gorm:"column:grading_system_deleted_at;index" json:"grading_system_deleted_at,omitempty"`
}

func (GradingSystemModel) TableName() string { return "grading_systems" }
