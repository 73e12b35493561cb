// file: internals/features/analytics/risk/model/risk_snapshot_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TierHigh   = "High Risk"
	TierMedium = "Medium Risk"
	TierLow    = "Low Risk"
	TierNone   = "" // tidak berlabel
)

// RiskSnapshotModel: hasil estimasi risiko per siswa, di-refresh cron harian
// atau recompute manual. Faktor input disimpan sebagai JSON untuk ditampilkan
// di dashboard tanpa hitung ulang.
type RiskSnapshotModel struct {
	RiskSnapshotID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:risk_snapshot_id" json:"risk_snapshot_id"`
	RiskSnapshotStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_risk_snapshots_student;column:risk_snapshot_student_id" json:"risk_snapshot_student_id"`

	RiskSnapshotScore float64 `gorm:"type:numeric(5,2);not null;column:risk_snapshot_score" json:"risk_snapshot_score"`
	RiskSnapshotTier  string  `gorm:"type:varchar(20);not null;default:'';column:risk_snapshot_tier" json:"risk_snapshot_tier"`

	RiskSnapshotFactors datatypes.JSONMap `gorm:"column:risk_snapshot_factors" json:"risk_snapshot_factors,omitempty"`

	RiskSnapshotComputedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:risk_snapshot_computed_at" json:"risk_snapshot_computed_at"`
	RiskSnapshotDeletedAt  gorm.DeletedAt `gorm:"column:risk_snapshot_deleted_at;index" json:"risk_snapshot_deleted_at,omitempty"`
}

func (RiskSnapshotModel) TableName() string { return "risk_snapshots" }
