// file: internals/features/analytics/risk/dto/risk_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "sekolahku_backend/internals/features/analytics/risk/model"
)

type RiskSnapshotResponse struct {
	RiskSnapshotID         uuid.UUID         `json:"risk_snapshot_id"`
	RiskSnapshotStudentID  uuid.UUID         `json:"risk_snapshot_student_id"`
	RiskSnapshotScore      float64           `json:"risk_snapshot_score"`
	RiskSnapshotTier       string            `json:"risk_snapshot_tier"`
	RiskSnapshotFactors    datatypes.JSONMap `json:"risk_snapshot_factors,omitempty"`
	RiskSnapshotComputedAt time.Time         `json:"risk_snapshot_computed_at"`
}

func FromModel(m model.RiskSnapshotModel) RiskSnapshotResponse {
	return RiskSnapshotResponse{
		RiskSnapshotID:         m.RiskSnapshotID,
		RiskSnapshotStudentID:  m.RiskSnapshotStudentID,
		RiskSnapshotScore:      m.RiskSnapshotScore,
		RiskSnapshotTier:       m.RiskSnapshotTier,
		RiskSnapshotFactors:    m.RiskSnapshotFactors,
		RiskSnapshotComputedAt: m.RiskSnapshotComputedAt,
	}
}

// AtRiskRow: hasil join snapshot + identitas siswa untuk dashboard.
type AtRiskRow struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	YearLevel   int16     `json:"year_level"`
	Section     string    `json:"section"`
	Score       float64   `json:"score"`
	Tier        string    `json:"tier"`
	ComputedAt  time.Time `json:"computed_at"`
}

// QuarterPoint: rata-rata nilai siswa pada satu quarter.
type QuarterPoint struct {
	Quarter int16   `json:"quarter"`
	Average float64 `json:"average"`
}

type TrendResponse struct {
	StudentID uuid.UUID      `json:"student_id"`
	Points    []QuarterPoint `json:"points"`
	Slope     float64        `json:"slope"`
	Direction string         `json:"direction"` // improving | declining | flat
}

type SummaryResponse struct {
	TotalStudents     int64            `json:"total_students"`
	TierCounts        map[string]int64 `json:"tier_counts"`
	GradeDistribution map[string]int64 `json:"grade_distribution"` // per label remark
	LastComputed      *time.Time       `json:"last_computed,omitempty"`
}
