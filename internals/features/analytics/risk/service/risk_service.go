// file: internals/features/analytics/risk/service/risk_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	studentModel "sekolahku_backend/internals/features/academics/students/model"
	model "sekolahku_backend/internals/features/analytics/risk/model"
	attendanceModel "sekolahku_backend/internals/features/attendance/records/model"
	gradeModel "sekolahku_backend/internals/features/grading/grades/model"
	gradeSvc "sekolahku_backend/internals/features/grading/grades/service"
)

type RiskService struct {
	DB *gorm.DB
}

func NewRiskService(db *gorm.DB) *RiskService {
	return &RiskService{DB: db}
}

// RecomputeStudent menghitung ulang snapshot risiko satu siswa dari grades +
// attendance yang tersimpan, lalu upsert (satu snapshot per siswa).
func (s *RiskService) RecomputeStudent(studentID uuid.UUID) (*model.RiskSnapshotModel, error) {
	var grades []gradeModel.GradeModel
	if err := s.DB.Where("grade_student_id = ?", studentID).Find(&grades).Error; err != nil {
		return nil, err
	}

	finals := make([]float64, 0, len(grades))
	perQuarter := map[int16][]float64{}
	failing := 0
	for _, g := range grades {
		finals = append(finals, g.GradeFinalGrade)
		perQuarter[g.GradeQuarter] = append(perQuarter[g.GradeQuarter], g.GradeFinalGrade)
		if gradeSvc.IsFailing(g.GradeFinalGrade) {
			failing++
		}
	}
	perQuarterAvg := map[int16]float64{}
	for q, vals := range perQuarter {
		if m, ok := MeanGrade(vals); ok {
			perQuarterAvg[q] = m
		}
	}

	var totalDays, presentDays int64
	if err := s.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_student_id = ?", studentID).
		Count(&totalDays).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_status IN ?",
			studentID, []string{attendanceModel.StatusPresent, attendanceModel.StatusLate}).
		Count(&presentDays).Error; err != nil {
		return nil, err
	}

	avg, hasGrades := MeanGrade(finals)
	slope := TrendSlope(perQuarterAvg)
	attendanceRate := 0.0
	if totalDays > 0 {
		attendanceRate = float64(presentDays) / float64(totalDays) * 100
	}

	score, tier := ComputeRisk(RiskInputs{
		AverageGrade:      avg,
		AttendanceRatePct: attendanceRate,
		FailingCount:      failing,
		TrendSlope:        slope,
		HasGrades:         hasGrades,
		HasAttendance:     totalDays > 0,
	})

	snap := model.RiskSnapshotModel{
		RiskSnapshotStudentID: studentID,
		RiskSnapshotScore:     score,
		RiskSnapshotTier:      tier,
		RiskSnapshotFactors: datatypes.JSONMap{
			"average_grade":   gradeSvc.Round2(avg),
			"attendance_rate": gradeSvc.Round2(attendanceRate),
			"failing_count":   failing,
			"trend_slope":     gradeSvc.Round2(slope),
			"graded_quarters": len(perQuarterAvg),
		},
		RiskSnapshotComputedAt: time.Now(),
	}

	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "risk_snapshot_student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"risk_snapshot_score",
			"risk_snapshot_tier",
			"risk_snapshot_factors",
			"risk_snapshot_computed_at",
		}),
	}).Create(&snap).Error
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// RecomputeAll: dipanggil cron harian dan endpoint recompute manual.
// Sekuensial per siswa; kegagalan satu siswa tidak menghentikan sisanya.
func (s *RiskService) RecomputeAll() (int, int, error) {
	var ids []uuid.UUID
	if err := s.DB.Model(&studentModel.StudentModel{}).Pluck("student_id", &ids).Error; err != nil {
		return 0, 0, err
	}
	ok, failed := 0, 0
	for _, id := range ids {
		if _, err := s.RecomputeStudent(id); err != nil {
			failed++
			continue
		}
		ok++
	}
	return ok, failed, nil
}
