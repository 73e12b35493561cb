// file: internals/features/analytics/risk/controller/risk_controller.go
package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scopeSvc "sekolahku_backend/internals/features/academics/advisors/service"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
	dto "sekolahku_backend/internals/features/analytics/risk/dto"
	model "sekolahku_backend/internals/features/analytics/risk/model"
	riskSvc "sekolahku_backend/internals/features/analytics/risk/service"
	gradeModel "sekolahku_backend/internals/features/grading/grades/model"
	gradeSvc "sekolahku_backend/internals/features/grading/grades/service"
	helper "sekolahku_backend/internals/helpers"
)

type RiskController struct {
	DB    *gorm.DB
	Risk  *riskSvc.RiskService
	Scope *scopeSvc.ScopeService
}

func NewRiskController(db *gorm.DB) *RiskController {
	return &RiskController{
		DB:    db,
		Risk:  riskSvc.NewRiskService(db),
		Scope: scopeSvc.NewScopeService(db),
	}
}

/* ==============================
   AT-RISK LIST
============================== */

// AtRisk: daftar siswa berlabel risiko, urut skor tertinggi. Tie-break pakai
// nama lalu student_id supaya urutannya stabil antar request.
func (ctl *RiskController) AtRisk(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.Context()).
		Table("risk_snapshots").
		Joins("JOIN students ON students.student_id = risk_snapshots.risk_snapshot_student_id").
		Where("risk_snapshots.risk_snapshot_deleted_at IS NULL").
		Where("students.student_deleted_at IS NULL").
		Where("risk_snapshots.risk_snapshot_tier <> ''")

	if tier := c.Query("tier"); tier != "" {
		switch tier {
		case model.TierHigh, model.TierMedium, model.TierLow:
			q = q.Where("risk_snapshots.risk_snapshot_tier = ?", tier)
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "tier tidak dikenal")
		}
	}

	if !helper.IsAdmin(c) {
		advisorID, err := helper.GetAdvisorIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
		}
		ids, err := ctl.Scope.ScopedStudentIDs(advisorID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat cakupan advisor")
		}
		if len(ids) == 0 {
			return helper.JsonList(c, "ok", []dto.AtRiskRow{}, helper.BuildPaginationFromPage(0, paging.Page, paging.PerPage))
		}
		q = q.Where("risk_snapshots.risk_snapshot_student_id IN ?", ids)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data risiko")
	}

	var rows []dto.AtRiskRow
	if err := q.
		Select(`students.student_id AS student_id,
			students.student_first_name || ' ' || students.student_last_name AS student_name,
			students.student_year_level AS year_level,
			students.student_section AS section,
			risk_snapshots.risk_snapshot_score AS score,
			risk_snapshots.risk_snapshot_tier AS tier,
			risk_snapshots.risk_snapshot_computed_at AS computed_at`).
		Order("risk_snapshots.risk_snapshot_score DESC, student_name ASC, students.student_id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data risiko")
	}

	return helper.JsonList(c, "ok", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ==============================
   DETAIL SNAPSHOT
============================== */

func (ctl *RiskController) GetByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id bukan UUID")
	}
	if err := ctl.guardStudent(c, studentID); err != nil {
		return err
	}

	var snap model.RiskSnapshotModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&snap, "risk_snapshot_student_id = ?", studentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Snapshot risiko belum tersedia untuk siswa ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat snapshot risiko")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(snap))
}

/* ==============================
   TREND PER SISWA
============================== */

// Trend: rata-rata per quarter + slope regresi linier-nya.
func (ctl *RiskController) Trend(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id bukan UUID")
	}
	if err := ctl.guardStudent(c, studentID); err != nil {
		return err
	}

	var grades []gradeModel.GradeModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("grade_student_id = ?", studentID).
		Find(&grades).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat nilai siswa")
	}

	perQuarter := map[int16][]float64{}
	for _, g := range grades {
		perQuarter[g.GradeQuarter] = append(perQuarter[g.GradeQuarter], g.GradeFinalGrade)
	}
	perQuarterAvg := map[int16]float64{}
	points := make([]dto.QuarterPoint, 0, 4)
	for _, q := range []int16{gradeModel.QuarterFirst, gradeModel.QuarterSecond, gradeModel.QuarterThird, gradeModel.QuarterFourth} {
		vals, ok := perQuarter[q]
		if !ok {
			continue
		}
		if m, ok := riskSvc.MeanGrade(vals); ok {
			perQuarterAvg[q] = m
			points = append(points, dto.QuarterPoint{Quarter: q, Average: gradeSvc.Round2(m)})
		}
	}

	slope := riskSvc.TrendSlope(perQuarterAvg)
	direction := "flat"
	switch {
	case slope > 0.5:
		direction = "improving"
	case slope < -0.5:
		direction = "declining"
	}

	return helper.JsonOK(c, "ok", dto.TrendResponse{
		StudentID: studentID,
		Points:    points,
		Slope:     gradeSvc.Round2(slope),
		Direction: direction,
	})
}

/* ==============================
   SUMMARY DASHBOARD
============================== */

func (ctl *RiskController) Summary(c *fiber.Ctx) error {
	var totalStudents int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&studentModel.StudentModel{}).Count(&totalStudents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	type tierCount struct {
		Tier  string
		Total int64
	}
	var counts []tierCount
	if err := ctl.DB.WithContext(c.Context()).
		Model(&model.RiskSnapshotModel{}).
		Select("risk_snapshot_tier AS tier, COUNT(*) AS total").
		Group("risk_snapshot_tier").
		Scan(&counts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merangkum risiko")
	}

	tierCounts := map[string]int64{
		model.TierHigh:   0,
		model.TierMedium: 0,
		model.TierLow:    0,
	}
	for _, tc := range counts {
		if tc.Tier == model.TierNone {
			continue
		}
		tierCounts[tc.Tier] = tc.Total
	}

	type remarkCount struct {
		Remarks string
		Total   int64
	}
	var remarkCounts []remarkCount
	if err := ctl.DB.WithContext(c.Context()).
		Model(&gradeModel.GradeModel{}).
		Select("grade_remarks AS remarks, COUNT(*) AS total").
		Group("grade_remarks").
		Scan(&remarkCounts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal merangkum distribusi nilai")
	}
	distribution := map[string]int64{}
	for _, rc := range remarkCounts {
		distribution[rc.Remarks] = rc.Total
	}

	resp := dto.SummaryResponse{
		TotalStudents:     totalStudents,
		TierCounts:        tierCounts,
		GradeDistribution: distribution,
	}

	var last time.Time
	row := ctl.DB.WithContext(c.Context()).
		Model(&model.RiskSnapshotModel{}).
		Select("MAX(risk_snapshot_computed_at)").Row()
	if err := row.Scan(&last); err == nil && !last.IsZero() {
		resp.LastComputed = &last
	}

	return helper.JsonOK(c, "ok", resp)
}

/* ==============================
   RECOMPUTE MANUAL
============================== */

func (ctl *RiskController) Recompute(c *fiber.Ctx) error {
	ok, failed, err := ctl.Risk.RecomputeAll()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menjalankan recompute risiko")
	}
	log.Printf("[RISK] recompute manual selesai: ok=%d failed=%d", ok, failed)
	return helper.JsonOK(c, "Recompute risiko selesai", fiber.Map{"ok": ok, "failed": failed})
}

// guardStudent: admin bebas; advisor dibatasi cakupan assignment.
func (ctl *RiskController) guardStudent(c *fiber.Ctx, studentID uuid.UUID) error {
	if helper.IsAdmin(c) {
		return nil
	}
	advisorID, err := helper.GetAdvisorIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	}
	ids, err := ctl.Scope.ScopedStudentIDs(advisorID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat cakupan advisor")
	}
	for _, id := range ids {
		if id == studentID {
			return nil
		}
	}
	return helper.JsonError(c, fiber.StatusForbidden, "Siswa di luar cakupan advisory Anda")
}
