// file: internals/features/attendance/records/controller/attendance_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scopeSvc "sekolahku_backend/internals/features/academics/advisors/service"
	dto "sekolahku_backend/internals/features/attendance/records/dto"
	model "sekolahku_backend/internals/features/attendance/records/model"
	helper "sekolahku_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scope     *scopeSvc.ScopeService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Validator: validator.New(),
		Scope:     scopeSvc.NewScopeService(db),
	}
}

// canTouchStudent: admin bebas; advisor hanya siswa dalam cakupan assignment-nya.
func (ctl *AttendanceController) canTouchStudent(c *fiber.Ctx, studentID uuid.UUID) error {
	if helper.IsAdmin(c) {
		return nil
	}
	advisorID, err := helper.GetAdvisorIDFromToken(c)
	if err != nil {
		return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
	}
	ids, err := ctl.Scope.ScopedStudentIDs(advisorID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat cakupan advisor")
	}
	for _, id := range ids {
		if id == studentID {
			return nil
		}
	}
	return fiber.NewError(fiber.StatusForbidden, "Siswa di luar cakupan advisory Anda")
}

/* ==============================
   CREATE
============================== */

func (ctl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if err := ctl.canTouchStudent(c, req.AttendanceStudentID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}
	if row.AttendanceDate.After(time.Now()) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal absensi tidak boleh di masa depan")
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Absensi siswa untuk tanggal ini sudah ada")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}
	return helper.JsonCreated(c, "Absensi berhasil dicatat", dto.FromModel(row))
}

/* ==============================
   LIST (scoped per role)
============================== */

func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&model.AttendanceModel{})

	if sid := c.Query("student_id"); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id bukan UUID")
		}
		q = q.Where("attendance_student_id = ?", id)
	}
	if st := c.Query("status"); st != "" {
		if !model.IsValidStatus(st) {
			return helper.JsonError(c, fiber.StatusBadRequest, "status tidak dikenal")
		}
		q = q.Where("attendance_status = ?", st)
	}
	if from := c.Query("date_from"); from != "" {
		d, err := time.Parse(dto.DateLayout, from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from harus YYYY-MM-DD")
		}
		q = q.Where("attendance_date >= ?", d)
	}
	if to := c.Query("date_to"); to != "" {
		d, err := time.Parse(dto.DateLayout, to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to harus YYYY-MM-DD")
		}
		q = q.Where("attendance_date <= ?", d)
	}

	// Advisor hanya melihat siswa dalam cakupannya
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
			return helper.JsonList(c, "ok", []dto.AttendanceResponse{}, helper.BuildPaginationFromPage(0, paging.Page, paging.PerPage))
		}
		q = q.Where("attendance_student_id IN ?", ids)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung absensi")
	}

	var rows []model.AttendanceModel
	if err := q.Order("attendance_date DESC, attendance_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat absensi")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ==============================
   UPDATE
============================== */

func (ctl *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var row model.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "attendance_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat absensi")
	}
	if err := ctl.canTouchStudent(c, row.AttendanceStudentID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	if req.AttendanceStatus != nil {
		row.AttendanceStatus = *req.AttendanceStatus
	}
	if req.AttendanceRemarks != nil {
		row.AttendanceRemarks = req.AttendanceRemarks
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}
	return helper.JsonUpdated(c, "Absensi berhasil diperbarui", dto.FromModel(row))
}

/* ==============================
   DELETE (soft)
============================== */

func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.AttendanceModel{}, "attendance_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus absensi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Absensi berhasil dihapus", fiber.Map{"attendance_id": id})
}

/* ==============================
   RATE (ringkasan per siswa)
============================== */

// Rate menghitung persentase kehadiran seorang siswa. Status late tetap
// dihitung hadir.
func (ctl *AttendanceController) Rate(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id bukan UUID")
	}
	if err := ctl.canTouchStudent(c, studentID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	base := ctl.DB.WithContext(c.Context()).Model(&model.AttendanceModel{}).
		Where("attendance_student_id = ?", studentID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung absensi")
	}

	var present int64
	if err := ctl.DB.WithContext(c.Context()).Model(&model.AttendanceModel{}).
		Where("attendance_student_id = ?", studentID).
		Where("attendance_status IN ?", []string{model.StatusPresent, model.StatusLate}).
		Count(&present).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung kehadiran")
	}

	resp := dto.RateResponse{StudentID: studentID, TotalDays: total, PresentDays: present}
	if total > 0 {
		resp.RatePercent = float64(present) / float64(total) * 100.0
	}
	return helper.JsonOK(c, "ok", resp)
}
