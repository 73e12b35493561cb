// file: internals/features/grading/grades/controller/grade_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scopeSvc "sekolahku_backend/internals/features/academics/advisors/service"
	dto "sekolahku_backend/internals/features/grading/grades/dto"
	model "sekolahku_backend/internals/features/grading/grades/model"
	gradeSvc "sekolahku_backend/internals/features/grading/grades/service"
	gsSvc "sekolahku_backend/internals/features/grading/gradingsystems/service"
	helper "sekolahku_backend/internals/helpers"
)

type GradeController struct {
	DB            *gorm.DB
	Validator     *validator.Validate
	GradingSystem *gsSvc.GradingSystemService
	Scope         *scopeSvc.ScopeService
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{
		DB:            db,
		Validator:     validator.New(),
		GradingSystem: gsSvc.NewGradingSystemService(db),
		Scope:         scopeSvc.NewScopeService(db),
	}
}

// deriveFrom mengisi final grade + remarks dari komponen memakai bobot aktif.
func (ctl *GradeController) deriveFrom(row *model.GradeModel) {
	weights := ctl.GradingSystem.ActiveWeights()
	row.GradeFinalGrade = gradeSvc.ComputeFinalGrade(gradeSvc.GradeComponents{
		WrittenWork:         row.GradeWrittenWork,
		PerformanceTask:     row.GradePerformanceTask,
		QuarterlyAssessment: row.GradeQuarterlyAssessment,
	}, weights)
	row.GradeRemarks = gradeSvc.Classify(row.GradeFinalGrade).Label
}

// canTouchStudent: admin bebas; advisor hanya siswa dalam cakupan assignment-nya.
func (ctl *GradeController) canTouchStudent(c *fiber.Ctx, studentID uuid.UUID) error {
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

func (ctl *GradeController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if err := ctl.canTouchStudent(c, req.GradeStudentID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	row := req.ToModel()
	if req.GradeFinalGrade != nil || req.GradeRemarks != nil {
		// override manual sejak awal
		ctl.deriveFrom(&row)
		if req.GradeFinalGrade != nil {
			row.GradeFinalGrade = gradeSvc.Round2(*req.GradeFinalGrade)
		}
		if req.GradeRemarks != nil {
			row.GradeRemarks = *req.GradeRemarks
		}
		row.GradeIsOverridden = true
	} else {
		ctl.deriveFrom(&row)
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Nilai untuk kombinasi siswa, mapel, dan quarter ini sudah ada")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Siswa atau mapel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	return helper.JsonCreated(c, "Nilai berhasil dibuat", dto.FromModel(row))
}

/* ==============================
   LIST (scoped per role)
============================== */

func (ctl *GradeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&model.GradeModel{})

	if sid := c.Query("student_id"); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id bukan UUID")
		}
		q = q.Where("grade_student_id = ?", id)
	}
	if sub := c.Query("subject_id"); sub != "" {
		id, err := uuid.Parse(sub)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "subject_id bukan UUID")
		}
		q = q.Where("grade_subject_id = ?", id)
	}
	if qt := c.Query("quarter"); qt != "" {
		quarter, err := model.ParseQuarter(qt)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("grade_quarter = ?", quarter)
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
			return helper.JsonList(c, "ok", []dto.GradeResponse{}, helper.BuildPaginationFromPage(0, paging.Page, paging.PerPage))
		}
		q = q.Where("grade_student_id IN ?", ids)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung nilai")
	}

	var rows []model.GradeModel
	if err := q.Order("grade_quarter ASC, grade_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat nilai")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ==============================
   DETAIL
============================== */

func (ctl *GradeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}
	var row model.GradeModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "grade_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat nilai")
	}
	if err := ctl.canTouchStudent(c, row.GradeStudentID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.FromModel(row))
}

/* ==============================
   UPDATE
============================== */

func (ctl *GradeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}

	var req dto.UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var row model.GradeModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "grade_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat nilai")
	}
	if err := ctl.canTouchStudent(c, row.GradeStudentID); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	}

	if req.GradeWrittenWork != nil {
		row.GradeWrittenWork = req.GradeWrittenWork
	}
	if req.GradePerformanceTask != nil {
		row.GradePerformanceTask = req.GradePerformanceTask
	}
	if req.GradeQuarterlyAssessment != nil {
		row.GradeQuarterlyAssessment = req.GradeQuarterlyAssessment
	}
	if req.GradeIsOverridden != nil {
		row.GradeIsOverridden = *req.GradeIsOverridden
	}
	if req.GradeFinalGrade != nil {
		row.GradeFinalGrade = gradeSvc.Round2(*req.GradeFinalGrade)
		row.GradeIsOverridden = true
	}
	if req.GradeRemarks != nil {
		row.GradeRemarks = *req.GradeRemarks
		row.GradeIsOverridden = true
	}

	// Baris yang tidak dikunci selalu dihitung ulang dari komponen
	if !row.GradeIsOverridden {
		ctl.deriveFrom(&row)
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	return helper.JsonUpdated(c, "Nilai berhasil diperbarui", dto.FromModel(row))
}

/* ==============================
   DELETE (soft)
============================== */

func (ctl *GradeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.GradeModel{}, "grade_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus nilai")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Nilai berhasil dihapus", fiber.Map{"grade_id": id})
}

/* ==============================
   RECOMPUTE (setelah ganti bobot)
============================== */

// Recompute menghitung ulang semua baris yang tidak di-override memakai bobot
// aktif sekarang. Batch tetap 500 baris supaya progress terlihat; batch yang
// sudah tersimpan tidak di-rollback bila batch berikutnya gagal.
func (ctl *GradeController) Recompute(c *fiber.Ctx) error {
	const batchSize = 500

	weights := ctl.GradingSystem.ActiveWeights()
	updated := 0

	var batch []model.GradeModel
	err := ctl.DB.WithContext(c.Context()).
		Where("grade_is_overridden = ?", false).
		FindInBatches(&batch, batchSize, func(tx *gorm.DB, _ int) error {
			for i := range batch {
				row := &batch[i]
				row.GradeFinalGrade = gradeSvc.ComputeFinalGrade(gradeSvc.GradeComponents{
					WrittenWork:         row.GradeWrittenWork,
					PerformanceTask:     row.GradePerformanceTask,
					QuarterlyAssessment: row.GradeQuarterlyAssessment,
				}, weights)
				row.GradeRemarks = gradeSvc.Classify(row.GradeFinalGrade).Label
				if err := tx.Save(row).Error; err != nil {
					return err
				}
				updated++
			}
			return nil
		}).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Recompute berhenti di tengah; baris yang sudah diproses tetap tersimpan")
	}

	return helper.JsonOK(c, "Recompute selesai", fiber.Map{"updated": updated})
}
