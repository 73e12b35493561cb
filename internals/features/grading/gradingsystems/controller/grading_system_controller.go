// file: internals/features/grading/gradingsystems/controller/grading_system_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/grading/gradingsystems/dto"
	model "sekolahku_backend/internals/features/grading/gradingsystems/model"
	service "sekolahku_backend/internals/features/grading/gradingsystems/service"
	helper "sekolahku_backend/internals/helpers"
)

type GradingSystemController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.GradingSystemService
}

func NewGradingSystemController(db *gorm.DB) *GradingSystemController {
	return &GradingSystemController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewGradingSystemService(db),
	}
}

func (ctl *GradingSystemController) mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrWeightsInvalid):
		return helper.JsonValidationError(c, map[string][]string{
			"weights": {"total persentase WW + PT + QA harus 100"},
		})
	case errors.Is(err, service.ErrDuplicateName):
		return helper.JsonError(c, fiber.StatusConflict, "Nama grading system sudah dipakai")
	case errors.Is(err, service.ErrActiveDeletion):
		return helper.JsonError(c, fiber.StatusConflict, "Grading system aktif tidak boleh dihapus")
	case errors.Is(err, service.ErrActiveInconsistent):
		// pelanggaran invariant — surface keras, jangan pilih salah satu
		return helper.JsonError(c, fiber.StatusInternalServerError,
			"Konsistensi grading system aktif rusak, periksa data")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Grading system tidak ditemukan")
	default:
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama grading system sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Operasi grading system gagal")
	}
}

func (ctl *GradingSystemController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradingSystemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	row := req.ToModel()
	if err := ctl.Service.Create(&row); err != nil {
		return ctl.mapServiceError(c, err)
	}
	return helper.JsonCreated(c, "Grading system berhasil dibuat (non-aktif)", dto.FromModel(row))
}

func (ctl *GradingSystemController) List(c *fiber.Ctx) error {
	var rows []model.GradingSystemModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("grading_system_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat grading systems")
	}
	return helper.JsonOK(c, "ok", dto.FromModels(rows))
}

func (ctl *GradingSystemController) GetActive(c *fiber.Ctx) error {
	row, err := ctl.Service.GetActive()
	if err != nil {
		return ctl.mapServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*row))
}

func (ctl *GradingSystemController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}

	var req dto.UpdateGradingSystemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	row, err := ctl.Service.Update(id, func(m *model.GradingSystemModel) {
		if req.GradingSystemName != nil {
			m.GradingSystemName = *req.GradingSystemName
		}
		if req.GradingSystemWrittenWorkPercent != nil {
			m.GradingSystemWrittenWorkPercent = *req.GradingSystemWrittenWorkPercent
		}
		if req.GradingSystemPerformanceTaskPercent != nil {
			m.GradingSystemPerformanceTaskPercent = *req.GradingSystemPerformanceTaskPercent
		}
		if req.GradingSystemQuarterlyAssessmentPercent != nil {
			m.GradingSystemQuarterlyAssessmentPercent = *req.GradingSystemQuarterlyAssessmentPercent
		}
	})
	if err != nil {
		return ctl.mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Grading system berhasil diperbarui", dto.FromModel(*row))
}

func (ctl *GradingSystemController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}
	row, err := ctl.Service.Activate(id)
	if err != nil {
		return ctl.mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Grading system diaktifkan", dto.FromModel(*row))
}

func (ctl *GradingSystemController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}
	if err := ctl.Service.Delete(id); err != nil {
		return ctl.mapServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Grading system dihapus", fiber.Map{"grading_system_id": id})
}
