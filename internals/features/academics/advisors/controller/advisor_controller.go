// file: internals/features/academics/advisors/controller/advisor_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/academics/advisors/dto"
	model "sekolahku_backend/internals/features/academics/advisors/model"
	helper "sekolahku_backend/internals/helpers"
)

type AdvisorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAdvisorController(db *gorm.DB) *AdvisorController {
	return &AdvisorController{DB: db, Validator: validator.New()}
}

func (ctl *AdvisorController) Create(c *fiber.Ctx) error {
	var req dto.CreateAdvisorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.AdvisorPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	row := model.AdvisorModel{
		AdvisorEmail:        req.AdvisorEmail,
		AdvisorFirstName:    req.AdvisorFirstName,
		AdvisorLastName:     req.AdvisorLastName,
		AdvisorPasswordHash: string(hash),
		AdvisorIsActive:     true,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email advisor sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan advisor")
	}
	return helper.JsonCreated(c, "Advisor berhasil dibuat", dto.FromModel(row))
}

func (ctl *AdvisorController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&model.AdvisorModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung advisor")
	}

	var rows []model.AdvisorModel
	if err := q.Order("advisor_last_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat advisor")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *AdvisorController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}

	var req dto.UpdateAdvisorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var row model.AdvisorModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "advisor_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Advisor tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat advisor")
	}

	if req.AdvisorFirstName != nil {
		row.AdvisorFirstName = *req.AdvisorFirstName
	}
	if req.AdvisorLastName != nil {
		row.AdvisorLastName = *req.AdvisorLastName
	}
	if req.AdvisorIsActive != nil {
		row.AdvisorIsActive = *req.AdvisorIsActive
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan advisor")
	}
	return helper.JsonUpdated(c, "Advisor berhasil diperbarui", dto.FromModel(row))
}

/* ==============================
   Assignments
============================== */

func (ctl *AdvisorController) CreateAssignment(c *fiber.Ctx) error {
	advisorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}

	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// pastikan advisornya ada
	var advisor model.AdvisorModel
	if err := ctl.DB.WithContext(c.Context()).First(&advisor, "advisor_id = ?", advisorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Advisor tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat advisor")
	}

	row := req.ToModel(advisorID)
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Assignment untuk kombinasi year level + section ini sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan assignment")
	}
	return helper.JsonCreated(c, "Assignment berhasil dibuat", dto.AssignmentFromModel(row))
}

func (ctl *AdvisorController) ListAssignments(c *fiber.Ctx) error {
	advisorID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}
	var rows []model.AdvisoryAssignmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("advisory_assignment_advisor_id = ?", advisorID).
		Order("advisory_assignment_year_level ASC, advisory_assignment_section ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat assignments")
	}
	return helper.JsonOK(c, "ok", dto.AssignmentsFromModels(rows))
}

func (ctl *AdvisorController) DeleteAssignment(c *fiber.Ctx) error {
	assignmentID, err := uuid.Parse(c.Params("assignment_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}
	res := ctl.DB.WithContext(c.Context()).
		Delete(&model.AdvisoryAssignmentModel{}, "advisory_assignment_id = ?", assignmentID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus assignment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Assignment dihapus", fiber.Map{"advisory_assignment_id": assignmentID})
}
