package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/academics/subjects/dto"
	model "sekolahku_backend/internals/features/academics/subjects/model"
	helper "sekolahku_backend/internals/helpers"
)

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validator: validator.New()}
}

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	row := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode mapel sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan mapel")
	}
	return helper.JsonCreated(c, "Mapel berhasil dibuat", dto.FromModel(row))
}

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&model.SubjectModel{})
	if yl := c.Query("year_level"); yl != "" {
		n, err := strconv.Atoi(yl)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "year_level bukan angka")
		}
		q = q.Where("subject_year_level = ?", n)
	}
	if strand := strings.TrimSpace(c.Query("strand")); strand != "" {
		q = q.Where("lower(subject_strand) = lower(?)", strand)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung mapel")
	}

	var rows []model.SubjectModel
	if err := q.Order("subject_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat mapel")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var row model.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "subject_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat mapel")
	}

	if req.SubjectName != nil {
		row.SubjectName = strings.TrimSpace(*req.SubjectName)
	}
	if req.SubjectYearLevel != nil {
		row.SubjectYearLevel = *req.SubjectYearLevel
	}
	if req.SubjectStrand != nil {
		s := strings.ToUpper(strings.TrimSpace(*req.SubjectStrand))
		if s == "" {
			row.SubjectStrand = nil
		} else {
			row.SubjectStrand = &s
		}
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan mapel")
	}
	return helper.JsonUpdated(c, "Mapel berhasil diperbarui", dto.FromModel(row))
}

func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus mapel")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Mapel tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Mapel dihapus", fiber.Map{"subject_id": id})
}
