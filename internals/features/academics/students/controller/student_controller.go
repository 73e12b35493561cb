// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scopeSvc "sekolahku_backend/internals/features/academics/advisors/service"
	dto "sekolahku_backend/internals/features/academics/students/dto"
	model "sekolahku_backend/internals/features/academics/students/model"
	helper "sekolahku_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scope     *scopeSvc.ScopeService
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
		Scope:     scopeSvc.NewScopeService(db),
	}
}

func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
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
			return helper.JsonError(c, fiber.StatusConflict, "Nomor siswa sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan siswa")
	}
	return helper.JsonCreated(c, "Siswa berhasil didaftarkan", dto.FromModel(row))
}

func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&model.StudentModel{})

	if yl := c.Query("year_level"); yl != "" {
		n, err := strconv.Atoi(yl)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "year_level bukan angka")
		}
		q = q.Where("student_year_level = ?", n)
	}
	if sec := strings.TrimSpace(c.Query("section")); sec != "" {
		q = q.Where("lower(student_section) = lower(?)", sec)
	}
	if strand := strings.TrimSpace(c.Query("strand")); strand != "" {
		q = q.Where("lower(student_strand) = lower(?)", strand)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"lower(student_first_name) LIKE ? OR lower(student_last_name) LIKE ? OR lower(student_number) LIKE ?",
			like, like, like,
		)
	}

	// Advisor: batasi ke cakupan assignment (filter di query, bukan di memori)
	if !helper.IsAdmin(c) {
		advisorID, err := helper.GetAdvisorIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
		}
		assignments, err := ctl.Scope.AssignmentsOf(advisorID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat cakupan advisor")
		}
		q = q.Scopes(scopeSvc.ScopeStudents(assignments))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	var rows []model.StudentModel
	if err := q.Order("student_last_name ASC, student_first_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat siswa")
	}

	return helper.JsonList(c, "ok", dto.FromModels(rows),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}

	var row model.StudentModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "student_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat siswa")
	}

	if !helper.IsAdmin(c) {
		advisorID, err := helper.GetAdvisorIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
		}
		assignments, err := ctl.Scope.AssignmentsOf(advisorID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat cakupan advisor")
		}
		if !scopeSvc.IsAssignedToAny(row, assignments) {
			return helper.JsonError(c, fiber.StatusForbidden, "Siswa di luar cakupan advisory Anda")
		}
	}

	return helper.JsonOK(c, "ok", dto.FromModel(row))
}

func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var row model.StudentModel
	if err := ctl.DB.WithContext(c.Context()).First(&row, "student_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat siswa")
	}

	if req.StudentFirstName != nil {
		row.StudentFirstName = strings.TrimSpace(*req.StudentFirstName)
	}
	if req.StudentLastName != nil {
		row.StudentLastName = strings.TrimSpace(*req.StudentLastName)
	}
	if req.StudentYearLevel != nil {
		row.StudentYearLevel = *req.StudentYearLevel
	}
	if req.StudentSection != nil {
		row.StudentSection = strings.TrimSpace(*req.StudentSection)
	}
	if req.StudentStrand != nil {
		s := strings.ToUpper(strings.TrimSpace(*req.StudentStrand))
		if s == "" {
			row.StudentStrand = nil
		} else {
			row.StudentStrand = &s
		}
	}
	if req.StudentGuardianName != nil {
		row.StudentGuardianName = req.StudentGuardianName
	}
	if req.StudentGuardianPhone != nil {
		row.StudentGuardianPhone = req.StudentGuardianPhone
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan siswa")
	}
	return helper.JsonUpdated(c, "Siswa berhasil diperbarui", dto.FromModel(row))
}

func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID bukan UUID")
	}
	res := ctl.DB.WithContext(c.Context()).Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus siswa")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Siswa dihapus", fiber.Map{"student_id": id})
}
