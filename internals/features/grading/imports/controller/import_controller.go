// file: internals/features/grading/imports/controller/import_controller.go
package controller

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	gradeModel "sekolahku_backend/internals/features/grading/grades/model"
	importSvc "sekolahku_backend/internals/features/grading/imports/service"
	helper "sekolahku_backend/internals/helpers"
)

// Batas ukuran file upload (5 MB cukup untuk ±50rb baris nilai).
const maxUploadBytes = 5 << 20

type ImportController struct {
	DB      *gorm.DB
	Service *importSvc.ImportService
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{
		DB:      db,
		Service: importSvc.NewImportService(db),
	}
}

/* ==============================
   IMPORT (CSV / XLSX)
============================== */

func (ctl *ImportController) ImportGrades(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Lampirkan file pada field 'file'")
	}
	if fh.Size > maxUploadBytes {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "File melebihi batas 5 MB")
	}

	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak bisa dibuka")
	}
	defer f.Close()

	var (
		rows      []importSvc.ImportRow
		parseErrs []importSvc.RowError
	)
	switch strings.ToLower(filepath.Ext(fh.Filename)) {
	case ".csv":
		rows, parseErrs, err = importSvc.ParseCSV(f)
	case ".xlsx":
		rows, parseErrs, err = importSvc.ParseXLSX(f)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Format file harus .csv atau .xlsx")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	res, err := ctl.Service.Apply(rows, parseErrs)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Import gagal dijalankan")
	}

	log.Printf("[IMPORT] 📥 %s: imported=%d failed=%d", fh.Filename, res.Imported, res.Failed)
	return helper.JsonOK(c, fmt.Sprintf("Import selesai: %d masuk, %d gagal", res.Imported, res.Failed), res)
}

/* ==============================
   EXPORT (XLSX)
============================== */

// ExportGrades mengunduh lembar nilai kelas dalam XLSX. Header kolom sama
// dengan format import supaya hasil ekspor bisa diedit lalu diunggah balik.
func (ctl *ImportController) ExportGrades(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).
		Table("grades").
		Joins("JOIN students ON students.student_id = grades.grade_student_id").
		Joins("JOIN subjects ON subjects.subject_id = grades.grade_subject_id").
		Where("grades.grade_deleted_at IS NULL").
		Where("students.student_deleted_at IS NULL").
		Where("subjects.subject_deleted_at IS NULL")

	if yl := c.Query("year_level"); yl != "" {
		q = q.Where("students.student_year_level = ?", yl)
	}
	if sec := c.Query("section"); sec != "" {
		q = q.Where("LOWER(students.student_section) = LOWER(?)", sec)
	}
	if qt := c.Query("quarter"); qt != "" {
		quarter, err := gradeModel.ParseQuarter(qt)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		q = q.Where("grades.grade_quarter = ?", quarter)
	}

	type exportRow struct {
		StudentNumber       string
		SubjectCode         string
		Quarter             int16
		WrittenWork         *float64
		PerformanceTask     *float64
		QuarterlyAssessment *float64
		FinalGrade          float64
		Remarks             string
	}
	var rows []exportRow
	if err := q.Select(`students.student_number AS student_number,
			subjects.subject_code AS subject_code,
			grades.grade_quarter AS quarter,
			grades.grade_written_work AS written_work,
			grades.grade_performance_task AS performance_task,
			grades.grade_quarterly_assessment AS quarterly_assessment,
			grades.grade_final_grade AS final_grade,
			grades.grade_remarks AS remarks`).
		Order("students.student_number ASC, subjects.subject_code ASC, grades.grade_quarter ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data nilai")
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := append(append([]string{}, importSvc.RequiredHeaders...), "final_grade", "remarks")
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"1", h)
	}

	for i, r := range rows {
		rowNum := i + 2
		set := func(col int, v interface{}) {
			name, _ := excelize.ColumnNumberToName(col)
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", name, rowNum), v)
		}
		set(1, r.StudentNumber)
		set(2, r.SubjectCode)
		set(3, int(r.Quarter))
		if r.WrittenWork != nil {
			set(4, *r.WrittenWork)
		}
		if r.PerformanceTask != nil {
			set(5, *r.PerformanceTask)
		}
		if r.QuarterlyAssessment != nil {
			set(6, *r.QuarterlyAssessment)
		}
		set(7, r.FinalGrade)
		set(8, r.Remarks)
	}

	filename := fmt.Sprintf("grade-sheet-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membentuk file XLSX")
	}
	return c.SendStream(buf)
}
