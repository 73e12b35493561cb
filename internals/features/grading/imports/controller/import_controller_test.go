// file: internals/features/grading/imports/controller/import_controller_test.go
package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newImportTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	ctl := NewImportController(db)
	app := fiber.New()
	app.Get("/api/grades/export", ctl.ExportGrades)
	return app, mock
}

// Ekspor hanya boleh memuat baris hidup: grades, students, DAN subjects yang
// soft-deleted semuanya tersaring. Ekspektasi query di bawah gagal match bila
// salah satu filter hilang.
func TestExportGrades_FiltersSoftDeletedJoins(t *testing.T) {
	app, mock := newImportTestApp(t)

	mock.ExpectQuery(`grades\.grade_deleted_at IS NULL AND students\.student_deleted_at IS NULL AND subjects\.subject_deleted_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{
			"student_number", "subject_code", "quarter",
			"written_work", "performance_task", "quarterly_assessment",
			"final_grade", "remarks",
		}).AddRow("S-001", "MATH10", int16(1), 80.0, 90.0, 85.0, 85.83, "Very Satisfactory"))

	req := httptest.NewRequest(http.MethodGet, "/api/grades/export", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "grade-sheet-")
	assert.NoError(t, mock.ExpectationsWereMet())

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()
	sheet := f.GetSheetName(0)

	got, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "S-001", got)
}
