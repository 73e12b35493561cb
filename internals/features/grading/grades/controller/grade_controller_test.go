// file: internals/features/grading/grades/controller/grade_controller_test.go
package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sekolahku_backend/internals/constants"
)

// newGradeTestApp: controller di atas sqlmock, dengan locals token sudah terisi
// seolah sudah lewat auth middleware.
func newGradeTestApp(t *testing.T, role string, userID uuid.UUID) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	ctl := NewGradeController(db)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		c.Locals("role", role)
		return c.Next()
	})
	app.Get("/api/grades/:id", ctl.GetByID)
	return app, mock
}

var gradeColumns = []string{
	"grade_id", "grade_student_id", "grade_subject_id", "grade_quarter",
	"grade_final_grade", "grade_remarks", "grade_is_overridden",
	"grade_created_at", "grade_updated_at",
}

func addGradeRow(rows *sqlmock.Rows, gradeID, studentID uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(gradeID.String(), studentID.String(), uuid.New().String(),
		int16(1), 84.83, "Very Satisfactory", false, now, now)
}

func TestGradeGetByID_AdvisorOutsideScopeGets403(t *testing.T) {
	advisorID := uuid.New()
	gradeID := uuid.New()
	app, mock := newGradeTestApp(t, constants.RoleAdvisor, advisorID)

	mock.ExpectQuery(`SELECT \* FROM "grades"`).
		WillReturnRows(addGradeRow(sqlmock.NewRows(gradeColumns), gradeID, uuid.New()))
	// advisor tanpa assignment: cakupannya kosong
	mock.ExpectQuery(`SELECT \* FROM "advisory_assignments"`).
		WillReturnRows(sqlmock.NewRows([]string{"advisory_assignment_id"}))

	req := httptest.NewRequest(http.MethodGet, "/api/grades/"+gradeID.String(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeGetByID_AdvisorInScopeGets200(t *testing.T) {
	advisorID := uuid.New()
	gradeID := uuid.New()
	studentID := uuid.New()
	app, mock := newGradeTestApp(t, constants.RoleAdvisor, advisorID)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "grades"`).
		WillReturnRows(addGradeRow(sqlmock.NewRows(gradeColumns), gradeID, studentID))
	mock.ExpectQuery(`SELECT \* FROM "advisory_assignments"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"advisory_assignment_id", "advisory_assignment_advisor_id",
			"advisory_assignment_year_level", "advisory_assignment_section",
			"advisory_assignment_strands", "advisory_assignment_created_at",
		}).AddRow(uuid.New().String(), advisorID.String(), int16(10), "A", "{}", now))
	mock.ExpectQuery(`SELECT "student_id" FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id"}).AddRow(studentID.String()))

	req := httptest.NewRequest(http.MethodGet, "/api/grades/"+gradeID.String(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeGetByID_AdminBypassesScoping(t *testing.T) {
	gradeID := uuid.New()
	app, mock := newGradeTestApp(t, constants.RoleAdmin, uuid.New())

	mock.ExpectQuery(`SELECT \* FROM "grades"`).
		WillReturnRows(addGradeRow(sqlmock.NewRows(gradeColumns), gradeID, uuid.New()))

	req := httptest.NewRequest(http.MethodGet, "/api/grades/"+gradeID.String(), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
