// file: internals/features/grading/gradingsystems/service/grading_system_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gradeSvc "sekolahku_backend/internals/features/grading/grades/service"
	model "sekolahku_backend/internals/features/grading/gradingsystems/model"
)

// newServiceWithMock: gorm di atas sqlmock — cukup untuk menguji cabang
// invariant lifecycle tanpa postgres hidup.
func newServiceWithMock(t *testing.T) (*GradingSystemService, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return NewGradingSystemService(db), mock
}

var gradingSystemColumns = []string{
	"grading_system_id",
	"grading_system_name",
	"grading_system_written_work_percent",
	"grading_system_performance_task_percent",
	"grading_system_quarterly_assessment_percent",
	"grading_system_is_active",
	"grading_system_created_at",
	"grading_system_updated_at",
}

func addGradingSystemRow(rows *sqlmock.Rows, id uuid.UUID, name string, active bool) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id.String(), name, 25.0, 50.0, 25.0, active, now, now)
}

func TestCreate_RejectsInvalidWeights(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	err := svc.Create(&model.GradingSystemModel{
		GradingSystemName:                       "Timpang",
		GradingSystemWrittenWorkPercent:         30,
		GradingSystemPerformanceTaskPercent:     30,
		GradingSystemQuarterlyAssessmentPercent: 30,
	})
	assert.ErrorIs(t, err, ErrWeightsInvalid)

	// tidak boleh ada query sama sekali: validasi gagal sebelum sentuh DB
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_RejectsDuplicateName(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "grading_systems"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := svc.Create(&model.GradingSystemModel{
		GradingSystemName:                       "Standard DepEd",
		GradingSystemWrittenWorkPercent:         25,
		GradingSystemPerformanceTaskPercent:     50,
		GradingSystemQuarterlyAssessmentPercent: 25,
	})
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_RejectsActiveConfig(t *testing.T) {
	svc, mock := newServiceWithMock(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "grading_systems"`).
		WillReturnRows(addGradingSystemRow(sqlmock.NewRows(gradingSystemColumns), id, "Standard DepEd", true))

	err := svc.Delete(id)
	assert.ErrorIs(t, err, ErrActiveDeletion)

	// tidak ada DELETE/UPDATE yang sempat jalan
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_SoftDeletesInactiveConfig(t *testing.T) {
	svc, mock := newServiceWithMock(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "grading_systems"`).
		WillReturnRows(addGradingSystemRow(sqlmock.NewRows(gradingSystemColumns), id, "Eksperimen", false))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "grading_systems" SET "grading_system_deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActive_FailsWhenNoneActive(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	mock.ExpectQuery(`SELECT \* FROM "grading_systems"`).
		WillReturnRows(sqlmock.NewRows(gradingSystemColumns))

	got, err := svc.GetActive()
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrActiveInconsistent)
}

func TestGetActive_FailsWhenMultipleActive(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	rows := sqlmock.NewRows(gradingSystemColumns)
	rows = addGradingSystemRow(rows, uuid.New(), "Standard DepEd", true)
	rows = addGradingSystemRow(rows, uuid.New(), "Eksperimen", true)
	mock.ExpectQuery(`SELECT \* FROM "grading_systems"`).WillReturnRows(rows)

	got, err := svc.GetActive()
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrActiveInconsistent)
}

func TestGetActive_ReturnsSingleActiveRow(t *testing.T) {
	svc, mock := newServiceWithMock(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "grading_systems"`).
		WillReturnRows(addGradingSystemRow(sqlmock.NewRows(gradingSystemColumns), id, "Standard DepEd", true))

	got, err := svc.GetActive()
	require.NoError(t, err)
	assert.Equal(t, id, got.GradingSystemID)
	assert.True(t, got.GradingSystemIsActive)
}

func TestActiveWeights_FallsBackToDefaultsWhenInconsistent(t *testing.T) {
	svc, mock := newServiceWithMock(t)

	mock.ExpectQuery(`SELECT \* FROM "grading_systems"`).
		WillReturnRows(sqlmock.NewRows(gradingSystemColumns))

	got := svc.ActiveWeights()
	assert.Equal(t, gradeSvc.DefaultWeights(), got)
}

func TestActivate_DeactivatesOthersBeforeActivatingTarget(t *testing.T) {
	svc, mock := newServiceWithMock(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "grading_systems"`).
		WillReturnRows(addGradingSystemRow(sqlmock.NewRows(gradingSystemColumns), id, "Eksperimen", false))
	// semua baris aktif dimatikan dulu, dalam transaksi yang sama
	mock.ExpectExec(`UPDATE "grading_systems" SET "grading_system_is_active"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "grading_systems" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := svc.Activate(id)
	require.NoError(t, err)
	assert.True(t, got.GradingSystemIsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
