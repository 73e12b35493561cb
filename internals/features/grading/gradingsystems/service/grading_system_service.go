// file: internals/features/grading/gradingsystems/service/grading_system_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	gradeSvc "sekolahku_backend/internals/features/grading/grades/service"
	model "sekolahku_backend/internals/features/grading/gradingsystems/model"
)

var (
	ErrWeightsInvalid = errors.New("total persentase bobot harus 100")
	ErrDuplicateName  = errors.New("nama grading system sudah dipakai")
	ErrActiveDeletion = errors.New("grading system aktif tidak boleh dihapus")

	// ErrActiveInconsistent: nol atau lebih dari satu baris aktif — pelanggaran
	// invariant yang harus di-surface, bukan diperbaiki diam-diam.
	ErrActiveInconsistent = errors.New("konsistensi grading system aktif rusak")
)

type GradingSystemService struct {
	DB *gorm.DB
}

func NewGradingSystemService(db *gorm.DB) *GradingSystemService {
	return &GradingSystemService{DB: db}
}

// Create: config baru selalu lahir non-aktif.
func (s *GradingSystemService) Create(row *model.GradingSystemModel) error {
	if !gradeSvc.ValidateWeights(
		row.GradingSystemWrittenWorkPercent,
		row.GradingSystemPerformanceTaskPercent,
		row.GradingSystemQuarterlyAssessmentPercent,
	) {
		return ErrWeightsInvalid
	}

	var count int64
	if err := s.DB.Model(&model.GradingSystemModel{}).
		Where("grading_system_name = ?", row.GradingSystemName).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateName
	}

	row.GradingSystemIsActive = false
	return s.DB.Create(row).Error
}

func (s *GradingSystemService) Update(id uuid.UUID, apply func(*model.GradingSystemModel)) (*model.GradingSystemModel, error) {
	var row model.GradingSystemModel
	if err := s.DB.First(&row, "grading_system_id = ?", id).Error; err != nil {
		return nil, err
	}
	apply(&row)
	if !gradeSvc.ValidateWeights(
		row.GradingSystemWrittenWorkPercent,
		row.GradingSystemPerformanceTaskPercent,
		row.GradingSystemQuarterlyAssessmentPercent,
	) {
		return nil, ErrWeightsInvalid
	}
	if err := s.DB.Save(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Activate: swap dalam satu transaksi — deactivate semua lalu aktifkan target.
// Partial unique index ux_grading_systems_one_active menjaga pembaca tidak
// pernah melihat dua baris aktif; transaksi menjaga tidak ada jendela nol-aktif.
func (s *GradingSystemService) Activate(id uuid.UUID) (*model.GradingSystemModel, error) {
	var row model.GradingSystemModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, "grading_system_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.GradingSystemModel{}).
			Where("grading_system_is_active = ?", true).
			Update("grading_system_is_active", false).Error; err != nil {
			return err
		}
		row.GradingSystemIsActive = true
		return tx.Save(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Delete: tolak bila target sedang aktif.
func (s *GradingSystemService) Delete(id uuid.UUID) error {
	var row model.GradingSystemModel
	if err := s.DB.First(&row, "grading_system_id = ?", id).Error; err != nil {
		return err
	}
	if row.GradingSystemIsActive {
		return ErrActiveDeletion
	}
	return s.DB.Delete(&row).Error
}

// GetActive mengembalikan satu-satunya config aktif. Nol atau lebih dari satu
// baris aktif dibalas ErrActiveInconsistent.
func (s *GradingSystemService) GetActive() (*model.GradingSystemModel, error) {
	var rows []model.GradingSystemModel
	if err := s.DB.Where("grading_system_is_active = ?", true).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) != 1 {
		return nil, ErrActiveInconsistent
	}
	return &rows[0], nil
}

// ActiveWeights: bobot dari config aktif, fallback ke bobot baku 25/50/25 bila
// belum ada yang aktif (mis. fresh install sebelum seeding).
func (s *GradingSystemService) ActiveWeights() gradeSvc.Weights {
	active, err := s.GetActive()
	if err != nil {
		return gradeSvc.DefaultWeights()
	}
	return gradeSvc.Weights{
		WrittenWork:         active.GradingSystemWrittenWorkPercent,
		PerformanceTask:     active.GradingSystemPerformanceTaskPercent,
		QuarterlyAssessment: active.GradingSystemQuarterlyAssessmentPercent,
	}
}
