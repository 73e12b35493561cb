// file: internals/features/grading/gradingsystems/dto/grading_system_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/grading/gradingsystems/model"
)

type CreateGradingSystemRequest struct {
	GradingSystemName string `json:"grading_system_name" validate:"required,max=120"`

	GradingSystemWrittenWorkPercent         float64 `json:"grading_system_written_work_percent" validate:"gte=0,lte=100"`
	GradingSystemPerformanceTaskPercent     float64 `json:"grading_system_performance_task_percent" validate:"gte=0,lte=100"`
	GradingSystemQuarterlyAssessmentPercent float64 `json:"grading_system_quarterly_assessment_percent" validate:"gte=0,lte=100"`
}

func (r *CreateGradingSystemRequest) Normalize() {
	r.GradingSystemName = strings.TrimSpace(r.GradingSystemName)
}

func (r CreateGradingSystemRequest) ToModel() model.GradingSystemModel {
	return model.GradingSystemModel{
		GradingSystemName:                       r.GradingSystemName,
		GradingSystemWrittenWorkPercent:         r.GradingSystemWrittenWorkPercent,
		GradingSystemPerformanceTaskPercent:     r.GradingSystemPerformanceTaskPercent,
		GradingSystemQuarterlyAssessmentPercent: r.GradingSystemQuarterlyAssessmentPercent,
	}
}

type UpdateGradingSystemRequest struct {
	GradingSystemName *string `json:"grading_system_name" validate:"omitempty,max=120"`

	GradingSystemWrittenWorkPercent         *float64 `json:"grading_system_written_work_percent" validate:"omitempty,gte=0,lte=100"`
	GradingSystemPerformanceTaskPercent     *float64 `json:"grading_system_performance_task_percent" validate:"omitempty,gte=0,lte=100"`
	GradingSystemQuarterlyAssessmentPercent *float64 `json:"grading_system_quarterly_assessment_percent" validate:"omitempty,gte=0,lte=100"`
}

type GradingSystemResponse struct {
	GradingSystemID   uuid.UUID `json:"grading_system_id"`
	GradingSystemName string    `json:"grading_system_name"`

	GradingSystemWrittenWorkPercent         float64 `json:"grading_system_written_work_percent"`
	GradingSystemPerformanceTaskPercent     float64 `json:"grading_system_performance_task_percent"`
	GradingSystemQuarterlyAssessmentPercent float64 `json:"grading_system_quarterly_assessment_percent"`

	GradingSystemIsActive  bool      `json:"grading_system_is_active"`
	GradingSystemCreatedAt time.Time `json:"grading_system_created_at"`
	GradingSystemUpdatedAt time.Time `json:"grading_system_updated_at"`
}

func FromModel(m model.GradingSystemModel) GradingSystemResponse {
	return GradingSystemResponse{
		GradingSystemID:                         m.GradingSystemID,
		GradingSystemName:                       m.GradingSystemName,
		GradingSystemWrittenWorkPercent:         m.GradingSystemWrittenWorkPercent,
		GradingSystemPerformanceTaskPercent:     m.GradingSystemPerformanceTaskPercent,
		GradingSystemQuarterlyAssessmentPercent: m.GradingSystemQuarterlyAssessmentPercent,
		GradingSystemIsActive:                   m.GradingSystemIsActive,
		GradingSystemCreatedAt:                  m.GradingSystemCreatedAt,
		GradingSystemUpdatedAt:                  m.GradingSystemUpdatedAt,
	}
}

func FromModels(ms []model.GradingSystemModel) []GradingSystemResponse {
	out := make([]GradingSystemResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
