// file: internals/features/grading/grades/dto/grade_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/grading/grades/model"
)

/* ==============================
   CREATE (POST /grades)
============================== */

type CreateGradeRequest struct {
	GradeStudentID uuid.UUID `json:"grade_student_id" validate:"required"`
	GradeSubjectID uuid.UUID `json:"grade_subject_id" validate:"required"`
	GradeQuarter   int16     `json:"grade_quarter" validate:"required,min=1,max=4"`

	GradeWrittenWork         *float64 `json:"grade_written_work" validate:"omitempty,gte=0,lte=100"`
	GradePerformanceTask     *float64 `json:"grade_performance_task" validate:"omitempty,gte=0,lte=100"`
	GradeQuarterlyAssessment *float64 `json:"grade_quarterly_assessment" validate:"omitempty,gte=0,lte=100"`

	// Override manual: final/remarks diisi berarti dikunci (is_overridden).
	GradeFinalGrade *float64 `json:"grade_final_grade" validate:"omitempty,gte=0,lte=100"`
	GradeRemarks    *string  `json:"grade_remarks" validate:"omitempty,max=40"`
}

func (r CreateGradeRequest) ToModel() model.GradeModel {
	return model.GradeModel{
		GradeStudentID:           r.GradeStudentID,
		GradeSubjectID:           r.GradeSubjectID,
		GradeQuarter:             r.GradeQuarter,
		GradeWrittenWork:         r.GradeWrittenWork,
		GradePerformanceTask:     r.GradePerformanceTask,
		GradeQuarterlyAssessment: r.GradeQuarterlyAssessment,
	}
}

/* ==============================
   UPDATE (PATCH /grades/:id)
============================== */

type UpdateGradeRequest struct {
	GradeWrittenWork         *float64 `json:"grade_written_work" validate:"omitempty,gte=0,lte=100"`
	GradePerformanceTask     *float64 `json:"grade_performance_task" validate:"omitempty,gte=0,lte=100"`
	GradeQuarterlyAssessment *float64 `json:"grade_quarterly_assessment" validate:"omitempty,gte=0,lte=100"`

	GradeFinalGrade *float64 `json:"grade_final_grade" validate:"omitempty,gte=0,lte=100"`
	GradeRemarks    *string  `json:"grade_remarks" validate:"omitempty,max=40"`

	// false eksplisit = buka kunci override, nilai dihitung ulang dari komponen
	GradeIsOverridden *bool `json:"grade_is_overridden"`
}

/* ==============================
   RESPONSE
============================== */

type GradeResponse struct {
	GradeID        uuid.UUID `json:"grade_id"`
	GradeStudentID uuid.UUID `json:"grade_student_id"`
	GradeSubjectID uuid.UUID `json:"grade_subject_id"`
	GradeQuarter   int16     `json:"grade_quarter"`
	QuarterLabel   string    `json:"quarter_label"`

	GradeWrittenWork         *float64 `json:"grade_written_work,omitempty"`
	GradePerformanceTask     *float64 `json:"grade_performance_task,omitempty"`
	GradeQuarterlyAssessment *float64 `json:"grade_quarterly_assessment,omitempty"`

	GradeFinalGrade   float64 `json:"grade_final_grade"`
	GradeRemarks      string  `json:"grade_remarks"`
	GradeIsOverridden bool    `json:"grade_is_overridden"`

	GradeCreatedAt time.Time `json:"grade_created_at"`
	GradeUpdatedAt time.Time `json:"grade_updated_at"`
}

func FromModel(m model.GradeModel) GradeResponse {
	return GradeResponse{
		GradeID:                  m.GradeID,
		GradeStudentID:           m.GradeStudentID,
		GradeSubjectID:           m.GradeSubjectID,
		GradeQuarter:             m.GradeQuarter,
		QuarterLabel:             model.QuarterLabel(m.GradeQuarter),
		GradeWrittenWork:         m.GradeWrittenWork,
		GradePerformanceTask:     m.GradePerformanceTask,
		GradeQuarterlyAssessment: m.GradeQuarterlyAssessment,
		GradeFinalGrade:          m.GradeFinalGrade,
		GradeRemarks:             m.GradeRemarks,
		GradeIsOverridden:        m.GradeIsOverridden,
		GradeCreatedAt:           m.GradeCreatedAt,
		GradeUpdatedAt:           m.GradeUpdatedAt,
	}
}

func FromModels(ms []model.GradeModel) []GradeResponse {
	out := make([]GradeResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
