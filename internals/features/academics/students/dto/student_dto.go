// file: internals/features/academics/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/academics/students/model"
)

type CreateStudentRequest struct {
	StudentNumber    string `json:"student_number" validate:"required,max=32"`
	StudentFirstName string `json:"student_first_name" validate:"required,max=80"`
	StudentLastName  string `json:"student_last_name" validate:"required,max=80"`

	StudentYearLevel int16   `json:"student_year_level" validate:"required,min=7,max=12"`
	StudentSection   string  `json:"student_section" validate:"required,max=60"`
	StudentStrand    *string `json:"student_strand" validate:"omitempty,max=20"`

	StudentGuardianName  *string `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentGuardianPhone *string `json:"student_guardian_phone" validate:"omitempty,max=30"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentNumber = strings.TrimSpace(r.StudentNumber)
	r.StudentFirstName = strings.TrimSpace(r.StudentFirstName)
	r.StudentLastName = strings.TrimSpace(r.StudentLastName)
	r.StudentSection = strings.TrimSpace(r.StudentSection)
	if r.StudentStrand != nil {
		s := strings.ToUpper(strings.TrimSpace(*r.StudentStrand))
		if s == "" {
			r.StudentStrand = nil
		} else {
			r.StudentStrand = &s
		}
	}
}

func (r CreateStudentRequest) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentNumber:        r.StudentNumber,
		StudentFirstName:     r.StudentFirstName,
		StudentLastName:      r.StudentLastName,
		StudentYearLevel:     r.StudentYearLevel,
		StudentSection:       r.StudentSection,
		StudentStrand:        r.StudentStrand,
		StudentGuardianName:  r.StudentGuardianName,
		StudentGuardianPhone: r.StudentGuardianPhone,
	}
}

type UpdateStudentRequest struct {
	StudentFirstName *string `json:"student_first_name" validate:"omitempty,max=80"`
	StudentLastName  *string `json:"student_last_name" validate:"omitempty,max=80"`

	StudentYearLevel *int16  `json:"student_year_level" validate:"omitempty,min=7,max=12"`
	StudentSection   *string `json:"student_section" validate:"omitempty,max=60"`
	StudentStrand    *string `json:"student_strand" validate:"omitempty,max=20"`

	StudentGuardianName  *string `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentGuardianPhone *string `json:"student_guardian_phone" validate:"omitempty,max=30"`
}

type StudentResponse struct {
	StudentID     uuid.UUID `json:"student_id"`
	StudentNumber string    `json:"student_number"`

	StudentFirstName string `json:"student_first_name"`
	StudentLastName  string `json:"student_last_name"`

	StudentYearLevel int16   `json:"student_year_level"`
	StudentSection   string  `json:"student_section"`
	StudentStrand    *string `json:"student_strand,omitempty"`

	StudentGuardianName  *string `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `json:"student_guardian_phone,omitempty"`

	StudentCreatedAt time.Time `json:"student_created_at"`
	StudentUpdatedAt time.Time `json:"student_updated_at"`
}

func FromModel(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:            m.StudentID,
		StudentNumber:        m.StudentNumber,
		StudentFirstName:     m.StudentFirstName,
		StudentLastName:      m.StudentLastName,
		StudentYearLevel:     m.StudentYearLevel,
		StudentSection:       m.StudentSection,
		StudentStrand:        m.StudentStrand,
		StudentGuardianName:  m.StudentGuardianName,
		StudentGuardianPhone: m.StudentGuardianPhone,
		StudentCreatedAt:     m.StudentCreatedAt,
		StudentUpdatedAt:     m.StudentUpdatedAt,
	}
}

func FromModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
