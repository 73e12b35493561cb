package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/academics/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectCode string `json:"subject_code" validate:"required,max=24"`
	SubjectName string `json:"subject_name" validate:"required,max=120"`

	SubjectYearLevel int16   `json:"subject_year_level" validate:"required,min=7,max=12"`
	SubjectStrand    *string `json:"subject_strand" validate:"omitempty,max=20"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.SubjectCode = strings.ToUpper(strings.TrimSpace(r.SubjectCode))
	r.SubjectName = strings.TrimSpace(r.SubjectName)
	if r.SubjectStrand != nil {
		s := strings.ToUpper(strings.TrimSpace(*r.SubjectStrand))
		if s == "" {
			r.SubjectStrand = nil
		} else {
			r.SubjectStrand = &s
		}
	}
}

func (r CreateSubjectRequest) ToModel() model.SubjectModel {
	return model.SubjectModel{
		SubjectCode:      r.SubjectCode,
		SubjectName:      r.SubjectName,
		SubjectYearLevel: r.SubjectYearLevel,
		SubjectStrand:    r.SubjectStrand,
	}
}

type UpdateSubjectRequest struct {
	SubjectName      *string `json:"subject_name" validate:"omitempty,max=120"`
	SubjectYearLevel *int16  `json:"subject_year_level" validate:"omitempty,min=7,max=12"`
	SubjectStrand    *string `json:"subject_strand" validate:"omitempty,max=20"`
}

type SubjectResponse struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	SubjectCode string    `json:"subject_code"`
	SubjectName string    `json:"subject_name"`

	SubjectYearLevel int16   `json:"subject_year_level"`
	SubjectStrand    *string `json:"subject_strand,omitempty"`

	SubjectCreatedAt time.Time `json:"subject_created_at"`
}

func FromModel(m model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:        m.SubjectID,
		SubjectCode:      m.SubjectCode,
		SubjectName:      m.SubjectName,
		SubjectYearLevel: m.SubjectYearLevel,
		SubjectStrand:    m.SubjectStrand,
		SubjectCreatedAt: m.SubjectCreatedAt,
	}
}

func FromModels(ms []model.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
