// file: internals/features/academics/advisors/dto/advisor_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "sekolahku_backend/internals/features/academics/advisors/model"
)

type CreateAdvisorRequest struct {
	AdvisorEmail     string `json:"advisor_email" validate:"required,email,max=120"`
	AdvisorFirstName string `json:"advisor_first_name" validate:"required,max=80"`
	AdvisorLastName  string `json:"advisor_last_name" validate:"required,max=80"`

	// Password awal; advisor menggantinya lewat identity service
	AdvisorPassword string `json:"advisor_password" validate:"required,min=8,max=72"`
}

func (r *CreateAdvisorRequest) Normalize() {
	r.AdvisorEmail = strings.ToLower(strings.TrimSpace(r.AdvisorEmail))
	r.AdvisorFirstName = strings.TrimSpace(r.AdvisorFirstName)
	r.AdvisorLastName = strings.TrimSpace(r.AdvisorLastName)
}

type UpdateAdvisorRequest struct {
	AdvisorFirstName *string `json:"advisor_first_name" validate:"omitempty,max=80"`
	AdvisorLastName  *string `json:"advisor_last_name" validate:"omitempty,max=80"`
	AdvisorIsActive  *bool   `json:"advisor_is_active"`
}

type AdvisorResponse struct {
	AdvisorID        uuid.UUID `json:"advisor_id"`
	AdvisorEmail     string    `json:"advisor_email"`
	AdvisorFirstName string    `json:"advisor_first_name"`
	AdvisorLastName  string    `json:"advisor_last_name"`
	AdvisorIsActive  bool      `json:"advisor_is_active"`
	AdvisorCreatedAt time.Time `json:"advisor_created_at"`
}

func FromModel(m model.AdvisorModel) AdvisorResponse {
	return AdvisorResponse{
		AdvisorID:        m.AdvisorID,
		AdvisorEmail:     m.AdvisorEmail,
		AdvisorFirstName: m.AdvisorFirstName,
		AdvisorLastName:  m.AdvisorLastName,
		AdvisorIsActive:  m.AdvisorIsActive,
		AdvisorCreatedAt: m.AdvisorCreatedAt,
	}
}

func FromModels(ms []model.AdvisorModel) []AdvisorResponse {
	out := make([]AdvisorResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

/* ==============================
   Advisory assignments
============================== */

type CreateAssignmentRequest struct {
	AdvisoryAssignmentYearLevel int16    `json:"advisory_assignment_year_level" validate:"required,min=7,max=12"`
	AdvisoryAssignmentSection   string   `json:"advisory_assignment_section" validate:"required,max=60"`
	AdvisoryAssignmentStrands   []string `json:"advisory_assignment_strands" validate:"omitempty,dive,max=20"`
}

func (r *CreateAssignmentRequest) Normalize() {
	r.AdvisoryAssignmentSection = strings.TrimSpace(r.AdvisoryAssignmentSection)
	cleaned := make([]string, 0, len(r.AdvisoryAssignmentStrands))
	for _, s := range r.AdvisoryAssignmentStrands {
		if v := strings.ToUpper(strings.TrimSpace(s)); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	r.AdvisoryAssignmentStrands = cleaned
}

func (r CreateAssignmentRequest) ToModel(advisorID uuid.UUID) model.AdvisoryAssignmentModel {
	return model.AdvisoryAssignmentModel{
		AdvisoryAssignmentAdvisorID: advisorID,
		AdvisoryAssignmentYearLevel: r.AdvisoryAssignmentYearLevel,
		AdvisoryAssignmentSection:   r.AdvisoryAssignmentSection,
		AdvisoryAssignmentStrands:   pq.StringArray(r.AdvisoryAssignmentStrands),
	}
}

type AssignmentResponse struct {
	AdvisoryAssignmentID        uuid.UUID `json:"advisory_assignment_id"`
	AdvisoryAssignmentAdvisorID uuid.UUID `json:"advisory_assignment_advisor_id"`
	AdvisoryAssignmentYearLevel int16     `json:"advisory_assignment_year_level"`
	AdvisoryAssignmentSection   string    `json:"advisory_assignment_section"`
	AdvisoryAssignmentStrands   []string  `json:"advisory_assignment_strands"`
	AdvisoryAssignmentCreatedAt time.Time `json:"advisory_assignment_created_at"`
}

func AssignmentFromModel(m model.AdvisoryAssignmentModel) AssignmentResponse {
	return AssignmentResponse{
		AdvisoryAssignmentID:        m.AdvisoryAssignmentID,
		AdvisoryAssignmentAdvisorID: m.AdvisoryAssignmentAdvisorID,
		AdvisoryAssignmentYearLevel: m.AdvisoryAssignmentYearLevel,
		AdvisoryAssignmentSection:   m.AdvisoryAssignmentSection,
		AdvisoryAssignmentStrands:   []string(m.AdvisoryAssignmentStrands),
		AdvisoryAssignmentCreatedAt: m.AdvisoryAssignmentCreatedAt,
	}
}

func AssignmentsFromModels(ms []model.AdvisoryAssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, AssignmentFromModel(m))
	}
	return out
}
