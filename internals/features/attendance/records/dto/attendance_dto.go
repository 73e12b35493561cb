// file: internals/features/attendance/records/dto/attendance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/attendance/records/model"
)

const DateLayout = "2006-01-02"

type CreateAttendanceRequest struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceDate      string    `json:"attendance_date" validate:"required"`
	AttendanceStatus    string    `json:"attendance_status" validate:"required,oneof=present late absent excused"`
	AttendanceRemarks   *string   `json:"attendance_remarks" validate:"omitempty,max=160"`
}

func (r *CreateAttendanceRequest) Normalize() {
	r.AttendanceStatus = strings.ToLower(strings.TrimSpace(r.AttendanceStatus))
	r.AttendanceDate = strings.TrimSpace(r.AttendanceDate)
}

func (r CreateAttendanceRequest) ToModel() (model.AttendanceModel, error) {
	d, err := time.Parse(DateLayout, r.AttendanceDate)
	if err != nil {
		return model.AttendanceModel{}, err
	}
	return model.AttendanceModel{
		AttendanceStudentID: r.AttendanceStudentID,
		AttendanceDate:      d,
		AttendanceStatus:    r.AttendanceStatus,
		AttendanceRemarks:   r.AttendanceRemarks,
	}, nil
}

type UpdateAttendanceRequest struct {
	AttendanceStatus  *string `json:"attendance_status" validate:"omitempty,oneof=present late absent excused"`
	AttendanceRemarks *string `json:"attendance_remarks" validate:"omitempty,max=160"`
}

type AttendanceResponse struct {
	AttendanceID        uuid.UUID `json:"attendance_id"`
	AttendanceStudentID uuid.UUID `json:"attendance_student_id"`
	AttendanceDate      string    `json:"attendance_date"`
	AttendanceStatus    string    `json:"attendance_status"`
	AttendanceRemarks   *string   `json:"attendance_remarks,omitempty"`
	AttendanceCreatedAt time.Time `json:"attendance_created_at"`
}

func FromModel(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:        m.AttendanceID,
		AttendanceStudentID: m.AttendanceStudentID,
		AttendanceDate:      m.AttendanceDate.Format(DateLayout),
		AttendanceStatus:    m.AttendanceStatus,
		AttendanceRemarks:   m.AttendanceRemarks,
		AttendanceCreatedAt: m.AttendanceCreatedAt,
	}
}

func FromModels(ms []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}

/* ==============================
   Attendance rate
============================== */

type RateResponse struct {
	StudentID   uuid.UUID `json:"student_id"`
	TotalDays   int64     `json:"total_days"`
	PresentDays int64     `json:"present_days"` // present + late
	RatePercent float64   `json:"rate_percent"`
}
