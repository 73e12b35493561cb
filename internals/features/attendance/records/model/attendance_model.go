// file: internals/features/attendance/records/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
	StatusExcused = "excused"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusLate, StatusAbsent, StatusExcused:
		return true
	}
	return false
}

// CountsAsPresent: late tetap dihitung hadir untuk attendance rate.
func CountsAsPresent(s string) bool {
	return s == StatusPresent || s == StatusLate
}

// AttendanceModel: satu baris per (siswa, tanggal).
type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`
	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_student_id;uniqueIndex:uq_attendance_student_date" json:"attendance_student_id"`
	AttendanceDate      time.Time `gorm:"type:date;not null;column:attendance_date;uniqueIndex:uq_attendance_student_date" json:"attendance_date"`
	AttendanceStatus    string    `gorm:"type:varchar(10);not null;column:attendance_status" json:"attendance_status"`
	AttendanceRemarks   *string   `gorm:"type:varchar(160);column:attendance_remarks" json:"attendance_remarks,omitempty"`

	AttendanceCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_created_at" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:attendance_updated_at" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt `gorm:"column:attendance_deleted_at;index" json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendance_records" }
