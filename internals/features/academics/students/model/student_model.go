// file: internals/features/academics/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentNumber string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_students_number;column:student_number" json:"student_number"`

	StudentFirstName string `gorm:"type:varchar(80);not null;column:student_first_name" json:"student_first_name"`
	StudentLastName  string `gorm:"type:varchar(80);not null;column:student_last_name" json:"student_last_name"`

	// Penempatan akademik — basis scoping advisor
	StudentYearLevel int16   `gorm:"not null;column:student_year_level;index:idx_students_placement" json:"student_year_level"`
	StudentSection   string  `gorm:"type:varchar(60);not null;column:student_section;index:idx_students_placement" json:"student_section"`
	StudentStrand    *string `gorm:"type:varchar(20);column:student_strand" json:"student_strand,omitempty"`

	StudentGuardianName  *string `gorm:"type:varchar(120);column:student_guardian_name" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"type:varchar(30);column:student_guardian_phone" json:"student_guardian_phone,omitempty"`

	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
