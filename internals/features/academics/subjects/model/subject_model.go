// file: internals/features/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`
	SubjectCode string    `gorm:"type:varchar(24);not null;uniqueIndex:uq_subjects_code;column:subject_code" json:"subject_code"`
	SubjectName string    `gorm:"type:varchar(120);not null;column:subject_name" json:"subject_name"`

	SubjectYearLevel int16   `gorm:"not null;column:subject_year_level" json:"subject_year_level"`
	SubjectStrand    *string `gorm:"type:varchar(20);column:subject_strand" json:"subject_strand,omitempty"`

	SubjectCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:subject_updated_at" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
