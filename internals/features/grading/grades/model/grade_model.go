// file: internals/features/grading/grades/model/grade_model.go
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeModel: satu baris per (siswa, mapel, quarter). Duplikat ditolak lewat
// unique index komposit, bukan di-overwrite.
type GradeModel struct {
	GradeID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_id" json:"grade_id"`
	GradeStudentID uuid.UUID `gorm:"type:uuid;not null;column:grade_student_id;uniqueIndex:uq_grades_student_subject_quarter" json:"grade_student_id"`
	GradeSubjectID uuid.UUID `gorm:"type:uuid;not null;column:grade_subject_id;uniqueIndex:uq_grades_student_subject_quarter" json:"grade_subject_id"`
	GradeQuarter   int16     `gorm:"not null;column:grade_quarter;uniqueIndex:uq_grades_student_subject_quarter" json:"grade_quarter"`

	// Komponen mentah [0,100]; NULL berarti belum diinput (dihitung 0)
	GradeWrittenWork         *float64 `gorm:"type:numeric(5,2);column:grade_written_work" json:"grade_written_work,omitempty"`
	GradePerformanceTask     *float64 `gorm:"type:numeric(5,2);column:grade_performance_task" json:"grade_performance_task,omitempty"`
	GradeQuarterlyAssessment *float64 `gorm:"type:numeric(5,2);column:grade_quarterly_assessment" json:"grade_quarterly_assessment,omitempty"`

	// Turunan dari komponen; is_overridden=true berarti user mengunci nilainya
	GradeFinalGrade   float64 `gorm:"type:numeric(5,2);not null;column:grade_final_grade" json:"grade_final_grade"`
	GradeRemarks      string  `gorm:"type:varchar(40);not null;column:grade_remarks" json:"grade_remarks"`
	GradeIsOverridden bool    `gorm:"not null;default:false;column:grade_is_overridden" json:"grade_is_overridden"`

	GradeCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grade_created_at" json:"grade_created_at"`
	GradeUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grade_updated_at" json:"grade_updated_at"`
	GradeDeletedAt gorm.DeletedAt `gorm:"column:grade_deleted_at;index" json:"grade_deleted_at,omitempty"`
}

func (GradeModel) TableName() string { return "grades" }

/* ==============================
   Quarter (enum berurutan 1..4)
============================== */

const (
	QuarterFirst  int16 = 1
	QuarterSecond int16 = 2
	QuarterThird  int16 = 3
	QuarterFourth int16 = 4
)

var quarterLabels = map[int16]string{
	QuarterFirst:  "1st",
	QuarterSecond: "2nd",
	QuarterThird:  "3rd",
	QuarterFourth: "4th",
}

func QuarterLabel(q int16) string {
	if l, ok := quarterLabels[q]; ok {
		return l
	}
	return fmt.Sprintf("%d", q)
}

func IsValidQuarter(q int16) bool {
	return q >= QuarterFirst && q <= QuarterFourth
}

// ParseQuarter menerima "1".."4", "1st".."4th", atau "Q1".."Q4".
func ParseQuarter(s string) (int16, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "q")
	for q, label := range quarterLabels {
		if v == label || v == fmt.Sprintf("%d", q) {
			return q, nil
		}
	}
	return 0, fmt.Errorf("quarter tidak dikenal: %q", s)
}
