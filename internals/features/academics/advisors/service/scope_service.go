// file: internals/features/academics/advisors/service/scope_service.go
package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/academics/advisors/model"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
)

/* ==============================
   Scoping advisor (satu predicate untuk semua halaman)
============================== */

// IsAssignedTo: predicate tunggal pencocokan siswa ↔ assignment.
// Year level dan section harus sama; strands kosong berarti semua strand.
func IsAssignedTo(student studentModel.StudentModel, a model.AdvisoryAssignmentModel) bool {
	if student.StudentYearLevel != a.AdvisoryAssignmentYearLevel {
		return false
	}
	if !strings.EqualFold(strings.TrimSpace(student.StudentSection), strings.TrimSpace(a.AdvisoryAssignmentSection)) {
		return false
	}
	if len(a.AdvisoryAssignmentStrands) == 0 {
		return true
	}
	if student.StudentStrand == nil {
		return false
	}
	for _, s := range a.AdvisoryAssignmentStrands {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(*student.StudentStrand)) {
			return true
		}
	}
	return false
}

// IsAssignedToAny: versi multi-assignment dari predicate yang sama.
func IsAssignedToAny(student studentModel.StudentModel, assignments []model.AdvisoryAssignmentModel) bool {
	for _, a := range assignments {
		if IsAssignedTo(student, a) {
			return true
		}
	}
	return false
}

type ScopeService struct {
	DB *gorm.DB
}

func NewScopeService(db *gorm.DB) *ScopeService {
	return &ScopeService{DB: db}
}

func (s *ScopeService) AssignmentsOf(advisorID uuid.UUID) ([]model.AdvisoryAssignmentModel, error) {
	var rows []model.AdvisoryAssignmentModel
	err := s.DB.Where("advisory_assignment_advisor_id = ?", advisorID).Find(&rows).Error
	return rows, err
}

// ScopeStudents: filter query-time yang ekuivalen dengan IsAssignedTo,
// dipakai semua listing yang dilihat advisor supaya filtering terjadi di DB,
// bukan linear scan di memori per halaman.
func ScopeStudents(assignments []model.AdvisoryAssignmentModel) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(assignments) == 0 {
			return db.Where("1 = 0") // advisor tanpa assignment tidak melihat apa pun
		}
		cond := db.Session(&gorm.Session{NewDB: true})
		scoped := cond
		for i, a := range assignments {
			one := cond.Session(&gorm.Session{NewDB: true}).
				Where("student_year_level = ? AND lower(student_section) = lower(?)",
					a.AdvisoryAssignmentYearLevel, strings.TrimSpace(a.AdvisoryAssignmentSection))
			if len(a.AdvisoryAssignmentStrands) > 0 {
				lowered := make([]string, 0, len(a.AdvisoryAssignmentStrands))
				for _, s := range a.AdvisoryAssignmentStrands {
					lowered = append(lowered, strings.ToLower(strings.TrimSpace(s)))
				}
				one = one.Where("lower(student_strand) IN ?", lowered)
			}
			if i == 0 {
				scoped = one
			} else {
				scoped = scoped.Or(one)
			}
		}
		return db.Where(scoped)
	}
}

// ScopedStudentIDs: id siswa dalam cakupan advisor — dipakai untuk scoping
// grades/attendance lewat klausa IN.
func (s *ScopeService) ScopedStudentIDs(advisorID uuid.UUID) ([]uuid.UUID, error) {
	assignments, err := s.AssignmentsOf(advisorID)
	if err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return []uuid.UUID{}, nil
	}
	var ids []uuid.UUID
	err = s.DB.Model(&studentModel.StudentModel{}).
		Scopes(ScopeStudents(assignments)).
		Pluck("student_id", &ids).Error
	return ids, err
}
