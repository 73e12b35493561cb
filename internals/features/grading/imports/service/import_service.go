// file: internals/features/grading/imports/service/import_service.go
package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "sekolahku_backend/internals/features/academics/students/model"
	subjectModel "sekolahku_backend/internals/features/academics/subjects/model"
	gradeModel "sekolahku_backend/internals/features/grading/grades/model"
	gradeSvc "sekolahku_backend/internals/features/grading/grades/service"
	gsSvc "sekolahku_backend/internals/features/grading/gradingsystems/service"
	helper "sekolahku_backend/internals/helpers"
)

// BatchSize: jumlah baris per batch insert. Batch yang sudah masuk tidak
// di-rollback bila batch berikutnya gagal.
const BatchSize = 100

type ImportService struct {
	DB            *gorm.DB
	GradingSystem *gsSvc.GradingSystemService
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{
		DB:            db,
		GradingSystem: gsSvc.NewGradingSystemService(db),
	}
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors"`
}

// Apply meresolve student_number/subject_code ke UUID, menghitung final grade
// dengan bobot aktif, lalu insert batch demi batch. Baris yang gagal dicatat,
// sisanya tetap masuk.
func (s *ImportService) Apply(rows []ImportRow, parseErrs []RowError) (ImportResult, error) {
	res := ImportResult{Errors: append([]RowError{}, parseErrs...)}
	res.Failed = len(parseErrs)

	if len(rows) == 0 {
		return res, nil
	}

	studentIdx, err := s.studentIndex(rows)
	if err != nil {
		return res, err
	}
	subjectIdx, err := s.subjectIndex(rows)
	if err != nil {
		return res, err
	}

	weights := s.GradingSystem.ActiveWeights()

	pending := make([]gradeModel.GradeModel, 0, len(rows))
	pendingLines := make([]int, 0, len(rows))
	for _, row := range rows {
		studentID, ok := studentIdx[row.StudentNumber]
		if !ok {
			res.Errors = append(res.Errors, RowError{Line: row.Line, Field: "student_number",
				Message: fmt.Sprintf("siswa %q tidak terdaftar", row.StudentNumber)})
			res.Failed++
			continue
		}
		subjectID, ok := subjectIdx[row.SubjectCode]
		if !ok {
			res.Errors = append(res.Errors, RowError{Line: row.Line, Field: "subject_code",
				Message: fmt.Sprintf("mapel %q tidak terdaftar", row.SubjectCode)})
			res.Failed++
			continue
		}

		g := gradeModel.GradeModel{
			GradeStudentID:           studentID,
			GradeSubjectID:           subjectID,
			GradeQuarter:             row.Quarter,
			GradeWrittenWork:         row.WrittenWork,
			GradePerformanceTask:     row.PerformanceTask,
			GradeQuarterlyAssessment: row.QuarterlyAssessment,
		}
		g.GradeFinalGrade = gradeSvc.ComputeFinalGrade(gradeSvc.GradeComponents{
			WrittenWork:         g.GradeWrittenWork,
			PerformanceTask:     g.GradePerformanceTask,
			QuarterlyAssessment: g.GradeQuarterlyAssessment,
		}, weights)
		g.GradeRemarks = gradeSvc.Classify(g.GradeFinalGrade).Label

		// Kolom final_grade / remarks terisi = override manual dari file
		if row.FinalGrade != nil {
			g.GradeFinalGrade = gradeSvc.Round2(*row.FinalGrade)
			g.GradeIsOverridden = true
		}
		if row.Remarks != nil {
			g.GradeRemarks = *row.Remarks
			g.GradeIsOverridden = true
		}

		pending = append(pending, g)
		pendingLines = append(pendingLines, row.Line)
	}

	// Insert per batch; di dalam batch tetap per baris supaya satu duplikat
	// tidak menggagalkan baris lainnya.
	for start := 0; start < len(pending); start += BatchSize {
		end := start + BatchSize
		if end > len(pending) {
			end = len(pending)
		}
		for i := start; i < end; i++ {
			if err := s.DB.Create(&pending[i]).Error; err != nil {
				res.Failed++
				if helper.IsDuplicateKey(err) {
					res.Errors = append(res.Errors, RowError{Line: pendingLines[i],
						Message: "nilai untuk kombinasi siswa, mapel, dan quarter ini sudah ada"})
					continue
				}
				res.Errors = append(res.Errors, RowError{Line: pendingLines[i],
					Message: "gagal menyimpan baris"})
				continue
			}
			res.Imported++
		}
		log.Printf("[IMPORT] batch %d-%d selesai (imported=%d failed=%d)", start+1, end, res.Imported, res.Failed)
	}

	return res, nil
}

func (s *ImportService) studentIndex(rows []ImportRow) (map[string]uuid.UUID, error) {
	numbers := uniqueKeys(rows, func(r ImportRow) string { return r.StudentNumber })
	var students []studentModel.StudentModel
	if err := s.DB.Where("student_number IN ?", numbers).Find(&students).Error; err != nil {
		return nil, err
	}
	idx := make(map[string]uuid.UUID, len(students))
	for _, st := range students {
		idx[st.StudentNumber] = st.StudentID
	}
	return idx, nil
}

func (s *ImportService) subjectIndex(rows []ImportRow) (map[string]uuid.UUID, error) {
	codes := uniqueKeys(rows, func(r ImportRow) string { return strings.ToUpper(r.SubjectCode) })
	var subjects []subjectModel.SubjectModel
	if err := s.DB.Where("subject_code IN ?", codes).Find(&subjects).Error; err != nil {
		return nil, err
	}
	idx := make(map[string]uuid.UUID, len(subjects))
	for _, sub := range subjects {
		idx[strings.ToUpper(sub.SubjectCode)] = sub.SubjectID
	}
	return idx, nil
}

func uniqueKeys(rows []ImportRow, key func(ImportRow) string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
