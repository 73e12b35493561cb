// file: internals/features/grading/imports/service/parser.go
package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	gradeModel "sekolahku_backend/internals/features/grading/grades/model"
)

// Kolom wajib file import, urutan bebas, header case-insensitive.
var RequiredHeaders = []string{
	"student_number",
	"subject_code",
	"quarter",
	"written_work",
	"performance_task",
	"quarterly_assessment",
}

// Kolom opsional: bila terisi, baris dianggap override manual.
const (
	headerFinalGrade = "final_grade"
	headerRemarks    = "remarks"
)

// ImportRow: satu baris siap insert, identitas masih berupa kode (bukan UUID).
// FinalGrade/Remarks non-nil berarti nilai akhir di-override, bukan dihitung.
type ImportRow struct {
	Line                int
	StudentNumber       string
	SubjectCode         string
	Quarter             int16
	WrittenWork         *float64
	PerformanceTask     *float64
	QuarterlyAssessment *float64
	FinalGrade          *float64
	Remarks             *string
}

// RowError: kesalahan per baris, dikembalikan apa adanya ke pemanggil.
type RowError struct {
	Line    int    `json:"line"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("baris %d: %s", e.Line, e.Message)
}

/* ==============================
   Pembacaan file
============================== */

// ParseCSV membaca seluruh isi CSV. Baris pertama wajib header.
func ParseCSV(r io.Reader) ([]ImportRow, []RowError, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("file CSV tidak bisa dibaca: %w", err)
	}
	return parseRecords(records)
}

// ParseXLSX membaca sheet pertama workbook.
func ParseXLSX(r io.Reader) ([]ImportRow, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("file XLSX tidak bisa dibaca: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook tidak punya sheet")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("gagal membaca sheet %q: %w", sheets[0], err)
	}
	return parseRecords(records)
}

/* ==============================
   Validasi per baris
============================== */

func parseRecords(records [][]string) ([]ImportRow, []RowError, error) {
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("file kosong")
	}

	colIdx, err := mapHeaders(records[0])
	if err != nil {
		return nil, nil, err
	}

	rows := make([]ImportRow, 0, len(records)-1)
	errs := []RowError{}
	// Duplikat di dalam file terdeteksi sebelum menyentuh database
	seen := map[string]int{}

	for i, rec := range records[1:] {
		line := i + 2 // baris 1 = header

		if isBlankRecord(rec) {
			continue
		}

		row := ImportRow{Line: line}
		rowBad := false

		row.StudentNumber = strings.TrimSpace(cell(rec, colIdx["student_number"]))
		if row.StudentNumber == "" {
			errs = append(errs, RowError{Line: line, Field: "student_number", Message: "student_number kosong"})
			rowBad = true
		}
		row.SubjectCode = strings.ToUpper(strings.TrimSpace(cell(rec, colIdx["subject_code"])))
		if row.SubjectCode == "" {
			errs = append(errs, RowError{Line: line, Field: "subject_code", Message: "subject_code kosong"})
			rowBad = true
		}

		qRaw := strings.TrimSpace(cell(rec, colIdx["quarter"]))
		q, qErr := gradeModel.ParseQuarter(qRaw)
		if qErr != nil {
			errs = append(errs, RowError{Line: line, Field: "quarter",
				Message: fmt.Sprintf("quarter %q tidak dikenal (pakai 1-4, 1st-4th, atau Q1-Q4)", qRaw)})
			rowBad = true
		}
		row.Quarter = q

		for _, fc := range []struct {
			field string
			dst   **float64
		}{
			{"written_work", &row.WrittenWork},
			{"performance_task", &row.PerformanceTask},
			{"quarterly_assessment", &row.QuarterlyAssessment},
		} {
			v, perr := parseScore(cell(rec, colIdx[fc.field]))
			if perr != nil {
				errs = append(errs, RowError{Line: line, Field: fc.field, Message: perr.Error()})
				rowBad = true
				continue
			}
			*fc.dst = v
		}

		if fi, ok := colIdx[headerFinalGrade]; ok {
			v, perr := parseScore(cell(rec, fi))
			if perr != nil {
				errs = append(errs, RowError{Line: line, Field: headerFinalGrade, Message: perr.Error()})
				rowBad = true
			} else {
				row.FinalGrade = v
			}
		}
		if ri, ok := colIdx[headerRemarks]; ok {
			if r := strings.TrimSpace(cell(rec, ri)); r != "" {
				row.Remarks = &r
			}
		}

		if rowBad {
			continue
		}

		key := fmt.Sprintf("%s|%s|%d", row.StudentNumber, row.SubjectCode, row.Quarter)
		if first, dup := seen[key]; dup {
			errs = append(errs, RowError{Line: line,
				Message: fmt.Sprintf("duplikat dengan baris %d (siswa %s, mapel %s, quarter %d)",
					first, row.StudentNumber, row.SubjectCode, row.Quarter)})
			continue
		}
		seen[key] = line

		rows = append(rows, row)
	}

	return rows, errs, nil
}

func mapHeaders(header []string) (map[string]int, error) {
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	missing := []string{}
	for _, h := range RequiredHeaders {
		if _, ok := idx[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("header wajib hilang: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

// parseScore: sel kosong berarti komponen belum dinilai (nil), selain itu
// harus angka 0..100.
func parseScore(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("nilai %q bukan angka", raw)
	}
	if v < 0 || v > 100 {
		return nil, fmt.Errorf("nilai %v di luar rentang 0-100", v)
	}
	return &v, nil
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func isBlankRecord(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
