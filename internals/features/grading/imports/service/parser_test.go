// file: internals/features/grading/imports/service/parser_test.go
package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const csvHeader = "student_number,subject_code,quarter,written_work,performance_task,quarterly_assessment\n"

func TestParseCSV_HappyPath(t *testing.T) {
	in := csvHeader +
		"S-001,MATH10,1,80,90,85\n" +
		"S-001,MATH10,Q2,75.5,,90\n" + // quarterly kosong = belum dinilai
		"S-002,eng10,2nd,100,0,50\n"

	rows, errs, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, rows, 3)

	assert.Equal(t, "S-001", rows[0].StudentNumber)
	assert.Equal(t, "MATH10", rows[0].SubjectCode)
	assert.Equal(t, int16(1), rows[0].Quarter)
	require.NotNil(t, rows[0].WrittenWork)
	assert.Equal(t, 80.0, *rows[0].WrittenWork)

	// Q2 diterima sebagai quarter 2, sel kosong jadi nil
	assert.Equal(t, int16(2), rows[1].Quarter)
	assert.Nil(t, rows[1].PerformanceTask)

	// subject_code dinormalisasi ke huruf besar
	assert.Equal(t, "ENG10", rows[2].SubjectCode)
	assert.Equal(t, int16(2), rows[2].Quarter)
}

func TestParseCSV_MissingHeader(t *testing.T) {
	in := "student_number,quarter\nS-001,1\n"
	_, _, err := ParseCSV(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subject_code")
}

func TestParseCSV_BadQuarter(t *testing.T) {
	in := csvHeader + "S-001,MATH10,5,80,90,85\n"
	rows, errs, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, rows)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Line)
	assert.Equal(t, "quarter", errs[0].Field)
}

func TestParseCSV_ScoreOutOfRange(t *testing.T) {
	in := csvHeader +
		"S-001,MATH10,1,101,90,85\n" +
		"S-002,MATH10,1,80,-1,85\n" +
		"S-003,MATH10,1,80,abc,85\n"
	rows, errs, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, rows)
	require.Len(t, errs, 3)
	assert.Equal(t, "written_work", errs[0].Field)
	assert.Equal(t, "performance_task", errs[1].Field)
	assert.Equal(t, "performance_task", errs[2].Field)
}

func TestParseCSV_DuplicateInFile(t *testing.T) {
	in := csvHeader +
		"S-001,MATH10,1,80,90,85\n" +
		"S-001,MATH10,Q1,70,70,70\n" // kombinasi sama, bentuk quarter beda
	rows, errs, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Line)
	assert.Contains(t, errs[0].Message, "duplikat")
}

func TestParseCSV_SkipsBlankLines(t *testing.T) {
	in := csvHeader +
		"S-001,MATH10,1,80,90,85\n" +
		",,,,,\n" +
		"S-002,MATH10,1,80,90,85\n"
	rows, errs, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Len(t, rows, 2)
}

func TestParseCSV_BadRowDoesNotBlockOthers(t *testing.T) {
	in := csvHeader +
		"S-001,MATH10,x,80,90,85\n" +
		"S-002,MATH10,1,80,90,85\n"
	rows, errs, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "S-002", rows[0].StudentNumber)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Line)
}

func TestParseCSV_OverrideColumns(t *testing.T) {
	in := "student_number,subject_code,quarter,written_work,performance_task,quarterly_assessment,final_grade,remarks\n" +
		"S-001,MATH10,1,80,90,85,88,Promoted\n" +
		"S-002,MATH10,1,80,90,85,,\n" +
		"S-003,MATH10,1,80,90,85,120,\n"
	rows, errs, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].FinalGrade)
	assert.Equal(t, 88.0, *rows[0].FinalGrade)
	require.NotNil(t, rows[0].Remarks)
	assert.Equal(t, "Promoted", *rows[0].Remarks)

	// kolom kosong = bukan override
	assert.Nil(t, rows[1].FinalGrade)
	assert.Nil(t, rows[1].Remarks)

	// final_grade di luar rentang ditolak
	require.Len(t, errs, 1)
	assert.Equal(t, 4, errs[0].Line)
	assert.Equal(t, "final_grade", errs[0].Field)
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"student_number", "subject_code", "quarter", "written_work", "performance_task", "quarterly_assessment"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		require.NoError(t, f.SetCellValue(sheet, col+"1", h))
	}
	values := []interface{}{"S-001", "MATH10", 1, 80, 90, 85}
	for i, v := range values {
		col, _ := excelize.ColumnNumberToName(i + 1)
		require.NoError(t, f.SetCellValue(sheet, col+"2", v))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	rows, errs, err := ParseXLSX(&buf)
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.Len(t, rows, 1)
	assert.Equal(t, "S-001", rows[0].StudentNumber)
	assert.Equal(t, int16(1), rows[0].Quarter)
	require.NotNil(t, rows[0].QuarterlyAssessment)
	assert.Equal(t, 85.0, *rows[0].QuarterlyAssessment)
}
