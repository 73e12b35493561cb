package service

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	model "sekolahku_backend/internals/features/academics/advisors/model"
	studentModel "sekolahku_backend/internals/features/academics/students/model"
)

func strp(s string) *string { return &s }

func mkStudent(year int16, section string, strand *string) studentModel.StudentModel {
	return studentModel.StudentModel{
		StudentYearLevel: year,
		StudentSection:   section,
		StudentStrand:    strand,
	}
}

func TestIsAssignedTo_YearAndSectionMustMatch(t *testing.T) {
	a := model.AdvisoryAssignmentModel{
		AdvisoryAssignmentYearLevel: 11,
		AdvisoryAssignmentSection:   "Rizal",
	}

	assert.True(t, IsAssignedTo(mkStudent(11, "Rizal", nil), a))
	assert.True(t, IsAssignedTo(mkStudent(11, "rizal", nil), a), "section case-insensitive")
	assert.False(t, IsAssignedTo(mkStudent(12, "Rizal", nil), a))
	assert.False(t, IsAssignedTo(mkStudent(11, "Bonifacio", nil), a))
}

func TestIsAssignedTo_StrandRules(t *testing.T) {
	all := model.AdvisoryAssignmentModel{
		AdvisoryAssignmentYearLevel: 12,
		AdvisoryAssignmentSection:   "Mabini",
	}
	stemOnly := model.AdvisoryAssignmentModel{
		AdvisoryAssignmentYearLevel: 12,
		AdvisoryAssignmentSection:   "Mabini",
		AdvisoryAssignmentStrands:   pq.StringArray{"STEM", "ABM"},
	}

	// strands kosong = semua strand, termasuk siswa tanpa strand
	assert.True(t, IsAssignedTo(mkStudent(12, "Mabini", strp("HUMSS")), all))
	assert.True(t, IsAssignedTo(mkStudent(12, "Mabini", nil), all))

	// strands terisi = harus cocok, siswa tanpa strand tidak masuk
	assert.True(t, IsAssignedTo(mkStudent(12, "Mabini", strp("stem")), stemOnly))
	assert.True(t, IsAssignedTo(mkStudent(12, "Mabini", strp("ABM")), stemOnly))
	assert.False(t, IsAssignedTo(mkStudent(12, "Mabini", strp("HUMSS")), stemOnly))
	assert.False(t, IsAssignedTo(mkStudent(12, "Mabini", nil), stemOnly))
}

func TestIsAssignedToAny(t *testing.T) {
	assignments := []model.AdvisoryAssignmentModel{
		{AdvisoryAssignmentYearLevel: 11, AdvisoryAssignmentSection: "Rizal"},
		{AdvisoryAssignmentYearLevel: 12, AdvisoryAssignmentSection: "Mabini", AdvisoryAssignmentStrands: pq.StringArray{"STEM"}},
	}

	assert.True(t, IsAssignedToAny(mkStudent(11, "Rizal", nil), assignments))
	assert.True(t, IsAssignedToAny(mkStudent(12, "Mabini", strp("STEM")), assignments))
	assert.False(t, IsAssignedToAny(mkStudent(12, "Rizal", nil), assignments))
	assert.False(t, IsAssignedToAny(mkStudent(12, "Mabini", strp("ABM")), assignments))
	assert.False(t, IsAssignedToAny(mkStudent(11, "Rizal", nil), nil), "tanpa assignment tidak melihat apa pun")
}
