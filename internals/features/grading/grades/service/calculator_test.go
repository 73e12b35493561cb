package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestComputeFinalGrade_DefaultWeights(t *testing.T) {
	w := DefaultWeights()

	assert.Equal(t, 100.0, ComputeFinalGrade(GradeComponents{f(100), f(100), f(100)}, w))
	assert.Equal(t, 0.0, ComputeFinalGrade(GradeComponents{f(0), f(0), f(0)}, w))
}

func TestComputeFinalGrade_WeightedExample(t *testing.T) {
	w := Weights{WrittenWork: 25, PerformanceTask: 50, QuarterlyAssessment: 25}
	// 0.25×80 + 0.50×90 + 0.25×85 = 86.25
	got := ComputeFinalGrade(GradeComponents{f(80), f(90), f(85)}, w)
	assert.Equal(t, 86.25, got)
}

func TestComputeFinalGrade_MissingComponentsTreatedAsZero(t *testing.T) {
	w := DefaultWeights()

	// PT dan QA kosong → hanya WW yang dihitung
	got := ComputeFinalGrade(GradeComponents{WrittenWork: f(100)}, w)
	assert.Equal(t, 25.0, got)

	// semua kosong
	assert.Equal(t, 0.0, ComputeFinalGrade(GradeComponents{}, w))
}

func TestComputeFinalGrade_RoundsHalfUpToTwoDecimals(t *testing.T) {
	w := Weights{WrittenWork: 33.33, PerformanceTask: 33.33, QuarterlyAssessment: 33.34}
	got := ComputeFinalGrade(GradeComponents{f(85.5), f(91.25), f(77.75)}, w)
	// 85.5×0.3333 + 91.25×0.3333 + 77.75×0.3334 = 84.832625 → 84.83
	assert.InDelta(t, 84.83, got, 0.005)
	assert.Equal(t, got, Round2(got))
}

func TestComputeFinalGrade_ResultStaysInRange(t *testing.T) {
	w := DefaultWeights()
	for _, c := range []GradeComponents{
		{f(0), f(0), f(0)},
		{f(100), f(0), f(50)},
		{f(73.4), f(88.2), f(91.07)},
		{f(100), f(100), f(100)},
	} {
		got := ComputeFinalGrade(c, w)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestValidateWeights(t *testing.T) {
	assert.True(t, ValidateWeights(25, 50, 25))
	assert.True(t, ValidateWeights(33.34, 33.33, 33.33)) // 100.00 dalam toleransi
	assert.False(t, ValidateWeights(25, 50, 24.99))
	assert.False(t, ValidateWeights(40, 40, 40))
	assert.False(t, ValidateWeights(0, 0, 0))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 86.25, Round2(86.25))
	assert.Equal(t, 86.26, Round2(86.256))
	assert.Equal(t, 86.25, Round2(86.254))
	assert.Equal(t, 0.0, Round2(0))
}
