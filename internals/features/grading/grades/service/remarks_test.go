package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Bands(t *testing.T) {
	cases := []struct {
		grade float64
		label string
	}{
		{100, RemarkOutstanding},
		{90, RemarkOutstanding}, // batas masuk band atas
		{89.99, RemarkVerySatisfactory},
		{85, RemarkVerySatisfactory},
		{84.99, RemarkSatisfactory},
		{80, RemarkSatisfactory},
		{79.99, RemarkFairlySatisfactory},
		{75, RemarkFairlySatisfactory},
		{74.99, RemarkDidNotMeet},
		{0, RemarkDidNotMeet},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.label, Classify(tc.grade).Label, "grade %v", tc.grade)
	}
}

func TestClassify_ColorTierPerBand(t *testing.T) {
	seen := map[string]bool{}
	for _, g := range []float64{95, 87, 82, 76, 60} {
		r := Classify(g)
		assert.NotEmpty(t, r.ColorTier)
		assert.False(t, seen[r.ColorTier], "color tier %s dipakai dua band", r.ColorTier)
		seen[r.ColorTier] = true
	}
}

func TestIsFailing(t *testing.T) {
	assert.True(t, IsFailing(74.99))
	assert.False(t, IsFailing(75))
	assert.False(t, IsFailing(100))
}
