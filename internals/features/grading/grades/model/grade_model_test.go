// file: internals/features/grading/grades/model/grade_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuarter(t *testing.T) {
	cases := map[string]int16{
		"1": 1, "2": 2, "3": 3, "4": 4,
		"1st": 1, "2nd": 2, "3rd": 3, "4th": 4,
		"Q1": 1, "q2": 2, "Q3": 3, "q4": 4,
		" 2 ": 2,
	}
	for in, want := range cases {
		got, err := ParseQuarter(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	for _, in := range []string{"", "0", "5", "first", "Q5", "abc"} {
		_, err := ParseQuarter(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestQuarterLabel(t *testing.T) {
	assert.Equal(t, "1st", QuarterLabel(QuarterFirst))
	assert.Equal(t, "4th", QuarterLabel(QuarterFourth))
	assert.Equal(t, "9", QuarterLabel(9))
}
