package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "sekolahku_backend/internals/features/analytics/risk/model"
)

func TestComputeRisk_NoDataUnlabeled(t *testing.T) {
	score, tier := ComputeRisk(RiskInputs{})
	assert.Equal(t, 0.0, score)
	assert.Equal(t, model.TierNone, tier)
}

func TestComputeRisk_HealthyStudentLowScore(t *testing.T) {
	score, tier := ComputeRisk(RiskInputs{
		AverageGrade:      95,
		AttendanceRatePct: 98,
		FailingCount:      0,
		TrendSlope:        0.5,
		HasGrades:         true,
		HasAttendance:     true,
	})
	assert.Less(t, score, tierLowMin)
	assert.Equal(t, model.TierNone, tier)
}

func TestComputeRisk_StrugglingStudentHighTier(t *testing.T) {
	score, tier := ComputeRisk(RiskInputs{
		AverageGrade:      55,
		AttendanceRatePct: 40,
		FailingCount:      5,
		TrendSlope:        -5,
		HasGrades:         true,
		HasAttendance:     true,
	})
	// 18 + 18 + 20 + 10 = 66
	assert.Equal(t, model.TierHigh, tier)
	assert.LessOrEqual(t, score, 100.0)
}

// Monotonic: tiap faktor yang memburuk tidak boleh menurunkan skor.
func TestComputeRisk_Monotonicity(t *testing.T) {
	base := RiskInputs{
		AverageGrade:      85,
		AttendanceRatePct: 90,
		FailingCount:      1,
		TrendSlope:        0,
		HasGrades:         true,
		HasAttendance:     true,
	}
	baseScore, _ := ComputeRisk(base)

	lowerAvg := base
	lowerAvg.AverageGrade = 70
	s, _ := ComputeRisk(lowerAvg)
	assert.Greater(t, s, baseScore, "rata-rata turun → risiko naik")

	lowerAtt := base
	lowerAtt.AttendanceRatePct = 60
	s, _ = ComputeRisk(lowerAtt)
	assert.Greater(t, s, baseScore, "kehadiran turun → risiko naik")

	moreFailing := base
	moreFailing.FailingCount = 3
	s, _ = ComputeRisk(moreFailing)
	assert.Greater(t, s, baseScore, "gagal bertambah → risiko naik")

	declining := base
	declining.TrendSlope = -4
	s, _ = ComputeRisk(declining)
	assert.Greater(t, s, baseScore, "tren menurun → risiko naik")
}

func TestComputeRisk_ScoreBounded(t *testing.T) {
	score, tier := ComputeRisk(RiskInputs{
		AverageGrade:      0,
		AttendanceRatePct: 0,
		FailingCount:      12,
		TrendSlope:        -50,
		HasGrades:         true,
		HasAttendance:     true,
	})
	assert.Equal(t, 100.0, score)
	assert.Equal(t, model.TierHigh, tier)
}

func TestTrendSlope(t *testing.T) {
	// menurun konsisten 2 poin per quarter
	slope := TrendSlope(map[int16]float64{1: 90, 2: 88, 3: 86, 4: 84})
	assert.InDelta(t, -2.0, slope, 0.001)

	// naik
	slope = TrendSlope(map[int16]float64{1: 80, 2: 85})
	assert.InDelta(t, 5.0, slope, 0.001)

	// kurang dari dua quarter → tidak ada tren
	assert.Equal(t, 0.0, TrendSlope(map[int16]float64{1: 90}))
	assert.Equal(t, 0.0, TrendSlope(nil))
}

func TestMeanGrade(t *testing.T) {
	m, ok := MeanGrade([]float64{80, 90, 85})
	assert.True(t, ok)
	assert.InDelta(t, 85.0, m, 0.001)

	_, ok = MeanGrade(nil)
	assert.False(t, ok)
}
