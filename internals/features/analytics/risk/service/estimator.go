// file: internals/features/analytics/risk/service/estimator.go
package service

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	model "sekolahku_backend/internals/features/analytics/risk/model"
	gradeSvc "sekolahku_backend/internals/features/grading/grades/service"
)

/* ==============================
   Estimator heuristik (bukan model)
============================== */

// RiskInputs: agregat per siswa yang jadi bahan skor.
type RiskInputs struct {
	AverageGrade      float64 // rata-rata final grade, 0..100
	AttendanceRatePct float64 // persentase hadir, 0..100
	FailingCount      int     // jumlah nilai < 75
	TrendSlope        float64 // slope rata-rata per quarter; negatif = menurun
	HasGrades         bool
	HasAttendance     bool
}

// Bobot komponen skor. Heuristik monotonic: nilai rendah, kehadiran rendah,
// banyak gagal, dan tren menurun semua menaikkan skor.
const (
	gradeWeight      = 0.40 // (100 − avg) × 0.40 → maks 40
	attendanceWeight = 0.30 // (100 − rate) × 0.30 → maks 30
	failingPoints    = 4.0  // per mapel gagal, cap 5 mapel → maks 20
	failingCap       = 5
	declinePerPoint  = 2.0 // per poin penurunan per quarter, cap 10
	declineCap       = 10.0
)

// Ambang tier pada skor 0..100.
const (
	tierHighMin   = 60.0
	tierMediumMin = 35.0
	tierLowMin    = 20.0
)

// ComputeRisk menghasilkan skor [0,100] + tier. Siswa tanpa data sama sekali
// tidak diberi label.
func ComputeRisk(in RiskInputs) (float64, string) {
	if !in.HasGrades && !in.HasAttendance {
		return 0, model.TierNone
	}

	score := 0.0
	if in.HasGrades {
		score += (100 - clamp(in.AverageGrade, 0, 100)) * gradeWeight
		failing := in.FailingCount
		if failing > failingCap {
			failing = failingCap
		}
		score += float64(failing) * failingPoints
		if in.TrendSlope < 0 {
			score += math.Min(-in.TrendSlope*declinePerPoint, declineCap)
		}
	}
	if in.HasAttendance {
		score += (100 - clamp(in.AttendanceRatePct, 0, 100)) * attendanceWeight
	}

	score = gradeSvc.Round2(clamp(score, 0, 100))
	return score, tierFor(score)
}

func tierFor(score float64) string {
	switch {
	case score >= tierHighMin:
		return model.TierHigh
	case score >= tierMediumMin:
		return model.TierMedium
	case score >= tierLowMin:
		return model.TierLow
	default:
		return model.TierNone
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

/* ==============================
   Agregat per quarter
============================== */

// TrendSlope: slope regresi linear rata-rata nilai terhadap urutan quarter.
// Kurang dari dua quarter berdata → 0 (tidak ada tren).
func TrendSlope(perQuarterAvg map[int16]float64) float64 {
	if len(perQuarterAvg) < 2 {
		return 0
	}
	quarters := make([]int16, 0, len(perQuarterAvg))
	for q := range perQuarterAvg {
		quarters = append(quarters, q)
	}
	sort.Slice(quarters, func(i, j int) bool { return quarters[i] < quarters[j] })

	coords := make([]stats.Coordinate, 0, len(quarters))
	for _, q := range quarters {
		coords = append(coords, stats.Coordinate{X: float64(q), Y: perQuarterAvg[q]})
	}
	reg, err := stats.LinearRegression(coords)
	if err != nil || len(reg) < 2 {
		return 0
	}
	// slope dari dua titik hasil regresi
	dx := reg[len(reg)-1].X - reg[0].X
	if dx == 0 {
		return 0
	}
	return (reg[len(reg)-1].Y - reg[0].Y) / dx
}

// MeanGrade: rata-rata final grade; 0 + false bila kosong.
func MeanGrade(grades []float64) (float64, bool) {
	if len(grades) == 0 {
		return 0, false
	}
	m, err := stats.Mean(grades)
	if err != nil {
		return 0, false
	}
	return m, true
}
