// file: internals/features/grading/grades/service/calculator.go
package service

import "math"

/* ==============================
   Komponen & bobot nilai
============================== */

// GradeComponents: tiga skor mentah per (siswa, mapel, quarter).
// Komponen yang kosong dihitung 0, bukan di-skip.
type GradeComponents struct {
	WrittenWork         *float64
	PerformanceTask     *float64
	QuarterlyAssessment *float64
}

type Weights struct {
	WrittenWork         float64
	PerformanceTask     float64
	QuarterlyAssessment float64
}

// Bobot baku saat belum ada grading system aktif: WW 25 / PT 50 / QA 25.
func DefaultWeights() Weights {
	return Weights{WrittenWork: 25, PerformanceTask: 50, QuarterlyAssessment: 25}
}

// WeightSumTolerance: toleransi floating point saat cek total bobot = 100.
const WeightSumTolerance = 0.01

// ValidateWeights: total ketiga persentase harus 100 (± toleransi).
func ValidateWeights(ww, pt, qa float64) bool {
	return math.Abs(ww+pt+qa-100) <= WeightSumTolerance
}

// Round2: pembulatan half-up ke 2 desimal.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeFinalGrade menghitung nilai akhir berbobot.
// Fungsi total: input di luar [0,100] tidak ditolak di sini — validasi range
// adalah urusan pemanggil (DTO / import row).
func ComputeFinalGrade(c GradeComponents, w Weights) float64 {
	ww := deref(c.WrittenWork)
	pt := deref(c.PerformanceTask)
	qa := deref(c.QuarterlyAssessment)

	v := ww*(w.WrittenWork/100) + pt*(w.PerformanceTask/100) + qa*(w.QuarterlyAssessment/100)
	return Round2(v)
}

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
