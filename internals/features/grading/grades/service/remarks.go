// file: internals/features/grading/grades/service/remarks.go
package service

/* ==============================
   Klasifikasi remarks
============================== */

const (
	RemarkOutstanding        = "Outstanding"
	RemarkVerySatisfactory   = "Very Satisfactory"
	RemarkSatisfactory       = "Satisfactory"
	RemarkFairlySatisfactory = "Fairly Satisfactory"
	RemarkDidNotMeet         = "Did Not Meet Expectations"
)

// FailingThreshold: di bawah ini dianggap gagal.
const FailingThreshold = 75.0

type Remark struct {
	Label     string `json:"label"`
	ColorTier string `json:"color_tier"`
}

// Classify memetakan nilai akhir ke band deskriptif. Band dievaluasi dari yang
// tertinggi; nilai batas masuk ke band atas (90 == Outstanding, 85 == Very
// Satisfactory, dst) — perbandingan batas eksak, bukan epsilon.
func Classify(finalGrade float64) Remark {
	switch {
	case finalGrade >= 90:
		return Remark{Label: RemarkOutstanding, ColorTier: "green"}
	case finalGrade >= 85:
		return Remark{Label: RemarkVerySatisfactory, ColorTier: "teal"}
	case finalGrade >= 80:
		return Remark{Label: RemarkSatisfactory, ColorTier: "blue"}
	case finalGrade >= 75:
		return Remark{Label: RemarkFairlySatisfactory, ColorTier: "amber"}
	default:
		return Remark{Label: RemarkDidNotMeet, ColorTier: "red"}
	}
}

func IsFailing(finalGrade float64) bool {
	return finalGrade < FailingThreshold
}
