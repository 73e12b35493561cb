// file: internals/scheduler/scheduler.go
package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	riskSvc "sekolahku_backend/internals/features/analytics/risk/service"
)

// Start menjalankan job terjadwal. Saat ini hanya satu: refresh snapshot
// risiko tiap jam 02:00 WIB, saat trafik sekolah kosong.
func Start(db *gorm.DB) *cron.Cron {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	risk := riskSvc.NewRiskService(db)
	if _, err := c.AddFunc("0 2 * * *", func() {
		started := time.Now()
		ok, failed, err := risk.RecomputeAll()
		if err != nil {
			log.Printf("[CRON] ❌ recompute risiko gagal: %v", err)
			return
		}
		log.Printf("[CRON] ✅ recompute risiko selesai dalam %s: ok=%d failed=%d",
			time.Since(started).Round(time.Millisecond), ok, failed)
	}); err != nil {
		log.Printf("[CRON] ❌ gagal mendaftarkan job risiko: %v", err)
	}

	c.Start()
	log.Println("[CRON] scheduler aktif")
	return c
}
