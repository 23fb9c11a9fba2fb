package scheduler

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// StartOutputCleanupScheduler menghapus PDF lama dari direktori output
// secara berkala. File hasil generate hanya perlu hidup sebentar sampai
// client mengunduhnya. TTL <= 0 mematikan scheduler.
func StartOutputCleanupScheduler(outputDir string, ttl, interval time.Duration) {
	if ttl <= 0 {
		log.Println("[CLEANUP] Pembersihan PDF nonaktif (TTL tidak diset)")
		return
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	go func() {
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan PDF lama...")

			removed, err := cleanupOldPDFs(outputDir, ttl)
			if err != nil {
				log.Printf("[CLEANUP ERROR] Gagal membaca direktori output: %v", err)
			} else if removed > 0 {
				log.Printf("[CLEANUP] %d PDF kadaluarsa dihapus", removed)
			} else {
				log.Println("[CLEANUP] Tidak ada PDF yang memenuhi syarat dihapus")
			}

			time.Sleep(interval)
		}
	}()
}

// cleanupOldPDFs menghapus file *.pdf yang lebih tua dari TTL. File selain
// PDF tidak disentuh.
func cleanupOldPDFs(outputDir string, ttl time.Duration) (int, error) {
	paths, err := filepath.Glob(filepath.Join(outputDir, "*.pdf"))
	if err != nil {
		return 0, err
	}

	deleteBefore := time.Now().Add(-ttl)
	removed := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if info.ModTime().Before(deleteBefore) {
			if err := os.Remove(path); err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus %s: %v", filepath.Base(path), err)
				continue
			}
			removed++
		}
	}
	return removed, nil
}
