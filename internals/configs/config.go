package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}
}

// =======================
// KONFIGURASI SERVICE
// =======================

// Config adalah seluruh konfigurasi runtime service surat.
type Config struct {
	Port      string
	OutputDir string // direktori hasil PDF
	StaticDir string // direktori aset lokal (logo sekolah)

	AllowedOrigins []string

	// Batas waktu render satu dokumen di browser headless.
	RenderTimeout time.Duration

	// Umur maksimal file PDF sebelum dibersihkan scheduler. TTL <= 0
	// berarti pembersihan dimatikan.
	CleanupTTL      time.Duration
	CleanupInterval time.Duration
}

func Load() *Config {
	cfg := &Config{
		Port:            GetEnv("PORT", "3000"),
		OutputDir:       GetEnv("PDF_OUTPUT_DIR", "output"),
		StaticDir:       GetEnv("STATIC_DIR", "static"),
		AllowedOrigins:  splitOrigins(GetEnv("ALLOWED_ORIGINS", "*")),
		RenderTimeout:   time.Duration(getEnvInt("RENDER_TIMEOUT_SECONDS", 30)) * time.Second,
		CleanupTTL:      time.Duration(getEnvInt("PDF_CLEANUP_TTL_MINUTES", 0)) * time.Minute,
		CleanupInterval: time.Duration(getEnvInt("PDF_CLEANUP_INTERVAL_SECONDS", 300)) * time.Second,
	}

	log.Printf("[INFO] Output PDF     : %s", cfg.OutputDir)
	log.Printf("[INFO] Aset statis    : %s", cfg.StaticDir)
	log.Printf("[INFO] Render timeout : %s", cfg.RenderTimeout)
	if cfg.CleanupTTL > 0 {
		log.Printf("[INFO] Cleanup PDF    : TTL %s, interval %s", cfg.CleanupTTL, cfg.CleanupInterval)
	} else {
		log.Println("[INFO] Cleanup PDF    : nonaktif")
	}
	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(raw) == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("⚠️ %s=%q bukan angka, memakai default %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}
