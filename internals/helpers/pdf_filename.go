package helper

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Hapus karakter selain huruf, angka, titik, dash, underscore
var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// Whitelist nama file hasil generate (tanpa spasi, tanpa path separator)
var allowedPDFNameRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

func SanitizeFilename(filename string) string {
	return unsafeFilenameRe.ReplaceAllString(filename, "_")
}

// GeneratePDFFilename membuat nama file unik untuk PDF yang digenerate.
// Format: <jenis-surat>_<timestamp>_<uuid>.pdf. Nama file selalu dibuat
// server, tidak pernah diambil dari input klien.
func GeneratePDFFilename(letterType string) string {
	timestamp := time.Now().Format("20060102T150405")
	uuidStr := uuid.New().String()
	safeType := SanitizeFilename(strings.ToLower(letterType))
	return fmt.Sprintf("%s_%s_%s.pdf", safeType, timestamp, uuidStr)
}

// IsSafePDFFilename memvalidasi nama file dari path parameter download/preview.
// Menolak komponen path traversal ("..", "/", "\"), karakter di luar
// whitelist, dan nama tanpa ekstensi .pdf.
func IsSafePDFFilename(name string) bool {
	if name == "" || name == ".pdf" || len(name) > 255 {
		return false
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return false
	}
	if !strings.HasSuffix(name, ".pdf") {
		return false
	}
	return allowedPDFNameRe.MatchString(name)
}
