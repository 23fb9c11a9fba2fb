package helper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrTanggalInvalid dikembalikan saat string tanggal tidak bisa diparse
// sebagai tanggal kalender Indonesia yang sah.
var ErrTanggalInvalid = errors.New("tanggal indonesia tidak valid")

var bulanIndonesia = map[string]time.Month{
	"januari":   time.January,
	"februari":  time.February,
	"maret":     time.March,
	"april":     time.April,
	"mei":       time.May,
	"juni":      time.June,
	"juli":      time.July,
	"agustus":   time.August,
	"september": time.September,
	"oktober":   time.October,
	"november":  time.November,
	"desember":  time.December,
}

var namaBulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// ParseTanggalIndonesia mem-parse tanggal format naratif Indonesia
// ("1 Juli 2024") menjadi time.Time. Nama bulan tidak case-sensitive.
// Tanggal yang tidak ada di kalender (misal "31 Februari 2025") ditolak,
// tidak pernah di-fallback ke tanggal lain.
func ParseTanggalIndonesia(s string) (time.Time, error) {
	parts := strings.Fields(strings.TrimSpace(s))
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrTanggalInvalid, s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: hari %q", ErrTanggalInvalid, parts[0])
	}

	month, ok := bulanIndonesia[strings.ToLower(parts[1])]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: bulan %q", ErrTanggalInvalid, parts[1])
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 1 {
		return time.Time{}, fmt.Errorf("%w: tahun %q", ErrTanggalInvalid, parts[2])
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date menormalkan tanggal di luar rentang (31 Februari → 3 Maret),
	// jadi hasilnya harus dicek balik terhadap komponen aslinya.
	if t.Day() != day || t.Month() != month || t.Year() != year {
		return time.Time{}, fmt.Errorf("%w: %q bukan tanggal kalender", ErrTanggalInvalid, s)
	}
	return t, nil
}

// FormatTanggalIndonesia menulis time.Time kembali ke format naratif
// Indonesia, misal "1 Juli 2024".
func FormatTanggalIndonesia(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), namaBulan[int(t.Month())-1], t.Year())
}
