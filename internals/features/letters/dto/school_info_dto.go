// internals/features/letters/dto/school_info_dto.go
package dto

import "strings"

/* ===================== SCHOOL INFO (KOP SURAT) ===================== */

// SchoolInfo adalah data kop surat. Field wajib mengikuti kebutuhan minimal
// kop resmi; sisanya opsional dan hanya dirender bila terisi.
type SchoolInfo struct {
	NamaSekolah string `json:"nama_sekolah" validate:"required"`
	AlamatJalan string `json:"alamat_jalan" validate:"required"`
	Kelurahan   string `json:"kelurahan"`
	Kecamatan   string `json:"kecamatan"`
	KabKota     string `json:"kab_kota" validate:"required"`
	Provinsi    string `json:"provinsi" validate:"required"`
	KodePos     string `json:"kode_pos"`
	Telepon     string `json:"telepon"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	LogoURL     string `json:"logo_url"`

	// Baris tambahan kop (akreditasi, NSS, dsb). Duplikat dibuang sebelum render.
	KopInfo []string `json:"kop_info"`
}

// Normalize merapikan seluruh field string sebelum validasi.
func (s *SchoolInfo) Normalize() {
	s.NamaSekolah = strings.TrimSpace(s.NamaSekolah)
	s.AlamatJalan = strings.TrimSpace(s.AlamatJalan)
	s.Kelurahan = strings.TrimSpace(s.Kelurahan)
	s.Kecamatan = strings.TrimSpace(s.Kecamatan)
	s.KabKota = strings.TrimSpace(s.KabKota)
	s.Provinsi = strings.TrimSpace(s.Provinsi)
	s.KodePos = strings.TrimSpace(s.KodePos)
	s.Telepon = strings.TrimSpace(s.Telepon)
	s.Email = strings.TrimSpace(s.Email)
	s.Website = strings.TrimSpace(s.Website)
	s.LogoURL = strings.TrimSpace(s.LogoURL)
	for i := range s.KopInfo {
		s.KopInfo[i] = strings.TrimSpace(s.KopInfo[i])
	}
}

// Preprocess menyiapkan data kop sebelum render: membuang baris kop duplikat
// dan mengosongkan kelurahan/kecamatan yang sudah tertulis di alamat_jalan
// supaya tidak tampil dobel ("Tunjungtirto, Tunjungtirto").
func (s *SchoolInfo) Preprocess() {
	s.KopInfo = DedupKopInfo(s.KopInfo)

	if s.Kelurahan != "" && strings.Contains(s.AlamatJalan, s.Kelurahan) {
		s.Kelurahan = ""
	}
	if s.Kecamatan != "" && strings.Contains(s.AlamatJalan, s.Kecamatan) {
		s.Kecamatan = ""
	}
}

// DedupKopInfo membuang baris duplikat tanpa mengubah urutan. Perbandingan
// tidak case-sensitive; kemunculan pertama yang dipertahankan. Baris kosong
// ikut dibuang. Fungsi ini idempoten.
func DedupKopInfo(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key := strings.ToLower(line)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, line)
	}
	return out
}

/* ===================== BARIS KOP UNTUK TEMPLATE ===================== */

// AlamatLengkap menyusun satu baris alamat dari komponen yang terisi.
func (s SchoolInfo) AlamatLengkap() string {
	parts := make([]string, 0, 5)
	for _, p := range []string{s.AlamatJalan, s.Kelurahan, s.Kecamatan, s.KabKota, s.Provinsi} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	line := strings.Join(parts, ", ")
	if s.KodePos != "" {
		line += " " + s.KodePos
	}
	return line
}

// KontakLine menyusun baris kontak kop dari telepon/email/website yang terisi.
func (s SchoolInfo) KontakLine() string {
	parts := make([]string, 0, 3)
	if s.Telepon != "" {
		parts = append(parts, "Telp. "+s.Telepon)
	}
	if s.Email != "" {
		parts = append(parts, "Email: "+s.Email)
	}
	if s.Website != "" {
		parts = append(parts, "Website: "+s.Website)
	}
	return strings.Join(parts, " | ")
}
