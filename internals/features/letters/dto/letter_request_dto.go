// internals/features/letters/dto/letter_request_dto.go
package dto

import (
	"strings"

	"suratku_backend/internals/features/letters/model"
)

/* ===================== SHARED TYPES ===================== */

// Person dipakai untuk penandatangan dan penerima tugas. Nama dan jabatan
// wajib terisi (setelah trim); NIP, pangkat, dan instansi opsional.
type Person struct {
	Nama     string `json:"nama" validate:"required"`
	Jabatan  string `json:"jabatan" validate:"required"`
	NIP      string `json:"nip"`
	Pangkat  string `json:"pangkat"`
	Instansi string `json:"instansi"`
}

func (p *Person) Normalize() {
	p.Nama = strings.TrimSpace(p.Nama)
	p.Jabatan = strings.TrimSpace(p.Jabatan)
	p.NIP = strings.TrimSpace(p.NIP)
	p.Pangkat = strings.TrimSpace(p.Pangkat)
	p.Instansi = strings.TrimSpace(p.Instansi)
}

// Student adalah satu baris siswa pada daftar lampiran surat.
type Student struct {
	Nama  string `json:"nama" validate:"required"`
	NIS   string `json:"nis"`
	Kelas string `json:"kelas"`
}

func (s *Student) Normalize() {
	s.Nama = strings.TrimSpace(s.Nama)
	s.NIS = strings.TrimSpace(s.NIS)
	s.Kelas = strings.TrimSpace(s.Kelas)
}

// KeyValueItem menampilkan pasangan label-nilai pada isi surat
// (misal "Waktu : 08.00"). Urutan slice adalah urutan tampil.
type KeyValueItem struct {
	Label     string `json:"label" validate:"required"`
	Value     string `json:"value" validate:"required"`
	Separator string `json:"separator"`
}

func (k *KeyValueItem) Normalize() {
	k.Label = strings.TrimSpace(k.Label)
	k.Value = strings.TrimSpace(k.Value)
	k.Separator = strings.TrimSpace(k.Separator)
	if k.Separator == "" {
		k.Separator = ":"
	}
}

/* ===================== SURAT TUGAS ===================== */

type SuratTugasRequest struct {
	NomorSurat   string `json:"nomor_surat" validate:"required"`
	TanggalSurat string `json:"tanggal_surat" validate:"required,tanggal_indonesia"`
	TempatSurat  string `json:"tempat_surat"`
	Perihal      string `json:"perihal"`

	SchoolInfo    SchoolInfo `json:"school_info" validate:"required"`
	Penandatangan Person     `json:"penandatangan" validate:"required"`

	Assignees []Person       `json:"assignees" validate:"required,min=1,dive"`
	Students  []Student      `json:"students" validate:"omitempty,dive"`
	Details   []KeyValueItem `json:"details" validate:"omitempty,dive"`

	Pembuka string `json:"pembuka"`
	Penutup string `json:"penutup"`
}

// Normalize merapikan payload sebelum validasi: trim semua string dan isi
// nilai default. Field kosong yang wajib akan tertangkap validator.
func (r *SuratTugasRequest) Normalize() {
	r.NomorSurat = strings.TrimSpace(r.NomorSurat)
	r.TanggalSurat = strings.TrimSpace(r.TanggalSurat)
	r.TempatSurat = strings.TrimSpace(r.TempatSurat)
	r.Perihal = strings.TrimSpace(r.Perihal)
	if r.Perihal == "" {
		r.Perihal = "SURAT TUGAS"
	}

	r.SchoolInfo.Normalize()
	r.Penandatangan.Normalize()
	for i := range r.Assignees {
		r.Assignees[i].Normalize()
	}
	for i := range r.Students {
		r.Students[i].Normalize()
	}
	for i := range r.Details {
		r.Details[i].Normalize()
	}
	r.Pembuka = strings.TrimSpace(r.Pembuka)
	r.Penutup = strings.TrimSpace(r.Penutup)
}

/* ===================== LEMBAR PERSETUJUAN ===================== */

type LembarPersetujuanRequest struct {
	SchoolInfo SchoolInfo `json:"school_info" validate:"required"`

	// Daftar siswa peserta PKL, minimal satu.
	Students []Student `json:"students" validate:"required,min=1,dive"`

	// DU/DI tempat pelaksanaan.
	NamaPerusahaan string `json:"nama_perusahaan" validate:"required"`

	// "Malang, 12 Januari 2026". Kosong → diisi otomatis dari kab_kota +
	// tanggal hari ini saat render.
	TempatTanggal string `json:"tempat_tanggal" validate:"omitempty,tempat_tanggal"`

	// Pejabat sekolah yang mengetahui/menyetujui (opsional).
	Penandatangan *Person `json:"penandatangan" validate:"omitempty"`
}

func (r *LembarPersetujuanRequest) Normalize() {
	r.SchoolInfo.Normalize()
	for i := range r.Students {
		r.Students[i].Normalize()
	}
	r.NamaPerusahaan = strings.TrimSpace(r.NamaPerusahaan)
	r.TempatTanggal = strings.TrimSpace(r.TempatTanggal)
	if r.Penandatangan != nil {
		r.Penandatangan.Normalize()
	}
}

/* ===================== RESPONSE ===================== */

// PDFResponse adalah response sukses endpoint generate.
type PDFResponse struct {
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
	FileSize    int64  `json:"file_size"`
}

func NewPDFResponse(doc model.GeneratedDocument) PDFResponse {
	return PDFResponse{
		Filename:    doc.Filename,
		DownloadURL: "/api/v1/letters/download/" + doc.Filename,
		FileSize:    doc.Size,
	}
}
