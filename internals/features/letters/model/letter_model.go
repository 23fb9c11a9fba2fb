// internals/features/letters/model/letter_model.go
package model

/* ===================== LETTER TYPE ===================== */

// LetterType menentukan jenis surat sekaligus nama template yang dipakai.
type LetterType string

const (
	LetterTypeSuratTugas        LetterType = "surat_tugas"
	LetterTypeLembarPersetujuan LetterType = "lembar_persetujuan"
)

// SupportedLetterTypes mengembalikan daftar jenis surat yang didukung,
// berurutan sesuai urutan rilis.
func SupportedLetterTypes() []LetterType {
	return []LetterType{LetterTypeSuratTugas, LetterTypeLembarPersetujuan}
}

func (t LetterType) IsValid() bool {
	switch t {
	case LetterTypeSuratTugas, LetterTypeLembarPersetujuan:
		return true
	}
	return false
}

func (t LetterType) String() string { return string(t) }

/* ===================== GENERATED DOCUMENT ===================== */

// GeneratedDocument adalah hasil akhir pipeline render. Tidak ada registry
// dokumen yang disimpan di memori maupun database; direktori output adalah
// satu-satunya sumber kebenaran, dan nama file inilah satu-satunya handle.
type GeneratedDocument struct {
	Filename string
	Size     int64
}
