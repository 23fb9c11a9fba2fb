package service

import "errors"

// Sentinel error pipeline pembuatan PDF. Controller memetakan error ini ke
// status HTTP; detailnya hanya masuk log, tidak pernah bocor ke klien.
var (
	ErrTemplateNotFound = errors.New("template surat tidak dikenal")
	ErrRender           = errors.New("render surat gagal")
	ErrPDFGeneration    = errors.New("pembuatan PDF gagal")
	ErrPDFTooLarge      = errors.New("ukuran PDF melebihi batas")
	ErrStorage          = errors.New("penyimpanan PDF gagal")
	ErrNotFound         = errors.New("file tidak ditemukan")

	// Error browser headless.
	ErrBrowserConnect = errors.New("gagal terhubung ke browser")
	ErrPageCreate     = errors.New("gagal membuat halaman browser")
	ErrPageLoad       = errors.New("gagal memuat halaman")
)
