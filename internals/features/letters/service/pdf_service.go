// internals/features/letters/service/pdf_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"suratku_backend/internals/features/letters/dto"
	"suratku_backend/internals/features/letters/model"
	helper "suratku_backend/internals/helpers"
)

// MaxPDFSize membatasi ukuran hasil render (10 MB). PDF surat normal
// hanya puluhan KB, lebih dari ini hampir pasti payload yang aneh.
const MaxPDFSize = 10 * 1024 * 1024

/* =======================================================
   SERVICE
   ======================================================= */

// PDFService mengorkestrasi pipeline pembuatan surat: template HTML,
// render ke PDF, lalu simpan ke direktori output.
type PDFService struct {
	store     *TemplateStore
	renderer  HTMLRenderer
	outputDir string
	staticDir string
	maxSize   int64
}

func NewPDFService(store *TemplateStore, renderer HTMLRenderer, outputDir, staticDir string) (*PDFService, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: membuat direktori output: %v", ErrStorage, err)
	}
	return &PDFService{
		store:     store,
		renderer:  renderer,
		outputDir: outputDir,
		staticDir: staticDir,
		maxSize:   MaxPDFSize,
	}, nil
}

// View yang diterima template: request yang sudah dinormalisasi plus
// logo yang sudah diresolusi jadi src siap pakai.
type suratTugasView struct {
	dto.SuratTugasRequest
	LogoSrc string
}

type lembarPersetujuanView struct {
	dto.LembarPersetujuanRequest
	LogoSrc string
}

/* =======================================================
   PEMBUATAN SURAT
   ======================================================= */

// GenerateSuratTugas merender surat tugas dan menyimpannya sebagai PDF.
// Request diasumsikan sudah lolos validasi di controller.
func (s *PDFService) GenerateSuratTugas(ctx context.Context, req *dto.SuratTugasRequest) (model.GeneratedDocument, error) {
	req.SchoolInfo.Preprocess()

	view := suratTugasView{
		SuratTugasRequest: *req,
		LogoSrc:           resolveLogo(s.staticDir, req.SchoolInfo.LogoURL),
	}
	return s.generate(ctx, model.LetterTypeSuratTugas, view)
}

// GenerateLembarPersetujuan merender lembar persetujuan PKL. Bila
// tempat_tanggal kosong, diisi default kota sekolah plus tanggal hari ini.
func (s *PDFService) GenerateLembarPersetujuan(ctx context.Context, req *dto.LembarPersetujuanRequest) (model.GeneratedDocument, error) {
	req.SchoolInfo.Preprocess()

	if strings.TrimSpace(req.TempatTanggal) == "" {
		req.TempatTanggal = fmt.Sprintf("%s, %s", req.SchoolInfo.KabKota, helper.FormatTanggalIndonesia(time.Now()))
	}

	view := lembarPersetujuanView{
		LembarPersetujuanRequest: *req,
		LogoSrc:                  resolveLogo(s.staticDir, req.SchoolInfo.LogoURL),
	}
	return s.generate(ctx, model.LetterTypeLembarPersetujuan, view)
}

// generate menjalankan pipeline render untuk satu jenis surat.
func (s *PDFService) generate(ctx context.Context, letterType model.LetterType, data any) (model.GeneratedDocument, error) {
	if !letterType.IsValid() {
		return model.GeneratedDocument{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, letterType)
	}

	htmlContent, err := s.store.Render(letterType, data)
	if err != nil {
		return model.GeneratedDocument{}, err
	}

	pdf, err := s.renderer.RenderHTML(ctx, htmlContent)
	if err != nil {
		return model.GeneratedDocument{}, err
	}

	if int64(len(pdf)) > s.maxSize {
		return model.GeneratedDocument{}, fmt.Errorf("%w: %d bytes (maksimal %d)", ErrPDFTooLarge, len(pdf), s.maxSize)
	}

	// Nama file selalu dibuat server, tidak pernah dari input client
	filename := helper.GeneratePDFFilename(string(letterType))
	fullPath := filepath.Join(s.outputDir, filename)

	if err := os.WriteFile(fullPath, pdf, 0o644); err != nil {
		_ = os.Remove(fullPath)
		return model.GeneratedDocument{}, fmt.Errorf("%w: menulis %s: %v", ErrStorage, filename, err)
	}

	log.Printf("[LETTERS] PDF dibuat: %s (%d bytes)", filename, len(pdf))
	return model.GeneratedDocument{Filename: filename, Size: int64(len(pdf))}, nil
}

/* =======================================================
   PENGAMBILAN FILE
   ======================================================= */

// ResolvePDF memetakan nama file dari URL ke path absolut di direktori
// output. Nama yang tidak aman dan file yang tidak ada sama-sama
// mengembalikan ErrNotFound, caller tidak perlu membedakannya.
func (s *PDFService) ResolvePDF(filename string) (string, error) {
	if !helper.IsSafePDFFilename(filename) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, filename)
	}

	absDir, err := filepath.Abs(s.outputDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	fullPath := filepath.Join(absDir, filename)

	// Jaga-jaga ganda: hasil join harus tetap di dalam direktori output
	if !strings.HasPrefix(fullPath, absDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, filename)
	}

	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %q", ErrNotFound, filename)
	}
	return fullPath, nil
}
