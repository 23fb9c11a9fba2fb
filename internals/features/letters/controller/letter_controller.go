// internals/features/letters/controller/letter_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"suratku_backend/internals/features/letters/dto"
	"suratku_backend/internals/features/letters/model"
	"suratku_backend/internals/features/letters/service"
	helper "suratku_backend/internals/helpers"
)

type LetterController struct {
	Service  *service.PDFService
	Validate *validator.Validate
}

func NewLetterController(svc *service.PDFService) *LetterController {
	return &LetterController{
		Service:  svc,
		Validate: dto.NewLetterValidator(),
	}
}

/* ===================== HANDLERS ===================== */

// POST /api/v1/letters/surat-tugas
func (h *LetterController) CreateSuratTugas(c *fiber.Ctx) error {
	var req dto.SuratTugasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := h.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	doc, err := h.Service.GenerateSuratTugas(c.UserContext(), &req)
	if err != nil {
		return h.gagalGenerate(c, "surat tugas", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPDFResponse(doc))
}

// POST /api/v1/letters/lembar-persetujuan
func (h *LetterController) CreateLembarPersetujuan(c *fiber.Ctx) error {
	var req dto.LembarPersetujuanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	req.Normalize()
	if err := h.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	doc, err := h.Service.GenerateLembarPersetujuan(c.UserContext(), &req)
	if err != nil {
		return h.gagalGenerate(c, "lembar persetujuan", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPDFResponse(doc))
}

// GET /api/v1/letters/templates
func (h *LetterController) ListTemplates(c *fiber.Ctx) error {
	types := model.SupportedLetterTypes()
	return helper.Success(c, "Daftar template surat", fiber.Map{
		"templates": types,
		"count":     len(types),
	})
}

// GET /api/v1/letters/download/:filename
func (h *LetterController) DownloadLetter(c *fiber.Ctx) error {
	filename := c.Params("filename")
	path, err := h.Service.ResolvePDF(filename)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "File tidak ditemukan")
	}
	return c.Download(path, filename)
}

// GET /api/v1/letters/preview/:filename
// Sama dengan download, tapi inline supaya PDF terbuka di tab browser.
func (h *LetterController) PreviewLetter(c *fiber.Ctx) error {
	filename := c.Params("filename")
	path, err := h.Service.ResolvePDF(filename)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "File tidak ditemukan")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))
	return c.SendFile(path)
}

/* ===================== ERROR MAPPING ===================== */

// gagalGenerate memetakan error pipeline ke response dengan pesan umum.
// Detail error hanya masuk log server.
func (h *LetterController) gagalGenerate(c *fiber.Ctx, jenis string, err error) error {
	log.Printf("[LETTERS] Gagal membuat %s: %v", jenis, err)

	switch {
	case errors.Is(err, service.ErrTemplateNotFound):
		return helper.Error(c, fiber.StatusBadRequest, "Jenis surat tidak dikenal")
	case errors.Is(err, service.ErrStorage):
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan PDF")
	case errors.Is(err, service.ErrPDFTooLarge):
		return helper.Error(c, fiber.StatusInternalServerError, "PDF yang dihasilkan terlalu besar")
	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat PDF")
	}
}
