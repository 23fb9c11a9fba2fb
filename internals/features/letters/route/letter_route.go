// internals/features/letters/route/letter_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	lCtrl "suratku_backend/internals/features/letters/controller"
	"suratku_backend/internals/features/letters/service"
	"suratku_backend/internals/middlewares"
)

func LetterRoutes(r fiber.Router, svc *service.PDFService) {
	h := lCtrl.NewLetterController(svc)

	// Prefix: /letters
	letters := r.Group("/letters")

	letters.Get("/templates", h.ListTemplates)

	// Endpoint generate dibatasi lebih ketat, render Chrome itu mahal
	generate := letters.Group("/", middlewares.GenerateRateLimiter())
	generate.Post("/surat-tugas", h.CreateSuratTugas)
	generate.Post("/lembar-persetujuan", h.CreateLembarPersetujuan)

	letters.Get("/download/:filename", h.DownloadLetter)
	letters.Get("/preview/:filename", h.PreviewLetter)
}
