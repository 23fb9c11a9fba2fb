// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	letterRoute "suratku_backend/internals/features/letters/route"
	"suratku_backend/internals/features/letters/service"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, svc *service.PDFService) {
	startTime = time.Now()

	// ===================== BASE =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app)

	// ===================== API v1 =====================
	log.Println("[INFO] Setting up API v1 group...")
	v1 := app.Group("/api/v1")

	log.Println("[INFO] Mounting Letter routes...")
	letterRoute.LetterRoutes(v1, svc)
}
