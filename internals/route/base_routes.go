package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

const appVersion = "0.1.0"

func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("PDF Letter Service is running 🚀")
	})

	app.Get("/panic-test", func(c *fiber.Ctx) error {
		panic("Simulasi panic error!") // testing panic handler
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		uptime := time.Since(startTime).Seconds()

		return c.JSON(fiber.Map{
			"status":         "healthy",
			"version":        appVersion,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("RAILWAY_ENVIRONMENT"),
		})
	})
}
