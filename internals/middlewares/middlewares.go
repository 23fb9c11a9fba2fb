package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"suratku_backend/internals/configs"
)

// SetupMiddlewares memasang middleware dasar dengan urutan: recovery paling
// luar, lalu logger, CORS, dan rate limiter global.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true, // Stack trace akan dicetak saat panic
	}))
	app.Use(LoggerMiddleware())
	app.Use(CorsMiddleware(cfg.AllowedOrigins))
	app.Use(GlobalRateLimiter())
}
