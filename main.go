package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"suratku_backend/internals/configs"
	scheduler "suratku_backend/internals/features/letters/scheduler"
	"suratku_backend/internals/features/letters/service"
	helper "suratku_backend/internals/helpers"
	middlewares "suratku_backend/internals/middlewares"
	routes "suratku_backend/internals/route"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"}, // sesuaikan dengan CIDR proxy jika perlu
		ErrorHandler:            helper.FromFiberError, // 404 route dsb. tetap envelope JSON
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// HTTP timeout guard (selaras dengan timeout render Chrome)
		ctx, cancel := context.WithTimeout(c.Context(), cfg.RenderTimeout+5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app, cfg)

	// 🖨️ Pipeline pembuatan surat: template → Chrome headless → disk
	store, err := service.NewTemplateStore()
	if err != nil {
		log.Fatalf("❌ Gagal memuat template surat: %v", err)
	}
	engine := service.NewRodEngine(cfg.RenderTimeout)
	pdfService, err := service.NewPDFService(store, engine, cfg.OutputDir, cfg.StaticDir)
	if err != nil {
		log.Fatalf("❌ Gagal menyiapkan direktori output: %v", err)
	}

	// ⏱ scheduler pembersih PDF lama
	scheduler.StartOutputCleanupScheduler(cfg.OutputDir, cfg.CleanupTTL, cfg.CleanupInterval)

	// ✅ Routes
	routes.SetupRoutes(app, pdfService)

	// 🔒 Keep-Alive & timeout koneksi server (render PDF bisa lama)
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 60 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup browser headless
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if err := engine.Close(); err != nil {
		log.Printf("⚠️ Gagal menutup browser: %v", err)
	}
}
