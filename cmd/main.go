package main

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"tiktok-downloader-api/config"
	"tiktok-downloader-api/middleware"
	"tiktok-downloader-api/pkg"
	"tiktok-downloader-api/routes"
)

func main() {
	cfg := config.LoadConfig()

	logger := buildLogger(cfg)
	defer logger.Sync()
	sugar := logger.Sugar()

	// Start the application and configure CORS
	app := fiber.New(fiber.Config{
		ErrorHandler: routes.ErrorHandler(sugar),
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin,Content-Type,Accept,Content-Length,Accept-Language,Accept-Encoding,Connection,Access-Control-Allow-Origin",
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,OPTIONS",
	}))
	app.Use(middleware.RequestLogger(sugar))

	client := &http.Client{Timeout: cfg.RequestTimeout}
	extractor := pkg.NewExtractor(cfg, client, sugar)

	// Media downloads can take much longer than page fetches
	mediaClient := &http.Client{Timeout: 10 * cfg.RequestTimeout}
	saver := pkg.NewMediaSaver(cfg, mediaClient, sugar)

	download := routes.NewDownloadHandler(extractor, saver, sugar)

	api := app.Group("/api")

	// Status
	api.Get("/status", routes.GetStatus)

	// Extraction
	api.Post("/download", download.Download)             // Resolve a watermark-free link from a JSON body
	api.Get("/download", download.Download)              // Same operation with the URL as query parameter
	api.Post("/download/save", download.DownloadAndSave) // Additionally store the media on disk

	sugar.Infow("server starting", "port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func buildLogger(cfg config.Config) *zap.Logger {
	var logger *zap.Logger
	var err error
	if cfg.Production {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Error building logger:", err)
	}
	return logger
}
