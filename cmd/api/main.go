package main

import (
	"context"
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"

	"sopclassify/internal/config"
	handlers "sopclassify/internal/http/handler"
	"sopclassify/internal/http/middleware"
	"sopclassify/internal/llm"
	"sopclassify/internal/otel"
	"sopclassify/internal/repository/fs"
	"sopclassify/internal/service"
	"sopclassify/internal/session"
	"sopclassify/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Initialize tracing (no-op when OTEL_SDK_DISABLED=true)
	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Initialize the reusable Gemini client once; it is a stateless HTTP
	// client shared by all requests.
	textModel, err := llm.NewGemini(ctx, cfg.Gemini)
	if err != nil {
		log.Fatalf("failed to initialize gemini client: %v", err)
	}

	// SOP repository and audit store live on the local filesystem
	sopRepo, err := fs.NewSopFS(cfg.Uploads.Dir)
	if err != nil {
		log.Fatalf("failed to initialize sop repository: %v", err)
	}
	auditStore, err := storage.NewDiskStore(cfg.Uploads.TempDir)
	if err != nil {
		log.Fatalf("failed to initialize audit store: %v", err)
	}

	// Session cookie signing
	codec, err := session.NewCodec(cfg.Session, cfg.Production())
	if err != nil {
		log.Fatalf("failed to initialize session codec: %v", err)
	}

	// Services
	authSvc := service.NewAuthService(service.NewStaticVerifier(service.DefaultCredentials()))
	classifySvc := service.NewClassificationService(sopRepo, textModel, nil, auditStore)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// OpenTelemetry HTTP spans
	app.Use(otelfiber.Middleware())

	// Prometheus request metrics
	promReg := prometheus.NewRegistry()
	promMiddleware, err := middleware.NewPrometheusMiddleware(promReg)
	if err != nil {
		log.Fatalf("failed to initialize prometheus middleware: %v", err)
	}
	app.Use(promMiddleware.Handler())

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, handlers.Deps{
		Auth:        authSvc,
		Codec:       codec,
		SopRepo:     sopRepo,
		Classifier:  classifySvc,
		UploadDir:   cfg.Uploads.Dir,
		PromGateway: promReg,
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
