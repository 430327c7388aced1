package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sopclassify/internal/repository"
	"sopclassify/internal/service"
	"sopclassify/internal/session"
)

// Deps bundles everything the HTTP surface needs.
type Deps struct {
	Auth        service.AuthService
	Codec       *session.Codec
	SopRepo     repository.SopRepository
	Classifier  service.ClassificationService
	UploadDir   string
	PromGateway *prometheus.Registry
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
//
// Note: /sop/* and /classify* intentionally carry no server-side role
// check; the role only selects the dashboard the UI renders.
func RegisterRoutes(app *fiber.App, d Deps) {
	// Serve OpenAPI spec and a Swagger UI page
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Liveness probe
	app.Get("/healthz", LivenessProbe())

	// Prometheus scrape endpoint
	if d.PromGateway != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.PromGateway, promhttp.HandlerOpts{})))
	}

	auth := app.Group("/auth")
	auth.Post("/login", Login(d.Auth, d.Codec))
	auth.Post("/logout", Logout(d.Codec))
	auth.Get("/session", Session(d.Codec))

	sop := app.Group("/sop")
	sop.Post("/upload", UploadSop(d.SopRepo, d.UploadDir))
	sop.Get("/list", ListSop(d.SopRepo))

	app.Post("/classify", ClassifyText(d.Classifier))
	app.Post("/classify/file", ClassifyFile(d.Classifier))
}

// LivenessProbe reports process liveness; no dependencies are checked.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
