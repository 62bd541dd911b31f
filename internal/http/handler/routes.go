package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docshare/internal/auth"
	"docshare/internal/http/middleware"
	"docshare/internal/service"
)

// Services bundles the use-case dependencies the routes need.
type Services struct {
	Users         service.UserService
	Documents     service.DocumentService
	Sharing       service.SharingService
	Notifications service.NotificationService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Keep
// handlers minimal and free of business logic; they resolve the actor
// from the auth middleware and delegate to the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, tokens *auth.TokenIssuer, reg *prometheus.Registry, svcs Services) {
	// Serve OpenAPI spec and Swagger UI
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

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	app.Post("/auth/register", Register(svcs.Users))
	app.Post("/auth/login", Login(svcs.Users))

	// Everything below requires an authenticated actor.
	authed := app.Group("", middleware.Auth(tokens))

	authed.Get("/me", GetProfile(svcs.Users))
	authed.Put("/me", UpdateProfile(svcs.Users))

	authed.Post("/documents", UploadDocument(svcs.Documents))
	authed.Get("/documents", ListDocuments(svcs.Documents))
	authed.Get("/documents/shared-with-me", ListSharedWithMe(svcs.Sharing))
	authed.Get("/documents/:id", GetDocument(svcs.Documents))
	authed.Put("/documents/:id", UpdateDocument(svcs.Documents))
	authed.Delete("/documents/:id", DeleteDocument(svcs.Documents))
	authed.Get("/documents/:id/download", DownloadDocument(svcs.Documents))

	authed.Post("/documents/:id/collaborators", ShareDocument(svcs.Sharing))
	authed.Get("/documents/:id/collaborators", ListCollaborators(svcs.Sharing))
	authed.Delete("/documents/:id/collaborators/:userId", UnshareDocument(svcs.Sharing))

	authed.Get("/notifications", ListNotifications(svcs.Notifications))
	authed.Post("/notifications/:id/read", MarkNotificationRead(svcs.Notifications))
	authed.Post("/notifications/read-all", MarkAllNotificationsRead(svcs.Notifications))
}
