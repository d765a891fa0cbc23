package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/jzynonet/warner-music-guardian/internal/handler"
	"github.com/jzynonet/warner-music-guardian/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Auth       *handler.AuthHandler
	Artist     *handler.ArtistHandler
	Song       *handler.SongHandler
	Keyword    *handler.KeywordHandler
	Video      *handler.VideoHandler
	Rule       *handler.RuleHandler
	Search     *handler.SearchHandler
	Stats      *handler.StatsHandler
	Export     *handler.ExportHandler
	AutoUpdate *handler.AutoUpdateHandler
	Schedule   *handler.ScheduleHandler
	Health     *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber
// app. Everything under /api except login and health requires a session token.
func Setup(app *fiber.App, h *Handlers, verifier middleware.TokenVerifier, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics (no auth)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")
	api.Use(middleware.NewAPIRateLimiter().Handler())

	// Open endpoints: the console probes capabilities before logging in.
	api.Get("/health", h.Health.APIHealth)
	api.Post("/auth/login", h.Auth.Login, middleware.NewAuthRateLimiter().Handler())

	authed := api.Group("", middleware.NewAuth(verifier))

	// Artists
	authed.Get("/artists", h.Artist.List)
	authed.Post("/artists", h.Artist.Create)
	authed.Get("/artists/:id", h.Artist.Get)
	authed.Put("/artists/:id", h.Artist.Update)
	authed.Delete("/artists/:id", h.Artist.Delete)

	// Songs. /clear before /:id so the literal route wins.
	authed.Get("/songs", h.Song.List)
	authed.Post("/songs", h.Song.Create)
	authed.Delete("/songs/clear", h.Song.Clear)
	authed.Post("/songs/bulk-import", h.Song.BulkImport)
	authed.Post("/songs/preview-from-spotify", h.Song.PreviewFromSpotify)
	authed.Post("/songs/import-from-spotify", h.Song.ImportFromSpotify)
	authed.Put("/songs/:id", h.Song.Update)
	authed.Delete("/songs/:id", h.Song.Delete)

	// Keywords
	authed.Get("/keywords", h.Keyword.List)
	authed.Post("/keywords", h.Keyword.Create)
	authed.Delete("/keywords/clear", h.Keyword.Clear)
	authed.Post("/keywords/bulk-import", h.Keyword.BulkImport)
	authed.Get("/keywords/template", h.Keyword.Template)
	authed.Put("/keywords/:id", h.Keyword.Update)
	authed.Delete("/keywords/:id", h.Keyword.Delete)

	// Videos
	authed.Get("/videos", h.Video.List)
	authed.Post("/videos/batch-update", h.Video.BatchUpdate)
	authed.Post("/videos/batch-delete", h.Video.BatchDelete)
	authed.Post("/videos/clear-all", h.Video.ClearAll)
	authed.Put("/videos/:id", h.Video.Update)
	authed.Delete("/videos/:id", h.Video.Delete)

	// Auto-flag rules
	authed.Get("/auto-flag-rules", h.Rule.List)
	authed.Post("/auto-flag-rules", h.Rule.Create)
	authed.Get("/auto-flag-rules/recommended", h.Rule.Recommended)
	authed.Post("/auto-flag-rules/install-recommended", h.Rule.InstallRecommended)
	authed.Put("/auto-flag-rules/:id", h.Rule.Update)
	authed.Delete("/auto-flag-rules/:id", h.Rule.Delete)

	// Search. Each run burns YouTube quota, so these get their own limiter.
	searchLimiter := middleware.NewSearchRateLimiter().Handler()
	authed.Post("/search", h.Search.SearchKeywords, searchLimiter)
	authed.Post("/search/songs", h.Search.SearchSongs, searchLimiter)
	authed.Post("/analyze-video", h.Search.AnalyzeVideo, searchLimiter)
	authed.Post("/smart-scan", h.Search.SmartScan)
	authed.Get("/logs", h.Search.Logs)

	// Stats and exports
	authed.Get("/stats", h.Stats.GetStats)
	exportLimiter := middleware.NewExportRateLimiter().Handler()
	authed.Get("/export/csv", h.Export.CSV, exportLimiter)
	authed.Get("/export/excel", h.Export.Excel, exportLimiter)

	// Auto-update
	authed.Get("/auto-update/status", h.AutoUpdate.Status)
	authed.Post("/auto-update/enable/:id", h.AutoUpdate.Enable)
	authed.Post("/auto-update/disable/:id", h.AutoUpdate.Disable)
	authed.Post("/auto-update/run/:id", h.AutoUpdate.Run)
	authed.Post("/auto-update/run-all", h.AutoUpdate.RunAll)

	// Schedule
	authed.Get("/schedule", h.Schedule.Get)
	authed.Post("/schedule", h.Schedule.Set)
}
