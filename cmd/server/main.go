package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/jzynonet/warner-music-guardian/internal/config"
	"github.com/jzynonet/warner-music-guardian/internal/db"
	"github.com/jzynonet/warner-music-guardian/internal/handler"
	"github.com/jzynonet/warner-music-guardian/internal/middleware"
	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/repository"
	"github.com/jzynonet/warner-music-guardian/internal/router"
	"github.com/jzynonet/warner-music-guardian/internal/service"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "guardian-api")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	handler.InitMetrics(pool)

	// Repositories
	artistRepo := repository.NewArtistRepo(pool)
	songRepo := repository.NewSongRepo(pool)
	keywordRepo := repository.NewKeywordRepo(pool)
	videoRepo := repository.NewVideoRepo(pool)
	ruleRepo := repository.NewRuleRepo(pool)
	autoUpdateRepo := repository.NewAutoUpdateRepo(pool)
	scheduleRepo := repository.NewScheduleRepo(pool)
	searchLogRepo := repository.NewSearchLogRepo(pool)
	statsRepo := repository.NewStatsRepo(pool)

	// External clients. Missing credentials disable the integration instead
	// of failing startup.
	var youtubeClient *service.YouTubeClient
	if cfg.YouTubeConfigured() {
		youtubeClient, err = service.NewYouTubeClient(ctx, cfg.YouTubeAPIKey)
		if err != nil {
			log.Printf("youtube client init failed, search disabled: %v", err)
		}
	} else {
		log.Println("YOUTUBE_API_KEY not set, search disabled")
	}

	var spotifyClient *service.SpotifyClient
	if cfg.SpotifyConfigured() {
		spotifyClient, err = service.NewSpotifyClient(ctx, cfg.SpotifyClientID, cfg.SpotifyClientSecret)
		if err != nil {
			log.Printf("spotify client init failed, catalog import disabled: %v", err)
		}
	} else {
		log.Println("Spotify credentials not set, catalog import disabled")
	}

	musicbrainzClient := service.NewMusicBrainzClient(cfg.MusicBrainzContact)

	// Services
	detector := service.NewDetector()
	ruleSvc := service.NewRuleService(ruleRepo)
	videoSvc := service.NewVideoService(videoRepo, cache)
	searchSvc := service.NewSearchService(youtubeClient, detector, ruleSvc,
		videoRepo, keywordRepo, songRepo, searchLogRepo, cache)
	statsSvc := service.NewStatsService(statsRepo, searchLogRepo, autoUpdateRepo, cache)
	importSvc := service.NewImportService(spotifyClient, artistRepo, songRepo)
	exportSvc := service.NewExportService(videoRepo)
	authSvc := service.NewAuthService(cfg.AdminPassword, cfg.JWTSecret)
	scheduleSvc := service.NewScheduleService(scheduleRepo, searchSvc)

	sources := map[string]service.CatalogSource{
		model.SourceMusicBrainz: musicbrainzClient,
	}
	if spotifyClient != nil {
		sources[model.SourceSpotify] = spotifyClient
	}
	autoUpdateSvc := service.NewAutoUpdateService(autoUpdateRepo, artistRepo, keywordRepo, sources)

	// Background workers
	autoUpdateWorker := service.NewAutoUpdateWorker(autoUpdateSvc, time.Hour)
	go autoUpdateWorker.Start(ctx)
	go scheduleSvc.Start(ctx)

	// Handlers
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Artist:     handler.NewArtistHandler(artistRepo),
		Song:       handler.NewSongHandler(songRepo, importSvc),
		Keyword:    handler.NewKeywordHandler(keywordRepo, artistRepo),
		Video:      handler.NewVideoHandler(videoSvc),
		Rule:       handler.NewRuleHandler(ruleSvc, detector),
		Search:     handler.NewSearchHandler(searchSvc),
		Stats:      handler.NewStatsHandler(statsSvc),
		Export:     handler.NewExportHandler(exportSvc),
		AutoUpdate: handler.NewAutoUpdateHandler(autoUpdateSvc),
		Schedule:   handler.NewScheduleHandler(scheduleSvc),
		Health: handler.NewHealthHandler(pool, cache.Client(), handler.Capabilities{
			YouTube:     youtubeClient != nil,
			Spotify:     spotifyClient != nil,
			MusicBrainz: true,
		}),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Music Guardian API",
		ServerHeader: "Guardian",
		BodyLimit:    10 * 1024 * 1024,
	})
	router.Setup(app, handlers, authSvc, cfg.CORSOrigins)

	// Graceful shutdown
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		log.Println("shutting down")
		autoUpdateWorker.Stop()
		scheduleSvc.Stop()
		cancel()

		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("guardian backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
