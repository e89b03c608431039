package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/rosabel/glambook/internal/config"
	"github.com/rosabel/glambook/internal/database"
	"github.com/rosabel/glambook/internal/handler"
	"github.com/rosabel/glambook/internal/imagehost"
	"github.com/rosabel/glambook/internal/middleware"
	"github.com/rosabel/glambook/internal/queue"
	"github.com/rosabel/glambook/internal/repository"
	"github.com/rosabel/glambook/internal/router"
	"github.com/rosabel/glambook/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the response cache, the rate limiter and the
	// ledger snapshot cache.  nil means degraded but functional.
	rdb := config.NewRedisClient()

	// Background consumer records confirmed bookings from the broker.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	// Repositories.
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	artists := repository.NewArtistRepo(db)
	availability := repository.NewAvailabilityRepo(db)
	bookings := repository.NewBookingRepo(db)
	reviews := repository.NewReviewRepo(db)
	saved := repository.NewSavedArtistRepo(db)
	classes := repository.NewMasterclassRepo(db)

	// Domain services.
	ledger := service.NewAvailabilityLedger(availability, rdb, config.LedgerCacheTTL())
	coordinator := service.NewBookingCoordinator(artists, bookings, ledger)
	toggle := service.NewSavedArtistToggle(saved, artists)

	images := imagehost.New(cfg.ImageHostURL)

	// Handlers.
	authH := handler.NewAuthHandler(cfg, users, tokens, artists)
	artistH := handler.NewArtistHandler(cfg, artists, images)
	scheduleH := handler.NewScheduleHandler(ledger)
	bookingH := handler.NewBookingHandler(coordinator, bookings)
	reviewH := handler.NewReviewHandler(reviews, bookings)
	savedH := handler.NewSavedArtistHandler(toggle, saved)
	classH := handler.NewMasterclassHandler(classes)
	publicH := handler.NewPublicHandler(artists, reviews, ledger)
	uploadH := handler.NewUploadHandler(cfg, images)

	e := echo.New()
	e.Validator = handler.NewValidator()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, uploadH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, reviewH, bookingH, classH,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterArtist(e, artistH, scheduleH, bookingH, classH, cfg.JWTSecret)
	router.RegisterCustomer(e, bookingH, reviewH, savedH, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
