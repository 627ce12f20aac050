package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/expo-event-management/internal/config"     // Internal config loader
	"github.com/iliyamo/expo-event-management/internal/database"   // MySQL pool for accounts
	"github.com/iliyamo/expo-event-management/internal/engine"     // Booking engines over the flat-file ledgers
	"github.com/iliyamo/expo-event-management/internal/handler"    // HTTP handlers
	"github.com/iliyamo/expo-event-management/internal/middleware" // Rate limiting and response caching
	"github.com/iliyamo/expo-event-management/internal/queue"      // Activity log consumer
	"github.com/iliyamo/expo-event-management/internal/repository" // Flat-file and SQL repositories
	"github.com/iliyamo/expo-event-management/internal/router"     // Route registration
)

func main() {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// Accounts and refresh tokens live in MySQL; everything the booking
	// engines touch lives in comma-delimited files under cfg.DataDir.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	venues := repository.NewVenueRepo(cfg.DataDir)
	tickets := repository.NewTicketRepo(cfg.DataDir)
	booths := repository.NewBoothRepo(cfg.DataDir)
	sessions := repository.NewSessionRepo(cfg.DataDir)
	ticketRefunds := repository.NewTicketRefundLog(cfg.DataDir)
	boothRefunds := repository.NewBoothRefundLog(cfg.DataDir)
	announcements := repository.NewAnnouncementRepo(cfg.DataDir)
	feedback := repository.NewFeedbackRepo(cfg.DataDir)

	// One lock registry serializes all mutations per venue.
	locks := engine.NewVenueLocks()
	venueEngine := engine.NewVenueEngine(venues, tickets, booths, sessions, locks)
	ticketEngine := engine.NewTicketEngine(venues, tickets, ticketRefunds, locks)
	boothEngine := engine.NewBoothEngine(venues, booths, boothRefunds, locks)
	scheduler := engine.NewSessionScheduler(venues, booths, sessions, locks)
	reporter := engine.NewReporter(venues, tickets, booths, sessions)

	authH := handler.NewAuthHandler(cfg, users, tokens)
	venueH := handler.NewVenueHandler(venueEngine, boothEngine, scheduler, reporter)
	ticketH := handler.NewTicketHandler(ticketEngine)
	boothH := handler.NewBoothHandler(boothEngine, venueEngine)
	sessionH := handler.NewSessionHandler(scheduler)
	announceH := handler.NewAnnouncementHandler(announcements)
	feedbackH := handler.NewFeedbackHandler(feedback)

	e := echo.New()

	// Redis-backed middleware degrade to no-ops when Redis is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and caching disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	// The response cache is keyed by route and query only, so it is safe
	// solely on the public browse routes and is wired there, not globally.
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, venueH, cacheMW)
	router.RegisterAttendee(e, ticketH, feedbackH, cfg.JWTSecret)
	router.RegisterExhibitor(e, boothH, sessionH, cfg.JWTSecret)
	router.RegisterAdmin(e, venueH, announceH, feedbackH, cfg.JWTSecret)
	router.RegisterNotices(e, announceH, cfg.JWTSecret)

	// Background consumer mirrors booking activity into logs/activity.log.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
