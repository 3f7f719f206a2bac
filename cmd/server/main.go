package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/soumya9832/notes-backend/internal/application/services"
	"github.com/soumya9832/notes-backend/internal/config"
	"github.com/soumya9832/notes-backend/internal/delivery/http/handler"
	"github.com/soumya9832/notes-backend/internal/infrastructure"
	"github.com/soumya9832/notes-backend/internal/infrastructure/db/postgres"
	"github.com/soumya9832/notes-backend/internal/messaging"
)

func main() {
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	events, err := messaging.ConnectPublisher(cfg.NatsURL)
	if err != nil {
		log.Printf("Failed to connect to NATS, events disabled: %v", err)
	}
	defer events.Close()

	userRepo := postgres.NewUserRepository(db)
	noteRepo := postgres.NewNoteRepository(db)

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	redisService := infrastructure.NewRedisService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redisService.Close()
	loginLimiter := infrastructure.NewRateLimiter(cfg.LoginRateWindow, cfg.LoginRateLimit)

	userService := services.NewUserService(userRepo, jwtService, redisService, loginLimiter, cfg.JWTTTL)
	noteService := services.NewNoteService(noteRepo, userRepo, events)
	shareResolver := services.NewShareResolver(noteRepo)

	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())

	handler.RegisterRoutes(
		e,
		handler.NewAuthHandler(userService),
		handler.NewNoteHandler(noteService),
		handler.NewShareHandler(shareResolver),
		jwtService,
		cfg.ShareRatePerSecond,
		cfg.ShareRateBurst,
	)

	log.Fatal(e.Start(":" + cfg.Port))
}
