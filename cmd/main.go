// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"mussar_keep/internal/config"
	"mussar_keep/internal/handlers"
	"mussar_keep/internal/middleware"
	"mussar_keep/internal/repository"
	"mussar_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the config is loaded.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	if config.Cfg.App.Environment == "local" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("environment", config.Cfg.App.Environment))

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error running migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency injection
	middahRepo := repository.NewGormMiddahRepository()
	reminderPhraseRepo := repository.NewGormReminderPhraseRepository()
	dailyTextRepo := repository.NewGormDailyTextRepository()
	kabbalahRepo := repository.NewGormKabbalahRepository()
	weeklyTextRepo := repository.NewGormWeeklyTextRepository()
	userRepo := repository.NewGormUserRepository()
	itemRepo := repository.NewGormItemRepository()

	middahService := service.NewMiddahService(db, middahRepo)
	reminderPhraseService := service.NewReminderPhraseService(db, reminderPhraseRepo)
	dailyTextService := service.NewDailyTextService(db, dailyTextRepo)
	kabbalahService := service.NewKabbalahService(db, kabbalahRepo)
	weeklyTextService := service.NewWeeklyTextService(db, weeklyTextRepo)
	userService := service.NewUserService(db, userRepo)
	itemService := service.NewItemService(db, itemRepo)
	authService := service.NewAuthService(db, userRepo, &config.Cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userService.EnsureFirstSuperuser(ctx, config.Cfg.FirstSuperuser.Email, config.Cfg.FirstSuperuser.Password); err != nil {
		cancel()
		slog.Error("Error ensuring first superuser", slog.Any("error", err))
		os.Exit(1)
	}
	cancel()

	middahHandler := handlers.NewMiddahHandler(middahService, logger)
	reminderPhraseHandler := handlers.NewReminderPhraseHandler(reminderPhraseService, logger)
	dailyTextHandler := handlers.NewDailyTextHandler(dailyTextService, logger)
	kabbalahHandler := handlers.NewKabbalahHandler(kabbalahService, logger)
	weeklyTextHandler := handlers.NewWeeklyTextHandler(weeklyTextService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	itemHandler := handlers.NewItemHandler(itemService, logger)
	authHandler := handlers.NewAuthHandler(authService, logger)
	privateHandler := handlers.NewPrivateHandler(userService, logger)
	healthHandler := handlers.NewHealthHandler(db, logger)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Mount("/auth", authHandler.Routes())

		// Local-only escape hatch for seeding users.
		if config.Cfg.App.Environment == "local" {
			slog.Warn("Mounting private router; do not enable outside local environments")
			r.Mount("/private", privateHandler.Routes())
		}

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg, userService))

			r.Mount("/middot", middahHandler.Routes())
			r.Mount("/reminder_phrases", reminderPhraseHandler.Routes())
			r.Mount("/daily_texts", dailyTextHandler.Routes())
			r.Mount("/kabbalot", kabbalahHandler.Routes())
			r.Mount("/weekly_texts", weeklyTextHandler.Routes())
			r.Mount("/users", userHandler.Routes())
			r.Mount("/items", itemHandler.Routes())
		})
	})

	r.Get("/health", healthHandler.Health)

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
