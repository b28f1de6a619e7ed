package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/roomdesk/roomdesk-api/internal/config"
	"github.com/roomdesk/roomdesk-api/internal/domain/auth"
	"github.com/roomdesk/roomdesk-api/internal/domain/availability"
	"github.com/roomdesk/roomdesk-api/internal/domain/reservation"
	"github.com/roomdesk/roomdesk-api/internal/middleware"
	"github.com/roomdesk/roomdesk-api/internal/pkg/database"
	"github.com/roomdesk/roomdesk-api/internal/pkg/jwt"
	"github.com/roomdesk/roomdesk-api/internal/pkg/pms"
	pkgresponse "github.com/roomdesk/roomdesk-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Roomdesk API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	location, err := pms.Location(cfg.PMSTimezoneOverride)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.PMSTimezoneOverride).Msg("Invalid PMS timezone override")
	}

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL)

	// ---------- PMS connector ----------
	gateway := pms.NewGateway(pms.Config{
		BaseURL:     cfg.PMSBaseURL,
		ClientToken: cfg.PMSClientToken,
		AccessToken: cfg.PMSAccessToken,
		Client:      cfg.PMSClient,
		Timeout:     cfg.PMSTimeout,
		RetryTimes:  cfg.PMSRetryTimes,
	})
	serviceCatalog := pms.NewServiceCatalog(gateway)
	resourceCategories := pms.NewResourceCategories(gateway)
	availabilityFetcher := pms.NewAvailability(gateway)
	reservationsFetcher := pms.NewReservations(gateway)

	// ---------- Services ----------
	authRepo := auth.NewRepository(db)
	authService := auth.NewService(authRepo, jwtService)
	availabilityService := availability.NewService(serviceCatalog, resourceCategories, availabilityFetcher, location)
	reservationService := reservation.NewService(reservationsFetcher, location)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	availabilityHandler := availability.NewHandler(availabilityService)
	reservationHandler := reservation.NewHandler(reservationService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			pkgresponse.OK(w, map[string]string{"message": "pong"})
		})

		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/availability", availabilityHandler.Routes(authMiddleware))
		r.Mount("/reservations", reservationHandler.Routes(authMiddleware))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
