package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/routes"
	"hostel-backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env not found or couldn't load it; continuing with environment variables")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	log.Info().Msg("database connection established and migrations applied")

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("upload dir unavailable")
	}

	authService := services.NewAuthService(db)
	roomService := services.NewRoomService(db)
	studentService := services.NewStudentService(db)
	paymentService := services.NewPaymentService(db, cfg.UploadDir)
	issueService := services.NewIssueService(db)
	reportService := services.NewReportService(db)
	exportService := services.NewExportService(db)
	settingService := services.NewSettingService(db)

	router := routes.SetupRouter(cfg, routes.Controllers{
		Auth:        controllers.NewAuthController(authService),
		Dashboard:   controllers.NewDashboardController(reportService),
		Rooms:       controllers.NewRoomController(roomService),
		Students:    controllers.NewStudentController(studentService),
		Allocations: controllers.NewAllocationController(roomService, studentService),
		Payments:    controllers.NewPaymentController(paymentService, studentService, settingService),
		Users:       controllers.NewUserController(authService),
		Issues:      controllers.NewIssueController(issueService, studentService),
		Portal:      controllers.NewPortalController(studentService, roomService, paymentService, settingService),
		Reports:     controllers.NewReportController(reportService),
		Exports:     controllers.NewExportController(exportService),
		Uploads:     controllers.NewUploadController(cfg.UploadDir),
		Settings:    controllers.NewSettingController(settingService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
