package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/meeting-scheduler/internal/audit"
	"github.com/BruksfildServices01/meeting-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/meeting-scheduler/internal/db"
	domain "github.com/BruksfildServices01/meeting-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/meeting-scheduler/internal/handlers"
	"github.com/BruksfildServices01/meeting-scheduler/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/meeting-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/meeting-scheduler/internal/infra/storage"
	"github.com/BruksfildServices01/meeting-scheduler/internal/logger"
	"github.com/BruksfildServices01/meeting-scheduler/internal/middleware"
	"github.com/BruksfildServices01/meeting-scheduler/internal/routes"
	"github.com/BruksfildServices01/meeting-scheduler/internal/timezone"
	ucBooking "github.com/BruksfildServices01/meeting-scheduler/internal/usecase/booking"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg)
	defer log.Sync()

	if cfg.AdminPasswordHash != "" && !cfg.HasJWTSecret() {
		log.Warn("admin routes disabled: set a private JWT_SECRET")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// INFRA
	// ======================================================
	sinks := []audit.Sink{audit.NewLogSink(log)}

	var repo domain.Repository
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			log.Fatal("failed to open database", zap.Error(err))
		}
		repo = infraRepo.NewBookingGormRepository(db, loc)
		sinks = append(sinks, audit.NewGormSink(db))
	case config.StoreCSV:
		repo = infraRepo.NewBookingCSVRepository(cfg.BookingsFile, loc)
	default:
		log.Fatal("unknown STORE_DRIVER", zap.String("driver", cfg.StoreDriver))
	}

	var locker domain.Locker = lock.NewLocalLocker()
	if cfg.RedisAddr != "" {
		client, err := lock.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer client.Close()
		locker = lock.NewRedisLocker(client, lock.DefaultLease)
	}

	if cfg.S3Enabled() {
		sinks = append(sinks, storage.NewS3Publisher(
			storage.NewS3Client(cfg),
			cfg.S3Bucket,
			cfg.S3Key,
			repo,
		))
	}

	dispatcher := audit.NewDispatcher(log, sinks...)
	defer dispatcher.Close()

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailability := ucBooking.NewGetAvailability(repo)
	createBooking := ucBooking.NewCreateBooking(repo, locker, dispatcher, loc)
	listBookings := ucBooking.NewListBookings(repo)
	exportCalendar := ucBooking.NewExportCalendar(repo, dispatcher)

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r, cfg, routes.Handlers{
		Page:    handlers.NewPageHandler(getAvailability, createBooking, listBookings, loc),
		Booking: handlers.NewBookingHandler(getAvailability, createBooking, loc),
		Export:  handlers.NewExportHandler(exportCalendar),
		Admin:   handlers.NewAdminHandler(cfg, listBookings),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("store", cfg.StoreDriver),
			zap.String("timezone", loc.String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
