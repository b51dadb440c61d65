// @title           Medication Reminder API
// @version         1.0
// @description     Medication schedules, dose status tracking and calendar history.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/medtrack/medication-reminder/internal/api"
	"github.com/medtrack/medication-reminder/internal/api/metrics"
	"github.com/medtrack/medication-reminder/internal/core/domain"
	"github.com/medtrack/medication-reminder/internal/core/service"
	"github.com/medtrack/medication-reminder/internal/infrastructure/queue"
	"github.com/medtrack/medication-reminder/internal/pkg/config"
	"github.com/medtrack/medication-reminder/pkg/logger"
)

const (
	demoName     = "John Doe"
	demoEmail    = "user@example.com"
	demoPassword = "password"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	log.Info().
		Str("env", cfg.Env).
		Str("storage_backend", cfg.Storage.Backend).
		Bool("redis_enabled", cfg.Redis.Enabled).
		Str("timezone", cfg.Timezone).
		Msg("medication reminder starting")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// -------- Storage layer -----------------
	loc := cfg.Location()
	seed := service.SeedMedications(time.Now().In(loc).Format(domain.DateLayout))

	store, err := openStorage(ctx, cfg, seed)
	if err != nil {
		log.Fatal().Err(err).Msg("storage unavailable")
	}
	defer store.close()

	// -------- Change events -----------------
	dispatcher := queue.NewDispatcher(cfg.DispatchWorkers, logger.For("dispatcher"))
	dispatchCtx, cancelDispatch := context.WithCancel(context.Background())
	dispatcher.Start(dispatchCtx)

	// -------- Services ----------------------
	medService := service.NewMedicationService(
		store.medications,
		store.guard,
		dispatcher,
		seed,
		logger.For("medications"),
		service.WithLocation(loc),
		service.WithLatency(cfg.StoreLatency),
	)
	authService := service.NewAuthService(store.users, cfg.JWTSecret, cfg.TokenTTL, logger.For("auth"))

	dispatcher.Subscribe(metrics.ChangeListener(medService.Summary))
	dispatcher.Subscribe(logChanges(logger.For("changes")))

	if err := authService.Seed(ctx, demoName, demoEmail, demoPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo user")
	}
	if err := seedMedications(ctx, store, medService); err != nil {
		log.Fatal().Err(err).Msg("failed to seed medications")
	}

	// -------- Router & Server --------------
	router := api.NewRouter(api.Dependencies{
		Auth:        authService,
		Medications: medService,
		JWTSecret:   cfg.JWTSecret,
		Logger:      logger.For("http"),
		Checks:      store.checks,
	})
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	cancelDispatch()
	dispatcher.Wait()
	log.Info().Msg("server exited")
}

// seedMedications loads the demo collection into a backend that has none.
// The memory backend starts with it already.
func seedMedications(ctx context.Context, store *storage, meds *service.MedicationService) error {
	if store.backend == config.BackendMemory {
		return nil
	}
	existing, err := meds.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return meds.Refresh(ctx)
}

func logChanges(log zerolog.Logger) queue.Listener {
	return func(_ context.Context, event domain.ChangeEvent) {
		log.Debug().
			Str("type", string(event.Type)).
			Str("medication_id", event.MedicationID).
			Str("status", string(event.Status)).
			Time("at", event.At).
			Msg("medication changed")
	}
}
