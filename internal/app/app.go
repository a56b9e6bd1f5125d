// Package app wires configuration, storage, notifications and the HTTP API
// into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dsa_tracker/internal/api"
	"dsa_tracker/internal/api/middleware"
	"dsa_tracker/internal/app/notify"
	"dsa_tracker/internal/app/service"
	"dsa_tracker/internal/app/worker"
	"dsa_tracker/internal/common/security"
	"dsa_tracker/internal/domain/repository"
	"dsa_tracker/internal/platform/config"
	"dsa_tracker/internal/platform/database"
	"dsa_tracker/internal/platform/queue"
	"dsa_tracker/internal/seed"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

type App struct {
	cfg      *config.Config
	log      zerolog.Logger
	Repos    repository.Repositories
	Services api.Services
	Router   http.Handler
	Feed     notify.Feed

	limiter *middleware.IPRateLimiter
	rdb     *redis.Client
	closers []func() error
}

// New builds every dependency named by cfg. Call Close when done.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	if cfg.AuthEnabled() && cfg.WeakJWTSecret() {
		return nil, errors.New("OWNER_PASSWORD_HASH is set but JWT_SECRET is empty or left at its default")
	}
	a := &App{cfg: cfg, log: log}

	repos, err := a.openRepositories(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Repos = repos

	notifier := a.buildNotifier(ctx)

	tokens := security.NewTokenIssuer(cfg.JWTKey, cfg.JWTExp)
	a.Services = api.Services{
		Auth:          service.NewAuthService(cfg.OwnerName, cfg.OwnerPasswordHash, tokens),
		Questions:     service.NewQuestionService(repos.Questions, notifier),
		Contests:      service.NewContestService(repos.Contests, notifier),
		Sheets:        service.NewSheetService(repos.Sheets, repos.Questions, notifier),
		Overview:      service.NewOverviewService(repos, cfg.TotalQuestionsAvailable, cfg.OverviewRecentLimit),
		Notifications: service.NewNotificationService(a.Feed),
	}

	if cfg.RateLimitRPS > 0 {
		a.limiter = middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}
	a.Router = api.NewRouter(a.Services, api.RouterOptions{
		Tokens:      tokens,
		AuthEnabled: cfg.AuthEnabled(),
		Limiter:     a.limiter,
		Logger:      log,
	})
	return a, nil
}

func (a *App) openRepositories(ctx context.Context) (repository.Repositories, error) {
	data := seed.Load(time.Now())

	var db *database.DB
	var err error
	switch a.cfg.StorageDriver {
	case config.DriverMemory, "":
		a.log.Info().Msg("using in-memory storage")
		return repository.NewMemoryRepositories(data), nil
	case config.DriverPostgres:
		db, err = database.OpenPostgres(a.cfg.DBConnStr)
	case config.DriverSQLite:
		db, err = database.OpenSQLite(a.cfg.SQLitePath)
	default:
		return repository.Repositories{}, fmt.Errorf("unknown storage driver %q", a.cfg.StorageDriver)
	}
	if err != nil {
		return repository.Repositories{}, err
	}
	a.closers = append(a.closers, db.Close)

	if err := database.Migrate(ctx, db); err != nil {
		return repository.Repositories{}, err
	}
	seeded, err := repository.SeedIfEmpty(ctx, db, data)
	if err != nil {
		return repository.Repositories{}, err
	}
	a.log.Info().Str("driver", a.cfg.StorageDriver).Bool("seeded", seeded).Msg("database ready")
	return repository.NewSQLRepositories(db), nil
}

// buildNotifier always logs. Redis delivery is added when REDIS_ADDR is set and
// reachable; otherwise an in-memory feed takes its place.
func (a *App) buildNotifier(ctx context.Context) notify.Notifier {
	logNotifier := notify.NewLogNotifier(a.log)

	if a.cfg.RedisAddr != "" {
		rdb, err := queue.ConnectRedis(ctx, queue.RedisOptions{
			Addr:     a.cfg.RedisAddr,
			Password: a.cfg.RedisPassword,
			DB:       a.cfg.RedisDB,
		})
		if err == nil {
			a.rdb = rdb
			a.closers = append(a.closers, rdb.Close)
			rn := notify.NewRedisNotifier(rdb, a.cfg.NotificationQueueName, a.cfg.NotificationQueueSize, a.cfg.NotificationFeedKey, a.cfg.NotificationFeedSize, a.log)
			a.Feed = rn
			a.log.Info().Str("addr", a.cfg.RedisAddr).Msg("redis notifications enabled")
			return notify.Fanout{logNotifier, rn}
		}
		a.log.Warn().Err(err).Msg("redis unavailable, falling back to in-memory notification feed")
	}

	rec := notify.NewRecorder(a.cfg.NotificationFeedSize)
	a.Feed = rec
	return notify.Fanout{logNotifier, rec}
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	if a.rdb != nil {
		w := worker.NewNotificationWorker(a.rdb, a.cfg.NotificationQueueName, a.log)
		go w.Start(bgCtx)
	}
	if a.limiter != nil {
		go a.limiter.RunCleanup(bgCtx)
	}

	server := &http.Server{
		Addr:         ":" + a.cfg.APIPort,
		Handler:      a.Router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("port", a.cfg.APIPort).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen on %s: %w", a.cfg.APIPort, err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down server")
	stopBackground()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	a.log.Info().Msg("server and worker stopped gracefully")
	return nil
}

// Close releases storage and redis connections in reverse order of opening.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn().Err(err).Msg("error while closing resource")
		}
	}
	a.closers = nil
}
