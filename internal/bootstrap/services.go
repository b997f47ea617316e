package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/bluelatex/blue-web/config"
	"github.com/bluelatex/blue-web/internal/adapters/bluelatex"
	redisadapter "github.com/bluelatex/blue-web/internal/adapters/redis"
	"github.com/bluelatex/blue-web/internal/data"
	"github.com/bluelatex/blue-web/internal/i18n"
	"github.com/bluelatex/blue-web/internal/observability/statsd"
	"github.com/bluelatex/blue-web/internal/ports"
	"github.com/bluelatex/blue-web/internal/service"
)

var (
	_ ports.SessionBackend = (*bluelatex.Client)(nil)
	_ ports.PaperBackend   = (*bluelatex.Client)(nil)
	_ ports.UserBackend    = (*bluelatex.Client)(nil)
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Navigator  *service.Navigator
	Sessions   *service.SessionService
	Papers     *service.PaperListService
	Paper      *service.PaperService
	Users      *service.UserService
	Translator *i18n.Translator
	// Metrics is nil when metrics are disabled.
	Metrics *statsd.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB // Required for postgres preferences
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices wires the backend client, stores and view-model services.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	if deps == nil || deps.Config == nil {
		return nil, errors.New("service deps with config are required")
	}
	if deps.RedisClient == nil {
		return nil, errors.New("redis client is required")
	}
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metricsClient := buildMetrics(logger, cfg.Metrics)
	var sink statsd.Sink
	if metricsClient != nil {
		sink = metricsClient
	}

	backend, err := bluelatex.NewClient(bluelatex.Config{
		BaseURL:          cfg.Backend.URL,
		Timeout:          cfg.Backend.Timeout,
		PapersProjection: cfg.Backend.PapersProjection,
		Metrics:          sink,
		Logger:           logger.With("component", "bluelatex"),
	})
	if err != nil {
		return nil, fmt.Errorf("create backend client: %w", err)
	}

	prefStore, err := buildPreferenceStore(cfg.PreferencesBackend, deps.DB, logger)
	if err != nil {
		return nil, err
	}

	tr, err := i18n.New()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	sessionStore := redisadapter.NewSessionStore(deps.RedisClient, redisadapter.SessionStoreOptions{
		Prefix: cfg.Redis.KeyPrefix + "session:",
	})

	users := service.NewUserService(service.UserServiceOptions{
		Backend:      backend,
		Cache:        redisadapter.NewCacheRepo(deps.RedisClient, cfg.Redis.KeyPrefix),
		CacheTTL:     cfg.Session.ProfileCacheTTL,
		FetchTimeout: cfg.Backend.Timeout,
		Logger:       logger,
	})
	prefs := service.NewPreferenceService(service.PreferenceServiceOptions{Store: prefStore, Logger: logger})

	return &ServiceContainer{
		Navigator: service.NewNavigator(service.NavigatorOptions{
			Sessions: sessionStore,
			Metrics:  sink,
			Logger:   logger,
		}),
		Sessions: service.NewSessionService(service.SessionServiceOptions{
			Store:   sessionStore,
			Backend: backend,
			Users:   users,
			Config:  service.SessionServiceConfig{TTL: cfg.Session.TTL},
			Logger:  logger,
		}),
		Papers: service.NewPaperListService(service.PaperListServiceOptions{
			Backend:     backend,
			Preferences: prefs,
			Config: service.PaperListConfig{
				ViewCapacity:   cfg.Session.ViewCapacity,
				ViewTTL:        cfg.Session.ViewTTL,
				OverwriteDates: cfg.Backend.OverwritePaperDates,
			},
			Metrics: sink,
			Logger:  logger,
		}),
		Paper:      service.NewPaperService(service.PaperServiceOptions{Backend: backend, Logger: logger}),
		Users:      users,
		Translator: tr,
		Metrics:    metricsClient,
	}, nil
}

// buildMetrics returns nil when metrics are disabled or the client cannot start.
func buildMetrics(logger *slog.Logger, cfg config.MetricsConfig) *statsd.Client {
	if !cfg.IsEnabled() {
		return nil
	}
	client, err := statsd.NewClient(statsd.Config{
		Enabled: true,
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to initialise statsd client", "error", err)
		return nil
	}
	return client
}

//nolint:ireturn // the store implementation is selected by configuration.
func buildPreferenceStore(kind config.PreferencesBackend, db *sql.DB, logger *slog.Logger) (ports.PreferenceStore, error) {
	switch kind {
	case config.PreferencesMemory:
		logger.Warn("paper list preferences are kept in memory and lost on restart")
		return data.NewMemoryPreferenceStore(), nil
	case config.PreferencesPostgres, "":
		if db == nil {
			return nil, errors.New("postgres preferences require a database connection")
		}
		return data.NewPreferenceRepo(db), nil
	default:
		return nil, fmt.Errorf("unknown preferences backend %q", kind)
	}
}

// RunConfig contains what Run needs to serve until a shutdown signal.
type RunConfig struct {
	Config   *config.AppConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM or a server
// failure, then shuts down gracefully.
func Run(ctx context.Context, cfg *RunConfig) error {
	if cfg == nil || cfg.Config == nil || cfg.Services == nil {
		return errors.New("run config with app config and services is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, errCh, err := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down services...")
	case runErr = <-errCh:
		logger.Error("service error", "error", runErr)
	}

	if err := ShutdownHTTPServer(ShutdownConfig{
		Context: context.WithoutCancel(ctx),
		Server:  server,
		Timeout: cfg.Config.HTTP.ShutdownTimeout,
		Logger:  logger,
	}); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("shutdown http server: %w", err))
	}
	if cfg.Services.Metrics != nil {
		if err := cfg.Services.Metrics.Close(); err != nil {
			logger.Warn("close statsd client", "error", err)
		}
	}
	return runErr
}
