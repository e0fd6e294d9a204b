package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/ringbookhq/ringbook/external/wrestledex"
	"github.com/ringbookhq/ringbook/internal/config"
	"github.com/ringbookhq/ringbook/internal/domain/reign"
	"github.com/ringbookhq/ringbook/internal/domain/roster"
	"github.com/ringbookhq/ringbook/internal/domain/show"
	"github.com/ringbookhq/ringbook/internal/domain/title"
	"github.com/ringbookhq/ringbook/internal/domain/wrestler"
	"github.com/ringbookhq/ringbook/internal/infrastructure/repository/memory"
	"github.com/ringbookhq/ringbook/internal/infrastructure/repository/postgres"
	"github.com/ringbookhq/ringbook/internal/interfaces/httpapi"
	"github.com/ringbookhq/ringbook/internal/platform/cache"
	"github.com/ringbookhq/ringbook/internal/platform/logging"
	"github.com/ringbookhq/ringbook/internal/platform/resilience"
	"github.com/ringbookhq/ringbook/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type repositories struct {
	wrestlers wrestler.Repository
	shows     show.Repository
	titles    title.Repository
	reigns    reign.Repository
	rosters   roster.Repository
	db        *sqlx.DB
}

// NewHTTPServer wires repositories, services and the HTTP router into a
// ready-to-run server. An empty DB_URL selects the seeded in-memory
// repositories, anything else connects to Postgres.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := buildRepositories(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}

	svcLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	}))

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	wrestlerSvc := usecase.NewWrestlerService(repos.wrestlers, svcLogger)
	showSvc := usecase.NewShowService(repos.shows, svcLogger)
	titleSvc := usecase.NewTitleService(repos.titles, repos.wrestlers, repos.reigns, store, svcLogger)
	championshipSvc := usecase.NewChampionshipService(repos.titles, repos.wrestlers, repos.reigns, svcLogger)
	rosterSvc := usecase.NewRosterService(repos.shows, repos.wrestlers, repos.rosters, svcLogger)
	dashboardSvc := usecase.NewDashboardService(repos.wrestlers, repos.shows, repos.titles, repos.reigns, repos.rosters)

	var importSource usecase.RosterImportSource
	if cfg.WrestleDexEnabled {
		importSource = wrestledex.NewClient(wrestledex.ClientConfig{
			BaseURL:    cfg.WrestleDexBaseURL,
			Token:      cfg.WrestleDexToken,
			Timeout:    cfg.WrestleDexTimeout,
			MaxRetries: cfg.WrestleDexMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.WrestleDexCircuitEnabled,
				FailureThreshold: cfg.WrestleDexCircuitFailureCount,
				OpenTimeout:      cfg.WrestleDexCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.WrestleDexCircuitHalfOpenMaxReq,
			},
		})
	}
	importSvc := usecase.NewImportService(importSource, repos.wrestlers, rosterSvc, svcLogger, cfg.ImportWorkerCount)

	handler := httpapi.NewHandler(
		wrestlerSvc,
		showSvc,
		titleSvc,
		championshipSvc,
		rosterSvc,
		dashboardSvc,
		importSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	if repos.db != nil {
		server.RegisterOnShutdown(func() {
			if err := repos.db.Close(); err != nil {
				logger.Warn("close database", "error", err)
			}
		})
	}

	return server, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		titles := memory.NewTitleRepository(memory.SeedTitles())
		logger.Info("storage ready", "mode", "memory")
		return repositories{
			wrestlers: memory.NewWrestlerRepository(memory.SeedWrestlers()),
			shows:     memory.NewShowRepository(memory.SeedShows()),
			titles:    titles,
			reigns:    memory.NewReignRepository(nil, titles),
			rosters:   memory.NewRosterRepository(nil),
		}, nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("connect database: %w", err)
	}

	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		_ = db.Close()
		return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
	}

	logger.Info("storage ready", "mode", "postgres", "database", dbNameFromURL(dbURL))
	return repositories{
		wrestlers: postgres.NewWrestlerRepository(db),
		shows:     postgres.NewShowRepository(db),
		titles:    postgres.NewTitleRepository(db),
		reigns:    postgres.NewReignRepository(db),
		rosters:   postgres.NewRosterRepository(db),
		db:        db,
	}, nil
}

func slogLevel(level logging.Level) slog.Level {
	switch level {
	case logging.LevelDebug:
		return slog.LevelDebug
	case logging.LevelWarn:
		return slog.LevelWarn
	case logging.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
