package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/five82/eventscout/internal/backend"
	"github.com/five82/eventscout/internal/config"
	"github.com/five82/eventscout/internal/geo"
	"github.com/five82/eventscout/internal/logging"
	"github.com/five82/eventscout/internal/prefs"
	"github.com/five82/eventscout/internal/search"
	"github.com/five82/eventscout/internal/state"
	"github.com/five82/eventscout/internal/ui"
)

// Options configure the eventscout application.
type Options struct {
	ConfigPath string // empty uses ~/.config/eventscout/config.toml
	PrefsPath  string // empty uses prefs.DefaultPath
	EnvPath    string // dotenv file with credentials; empty uses .env
	PollEvery  int    // health check interval in seconds; zero keeps the config value
}

// Run boots the eventscout TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	if err := config.LoadDotenv(opts.EnvPath); err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if opts.PollEvery > 0 {
		cfg.HealthInterval = time.Duration(opts.PollEvery) * time.Second
	}

	logger, err := logging.New(logging.Options{Path: cfg.LogPath, Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	prefsPath := opts.PrefsPath
	if strings.TrimSpace(prefsPath) == "" {
		prefsPath = prefs.DefaultPath
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		logger.Warn("preferences ignored", zap.String("path", prefsPath), zap.Error(err))
	}

	deps, err := build(cfg, logger)
	if err != nil {
		return err
	}

	store := &state.Store{}
	StartPoller(ctx, store, deps.client, cfg.HealthInterval, logger.Named("health"))

	logger.Info("eventscout started",
		zap.String("api_base", cfg.APIBase),
		zap.Bool("geocoding", cfg.GeocodeKey != ""),
		zap.String("config", opts.ConfigPath))

	return ui.Run(ui.Options{
		Context:      ctx,
		Backend:      deps.client,
		Orchestrator: deps.orchestrator,
		Store:        store,
		Config:       &cfg,
		Prefs:        userPrefs,
		PrefsPath:    prefsPath,
		Logger:       logger.Named("ui"),
		PollTick:     ui.DefaultUIInterval,
	})
}

type components struct {
	client       *backend.Client
	orchestrator *search.Orchestrator
}

// build constructs the backend client, the location collaborators and the
// orchestrator from cfg.
func build(cfg config.Config, logger *zap.Logger) (components, error) {
	client, err := backend.NewClient(cfg.APIBase,
		backend.WithTimeout(cfg.RequestTimeout),
		backend.WithLogger(logger.Named("backend")))
	if err != nil {
		return components{}, fmt.Errorf("init backend client: %w", err)
	}

	geocoder, err := geo.NewGeocoder(cfg.GeocodeURL, cfg.GeocodeKey, geo.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return components{}, fmt.Errorf("init geocoder: %w", err)
	}
	locator, err := geo.NewIPLocator(cfg.IPInfoURL, cfg.IPInfoToken, geo.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return components{}, fmt.Errorf("init ip locator: %w", err)
	}
	resolver := geo.NewResolver(geocoder, locator, logger.Named("geo"))

	orch := search.NewOrchestrator(resolver, search.NewBuilder(cfg.Segments), client, logger.Named("search"))
	return components{client: client, orchestrator: orch}, nil
}
