package app

import (
	"context"
	"time"

	"github.com/doeshing/tams-go/internal/application/diagnostics"
	"github.com/doeshing/tams-go/internal/application/widgets"
	"github.com/doeshing/tams-go/internal/domain"
	"github.com/doeshing/tams-go/internal/infrastructure/api"
	"github.com/doeshing/tams-go/internal/infrastructure/config"
	"github.com/doeshing/tams-go/internal/infrastructure/history"
	"github.com/doeshing/tams-go/internal/pkg/logger"
	"github.com/doeshing/tams-go/internal/ports"
)

// Options tunes container construction.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Logger         *logger.ZapLogger
	Gateway        ports.Gateway
	HistoryStore   ports.HistoryRepository
	Diagnostics    *diagnostics.Service
	// Prompter is attached by the CLI layer.
	Prompter ports.CredentialPrompter

	closers []func() error
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel(), opts.Verbose)
	if err != nil {
		// An unparsable level is reported by `config validate`; keep running at the default.
		log, err = logger.New(domain.DefaultLogLevel, opts.Verbose)
		if err != nil {
			return nil, err
		}
	}

	c := &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Logger:         log,
	}
	c.closers = append(c.closers, func() error { _ = log.Sync(); return nil })

	clientOpts := []api.Option{api.WithLogger(log)}
	if cfg.History.Enabled {
		store := history.NewSQLiteStore(cfg.History.Path)
		if store.Degraded() {
			log.Warn("sqlite journal unavailable, using jsonl", map[string]interface{}{"path": store.Path()})
		}
		if cutoff := cfg.RetentionCutoff(time.Now()); !cutoff.IsZero() {
			if n, err := store.Prune(cutoff); err != nil {
				log.Warn("journal prune failed", map[string]interface{}{"error": err.Error()})
			} else if n > 0 {
				log.Debug("journal pruned", map[string]interface{}{"removed": n})
			}
		}
		c.HistoryStore = store
		c.closers = append(c.closers, store.Close)
		clientOpts = append(clientOpts, api.WithRecorder(store))
	}

	c.Gateway = api.NewClient(cfg.APIBaseURL(), cfg.RequestTimeout(), clientOpts...)
	c.Diagnostics = &diagnostics.Service{
		ConfigProvider: cfgLoader,
		Gateway:        c.Gateway,
		History:        c.HistoryStore,
	}
	return c, nil
}

// Widgets is one fresh set of feature forms bound to the container's gateway.
type Widgets struct {
	Vitals        *widgets.Vitals
	Symptoms      *widgets.Symptoms
	Specialists   *widgets.SpecialistSearch
	Prescriptions *widgets.Prescriptions
}

// NewWidgets builds the feature forms for one session.
func (c *Container) NewWidgets() Widgets {
	return Widgets{
		Vitals:        widgets.NewVitals(c.Gateway),
		Symptoms:      widgets.NewSymptoms(c.Gateway),
		Specialists:   widgets.NewSpecialistSearch(c.Gateway),
		Prescriptions: widgets.NewPrescriptions(c.Gateway),
	}
}

// Close releases the journal and flushes the logger.
func (c *Container) Close() error {
	var first error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}
