package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/vk/langtour/internal/config"
	"github.com/vk/langtour/internal/ctxlog"
	"github.com/vk/langtour/internal/metrics"
	"github.com/vk/langtour/internal/registry"
	"github.com/vk/langtour/internal/runner"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	cfg      *Config
	registry *registry.Registry
	plan     *config.Model

	promRegistry *prometheus.Registry
	metrics      *metrics.Metrics
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger, registry and
// metrics. Lesson output goes to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Create and populate the registry with the lesson modules.
	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All lesson modules registered.", "modules", len(modules), "lessons", reg.Len())

	plan := &config.Model{}
	if cfg.PlanPath != "" {
		loaded, err := loader.Load(ctx, cfg.PlanPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load tour plan: %w", err)
		}
		plan = loaded
		logger.Debug("Tour plan loaded.", "path", cfg.PlanPath, "selections", len(plan.Selections))
	}

	if err := reg.Validate(ctx, plan); err != nil {
		return nil, err
	}
	if _, err := reg.Resolve(plan, cfg.Selectors); err != nil {
		return nil, err
	}
	logger.Debug("Tour plan validation passed.")

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &App{
		outW:         outW,
		logger:       logger,
		cfg:          cfg,
		registry:     reg,
		plan:         plan,
		promRegistry: promReg,
		metrics:      metrics.New(promReg),
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Plan returns the loaded tour plan, empty when no plan path was configured.
func (a *App) Plan() *config.Model {
	return a.plan
}

// Metrics returns the Prometheus registry the App records on.
func (a *App) Metrics() *prometheus.Registry {
	return a.promRegistry
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

func (a *App) newRunner(workers int) *runner.Runner {
	return runner.New(runner.Options{
		Workers: workers,
		Timeout: a.cfg.Timeout,
		Verify:  a.cfg.Verify,
		Metrics: a.metrics,
	})
}
