// Package cli wires the dock engine, the perspective store and the
// configuration together for the dockyard command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/app/dock"
	"github.com/bnema/dockyard/internal/app/mainloop"
	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/infrastructure/autosave"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/layoutcodec"
	"github.com/bnema/dockyard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dockyard/internal/infrastructure/perspectivexml"
	"github.com/bnema/dockyard/internal/infrastructure/preview"
	"github.com/bnema/dockyard/internal/logging"
)

// Options tune NewApp.
type Options struct {
	// Interactive routes logs to the rotating log file and posts timer work
	// to Queue, which the TUI drains on its own loop.
	Interactive bool

	// Config skips loading from disk when set.
	Config *config.Config
}

// App holds CLI dependencies.
type App struct {
	Config *config.Config
	Theme  *styles.Theme

	Dock         *dock.Manager
	Perspectives *usecase.ManagePerspectivesUseCase
	Codec        *perspectivexml.Codec
	AutoSave     *autosave.Service

	// Queue is nil outside interactive mode.
	Queue *mainloop.QueueDispatcher

	repo   repository.PerspectiveRepository
	db     *sqlite.LazyDB
	opened bool

	// configManager is nil when the config was passed in Options.
	configManager *config.Manager
	dispatcher    port.Dispatcher

	ctx        context.Context
	logCleanup func()
}

// NewApp creates the CLI application. The perspective store is opened on
// first use by OpenPerspectives.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	var cfgManager *config.Manager
	if cfg == nil {
		mgr, err := config.NewManager()
		if err != nil {
			return nil, err
		}
		if err := mgr.Load(); err != nil {
			return nil, err
		}
		cfg = mgr.Get()
		cfgManager = mgr
	}

	logger, cleanup := newLogger(cfg, opts.Interactive)
	ctx := logging.WithContext(context.Background(), logger)

	layoutCodec, err := layoutcodec.New(cfg.Perspectives.LayoutFormat, cfg.Docking.XMLAutoFormatting)
	if err != nil {
		cleanup()
		return nil, err
	}

	var dispatcher port.Dispatcher = mainloop.NewInlineDispatcher()
	var queue *mainloop.QueueDispatcher
	if opts.Interactive {
		queue = mainloop.NewQueueDispatcher()
		dispatcher = queue
	}

	manager := dock.NewManager(dock.Options{
		Config:     cfg.DockManagerConfig(),
		AutoHide:   cfg.AutoHideConfig(),
		Drag:       DragConfig(cfg),
		Codec:      layoutcodec.NewAutoCodec(layoutCodec, cfg.Docking.XMLAutoFormatting),
		Dispatcher: dispatcher,
	})

	a := &App{
		Config:     cfg,
		Theme:      styles.NewTheme(manager.Style().DockStyle()),
		Dock:       manager,
		Codec:      perspectivexml.NewCodec(true),
		AutoSave:   autosave.NewService(dispatcher),
		Queue:      queue,

		configManager: cfgManager,
		dispatcher:    dispatcher,
		ctx:           ctx,
		logCleanup:    cleanup,
	}

	switch cfg.Perspectives.Store {
	case config.PerspectiveStoreXML:
		a.repo = perspectivexml.NewFileRepository(cfg.Perspectives.File)
	default:
		a.db = sqlite.NewLazyDB(cfg.Database.Path)
		a.repo = &lazyPerspectiveRepository{db: a.db}
	}

	a.Perspectives = usecase.NewManagePerspectivesUseCase(manager, a.repo, a.Codec)
	a.Perspectives.SetAutoSaveScheduler(a.AutoSave)
	if cfg.Perspectives.CapturePreview {
		a.Perspectives.SetPreviewRenderer(preview.NewPNGRenderer(
			cfg.Perspectives.PreviewWidth, cfg.Perspectives.PreviewHeight, manager.Style()))
	}

	logger.Debug().
		Str("store", string(cfg.Perspectives.Store)).
		Str("layout_format", layoutCodec.Format()).
		Bool("interactive", opts.Interactive).
		Msg("cli app initialized")
	return a, nil
}

// DragConfig maps the drag section onto the engine thresholds.
func DragConfig(cfg *config.Config) dock.DragConfig {
	d := dock.DefaultDragConfig()
	d.StartThreshold = cfg.Drag.StartThreshold
	d.GlobalEdgeThreshold = cfg.Drag.GlobalEdgeThreshold
	d.GlobalMinDuration = cfg.Drag.GlobalMinDuration
	d.GlobalMinDistance = cfg.Drag.GlobalMinDistance
	d.LocalSearchRadius = cfg.Drag.LocalSearchRadius
	return d
}

func newLogger(cfg *config.Config, interactive bool) (zerolog.Logger, func()) {
	if !interactive {
		return logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format), func() {}
	}
	if !cfg.Logging.EnableFileLog {
		// The TUI owns the terminal.
		return zerolog.Nop(), func() {}
	}
	logger, rotator, err := logging.NewFileLogger(cfg.Logging.Level, logging.RotatorConfig{
		Dir:        cfg.Logging.LogDir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
		return zerolog.Nop(), func() {}
	}
	return logger, func() { _ = rotator.Close() }
}

// Ctx returns the application context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// OpenPerspectives loads the persisted perspectives once. The CLI hosts the
// demo widget set, so the manager is populated with the demo layout first;
// an empty store is then seeded from it when perspectives.create_defaults
// is set.
func (a *App) OpenPerspectives(ctx context.Context) error {
	if a.opened {
		return nil
	}
	if err := a.Perspectives.LoadAll(ctx); err != nil {
		return err
	}
	a.opened = true

	if len(a.Dock.DockWidgets()) == 0 {
		if err := BuildDemoLayout(ctx, a.Dock); err != nil {
			return fmt.Errorf("build demo layout: %w", err)
		}
	}
	if len(a.Perspectives.Names()) > 0 || !a.Config.Perspectives.CreateDefaults {
		return nil
	}
	if err := a.Perspectives.CreateDefaultPerspectives(ctx); err != nil {
		return fmt.Errorf("seed default perspectives: %w", err)
	}
	return a.Persist(ctx)
}

// StartAutoSave arms perspective auto-save when the config asks for it.
func (a *App) StartAutoSave(ctx context.Context) error {
	if !a.Config.Perspectives.AutoSave {
		return nil
	}
	return a.Perspectives.EnableAutoSave(ctx, a.Config.Perspectives.AutoSaveInterval)
}

// WatchConfig reloads the config file on change and applies the docking,
// auto-hide and drag sections to the dock manager. Reloads are posted to the
// dispatcher so they land on the UI goroutine.
func (a *App) WatchConfig(ctx context.Context) error {
	if a.configManager == nil {
		return nil
	}
	ctx = logging.WithComponent(ctx, "config")
	a.configManager.OnConfigChange(func(cfg *config.Config) {
		a.dispatcher.Post(func() { a.ApplyConfig(ctx, cfg) })
	})
	if err := a.configManager.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	logging.FromContext(ctx).Debug().Str("file", a.configManager.GetConfigFile()).Msg("watching config file")
	return nil
}

// ApplyConfig swaps in a reloaded configuration. Store location, layout
// format and logging keep their startup values until the next run.
func (a *App) ApplyConfig(ctx context.Context, cfg *config.Config) {
	if cfg == nil {
		return
	}
	a.Dock.SetConfig(cfg.DockManagerConfig())
	a.Dock.SetAutoHideConfig(cfg.AutoHideConfig())
	a.Dock.Drag().SetConfig(DragConfig(cfg))
	a.Config.Docking = cfg.Docking
	a.Config.AutoHide = cfg.AutoHide
	a.Config.Drag = cfg.Drag

	logging.FromContext(ctx).Info().
		Bool("auto_hide", cfg.AutoHide.Enabled).
		Float64("default_split_ratio", cfg.Docking.DefaultSplitRatio).
		Msg("configuration reloaded")
}

// Persist writes every perspective and the current marker to the store.
func (a *App) Persist(ctx context.Context) error {
	return a.Perspectives.SaveAll(ctx)
}

// LayoutCodec returns the codec for format, honoring xml_auto_formatting.
func (a *App) LayoutCodec(format string) (port.LayoutCodec, error) {
	return layoutcodec.New(format, a.Config.Docking.XMLAutoFormatting)
}

// StorePath describes where perspectives live.
func (a *App) StorePath() string {
	if a.Config.Perspectives.Store == config.PerspectiveStoreXML {
		return a.Config.Perspectives.File
	}
	return a.Config.Database.Path
}

// Close releases all resources.
func (a *App) Close() error {
	a.Perspectives.DisableAutoSave()
	a.Dock.Close()

	var errs []error
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return errors.Join(errs...)
}
