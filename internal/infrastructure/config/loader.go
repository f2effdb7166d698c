package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/dockyard/internal/logging"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override (DOCKYARD_DOCKING_ALWAYS_SHOW_TABS, ...).
const EnvPrefix = "DOCKYARD"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short aliases for the logging keys.
	if err := v.BindEnv("logging.level", EnvPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	if err := v.BindEnv("logging.format", EnvPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", EnvPrefix, err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, fills derived paths, normalizes and validates.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensurePaths(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensurePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Perspectives.File == "" {
		file, err := GetPerspectiveFile()
		if err != nil {
			return fmt.Errorf("failed to get perspective file path: %w", err)
		}
		config.Perspectives.File = file
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	switch strings.ToLower(string(config.Perspectives.Store)) {
	case "", string(PerspectiveStoreSQLite), "sqlite3", "db":
		config.Perspectives.Store = PerspectiveStoreSQLite
	case string(PerspectiveStoreXML), "file":
		config.Perspectives.Store = PerspectiveStoreXML
	}

	switch f := strings.ToLower(strings.TrimSpace(config.Perspectives.LayoutFormat)); f {
	case "":
		config.Perspectives.LayoutFormat = "xml"
	case "yml":
		config.Perspectives.LayoutFormat = "yaml"
	default:
		config.Perspectives.LayoutFormat = f
	}

	if config.Perspectives.AutoSaveInterval <= 0 {
		config.Perspectives.AutoSaveInterval = defaultAutoSaveInterval
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file in use.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = GetConfigFile(); err != nil {
			return err
		}
	}
	if err := WriteConfigOrdered(cfg, path); err != nil {
		return err
	}

	// The watcher reloads on its own.
	if !m.watching {
		return m.reload()
	}
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	logger := logging.NewFromEnv()
	logger.Info().Str("path", configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper.
// Paths are resolved in ensurePaths, not here.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setDockingDefaults(defaults)
	m.setDragDefaults(defaults)
	m.setAutoHideDefaults(defaults)
	m.setPerspectiveDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
}

func (m *Manager) setDockingDefaults(defaults *Config) {
	d := defaults.Docking
	m.viper.SetDefault("docking.opaque_splitter_resize", d.OpaqueSplitterResize)
	m.viper.SetDefault("docking.xml_auto_formatting", d.XMLAutoFormatting)
	m.viper.SetDefault("docking.always_show_tabs", d.AlwaysShowTabs)
	m.viper.SetDefault("docking.all_tabs_have_close_button", d.AllTabsHaveCloseButton)
	m.viper.SetDefault("docking.tab_close_button_is_tool_button", d.TabCloseButtonIsToolButton)
	m.viper.SetDefault("docking.dock_area_has_close_button", d.DockAreaHasCloseButton)
	m.viper.SetDefault("docking.dock_area_close_button_closes_tab", d.DockAreaCloseButtonClosesTab)
	m.viper.SetDefault("docking.focus_highlighting", d.FocusHighlighting)
	m.viper.SetDefault("docking.equal_split_on_insertion", d.EqualSplitOnInsertion)
	m.viper.SetDefault("docking.floating_container_force_native_title_bar", d.FloatingContainerForceNativeTitleBar)
	m.viper.SetDefault("docking.default_split_ratio", d.DefaultSplitRatio)
}

func (m *Manager) setDragDefaults(defaults *Config) {
	m.viper.SetDefault("drag.start_threshold", defaults.Drag.StartThreshold)
	m.viper.SetDefault("drag.global_edge_threshold", defaults.Drag.GlobalEdgeThreshold)
	// Durations are written as strings so the generated file stays readable.
	m.viper.SetDefault("drag.global_min_duration", defaults.Drag.GlobalMinDuration.String())
	m.viper.SetDefault("drag.global_min_distance", defaults.Drag.GlobalMinDistance)
	m.viper.SetDefault("drag.local_search_radius", defaults.Drag.LocalSearchRadius)
}

func (m *Manager) setAutoHideDefaults(defaults *Config) {
	m.viper.SetDefault("auto_hide.enabled", defaults.AutoHide.Enabled)
	m.viper.SetDefault("auto_hide.show_close_button", defaults.AutoHide.ShowCloseButton)
	m.viper.SetDefault("auto_hide.open_on_hover", defaults.AutoHide.OpenOnHover)
}

func (m *Manager) setPerspectiveDefaults(defaults *Config) {
	p := defaults.Perspectives
	m.viper.SetDefault("perspectives.store", string(p.Store))
	m.viper.SetDefault("perspectives.layout_format", p.LayoutFormat)
	m.viper.SetDefault("perspectives.auto_save", p.AutoSave)
	m.viper.SetDefault("perspectives.auto_save_interval", p.AutoSaveInterval.String())
	m.viper.SetDefault("perspectives.capture_preview", p.CapturePreview)
	m.viper.SetDefault("perspectives.preview_width", p.PreviewWidth)
	m.viper.SetDefault("perspectives.preview_height", p.PreviewHeight)
	m.viper.SetDefault("perspectives.create_defaults", p.CreateDefaults)
}
