// Package config loads the dockyard configuration with Viper: a TOML file in
// the XDG config directory, DOCKYARD_* environment overrides and hot reload.
package config

import (
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Config represents the complete configuration for dockyard.
type Config struct {
	Logging      LoggingConfig      `mapstructure:"logging" toml:"logging" json:"logging" jsonschema:"description=Logging output"`
	Database     DatabaseConfig     `mapstructure:"database" toml:"database" json:"database" jsonschema:"description=Perspective store location"`
	Docking      DockingConfig      `mapstructure:"docking" toml:"docking" json:"docking" jsonschema:"description=Dock manager behavior"`
	Drag         DragConfig         `mapstructure:"drag" toml:"drag" json:"drag" jsonschema:"description=Drag and drop thresholds"`
	AutoHide     AutoHideConfig     `mapstructure:"auto_hide" toml:"auto_hide" json:"auto_hide" jsonschema:"description=Auto-hide side strips"`
	Perspectives PerspectivesConfig `mapstructure:"perspectives" toml:"perspectives" json:"perspectives" jsonschema:"description=Perspective persistence"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,enum=text"`

	// File logging is used by the interactive perspective browser, which owns the terminal.
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
}

// DatabaseConfig holds perspective store configuration.
type DatabaseConfig struct {
	// Path of the SQLite database. Empty means $XDG_DATA_HOME/dockyard/dockyard.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}

// DockingConfig mirrors entity.DockManagerConfig.
type DockingConfig struct {
	OpaqueSplitterResize                 bool    `mapstructure:"opaque_splitter_resize" toml:"opaque_splitter_resize" json:"opaque_splitter_resize"`
	XMLAutoFormatting                    bool    `mapstructure:"xml_auto_formatting" toml:"xml_auto_formatting" json:"xml_auto_formatting"`
	AlwaysShowTabs                       bool    `mapstructure:"always_show_tabs" toml:"always_show_tabs" json:"always_show_tabs"`
	AllTabsHaveCloseButton               bool    `mapstructure:"all_tabs_have_close_button" toml:"all_tabs_have_close_button" json:"all_tabs_have_close_button"`
	TabCloseButtonIsToolButton           bool    `mapstructure:"tab_close_button_is_tool_button" toml:"tab_close_button_is_tool_button" json:"tab_close_button_is_tool_button"`
	DockAreaHasCloseButton               bool    `mapstructure:"dock_area_has_close_button" toml:"dock_area_has_close_button" json:"dock_area_has_close_button"`
	DockAreaCloseButtonClosesTab         bool    `mapstructure:"dock_area_close_button_closes_tab" toml:"dock_area_close_button_closes_tab" json:"dock_area_close_button_closes_tab"`
	FocusHighlighting                    bool    `mapstructure:"focus_highlighting" toml:"focus_highlighting" json:"focus_highlighting"`
	EqualSplitOnInsertion                bool    `mapstructure:"equal_split_on_insertion" toml:"equal_split_on_insertion" json:"equal_split_on_insertion"`
	FloatingContainerForceNativeTitleBar bool    `mapstructure:"floating_container_force_native_title_bar" toml:"floating_container_force_native_title_bar" json:"floating_container_force_native_title_bar"`
	DefaultSplitRatio                    float64 `mapstructure:"default_split_ratio" toml:"default_split_ratio" json:"default_split_ratio" jsonschema:"exclusiveMinimum=0,exclusiveMaximum=1"`
}

// DragConfig holds drag and drop thresholds.
type DragConfig struct {
	StartThreshold      int           `mapstructure:"start_threshold" toml:"start_threshold" json:"start_threshold" jsonschema:"minimum=0"`
	GlobalEdgeThreshold int           `mapstructure:"global_edge_threshold" toml:"global_edge_threshold" json:"global_edge_threshold" jsonschema:"minimum=0"`
	GlobalMinDuration   time.Duration `mapstructure:"global_min_duration" toml:"global_min_duration" json:"global_min_duration"`
	GlobalMinDistance   float64       `mapstructure:"global_min_distance" toml:"global_min_distance" json:"global_min_distance" jsonschema:"minimum=0"`
	LocalSearchRadius   float64       `mapstructure:"local_search_radius" toml:"local_search_radius" json:"local_search_radius" jsonschema:"minimum=0"`
}

// AutoHideConfig mirrors entity.AutoHideConfig.
type AutoHideConfig struct {
	Enabled         bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	ShowCloseButton bool `mapstructure:"show_close_button" toml:"show_close_button" json:"show_close_button"`
	OpenOnHover     bool `mapstructure:"open_on_hover" toml:"open_on_hover" json:"open_on_hover"`
}

// PerspectiveStore selects the bulk persistence backend.
type PerspectiveStore string

const (
	PerspectiveStoreSQLite PerspectiveStore = "sqlite"
	PerspectiveStoreXML    PerspectiveStore = "xml"
)

// PerspectivesConfig holds perspective persistence configuration.
type PerspectivesConfig struct {
	Store PerspectiveStore `mapstructure:"store" toml:"store" json:"store" jsonschema:"enum=sqlite,enum=xml"`
	// File is the <Perspectives> bundle used by the xml store. Empty means
	// $XDG_DATA_HOME/dockyard/perspectives.xml.
	File             string        `mapstructure:"file" toml:"file" json:"file,omitempty"`
	LayoutFormat     string        `mapstructure:"layout_format" toml:"layout_format" json:"layout_format" jsonschema:"enum=xml,enum=yaml,enum=json"`
	AutoSave         bool          `mapstructure:"auto_save" toml:"auto_save" json:"auto_save"`
	AutoSaveInterval time.Duration `mapstructure:"auto_save_interval" toml:"auto_save_interval" json:"auto_save_interval"`
	CapturePreview   bool          `mapstructure:"capture_preview" toml:"capture_preview" json:"capture_preview"`
	PreviewWidth     int           `mapstructure:"preview_width" toml:"preview_width" json:"preview_width" jsonschema:"minimum=1"`
	PreviewHeight    int           `mapstructure:"preview_height" toml:"preview_height" json:"preview_height" jsonschema:"minimum=1"`
	CreateDefaults   bool          `mapstructure:"create_defaults" toml:"create_defaults" json:"create_defaults"`
}

// DockManagerConfig converts the docking section to the engine type.
func (c *Config) DockManagerConfig() entity.DockManagerConfig {
	d := c.Docking
	return entity.DockManagerConfig{
		OpaqueSplitterResize:                 d.OpaqueSplitterResize,
		XMLAutoFormatting:                    d.XMLAutoFormatting,
		AlwaysShowTabs:                       d.AlwaysShowTabs,
		AllTabsHaveCloseButton:               d.AllTabsHaveCloseButton,
		TabCloseButtonIsToolButton:           d.TabCloseButtonIsToolButton,
		DockAreaHasCloseButton:               d.DockAreaHasCloseButton,
		DockAreaCloseButtonClosesTab:         d.DockAreaCloseButtonClosesTab,
		FocusHighlighting:                    d.FocusHighlighting,
		EqualSplitOnInsertion:                d.EqualSplitOnInsertion,
		FloatingContainerForceNativeTitleBar: d.FloatingContainerForceNativeTitleBar,
		DefaultSplitRatio:                    d.DefaultSplitRatio,
	}
}

// AutoHideConfig converts the auto_hide section to the engine type.
func (c *Config) AutoHideConfig() entity.AutoHideConfig {
	return entity.AutoHideConfig{
		Enabled:         c.AutoHide.Enabled,
		ShowCloseButton: c.AutoHide.ShowCloseButton,
		OpenOnHover:     c.AutoHide.OpenOnHover,
	}
}
