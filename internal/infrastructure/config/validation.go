package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

var layoutFormats = []string{"xml", "yaml", "json"}

// validateConfig performs comprehensive validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateDocking(config)...)
	validationErrors = append(validationErrors, validateDrag(config)...)
	validationErrors = append(validationErrors, validatePerspectives(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil || config.Logging.Level == "" {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, fatal (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json", "text":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of console, json, text (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateDocking(config *Config) []string {
	r := config.Docking.DefaultSplitRatio
	if r <= 0 || r >= 1 {
		return []string{fmt.Sprintf("docking.default_split_ratio must be between 0 and 1 exclusive (got %g)", r)}
	}
	return nil
}

func validateDrag(config *Config) []string {
	var validationErrors []string
	d := config.Drag
	if d.StartThreshold < 0 {
		validationErrors = append(validationErrors, "drag.start_threshold must be non-negative")
	}
	if d.GlobalEdgeThreshold < 0 {
		validationErrors = append(validationErrors, "drag.global_edge_threshold must be non-negative")
	}
	if d.GlobalMinDuration < 0 {
		validationErrors = append(validationErrors, "drag.global_min_duration must be non-negative")
	}
	if d.GlobalMinDistance < 0 {
		validationErrors = append(validationErrors, "drag.global_min_distance must be non-negative")
	}
	if d.LocalSearchRadius < 0 {
		validationErrors = append(validationErrors, "drag.local_search_radius must be non-negative")
	}
	return validationErrors
}

func validatePerspectives(config *Config) []string {
	var validationErrors []string
	p := config.Perspectives
	switch p.Store {
	case PerspectiveStoreSQLite, PerspectiveStoreXML:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("perspectives.store must be sqlite or xml (got %q)", p.Store))
	}
	if !slices.Contains(layoutFormats, p.LayoutFormat) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("perspectives.layout_format must be one of %s (got %q)", strings.Join(layoutFormats, ", "), p.LayoutFormat))
	}
	if p.PreviewWidth < 1 || p.PreviewHeight < 1 {
		validationErrors = append(validationErrors, "perspectives.preview_width and preview_height must be positive")
	}
	return validationErrors
}
