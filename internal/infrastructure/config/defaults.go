package config

import (
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	defaultAutoSaveInterval = 5 * time.Minute
	defaultPreviewWidth     = 200
	defaultPreviewHeight    = 150
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	dock := entity.DefaultDockManagerConfig()
	autoHide := entity.DefaultAutoHideConfig()

	return &Config{
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			MaxSizeMB:     10,
			MaxBackups:    3,
			MaxAgeDays:    7,
		},
		Docking: DockingConfig{
			OpaqueSplitterResize:                 dock.OpaqueSplitterResize,
			XMLAutoFormatting:                    dock.XMLAutoFormatting,
			AlwaysShowTabs:                       dock.AlwaysShowTabs,
			AllTabsHaveCloseButton:               dock.AllTabsHaveCloseButton,
			TabCloseButtonIsToolButton:           dock.TabCloseButtonIsToolButton,
			DockAreaHasCloseButton:               dock.DockAreaHasCloseButton,
			DockAreaCloseButtonClosesTab:         dock.DockAreaCloseButtonClosesTab,
			FocusHighlighting:                    dock.FocusHighlighting,
			EqualSplitOnInsertion:                dock.EqualSplitOnInsertion,
			FloatingContainerForceNativeTitleBar: dock.FloatingContainerForceNativeTitleBar,
			DefaultSplitRatio:                    dock.DefaultSplitRatio,
		},
		Drag: DragConfig{
			StartThreshold:      4,
			GlobalEdgeThreshold: 20,
			GlobalMinDuration:   500 * time.Millisecond,
			GlobalMinDistance:   50,
			LocalSearchRadius:   200,
		},
		AutoHide: AutoHideConfig{
			Enabled:         autoHide.Enabled,
			ShowCloseButton: autoHide.ShowCloseButton,
			OpenOnHover:     autoHide.OpenOnHover,
		},
		Perspectives: PerspectivesConfig{
			Store:            PerspectiveStoreSQLite,
			LayoutFormat:     "xml",
			AutoSave:         false,
			AutoSaveInterval: defaultAutoSaveInterval,
			CapturePreview:   true,
			PreviewWidth:     defaultPreviewWidth,
			PreviewHeight:    defaultPreviewHeight,
			CreateDefaults:   true,
		},
	}
}
