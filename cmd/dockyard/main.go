package main

import (
	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/cli/cmd"
	"github.com/bnema/dockyard/internal/logging"
)

// Build-time variables (set via ldflags).
var version = "dev"

func main() {
	logger := logging.NewFromConfigValues("error", "console")
	defer logging.RecoverPanic(&logger)

	zerolog.DefaultContextLogger = &logger
	cmd.SetVersion(version)
	cmd.Execute()
}
