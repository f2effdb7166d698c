package logging

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack trace and re-panics.
// Use as the first deferred call in main:
//
//	defer logging.RecoverPanic(&logger)
func RecoverPanic(logger *zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	if logger == nil {
		fmt.Fprintf(os.Stderr, "PANIC: %v\n%s", r, debug.Stack())
		panic(r)
	}

	logger.Error().
		Str("panic", fmt.Sprint(r)).
		Str("go", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("unrecovered panic")
	panic(r)
}
