package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_JSONAndText(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf
	logger := New(cfg)
	logger.Info().Str("widget", "files").Msg("added")
	assert.Contains(t, buf.String(), `"widget":"files"`)

	buf.Reset()
	cfg.Format = "text"
	logger = New(cfg)
	logger.Info().Msg("plain")
	assert.Contains(t, buf.String(), "plain")
	assert.NotContains(t, buf.String(), "\x1b[", "text format has no colors")
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	ctx := WithContext(context.Background(), New(cfg))
	ctx = WithComponent(ctx, "dock")
	ctx = WithWidget(ctx, "files")
	ctx = WithPerspective(ctx, "coding")
	FromContext(ctx).Info().Msg("x")

	out := buf.String()
	for _, want := range []string{`"component":"dock"`, `"widget":"files"`, `"perspective":"coding"`} {
		assert.Contains(t, out, want)
	}
}

func TestLogRotator_RotatesAndPrunes(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, MaxSizeMB: 1, MaxBackups: 2})
	require.NoError(t, err)
	defer r.Close()

	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	chunk := bytes.Repeat([]byte("x"), 700*1024)
	for range 5 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	info, err := os.Stat(r.Path())
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())

	backups, err := filepath.Glob(filepath.Join(dir, LogFileName+".*"))
	require.NoError(t, err)
	assert.Len(t, backups, 2)
	assert.True(t, strings.HasSuffix(backups[1], "2025-01-01-00-00-04.000"), backups[1])
}

func TestLogRotator_Compress(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(RotatorConfig{Dir: dir, MaxSizeMB: 1, Compress: true})
	require.NoError(t, err)
	defer r.Close()

	chunk := bytes.Repeat([]byte("y"), 600*1024)
	for range 2 {
		_, err := r.Write(chunk)
		require.NoError(t, err)
	}

	gz, err := filepath.Glob(filepath.Join(dir, LogFileName+".*.gz"))
	require.NoError(t, err)
	assert.Len(t, gz, 1)
}

func TestNewFileLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, rotator, err := NewFileLogger("debug", RotatorConfig{Dir: dir})
	require.NoError(t, err)

	logger.Debug().Msg("to file")
	require.NoError(t, rotator.Close())
	require.NoError(t, rotator.Close())

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	_, _, err = NewFileLogger("info", RotatorConfig{})
	assert.Error(t, err)
}

func TestRecoverPanic(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf
	logger := New(cfg)

	assert.PanicsWithValue(t, "boom", func() {
		defer RecoverPanic(&logger)
		panic("boom")
	})
	assert.Contains(t, buf.String(), `"panic":"boom"`)

	assert.NotPanics(t, func() {
		defer RecoverPanic(&logger)
	})
}
