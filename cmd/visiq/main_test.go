package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/visiq/logging"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBuild(t *testing.T) {
	dist := filepath.Join(t.TempDir(), "dist")

	_, err := run(t, "build", "--dist", dist, "--log-level", "error")
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(dist, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `<div id="app"></div>`)
	assert.FileExists(t, filepath.Join(dist, "site.css"))
}

func TestBuild_RejectsContentFlag(t *testing.T) {
	_, err := run(t, "build", "--dist", t.TempDir(), "--content", "page.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestLoad_FlagOverridesEnvLogLevel(t *testing.T) {
	t.Setenv("VISIQ_LOG_LEVEL", "error")
	opts := &options{logLevel: "debug"}
	cmd := &cobra.Command{Use: "build"}
	cmd.SetErr(&bytes.Buffer{})

	cfg, log, err := opts.load(cmd)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
	assert.Equal(t, zerolog.DebugLevel, logging.L().GetLevel())
}

func TestLoad_EnvLogLevelWithoutFlag(t *testing.T) {
	t.Setenv("VISIQ_LOG_LEVEL", "error")
	opts := &options{}
	cmd := &cobra.Command{Use: "build"}
	cmd.SetErr(&bytes.Buffer{})

	cfg, _, err := opts.load(cmd)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, zerolog.ErrorLevel, logging.L().GetLevel())
}

func TestBuild_LogLevelFlagBeatsEnv(t *testing.T) {
	t.Setenv("VISIQ_LOG_LEVEL", "error")

	_, err := run(t, "build", "--dist", t.TempDir(), "--log-level", "debug")
	require.NoError(t, err)

	assert.Equal(t, zerolog.DebugLevel, logging.L().GetLevel())
}

func TestBuild_BadLogLevel(t *testing.T) {
	_, err := run(t, "build", "--dist", t.TempDir(), "--log-level", "loud")
	require.Error(t, err)
}

func TestBuild_MissingConfig(t *testing.T) {
	_, err := run(t, "build", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestUnknownCommand(t *testing.T) {
	_, err := run(t, "deploy")
	require.Error(t, err)
}
