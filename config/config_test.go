package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "visiq.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "http://127.0.0.1:8080/", cfg.SiteURL())
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
addr = "0.0.0.0:9000"
dist = "public"
wasm_exec = "/usr/local/go/lib/wasm/wasm_exec.js"

[smoke]
timeout = "45s"
headless = false
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)
	assert.Equal(t, "public", cfg.Dist)
	assert.Equal(t, "/usr/local/go/lib/wasm/wasm_exec.js", cfg.WASMExec)
	assert.Equal(t, 45*time.Second, cfg.Smoke.Timeout)
	assert.False(t, cfg.Smoke.Headless)
	assert.Equal(t, "landing.wasm", cfg.WASM, "unset keys keep defaults")
	assert.Equal(t, 800, cfg.Smoke.ViewportHeight)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, `addr = "0.0.0.0:9000"`)
	t.Setenv("VISIQ_ADDR", "127.0.0.1:7000")
	t.Setenv("VISIQ_SMOKE_URL", "https://visiq.academy/")
	t.Setenv("VISIQ_SMOKE_VIEWPORT_HEIGHT", "600")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
	assert.Equal(t, "https://visiq.academy/", cfg.SiteURL())
	assert.Equal(t, 600, cfg.Smoke.ViewportHeight)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeFile(t, "adress = \"x\"\n")

	_, err := Load(path)

	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "adress")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.Error(t, err)
	assert.ErrorContains(t, err, "nope.toml")
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("VISIQ_SMOKE_TIMEOUT", "soon")

	_, err := Load("")

	assert.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Site)
		want   string
	}{
		{"addr", func(s *Site) { s.Addr = "8080" }, `addr "8080"`},
		{"dist", func(s *Site) { s.Dist = "" }, "dist is required"},
		{"wasm path", func(s *Site) { s.WASM = "bin/landing.wasm" }, "wasm must be a plain file name"},
		{"log level", func(s *Site) { s.LogLevel = "loud" }, `unknown log level "loud"`},
		{"smoke url", func(s *Site) { s.Smoke.URL = "localhost:8080" }, "absolute http(s) URL"},
		{"timeout", func(s *Site) { s.Smoke.Timeout = 0 }, "timeout must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)

			err := s.Validate()

			assert.ErrorIs(t, err, ErrInvalid)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
