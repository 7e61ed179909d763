// Package config loads the settings shared by the visiq commands.
//
// Precedence, lowest first: defaults, the TOML file, VISIQ_* environment
// variables, then command line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"go.uber.org/multierr"

	"github.com/vcrobe/visiq/logging"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "VISIQ_"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Site is the full configuration.
type Site struct {
	// Addr is the dev server listen address.
	Addr string `toml:"addr" env:"ADDR"`
	// Dist is the output directory for the built site.
	Dist string `toml:"dist" env:"DIST"`
	// WASM is the file name of the compiled runtime inside Dist.
	WASM string `toml:"wasm" env:"WASM"`
	// WASMExec is the path of the Go toolchain's wasm_exec.js to copy into
	// Dist. Empty skips the copy.
	WASMExec string `toml:"wasm_exec" env:"WASM_EXEC"`
	// Stylesheet is the file name of the stylesheet inside Dist.
	Stylesheet string `toml:"stylesheet" env:"STYLESHEET"`
	LogLevel   string `toml:"log_level" env:"LOG_LEVEL"`

	Smoke Smoke `toml:"smoke" envPrefix:"SMOKE_"`
}

// Smoke configures the real-browser check.
type Smoke struct {
	// URL of the running site. Empty means build Dist and serve it on a free local port.
	URL            string        `toml:"url" env:"URL"`
	Headless       bool          `toml:"headless" env:"HEADLESS"`
	Timeout        time.Duration `toml:"timeout" env:"TIMEOUT"`
	ViewportHeight int           `toml:"viewport_height" env:"VIEWPORT_HEIGHT"`
}

// Default returns the built-in settings.
func Default() Site {
	return Site{
		Addr:       "127.0.0.1:8080",
		Dist:       "dist",
		WASM:       "landing.wasm",
		Stylesheet: "site.css",
		LogLevel:   "info",
		Smoke: Smoke{
			Headless:       true,
			Timeout:        30 * time.Second,
			ViewportHeight: 800,
		},
	}
}

// Load reads path (if not empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (Site, error) {
	cfg := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Site{}, fmt.Errorf("load config %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Site{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalid, path, strings.Join(keys, ", "))
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Site{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Site{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (s Site) Validate() error {
	var err error
	invalid := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if _, _, e := net.SplitHostPort(s.Addr); e != nil {
		invalid("addr %q: %v", s.Addr, e)
	}
	if s.Dist == "" {
		invalid("dist is required")
	}
	for _, f := range []struct{ name, file string }{{"wasm", s.WASM}, {"stylesheet", s.Stylesheet}} {
		if f.file == "" || strings.ContainsAny(f.file, `/\`) {
			invalid("%s must be a plain file name, got %q", f.name, f.file)
		}
	}
	if s.LogLevel != "" {
		if _, ok := logging.ParseLevel(s.LogLevel); !ok {
			invalid("unknown log level %q", s.LogLevel)
		}
	}
	if s.Smoke.URL != "" {
		u, e := url.Parse(s.Smoke.URL)
		if e != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			invalid("smoke url %q must be an absolute http(s) URL", s.Smoke.URL)
		}
	}
	if s.Smoke.Timeout <= 0 {
		invalid("smoke timeout must be positive")
	}
	if s.Smoke.ViewportHeight <= 0 {
		invalid("smoke viewport height must be positive")
	}
	return err
}

// SiteURL is where the smoke check points the browser.
func (s Site) SiteURL() string {
	if s.Smoke.URL != "" {
		return s.Smoke.URL
	}
	return "http://" + s.Addr + "/"
}
