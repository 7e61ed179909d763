// Package build writes the static site: index.html, the stylesheet and the
// wasm_exec.js support script. The WebAssembly binary itself is produced by
// the Go toolchain (GOOS=js GOARCH=wasm go build ./cmd/landing).
package build

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vcrobe/visiq/config"
	"github.com/vcrobe/visiq/content"
	"github.com/vcrobe/visiq/logging"
	"github.com/vcrobe/visiq/shell"
)

// WASMExecName is the file name of the Go WebAssembly support script in dist.
const WASMExecName = "wasm_exec.js"

//go:embed assets/site.css
var stylesheet []byte

// Stylesheet returns the embedded site stylesheet.
func Stylesheet() []byte {
	return stylesheet
}

// Result lists the files Run wrote.
type Result struct {
	Files []string
}

type step struct {
	name  string
	write func(w io.Writer) error
}

// Run builds the site for page into cfg.Dist.
func Run(ctx context.Context, cfg config.Site, page *content.Page) (Result, error) {
	log := logging.Component("build")
	var res Result

	if err := os.MkdirAll(cfg.Dist, 0o755); err != nil {
		return res, fmt.Errorf("create %s: %w", cfg.Dist, err)
	}

	steps := []step{
		{"index.html", func(w io.Writer) error {
			return shell.Write(w, page, shell.Options{
				Stylesheet: cfg.Stylesheet,
				WASM:       cfg.WASM,
				WASMExec:   WASMExecName,
			})
		}},
		{cfg.Stylesheet, func(w io.Writer) error {
			_, err := w.Write(stylesheet)
			return err
		}},
	}
	if cfg.WASMExec != "" {
		steps = append(steps, step{WASMExecName, copyFrom(cfg.WASMExec)})
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		path := filepath.Join(cfg.Dist, step.name)
		if err := writeFile(path, step.write); err != nil {
			return res, fmt.Errorf("write %s: %w", path, err)
		}
		res.Files = append(res.Files, path)
		log.Debug().Str("file", path).Msg("wrote")
	}

	if _, err := os.Stat(filepath.Join(cfg.Dist, cfg.WASM)); err != nil {
		log.Warn().Str("wasm", cfg.WASM).Msg("runtime binary missing; build ./cmd/landing with GOOS=js GOARCH=wasm")
	}
	log.Info().Str("dist", cfg.Dist).Int("files", len(res.Files)).Msg("site built")
	return res, nil
}

// writeFile writes through a temp file so a failed step never leaves a
// truncated file behind.
func writeFile(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func copyFrom(src string) func(io.Writer) error {
	return func(w io.Writer) error {
		f, err := os.Open(src)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	}
}
