package main

import (
	"github.com/spf13/cobra"

	"github.com/vcrobe/visiq/build"
	"github.com/vcrobe/visiq/content"
)

func newBuildCmd(opts *options) *cobra.Command {
	var dist string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write index.html, the stylesheet and wasm_exec.js into the dist directory",
		Long: `The page copy is the landing.yaml embedded in the binary, the same copy the
WebAssembly runtime renders, so the noscript fallback always matches it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if dist != "" {
				cfg.Dist = dist
			}
			page, err := loadPage()
			if err != nil {
				return err
			}
			_, err = build.Run(cmd.Context(), cfg, page)
			return err
		},
	}
	cmd.Flags().StringVar(&dist, "dist", "", "Output directory (overrides config)")
	return cmd
}

// loadPage decodes the embedded page copy.
func loadPage() (*content.Page, error) {
	return content.Parse(content.LandingYAML())
}
