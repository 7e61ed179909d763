package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vcrobe/visiq/build"
	"github.com/vcrobe/visiq/config"
	"github.com/vcrobe/visiq/content"
	"github.com/vcrobe/visiq/devserver"
	"github.com/vcrobe/visiq/smoke"
)

func newSmokeCmd(opts *options) *cobra.Command {
	var (
		url     string
		headful bool
		targets = smoke.DefaultTargets
	)
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Open the site in a real browser and check blocks reveal on scroll",
		Long: `Without --url (or VISIQ_SMOKE_URL) the site is built and served from the
dist directory on a free local port for the duration of the check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if url != "" {
				cfg.Smoke.URL = url
			}
			if headful {
				cfg.Smoke.Headless = false
			}

			var report smoke.Report
			if cfg.Smoke.URL != "" {
				report, err = smoke.Run(cmd.Context(), cfg.Smoke, cfg.Smoke.URL, targets)
			} else {
				report, err = smokeLocal(cmd.Context(), cfg, targets)
			}

			for _, c := range report.Checks {
				status := "ok"
				if !c.Passed {
					status = "FAIL"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %-30s %-12s %s\n", status, c.Name, c.Block, c.Took.Round(time.Millisecond))
			}
			if err != nil {
				return err
			}
			log.Info().Str("url", report.URL).Int("checks", len(report.Checks)).Msg("smoke passed")
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "Site URL (default: build and serve dist locally)")
	cmd.Flags().BoolVar(&headful, "headful", false, "Show the browser window")
	cmd.Flags().StringVar(&targets.AboveFold, "above", targets.AboveFold, "Reveal id of a block visible on load")
	cmd.Flags().StringVar(&targets.BelowFold, "below", targets.BelowFold, "Reveal id of a block below the fold")
	return cmd
}

// smokeLocal builds the site, serves it on a free port and runs the check
// against it.
func smokeLocal(ctx context.Context, cfg config.Site, targets smoke.Targets) (smoke.Report, error) {
	if _, err := build.Run(ctx, cfg, content.Default()); err != nil {
		return smoke.Report{}, err
	}
	srv, err := devserver.Listen("127.0.0.1:0", cfg.Dist)
	if err != nil {
		return smoke.Report{}, err
	}

	serveCtx, stop := context.WithCancel(ctx)
	var report smoke.Report
	g, gctx := errgroup.WithContext(serveCtx)
	g.Go(func() error {
		return srv.Serve(gctx)
	})
	g.Go(func() error {
		defer stop()
		var err error
		report, err = smoke.Run(gctx, cfg.Smoke, srv.URL(), targets)
		return err
	})
	err = g.Wait()
	return report, err
}
