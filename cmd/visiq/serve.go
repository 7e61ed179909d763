package main

import (
	"github.com/spf13/cobra"

	"github.com/vcrobe/visiq/build"
	"github.com/vcrobe/visiq/devserver"
)

func newServeCmd(opts *options) *cobra.Command {
	var (
		addr    string
		noBuild bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site and serve the dist directory until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if !noBuild {
				page, err := loadPage()
				if err != nil {
					return err
				}
				if _, err := build.Run(cmd.Context(), cfg, page); err != nil {
					return err
				}
			}
			srv, err := devserver.Listen(cfg.Addr, cfg.Dist)
			if err != nil {
				return err
			}
			log.Info().Str("dist", cfg.Dist).Msg("press ctrl-c to stop")
			return srv.Serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	cmd.Flags().BoolVar(&noBuild, "no-build", false, "Serve dist as it is")
	return cmd
}
