// Command visiq builds, serves and smoke-tests the VISIQ Academy landing page.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vcrobe/visiq/config"
	"github.com/vcrobe/visiq/logging"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "visiq:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "visiq",
		Short:         "Build and serve the VISIQ Academy landing page",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file (default: built-in settings)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newBuildCmd(opts),
		newServeCmd(opts),
		newSmokeCmd(opts),
	)
	return root
}

// load reads the config and sets up logging for cmd.
func (o *options) load(cmd *cobra.Command) (config.Site, zerolog.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Site{}, zerolog.Nop(), err
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
		if err := cfg.Validate(); err != nil {
			return config.Site{}, zerolog.Nop(), err
		}
	}
	logging.Configure(logging.ProfileRuntime, cmd.ErrOrStderr(), cfg.LogLevel)
	return cfg, logging.Component(cmd.Name()), nil
}
