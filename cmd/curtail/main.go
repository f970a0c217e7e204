package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/curtail/internal/cliconfig"
)

const longHelp = `Write stdin to LOG_FILE without letting it grow past a size limit.

When the next chunk would exceed the limit, the oldest blocks of the file are
cut away with fallocate(2) range collapse, so the file always holds the most
recent output. The limit is rounded down to a multiple of the filesystem block
size and is never less than two blocks.

Configuration is read from flags, then CURTAIL_* environment variables, then
the TOML config file.`

var exampleUsage = strings.TrimSpace(`
  make 2>&1 | curtail build.log
  myserver | curtail --size 10M /var/log/myserver.log
  curtail --input /var/log/app.out --follow --size 1G app.tail.log
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCmd(stdin io.Reader, log zerolog.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "curtail [flags] LOG_FILE",
		Short:         "Keep a log file under a fixed size by collapsing its oldest blocks",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.LogFile = args[0]
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				if errors.Is(err, cliconfig.ErrMissingLogFile) {
					fmt.Fprintln(cmd.ErrOrStderr(), "ERROR: missing LOG_FILE argument")
				}
				_ = cmd.Usage()
				return err
			}

			log = log.Level(cfg.Level)
			log.Debug().Interface("config", cfg).Msg("configuration")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, stdin, log)
		},
	}
	root.SetIn(stdin)

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.curtail/config.toml)")
	root.Flags().StringVarP(&cfg.Size, "size", "s", cfg.Size, "size limit of the log file, rounded to a multiple of the block size (512, 2K, 10M, 1G)")
	root.Flags().StringVar(&cfg.Input, "input", cfg.Input, "read from this file instead of stdin")
	root.Flags().BoolVar(&cfg.Follow, "follow", cfg.Follow, "keep reading --input as it grows, like tail -f")
	root.Flags().DurationVar(&cfg.PollInterval, "poll-interval", cfg.PollInterval, "how often --follow rechecks the input without a change notification")
	root.Flags().IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "read buffer size in bytes")
	root.Flags().StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "how to drop old data: auto, collapse (fallocate) or copy")
	root.Flags().BoolVar(&cfg.Truncate, "truncate", cfg.Truncate, "discard existing LOG_FILE contents instead of appending")
	root.Flags().StringVar(&cfg.StatsFile, "stats-file", cfg.StatsFile, "write a JSON summary of collapses to this path on exit")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	return root
}

func main() {
	log := cliconfig.Logger()

	if err := newRootCmd(os.Stdin, log).ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("curtail")
		os.Exit(1)
	}
}
