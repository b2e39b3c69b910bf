package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"modelmap/internal/diagnostic"
)

var version = "dev"

type rootOptions struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "modelmap",
		Short: "Partition Go model packages into mapping units",
		Long: `modelmap loads Go model packages, applies mapping configurations and
reports the resulting mapping units.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}

			opts.logger = logger.With("run", uuid.NewString())

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(
		newResolveCmd(opts),
		newNamespacesCmd(opts),
		newInitCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "modelmap %s\n", version)
			},
		},
	)

	return cmd
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "trace":
		lvl = diagnostic.LevelTrace
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	if w == nil {
		w = os.Stderr
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// observer returns the diagnostic observer of the current run.
func (o *rootOptions) observer() diagnostic.Observer {
	return diagnostic.NewSlogObserver(o.logger)
}
