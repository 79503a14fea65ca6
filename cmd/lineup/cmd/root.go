// Package cmd provides the CLI commands for lineup.
package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineup/internal/config"
	"github.com/katalvlaran/lineup/internal/logger"
	"github.com/katalvlaran/lineup/internal/report"
)

// Version is the CLI version, overridden at build time with
// -ldflags "-X github.com/katalvlaran/lineup/cmd/lineup/cmd.Version=...".
var Version = "dev"

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	color      string

	cfg *config.Config
	log *slog.Logger
}

// NewRootCmd creates the root command for the lineup CLI.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "lineup",
		Short: "Batting-order search with handedness alternation",
		Long: `lineup finds the batting order that maximizes a position-weighted
score while alternating left- and right-handed batters whenever possible.

'search' enumerates every admissible order, 'greedy' builds one in a
single pass, and 'compare' runs both on the same roster.`,
		Version:           Version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	cmd.SetVersionTemplate("lineup version {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: text or json")
	pf.StringVar(&a.color, "color", "", "Color output: auto, always, never")

	cmd.AddCommand(newSearchCmd(a))
	cmd.AddCommand(newGreedyCmd(a))
	cmd.AddCommand(newCompareCmd(a))
	cmd.AddCommand(newCountCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

// setup loads config (defaults, file, env, then flags), installs the logger
// on stderr and tags the command context with a fresh run id.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	if flags.Changed("color") {
		cfg.Report.Color = a.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger.Setup(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithRunID(ctx, logger.NewRunID())
	cmd.SetContext(ctx)

	a.log = logger.WithComponent(ctx, "cli").With("command", cmd.Name())
	a.log.Debug("config loaded",
		slog.String("config", a.configPath),
		slog.Int("lineup_len", cfg.Search.LineupLen),
		slog.String("bound", cfg.Search.Bound))

	return nil
}

// renderer returns a report renderer on the command's stdout.
func (a *app) renderer(cmd *cobra.Command) *report.Renderer {
	return report.New(cmd.OutOrStdout(), a.cfg.Report.Color)
}
