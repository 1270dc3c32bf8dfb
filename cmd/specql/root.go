package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zoobzio/specql/internal/cli"
)

// app holds state shared by all commands of one invocation.
type app struct {
	// Set during PersistentPreRunE
	cfg        *cli.Config
	configPath string
	logger     *slog.Logger

	// Persistent flags
	cfgFile string
	verbose int
	quiet   bool
}

// Command group IDs
const (
	groupSpec    = "spec"
	groupUtility = "utility"
)

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.DiscardHandler)}

	rootCmd := &cobra.Command{
		Use:   "specql",
		Short: "Render declarative query specs to SQL",
		Long: `specql - declarative SELECT statements

specql reads a query spec (tables, columns, joins, predicates, grouping,
ordering, limit and dialect) and renders a validated, read-only SQL SELECT
statement for mysql, postgres, sqlite or mssql.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for help/completion/version commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
				return nil
			}

			var err error
			a.cfg, a.configPath, err = cli.LoadConfig(a.cfgFile)
			if err != nil {
				return cli.ConfigError("loading configuration", err)
			}

			level, _ := cli.ParseLevel(a.cfg.Log.Level)
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: resolveLevel(level, a.verbose, a.quiet),
			}))
			a.logger.Debug("configuration loaded", "path", a.configPath)

			return nil
		},
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: auto-discover specql.yaml)")
	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupSpec, Title: "Spec:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	for _, cmd := range []*cobra.Command{newRenderCmd(a), newValidateCmd(a), newDialectsCmd(a)} {
		cmd.GroupID = groupSpec
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{newConfigCmd(a), newVersionCmd()} {
		cmd.GroupID = groupUtility
		rootCmd.AddCommand(cmd)
	}

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(cli.Report(os.Stderr, err))
	}
}

// resolveLevel applies -q and -v on top of the configured level.
func resolveLevel(configured slog.Level, verbose int, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose >= 2:
		return slog.LevelDebug
	case verbose == 1:
		return slog.LevelInfo
	default:
		return configured
	}
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > spec > config.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
