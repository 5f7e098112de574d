package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/pathsearch/internal/config"
	"github.com/harrison/pathsearch/internal/filter"
	"github.com/harrison/pathsearch/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for pathsearch
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pathsearch [flags] [pattern]",
		Short: "Look for files in PATH",
		Long: `pathsearch searches each directory of the PATH environment variable for
files whose names match a pattern.

Results are printed in PATH order, so the first match is the file the shell
would run if you typed its name. Without a pattern every entry is listed.

Configuration is loaded from $PATHSEARCH_CONFIG or pathsearch/config.yaml in
the XDG config directories if present. CLI flags override configuration file
settings.

Examples:
  pathsearch python              # substring match
  pathsearch -r '^git-'          # regular expression
  pathsearch -f gtst             # fuzzy match
  pathsearch -s exmple           # rank by similarity to the pattern
  pathsearch -x                  # every executable in PATH
  pathsearch --path-var MANPATH man1
  pathsearch --color never ls | less`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSearch,
	}

	cmd.Flags().BoolP("regex", "r", false, "Interpret pattern as a regular expression")
	cmd.Flags().BoolP("fuzzy", "f", false, "Match pattern fuzzily (no highlighting)")
	cmd.Flags().BoolP("sort", "s", false, "Sort substring matches by similarity to the pattern")
	cmd.Flags().BoolP("executable", "x", false, "Only list entries that can be executed")
	cmd.Flags().String("color", "auto", "Control color output [auto, always, never]")
	cmd.Flags().String("path-var", "", "Environment variable holding the directory list (default: PATH)")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity [trace, debug, info, warn, error]")
	cmd.Flags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/pathsearch/config.yaml)")

	return cmd
}

// runSearch implements the root command logic
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := mergeFlags(cmd, cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	regex, _ := cmd.Flags().GetBool("regex")
	fuzzy, _ := cmd.Flags().GetBool("fuzzy")

	var pattern *string
	if len(args) == 1 {
		pattern = &args[0]
	}

	opts, err := cfg.Resolve(config.Request{
		DirList:    os.Getenv(cfg.PathVar),
		Pattern:    pattern,
		Regex:      regex,
		Fuzzy:      fuzzy,
		IsTerminal: logger.IsTerminal(cmd.OutOrStdout()),
	})
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	log.LogDebug(fmt.Sprintf("searching %d directories from $%s in %s mode", len(opts.Dirs), cfg.PathVar, opts.Mode))

	if opts.Sort && !opts.SortApplies() {
		if cmd.Flags().Changed("sort") && opts.Mode != filter.ModeMatchAll {
			warnSortIgnored(cmd, opts.Mode)
		} else {
			log.LogDebug(fmt.Sprintf("similarity sort ignored in %s mode", opts.Mode))
		}
	}

	return Search(opts, cmd.OutOrStdout(), log)
}

// loadConfig loads the config file named by --config, or the default one.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies the flags the user actually set on top of cfg.
func mergeFlags(cmd *cobra.Command, cfg *config.Config) error {
	var (
		pathVar    *string
		color      *config.ColorMode
		logLevel   *string
		sort       *bool
		executable *bool
	)

	flags := cmd.Flags()

	if flags.Changed("path-var") {
		v, _ := flags.GetString("path-var")
		pathVar = &v
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		mode, err := config.ParseColorMode(v)
		if err != nil {
			return err
		}
		color = &mode
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		logLevel = &v
	}
	if flags.Changed("sort") {
		v, _ := flags.GetBool("sort")
		sort = &v
	}
	if flags.Changed("executable") {
		v, _ := flags.GetBool("executable")
		executable = &v
	}

	cfg.MergeWithFlags(pathVar, color, logLevel, sort, executable)
	return nil
}
