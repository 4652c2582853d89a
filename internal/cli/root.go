// Package cli wires the todo command tree: the root command runs the
// terminal UI and `list` prints the seeded list once.
package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/todo/internal/config"
	"github.com/sandeepkv93/todo/internal/logging"
	"github.com/sandeepkv93/todo/internal/source"
	"github.com/sandeepkv93/todo/internal/update"
)

// Options holds the persistent flags shared by every command.
type Options struct {
	ConfigPath     string
	Endpoint       string
	TimeoutSeconds int
	LogFile        string
	LogLevel       string
	Filter         string
}

// runProgram is replaced in tests so the root command never takes over the
// terminal.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func New() *cobra.Command {
	return newRoot(&Options{})
}

func newRoot(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "A terminal task list seeded from a remote collection.",
		Long: `todo loads a task list once from a remote endpoint and lets you add,
complete, edit and delete tasks locally. Changes are never written back.`,
		Example: `
todo
todo --endpoint sqlite://seed.db
todo list --filter completed
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.RuntimeConfig(cmd)
			if err != nil {
				return err
			}
			logger, closer, err := logging.New(logging.Options{Path: cfg.LogFile, Level: cfg.LogLevel})
			if err != nil {
				return err
			}
			defer closer.Close()

			src, err := source.New(cfg)
			if err != nil {
				return err
			}
			logger.Debug("starting ui", "source", src.Name(), "filter", cfg.Filter)
			return runProgram(update.NewModelWithSource(src, cfg, logger))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.ConfigPath, "config", "", "path to a TOML config file (default $TODO_CONFIG or todo.toml)")
	flags.StringVar(&o.Endpoint, "endpoint", "", "seed endpoint: http(s) URL or sqlite://path")
	flags.IntVar(&o.TimeoutSeconds, "timeout", 0, "seed fetch timeout in seconds")
	flags.StringVar(&o.LogFile, "log-file", "", "operator log file")
	flags.StringVar(&o.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&o.Filter, "filter", "", "initial filter: all or completed")

	addList(cmd, o)
	addSeed(cmd, o)
	return cmd
}

// RuntimeConfig layers defaults, the config file, the environment and the
// flags that were set on cmd, in that order, and validates the result.
func (o *Options) RuntimeConfig(cmd *cobra.Command) (config.RuntimeConfig, error) {
	path := config.ConfigPathFromEnv()
	if o.ConfigPath != "" {
		path = o.ConfigPath
	}
	cfg, err := config.RuntimeConfigFromFile(config.DefaultRuntimeConfig(), path)
	if err != nil {
		return config.RuntimeConfig{}, err
	}
	cfg = config.RuntimeConfigFromEnv(cfg)

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = o.Endpoint
	}
	if flags.Changed("timeout") {
		cfg.Timeout = time.Duration(o.TimeoutSeconds) * time.Second
	}
	if flags.Changed("log-file") {
		cfg.LogFile = o.LogFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if flags.Changed("filter") {
		cfg.Filter = o.Filter
	}

	if err := cfg.Validate(); err != nil {
		return config.RuntimeConfig{}, err
	}
	return cfg, nil
}
