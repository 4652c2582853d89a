package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/todo/internal/logging"
	"github.com/sandeepkv93/todo/internal/source"
	"github.com/sandeepkv93/todo/internal/storage"
	"github.com/sandeepkv93/todo/internal/store"
)

func addSeed(topLevel *cobra.Command, o *Options) {
	cmd := &cobra.Command{
		Use:   "seed <file.db>",
		Short: "Snapshot the endpoint's task list into a SQLite seed file",
		Long: `seed fetches the configured endpoint once and writes the tasks to a
SQLite file that can later be used as --endpoint sqlite://<file.db>.
Existing rows in the file are replaced.`,
		Example: `
todo seed seed.db
todo --endpoint sqlite://seed.db?user=1
`,
		Args: cobra.ExactArgs(1),
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
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()

			tasks, err := src.Fetch(ctx)
			if err != nil {
				logger.Error("load tasks failed", "source", src.Name(), "err", err)
				return err
			}
			st := store.New()
			kept := st.Replace(tasks)
			if err := storage.WriteSeed(ctx, args[0], st.All()); err != nil {
				return fmt.Errorf("write seed %s: %w", args[0], err)
			}
			logger.Info("seed written", "source", src.Name(), "path", args[0], "count", kept)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s to %s\n", color.New(color.Bold).Sprintf("%d tasks", kept), args[0])
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
