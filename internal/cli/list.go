package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/todo/internal/logging"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/source"
	"github.com/sandeepkv93/todo/internal/store"
)

func addList(topLevel *cobra.Command, o *Options) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch the task list once and print it",
		Example: `
todo list
todo list --filter completed
todo list --endpoint sqlite://seed.db
`,
		Args: cobra.NoArgs,
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
			logger.Info("tasks loaded", "source", src.Name(), "count", kept)

			mode, err := model.ParseFilterMode(cfg.Filter)
			if err != nil {
				return err
			}
			PrintTasks(cmd.OutOrStdout(), st.Filtered(mode), mode)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

// PrintTasks writes tasks as an aligned table headed by the filter name.
func PrintTasks(w io.Writer, tasks []model.Task, mode model.FilterMode) {
	bold := color.New(color.Bold, color.Underline)
	faint := color.New(color.Faint)
	done := color.New(color.FgGreen)

	_, _ = fmt.Fprintf(w, "%s %s\n", bold.Sprintf("%s tasks", mode), faint.Sprintf("- %d", len(tasks)))
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, faint.Sprint(" none"))
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = done.Sprint("[x]")
		}
		tbl.AddRow(fmt.Sprintf("#%d", t.ID), mark, t.Title)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)
}
