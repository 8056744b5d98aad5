package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewBacklogCommand creates the backlog command and its remove subcommand.
func NewBacklogCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backlog",
		Short: "List delayed articles",
		Long: `List the backlog, most recently delayed first. Each entry shows the
original routine day it still credits and when it was delayed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			entries := sess.engine.Backlog()
			if sess.out.Format == "json" {
				return sess.out.Success(entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(sess.out.Writer, "backlog is empty")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.Article.ID,
					e.Article.Title,
					e.OriginalRoutineDay.String(),
					e.DelayedAt.Format("2006-01-02 15:04"),
				})
			}
			return renderTable(sess.out.Writer, []string{"id", "title", "due day", "delayed at"}, rows)
		},
	}

	cmd.AddCommand(newBacklogRemoveCommand(opts))
	return cmd
}

func newBacklogRemoveCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <article-id>",
		Short: "Remove an article from the backlog",
		Long: `Drop a backlog entry without reading it, surrendering the streak
credit its original day carried. Removing an article that is not delayed is
a no-op.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			articleID := args[0]
			if err := sess.engine.RemoveFromBacklog(context.Background(), articleID, time.Now()); err != nil {
				return engineFailure(sess.out, err)
			}
			return sess.out.Success(fmt.Sprintf("removed %s from backlog", articleID))
		},
	}
}
