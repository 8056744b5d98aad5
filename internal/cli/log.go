package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewLogCommand creates the log command.
func NewLogCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the mutation journal",
		Long: `Show the append-only journal of recorded mutations, oldest first.
The journal is diagnostic; the snapshot is what the engine replays from.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			events, err := sess.engine.Journal(context.Background(), limit)
			if err != nil {
				return engineFailure(sess.out, err)
			}

			if sess.out.Format == "json" {
				return sess.out.Success(events)
			}

			if len(events) == 0 {
				fmt.Fprintln(sess.out.Writer, "journal is empty")
				return nil
			}
			rows := make([][]string, 0, len(events))
			for _, ev := range events {
				rows = append(rows, []string{
					strconv.FormatInt(ev.Seq, 10),
					string(ev.Op),
					ev.ArticleID,
					ev.At.Format("2006-01-02 15:04:05"),
					ev.Detail,
				})
			}
			return renderTable(sess.out.Writer, []string{"seq", "op", "article", "at", "detail"}, rows)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "show only the newest N events (0 = all)")

	return cmd
}
