package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand(opts *RootOptions) *cobra.Command {
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "List tracked articles",
		Long:          `List every article in the progress ledger with its read state.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			records := sess.engine.History()
			if unreadOnly {
				filtered := records[:0]
				for _, r := range records {
					if !r.IsRead {
						filtered = append(filtered, r)
					}
				}
				records = filtered
			}

			if sess.out.Format == "json" {
				return sess.out.Success(records)
			}

			if len(records) == 0 {
				fmt.Fprintln(sess.out.Writer, "no articles tracked")
				return nil
			}
			rows := make([][]string, 0, len(records))
			for _, r := range records {
				readAt := ""
				if r.ReadAt != nil {
					readAt = r.ReadAt.Format("2006-01-02 15:04")
				}
				rows = append(rows, []string{
					readGlyph(r.IsRead),
					r.ArticleID,
					r.ArticleTitle,
					r.RoutineDay.String(),
					readAt,
				})
			}
			return renderTable(sess.out.Writer, []string{"", "id", "title", "routine day", "read at"}, rows)
		},
	}

	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "show only unread articles")

	return cmd
}
