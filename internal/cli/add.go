package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(opts *RootOptions) *cobra.Command {
	var (
		title string
		url   string
	)

	cmd := &cobra.Command{
		Use:   "add <article-id>",
		Short: "Add an article to the progress ledger",
		Long: `Record that an article became visible. Adding an article that is
already tracked is a no-op.`,
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
			if err := sess.engine.AddToHistory(context.Background(), articleID, title, url, time.Now()); err != nil {
				return engineFailure(sess.out, err)
			}
			return sess.out.Success(fmt.Sprintf("added %s", articleID))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "article title")
	cmd.Flags().StringVar(&url, "url", "", "article URL")

	return cmd
}
