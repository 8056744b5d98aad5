package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewUnreadCommand creates the unread command.
func NewUnreadCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unread <article-id>",
		Short: "Clear an article's read state (development mode only)",
		Long: `Clear the read state of an article so it can be read again. Refused
with NOT_PERMITTED unless the configured mode is development.`,
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
			if err := sess.engine.MarkUnread(context.Background(), articleID, time.Now()); err != nil {
				return engineFailure(sess.out, err)
			}
			return sess.out.Success(fmt.Sprintf("unread %s", articleID))
		},
	}

	return cmd
}
