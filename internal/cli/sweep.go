package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewSweepCommand creates the sweep command.
func NewSweepCommand(opts *RootOptions) *cobra.Command {
	var nowFlag string

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Expire aged backlog entries",
		Long: `Remove backlog entries delayed two or more calendar days ago. There
is no background timer; run sweep at the start of a session. Expired
entries lose their streak credit, so the streak can drop.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := resolveNow(nowFlag)
			if err != nil {
				return err
			}

			sess, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			removed, err := sess.engine.SweepExpired(context.Background(), now)
			if err != nil {
				return engineFailure(sess.out, err)
			}

			if sess.out.Format == "json" {
				if removed == nil {
					removed = []string{}
				}
				return sess.out.Success(map[string]interface{}{"removed": removed})
			}
			if len(removed) == 0 {
				fmt.Fprintln(sess.out.Writer, "nothing to sweep")
				return nil
			}
			fmt.Fprintf(sess.out.Writer, "swept %d expired: %s\n", len(removed), strings.Join(removed, ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&nowFlag, "now", "", "override the current time (RFC 3339)")

	return cmd
}
