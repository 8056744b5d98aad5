package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/kindling/internal/routine"
)

// NewReadCommand creates the read command.
func NewReadCommand(opts *RootOptions) *cobra.Command {
	var (
		dayFlag         string
		originalDayFlag string
		tagsFlag        string
		nowFlag         string
	)

	cmd := &cobra.Command{
		Use:   "read <article-id>",
		Short: "Mark an article as read",
		Long: `Mark a tracked article as read, counting its tags and crediting its
routine day toward the streak. Reading an unknown or already-read article
is a no-op. An article sitting in the backlog is promoted out of it.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := resolveNow(nowFlag)
			if err != nil {
				return err
			}

			day := routine.DayOf(now)
			if dayFlag != "" {
				day, err = routine.ParseDay(dayFlag)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --day", err)
				}
			}

			var originalDay routine.Day
			if originalDayFlag != "" {
				originalDay, err = routine.ParseDay(originalDayFlag)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --original-day", err)
				}
			}

			var tags []string
			if tagsFlag != "" {
				tags = strings.Split(tagsFlag, ",")
			}

			sess, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			articleID := args[0]
			if err := sess.engine.MarkRead(context.Background(), articleID, tags, day, originalDay, now); err != nil {
				return engineFailure(sess.out, err)
			}
			return sess.out.Success(fmt.Sprintf("read %s (routine day %s)", articleID, day))
		},
	}

	cmd.Flags().StringVar(&dayFlag, "day", "", "routine day being satisfied (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&originalDayFlag, "original-day", "", "original due day for a delayed article (YYYY-MM-DD)")
	cmd.Flags().StringVar(&tagsFlag, "tags", "", "comma-separated tags")
	cmd.Flags().StringVar(&nowFlag, "now", "", "override the current time (RFC 3339)")

	return cmd
}

// resolveNow parses the --now override, defaulting to the wall clock.
func resolveNow(flag string) (time.Time, error) {
	if flag == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, flag)
	if err != nil {
		return time.Time{}, WrapExitError(ExitCommandError, "invalid --now", err)
	}
	return t, nil
}
