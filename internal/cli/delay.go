package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/kindling/internal/routine"
)

// NewDelayCommand creates the delay command.
func NewDelayCommand(opts *RootOptions) *cobra.Command {
	var (
		title    string
		url      string
		dayFlag  string
		tagsFlag string
		nowFlag  string
	)

	cmd := &cobra.Command{
		Use:   "delay <article-id>",
		Short: "Postpone an article to the backlog",
		Long: `Move an article to the backlog instead of reading it today. The
backlog holds at most two entries and each entry expires after two calendar
days. Reading a delayed article within the window still credits its
original routine day.`,
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

			var tags []string
			if tagsFlag != "" {
				tags = strings.Split(tagsFlag, ",")
			}

			sess, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			article := routine.Article{
				ID:         args[0],
				Title:      title,
				URL:        url,
				RoutineDay: day,
				Tags:       tags,
			}
			if err := sess.engine.Delay(context.Background(), article, now); err != nil {
				return engineFailure(sess.out, err)
			}
			return sess.out.Success(fmt.Sprintf("delayed %s (due day %s)", article.ID, day))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "article title")
	cmd.Flags().StringVar(&url, "url", "", "article URL")
	cmd.Flags().StringVar(&dayFlag, "day", "", "routine day the article was due (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&tagsFlag, "tags", "", "comma-separated tags")
	cmd.Flags().StringVar(&nowFlag, "now", "", "override the current time (RFC 3339)")

	return cmd
}
