package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/roach88/kindling/internal/routine"
)

// NewStreakCommand creates the streak command.
func NewStreakCommand(opts *RootOptions) *cobra.Command {
	var todayFlag string

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show the current streak",
		Long: `Show the streak of consecutive routine days ending today. The number
cycles weekly: day eight of an unbroken run displays as 1 again. A day
with no read today shows 0 regardless of past reads.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := routine.DayOf(time.Now())
			if todayFlag != "" {
				var err error
				today, err = routine.ParseDay(todayFlag)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid --today", err)
				}
			}

			sess, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			streak := sess.engine.ComputeStreak(today)
			raw := routine.RawStreak(sess.engine.History(), sess.engine.Backlog(), today)

			if sess.out.Format == "json" {
				return sess.out.Success(map[string]interface{}{
					"today":  today.String(),
					"streak": streak,
					"raw":    raw,
				})
			}

			fmt.Fprintf(sess.out.Writer, "%s  day %s of the week\n", flameLine(streak), color.New(color.Bold).Sprint(streak))
			sess.out.VerboseLog("raw streak: %d days", raw)
			return nil
		},
	}

	cmd.Flags().StringVar(&todayFlag, "today", "", "override today's date (YYYY-MM-DD)")

	return cmd
}

// flameLine renders one flame per streak day, dim placeholders for the rest
// of the week.
func flameLine(streak int) string {
	line := ""
	for i := 1; i <= routine.StreakCycle; i++ {
		if i <= streak {
			line += color.YellowString("🔥")
		} else {
			line += color.New(color.Faint).Sprint("·")
		}
	}
	return line
}
