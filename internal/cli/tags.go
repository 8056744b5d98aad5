package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewTagsCommand creates the tags command.
func NewTagsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Show read counts per tag",
		Long: `Show how many reads each tag has accumulated, most-read first. Tags
are Unicode-normalized, so visually identical tags count together.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer sess.Close()

			stats := sess.engine.TagStats()
			if sess.out.Format == "json" {
				return sess.out.Success(stats)
			}

			sorted := stats.Sorted()
			if len(sorted) == 0 {
				fmt.Fprintln(sess.out.Writer, "no tags recorded")
				return nil
			}
			rows := make([][]string, 0, len(sorted))
			for _, tc := range sorted {
				rows = append(rows, []string{tc.Tag, strconv.Itoa(tc.Count)})
			}
			return renderTable(sess.out.Writer, []string{"tag", "reads"}, rows)
		},
	}

	return cmd
}
