package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/daysplit/internal/journal"
	"github.com/faizmokh/daysplit/internal/output"
)

func newListCommand(ctx context.Context, env *environment) *cobra.Command {
	var (
		fromFlag string
		toFlag   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the days that have a journal file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := resolveOptionalDate(fromFlag)
			if err != nil {
				return output.NewUserErrorWithCause(err.Error(), err)
			}
			to, err := resolveOptionalDate(toFlag)
			if err != nil {
				return output.NewUserErrorWithCause(err.Error(), err)
			}

			reader := journal.NewReader(env.manager)
			days, err := reader.DaysBetween(ctx, from, to)
			if err != nil {
				return output.NewSystemErrorWithCause(err.Error(), err)
			}

			out := cmd.OutOrStdout()
			if len(days) == 0 {
				fmt.Fprintf(out, "No journals under %s\n", env.manager.BasePath())
				return nil
			}
			for _, d := range days {
				fmt.Fprintf(out, "%s  %s\n", d, env.manager.DayPath(d))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "First date in YYYY-MM-DD (default: earliest)")
	cmd.Flags().StringVar(&toFlag, "to", "", "Last date in YYYY-MM-DD (default: latest)")

	return cmd
}
