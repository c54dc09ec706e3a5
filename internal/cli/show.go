package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"

	"github.com/faizmokh/daysplit/internal/journal"
	"github.com/faizmokh/daysplit/internal/output"
)

func newShowCommand(ctx context.Context, env *environment) *cobra.Command {
	var (
		dateFlag string
		htmlFlag bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the journal for today or a specific date.",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveDate(dateFlag)
			if err != nil {
				return output.NewUserErrorWithCause(err.Error(), err)
			}

			reader := journal.NewReader(env.manager)
			day, err := reader.Day(ctx, target)
			if err != nil {
				if errors.Is(err, journal.ErrDayNotFound) {
					fmt.Fprintf(cmd.OutOrStdout(), "No journal for %s\n", target)
					return nil
				}
				return output.NewSystemErrorWithCause(fmt.Sprintf("read journal for %s: %v", target, err), err)
			}

			if htmlFlag {
				return renderHTML(cmd, day)
			}

			printer := env.printer(cmd)
			printer.Section(day.Date.String())
			printer.Print("%s", day.Content)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Target date in YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&htmlFlag, "html", false, "Render the day as HTML")

	return cmd
}

func renderHTML(cmd *cobra.Command, day journal.Day) error {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(day.Content), &buf); err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("render %s: %v", day.Path, err), err)
	}
	_, err := cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
