package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/faizmokh/daysplit/internal/journal"
	"github.com/faizmokh/daysplit/internal/output"
)

// maxWarnings caps how many skipped lines are echoed back to the user.
const maxWarnings = 10

func newSplitCommand(ctx context.Context, env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <export-file>",
		Short: "Split an export into per-day Markdown files.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(ctx, cmd, env, args[0])
		},
	}

	return cmd
}

func runSplit(ctx context.Context, cmd *cobra.Command, env *environment, path string) error {
	log := env.log.With().
		Str("run_id", ulid.Make().String()).
		Str("export", path).
		Str("root", env.manager.BasePath()).
		Logger()

	splitter := journal.NewSplitter(env.manager, journal.WithLogger(log))
	res, err := splitter.SplitFile(ctx, path)
	if err != nil {
		log.Error().Err(err).Int("lines_read", res.LinesRead).Msg("split aborted")
		return splitFailure(path, err)
	}

	log.Info().
		Int("lines_read", res.LinesRead).
		Int("lines_written", res.LinesWritten).
		Int("segments_opened", len(res.Opened)).
		Msg("split finished")

	printSplitResult(env.printer(cmd), env.manager.BasePath(), res)
	return nil
}

// splitFailure turns a splitter error into the one-line message shown to the
// user, naming the failure kind and exit status.
func splitFailure(path string, err error) error {
	var (
		parseErr *journal.DateParseError
		dirErr   *journal.DirectoryCreateError
		writeErr *journal.WriteError
	)

	switch {
	case errors.As(err, &parseErr):
		return output.NewUserErrorWithCause("date parse error: "+parseErr.Error(), err)
	case errors.As(err, &dirErr):
		return output.NewSystemErrorWithCause("directory create error: "+dirErr.Error(), err)
	case errors.As(err, &writeErr):
		return output.NewSystemErrorWithCause("write error: "+writeErr.Error(), err)
	case errors.Is(err, fs.ErrNotExist):
		return output.NewUserErrorWithCause(fmt.Sprintf("export file %s does not exist", path), err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return output.NewSystemErrorWithCause("split interrupted: "+err.Error(), err)
	default:
		return output.NewSystemErrorWithCause(fmt.Sprintf("split %s: %v", path, err), err)
	}
}

func printSplitResult(printer *output.Printer, root string, res journal.Result) {
	days := res.Days()
	printer.Success("Split %d %s into %s", len(days), plural(len(days), "day", "days"), root)
	printer.KeyValue("Lines read", fmt.Sprint(res.LinesRead))
	printer.KeyValue("Lines written", fmt.Sprint(res.LinesWritten))
	printer.KeyValue("Photos", fmt.Sprint(res.Photos))
	if reopened := len(res.Opened) - len(days); reopened > 0 {
		printer.KeyValue("Days replaced by later entries", fmt.Sprint(reopened))
	}

	for i, warning := range res.Warnings {
		if i == maxWarnings {
			printer.Warn("%d more lines before the first entry header were skipped", len(res.Warnings)-maxWarnings)
			break
		}
		printer.Warn("%s", warning.Error())
	}
}
