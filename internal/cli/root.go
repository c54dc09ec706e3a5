package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/faizmokh/daysplit/internal/config"
	"github.com/faizmokh/daysplit/internal/files"
	"github.com/faizmokh/daysplit/internal/logger"
	"github.com/faizmokh/daysplit/internal/output"
	"github.com/faizmokh/daysplit/internal/version"
)

// environment carries what every subcommand needs. The root command fills it
// in before any subcommand runs.
type environment struct {
	manager   *files.Manager
	log       zerolog.Logger
	colorMode string
}

type rootOptions struct {
	root       string
	configPath string
	logLevel   string
	logFormat  string
	color      string
}

// NewRootCommand creates the top-level Cobra command. Passing an export file
// directly is shorthand for "daysplit split <export-file>".
func NewRootCommand(ctx context.Context) *cobra.Command {
	env := &environment{log: zerolog.Nop()}
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "daysplit [export-file]",
		Short: "Split a Day One journal export into one Markdown file per day.",
		Long: `daysplit reads a plain-text Day One export and writes every entry into
root/YYYY/MM/journal_YYYY-MM-DD.md, rewriting Photo: lines as Markdown images.

Rerunning on the same export overwrites the day files it produced.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.configure(opts, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runSplit(ctx, cmd, env, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.root, "root", "", "Directory receiving the day files (default: $"+files.RootEnv+", config root, or ~/"+files.DefaultDirName+")")
	flags.StringVar(&opts.configPath, "config", "", "Config file (default: "+config.FileName+" in the daysplit config directory)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Diagnostic log level: debug|info|warn|error|off")
	flags.StringVar(&opts.logFormat, "log-format", "", "Diagnostic log format: console|json")
	flags.StringVar(&opts.color, "color", "auto", "Colorize output: auto|always|never")

	cmd.AddCommand(
		newSplitCommand(ctx, env),
		newShowCommand(ctx, env),
		newListCommand(ctx, env),
		newBrowseCommand(ctx, env),
	)

	return cmd
}

func (env *environment) configure(opts rootOptions, stderr io.Writer) error {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return output.NewUserErrorWithCause(err.Error(), err)
	}

	root, err := files.ResolveBasePath(opts.root, cfg.Root)
	if err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("resolve root directory: %v", err), err)
	}
	manager, err := files.NewManager(root)
	if err != nil {
		return output.NewSystemErrorWithCause(fmt.Sprintf("resolve root directory: %v", err), err)
	}

	colorOn := output.ColorEnabled(opts.color, stderr)
	logOpts := logger.Options{
		Level:   opts.logLevel,
		Format:  opts.logFormat,
		Writer:  stderr,
		NoColor: !colorOn,
	}.Merge(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format}).Merge(logger.Defaults())

	env.manager = manager
	env.log = logger.New(logOpts)
	env.colorMode = opts.color
	return nil
}

func (env *environment) printer(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	isTTY := output.ColorEnabled(env.colorMode, out)
	return output.NewPrinter(out, isTTY).WithStderr(cmd.ErrOrStderr())
}

// Execute runs the root command through fang and returns the process exit code.
func Execute(ctx context.Context) int {
	cmd := NewRootCommand(ctx)
	err := fang.Execute(ctx, cmd,
		fang.WithVersion(version.Info()),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			output.NewPrinter(w, output.IsTTY(w)).Error(err)
		}),
	)
	return output.ExitCode(err)
}

// Main is a helper used by cmd/daysplit/main.go to keep wiring contained in one package.
func Main(ctx context.Context) {
	os.Exit(Execute(ctx))
}
