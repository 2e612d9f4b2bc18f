package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/vk/langtour/internal/app"
	"github.com/vk/langtour/internal/config"
	"github.com/vk/langtour/internal/hcl"
)

// flags holds the raw values of the persistent flags. They only override the
// settings file when set explicitly.
type flags struct {
	settings  string
	plan      string
	logLevel  string
	logFormat string
	format    string
	workers   int
	timeout   time.Duration
	verify    bool
	listen    string
}

type env struct {
	outW, errW io.Writer
	loader     config.Loader
	flags      flags
}

// Execute builds the command tree, runs it against args and returns an
// *ExitError for anything that should end the process with a non-zero code.
func Execute(ctx context.Context, outW, errW io.Writer, args []string) error {
	cmd := NewRootCmd(outW, errW, hcl.NewLoader())
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	// Anything that did not come from a RunE is a cobra parse error.
	return usageError(err)
}

// NewRootCmd returns the langtour command with every subcommand attached.
// Lesson output goes to outW, logs and diagnostics to errW.
func NewRootCmd(outW, errW io.Writer, loader config.Loader) *cobra.Command {
	e := &env{outW: outW, errW: errW, loader: loader}
	def := app.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "langtour",
		Short: "langtour - a runnable tour of language fundamentals",
		Long: `langtour runs small annotated lessons about data types, variables, literals,
control flow, loops, functions, expressions, operators and dynamic values, and
checks that each prints what its annotations promise.

Lessons are picked with selectors ("topic" or "topic/lesson") or with an HCL
tour plan. Defaults come from langtour.yaml in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(outW)
	cmd.SetErr(errW)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&e.flags.settings, "settings", app.DefaultSettingsFile, "Settings file; a missing default file is ignored.")
	pf.StringVarP(&e.flags.plan, "plan", "p", "", "Tour plan: a .hcl file or a directory of them.")
	pf.StringVar(&e.flags.logLevel, "log-level", def.LogLevel, "Logging level: debug|info|warn|error.")
	pf.StringVar(&e.flags.logFormat, "log-format", def.LogFormat, "Log output format: text|json.")
	pf.StringVarP(&e.flags.format, "format", "f", def.Format, "Report format: plain|pretty|json.")
	pf.IntVarP(&e.flags.workers, "workers", "w", def.Workers, "Number of lessons run concurrently.")
	pf.DurationVar(&e.flags.timeout, "timeout", def.Timeout, "Per-lesson timeout.")
	pf.BoolVar(&e.flags.verify, "verify", def.Verify, "Compare each lesson's output with its documented output.")
	pf.StringVar(&e.flags.listen, "listen", def.Listen, "Address the serve command listens on.")

	cmd.AddCommand(
		e.runCmd(),
		e.listCmd(),
		e.showCmd(),
		e.serveCmd(),
		e.browseCmd(),
		e.schemaCmd(),
	)
	return cmd
}

// config merges defaults, the settings file and explicitly set flags, in that
// order of precedence from lowest to highest.
func (e *env) config(cmd *cobra.Command, selectors []string) (*app.Config, error) {
	cfg := app.DefaultConfig()

	changed := cmd.Flags().Changed
	settings, err := app.LoadSettings(e.flags.settings, !changed("settings"))
	if err != nil {
		return nil, usageError(err)
	}
	if err := cfg.ApplySettings(settings); err != nil {
		return nil, usageError(err)
	}

	if changed("plan") {
		cfg.PlanPath = e.flags.plan
	}
	if changed("log-level") {
		cfg.LogLevel = e.flags.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = e.flags.logFormat
	}
	if changed("format") {
		cfg.Format = e.flags.format
	}
	if changed("workers") {
		cfg.Workers = e.flags.workers
	}
	if changed("timeout") {
		cfg.Timeout = e.flags.timeout
	}
	if changed("verify") {
		cfg.Verify = e.flags.verify
	}
	if changed("listen") {
		cfg.Listen = e.flags.listen
	}
	cfg.Selectors = selectors

	// The loader skips missing paths; a plan named by the user must exist.
	if cfg.PlanPath != "" {
		if _, err := os.Stat(cfg.PlanPath); err != nil {
			return nil, usageError(fmt.Errorf("tour plan %q: %w", cfg.PlanPath, err))
		}
	}

	slog.Debug("CLI configuration resolved.", "plan", cfg.PlanPath, "selectors", selectors, "workers", cfg.Workers)
	return cfg, nil
}

// newApp builds the App for a subcommand. Construction errors are the user's
// to fix: invalid values, unreadable plans, unknown lessons.
func (e *env) newApp(cmd *cobra.Command, selectors []string) (*app.App, error) {
	cfg, err := e.config(cmd, selectors)
	if err != nil {
		return nil, err
	}
	a, err := app.NewApp(e.outW, e.errW, cfg, e.loader)
	if err != nil {
		return nil, usageError(err)
	}
	return a, nil
}

func (e *env) schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the settings file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			b, err := app.SettingsSchema()
			if err != nil {
				return failure(err)
			}
			_, err = fmt.Fprintln(e.outW, string(b))
			return err
		},
	}
}
