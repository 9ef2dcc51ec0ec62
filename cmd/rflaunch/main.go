// rflaunch runs the Robot Framework API suites and files their reports under
// timestamped result directories.
//
// Usage:
//
//	rflaunch [global flags] auth [mode-key]
//	rflaunch [global flags] products [mode-key]
//	rflaunch [global flags] users [mode-key]
//	rflaunch list [domain...]
//
// Without a mode key the suite menu is shown. Reports land in
// results/api/<domain>_api/<YYYYMMDD_HHMMSS>/.
//
// Exit status: 0 success, 1 failure, 2 usage error, 130 interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dkoosis/rflaunch/internal/config"
	"github.com/dkoosis/rflaunch/internal/exitcodes"
	"github.com/dkoosis/rflaunch/internal/launcher"
	"github.com/dkoosis/rflaunch/internal/logging"
	"github.com/dkoosis/rflaunch/internal/menu"
	"github.com/dkoosis/rflaunch/internal/process"
	"github.com/dkoosis/rflaunch/internal/version"
	"github.com/dkoosis/rflaunch/pkg/render"
	"github.com/dkoosis/rflaunch/pkg/suite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// usageError marks command-line mistakes (exit 2).
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

// run executes the CLI and returns the exit code. It is the only place errors
// become exit statuses.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := newApp(stdin, stdout, stderr)
	err := app.RunContext(ctx, args)

	code := exitCodeFor(ctx, err)
	if code == exitcodes.Failure && !reported(err) {
		fmt.Fprintf(stderr, "rflaunch: %v\n", err)
	}
	return code
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	app := &cli.App{
		Name:            "rflaunch",
		Usage:           "run the Robot Framework API suites into timestamped result directories",
		Version:         version.String(),
		Reader:          stdin,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a config file (default: ./" + config.FileName + ")"},
			&cli.StringFlag{Name: "results-dir", Usage: "root directory for timestamped results (default: " + config.DefaultResultsDir + ")"},
			&cli.StringFlag{Name: "runner", Usage: `runner command prefix (default: "python3 -m robot")`},
			&cli.StringFlag{Name: "theme", Usage: "output theme: default, orca, mono"},
			&cli.StringFlag{Name: "log-format", Usage: "diagnostic log format: text, json"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
			&cli.BoolFlag{Name: "ci", Usage: "plain output and line prompts for CI logs"},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging on stderr"},
			&cli.BoolFlag{Name: "dry-run", Usage: "print the runner command without creating directories or running it"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				return usageError{fmt.Errorf("unknown command %q", c.Args().First())}
			}
			_ = cli.ShowAppHelp(c)
			return usageError{errors.New("no command given")}
		},
		OnUsageError: onUsageError,
		// Exit codes are decided in run, never inside the cli package.
		ExitErrHandler: func(*cli.Context, error) {},
	}

	for _, c := range suite.All() {
		app.Commands = append(app.Commands, domainCommand(c, stdin, stdout, stderr))
	}
	app.Commands = append(app.Commands, listCommand(stdout))
	return app
}

func domainCommand(catalog *suite.Catalog, stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:         catalog.Domain,
		Usage:        "run " + catalog.Subtitle,
		ArgsUsage:    "[mode-key " + catalog.ValidRange() + "]",
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.NArg() > 1 {
				return usageError{fmt.Errorf("expected at most one mode key, got %d arguments", c.NArg())}
			}
			cfg, logger := setup(c, stderr)
			logger = logger.With("domain", catalog.Domain)

			interactive := !cfg.CI && render.IsTTYReader(stdin) && render.IsTTY(stdout)
			executor := process.New(logger)
			executor.Stdout = stdout
			executor.Stderr = stderr
			executor.KillGrace = cfg.KillGrace

			l := &launcher.Launcher{
				Prompter:    menu.New(stdin, stdout, interactive),
				Executor:    executor,
				Printer:     render.NewPrinter(stdout, render.ThemeByName(cfg.Theme), !cfg.NoColor),
				Logger:      logger,
				Runner:      cfg.Runner,
				ResultsRoot: cfg.ResultsDir,
				DryRun:      c.Bool("dry-run"),
			}
			_, err := l.Launch(c.Context, catalog, c.Args().First())
			return err
		},
	}
}

func listCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:         "list",
		Usage:        "show the suites each domain offers",
		ArgsUsage:    "[domain...]",
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			cfg, _ := setup(c, c.App.ErrWriter)

			catalogs := suite.All()
			if c.NArg() > 0 {
				catalogs = nil
				for _, name := range c.Args().Slice() {
					cat, ok := suite.ByDomain(name)
					if !ok {
						return usageError{fmt.Errorf("unknown domain %q", name)}
					}
					catalogs = append(catalogs, cat)
				}
			}
			for _, cat := range catalogs {
				render.CatalogTable(stdout, cat, !cfg.NoColor)
			}
			return nil
		},
	}
}

// onUsageError is installed on the app and on every subcommand; cli does not
// inherit it.
func onUsageError(c *cli.Context, err error, _ bool) error {
	fmt.Fprintf(c.App.ErrWriter, "Incorrect Usage: %v\n", err)
	return usageError{err}
}

// setup loads configuration and builds the diagnostic logger.
func setup(c *cli.Context, stderr io.Writer) (*config.ResolvedConfig, *slog.Logger) {
	var (
		appCfg *config.AppConfig
		path   string
		err    error
	)
	if path = c.String("config"); path != "" {
		appCfg, err = config.LoadFile(path)
	} else {
		appCfg, path, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v. Using defaults.\n", err)
	}

	cfg := config.Resolve(appCfg, config.CliFlags{
		ResultsDir: c.String("results-dir"),
		Runner:     c.String("runner"),
		Theme:      c.String("theme"),
		LogFormat:  c.String("log-format"),
		NoColor:    c.Bool("no-color"),
		CI:         c.Bool("ci"),
		Debug:      c.Bool("debug"),
		NoColorSet: c.IsSet("no-color"),
		CISet:      c.IsSet("ci"),
		DebugSet:   c.IsSet("debug"),
	}, os.Getenv)

	logger, runID := logging.New(logging.Config{Output: stderr, Debug: cfg.Debug, Format: cfg.LogFormat})
	logger.Debug("configuration resolved",
		"config_file", path,
		"results_dir", cfg.ResultsDir, "results_dir_source", cfg.ResultsDirSource,
		"runner", cfg.Runner, "runner_source", cfg.RunnerSource,
		"theme", cfg.Theme, "ci", cfg.CI, "run_id", runID)
	return cfg, logger
}

func exitCodeFor(ctx context.Context, err error) int {
	var usage usageError
	switch {
	case err == nil:
		return exitcodes.Success
	case errors.As(err, &usage):
		return exitcodes.Usage
	case errors.Is(err, launcher.ErrAborted):
		return exitcodes.Success
	case errors.Is(err, launcher.ErrInterrupted), errors.Is(err, context.Canceled), ctx.Err() != nil:
		return exitcodes.Interrupted
	default:
		return exitcodes.Failure
	}
}

// reported says whether the launcher already told the user about err.
func reported(err error) bool {
	return errors.Is(err, launcher.ErrInvalidSelection) ||
		errors.Is(err, launcher.ErrTestsFailed) ||
		errors.Is(err, launcher.ErrLaunch)
}
