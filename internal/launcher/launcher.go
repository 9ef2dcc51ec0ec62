// Package launcher runs one catalog selection end to end: pick a
// configuration, stamp a results directory, build the runner command,
// execute it and report the outcome.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dkoosis/rflaunch/internal/menu"
	"github.com/dkoosis/rflaunch/internal/process"
	"github.com/dkoosis/rflaunch/pkg/render"
	"github.com/dkoosis/rflaunch/pkg/resultdir"
	"github.com/dkoosis/rflaunch/pkg/robot"
	"github.com/dkoosis/rflaunch/pkg/suite"
)

var (
	// ErrInvalidSelection means the key matched nothing in the catalog.
	// Nothing was created or started.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrAborted means the user chose to stop: the exit key, an empty
	// free-text answer, or quitting the menu.
	ErrAborted = errors.New("run aborted")
	// ErrTestsFailed means the runner ran and exited non-zero.
	ErrTestsFailed = errors.New("tests failed")
	// ErrLaunch means the runner could not be started.
	ErrLaunch = errors.New("runner could not be started")
	// ErrInterrupted means SIGINT/SIGTERM arrived during the menu or the run.
	ErrInterrupted = process.ErrInterrupted
)

// ReportFiles are written by the runner into the output directory.
var ReportFiles = []string{"log.html", "report.html", "output.xml"}

// ResultsDomain is the directory between the results root and the
// per-catalog sub-domain.
const ResultsDomain = "api"

// InvalidSelectionError carries the rejected key and what would have been accepted.
type InvalidSelectionError struct {
	Key        string
	ValidRange string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid mode %q (valid modes: %s)", e.Key, e.ValidRange)
}

func (e *InvalidSelectionError) Unwrap() error { return ErrInvalidSelection }

// Executor runs a command line to completion.
type Executor interface {
	Run(ctx context.Context, argv []string) process.Result
}

// Outcome is what a run reports back to the caller.
type Outcome struct {
	Description string
	Succeeded   bool
	OutputDir   string
	Timestamp   string
	ExitCode    int
	Duration    time.Duration
	Command     robot.Command
}

// Launcher is the test-run invoker shared by every catalog.
type Launcher struct {
	Prompter    menu.Prompter
	Executor    Executor
	Printer     *render.Printer
	Logger      *slog.Logger
	Runner      []string         // runner prefix; robot.DefaultRunner when empty
	ResultsRoot string           // e.g. "results"
	Clock       func() time.Time // defaults to time.Now
	DryRun      bool
}

// Launch runs catalog c. When key is empty the prompter is asked for one.
//
// The returned error is nil only when the runner exited 0 (or, for dry runs,
// when the command was printed). Callers classify it with errors.Is against
// the package sentinels.
func (l *Launcher) Launch(ctx context.Context, c *suite.Catalog, key string) (Outcome, error) {
	log := l.logger().With("domain", c.Domain)
	p := l.Printer

	p.Banner(c.Title, c.Subtitle)

	cfg, err := l.Select(ctx, c, key)
	if err != nil {
		log.Debug("selection ended", "error", err)
		return Outcome{}, err
	}

	p.Line("")
	p.Field("Executing", cfg.Description)
	p.Field("Test path", cfg.TestPath)
	if cfg.TestName != "" {
		p.Field("Test name", cfg.TestName)
	}
	if len(cfg.IncludeTags) > 0 {
		p.Field("Include tags", strings.Join(cfg.IncludeTags, ", "))
	}
	if len(cfg.ExcludeTags) > 0 {
		p.Field("Exclude tags", strings.Join(cfg.ExcludeTags, ", "))
	}

	resolver := resultdir.Resolver{
		Base:      l.ResultsRoot,
		Domain:    ResultsDomain,
		SubDomain: c.ResultSubDomain,
		Clock:     l.Clock,
	}
	builder := robot.Builder{Runner: l.Runner, DefaultPath: c.DefaultPath}

	if l.DryRun {
		loc := resolver.Locate()
		cmd := builder.Build(cfg, loc.Path())
		p.Field("Output directory", loc.Path()+" (not created)")
		p.Field("Command", cmd.String())
		return Outcome{Description: cfg.Description, Succeeded: true, OutputDir: loc.Path(), Timestamp: loc.Timestamp, Command: cmd}, nil
	}

	loc, err := resolver.Resolve()
	if err != nil {
		log.Error("results directory", "error", err)
		p.Failure(err.Error())
		return Outcome{Description: cfg.Description}, err
	}
	cmd := builder.Build(cfg, loc.Path())
	outcome := Outcome{
		Description: cfg.Description,
		OutputDir:   loc.Path(),
		Timestamp:   loc.Timestamp,
		Command:     cmd,
	}

	p.Field("Output directory", loc.Path())
	p.Field("Executing command", cmd.String())
	if wd, err := os.Getwd(); err == nil {
		p.Field("Working directory", wd)
	}
	p.Rule()
	log.Info("starting runner", "command", cmd.String(), "output_dir", loc.Path())

	res := l.Executor.Run(ctx, cmd.Argv)
	outcome.ExitCode = res.ExitCode
	outcome.Duration = res.Duration
	outcome.Succeeded = res.Succeeded()

	p.Rule()
	switch {
	case errors.Is(res.Err, process.ErrInterrupted) || ctx.Err() != nil:
		p.Warn("Execution interrupted by user")
		err = fmt.Errorf("%w after %s", ErrInterrupted, res.Duration.Round(time.Millisecond))
	case !res.Started:
		log.Error("error executing tests", "error", res.Err, "exit_code", res.ExitCode)
		p.Failure(fmt.Sprintf("Error executing tests: %v", res.Err))
		err = fmt.Errorf("%w: %w", ErrLaunch, res.Err)
	case !res.Succeeded():
		p.Failure("Tests completed with errors!")
		err = fmt.Errorf("%w: runner exited with code %d", ErrTestsFailed, res.ExitCode)
	default:
		p.Success("Tests completed successfully!")
	}
	p.Results(loc.Path(), ReportFiles)
	p.Rule()

	log.Info("runner finished", "succeeded", outcome.Succeeded, "exit_code", res.ExitCode, "duration", res.Duration)
	return outcome, err
}

// Select turns key (or an interactive choice when key is empty) into a run
// configuration. Free-text entries are prompted for even when key came from
// the command line.
func (l *Launcher) Select(ctx context.Context, c *suite.Catalog, key string) (suite.RunConfiguration, error) {
	p := l.Printer
	if key == "" {
		chosen, err := l.Prompter.Choose(ctx, c)
		if err != nil {
			return suite.RunConfiguration{}, l.promptError(err)
		}
		key = chosen
	}

	switch {
	case c.ExitKey != "" && key == c.ExitKey:
		p.Line("Exiting...")
		return suite.RunConfiguration{}, ErrAborted
	case c.CustomTagKey != "" && key == c.CustomTagKey:
		tag, err := l.Prompter.Ask(ctx, "Enter custom tag to filter by")
		if err != nil {
			return suite.RunConfiguration{}, l.promptError(err)
		}
		if tag == "" {
			p.Line("No tag provided. Exiting...")
			return suite.RunConfiguration{}, ErrAborted
		}
		return c.CustomTag(tag), nil
	case c.TestNameKey != "" && key == c.TestNameKey:
		name, err := l.Prompter.Ask(ctx, "Enter specific test name")
		if err != nil {
			return suite.RunConfiguration{}, l.promptError(err)
		}
		if name == "" {
			p.Line("No test name provided. Exiting...")
			return suite.RunConfiguration{}, ErrAborted
		}
		return c.SpecificTest(name), nil
	}

	entry, ok := c.Lookup(key)
	if !ok {
		p.Failure(fmt.Sprintf("Invalid mode: %s", key))
		p.Line("Valid modes: %s", c.ValidRange())
		return suite.RunConfiguration{}, &InvalidSelectionError{Key: key, ValidRange: c.ValidRange()}
	}
	return entry.Config, nil
}

// promptError classifies prompter failures.
func (l *Launcher) promptError(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, menu.ErrCancelled):
		l.Printer.Warn("Execution interrupted by user")
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	case errors.Is(err, menu.ErrQuit):
		return ErrAborted
	case errors.Is(err, io.EOF):
		l.Printer.Failure("No selection made")
		return fmt.Errorf("%w: no input", ErrInvalidSelection)
	default:
		return fmt.Errorf("read selection: %w", err)
	}
}

func (l *Launcher) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}
