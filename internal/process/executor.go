// Package process runs the external test runner with inherited standard
// streams and reports how it exited.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// ErrInterrupted is returned when the context is cancelled while the child is
// running. The child has been signalled and reaped by the time it is returned.
var ErrInterrupted = errors.New("execution interrupted")

// Exit codes synthesized for launch failures, mirroring shell conventions.
const (
	ExitCommandNotFound = 127
	ExitLaunchFailure   = 1
)

// DefaultKillGrace is how long a signalled process group gets before SIGKILL.
const DefaultKillGrace = 2 * time.Second

// Result describes a finished (or never started) process.
type Result struct {
	ExitCode int
	Duration time.Duration
	Started  bool
	Err      error // nil when the process exited 0
}

// Succeeded reports whether the process ran and exited with status 0.
func (r Result) Succeeded() bool {
	return r.Started && r.ExitCode == 0 && r.Err == nil
}

// Executor spawns processes synchronously.
type Executor struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Dir       string
	Env       []string
	KillGrace time.Duration
	Logger    *slog.Logger
}

// New returns an executor wired to the current process's stdout and stderr.
// Stdin stays unset (the null device) so the runner never competes with the
// menu for input.
func New(logger *slog.Logger) *Executor {
	return &Executor{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		KillGrace: DefaultKillGrace,
		Logger:    logger,
	}
}

// Run starts argv and blocks until it exits. It never panics on launch
// failures: those come back as a Result with Started false and Err set.
//
// Error semantics:
//   - (Result{ExitCode: 0}, nil) on success
//   - a wrapped *exec.ExitError for a non-zero exit
//   - a launch error (exec.ErrNotFound and friends) when the process never started
//   - ErrInterrupted when ctx was cancelled before the process finished
func (e *Executor) Run(ctx context.Context, argv []string) Result {
	log := e.logger()
	if len(argv) == 0 {
		return Result{ExitCode: ExitLaunchFailure, Err: errors.New("empty command line")}
	}
	if err := ctx.Err(); err != nil {
		return Result{ExitCode: ExitLaunchFailure, Err: fmt.Errorf("%w: %w", ErrInterrupted, err)}
	}

	// exec.Command rather than CommandContext: cancellation is handled below so
	// the child gets SIGINT first instead of an immediate SIGKILL.
	cmd := exec.Command(argv[0], argv[1:]...) // #nosec G204 -- argv comes from the static catalog
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	cmd.Dir = e.Dir
	if e.Env != nil {
		cmd.Env = e.Env
	} else {
		cmd.Env = os.Environ()
	}
	setProcessGroup(cmd)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		code := exitCodeFor(err)
		log.Error("failed to start runner", "command", strings.Join(argv, " "), "error", err, "exit_code", code)
		return Result{ExitCode: code, Duration: time.Since(start), Err: fmt.Errorf("start %s: %w", argv[0], err)}
	}
	log.Debug("runner started", "pid", cmd.Process.Pid)

	waitErr := make(chan error, 1)
	go func() { waitErr <- cmd.Wait() }()

	var err error
	interrupted := false
	select {
	case err = <-waitErr:
	case <-ctx.Done():
		interrupted = true
		err = e.stop(cmd, waitErr)
	}

	res := Result{
		ExitCode: exitCodeFor(err),
		Duration: time.Since(start),
		Started:  true,
	}
	switch {
	case interrupted:
		res.Err = fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
		if res.ExitCode == 0 {
			res.ExitCode = ExitLaunchFailure
		}
	case err != nil:
		res.Err = err
	}
	log.Debug("runner finished", "exit_code", res.ExitCode, "duration", res.Duration, "interrupted", interrupted)
	return res
}

// stop forwards SIGINT to the child's process group and waits for it,
// escalating to SIGKILL after the grace period. It always reaps the child.
func (e *Executor) stop(cmd *exec.Cmd, waitErr <-chan error) error {
	log := e.logger()
	grace := e.KillGrace
	if grace <= 0 {
		grace = DefaultKillGrace
	}

	if err := interruptProcessGroup(cmd); err != nil {
		log.Debug("forwarding interrupt failed", "error", err)
	}
	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case err := <-waitErr:
		return err
	case <-timer.C:
		log.Warn("runner ignored interrupt, killing process group", "grace", grace)
		if err := killProcessGroup(cmd); err != nil {
			log.Debug("kill failed", "error", err)
		}
		return <-waitErr
	}
}

func (e *Executor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// exitCodeFor maps a Start/Wait error onto a process exit status.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code, ok := exitCodeFromError(exitErr); ok {
			return code
		}
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
		return ExitLaunchFailure
	}
	if IsCommandNotFound(err) {
		return ExitCommandNotFound
	}
	return ExitLaunchFailure
}

// IsCommandNotFound reports whether err means the executable could not be found.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return true
	}
	msg := err.Error()
	if strings.Contains(msg, "executable file not found") {
		return true
	}
	return runtime.GOOS != "windows" && strings.Contains(msg, "no such file or directory")
}
