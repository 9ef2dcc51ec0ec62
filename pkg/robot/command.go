// Package robot assembles Robot Framework command lines.
package robot

import (
	"strings"

	"github.com/dkoosis/rflaunch/pkg/suite"
)

// Runner flags understood by `python -m robot`.
const (
	FlagOutputDir = "--outputdir"
	FlagTest      = "--test"
	FlagInclude   = "--include"
	FlagExclude   = "--exclude"
)

// DefaultRunner is the runner prefix used when none is configured.
var DefaultRunner = []string{"python3", "-m", "robot"}

// Command is an assembled argument vector. Argv[0] is the executable.
type Command struct {
	Argv []string
}

// Name returns the executable.
func (c Command) Name() string {
	if len(c.Argv) == 0 {
		return ""
	}
	return c.Argv[0]
}

// Args returns everything after the executable.
func (c Command) Args() []string {
	if len(c.Argv) < 2 {
		return nil
	}
	return c.Argv[1:]
}

// String renders the command for display, quoting arguments with whitespace.
func (c Command) String() string {
	parts := make([]string, len(c.Argv))
	for i, a := range c.Argv {
		if a == "" || strings.ContainsAny(a, " \t\"") {
			parts[i] = `"` + strings.ReplaceAll(a, `"`, `\"`) + `"`
			continue
		}
		parts[i] = a
	}
	return strings.Join(parts, " ")
}

// Builder turns run configurations into runner invocations.
type Builder struct {
	Runner      []string // executable plus leading args, e.g. python3 -m robot
	DefaultPath string   // positional path when a configuration has none
}

// Build assembles the argument vector for cfg writing reports to outputDir.
// The test path is always the final element.
func (b Builder) Build(cfg suite.RunConfiguration, outputDir string) Command {
	runner := b.Runner
	if len(runner) == 0 {
		runner = DefaultRunner
	}

	argv := make([]string, 0, len(runner)+5+2*(len(cfg.IncludeTags)+len(cfg.ExcludeTags)))
	argv = append(argv, runner...)
	argv = append(argv, FlagOutputDir, outputDir)

	if cfg.TestName != "" {
		argv = append(argv, FlagTest, cfg.TestName)
	}
	for _, tag := range cfg.IncludeTags {
		argv = append(argv, FlagInclude, tag)
	}
	for _, tag := range cfg.ExcludeTags {
		argv = append(argv, FlagExclude, tag)
	}

	path := cfg.TestPath
	if path == "" {
		path = b.DefaultPath
	}
	argv = append(argv, path)

	return Command{Argv: argv}
}
