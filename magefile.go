//go:build mage

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/rflaunch"
	binPath    = "bin/rflaunch"
)

// Default target - build the binary
var Default = Build

// Build builds the rflaunch binary with version metadata.
func Build() error {
	date := time.Now().UTC().Format(time.RFC3339)
	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		modulePath, gitOutput("dev", "describe", "--tags", "--always", "--dirty", "--match=v*"),
		gitOutput("unknown", "rev-parse", "--short", "HEAD"), date)

	fmt.Println("Building rflaunch...")
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/rflaunch"); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	fmt.Printf("✅ Built: %s\n", binPath)
	return nil
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// QA runs formatting, vet, lint and tests.
func QA() error {
	mg.Deps(Fmt)
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	if err := sh.RunV("golangci-lint", "run", "--timeout=5m", "./..."); err != nil {
		if sh.CmdRan(err) {
			return fmt.Errorf("golangci-lint failed: %w", err)
		}
		fmt.Println("⚠️  golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
	}
	mg.Deps(Test)
	return nil
}

// Fmt fails when any Go source needs gofmt.
func Fmt() error {
	out, err := sh.Output("gofmt", "-l", "cmd", "internal", "pkg", "magefile.go")
	if err != nil {
		return fmt.Errorf("gofmt failed: %w", err)
	}
	if files := strings.TrimSpace(out); files != "" {
		return fmt.Errorf("files need gofmt:\n%s", files)
	}
	return nil
}

// Suite runs the Robot Framework API suites through rflaunch.
type Suite mg.Namespace

// Auth runs the auth suites. MODE selects the entry (menu when unset).
func (Suite) Auth() error { return launch("auth") }

// Products runs the products suites. MODE selects the entry (menu when unset).
func (Suite) Products() error { return launch("products") }

// Users runs the users suites. MODE selects the entry (menu when unset).
func (Suite) Users() error { return launch("users") }

func launch(domain string) error {
	mg.Deps(Build)
	args := []string{domain}
	if mode := os.Getenv("MODE"); mode != "" {
		args = append(args, mode)
	}
	return sh.RunV("./"+binPath, args...)
}

func gitOutput(fallback string, args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil || strings.TrimSpace(out) == "" {
		return fallback
	}
	return strings.TrimSpace(out)
}
