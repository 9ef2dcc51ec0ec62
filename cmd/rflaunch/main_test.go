package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate keeps the caller's environment and config files out of a test run.
func isolate(t *testing.T) (configPath, resultsDir string) {
	t.Helper()
	for _, k := range []string{
		"RFLAUNCH_RESULTS_DIR", "RFLAUNCH_RUNNER", "RFLAUNCH_THEME", "RFLAUNCH_LOG_FORMAT",
		"RFLAUNCH_NO_COLOR", "RFLAUNCH_CI", "RFLAUNCH_DEBUG", "NO_COLOR", "CI",
	} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	return filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "results")
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"rflaunch"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_DryRunPrintsCommandWithoutCreatingDirectory(t *testing.T) {
	cfg, results := isolate(t)

	code, out, errOut := runCLI(t, "", "--config", cfg, "--results-dir", results, "--dry-run", "auth", "9")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d; stderr:\n%s", code, errOut)
	}
	for _, want := range []string{
		"Executing: Connectivity Test Only",
		"python3 -m robot --outputdir",
		`--test "Authentication Service Connectivity Test" tests/api/auth/auth_test_suite.robot`,
		"(not created)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	if _, err := os.Stat(results); !os.IsNotExist(err) {
		t.Errorf("dry run created %s (stat err %v)", results, err)
	}
}

func TestRun_InvalidModeExitsOneAndCreatesNothing(t *testing.T) {
	cfg, results := isolate(t)

	code, out, errOut := runCLI(t, "", "--config", cfg, "--results-dir", results, "users", "99")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out, "Invalid mode: 99") || !strings.Contains(out, "Valid modes: 1-14") {
		t.Errorf("missing invalid-mode report:\n%s", out)
	}
	if strings.Contains(errOut, "rflaunch:") {
		t.Errorf("invalid mode reported twice:\n%s", errOut)
	}
	if _, err := os.Stat(results); !os.IsNotExist(err) {
		t.Errorf("invalid mode created %s", results)
	}
}

func TestRun_ProductsExitKeyExitsZero(t *testing.T) {
	cfg, results := isolate(t)

	code, out, _ := runCLI(t, "", "--config", cfg, "--results-dir", results, "products", "0")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "Exiting...") {
		t.Errorf("missing exit message:\n%s", out)
	}
}

func TestRun_ProductsEmptyCustomTagExitsZero(t *testing.T) {
	cfg, results := isolate(t)

	code, out, _ := runCLI(t, "\n", "--config", cfg, "--results-dir", results, "products", "19")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "No tag provided. Exiting...") {
		t.Errorf("missing empty-tag message:\n%s", out)
	}
	if _, err := os.Stat(results); !os.IsNotExist(err) {
		t.Errorf("aborted run created %s", results)
	}
}

func TestRun_ProductsMenuSelectionFromStdin(t *testing.T) {
	cfg, results := isolate(t)

	code, out, _ := runCLI(t, "42\n7\n", "--config", cfg, "--results-dir", results, "--dry-run", "products")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d:\n%s", code, out)
	}
	if !strings.Contains(out, "Invalid option. Please select 0-20.") {
		t.Errorf("expected a re-prompt:\n%s", out)
	}
	if !strings.Contains(out, "tests/api/products/products_add_tests.robot") {
		t.Errorf("expected the add-product selection:\n%s", out)
	}
}

func TestRun_ListShowsEveryDomain(t *testing.T) {
	cfg, _ := isolate(t)

	code, out, _ := runCLI(t, "", "--config", cfg, "list")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	for _, want := range []string{"Auth suites (1-10)", "Products suites (0-20)", "Users suites (1-14)"} {
		if !strings.Contains(strings.ToLower(out), strings.ToLower(want)) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}
}

func TestRun_ListUnknownDomainExitsTwo(t *testing.T) {
	cfg, _ := isolate(t)

	if code, _, _ := runCLI(t, "", "--config", cfg, "list", "orders"); code != 2 {
		t.Errorf("expected exit 2, got %d", code)
	}
}

func TestRun_UsageErrorsExitTwo(t *testing.T) {
	cfg, _ := isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no command", []string{"--config", cfg}},
		{"unknown command", []string{"--config", cfg, "orders"}},
		{"extra mode keys", []string{"--config", cfg, "auth", "1", "2"}},
		{"unknown flag", []string{"--config", cfg, "--bogus", "auth"}},
		{"unknown subcommand flag", []string{"--config", cfg, "auth", "--bogus"}},
		{"global flag after subcommand", []string{"--config", cfg, "auth", "--dry-run", "1"}},
		{"unknown list flag", []string{"--config", cfg, "list", "--bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, "", tt.args...)
			if code != 2 {
				t.Errorf("expected exit 2, got %d", code)
			}
			if strings.Contains(errOut, "rflaunch:") {
				t.Errorf("usage error reported twice:\n%s", errOut)
			}
		})
	}
}

func TestRun_VersionExitsZero(t *testing.T) {
	code, out, _ := runCLI(t, "", "--version")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "rflaunch version") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestRun_CancelledContextExits130(t *testing.T) {
	cfg, results := isolate(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"rflaunch", "--config", cfg, "--results-dir", results, "auth", "1"},
		strings.NewReader("1\n"), &stdout, &stderr)
	if code != 130 {
		t.Errorf("expected exit 130, got %d\n%s", code, stdout.String())
	}
}
