// Package config handles configuration loading and merging for rflaunch.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--results-dir, --runner, --theme, --no-color, --ci, --debug, --log-format)
//  2. Environment variables (RFLAUNCH_*, NO_COLOR, CI)
//  3. YAML config file (.rflaunch.yaml in the working directory or ~/.config/rflaunch/.rflaunch.yaml)
//  4. Hardcoded defaults
//
// # CI Mode Behavior
//
// When CI mode is enabled (via --ci flag, CI=true env var, or ci: true in YAML):
//   - Colors are disabled and the mono theme is used
//   - The interactive terminal picker is never started; prompts read plain lines
//
// # Environment Variables
//
//   - RFLAUNCH_RESULTS_DIR: root directory for run results
//   - RFLAUNCH_RUNNER: space-separated runner prefix, e.g. "python3 -m robot"
//   - RFLAUNCH_THEME: default, orca or mono
//   - RFLAUNCH_NO_COLOR or NO_COLOR: disable colors
//   - RFLAUNCH_CI or CI: set to "true" or "1" to enable CI mode
//   - RFLAUNCH_DEBUG: set to any non-empty value to enable debug logging
//   - RFLAUNCH_LOG_FORMAT: text or json
package config
