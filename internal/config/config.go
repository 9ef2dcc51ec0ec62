package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/rflaunch/pkg/robot"
)

// FileName is the config file looked up locally and under the XDG config dir.
const FileName = ".rflaunch.yaml"

// Constants for default values.
const (
	DefaultResultsDir = "results"
	DefaultTheme      = "default"
	DefaultLogFormat  = "text"
	DefaultKillGrace  = 2 * time.Second
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ResultsDir string
	Runner     string
	Theme      string
	LogFormat  string
	NoColor    bool
	CI         bool
	Debug      bool

	// Flags to track if they were explicitly set by the user
	NoColorSet bool
	CISet      bool
	DebugSet   bool
}

// AppConfig represents the contents of .rflaunch.yaml.
type AppConfig struct {
	ResultsDir string        `yaml:"results_dir"`
	Runner     []string      `yaml:"runner"`
	Theme      string        `yaml:"theme"`
	NoColor    bool          `yaml:"no_color"`
	CI         bool          `yaml:"ci"`
	Debug      bool          `yaml:"debug"`
	LogFormat  string        `yaml:"log_format"`
	KillGrace  time.Duration `yaml:"kill_grace"`
}

// Defaults returns the hardcoded configuration.
func Defaults() *AppConfig {
	return &AppConfig{
		ResultsDir: DefaultResultsDir,
		Runner:     append([]string(nil), robot.DefaultRunner...),
		Theme:      DefaultTheme,
		LogFormat:  DefaultLogFormat,
		KillGrace:  DefaultKillGrace,
	}
}

// LoadConfig loads .rflaunch.yaml on top of the defaults. A missing file is
// not an error. A malformed file returns the defaults together with the error
// so the caller can warn and carry on.
func LoadConfig() (*AppConfig, string, error) {
	path := getConfigPath()
	if path == "" {
		return Defaults(), "", nil
	}
	cfg, err := LoadFile(path)
	return cfg, path, err
}

// LoadFile reads a specific config file.
func LoadFile(path string) (*AppConfig, error) {
	appCfg := Defaults()

	// #nosec G304 -- path is the local or XDG config location
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return appCfg, nil
		}
		return appCfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return appCfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Merge YAML settings onto the defaults
	if fileCfg.ResultsDir != "" {
		appCfg.ResultsDir = fileCfg.ResultsDir
	}
	if len(fileCfg.Runner) > 0 {
		appCfg.Runner = fileCfg.Runner
	}
	if fileCfg.Theme != "" {
		appCfg.Theme = fileCfg.Theme
	}
	if fileCfg.LogFormat != "" {
		appCfg.LogFormat = fileCfg.LogFormat
	}
	if fileCfg.KillGrace > 0 {
		appCfg.KillGrace = fileCfg.KillGrace
	}
	appCfg.NoColor = fileCfg.NoColor
	appCfg.CI = fileCfg.CI
	appCfg.Debug = fileCfg.Debug
	return appCfg, nil
}

// getConfigPath tries to find the config file.
// It checks the working directory first, then the XDG UserConfigDir.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// An empty or root config home is not usable for XDG path construction.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "rflaunch", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	ResultsDir string
	Runner     []string
	Theme      string
	LogFormat  string
	NoColor    bool
	CI         bool
	Debug      bool
	KillGrace  time.Duration

	// Resolution metadata (for debugging): "cli", "env", "file" or "default".
	ResultsDirSource string
	RunnerSource     string
}

// Resolve merges file config, environment and CLI flags. getenv is
// os.Getenv outside of tests.
func Resolve(appCfg *AppConfig, cli CliFlags, getenv func(string) string) *ResolvedConfig {
	if appCfg == nil {
		appCfg = Defaults()
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	defaults := Defaults()

	r := &ResolvedConfig{
		ResultsDir:       appCfg.ResultsDir,
		Runner:           appCfg.Runner,
		Theme:            appCfg.Theme,
		LogFormat:        appCfg.LogFormat,
		NoColor:          appCfg.NoColor,
		CI:               appCfg.CI,
		Debug:            appCfg.Debug,
		KillGrace:        appCfg.KillGrace,
		ResultsDirSource: sourceOf(appCfg.ResultsDir != defaults.ResultsDir),
		RunnerSource:     sourceOf(strings.Join(appCfg.Runner, " ") != strings.Join(defaults.Runner, " ")),
	}

	// Environment
	if v := getenv("RFLAUNCH_RESULTS_DIR"); v != "" {
		r.ResultsDir, r.ResultsDirSource = v, "env"
	}
	if v := strings.Fields(getenv("RFLAUNCH_RUNNER")); len(v) > 0 {
		r.Runner, r.RunnerSource = v, "env"
	}
	if v := getenv("RFLAUNCH_THEME"); v != "" {
		r.Theme = v
	}
	if v := getenv("RFLAUNCH_LOG_FORMAT"); v != "" {
		r.LogFormat = v
	}
	if v, ok := envBool(getenv, "RFLAUNCH_NO_COLOR"); ok {
		r.NoColor = v
	} else if getenv("NO_COLOR") != "" {
		// https://no-color.org: any non-empty value disables color
		r.NoColor = true
	}
	if v, ok := envBool(getenv, "RFLAUNCH_CI", "CI"); ok {
		r.CI = v
	}
	if getenv("RFLAUNCH_DEBUG") != "" {
		r.Debug = true
	}

	// CLI flags
	if cli.ResultsDir != "" {
		r.ResultsDir, r.ResultsDirSource = cli.ResultsDir, "cli"
	}
	if v := strings.Fields(cli.Runner); len(v) > 0 {
		r.Runner, r.RunnerSource = v, "cli"
	}
	if cli.Theme != "" {
		r.Theme = cli.Theme
	}
	if cli.LogFormat != "" {
		r.LogFormat = cli.LogFormat
	}
	if cli.NoColorSet {
		r.NoColor = cli.NoColor
	}
	if cli.CISet {
		r.CI = cli.CI
	}
	if cli.DebugSet {
		r.Debug = cli.Debug
	}

	if r.CI {
		r.NoColor = true
		r.Theme = "mono"
	}
	if r.KillGrace <= 0 {
		r.KillGrace = DefaultKillGrace
	}
	if len(r.Runner) == 0 {
		r.Runner = defaults.Runner
	}
	return r
}

// envBool returns the first parseable boolean among keys.
func envBool(getenv func(string) string, keys ...string) (bool, bool) {
	for _, k := range keys {
		if s := getenv(k); s != "" {
			if v, err := strconv.ParseBool(s); err == nil {
				return v, true
			}
		}
	}
	return false, false
}

func sourceOf(fromFile bool) string {
	if fromFile {
		return "file"
	}
	return "default"
}
