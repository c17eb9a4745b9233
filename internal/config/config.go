// Package config holds the build configuration and the build mode selected at
// process start. The mode is constructed once at the CLI boundary and passed
// by value into every component that needs it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/squidCatx/big-react-wasm/internal/errors"
)

// BuildMode selects between the production artifact layout and the
// test-oriented (node-loadable) layout.
type BuildMode string

const (
	ModeProduction BuildMode = "production"
	ModeTest       BuildMode = "test"
)

// IsTest reports whether the test layout and linkage conventions apply.
func (m BuildMode) IsTest() bool { return m == ModeTest }

func (m BuildMode) String() string { return string(m) }

// ModeFor returns the build mode selected by the test flag.
func ModeFor(test bool) BuildMode {
	if test {
		return ModeTest
	}
	return ModeProduction
}

// Config represents the application configuration
type Config struct {
	// OutputRoot is the directory receiving one subdirectory per built package.
	OutputRoot string `yaml:"output_root"`
	// PackagesDir is the directory holding the source packages.
	PackagesDir string `yaml:"packages_dir"`
	// WasmPackBin is the external compiler binary to invoke.
	WasmPackBin string `yaml:"wasm_pack_bin"`
	// WriteReport controls whether a build report is persisted after a run.
	WriteReport bool `yaml:"write_report"`
}

// Default returns the built-in configuration used when no config file exists.
func Default() *Config {
	return &Config{
		OutputRoot:  "dist",
		PackagesDir: "packages",
		WasmPackBin: "wasm-pack",
		WriteReport: true,
	}
}

// Load loads configuration from the specified file, falling back to defaults
// when the file does not exist. Environment variables override file values.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	cfg := Default()
	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, errors.ReadFailed(configPath, err)
		}
		// Expand environment variables in the YAML content
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, errors.Wrap(err, errors.CategoryConfig, errors.SeverityFatal, "failed to parse config file").
				WithContext("path", configPath)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for missing required values.
func (c *Config) Validate() error {
	if c.OutputRoot == "" {
		return errors.ConfigInvalid("output_root", "must not be empty")
	}
	if c.PackagesDir == "" {
		return errors.ConfigInvalid("packages_dir", "must not be empty")
	}
	if c.WasmPackBin == "" {
		return errors.ConfigInvalid("wasm_pack_bin", "must not be empty")
	}
	return nil
}

// PackageSourceDir returns the source directory for a named package.
func (c *Config) PackageSourceDir(name string) string {
	return filepath.Join(c.PackagesDir, name)
}

// PackageOutputDir returns the output directory for a named package.
// wasm-pack resolves relative out-dirs against the crate directory, so the
// path is made absolute before being handed to the compiler.
func (c *Config) PackageOutputDir(name string) string {
	p := filepath.Join(c.OutputRoot, name)
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

func (c *Config) String() string {
	return fmt.Sprintf("output=%s packages=%s compiler=%s", c.OutputRoot, c.PackagesDir, c.WasmPackBin)
}
