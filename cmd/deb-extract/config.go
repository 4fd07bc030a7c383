package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/debforge/deb-extractor/deb"
)

// Config is a business object holding the tool's defaults, optionally
// loaded from a YAML file. Flags override anything set here.
type Config struct {
	// Output is the directory extraction lands in.
	Output string `yaml:"output"`
	// MaxDepth bounds recursive descent into nested archives. Nil
	// means unset; an explicit zero or negative value is passed
	// through unchanged and rejects all extraction, the same as the
	// -max-depth flag.
	MaxDepth *int `yaml:"max-depth"`
	// Verbose prints every extracted path.
	Verbose bool `yaml:"verbose"`
	// Keyring is a path to an armored PGP keyring for signature checks.
	Keyring string `yaml:"keyring"`
}

// loadConfig reads the YAML config at path. A missing file is not an
// error: the built-in defaults apply.
func loadConfig(path string) (Config, error) {
	cfg := Config{
		Output: deb.DefaultOutputDir,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Output == "" {
		cfg.Output = deb.DefaultOutputDir
	}
	return cfg, nil
}

// resolveMaxDepth picks the effective depth limit: a non-negative flag
// value wins, then an explicit config value, then the default.
func resolveMaxDepth(flagValue int, cfg Config) int {
	if flagValue >= 0 {
		return flagValue
	}
	if cfg.MaxDepth != nil {
		return *cfg.MaxDepth
	}
	return deb.DefaultMaxDepth
}
