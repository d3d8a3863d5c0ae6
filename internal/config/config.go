// Package config loads the optional YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/webchat-preview/internal/pathfilter"
	"github.com/taigrr/webchat-preview/internal/plans"
	"github.com/taigrr/webchat-preview/internal/types"
)

// Config holds every setting that is not a positional argument.
type Config struct {
	Mode          types.Mode              `yaml:"mode"`
	AppPath       string                  `yaml:"app_path"`
	VitePath      string                  `yaml:"vite_path"`
	CSSPath       string                  `yaml:"css_path"`
	Banner        bool                    `yaml:"banner"`
	RepoURL       string                  `yaml:"repo_url"`
	LocalBuildURL string                  `yaml:"local_build_url"`
	Report        string                  `yaml:"report"`
	PathFilter    *types.PathFilterConfig `yaml:"path_filter"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Mode:          types.ModeStrict,
		AppPath:       plans.DefaultAppPath,
		VitePath:      plans.DefaultVitePath,
		CSSPath:       plans.DefaultCSSPath,
		LocalBuildURL: plans.DefaultLocalBuildURL,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the mode and that every target path is relative,
// patchable and distinct from the others.
func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("invalid mode %q: want %q or %q", c.Mode, types.ModeStrict, types.ModeBestEffort)
	}

	pf := pathfilter.New(c.PathFilter)
	seen := make(map[string]string, 3)
	for _, target := range []struct{ key, path string }{
		{"app_path", c.AppPath},
		{"vite_path", c.VitePath},
		{"css_path", c.CSSPath},
	} {
		key, path := target.key, target.path
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
		if strings.HasPrefix(path, "/") || strings.HasPrefix(path, "..") {
			return fmt.Errorf("%s must be relative to the target directory: %s", key, path)
		}
		if !pf.IsAllowed(path) {
			return fmt.Errorf("%s is not a patchable file: %s", key, path)
		}
		clean := filepath.Clean(path)
		if other, ok := seen[clean]; ok {
			return fmt.Errorf("%s and %s name the same file: %s", other, key, clean)
		}
		seen[clean] = key
	}
	return nil
}

// Settings converts the configuration into plan settings.
func (c Config) Settings() plans.Settings {
	return plans.Settings{
		AppPath:       c.AppPath,
		VitePath:      c.VitePath,
		CSSPath:       c.CSSPath,
		RepoURL:       c.RepoURL,
		LocalBuildURL: c.LocalBuildURL,
		Banner:        c.Banner,
	}
}
