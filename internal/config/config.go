// Package config loads generator settings from a YAML file and the environment.
//
// Precedence, lowest first: defaults, typegen.yaml, TYPEGEN_* environment
// variables, command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"schema-typegen/internal/logging"
)

// DefaultFile is read when present and no other file is named.
const DefaultFile = "typegen.yaml"

// Config holds all generator settings.
type Config struct {
	// Src is the project source root holding api/ and components/.
	Src string `yaml:"src"`
	// Out is the output root for declarations.
	Out string `yaml:"out"`
	// ComponentsDir is the sub-directory of Out for components.
	ComponentsDir string `yaml:"componentsDir"`
	// Prefix is prepended to every type name.
	Prefix *string `yaml:"prefix"`
	// Repair runs malformed documents through jsonrepair before giving up.
	Repair bool `yaml:"repair"`
	// Check compares with Out instead of writing.
	Check bool `yaml:"check"`
	// Watch regenerates when schemas change.
	Watch bool `yaml:"watch"`
	// Debounce is the quiet period before a watch-triggered run.
	Debounce time.Duration `yaml:"debounce"`
	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string `yaml:"logLevel"`
}

// Default returns the default configuration.
func Default() Config {
	prefix := "T"

	return Config{
		Src:           "./src",
		Out:           "types",
		ComponentsDir: "components",
		Prefix:        &prefix,
		Debounce:      300 * time.Millisecond,
		LogLevel:      "INFO",
	}
}

// TypePrefix returns the configured prefix.
func (c *Config) TypePrefix() string {
	if c.Prefix == nil {
		return ""
	}

	return *c.Prefix
}

// LoadFile reads path on top of the defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Load reads path, or DefaultFile when path is empty. A missing DefaultFile
// yields the defaults; a missing named file is an error.
func Load(path string) (Config, error) {
	if path != "" {
		return LoadFile(path)
	}

	cfg, err := LoadFile(DefaultFile)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Parse parses YAML data on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays TYPEGEN_* variables. LOG_LEVEL is honored when
// TYPEGEN_LOG_LEVEL is unset.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("TYPEGEN_SRC", &c.Src)
	str("TYPEGEN_OUT", &c.Out)
	str("TYPEGEN_COMPONENTS_DIR", &c.ComponentsDir)
	str("LOG_LEVEL", &c.LogLevel)
	str("TYPEGEN_LOG_LEVEL", &c.LogLevel)

	if v, ok := lookup("TYPEGEN_PREFIX"); ok {
		c.Prefix = &v
	}

	for key, dst := range map[string]*bool{
		"TYPEGEN_REPAIR": &c.Repair,
		"TYPEGEN_CHECK":  &c.Check,
		"TYPEGEN_WATCH":  &c.Watch,
	} {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}

		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}

		*dst = b
	}

	if v, ok := lookup("TYPEGEN_DEBOUNCE"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TYPEGEN_DEBOUNCE: %w", err)
		}

		c.Debounce = d
	}

	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Src) == "" {
		errs = append(errs, errors.New("src must not be empty"))
	}

	if strings.TrimSpace(c.Out) == "" {
		errs = append(errs, errors.New("out must not be empty"))
	}

	if !isSubDir(c.ComponentsDir) {
		errs = append(errs, fmt.Errorf("componentsDir %q must be a relative sub-directory", c.ComponentsDir))
	}

	if c.Debounce < 0 {
		errs = append(errs, errors.New("debounce must not be negative"))
	}

	if c.Check && c.Watch {
		errs = append(errs, errors.New("check and watch are mutually exclusive"))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// isSubDir reports whether dir names a directory strictly below the output root.
func isSubDir(dir string) bool {
	if strings.TrimSpace(dir) == "" || filepath.IsAbs(dir) || strings.HasPrefix(dir, "/") {
		return false
	}

	clean := path.Clean(filepath.ToSlash(dir))

	return clean != "." && clean != ".." && !strings.HasPrefix(clean, "../")
}
