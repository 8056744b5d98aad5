// Package config loads the kindling configuration file.
//
// The file is YAML; its shape is validated against an embedded CUE schema
// so a typo in a mode or format name fails loudly at startup instead of
// silently falling back.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/kindling/internal/engine"
)

// configSchema constrains the decoded config. Defaults are applied in Go
// before validation, so every field is concrete here.
const configSchema = `
#Config: {
	db_path: string & !=""
	mode:    "production" | "development"
	format:  "text" | "json"
}
`

// Config holds the settings the CLI needs to construct an engine.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `yaml:"db_path" json:"db_path"`

	// Mode is "production" or "development". Development mode unlocks
	// mark-unread and reset.
	Mode string `yaml:"mode" json:"mode"`

	// Format is the default output format, "text" or "json".
	Format string `yaml:"format" json:"format"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DBPath: filepath.Join(home, ".kindling", "kindling.db"),
		Mode:   "production",
		Format: "text",
	}
}

// Load reads the config file at path, fills defaults for omitted fields,
// and validates the result. A missing file yields the defaults; a present
// but invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config against the CUE schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(configSchema).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	value := ctx.Encode(c)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return nil
}

// EngineMode maps the config mode string onto the engine's Mode.
// Validate guarantees the string is one of the two known values.
func (c Config) EngineMode() engine.Mode {
	if c.Mode == "development" {
		return engine.ModeDevelopment
	}
	return engine.ModeProduction
}
