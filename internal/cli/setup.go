package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/kindling/internal/config"
	"github.com/roach88/kindling/internal/engine"
	"github.com/roach88/kindling/internal/store"
)

// session bundles everything a command needs: the loaded config, a hydrated
// engine, and the formatter for the resolved output format.
type session struct {
	cfg    config.Config
	engine *engine.Engine
	store  *store.Store
	out    *OutputFormatter
}

// Close releases the store.
func (s *session) Close() error {
	return s.store.Close()
}

// openSession loads config, opens the store, and hydrates the engine.
// Flag overrides (--db, --format) win over config values.
func openSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	cfgPath := opts.Config
	if cfgPath == "" {
		cfgPath = defaultConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	dbPath := cfg.DBPath
	if opts.Database != "" {
		dbPath = opts.Database
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to create database directory", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	eng := engine.New(st, engine.WithMode(cfg.EngineMode()))
	if err := eng.Load(context.Background()); err != nil {
		st.Close()
		return nil, WrapExitError(ExitCommandError, "failed to load engine state", err)
	}

	format := cfg.Format
	if opts.Format != "" {
		format = opts.Format
	}

	return &session{
		cfg:    cfg,
		engine: eng,
		store:  st,
		out: &OutputFormatter{
			Format:  format,
			Writer:  cmd.OutOrStdout(),
			Verbose: opts.Verbose,
		},
	}, nil
}

// defaultConfigPath returns ~/.kindling/config.yaml.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".kindling", "config.yaml")
}

// engineFailure maps an engine refusal onto the CLI error surface: refusals
// exit 1 with the engine's error code, everything else exits 2.
func engineFailure(out *OutputFormatter, err error) error {
	var ee *engine.EngineError
	if errors.As(err, &ee) {
		_ = out.Error(string(ee.Code), ee.Message, ee.ArticleID)
		code := ExitFailure
		if ee.Code == engine.ErrCodeStorageFailure {
			code = ExitCommandError
		}
		return NewExitError(code, ee.Message)
	}
	return WrapExitError(ExitCommandError, "operation failed", err)
}
