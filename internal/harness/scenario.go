package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario is one scripted engine session.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Today is the date (YYYY-MM-DD) the final streak is computed for.
	Today string `yaml:"today"`

	Steps []Step `yaml:"steps"`
}

// Step is one engine operation. Every step carries its own timestamp; the
// harness never consults the wall clock.
type Step struct {
	// Op is one of: add, read, unread, delay, remove, sweep, reset.
	Op string `yaml:"op"`

	Article string   `yaml:"article"`
	Title   string   `yaml:"title"`
	URL     string   `yaml:"url"`
	Tags    []string `yaml:"tags"`

	// Day is the routine day (YYYY-MM-DD) for read and delay steps.
	Day string `yaml:"day"`

	// OriginalDay overrides the original due day on a read step. Usually
	// omitted; a promoted backlog entry supplies it.
	OriginalDay string `yaml:"original_day"`

	// Now is the operation timestamp (RFC 3339).
	Now string `yaml:"now"`

	// ExpectError names the engine error code this step must be refused
	// with (e.g. BACKLOG_FULL). Empty means the step must succeed.
	ExpectError string `yaml:"expect_error"`
}

// LoadScenario parses one scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("scenario %s: missing name", path)
	}
	if s.Today == "" {
		return nil, fmt.Errorf("scenario %s: missing today", path)
	}
	return &s, nil
}

// LoadScenarioDir loads every *.yaml scenario in dir, sorted by filename.
func LoadScenarioDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scenario dir %s: %w", dir, err)
	}

	var scenarios []*Scenario
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		s, err := LoadScenario(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}
