package harness

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/kindling/internal/engine"
	"github.com/roach88/kindling/internal/routine"
)

// StateSnapshot is the complete observable state at the end of a scenario.
// Field order is the serialization order; slices are always present (empty,
// never null) so snapshots stay diffable.
type StateSnapshot struct {
	Scenario  string                   `json:"scenario"`
	Today     string                   `json:"today"`
	Streak    int                      `json:"streak"`
	RawStreak int                      `json:"raw_streak"`
	History   []routine.ProgressRecord `json:"history"`
	Backlog   []routine.BacklogEntry   `json:"backlog"`
	Tags      []routine.TagCount       `json:"tags"`
	Journal   []routine.Event          `json:"journal"`
}

// snapshot captures the engine's state after a scenario run.
func snapshot(ctx context.Context, scenario *Scenario, eng *engine.Engine, today routine.Day) (*StateSnapshot, error) {
	journal, err := eng.Journal(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: journal: %w", scenario.Name, err)
	}

	s := &StateSnapshot{
		Scenario:  scenario.Name,
		Today:     today.String(),
		Streak:    eng.ComputeStreak(today),
		RawStreak: routine.RawStreak(eng.History(), eng.Backlog(), today),
		History:   eng.History(),
		Backlog:   eng.Backlog(),
		Tags:      eng.TagStats().Sorted(),
		Journal:   journal,
	}
	if s.History == nil {
		s.History = []routine.ProgressRecord{}
	}
	if s.Backlog == nil {
		s.Backlog = []routine.BacklogEntry{}
	}
	if s.Tags == nil {
		s.Tags = []routine.TagCount{}
	}
	if s.Journal == nil {
		s.Journal = []routine.Event{}
	}
	return s, nil
}

// Marshal renders the snapshot as indented JSON, the golden file format.
func (s *StateSnapshot) Marshal() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// RunWithGolden executes a scenario and compares the final state against
// testdata/golden/{scenario.Name}.golden.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}

	data, err := result.Marshal()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)
	return nil
}
