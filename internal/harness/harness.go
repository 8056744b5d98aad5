package harness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/kindling/internal/engine"
	"github.com/roach88/kindling/internal/routine"
	"github.com/roach88/kindling/internal/testutil"
)

// seqIDGenerator hands out ev-0001, ev-0002, ... so journals are stable
// across runs.
type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) Generate() string {
	g.n++
	return fmt.Sprintf("ev-%04d", g.n)
}

// Run executes a scenario against a fresh in-memory engine and returns the
// final state snapshot.
//
// The engine runs in development mode so scenarios may exercise unread and
// reset. A step whose ExpectError names a code must be refused with exactly
// that code; any other outcome fails the run.
func Run(scenario *Scenario) (*StateSnapshot, error) {
	store := testutil.NewMemoryStore()
	eng := engine.New(store,
		engine.WithMode(engine.ModeDevelopment),
		engine.WithIDGenerator(&seqIDGenerator{}),
	)

	ctx := context.Background()
	if err := eng.Load(ctx); err != nil {
		return nil, fmt.Errorf("scenario %s: load: %w", scenario.Name, err)
	}

	for i, step := range scenario.Steps {
		err := applyStep(ctx, eng, step)
		if step.ExpectError != "" {
			if err == nil {
				return nil, fmt.Errorf("scenario %s step %d (%s): expected %s, got success",
					scenario.Name, i, step.Op, step.ExpectError)
			}
			if code := errorCode(err); code != step.ExpectError {
				return nil, fmt.Errorf("scenario %s step %d (%s): expected %s, got %s",
					scenario.Name, i, step.Op, step.ExpectError, code)
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("scenario %s step %d (%s): %w", scenario.Name, i, step.Op, err)
		}
	}

	today, err := routine.ParseDay(scenario.Today)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: today: %w", scenario.Name, err)
	}
	return snapshot(ctx, scenario, eng, today)
}

// applyStep dispatches one step onto the engine.
func applyStep(ctx context.Context, eng *engine.Engine, step Step) error {
	now, err := stepTime(step)
	if err != nil {
		return err
	}

	switch step.Op {
	case "add":
		return eng.AddToHistory(ctx, step.Article, step.Title, step.URL, now)

	case "read":
		day, err := stepDay(step.Day)
		if err != nil {
			return err
		}
		originalDay, err := stepDay(step.OriginalDay)
		if err != nil {
			return err
		}
		return eng.MarkRead(ctx, step.Article, step.Tags, day, originalDay, now)

	case "unread":
		return eng.MarkUnread(ctx, step.Article, now)

	case "delay":
		day, err := stepDay(step.Day)
		if err != nil {
			return err
		}
		return eng.Delay(ctx, routine.Article{
			ID:         step.Article,
			Title:      step.Title,
			URL:        step.URL,
			RoutineDay: day,
			Tags:       step.Tags,
		}, now)

	case "remove":
		return eng.RemoveFromBacklog(ctx, step.Article, now)

	case "sweep":
		_, err := eng.SweepExpired(ctx, now)
		return err

	case "reset":
		return eng.Reset(ctx, now)

	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
}

func stepTime(step Step) (time.Time, error) {
	if step.Now == "" {
		return time.Time{}, fmt.Errorf("op %s: missing now", step.Op)
	}
	t, err := time.Parse(time.RFC3339, step.Now)
	if err != nil {
		return time.Time{}, fmt.Errorf("op %s: now: %w", step.Op, err)
	}
	return t, nil
}

func stepDay(value string) (routine.Day, error) {
	if value == "" {
		return routine.Day{}, nil
	}
	return routine.ParseDay(value)
}

// errorCode extracts the engine error code, or the error text for
// non-engine errors.
func errorCode(err error) string {
	var ee *engine.EngineError
	if errors.As(err, &ee) {
		return string(ee.Code)
	}
	return err.Error()
}
