package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/roach88/kindling/internal/routine"
)

// Collections are persisted as JSON arrays/objects under their storage
// keys. The ledger keeps insertion order; the backlog keeps
// most-recent-first order. Neither ordering is semantically significant,
// but keeping it stable makes snapshots diffable.

func (e *Engine) loadLedger(ctx context.Context) ([]routine.ProgressRecord, error) {
	data, ok, err := e.store.Get(ctx, KeyProgressLedger)
	if err != nil {
		return nil, NewStorageFailureError("load ledger", err)
	}
	if !ok {
		return nil, nil
	}
	var records []routine.ProgressRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, NewStorageFailureError("load ledger", fmt.Errorf("unmarshal %s: %w", KeyProgressLedger, err))
	}
	return records, nil
}

func (e *Engine) loadBacklog(ctx context.Context) ([]routine.BacklogEntry, error) {
	data, ok, err := e.store.Get(ctx, KeyBacklog)
	if err != nil {
		return nil, NewStorageFailureError("load backlog", err)
	}
	if !ok {
		return nil, nil
	}
	var entries []routine.BacklogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, NewStorageFailureError("load backlog", fmt.Errorf("unmarshal %s: %w", KeyBacklog, err))
	}
	return entries, nil
}

func (e *Engine) loadTags(ctx context.Context) (routine.TagStats, error) {
	data, ok, err := e.store.Get(ctx, KeyTagStats)
	if err != nil {
		return nil, NewStorageFailureError("load tags", err)
	}
	if !ok {
		return routine.TagStats{}, nil
	}
	var tags routine.TagStats
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, NewStorageFailureError("load tags", fmt.Errorf("unmarshal %s: %w", KeyTagStats, err))
	}
	if tags == nil {
		tags = routine.TagStats{}
	}
	return tags, nil
}

func (e *Engine) flushLedger(ctx context.Context) error {
	return e.flushKey(ctx, KeyProgressLedger, e.records)
}

func (e *Engine) flushBacklog(ctx context.Context) error {
	return e.flushKey(ctx, KeyBacklog, e.backlog)
}

func (e *Engine) flushTags(ctx context.Context) error {
	return e.flushKey(ctx, KeyTagStats, e.tags)
}

func (e *Engine) flushKey(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return NewStorageFailureError("flush "+key, fmt.Errorf("marshal: %w", err))
	}
	if err := e.store.Set(ctx, key, data); err != nil {
		return NewStorageFailureError("flush "+key, err)
	}
	return nil
}
