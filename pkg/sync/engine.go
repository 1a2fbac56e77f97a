// Package sync reconciles the in-memory habit state with the remote document
// store: a full load on session start, whole-document writes after every
// mutation.
package sync

import (
	"context"
	"encoding/json"
	"fmt"

	"tableflip.dev/bithab/pkg/habit"
	"tableflip.dev/bithab/pkg/remote"
)

// Document keys per user. The snapshot document is always replaced wholesale
// (Set); the cursor lives in its own document and is field-merged (Update).
// The two never share a document, so each one sees a single write granularity.
func userDoc(userID string) string {
	return "users/" + userID
}

func cursorDoc(userID string) string {
	return "cursors/" + userID
}

// Engine moves snapshots between the entity store and the remote document
// store. It is the store's sole caller.
type Engine struct {
	Docs remote.DocumentStore

	// PersistCursor mirrors the UI cursor to the remote store so the view
	// survives reload across devices. When false the cursor stays
	// session-local.
	PersistCursor bool
}

// Load fetches the user's snapshot. An absent document is the first-run
// condition, not an error, and yields the empty default. A malformed document
// degrades field by field instead of failing outright. A transport error also
// yields the empty default so the session can start; the error is returned
// for the caller to surface as a notice.
func (e *Engine) Load(ctx context.Context, userID string) (habit.Snapshot, error) {
	empty := habit.EmptySnapshot()
	data, ok, err := e.Docs.Get(ctx, userDoc(userID))
	if err != nil {
		return empty, fmt.Errorf("sync: load %s: %w", userID, err)
	}
	if !ok {
		return empty, nil
	}

	snap := decodeSnapshot(data)
	snap.Normalize()
	return snap, nil
}

// decodeSnapshot unmarshals a snapshot document, defaulting each field
// independently so one bad field cannot take down the rest.
func decodeSnapshot(data []byte) habit.Snapshot {
	snap := habit.EmptySnapshot()

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return snap
	}
	if raw, ok := doc["activities"]; ok {
		var activities []habit.Activity
		if err := json.Unmarshal(raw, &activities); err == nil {
			snap.Activities = activities
		}
	}
	if raw, ok := doc["goals"]; ok {
		var goals []habit.Goal
		if err := json.Unmarshal(raw, &goals); err == nil {
			snap.Goals = goals
		}
	}
	if raw, ok := doc["logs"]; ok {
		var logs habit.LogIndex
		if err := json.Unmarshal(raw, &logs); err == nil {
			snap.Logs = logs
		}
	}
	return snap
}

// Save replaces the user's snapshot document. A subsequent Load by any client
// reproduces the snapshot exactly.
func (e *Engine) Save(ctx context.Context, userID string, snap habit.Snapshot) error {
	doc, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("sync: encode snapshot for %s: %w", userID, err)
	}
	if err := e.Docs.Set(ctx, userDoc(userID), doc); err != nil {
		return fmt.Errorf("sync: save %s: %w", userID, err)
	}
	return nil
}

// LoadCursor fetches the user's persisted cursor, if cursor persistence is
// enabled and a cursor document exists. Malformed cursor fields default.
func (e *Engine) LoadCursor(ctx context.Context, userID string) (habit.Cursor, bool, error) {
	var cursor habit.Cursor
	if !e.PersistCursor {
		return cursor, false, nil
	}
	data, ok, err := e.Docs.Get(ctx, cursorDoc(userID))
	if err != nil {
		return cursor, false, fmt.Errorf("sync: load cursor for %s: %w", userID, err)
	}
	if !ok {
		return cursor, false, nil
	}
	if err := json.Unmarshal(data, &cursor); err != nil {
		return habit.Cursor{}, false, nil
	}
	return cursor, true, nil
}

// SaveCursor field-merges the cursor into its document.
func (e *Engine) SaveCursor(ctx context.Context, userID string, cursor habit.Cursor) error {
	if !e.PersistCursor {
		return nil
	}
	fields := make(map[string]json.RawMessage, 3)
	var err error
	if fields["selectedActivityId"], err = json.Marshal(cursor.SelectedActivityID); err != nil {
		return fmt.Errorf("sync: encode cursor for %s: %w", userID, err)
	}
	if fields["visibleMonth"], err = json.Marshal(cursor.Visible); err != nil {
		return fmt.Errorf("sync: encode cursor for %s: %w", userID, err)
	}
	if fields["expandedActivities"], err = json.Marshal(cursor.Expanded); err != nil {
		return fmt.Errorf("sync: encode cursor for %s: %w", userID, err)
	}
	if err := e.Docs.Update(ctx, cursorDoc(userID), fields); err != nil {
		return fmt.Errorf("sync: save cursor for %s: %w", userID, err)
	}
	return nil
}
