// Package remote is the client for the user-keyed remote document store.
package remote

import (
	"context"
	"encoding/json"
)

// DocumentStore is the document service contract: opaque keys addressing
// JSON documents, replaced wholesale with Set or field-merged with Update.
// No transactional guarantees beyond last-write-wins are assumed.
type DocumentStore interface {
	// Get fetches the document at key. Absence is not an error; the second
	// return reports whether a document exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set replaces the whole document at key.
	Set(ctx context.Context, key string, doc []byte) error

	// Update merges the given top-level fields into the document at key,
	// creating the document if absent. Fields not named are left untouched.
	Update(ctx context.Context, key string, fields map[string]json.RawMessage) error

	// Watch streams change events until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// EventType describes the nature of a store change notification.
type EventType int

const (
	// EventDocumentChanged indicates the document at Key was written.
	EventDocumentChanged EventType = iota

	// EventStoreInvalidated signals callers should refresh everything they
	// hold; the change could not be attributed to a single document.
	EventStoreInvalidated
)

// Event is emitted by DocumentStore.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  string
}
