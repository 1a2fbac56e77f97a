// Package session owns the signed-in lifecycle: it loads state when a user
// signs in, applies interaction intents, and feeds the ordered save queue.
// There are no ambient singletons; everything a handler needs hangs off the
// Session.
package session

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/bithab/pkg/calendar"
	"tableflip.dev/bithab/pkg/datekey"
	"tableflip.dev/bithab/pkg/habit"
	"tableflip.dev/bithab/pkg/remote"
	"tableflip.dev/bithab/pkg/sync"
)

// Notice is a transient, auto-dismissing status message for the presentation
// layer (the original client's "Saving..." / "Error saving!" indicator).
type Notice struct {
	Text string
	Err  bool
}

// Options configures Open.
type Options struct {
	Docs   remote.DocumentStore
	UserID string

	// PersistCursor mirrors the UI cursor remotely; see remote.Config.
	PersistCursor bool

	// Notify receives transient notices. May be nil.
	Notify func(Notice)

	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

// Session is the context object for one signed-in user: the entity store,
// the UI cursor, and the sync machinery.
type Session struct {
	UserID string
	State  *habit.State
	Cursor habit.Cursor

	engine *sync.Engine
	queue  *sync.Queue
	notify func(Notice)
	now    func() time.Time
}

// Open loads the user's remote state and starts the save queue. An absent or
// unreadable remote document yields a fresh empty store; load errors surface
// as a notice, never as a failed sign-in.
func Open(ctx context.Context, opts Options) (*Session, error) {
	if opts.UserID == "" {
		return nil, errors.New("session: user id required")
	}
	if opts.Docs == nil {
		return nil, errors.New("session: document store required")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	notify := opts.Notify
	if notify == nil {
		notify = func(Notice) {}
	}

	engine := &sync.Engine{Docs: opts.Docs, PersistCursor: opts.PersistCursor}

	snap, err := engine.Load(ctx, opts.UserID)
	if err != nil {
		notify(Notice{Text: "Could not load saved data, starting fresh.", Err: true})
	}
	state := habit.NewState()
	state.Restore(snap)

	cursor := habit.Cursor{Visible: calendar.At(now())}
	if loaded, ok, err := engine.LoadCursor(ctx, opts.UserID); err == nil && ok {
		cursor = loaded
		if cursor.Visible.IsZero() {
			cursor.Visible = calendar.At(now())
		}
	}
	cursor.SelfHeal(state.Activities)
	cursor.Expand(cursor.SelectedActivityID)

	s := &Session{
		UserID: opts.UserID,
		State:  state,
		Cursor: cursor,
		engine: engine,
		notify: notify,
		now:    now,
	}
	s.queue = sync.NewQueue(engine, opts.UserID, func(error) {
		notify(Notice{Text: "Error saving!", Err: true})
	})
	return s, nil
}

// Close drains pending saves and releases the session. Sign-out path.
func (s *Session) Close() {
	s.queue.Close()
}

// Watch streams remote store change events so long-lived views can refresh
// when another client writes.
func (s *Session) Watch(ctx context.Context) (<-chan remote.Event, error) {
	return s.engine.Docs.Watch(ctx)
}

// Reload re-fetches the remote snapshot and replaces local state. Used when a
// watch event reports an out-of-band write.
func (s *Session) Reload(ctx context.Context) error {
	snap, err := s.engine.Load(ctx, s.UserID)
	if err != nil {
		return err
	}
	s.State.Restore(snap)
	s.Cursor.SelfHeal(s.State.Activities)
	return nil
}

// Today returns the key for the current day.
func (s *Session) Today() datekey.Key {
	return datekey.Format(s.now())
}

// saveState enqueues the current snapshot (and cursor) in mutation order.
func (s *Session) saveState() {
	cursor := s.Cursor.Clone()
	s.queue.Enqueue(s.State.Snapshot(), &cursor)
}

// saveCursor enqueues a cursor-only save for view-state changes.
func (s *Session) saveCursor() {
	s.queue.EnqueueCursor(s.Cursor.Clone())
}
