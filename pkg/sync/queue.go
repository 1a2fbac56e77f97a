package sync

import (
	"context"

	"tableflip.dev/bithab/pkg/habit"
)

// Queue serializes saves so they reach the remote store in the order their
// triggering mutations occurred. A fire-and-forget save per mutation could
// complete out of order and silently revert a later mutation; the queue's
// single worker makes that impossible. A failed save is reported through the
// notify callback and never rolls back local state; the next successful save
// carries the accumulated state forward.
type Queue struct {
	engine *Engine
	userID string
	notify func(error)
	jobs   chan job
	done   chan struct{}
}

type job struct {
	snap   *habit.Snapshot
	cursor *habit.Cursor
}

// NewQueue starts the queue worker. notify may be nil.
func NewQueue(engine *Engine, userID string, notify func(error)) *Queue {
	q := &Queue{
		engine: engine,
		userID: userID,
		notify: notify,
		jobs:   make(chan job, 64),
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	ctx := context.Background()
	for j := range q.jobs {
		if j.snap != nil {
			if err := q.engine.Save(ctx, q.userID, *j.snap); err != nil {
				q.report(err)
			}
		}
		if j.cursor != nil {
			if err := q.engine.SaveCursor(ctx, q.userID, *j.cursor); err != nil {
				q.report(err)
			}
		}
	}
}

func (q *Queue) report(err error) {
	if q.notify != nil {
		q.notify(err)
	}
}

// Enqueue schedules a snapshot save, optionally with a cursor save after it.
// The snapshot must be a frozen copy (habit.State.Snapshot); the caller is
// free to keep mutating the live store.
func (q *Queue) Enqueue(snap habit.Snapshot, cursor *habit.Cursor) {
	q.jobs <- job{snap: &snap, cursor: cursor}
}

// EnqueueCursor schedules a cursor-only save.
func (q *Queue) EnqueueCursor(cursor habit.Cursor) {
	q.jobs <- job{cursor: &cursor}
}

// Close drains pending saves and stops the worker. Sessions call this on
// sign-out so no write is lost.
func (q *Queue) Close() {
	close(q.jobs)
	<-q.done
}
