package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/bithab/pkg/remote"
	"tableflip.dev/bithab/pkg/session"
)

// newSession opens a session for the configured user. Callers must Close it
// so queued saves drain before the process exits.
func newSession(ctx context.Context) (*session.Session, error) {
	cfg, err := remote.LoadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.User == "" {
		return nil, errors.New("no user configured, set BITHAB_USER or user in .bithab.yaml")
	}

	docs, err := remote.Open(cfg)
	if err != nil {
		return nil, err
	}

	return session.Open(ctx, session.Options{
		Docs:          docs,
		UserID:        cfg.User,
		PersistCursor: cfg.PersistCursor,
		Notify: func(n session.Notice) {
			if n.Err {
				_, _ = fmt.Fprintln(os.Stderr, n.Text)
			}
		},
	})
}
