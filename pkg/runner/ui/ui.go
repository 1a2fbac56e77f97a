// Package ui runs the interactive terminal client.
package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/bithab/pkg/prefs"
	"tableflip.dev/bithab/pkg/remote"
	"tableflip.dev/bithab/pkg/session"
	"tableflip.dev/bithab/pkg/tui"
)

type UI struct {
	Config *remote.Config
}

func (n *UI) Do(ctx context.Context) error {
	cfg := n.Config
	if cfg == nil {
		var err error
		cfg, err = remote.LoadConfig()
		if err != nil {
			return err
		}
	}
	if cfg.User == "" {
		return errors.New("no user configured, set BITHAB_USER or user in .bithab.yaml")
	}

	docs, err := remote.Open(cfg)
	if err != nil {
		return err
	}

	// Save-queue notices arrive on the queue's goroutine before the program
	// exists, so the pointer is handed over under a lock.
	var mu sync.Mutex
	var program *tea.Program

	s, err := session.Open(ctx, session.Options{
		Docs:          docs,
		UserID:        cfg.User,
		PersistCursor: cfg.PersistCursor,
		Notify: func(notice session.Notice) {
			mu.Lock()
			p := program
			mu.Unlock()
			if p != nil {
				p.Send(tui.NoticeMsg(notice))
			}
		},
	})
	if err != nil {
		return err
	}
	defer s.Close()

	p := prefs.Load(prefs.Path(cfg.Path))
	model := tui.New(s, p, prefs.Path(cfg.Path))

	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	mu.Lock()
	program = prog
	mu.Unlock()

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if events, err := s.Watch(watchCtx); err == nil {
		go func() {
			for range events {
				prog.Send(tui.StoreChangedMsg{})
			}
		}()
	}

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
