package runtime

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/yildizm/heroboard/internal/store"
)

// StopFunc reports whether a headless run has reached the state it waits for
type StopFunc func(s store.State) bool

// Loop runs a Session without a terminal. One goroutine owns the session
// and consumes the inbox; effects run alongside it and post their results
// back. A Loop runs once.
type Loop struct {
	session *Session
	inbox   chan tea.Msg
	done    chan struct{}
	cancel  context.CancelFunc
}

// NewLoop creates a headless loop. opts.Scheduler is replaced by one that
// stops with the loop, and effects still in flight when Run returns are
// canceled.
func NewLoop(ctx context.Context, opts Options) *Loop {
	ctx, cancel := context.WithCancel(ctx)
	l := &Loop{
		inbox:  make(chan tea.Msg, 16),
		done:   make(chan struct{}),
		cancel: cancel,
	}
	opts.Scheduler = l.schedule
	l.session = NewSession(ctx, opts)
	return l
}

// Session exposes the loop's session for inspection after Run returns
func (l *Loop) Session() *Session {
	return l.session
}

// Run navigates to path and processes messages until until reports true or
// ctx ends. It returns the last state and ctx's error, if any.
func (l *Loop) Run(ctx context.Context, path string, until StopFunc) (store.State, error) {
	g, gctx := errgroup.WithContext(ctx)

	spawn := func(cmd tea.Cmd) {
		if cmd == nil {
			return
		}
		g.Go(func() error {
			msg := cmd()
			if msg == nil {
				return nil
			}
			select {
			case l.inbox <- msg:
			case <-l.done:
			}
			return nil
		})
	}

	g.Go(func() error {
		defer l.cancel()
		defer close(l.done)

		spawn(l.session.Navigate(path))
		if until != nil && until(l.session.State()) {
			return nil
		}

		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case msg := <-l.inbox:
				if batch, ok := msg.(tea.BatchMsg); ok {
					for _, cmd := range batch {
						spawn(cmd)
					}
					continue
				}
				cmd, _ := l.session.Update(msg)
				spawn(cmd)
				if until != nil && until(l.session.State()) {
					return nil
				}
			}
		}
	})

	err := g.Wait()
	return l.session.State(), err
}

func (l *Loop) schedule(d time.Duration, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return msg
		case <-l.done:
			return nil
		}
	}
}
