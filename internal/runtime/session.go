// Package runtime wires the store, the effect coordinator and the view
// derivation into one single-threaded session.
package runtime

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/heroboard/internal/effects"
	"github.com/yildizm/heroboard/internal/gateway"
	"github.com/yildizm/heroboard/internal/heroapi"
	"github.com/yildizm/heroboard/internal/intent"
	"github.com/yildizm/heroboard/internal/logger"
	"github.com/yildizm/heroboard/internal/store"
	"github.com/yildizm/heroboard/internal/view"
)

// Scheduler returns a command that yields msg after d
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// TickScheduler schedules through tea.Tick
func TickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// DismissMsg is delivered when an error banner timer fires
type DismissMsg struct {
	Token uint64
}

// Options configures a session
type Options struct {
	Gateway      gateway.Gateway
	Endpoints    heroapi.Endpoints
	RoutePrefix  string
	DismissDelay time.Duration
	Scheduler    Scheduler
	Logger       *logger.Logger
}

// Session owns the page state for one program run. Every method must be
// called from the same goroutine.
type Session struct {
	store     *store.Store
	coord     *effects.Coordinator
	tracker   *view.Tracker
	dismisser *view.Dismisser
	schedule  Scheduler
	log       *logger.Logger
	onApply   func(in intent.Intent, s store.State)

	path string
}

// NewSession creates a session whose effects are bounded by ctx
func NewSession(ctx context.Context, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	schedule := opts.Scheduler
	if schedule == nil {
		schedule = TickScheduler
	}

	tracker := view.NewTracker(opts.RoutePrefix)
	return &Session{
		store:     store.New(),
		coord:     effects.New(ctx, opts.Gateway, opts.Endpoints, log),
		tracker:   tracker,
		dismisser: view.NewDismisser(opts.DismissDelay),
		schedule:  schedule,
		log:       log.WithComponent("session"),
		path:      tracker.Prefix(),
	}
}

// Dispatch applies one intent and returns the commands it starts
func (s *Session) Dispatch(in intent.Intent) tea.Cmd {
	if !s.coord.Admit(in) {
		return nil
	}

	st := s.store.Apply(in)
	s.log.Debug("applied %s", in.Kind())
	if s.onApply != nil {
		s.onApply(in, st)
	}

	cmds := []tea.Cmd{s.coord.Handle(in)}

	switch {
	case intent.IsError(in):
		token := s.dismisser.Arm()
		cmds = append(cmds, s.schedule(s.dismisser.Delay(), DismissMsg{Token: token}))
	case in.Kind() == intent.KindClearError:
		s.dismisser.Disarm()
	}

	return tea.Batch(cmds...)
}

// Navigate moves to path and dispatches what the route change implies
func (s *Session) Navigate(path string) tea.Cmd {
	s.path = path

	var cmds []tea.Cmd
	for _, in := range s.tracker.Observe(path) {
		cmds = append(cmds, s.Dispatch(in))
	}
	return tea.Batch(cmds...)
}

// Update handles session messages. handled is false for anything else.
func (s *Session) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case intent.Intent:
		return s.Dispatch(msg), true
	case DismissMsg:
		if s.dismisser.Due(msg.Token) {
			return s.Dispatch(intent.ClearError{}), true
		}
		return nil, true
	}
	return nil, false
}

// OnApply registers fn to run after every intent that reaches the store
func (s *Session) OnApply(fn func(in intent.Intent, s store.State)) {
	s.onApply = fn
}

// SetDismissDelay changes the banner delay for errors shown from now on
func (s *Session) SetDismissDelay(d time.Duration) {
	s.dismisser.SetDelay(d)
}

// State returns the store state
func (s *Session) State() store.State {
	return s.store.Snapshot()
}

// Path returns the current route
func (s *Session) Path() string {
	return s.path
}

// Prefix returns the route prefix
func (s *Session) Prefix() string {
	return s.tracker.Prefix()
}

// View derives the view state for the current route
func (s *Session) View() view.State {
	return view.Derive(s.store.Snapshot(), s.path, s.tracker.Prefix())
}

// Stats returns effect counters for a request kind
func (s *Session) Stats(kind intent.Kind) effects.Stats {
	return s.coord.Stats(kind)
}
