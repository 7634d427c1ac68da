// Package store holds the page state and the transition table that is the
// only way to change it.
package store

import (
	"github.com/yildizm/heroboard/internal/hero"
	"github.com/yildizm/heroboard/internal/intent"
)

// UnknownError replaces empty error messages so an error is never invisible
const UnknownError = "unknown error"

// State is the page state. Zero value is the initial state.
type State struct {
	Heroes  []hero.Summary
	Ability hero.Profile
	Error   string

	listPending    bool
	profilePending bool
}

// Loading reports whether any fetch is outstanding. List and profile share
// one overlay, but each kind only clears its own pending bit.
func (s State) Loading() bool {
	return s.listPending || s.profilePending
}

// ListPending reports whether a list fetch is outstanding
func (s State) ListPending() bool {
	return s.listPending
}

// ProfilePending reports whether a profile fetch is outstanding
func (s State) ProfilePending() bool {
	return s.profilePending
}

// HasError reports whether the error banner has something to show
func (s State) HasError() bool {
	return s.Error != ""
}

// Reduce applies one intent. It reads nothing but its arguments.
func Reduce(s State, in intent.Intent) State {
	switch in := in.(type) {
	case intent.LoadList:
		s.listPending = true
	case intent.LoadListOK:
		s.Heroes = append([]hero.Summary(nil), in.Heroes...)
		s.listPending = false
	case intent.LoadListErr:
		s.Error = errorText(in.Message)
		s.listPending = false
	case intent.LoadProfile:
		s.profilePending = true
	case intent.LoadProfileOK:
		s.Ability = in.Profile.Clone()
		s.profilePending = false
	case intent.LoadProfileErr:
		s.Error = errorText(in.Message)
		s.profilePending = false
	case intent.EditProfile:
		s.Ability = in.Profile.Clone()
	case intent.ClearError:
		s.Error = ""
	}
	return s
}

func errorText(msg string) string {
	if msg == "" {
		return UnknownError
	}
	return msg
}

// Store owns a State for the lifetime of a session. It is not safe for
// concurrent use; the session applies intents from a single goroutine.
type Store struct {
	state State
}

// New creates a store in the initial state
func New() *Store {
	return &Store{}
}

// Apply runs one transition and returns the new state
func (s *Store) Apply(in intent.Intent) State {
	s.state = Reduce(s.state, in)
	return s.state
}

// Snapshot returns the current state
func (s *Store) Snapshot() State {
	return s.state
}
