// Package intent defines the messages that drive the hero page. Requests
// (LoadList, LoadProfile, EditProfile, ClearError) come from the page;
// resolutions (the *OK and *Err variants) come back from effects.
package intent

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/heroboard/internal/hero"
)

// Kind identifies an intent variant
type Kind int

const (
	KindLoadList Kind = iota
	KindLoadProfile
	KindEditProfile
	KindLoadListOK
	KindLoadListErr
	KindLoadProfileOK
	KindLoadProfileErr
	KindClearError
)

var kindNames = map[Kind]string{
	KindLoadList:       "LOAD_LIST",
	KindLoadProfile:    "LOAD_PROFILE",
	KindEditProfile:    "EDIT_PROFILE",
	KindLoadListOK:     "LOAD_LIST_OK",
	KindLoadListErr:    "LOAD_LIST_ERR",
	KindLoadProfileOK:  "LOAD_PROFILE_OK",
	KindLoadProfileErr: "LOAD_PROFILE_ERR",
	KindClearError:     "CLEAR_ERROR",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Intent is a closed set of immutable messages
type Intent interface {
	Kind() Kind
	isIntent()
}

// Resolution is an intent produced by a settled effect. Generation ties it
// to the request that started the effect.
type Resolution interface {
	Intent
	Gen() uint64
}

// LoadList requests the hero list
type LoadList struct{}

// LoadProfile requests the ability profile of one hero
type LoadProfile struct {
	HeroID string
}

// EditProfile replaces the held profile locally
type EditProfile struct {
	HeroID  string
	Profile hero.Profile
}

// LoadListOK carries a fetched hero list
type LoadListOK struct {
	Heroes     []hero.Summary
	Generation uint64
}

// LoadListErr reports a failed list fetch
type LoadListErr struct {
	Message    string
	Generation uint64
}

// LoadProfileOK carries a fetched profile
type LoadProfileOK struct {
	HeroID     string
	Profile    hero.Profile
	Generation uint64
}

// LoadProfileErr reports a failed profile fetch
type LoadProfileErr struct {
	HeroID     string
	Message    string
	Generation uint64
}

// ClearError hides the error banner
type ClearError struct{}

func (LoadList) Kind() Kind       { return KindLoadList }
func (LoadProfile) Kind() Kind    { return KindLoadProfile }
func (EditProfile) Kind() Kind    { return KindEditProfile }
func (LoadListOK) Kind() Kind     { return KindLoadListOK }
func (LoadListErr) Kind() Kind    { return KindLoadListErr }
func (LoadProfileOK) Kind() Kind  { return KindLoadProfileOK }
func (LoadProfileErr) Kind() Kind { return KindLoadProfileErr }
func (ClearError) Kind() Kind     { return KindClearError }

func (LoadList) isIntent()       {}
func (LoadProfile) isIntent()    {}
func (EditProfile) isIntent()    {}
func (LoadListOK) isIntent()     {}
func (LoadListErr) isIntent()    {}
func (LoadProfileOK) isIntent()  {}
func (LoadProfileErr) isIntent() {}
func (ClearError) isIntent()     {}

func (i LoadListOK) Gen() uint64     { return i.Generation }
func (i LoadListErr) Gen() uint64    { return i.Generation }
func (i LoadProfileOK) Gen() uint64  { return i.Generation }
func (i LoadProfileErr) Gen() uint64 { return i.Generation }

// Request returns the request kind a resolution answers. ok is false for
// intents that are not resolutions.
func Request(in Intent) (kind Kind, ok bool) {
	switch in.(type) {
	case LoadListOK, LoadListErr:
		return KindLoadList, true
	case LoadProfileOK, LoadProfileErr:
		return KindLoadProfile, true
	default:
		return 0, false
	}
}

// IsError reports whether the intent carries an error for the banner
func IsError(in Intent) bool {
	switch in.(type) {
	case LoadListErr, LoadProfileErr:
		return true
	default:
		return false
	}
}

// Invoke lifts an intent into a command for the Bubble Tea runtime
func Invoke(in Intent) tea.Cmd {
	return func() tea.Msg {
		return in
	}
}
