// Package view derives what the page shows from the store state and the
// current route, and decides which intents a route change implies.
package view

import (
	"strings"

	"github.com/yildizm/heroboard/internal/intent"
	"github.com/yildizm/heroboard/internal/store"
)

// DefaultPrefix is the route under which heroes live
const DefaultPrefix = "/heroes"

// Page titles
const (
	TitleList    = "Hero List Page"
	TitleProfile = "Hero Profile Page"
)

// State is what the page renders against. It is never a source of truth.
type State struct {
	ActiveHeroID       string
	ShowLoadingOverlay bool
	ShowErrorBanner    bool
	BannerText         string
	Title              string
}

// HasActiveHero reports whether the profile view is active
func (s State) HasActiveHero() bool {
	return s.ActiveHeroID != ""
}

// ParseRoute extracts the hero id that follows prefix in path. The prefix
// match is literal and case-sensitive, and one trailing slash is tolerated.
// ok is false when path is not under prefix or has segments past the id.
func ParseRoute(path, prefix string) (heroID string, ok bool) {
	prefix = strings.TrimRight(prefix, "/")
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}

	rest := path[len(prefix):]
	if rest == "" || rest == "/" {
		return "", true
	}
	if rest[0] != '/' {
		return "", false
	}

	rest = strings.TrimSuffix(rest[1:], "/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}

// RouteFor returns the path that shows heroID, or the list when empty
func RouteFor(prefix, heroID string) string {
	prefix = strings.TrimRight(prefix, "/")
	if heroID == "" {
		return prefix
	}
	return prefix + "/" + heroID
}

// Derive computes the view state for path
func Derive(s store.State, path, prefix string) State {
	heroID, _ := ParseRoute(path, prefix)

	title := TitleList
	if heroID != "" {
		title = TitleProfile
	}

	return State{
		ActiveHeroID:       heroID,
		ShowLoadingOverlay: s.Loading(),
		ShowErrorBanner:    s.HasError(),
		BannerText:         s.Error,
		Title:              title,
	}
}

// Tracker turns route observations into fetch intents: the list once on
// first activation, and a profile every time the active hero changes.
type Tracker struct {
	prefix    string
	activated bool
	heroID    string
}

// NewTracker creates a tracker for routes under prefix
func NewTracker(prefix string) *Tracker {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Tracker{prefix: prefix}
}

// Prefix returns the route prefix
func (t *Tracker) Prefix() string {
	return t.prefix
}

// Observe records the current path and returns the intents it triggers
func (t *Tracker) Observe(path string) []intent.Intent {
	var out []intent.Intent

	if !t.activated {
		t.activated = true
		out = append(out, intent.LoadList{})
	}

	heroID, _ := ParseRoute(path, t.prefix)
	if heroID != t.heroID {
		t.heroID = heroID
		if heroID != "" {
			out = append(out, intent.LoadProfile{HeroID: heroID})
		}
	}

	return out
}
