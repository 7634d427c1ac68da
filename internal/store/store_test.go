package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yildizm/heroboard/internal/hero"
	"github.com/yildizm/heroboard/internal/intent"
)

func TestReduce_TransitionTable(t *testing.T) {
	heroes := []hero.Summary{{ID: "1", Name: "A", Image: "a.png"}}
	profile := hero.Profile{"str": 1}

	tests := []struct {
		name  string
		start State
		in    intent.Intent
		check func(t *testing.T, s State)
	}{
		{
			name: "load list sets loading",
			in:   intent.LoadList{},
			check: func(t *testing.T, s State) {
				assert.True(t, s.Loading())
				assert.True(t, s.ListPending())
			},
		},
		{
			name:  "list ok replaces heroes",
			start: State{Heroes: []hero.Summary{{ID: "9"}}, listPending: true},
			in:    intent.LoadListOK{Heroes: heroes},
			check: func(t *testing.T, s State) {
				assert.Equal(t, heroes, s.Heroes)
				assert.False(t, s.Loading())
			},
		},
		{
			name:  "list err sets error",
			start: State{listPending: true},
			in:    intent.LoadListErr{Message: "boom"},
			check: func(t *testing.T, s State) {
				assert.Equal(t, "boom", s.Error)
				assert.False(t, s.Loading())
			},
		},
		{
			name: "load profile sets loading",
			in:   intent.LoadProfile{HeroID: "1"},
			check: func(t *testing.T, s State) {
				assert.True(t, s.Loading())
				assert.True(t, s.ProfilePending())
			},
		},
		{
			name:  "profile ok replaces ability",
			start: State{Ability: hero.Profile{"agi": 3}, profilePending: true},
			in:    intent.LoadProfileOK{HeroID: "1", Profile: profile},
			check: func(t *testing.T, s State) {
				assert.Equal(t, profile, s.Ability)
				assert.False(t, s.Loading())
			},
		},
		{
			name:  "profile err keeps ability",
			start: State{Ability: profile, profilePending: true},
			in:    intent.LoadProfileErr{HeroID: "1", Message: "not found"},
			check: func(t *testing.T, s State) {
				assert.Equal(t, "not found", s.Error)
				assert.Equal(t, profile, s.Ability)
				assert.False(t, s.Loading())
			},
		},
		{
			name:  "edit replaces ability without touching loading",
			start: State{Ability: hero.Profile{"str": 9}, profilePending: true},
			in:    intent.EditProfile{HeroID: "1", Profile: profile},
			check: func(t *testing.T, s State) {
				assert.Equal(t, profile, s.Ability)
				assert.True(t, s.Loading())
			},
		},
		{
			name:  "clear error",
			start: State{Error: "boom"},
			in:    intent.ClearError{},
			check: func(t *testing.T, s State) {
				assert.False(t, s.HasError())
			},
		},
		{
			name: "empty error message is normalised",
			in:   intent.LoadListErr{},
			check: func(t *testing.T, s State) {
				assert.Equal(t, UnknownError, s.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Reduce(tt.start, tt.in))
		})
	}
}

func TestReduce_LoadingClearedOnlyByOwnKind(t *testing.T) {
	s := Reduce(State{}, intent.LoadList{})
	s = Reduce(s, intent.LoadProfile{HeroID: "1"})

	s = Reduce(s, intent.LoadListOK{})
	assert.True(t, s.Loading(), "profile fetch still outstanding")

	s = Reduce(s, intent.LoadProfileErr{Message: "x"})
	assert.False(t, s.Loading())
}

func TestReduce_DoesNotAliasPayload(t *testing.T) {
	heroes := []hero.Summary{{ID: "1"}}
	profile := hero.Profile{"str": 1}

	s := Reduce(State{}, intent.LoadListOK{Heroes: heroes})
	s = Reduce(s, intent.LoadProfileOK{Profile: profile})

	heroes[0].ID = "changed"
	profile["str"] = 7

	assert.Equal(t, "1", s.Heroes[0].ID)
	assert.Equal(t, 1, s.Ability["str"])
}

func TestStore_Apply(t *testing.T) {
	st := New()
	assert.Equal(t, State{}, st.Snapshot())

	st.Apply(intent.LoadList{})
	got := st.Apply(intent.LoadListOK{Heroes: []hero.Summary{{ID: "1", Name: "A", Image: "a.png"}}})

	assert.Equal(t, got, st.Snapshot())
	assert.Len(t, st.Snapshot().Heroes, 1)
	assert.False(t, st.Snapshot().Loading())
}
