package effects

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildizm/heroboard/internal/gateway"
	"github.com/yildizm/heroboard/internal/hero"
	"github.com/yildizm/heroboard/internal/heroapi"
	"github.com/yildizm/heroboard/internal/intent"
)

// stubGateway answers from a fixed URL table
type stubGateway struct {
	mu        sync.Mutex
	responses map[string]gateway.Result
	calls     []string
	panicOn   string
}

func (s *stubGateway) Get(_ context.Context, url string) gateway.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, url)
	if url == s.panicOn {
		panic("transport exploded")
	}
	if res, ok := s.responses[url]; ok {
		return res
	}
	return gateway.Result{Err: gateway.NewError(gateway.ErrTypeStatus, "not found")}
}

var endpoints = heroapi.Endpoints{BaseURL: "http://api"}

func newCoordinator(gw gateway.Gateway) *Coordinator {
	return New(context.Background(), gw, endpoints, nil)
}

func TestCoordinator_LoadList(t *testing.T) {
	gw := &stubGateway{responses: map[string]gateway.Result{
		endpoints.ListURL(): {Response: json.RawMessage(`[{"id":"1","name":"A","image":"a.png"}]`)},
	}}
	c := newCoordinator(gw)

	cmd := c.Handle(intent.LoadList{})
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, intent.LoadListOK{
		Heroes:     []hero.Summary{{ID: "1", Name: "A", Image: "a.png"}},
		Generation: 1,
	}, msg)
	assert.Equal(t, []string{"http://api/heroes"}, gw.calls)
}

func TestCoordinator_LoadProfileError(t *testing.T) {
	gw := &stubGateway{responses: map[string]gateway.Result{
		endpoints.ProfileURL("1"): {Err: gateway.NewError(gateway.ErrTypeStatus, "not found")},
	}}
	c := newCoordinator(gw)

	msg := c.Handle(intent.LoadProfile{HeroID: "1"})()
	assert.Equal(t, intent.LoadProfileErr{HeroID: "1", Message: "not found", Generation: 1}, msg)
}

func TestCoordinator_DecodeFailureBecomesError(t *testing.T) {
	gw := &stubGateway{responses: map[string]gateway.Result{
		endpoints.ListURL(): {Response: json.RawMessage(`{"code":1000,"message":"Backend error"}`)},
	}}
	c := newCoordinator(gw)

	msg := c.Handle(intent.LoadList{})()
	assert.Equal(t, intent.LoadListErr{Message: "Backend error", Generation: 1}, msg)
}

func TestCoordinator_PanicBecomesError(t *testing.T) {
	gw := &stubGateway{panicOn: endpoints.ProfileURL("7")}
	c := newCoordinator(gw)

	var msg interface{}
	assert.NotPanics(t, func() {
		msg = c.Handle(intent.LoadProfile{HeroID: "7"})()
	})
	errMsg, ok := msg.(intent.LoadProfileErr)
	require.True(t, ok)
	assert.Contains(t, errMsg.Message, "transport exploded")
	assert.Equal(t, uint64(1), errMsg.Generation)
}

func TestCoordinator_NoEffectIntents(t *testing.T) {
	c := newCoordinator(&stubGateway{})

	assert.Nil(t, c.Handle(intent.EditProfile{HeroID: "1", Profile: hero.Profile{"str": 1}}))
	assert.Nil(t, c.Handle(intent.ClearError{}))
	assert.Nil(t, c.Handle(intent.LoadListOK{}))
	assert.Nil(t, c.Handle(intent.LoadProfile{}))
}

func TestCoordinator_AdmitLatestWins(t *testing.T) {
	c := newCoordinator(&stubGateway{})

	first := c.Handle(intent.LoadList{})
	second := c.Handle(intent.LoadList{})
	require.NotNil(t, first)
	require.NotNil(t, second)

	// The newer request settles first, then the stale one.
	newer := second()
	older := first()

	assert.True(t, c.Admit(newer.(intent.Intent)))
	assert.False(t, c.Admit(older.(intent.Intent)))

	stats := c.Stats(intent.KindLoadList)
	assert.Equal(t, Stats{Started: 2, Applied: 1, Dropped: 1}, stats)
}

func TestCoordinator_IndependentGenerations(t *testing.T) {
	c := newCoordinator(&stubGateway{})

	c.Handle(intent.LoadList{})
	c.Handle(intent.LoadProfile{HeroID: "1"})
	c.Handle(intent.LoadProfile{HeroID: "2"})

	assert.True(t, c.Admit(intent.LoadListOK{Generation: 1}), "profile requests must not supersede list requests")
	assert.False(t, c.Admit(intent.LoadProfileOK{HeroID: "1", Generation: 1}))
	assert.True(t, c.Admit(intent.LoadProfileErr{HeroID: "2", Generation: 2}))
}

func TestCoordinator_AdmitRequests(t *testing.T) {
	c := newCoordinator(&stubGateway{})

	assert.True(t, c.Admit(intent.LoadList{}))
	assert.True(t, c.Admit(intent.LoadProfile{HeroID: "1"}))
	assert.False(t, c.Admit(intent.LoadProfile{}))
	assert.True(t, c.Admit(intent.EditProfile{}))
	assert.True(t, c.Admit(intent.ClearError{}))
	assert.Equal(t, Stats{}, c.Stats(intent.KindEditProfile))
}
