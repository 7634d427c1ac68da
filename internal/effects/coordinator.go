// Package effects turns request intents into HTTP calls and their outcomes
// back into resolution intents. Only the most recently started request of
// each kind may resolve into state; older results are dropped.
package effects

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/heroboard/internal/gateway"
	"github.com/yildizm/heroboard/internal/heroapi"
	"github.com/yildizm/heroboard/internal/intent"
	"github.com/yildizm/heroboard/internal/logger"
)

// Stats counts effect outcomes for one request kind
type Stats struct {
	Started int64
	Applied int64
	Dropped int64
}

// Coordinator maps request intents to effects. Handle and Admit must be
// called from the goroutine that applies intents to the store.
type Coordinator struct {
	ctx       context.Context
	gw        gateway.Gateway
	endpoints heroapi.Endpoints
	log       *logger.Logger

	listGen    uint64
	profileGen uint64

	stats map[intent.Kind]*counters
}

type counters struct {
	started atomic.Int64
	applied atomic.Int64
	dropped atomic.Int64
}

// New creates a coordinator. ctx bounds every effect it starts.
func New(ctx context.Context, gw gateway.Gateway, endpoints heroapi.Endpoints, log *logger.Logger) *Coordinator {
	if log == nil {
		log = logger.NewNop()
	}
	return &Coordinator{
		ctx:       ctx,
		gw:        gw,
		endpoints: endpoints,
		log:       log.WithComponent("effects"),
		stats: map[intent.Kind]*counters{
			intent.KindLoadList:    {},
			intent.KindLoadProfile: {},
		},
	}
}

// Admit reports whether an intent may reach the store. Stale resolutions
// and profile requests without a hero id are refused.
func (c *Coordinator) Admit(in intent.Intent) bool {
	switch in := in.(type) {
	case intent.LoadProfile:
		if in.HeroID == "" {
			c.log.Debug("ignoring %s without hero id", in.Kind())
			return false
		}
		return true
	case intent.Resolution:
		kind, _ := intent.Request(in)
		current := c.generation(kind)
		if in.Gen() != current {
			c.stats[kind].dropped.Add(1)
			c.log.DebugWithFields("dropping superseded result", []logger.Field{
				logger.F("kind", in.Kind().String()),
				logger.F("generation", in.Gen()),
				logger.F("current", current),
			})
			return false
		}
		c.stats[kind].applied.Add(1)
		return true
	default:
		return true
	}
}

// Handle starts the effect for a request intent. It returns nil for intents
// that have no effect.
func (c *Coordinator) Handle(in intent.Intent) tea.Cmd {
	switch in := in.(type) {
	case intent.LoadList:
		c.listGen++
		c.stats[intent.KindLoadList].started.Add(1)
		return c.fetchList(c.listGen)
	case intent.LoadProfile:
		if in.HeroID == "" {
			return nil
		}
		c.profileGen++
		c.stats[intent.KindLoadProfile].started.Add(1)
		return c.fetchProfile(in.HeroID, c.profileGen)
	default:
		// EditProfile is local only; resolutions and ClearError have no effect.
		return nil
	}
}

// Stats returns counters for a request kind
func (c *Coordinator) Stats(kind intent.Kind) Stats {
	ct, ok := c.stats[kind]
	if !ok {
		return Stats{}
	}
	return Stats{
		Started: ct.started.Load(),
		Applied: ct.applied.Load(),
		Dropped: ct.dropped.Load(),
	}
}

func (c *Coordinator) generation(kind intent.Kind) uint64 {
	if kind == intent.KindLoadList {
		return c.listGen
	}
	return c.profileGen
}

func (c *Coordinator) fetchList(gen uint64) tea.Cmd {
	url := c.endpoints.ListURL()
	return func() (msg tea.Msg) {
		defer recoverInto(&msg, func(text string) tea.Msg {
			return intent.LoadListErr{Message: text, Generation: gen}
		})

		start := time.Now()
		res := c.gw.Get(c.ctx, url)
		c.log.DebugWithFields("list fetch settled", []logger.Field{
			logger.F("generation", gen),
			logger.F("ok", res.OK()),
			logger.Duration(time.Since(start)),
		})
		if !res.OK() {
			return intent.LoadListErr{Message: res.Err.Message, Generation: gen}
		}

		heroes, err := heroapi.DecodeList(res.Response)
		if err != nil {
			return intent.LoadListErr{Message: err.Message, Generation: gen}
		}
		return intent.LoadListOK{Heroes: heroes, Generation: gen}
	}
}

func (c *Coordinator) fetchProfile(heroID string, gen uint64) tea.Cmd {
	url := c.endpoints.ProfileURL(heroID)
	return func() (msg tea.Msg) {
		defer recoverInto(&msg, func(text string) tea.Msg {
			return intent.LoadProfileErr{HeroID: heroID, Message: text, Generation: gen}
		})

		start := time.Now()
		res := c.gw.Get(c.ctx, url)
		c.log.DebugWithFields("profile fetch settled", []logger.Field{
			logger.F("hero_id", heroID),
			logger.F("generation", gen),
			logger.F("ok", res.OK()),
			logger.Duration(time.Since(start)),
		})
		if !res.OK() {
			return intent.LoadProfileErr{HeroID: heroID, Message: res.Err.Message, Generation: gen}
		}

		profile, err := heroapi.DecodeProfile(res.Response)
		if err != nil {
			return intent.LoadProfileErr{HeroID: heroID, Message: err.Message, Generation: gen}
		}
		return intent.LoadProfileOK{HeroID: heroID, Profile: profile, Generation: gen}
	}
}

// recoverInto converts a panic inside an effect into an error intent
func recoverInto(msg *tea.Msg, toErr func(string) tea.Msg) {
	if r := recover(); r != nil {
		*msg = toErr(fmt.Sprintf("unexpected failure: %v", r))
	}
}
