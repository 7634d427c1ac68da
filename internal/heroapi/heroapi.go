// Package heroapi knows the remote hero API: where its endpoints live and
// what their bodies look like.
package heroapi

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/yildizm/heroboard/internal/gateway"
	"github.com/yildizm/heroboard/internal/hero"
)

// DefaultBaseURL is the public hero API
const DefaultBaseURL = "https://hahow-recruit.herokuapp.com"

// Endpoints builds request URLs against a base URL
type Endpoints struct {
	BaseURL string
}

// ListURL returns the hero list endpoint
func (e Endpoints) ListURL() string {
	return e.base() + "/heroes"
}

// ProfileURL returns the profile endpoint of one hero
func (e Endpoints) ProfileURL(heroID string) string {
	return e.base() + "/heroes/" + url.PathEscape(heroID) + "/profile"
}

func (e Endpoints) base() string {
	if e.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(e.BaseURL, "/")
}

// DecodeList turns a list body into summaries
func DecodeList(raw json.RawMessage) ([]hero.Summary, *gateway.Error) {
	if err := inBandError(raw); err != nil {
		return nil, err
	}
	if !gjson.ParseBytes(raw).IsArray() {
		return nil, gateway.NewError(gateway.ErrTypeDecode, "unexpected hero list format")
	}

	var heroes []hero.Summary
	if err := json.Unmarshal(raw, &heroes); err != nil {
		return nil, gateway.NewErrorWithCause(gateway.ErrTypeDecode, "unexpected hero list format", err)
	}
	for i, h := range heroes {
		if h.ID == "" {
			return nil, gateway.NewError(gateway.ErrTypeDecode, fmt.Sprintf("hero at position %d has no id", i))
		}
	}
	return heroes, nil
}

// DecodeProfile turns a profile body into ability scores
func DecodeProfile(raw json.RawMessage) (hero.Profile, *gateway.Error) {
	if err := inBandError(raw); err != nil {
		return nil, err
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return nil, gateway.NewError(gateway.ErrTypeDecode, "unexpected hero profile format")
	}

	var profile hero.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, gateway.NewErrorWithCause(gateway.ErrTypeDecode, "unexpected hero profile format", err)
	}
	return profile, nil
}

// inBandError detects the API's success-status error body,
// e.g. {"code":1000,"message":"Backend error"}.
func inBandError(raw json.RawMessage) *gateway.Error {
	body := gjson.ParseBytes(raw)
	if !body.IsObject() {
		return nil
	}
	code := body.Get("code")
	msg := body.Get("message")
	if code.Exists() && msg.Type == gjson.String {
		return &gateway.Error{Type: gateway.ErrTypeStatus, Message: msg.String()}
	}
	return nil
}
