// Package gateway performs the page's HTTP reads. Get never panics and never
// returns a Go error: every failure is reported in Result.Err.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/yildizm/heroboard/internal/logger"
)

// maxBodyBytes caps how much of a response body is read
const maxBodyBytes = 4 << 20

// Result is the settled outcome of a Get. Exactly one of Response and Err
// is set.
type Result struct {
	Response json.RawMessage
	Err      *Error
}

// OK reports whether the call succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// Gateway is the HTTP capability the effect coordinator depends on
type Gateway interface {
	Get(ctx context.Context, url string) Result
}

// Config holds HTTP gateway settings
type Config struct {
	// Timeout for a single request
	Timeout time.Duration

	// UserAgent sent with each request
	UserAgent string
}

// DefaultConfig returns the default gateway configuration
func DefaultConfig() Config {
	return Config{
		Timeout:   10 * time.Second,
		UserAgent: "heroboard",
	}
}

// HTTPGateway implements Gateway over net/http
type HTTPGateway struct {
	config Config
	client *http.Client
	log    *logger.Logger
}

// New creates an HTTP gateway
func New(config Config, log *logger.Logger) *HTTPGateway {
	if log == nil {
		log = logger.NewNop()
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	return &HTTPGateway{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		log:    log.WithComponent("gateway"),
	}
}

// Get fetches url and returns its JSON body
func (g *HTTPGateway) Get(ctx context.Context, url string) (result Result) {
	requestID := uuid.NewString()
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = Result{Err: &Error{
				Type:    ErrTypeInternal,
				Message: fmt.Sprintf("request failed: %v", r),
				URL:     url,
			}}
		}
		fields := []logger.Field{
			logger.F("request_id", requestID),
			logger.F("url", url),
			logger.Duration(time.Since(start)),
		}
		if result.Err != nil {
			fields = append(fields, logger.Error(result.Err))
			g.log.WarnWithFields("GET failed", fields)
			return
		}
		g.log.DebugWithFields("GET ok", fields)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return failure(ErrTypeInternal, "failed to create request", url, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if g.config.UserAgent != "" {
		req.Header.Set("User-Agent", g.config.UserAgent)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return failure(ErrTypeCanceled, "request canceled", url, err)
		}
		return failure(ErrTypeNetwork, "network error: could not reach server", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return failure(ErrTypeNetwork, "failed to read response", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{Err: &Error{
			Type:       ErrTypeStatus,
			Message:    statusMessage(resp.StatusCode, body),
			StatusCode: resp.StatusCode,
			URL:        url,
		}}
	}

	if !json.Valid(body) {
		return failure(ErrTypeDecode, "server returned invalid JSON", url, nil)
	}

	return Result{Response: json.RawMessage(body)}
}

func failure(errType ErrorType, message, url string, cause error) Result {
	return Result{Err: &Error{Type: errType, Message: message, URL: url, Cause: cause}}
}

// statusMessage prefers the server's own message over a generic one
func statusMessage(code int, body []byte) string {
	if gjson.ValidBytes(body) {
		for _, path := range []string{"message", "error.message", "error"} {
			if v := gjson.GetBytes(body, path); v.Type == gjson.String && v.String() != "" {
				return v.String()
			}
		}
	}
	return fmt.Sprintf("request failed with status %d", code)
}
