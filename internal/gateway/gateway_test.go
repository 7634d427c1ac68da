package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGateway_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET method, got '%s'", r.Method)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("Expected request id header")
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/heroes":
			_, _ = w.Write([]byte(`[{"id":"1","name":"A","image":"a.png"}]`))
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"not found"}`))
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`<html>oops</html>`))
		case "/garbage":
			_, _ = w.Write([]byte(`{"id":`))
		}
	}))
	defer server.Close()

	gw := New(DefaultConfig(), nil)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		res := gw.Get(ctx, server.URL+"/heroes")
		require.True(t, res.OK())
		assert.JSONEq(t, `[{"id":"1","name":"A","image":"a.png"}]`, string(res.Response))
	})

	t.Run("status with server message", func(t *testing.T) {
		res := gw.Get(ctx, server.URL+"/missing")
		require.False(t, res.OK())
		assert.Equal(t, ErrTypeStatus, res.Err.Type)
		assert.Equal(t, "not found", res.Err.Message)
		assert.Equal(t, http.StatusNotFound, res.Err.StatusCode)
		assert.True(t, IsStatus(res.Err, http.StatusNotFound))
	})

	t.Run("status without json body", func(t *testing.T) {
		res := gw.Get(ctx, server.URL+"/broken")
		require.False(t, res.OK())
		assert.Equal(t, "request failed with status 500", res.Err.Message)
	})

	t.Run("invalid json", func(t *testing.T) {
		res := gw.Get(ctx, server.URL+"/garbage")
		require.False(t, res.OK())
		assert.Equal(t, ErrTypeDecode, res.Err.Type)
	})

	t.Run("bad url never panics", func(t *testing.T) {
		res := gw.Get(ctx, "://nope")
		require.False(t, res.OK())
		assert.Equal(t, ErrTypeInternal, res.Err.Type)
	})
}

func TestHTTPGateway_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	res := New(Config{Timeout: time.Second}, nil).Get(context.Background(), url)
	require.False(t, res.OK())
	assert.Equal(t, ErrTypeNetwork, res.Err.Type)
	assert.NotNil(t, errors.Unwrap(res.Err))
}

func TestHTTPGateway_Canceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := New(DefaultConfig(), nil).Get(ctx, server.URL)
	require.False(t, res.OK())
	assert.Equal(t, ErrTypeCanceled, res.Err.Type)
}

func TestError_Is(t *testing.T) {
	err := NewErrorWithCause(ErrTypeNetwork, "down", errors.New("dial"))

	assert.True(t, errors.Is(err, NewError(ErrTypeNetwork, "")))
	assert.False(t, errors.Is(err, NewError(ErrTypeStatus, "")))
	assert.Equal(t, "type=network: down: cause=dial", err.Error())
}
