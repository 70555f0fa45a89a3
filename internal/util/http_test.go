package util

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransport struct {
	calls  int
	status int
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.calls++
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader("")),
		Request:    req,
	}, nil
}

func TestDoWithRetry(t *testing.T) {
	t.Parallel()

	t.Run("status below 500 is final on the first attempt", func(t *testing.T) {
		t.Parallel()

		st := &stubTransport{status: 404}
		client := &http.Client{Transport: st}
		req, err := http.NewRequest("GET", "http://site.example/x", nil)
		require.NoError(t, err)

		resp, err := DoWithRetry(client, req, 3, time.Millisecond)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, 404, resp.StatusCode)
		assert.Equal(t, 1, st.calls)
	})

	t.Run("server errors are retried up to the attempt limit", func(t *testing.T) {
		t.Parallel()

		st := &stubTransport{status: 500}
		client := &http.Client{Transport: st}
		req, err := http.NewRequest("GET", "http://site.example/x", nil)
		require.NoError(t, err)

		_, err = DoWithRetry(client, req, 3, time.Millisecond)
		require.Error(t, err)

		assert.Equal(t, 3, st.calls)
		assert.Contains(t, err.Error(), "HTTP 500 after 3 attempts")
	})

	t.Run("no backoff delay after the final attempt", func(t *testing.T) {
		t.Parallel()

		st := &stubTransport{status: 500}
		client := &http.Client{Transport: st}
		req, err := http.NewRequest("GET", "http://site.example/x", nil)
		require.NoError(t, err)

		// Linear backoff of 60ms over 3 attempts sleeps 60+120ms between
		// attempts; a trailing sleep on the give-up path would double that.
		start := time.Now()
		_, err = DoWithRetry(client, req, 3, 60*time.Millisecond)
		elapsed := time.Since(start)

		require.Error(t, err)
		assert.Less(t, elapsed, 300*time.Millisecond)
	})
}
