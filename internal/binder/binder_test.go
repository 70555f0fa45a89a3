package binder

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avhrem/novelbind/internal/chapters"
	"github.com/avhrem/novelbind/internal/providers"
)

type stubResolver struct {
	calls   []string
	content map[string]string
	failOn  string
}

func (r *stubResolver) ResolveChapters(context.Context, string) (providers.Metadata, []providers.Chapter, error) {
	panic("not used")
}

func (r *stubResolver) FetchChapter(_ context.Context, url string) (string, string, error) {
	r.calls = append(r.calls, url)
	if url == r.failOn {
		return "", "", fmt.Errorf("chapter %s: HTTP 500", url)
	}
	return "Title for " + url, r.content[url], nil
}

type silentLogger struct{}

func (silentLogger) Debugf(string, ...any) {}
func (silentLogger) Warnf(string, ...any)  {}

func refs(urls ...string) []chapters.Chapter {
	out := make([]chapters.Chapter, len(urls))
	for i, u := range urls {
		out[i] = chapters.Chapter{Chapter: providers.Chapter{
			ChapterRef: providers.ChapterRef{Name: fmt.Sprintf("ch%d", i+1), URL: u},
		}}
	}
	return out
}

func TestFetchAll(t *testing.T) {
	t.Parallel()

	t.Run("fetches sequentially with a throttle before every request", func(t *testing.T) {
		t.Parallel()

		res := &stubResolver{content: map[string]string{
			"u1": "<p>one</p>",
			"u2": "<p>two</p>",
			"u3": "<p>three</p>",
		}}

		b := New(res, 250*time.Millisecond, false, silentLogger{})

		var sleeps []time.Duration
		b.sleep = func(d time.Duration) { sleeps = append(sleeps, d) }

		out, bytes, err := b.FetchAll(context.Background(), refs("u1", "u2", "u3"), nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"u1", "u2", "u3"}, res.calls, "strict reading order")
		require.Len(t, sleeps, 3, "one throttle delay per outbound request")
		for _, d := range sleeps {
			assert.Equal(t, 250*time.Millisecond, d)
		}

		require.Len(t, out, 3)
		assert.Equal(t, "Title for u2", out[1].Title)
		assert.Equal(t, "<p>two</p>", out[1].Content)
		assert.Equal(t, int64(len("<p>one</p>")+len("<p>two</p>")+len("<p>three</p>")), bytes)
	})

	t.Run("embedded chapters are not fetched again", func(t *testing.T) {
		t.Parallel()

		in := refs("u1", "u2")
		in[0].Content = "<p>already here</p>"

		res := &stubResolver{content: map[string]string{"u2": "<p>two</p>"}}
		b := New(res, time.Second, false, silentLogger{})
		b.sleep = func(time.Duration) {}

		out, _, err := b.FetchAll(context.Background(), in, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"u2"}, res.calls)
		require.Len(t, out, 2)
		assert.Equal(t, "<p>already here</p>", out[0].Content)
	})

	t.Run("a failed chapter aborts the run by default", func(t *testing.T) {
		t.Parallel()

		res := &stubResolver{failOn: "u2", content: map[string]string{"u1": "<p>one</p>"}}
		b := New(res, time.Second, false, silentLogger{})
		b.sleep = func(time.Duration) {}

		out, _, err := b.FetchAll(context.Background(), refs("u1", "u2", "u3"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chapter 2")
		assert.Len(t, out, 1, "chapters fetched before the failure are kept")
		assert.NotContains(t, res.calls, "u3", "fetching stops at the failure")
	})

	t.Run("skip-broken drops the failed chapter and continues", func(t *testing.T) {
		t.Parallel()

		res := &stubResolver{failOn: "u2", content: map[string]string{
			"u1": "<p>one</p>",
			"u3": "<p>three</p>",
		}}
		b := New(res, time.Second, true, silentLogger{})
		b.sleep = func(time.Duration) {}

		out, _, err := b.FetchAll(context.Background(), refs("u1", "u2", "u3"), nil)
		require.NoError(t, err)

		require.Len(t, out, 2)
		assert.Equal(t, "u1", out[0].URL)
		assert.Equal(t, "u3", out[1].URL)
	})

	t.Run("cancelled context stops the loop", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res := &stubResolver{}
		b := New(res, time.Second, false, silentLogger{})
		b.sleep = func(time.Duration) {}

		_, _, err := b.FetchAll(ctx, refs("u1"), nil)
		require.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, res.calls)
	})
}

func TestBind(t *testing.T) {
	t.Parallel()

	b := New(&stubResolver{}, time.Second, false, silentLogger{})

	groups, err := b.Bind(refs("u1", "u2", "u3", "u4", "u5"), 2, 1)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "1-2", groups[0].Label())
	assert.Equal(t, "5-5", groups[2].Label())

	_, err = b.Bind(refs("u1"), 0, 1)
	require.Error(t, err)
}
