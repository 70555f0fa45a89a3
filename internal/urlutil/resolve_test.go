package urlutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avhrem/novelbind/internal/urlutil"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("absolute URLs pass through unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://other.com/x", urlutil.Resolve("https://x.com/a", "https://other.com/x"))
		assert.Equal(t, "http://other.com/x?q=1", urlutil.Resolve("https://x.com/a", "http://other.com/x?q=1"))
	})

	t.Run("scheme-relative takes the base's scheme", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://y.com/p", urlutil.Resolve("https://x.com", "//y.com/p"))
		assert.Equal(t, "http://y.com/p", urlutil.Resolve("http://x.com/a/b", "//y.com/p"))
	})

	t.Run("root-relative combines with scheme and host", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://x.com/z", urlutil.Resolve("https://x.com/a", "/z"))
		assert.Equal(t, "https://x.com:8080/z", urlutil.Resolve("https://x.com:8080/a/b/c", "/z"))
	})

	t.Run("directory-relative collapses dot segments", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://x.com/a/d", urlutil.Resolve("https://x.com/a/b/c", "../d"))
		assert.Equal(t, "https://x.com/a/b/d", urlutil.Resolve("https://x.com/a/b/c", "./d"))
		assert.Equal(t, "https://x.com/d", urlutil.Resolve("https://x.com/a/b/c", "../../d"))
		assert.Equal(t, "https://x.com/a/b/d", urlutil.Resolve("https://x.com/a/b/c", "d"))
	})

	t.Run("resolving an already-resolved URL is idempotent", func(t *testing.T) {
		t.Parallel()

		cases := [][2]string{
			{"https://x.com/a/b/c", "../d"},
			{"https://x.com/a", "/z"},
			{"https://x.com", "//y.com/p"},
			{"https://x.com/novel/", "chapter-1"},
		}

		for _, c := range cases {
			once := urlutil.Resolve(c[0], c[1])
			assert.Equal(t, once, urlutil.Resolve(c[0], once))
		}
	})

	t.Run("malformed base returns ref unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "/z", urlutil.Resolve("://not a url", "/z"))
		assert.Equal(t, "chapter-2", urlutil.Resolve("no-scheme-here", "chapter-2"))
	})

	t.Run("empty ref returns base", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://x.com/a", urlutil.Resolve("https://x.com/a", ""))
	})
}

func TestIsAbsolute(t *testing.T) {
	t.Parallel()

	assert.True(t, urlutil.IsAbsolute("https://x.com/a"))
	assert.False(t, urlutil.IsAbsolute("/a/b"))
	assert.False(t, urlutil.IsAbsolute("//x.com/a"))
}
