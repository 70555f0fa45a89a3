package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avhrem/novelbind/internal/chapters"
	"github.com/avhrem/novelbind/internal/output"
	"github.com/avhrem/novelbind/internal/providers"
)

func testGroup() (providers.Metadata, chapters.Group) {
	meta := providers.Metadata{
		URL:    "https://site.example/novel/rise",
		Title:  "Rise of the Tester",
		Author: "Jane Dev",
	}

	g := chapters.Group{
		Start: 101,
		End:   102,
		Chapters: []chapters.Chapter{
			{Chapter: providers.Chapter{
				ChapterRef: providers.ChapterRef{Name: "Chapter 101"},
				Title:      "Chapter 101: Onward",
				Content:    "<p>First part.</p>",
			}},
			{Chapter: providers.Chapter{
				ChapterRef: providers.ChapterRef{Name: "Chapter 102"},
				Content:    "<p>Second part with <em>emphasis</em>.</p>",
			}},
		},
	}

	return meta, g
}

func TestWriteGroup(t *testing.T) {
	t.Parallel()

	t.Run("html volume", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w, err := output.NewWriter(dir, output.FormatHTML)
		require.NoError(t, err)

		meta, g := testGroup()
		path, size, err := w.WriteGroup(meta, g)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "rise_of_the_tester_0101-0102.html"), path)
		assert.Positive(t, size)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		html := string(raw)

		assert.Contains(t, html, "Rise of the Tester")
		assert.Contains(t, html, "by Jane Dev")
		assert.Contains(t, html, "101. Chapter 101: Onward")
		assert.Contains(t, html, "<p>First part.</p>", "sanitized content is embedded unescaped")
		assert.Contains(t, html, "102. Chapter 102", "list name is the fallback title")
	})

	t.Run("markdown volume", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w, err := output.NewWriter(dir, output.FormatMarkdown)
		require.NoError(t, err)

		meta, g := testGroup()
		path, _, err := w.WriteGroup(meta, g)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "rise_of_the_tester_0101-0102.md"), path)

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		md := string(raw)

		assert.Contains(t, md, "# Rise of the Tester")
		assert.Contains(t, md, "## 101. Chapter 101: Onward")
		assert.Contains(t, md, "First part.")
		assert.Contains(t, md, "_emphasis_")
		assert.NotContains(t, md, "<p>")
	})

	t.Run("no partial files remain after a successful write", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w, err := output.NewWriter(dir, output.FormatHTML)
		require.NoError(t, err)

		meta, g := testGroup()
		_, _, err = w.WriteGroup(meta, g)
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".partial")
		}
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := output.NewWriter(t.TempDir(), "pdf")
		require.Error(t, err)
	})
}
