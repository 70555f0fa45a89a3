package chapters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avhrem/novelbind/internal/chapters"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	all := makeChapters(20)

	t.Run("no selectors returns everything", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, chapters.Select(all, "", "", ""), 20)
	})

	t.Run("single index", func(t *testing.T) {
		t.Parallel()

		got := chapters.Select(all, "5", "", "")
		require.Len(t, got, 1)
		assert.Equal(t, "Chapter 5", got[0].Name)
	})

	t.Run("single index out of bounds is empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, chapters.Select(all, "21", "", ""))
		assert.Empty(t, chapters.Select(all, "0", "", ""))
	})

	t.Run("range selects a contiguous slice", func(t *testing.T) {
		t.Parallel()

		got := chapters.SelectRange(all, "3-7")
		require.Len(t, got, 5)
		assert.Equal(t, "Chapter 3", got[0].Name)
		assert.Equal(t, "Chapter 7", got[4].Name)
	})

	t.Run("invalid ranges are nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, chapters.SelectRange(all, "7-3"))
		assert.Nil(t, chapters.SelectRange(all, "1-999"))
		assert.Nil(t, chapters.SelectRange(all, "abc"))
	})

	t.Run("list picks individual indices, skipping junk", func(t *testing.T) {
		t.Parallel()

		got := chapters.SelectList(all, "1, 3,oops, 99 ,5")
		require.Len(t, got, 3)
		assert.Equal(t, "Chapter 1", got[0].Name)
		assert.Equal(t, "Chapter 3", got[1].Name)
		assert.Equal(t, "Chapter 5", got[2].Name)
	})
}

func TestDisplayTitle(t *testing.T) {
	t.Parallel()

	ch := makeChapters(1)[0]
	assert.Equal(t, "Chapter 1", ch.DisplayTitle())

	ch.Title = "Chapter 1: A Proper Title"
	assert.Equal(t, "Chapter 1: A Proper Title", ch.DisplayTitle(), "page title overrides the list name")
}

func TestSlug(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "rise_of_the_tester", chapters.Slug("Rise of the Tester"))
	assert.Equal(t, "vol_1_dawn", chapters.Slug("Vol. 1 — Dawn!"))
	assert.Equal(t, "", chapters.Slug("***"))
}
