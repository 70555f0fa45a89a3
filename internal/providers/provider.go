package providers

import (
	"context"
	"errors"
)

// ErrNoChapters is reported when every list-resolution strategy comes up
// empty: there is nothing to bind.
var ErrNoChapters = errors.New("no chapters found")

// ChapterRef identifies one chapter by its absolute URL. Order of refs is
// the site-declared reading order and is never re-sorted.
type ChapterRef struct {
	Name string
	URL  string
}

// Chapter is a ChapterRef plus content once fetched. Content stays empty
// until the chapter is fetched, except for chapters embedded directly in
// the landing page. A populated Content is treated as immutable.
type Chapter struct {
	ChapterRef
	Title   string
	Content string
}

// Fetched reports whether the chapter already carries content and needs
// no further request.
func (c Chapter) Fetched() bool {
	return c.Content != ""
}

// Metadata describes the novel itself, best effort. Empty string means
// unknown.
type Metadata struct {
	URL     string
	Title   string
	Author  string
	Summary string
	Cover   string
	Status  string
	Genre   string
}

// Resolver turns a novel landing page into an ordered chapter list and
// extracts individual chapters.
type Resolver interface {
	ResolveChapters(ctx context.Context, novelURL string) (Metadata, []Chapter, error)
	FetchChapter(ctx context.Context, chapterURL string) (title, content string, err error)
}
