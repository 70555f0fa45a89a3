package generic

import (
	"context"
	"fmt"

	"github.com/avhrem/novelbind/internal/dom"
	"github.com/avhrem/novelbind/internal/providers"
	"github.com/avhrem/novelbind/internal/sanitize"
)

// Logger is the slice of the ui logger the scraper needs.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Options carries the selector tables driving the heuristics. Every
// table is data so new mirrors can be supported without code changes.
type Options struct {
	// ContentSelectors are tried in order against a chapter page; the
	// first pattern producing a positive-score candidate wins.
	ContentSelectors []string
	// LinkSelectors are the static-scraping patterns, most specific
	// first.
	LinkSelectors []string
	// ArchivePath is the site-internal chapter archive endpoint,
	// relative to the novel URL, with the novel id appended.
	ArchivePath string
}

func DefaultOptions() Options {
	return Options{
		ContentSelectors: DefaultContentSelectors(),
		LinkSelectors:    DefaultLinkSelectors(),
		ArchivePath:      "/ajax/chapter-archive?novelId=",
	}
}

func (o *Options) fillDefaults() {
	def := DefaultOptions()
	if len(o.ContentSelectors) == 0 {
		o.ContentSelectors = def.ContentSelectors
	}
	if len(o.LinkSelectors) == 0 {
		o.LinkSelectors = def.LinkSelectors
	}
	if o.ArchivePath == "" {
		o.ArchivePath = def.ArchivePath
	}
}

type Scraper struct {
	fetch providers.Fetcher
	clean *sanitize.Sanitizer
	log   Logger
	opts  Options
}

func NewScraper(fetch providers.Fetcher, clean *sanitize.Sanitizer, log Logger, opts Options) *Scraper {
	opts.fillDefaults()

	if clean == nil {
		clean = sanitize.New(nil)
	}

	return &Scraper{
		fetch: fetch,
		clean: clean,
		log:   log,
		opts:  opts,
	}
}

// ResolveChapters fetches the novel landing page and resolves its
// ordered chapter list. Strategies run in strict order — embedded
// containers, the dynamic archive endpoint, then static link scraping —
// and the first one yielding at least one chapter wins. No chapter
// content is fetched here beyond what the landing page already embeds.
func (s *Scraper) ResolveChapters(ctx context.Context, novelURL string) (providers.Metadata, []providers.Chapter, error) {
	page, err := s.fetch.Fetch(ctx, novelURL, nil)
	if err != nil {
		return providers.Metadata{}, nil, fmt.Errorf("novel page %s: %w", novelURL, err)
	}

	doc := dom.Load(page)
	meta := s.extractMetadata(doc, novelURL)

	if chs := s.embeddedChapters(doc, novelURL); len(chs) > 0 {
		s.log.Debugf("resolved %d chapters embedded in landing page\n", len(chs))
		return meta, chs, nil
	}

	if chs := s.archiveChapters(ctx, doc, novelURL); len(chs) > 0 {
		s.log.Debugf("resolved %d chapters via archive endpoint\n", len(chs))
		return meta, chs, nil
	}

	if chs := s.scrapeChapterLinks(doc, novelURL); len(chs) > 0 {
		s.log.Debugf("resolved %d chapters via link scraping\n", len(chs))
		return meta, chs, nil
	}

	return meta, nil, fmt.Errorf("%s: %w", novelURL, providers.ErrNoChapters)
}

// FetchChapter retrieves one chapter page and extracts its title and
// sanitized body. A page without a recognizable title or body degrades
// to empty strings; only transport failure is an error.
func (s *Scraper) FetchChapter(ctx context.Context, chapterURL string) (string, string, error) {
	page, err := s.fetch.Fetch(ctx, chapterURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("chapter %s: %w", chapterURL, err)
	}

	title, content := s.locateContent(dom.Load(page), chapterURL)

	return title, content, nil
}
