package generic

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/avhrem/novelbind/internal/dom"
	"github.com/avhrem/novelbind/internal/providers"
	"github.com/avhrem/novelbind/internal/urlutil"
)

// novelIDAttrs are the attributes mirrors use to stamp their internal
// novel identifier onto the landing page.
var novelIDAttrs = []string{"data-novel-id", "data-nid"}

// archiveChapters asks the site's chapter archive endpoint for the full
// list, keyed by the internal novel id found on the landing page. The
// request is marked programmatic via X-Requested-With. Any failure here
// is non-fatal: it is logged and the next strategy takes over.
func (s *Scraper) archiveChapters(ctx context.Context, doc *goquery.Document, novelURL string) []providers.Chapter {
	id := findNovelID(doc)
	if id == "" {
		return nil
	}

	endpoint := urlutil.Resolve(novelURL, s.opts.ArchivePath+url.QueryEscape(id))

	header := http.Header{}
	header.Set("X-Requested-With", "XMLHttpRequest")

	body, err := s.fetch.Fetch(ctx, endpoint, header)
	if err != nil {
		s.log.Errorf("chapter archive %s: %v\n", endpoint, err)
		return nil
	}

	// The endpoint returns an ordered list structure of name+link pairs.
	return collectChapterLinks(dom.Load(body), "ul li a[href], ol li a[href]", novelURL)
}

func findNovelID(doc *goquery.Document) string {
	for _, attr := range novelIDAttrs {
		if el := doc.Find("[" + attr + "]").First(); el.Length() > 0 {
			if v, ok := el.Attr(attr); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
	}

	return ""
}
