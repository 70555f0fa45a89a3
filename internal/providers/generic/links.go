package generic

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/avhrem/novelbind/internal/providers"
	"github.com/avhrem/novelbind/internal/urlutil"
)

// DefaultLinkSelectors are the static-scraping patterns, in decreasing
// specificity: dedicated chapter-list containers first, then any link
// that looks like it points at a chapter.
func DefaultLinkSelectors() []string {
	return []string{
		"ul.list-chapter li a[href]",
		".chapter-list a[href]",
		`a[href*="/chapter"]`,
	}
}

// scrapeChapterLinks is the last-resort strategy: walk the selector
// patterns in order and stop at the first one that yields any result.
func (s *Scraper) scrapeChapterLinks(doc *goquery.Document, novelURL string) []providers.Chapter {
	for _, sel := range s.opts.LinkSelectors {
		if out := collectChapterLinks(doc, sel, novelURL); len(out) > 0 {
			return out
		}
	}

	return nil
}

func collectChapterLinks(doc *goquery.Document, sel, novelURL string) []providers.Chapter {
	var out []providers.Chapter
	seen := map[string]bool{}

	doc.Find(sel).Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(strings.ToLower(href), "javascript:") {
			return
		}

		abs := urlutil.Resolve(novelURL, href)
		if seen[abs] {
			return
		}
		seen[abs] = true

		name := strings.TrimSpace(a.Text())
		if name == "" {
			name, _ = a.Attr("title")
			name = strings.TrimSpace(name)
		}

		out = append(out, providers.Chapter{
			ChapterRef: providers.ChapterRef{Name: name, URL: abs},
		})
	})

	return out
}
