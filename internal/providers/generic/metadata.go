package generic

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/avhrem/novelbind/internal/providers"
	"github.com/avhrem/novelbind/internal/urlutil"
)

// extractMetadata pulls the novel description off the landing page, best
// effort. Every field degrades to the empty string.
func (s *Scraper) extractMetadata(doc *goquery.Document, novelURL string) providers.Metadata {
	meta := providers.Metadata{URL: novelURL}

	meta.Title = firstText(doc, "h3.title", "h1.title", "h1")
	if meta.Title == "" {
		meta.Title = metaContent(doc, "og:title")
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	meta.Author = firstText(doc, `a[href*="/author"]`, `a[href*="/a/"]`)
	if meta.Author == "" {
		meta.Author = infoField(doc, "author")
	}

	meta.Summary = s.clean.PlainText(firstText(doc, ".desc-text", ".summary", ".description"))
	if meta.Summary == "" {
		meta.Summary = s.clean.PlainText(metaContent(doc, "og:description"))
	}

	if img := doc.Find(".book img, .cover img").First(); img.Length() > 0 {
		if src, ok := img.Attr("src"); ok {
			meta.Cover = urlutil.Resolve(novelURL, strings.TrimSpace(src))
		}
	}
	if meta.Cover == "" {
		if og := metaContent(doc, "og:image"); og != "" {
			meta.Cover = urlutil.Resolve(novelURL, og)
		}
	}

	meta.Status = infoField(doc, "status")
	meta.Genre = infoField(doc, "genre")

	return meta
}

func firstText(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if el := doc.Find(sel).First(); el.Length() > 0 {
			if v := strings.TrimSpace(el.Text()); v != "" {
				return v
			}
		}
	}

	return ""
}

func metaContent(doc *goquery.Document, property string) string {
	var out string
	doc.Find("meta").EachWithBreak(func(_ int, m *goquery.Selection) bool {
		p, _ := m.Attr("property")
		n, _ := m.Attr("name")
		if p != property && n != property {
			return true
		}
		out, _ = m.Attr("content")
		out = strings.TrimSpace(out)
		return false
	})

	return out
}

// infoField scans the landing page's info list for a "Label: value" row.
func infoField(doc *goquery.Document, label string) string {
	var out string

	doc.Find(".info li, .info-meta li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		text := strings.TrimSpace(li.Text())
		low := strings.ToLower(text)
		if !strings.HasPrefix(low, label) {
			return true
		}

		if i := strings.Index(text, ":"); i >= 0 {
			out = strings.TrimSpace(text[i+1:])
		}
		return out == ""
	})

	return out
}
