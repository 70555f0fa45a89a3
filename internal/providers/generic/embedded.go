package generic

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/avhrem/novelbind/internal/providers"
)

// reEmbeddedID matches the per-chapter element ids used by mirrors that
// inline every chapter into the landing page.
var reEmbeddedID = regexp.MustCompile(`(?i)^chapter[-_]?\d+$`)

// embeddedChapters handles landing pages that carry the chapters inline:
// each matching container is both the reference and the content source,
// so no per-chapter fetch is needed.
func (s *Scraper) embeddedChapters(doc *goquery.Document, novelURL string) []providers.Chapter {
	var out []providers.Chapter

	doc.Find(`[class*="chapter"][id]`).Each(func(_ int, el *goquery.Selection) {
		id, _ := el.Attr("id")
		if !reEmbeddedID.MatchString(id) {
			return
		}

		title := prepareNode(el)

		inner, err := el.Html()
		if err != nil {
			return
		}
		content := s.clean.Clean(inner, novelURL)
		if strings.TrimSpace(content) == "" {
			return
		}

		name := title
		if name == "" {
			name = id
		}

		out = append(out, providers.Chapter{
			ChapterRef: providers.ChapterRef{Name: name, URL: novelURL + "#" + id},
			Title:      title,
			Content:    content,
		})
	})

	return out
}
