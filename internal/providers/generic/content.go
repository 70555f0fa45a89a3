package generic

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// DefaultContentSelectors covers the id/class names the site family uses
// for chapter bodies, ending with the generic article/main safety net.
func DefaultContentSelectors() []string {
	return []string{
		"#chr-content",
		"#chapter-content",
		".chr-c",
		".chapter-content",
		"#content",
		".chapter-c",
		"article",
		"main",
	}
}

const (
	// paragraphWeight biases scoring toward a few long paragraphs over
	// many short ones.
	paragraphWeight = 500
	// minContentChars filters out noise candidates.
	minContentChars = 100
)

// nonContentSelector matches descendants that are never narrative text.
const nonContentSelector = `form, button, input, textarea, [class*="comment"], [class*="share"]`

var headingTags = []string{"h1", "h2", "h3", "h4"}

type candidate struct {
	node  *goquery.Selection
	score int
	title string
}

// locateContent scores candidate containers against the selector table
// and returns the winner's title and sanitized inner content. When no
// candidate ever scores, the whole body minus obvious chrome is used.
func (s *Scraper) locateContent(doc *goquery.Document, pageURL string) (string, string) {
	var best *candidate

	for _, sel := range s.opts.ContentSelectors {
		doc.Find(sel).Each(func(_ int, node *goquery.Selection) {
			c := scoreCandidate(node)
			if c == nil {
				return
			}
			if best == nil || c.score > best.score {
				best = c
			}
		})

		// First pattern with a positive-score winner ends the search;
		// broader patterns are a safety net, not a second opinion.
		if best != nil && best.score > 0 {
			break
		}
	}

	if best == nil {
		body := doc.Find("body")
		body.Find("script, style, nav, footer").Remove()
		inner, err := body.Html()
		if err != nil {
			return "", ""
		}
		return "", s.clean.Clean(inner, pageURL)
	}

	inner, err := best.node.Html()
	if err != nil {
		return best.title, ""
	}

	return best.title, s.clean.Clean(inner, pageURL)
}

// prepareNode strips non-content descendants and pulls the chapter title
// out of the node, removing the heading so it is not counted as body.
func prepareNode(node *goquery.Selection) string {
	node.Find(nonContentSelector).Remove()

	for _, tag := range headingTags {
		if h := node.Find(tag).First(); h.Length() > 0 {
			title := collapseChapterPrefix(strings.TrimSpace(h.Text()))
			h.Remove()
			return title
		}
	}

	return ""
}

func scoreCandidate(node *goquery.Selection) *candidate {
	// Score a detached clone so losing candidates leave the page intact
	// for the whole-body fallback.
	clone := node.Clone()
	title := prepareNode(clone)

	text := clone.Text()
	if utf8.RuneCountInString(strings.TrimSpace(text)) <= minContentChars {
		return nil
	}

	score := utf8.RuneCountInString(text) + paragraphWeight*clone.Find("p").Length()

	return &candidate{node: clone, score: score, title: title}
}

// reChapterPrefix matches one "Chapter N:"-style prefix. Kept as its own
// normalization step so the heuristic can be tuned in isolation.
var reChapterPrefix = regexp.MustCompile(`(?i)^chapter\s+\d+\s*[:.\-]\s*`)

// collapseChapterPrefix reduces "Chapter 5: Chapter 5: The Fall" to a
// single "Chapter 5:" occurrence. RE2 has no backreferences, so repeats
// are stripped by comparing successive prefix matches.
func collapseChapterPrefix(title string) string {
	first := reChapterPrefix.FindString(title)
	if first == "" {
		return title
	}

	rest := title[len(first):]
	for {
		next := reChapterPrefix.FindString(rest)
		if next == "" || !strings.EqualFold(strings.TrimSpace(next), strings.TrimSpace(first)) {
			break
		}
		rest = rest[len(next):]
	}

	return first + rest
}
