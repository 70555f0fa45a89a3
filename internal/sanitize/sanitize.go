// Package sanitize reduces scraped markup fragments to a minimal, safe
// form: scripts, styles, comments and known boilerplate containers are
// removed, resource links are rewritten to absolute URLs, and every
// element keeps only a small attribute allow-list.
package sanitize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/avhrem/novelbind/internal/dom"
	"github.com/avhrem/novelbind/internal/urlutil"
)

// RuleKind selects how a boilerplate rule matches an element.
type RuleKind string

const (
	// ClassContains removes elements whose class attribute contains the
	// pattern as a substring.
	ClassContains RuleKind = "class_contains"
	// TagIs removes elements whose tag name equals the pattern.
	TagIs RuleKind = "tag"
)

// Rule is one entry in the ordered boilerplate deny-list. The list is
// data, not code: new site mirrors are supported by extending the table.
type Rule struct {
	Kind    RuleKind `yaml:"kind"`
	Pattern string   `yaml:"pattern"`
}

// DefaultRules matches the navigation, sharing and rating chrome used
// across the supported site family.
func DefaultRules() []Rule {
	classes := []string{
		"breadcrumb", "navbar", "btn", "nav", "chr-nav", "novel-title",
		"toggle-nav-open", "report", "comment", "close-popup", "share",
		"rating", "pf-",
	}
	tags := []string{"aside", "footer", "header", "nav"}

	rules := make([]Rule, 0, len(classes)+len(tags))
	for _, c := range classes {
		rules = append(rules, Rule{Kind: ClassContains, Pattern: c})
	}
	for _, t := range tags {
		rules = append(rules, Rule{Kind: TagIs, Pattern: t})
	}

	return rules
}

var allowedAttrs = map[string]bool{
	"href":  true,
	"src":   true,
	"alt":   true,
	"title": true,
}

// keepSchemes are link values left alone by the absolute-URL rewrite.
var keepSchemes = []string{"http://", "https://", "data:", "mailto:", "tel:", "javascript:"}

type Sanitizer struct {
	rules []Rule
	text  *bluemonday.Policy
}

func New(rules []Rule) *Sanitizer {
	if rules == nil {
		rules = DefaultRules()
	}

	return &Sanitizer{
		rules: rules,
		text:  bluemonday.StrictPolicy(),
	}
}

// Clean runs the full pipeline over a markup fragment. Relative src and
// href values are rewritten against baseURL. If the parsed fragment has
// no body, the original input comes back unmodified.
func (s *Sanitizer) Clean(fragment, baseURL string) string {
	doc := dom.Load(fragment)

	body := doc.Find("body")
	if body.Length() == 0 {
		return fragment
	}

	body.Find("script, style, noscript").Remove()
	removeComments(body)

	s.removeBoilerplate(body)
	rewriteLinks(body, baseURL)
	stripAttrs(body)

	out, err := body.Html()
	if err != nil {
		return fragment
	}

	return out
}

// PlainText strips all markup from s, for metadata fields that must end
// up as bare text.
func (s *Sanitizer) PlainText(v string) string {
	return strings.TrimSpace(s.text.Sanitize(v))
}

func (s *Sanitizer) removeBoilerplate(root *goquery.Selection) {
	for _, r := range s.rules {
		switch r.Kind {
		case ClassContains:
			pattern := r.Pattern
			root.Find("[class]").Each(func(_ int, el *goquery.Selection) {
				class, _ := el.Attr("class")
				if strings.Contains(class, pattern) {
					el.Remove()
				}
			})
		case TagIs:
			root.Find(r.Pattern).Remove()
		}
	}
}

func rewriteLinks(root *goquery.Selection, baseURL string) {
	for _, attr := range []string{"src", "href"} {
		root.Find("[" + attr + "]").Each(func(_ int, el *goquery.Selection) {
			val, _ := el.Attr(attr)
			if val == "" || hasKeepScheme(val) {
				return
			}
			el.SetAttr(attr, urlutil.Resolve(baseURL, val))
		})
	}
}

func hasKeepScheme(val string) bool {
	low := strings.ToLower(strings.TrimSpace(val))
	for _, p := range keepSchemes {
		if strings.HasPrefix(low, p) {
			return true
		}
	}

	return false
}

func stripAttrs(root *goquery.Selection) {
	root.Find("*").Each(func(_ int, el *goquery.Selection) {
		for _, n := range el.Nodes {
			kept := n.Attr[:0]
			for _, a := range n.Attr {
				if allowedAttrs[a.Key] {
					kept = append(kept, a)
				}
			}
			n.Attr = kept
		}
	})
}

func removeComments(root *goquery.Selection) {
	for _, n := range root.Nodes {
		removeCommentNodes(n)
	}
}

func removeCommentNodes(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
			continue
		}
		removeCommentNodes(c)
	}
}
