// Package dom parses raw markup into a queryable goquery tree. Parsing is
// tolerant: malformed or truncated input still yields a best-effort tree.
package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// charsetDirective is injected ahead of every document so the parser
// treats the input as UTF-8 no matter what the page declares.
const charsetDirective = `<meta charset="utf-8">`

// Load parses markup into a document. It never fails: input the parser
// cannot make sense of still comes back as an (possibly empty) tree.
func Load(markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(charsetDirective + markup))
	if err != nil {
		empty, _ := goquery.NewDocumentFromReader(strings.NewReader(""))
		return empty
	}

	return doc
}
