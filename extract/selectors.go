package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Precompiled selectors, shared by all requests. cascadia selectors are
// immutable after compilation and safe for concurrent use.
var (
	selOGTitle     = cascadia.MustCompile(`meta[property='og:title']`)
	selTitle       = cascadia.MustCompile(`title`)
	selH1          = cascadia.MustCompile(`h1`)
	selTime        = cascadia.MustCompile(`time`)
	selDateClass   = cascadia.MustCompile(`[class*=date], [class*=time]`)
	selLocation    = cascadia.MustCompile(`[class*=venue], [class*=location], [itemprop*=location]`)
	selAddress     = cascadia.MustCompile(`address`)
	selAddrClass   = cascadia.MustCompile(`[class*=address]`)
	selDescription = cascadia.MustCompile(`meta[name='description']`)
	selParagraph   = cascadia.MustCompile(`p`)
	selAnchor      = cascadia.MustCompile(`a[href]`)
)

// step is one attempt in a fallback chain. It returns the raw, untrimmed
// value or "" when the selector found nothing.
type step func(doc *goquery.Document) string

// attrOf reads attr from the first element matching sel.
func attrOf(sel cascadia.Selector, attr string) step {
	return func(doc *goquery.Document) string {
		v, _ := doc.FindMatcher(sel).First().Attr(attr)
		return v
	}
}

// textOf reads the combined text of the first element matching sel.
func textOf(sel cascadia.Selector) step {
	return func(doc *goquery.Document) string {
		return doc.FindMatcher(sel).First().Text()
	}
}

// firstOf runs steps in order and returns the first non-empty value.
// Values are compared untrimmed, so a whitespace-only attribute still
// wins and is nulled later by optional.
func firstOf(doc *goquery.Document, steps ...step) string {
	for _, s := range steps {
		if v := s(doc); v != "" {
			return v
		}
	}
	return ""
}

// optional trims v and returns nil when nothing is left.
func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
