package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/delray/scrapebot/models"
	"golang.org/x/net/html"
)

// MaxLinks caps the number of hrefs returned by Links.
const MaxLinks = 20

var (
	titleChain    = []step{attrOf(selOGTitle, "content"), textOf(selTitle), textOf(selH1)}
	startChain    = []step{attrOf(selTime, "datetime"), textOf(selTime), textOf(selDateClass)}
	locationChain = []step{textOf(selLocation)}
	addressChain  = []step{textOf(selAddress), textOf(selAddrClass)}
	summaryChain  = []step{attrOf(selDescription, "content"), textOf(selParagraph)}
)

// Parse builds a queryable document from rawHTML. The HTML5 parser
// tolerates truncated or malformed markup; if parsing still fails an
// empty document is returned so extraction always has something to query.
func Parse(rawHTML string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})
	}
	return doc
}

// Guess applies the fixed fallback chains to doc. End is never set.
func Guess(doc *goquery.Document) models.EventGuess {
	return models.EventGuess{
		EventTitle: optional(firstOf(doc, titleChain...)),
		Start:      optional(firstOf(doc, startChain...)),
		End:        nil,
		Location:   optional(firstOf(doc, locationChain...)),
		Address:    optional(firstOf(doc, addressChain...)),
		Summary:    optional(firstOf(doc, summaryChain...)),
	}
}

// Links returns the href of every anchor in document order, skipping
// empty and fragment-only ("#...") values, capped at MaxLinks. The result
// is never nil.
func Links(doc *goquery.Document) []string {
	links := make([]string, 0, MaxLinks)
	doc.FindMatcher(selAnchor).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, exists := s.Attr("href")
		if !exists || href == "" || strings.HasPrefix(href, "#") {
			return true
		}
		links = append(links, href)
		return len(links) < MaxLinks
	})
	return links
}
