// Package sanitizer cleans HTML email bodies before they are sent.
package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = sync.OnceValue(bluemonday.StrictPolicy)

// markupPolicy admits what the invoice text converter and the markdown body
// emit, including the margin-left style of the bank details block.
var markupPolicy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(
		"p", "br", "hr", "div",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"strong", "b", "em", "i", "del",
		"ul", "ol", "li",
		"code", "pre", "blockquote",
		"table", "thead", "tbody", "tr", "th", "td",
	)
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a")
	p.AllowStyles("margin-left").OnElements("div")
	p.RequireNoFollowOnLinks(true)
	return p
})

// StripHTML removes all markup. The mailer uses it for the plain-text
// alternative of an HTML body.
func StripHTML(s string) string {
	return textPolicy().Sanitize(s)
}

// SanitizeMarkup keeps the structure of a rendered invoice body (paragraphs,
// lists, headings, tables, links and indented div blocks) and drops scripts,
// event handlers and every other style.
func SanitizeMarkup(s string) string {
	return markupPolicy().Sanitize(s)
}
