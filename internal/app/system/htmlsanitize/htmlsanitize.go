// Package htmlsanitize scrubs untrusted HTML before it is rendered.
//
// Long-form page content (reflections, research writeups) is authored as
// HTML and rendered unescaped, so it passes through Sanitize first. Short
// form inputs (titles, descriptions, tags) carry no markup at all and go
// through StripTags.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// contentPolicy allows the formatting vocabulary page content uses: standard
// user-generated-content elements plus tables and a few inline text marks.
var contentPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowTables()
	p.AllowAttrs("class").OnElements("table", "thead", "tbody", "tr", "th", "td")
	p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
	p.AllowElements("u", "s", "sub", "sup", "mark")
	return p
}()

// strictPolicy strips every tag, leaving only text.
var strictPolicy = bluemonday.StrictPolicy()

// Sanitize returns s with unsafe HTML removed. Safe formatting (paragraphs,
// emphasis, lists, tables, links) is preserved; scripts, event handlers, and
// javascript: URLs are stripped.
func Sanitize(s string) string {
	return contentPolicy.Sanitize(s)
}

// StripTags removes all HTML from s, returning plain text.
func StripTags(s string) string {
	return strictPolicy.Sanitize(s)
}
