// Package normalize flattens raw crowd-comment bodies to plain text before
// windowing and sentiment scoring.
package normalize

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	quotePattern = regexp.MustCompile(`(?m)^\s*>+\s.*$`)
	codePattern  = regexp.MustCompile("`[^`]+`")
	linkPattern  = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	urlPattern   = regexp.MustCompile(`https?://\S+|www\.\S+`)
	tagPattern   = regexp.MustCompile(`<[^>]+>`)
)

// RemoveLinks keeps the anchor text of markdown links and drops bare URLs.
func RemoveLinks(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// Clean rewrites a comment body to plain text: quoted lines and inline code
// are removed, markdown is rendered and stripped of tags, URLs are dropped,
// and whitespace collapses to single spaces. An empty result means the record
// carries no usable text and should be skipped.
func Clean(body string) string {
	if body == "" {
		return ""
	}
	s := quotePattern.ReplaceAllString(body, "")
	s = codePattern.ReplaceAllString(s, "")
	s = RemoveLinks(s)

	rendered := blackfriday.Run([]byte(s), blackfriday.WithNoExtensions())
	s = tagPattern.ReplaceAllString(string(rendered), " ")
	s = html.UnescapeString(s)

	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}
