package sentiment

import (
	"regexp"
	"strings"
)

// Cleaning rules, applied in order. Order matters: URLs must go before the
// punctuation strip or their remnants would survive as bare words.
var (
	reURL        = regexp.MustCompile(`(?m)http\S+|www\S+|https\S+`)
	reMention    = regexp.MustCompile(`@\w+`)
	reHash       = regexp.MustCompile(`#`)
	rePunct      = regexp.MustCompile(`[^\w\s]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// CleanText normalizes raw tweet text for classification: URLs and @mentions
// removed, hash signs stripped (the tag word is kept), punctuation dropped,
// whitespace collapsed, lowercased.
func CleanText(text string) string {
	text = reURL.ReplaceAllString(text, "")
	text = reMention.ReplaceAllString(text, "")
	text = reHash.ReplaceAllString(text, "")
	text = rePunct.ReplaceAllString(text, "")
	text = strings.TrimSpace(reWhitespace.ReplaceAllString(text, " "))
	return strings.ToLower(text)
}
