package dashboard

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// FormatCount renders an integer metric with thousands separators.
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// FormatPercent renders a confidence as a percentage with at most one
// decimal place and no trailing zero. Values in [0, 1] are treated as
// fractions and scaled; anything larger is taken as already scaled.
// Only for confidences — stat shares are already in percent units and a
// small share like 0.5 must not be rescaled; use FormatShare for those.
func FormatPercent(v float64) string {
	if v >= 0 && v <= 1 {
		v *= 100
	}
	return FormatShare(v)
}

// FormatShare renders a value already in percent units, one decimal place
// at most, no trailing zero.
func FormatShare(v float64) string {
	rounded := math.Round(v*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "%"
}

// FormatDate renders a timestamp for display. The zero time renders empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// ExtractTweetID pulls the tweet ID out of a status URL. It takes the digit
// run after the last "status/" segment; input without one is returned
// trimmed, as typed.
func ExtractTweetID(input string) string {
	input = strings.TrimSpace(input)
	idx := strings.LastIndex(input, "status/")
	if idx < 0 {
		return input
	}

	rest := input[idx+len("status/"):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return input
	}
	return rest[:end]
}
