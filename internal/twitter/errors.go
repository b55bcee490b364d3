package twitter

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrNotFound is returned when a user or tweet does not exist.
var ErrNotFound = errors.New("not found")

// APIError is a structured error response from the Twitter API.
type APIError struct {
	StatusCode int
	Title      string `json:"title"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("twitter api error (%d): %s — %s", e.StatusCode, e.Title, e.Detail)
	}
	if e.Title != "" {
		return fmt.Sprintf("twitter api error (%d): %s", e.StatusCode, e.Title)
	}
	return fmt.Sprintf("twitter api error (%d)", e.StatusCode)
}

// parseRateLimitReset parses the x-rate-limit-reset unix timestamp header.
// Falls back to 15 minutes from now if missing or invalid.
func parseRateLimitReset(v string) time.Time {
	if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(ts, 0)
	}
	return time.Now().Add(15 * time.Minute)
}
