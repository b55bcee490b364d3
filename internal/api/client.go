package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the typed HTTP client for the analytics API, shared by the
// dashboard controller and the CLI.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Error is a failure envelope returned by the API.
type Error struct {
	StatusCode int
	Message    string `json:"error"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("API error (%d)", e.StatusCode)
}

// NewClient creates a client for the given server URL.
func NewClient(serverURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(serverURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) post(ctx context.Context, path string, body interface{}, result interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(respBody, apiErr)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	// The envelope carries its own failure signal independent of the HTTP
	// status: success=false with an error string is a failure even on 200.
	var envelope struct {
		Success *bool  `json:"success"`
		Message string `json:"error"`
	}
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &envelope); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	if envelope.Success != nil && !*envelope.Success {
		apiErr := &Error{StatusCode: resp.StatusCode, Message: envelope.Message}
		if apiErr.Message == "" {
			apiErr.Message = "request failed"
		}
		return apiErr
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// UserInfo fetches a profile.
func (c *Client) UserInfo(ctx context.Context, username string) (*UserInfoResponse, error) {
	var resp UserInfoResponse
	if err := c.post(ctx, "/api/user-info", userInfoRequest{Username: username}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UserTweets fetches and analyzes a user's recent tweets. maxResults <= 0
// uses the server default.
func (c *Client) UserTweets(ctx context.Context, username string, maxResults int) (*UserTweetsResponse, error) {
	var resp UserTweetsResponse
	req := userTweetsRequest{Username: username, MaxResults: maxResults}
	if err := c.post(ctx, "/api/user-tweets", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TweetReplies fetches a tweet and the sentiment of its replies.
func (c *Client) TweetReplies(ctx context.Context, tweetID string) (*TweetRepliesResponse, error) {
	var resp TweetRepliesResponse
	if err := c.post(ctx, "/api/tweet-replies", tweetRepliesRequest{TweetID: tweetID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CompareUsers analyzes two accounts side by side.
func (c *Client) CompareUsers(ctx context.Context, username1, username2 string, maxTweets int) (*CompareUsersResponse, error) {
	var resp CompareUsersResponse
	req := compareUsersRequest{Username1: username1, Username2: username2, MaxTweets: maxTweets}
	if err := c.post(ctx, "/api/compare-users", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CompareTweets compares reply sentiment for two tweets.
func (c *Client) CompareTweets(ctx context.Context, tweetID1, tweetID2 string) (*CompareTweetsResponse, error) {
	var resp CompareTweetsResponse
	req := compareTweetsRequest{TweetID1: tweetID1, TweetID2: tweetID2}
	if err := c.post(ctx, "/api/compare-tweets", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchAnalyze runs a recent-tweets search and analyzes the results.
func (c *Client) SearchAnalyze(ctx context.Context, query string, maxResults int) (*SearchAnalyzeResponse, error) {
	var resp SearchAnalyzeResponse
	req := searchRequest{Query: query, MaxResults: maxResults}
	if err := c.post(ctx, "/api/search-analyze", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TestSentiment classifies a single piece of text.
func (c *Client) TestSentiment(ctx context.Context, text string) (*TestSentimentResponse, error) {
	var resp TestSentimentResponse
	if err := c.post(ctx, "/api/test-sentiment", testSentimentRequest{Text: text}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health reports server component status.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	url := c.BaseURL + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	httpResp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, &Error{StatusCode: httpResp.StatusCode, Message: http.StatusText(httpResp.StatusCode)}
	}
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &resp, nil
}
