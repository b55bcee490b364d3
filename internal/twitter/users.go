package twitter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

type userEnvelope struct {
	Data *struct {
		ID            string    `json:"id"`
		Name          string    `json:"name"`
		Username      string    `json:"username"`
		Description   string    `json:"description"`
		CreatedAt     time.Time `json:"created_at"`
		Verified      bool      `json:"verified"`
		PublicMetrics struct {
			Followers  int `json:"followers_count"`
			Following  int `json:"following_count"`
			TweetCount int `json:"tweet_count"`
			Listed     int `json:"listed_count"`
		} `json:"public_metrics"`
	} `json:"data"`
	Errors []struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// GetUserInfo fetches a user's profile by handle. A leading @ is tolerated.
func (c *Client) GetUserInfo(ctx context.Context, username string) (*User, error) {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return nil, fmt.Errorf("username is empty")
	}

	params := url.Values{}
	params.Set("user.fields", "created_at,description,public_metrics,verified")

	var env userEnvelope
	if err := c.get(ctx, "/users/by/username/"+url.PathEscape(username), params, &env); err != nil {
		return nil, err
	}
	// The v2 API reports unknown handles as a 200 with an errors array.
	if env.Data == nil {
		return nil, ErrNotFound
	}

	d := env.Data
	return &User{
		ID:          d.ID,
		Username:    d.Username,
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		Verified:    d.Verified,
		Followers:   d.PublicMetrics.Followers,
		Following:   d.PublicMetrics.Following,
		TweetCount:  d.PublicMetrics.TweetCount,
		ListedCount: d.PublicMetrics.Listed,
	}, nil
}

// CompareUsers fetches profiles and recent tweets for two users.
func (c *Client) CompareUsers(ctx context.Context, username1, username2 string, maxTweets int) (*Comparison, error) {
	info1, err := c.GetUserInfo(ctx, username1)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", username1, err)
	}
	info2, err := c.GetUserInfo(ctx, username2)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", username2, err)
	}

	tweets1, err := c.GetUserTweets(ctx, username1, maxTweets)
	if err != nil {
		return nil, fmt.Errorf("tweets of %s: %w", username1, err)
	}
	tweets2, err := c.GetUserTweets(ctx, username2, maxTweets)
	if err != nil {
		return nil, fmt.Errorf("tweets of %s: %w", username2, err)
	}

	return &Comparison{
		User1: UserData{Info: info1, Tweets: tweets1},
		User2: UserData{Info: info2, Tweets: tweets2},
	}, nil
}
