package twitter

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

type tweetJSON struct {
	ID            string    `json:"id"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"created_at"`
	AuthorID      string    `json:"author_id"`
	PublicMetrics struct {
		Likes       int `json:"like_count"`
		Retweets    int `json:"retweet_count"`
		Replies     int `json:"reply_count"`
		Impressions int `json:"impression_count"`
	} `json:"public_metrics"`
	ReferencedTweets []struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	} `json:"referenced_tweets"`
	Entities *struct {
		Hashtags []struct {
			Tag string `json:"tag"`
		} `json:"hashtags"`
	} `json:"entities"`
}

func (t *tweetJSON) toTweet() Tweet {
	tw := Tweet{
		ID:          t.ID,
		Text:        t.Text,
		CreatedAt:   t.CreatedAt,
		AuthorID:    t.AuthorID,
		Likes:       t.PublicMetrics.Likes,
		Retweets:    t.PublicMetrics.Retweets,
		Replies:     t.PublicMetrics.Replies,
		Impressions: t.PublicMetrics.Impressions,
	}
	if t.Entities != nil {
		for _, h := range t.Entities.Hashtags {
			tw.Hashtags = append(tw.Hashtags, h.Tag)
		}
	}
	return tw
}

func (t *tweetJSON) isReply() bool {
	for _, ref := range t.ReferencedTweets {
		if ref.Type == "replied_to" {
			return true
		}
	}
	return false
}

type timelineEnvelope struct {
	Data []tweetJSON `json:"data"`
	Meta struct {
		ResultCount int `json:"result_count"`
	} `json:"meta"`
}

type singleTweetEnvelope struct {
	Data *tweetJSON `json:"data"`
}

// GetUserTweets fetches the user's recent original tweets (retweets excluded).
func (c *Client) GetUserTweets(ctx context.Context, username string, maxResults int) ([]Tweet, error) {
	info, err := c.GetUserInfo(ctx, username)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("max_results", strconv.Itoa(clampMaxResults(maxResults, 5, 100)))
	params.Set("tweet.fields", "created_at,public_metrics,referenced_tweets")
	params.Set("exclude", "retweets")

	var env timelineEnvelope
	if err := c.get(ctx, "/users/"+url.PathEscape(info.ID)+"/tweets", params, &env); err != nil {
		return nil, err
	}

	tweets := make([]Tweet, 0, len(env.Data))
	for i := range env.Data {
		tweets = append(tweets, env.Data[i].toTweet())
	}
	return tweets, nil
}

// GetTweetReplies returns direct replies within a tweet's conversation.
func (c *Client) GetTweetReplies(ctx context.Context, tweetID string, maxResults int) ([]Tweet, error) {
	params := url.Values{}
	params.Set("query", "conversation_id:"+tweetID)
	params.Set("max_results", strconv.Itoa(clampMaxResults(maxResults, 10, 100)))
	params.Set("tweet.fields", "created_at,public_metrics,author_id,referenced_tweets")

	var env timelineEnvelope
	if err := c.get(ctx, "/tweets/search/recent", params, &env); err != nil {
		return nil, err
	}

	var replies []Tweet
	for i := range env.Data {
		if env.Data[i].isReply() {
			replies = append(replies, env.Data[i].toTweet())
		}
	}
	return replies, nil
}

// SearchTweets runs a recent search over the last seven days.
func (c *Client) SearchTweets(ctx context.Context, query string, maxResults int) ([]Tweet, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("max_results", strconv.Itoa(clampMaxResults(maxResults, 10, 100)))
	params.Set("start_time", time.Now().UTC().Add(-7*24*time.Hour).Add(time.Minute).Format(time.RFC3339))
	params.Set("tweet.fields", "created_at,public_metrics,author_id,entities")

	var env timelineEnvelope
	if err := c.get(ctx, "/tweets/search/recent", params, &env); err != nil {
		return nil, err
	}

	tweets := make([]Tweet, 0, len(env.Data))
	for i := range env.Data {
		tweets = append(tweets, env.Data[i].toTweet())
	}
	return tweets, nil
}

// GetSingleTweet fetches one tweet by ID.
func (c *Client) GetSingleTweet(ctx context.Context, tweetID string) (*Tweet, error) {
	params := url.Values{}
	params.Set("tweet.fields", "created_at,public_metrics,author_id")

	var env singleTweetEnvelope
	if err := c.get(ctx, "/tweets/"+url.PathEscape(tweetID), params, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, ErrNotFound
	}
	tw := env.Data.toTweet()
	return &tw, nil
}
