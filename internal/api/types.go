package api

import (
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/charts"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/sentiment"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/twitter"
)

// Request bodies. Every endpoint takes a JSON POST with the fields below.

type userInfoRequest struct {
	Username string `json:"username"`
}

type userTweetsRequest struct {
	Username   string `json:"username"`
	MaxResults int    `json:"max_results"`
}

type tweetRepliesRequest struct {
	TweetID string `json:"tweet_id"`
}

type compareUsersRequest struct {
	Username1 string `json:"username1"`
	Username2 string `json:"username2"`
	MaxTweets int    `json:"max_tweets"`
}

type compareTweetsRequest struct {
	TweetID1 string `json:"tweet_id1"`
	TweetID2 string `json:"tweet_id2"`
}

type searchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type testSentimentRequest struct {
	Text string `json:"text"`
}

// Response envelopes. Success responses carry success=true plus the payload;
// failures are {"success": false, "error": "..."} with a matching status.

// UserInfoResponse is the user-info payload.
type UserInfoResponse struct {
	Success  bool          `json:"success"`
	UserInfo *twitter.User `json:"user_info"`
}

// TweetCharts bundles the chart-ready series for a tweet set.
type TweetCharts struct {
	PieChart   *charts.Series `json:"pie_chart"`
	BarChart   *charts.Series `json:"bar_chart,omitempty"`
	Timeline   *charts.Series `json:"timeline,omitempty"`
	Engagement *charts.Series `json:"engagement,omitempty"`
}

// UserTweetsResponse is the user-tweets payload.
type UserTweetsResponse struct {
	Success     bool                      `json:"success"`
	Stats       *sentiment.Stats          `json:"stats"`
	Categorized *sentiment.Categorized    `json:"categorized"`
	Tweets      []sentiment.AnalyzedTweet `json:"tweets"`
	Charts      *TweetCharts              `json:"charts"`
}

// ReplyCharts holds the optional reply-analysis chart.
type ReplyCharts struct {
	SentimentDistribution *charts.Series `json:"sentiment_distribution"`
}

// TweetRepliesResponse is the tweet-replies payload.
type TweetRepliesResponse struct {
	Success       bool                     `json:"success"`
	Tweet         *twitter.Tweet           `json:"tweet"`
	ReplyAnalysis *sentiment.ReplyAnalysis `json:"reply_analysis"`
	Charts        *ReplyCharts             `json:"charts,omitempty"`
}

// ComparedUser pairs a profile with its analyzed tweets and stats.
type ComparedUser struct {
	Info   *twitter.User             `json:"info"`
	Tweets []sentiment.AnalyzedTweet `json:"tweets"`
	Stats  *sentiment.Stats          `json:"stats"`
}

// CompareUsersCharts holds both comparison charts.
type CompareUsersCharts struct {
	ProfileComparison   *charts.Series `json:"profile_comparison"`
	SentimentComparison *charts.Series `json:"sentiment_comparison"`
}

// CompareUsersResponse is the compare-users payload.
type CompareUsersResponse struct {
	Success    bool                        `json:"success"`
	User1      *ComparedUser               `json:"user1"`
	User2      *ComparedUser               `json:"user2"`
	Comparison *sentiment.ComparisonResult `json:"comparison"`
	Charts     *CompareUsersCharts         `json:"charts"`
}

// ComparedTweet pairs a tweet with its analyzed replies and stats.
type ComparedTweet struct {
	Details *twitter.Tweet            `json:"details"`
	Stats   *sentiment.Stats          `json:"stats"`
	Replies []sentiment.AnalyzedTweet `json:"replies"`
}

// CompareTweetsCharts holds the reply-sentiment comparison chart.
type CompareTweetsCharts struct {
	Comparison *charts.Series `json:"comparison"`
}

// CompareTweetsResponse is the compare-tweets payload.
type CompareTweetsResponse struct {
	Success    bool                        `json:"success"`
	Tweet1     *ComparedTweet              `json:"tweet1"`
	Tweet2     *ComparedTweet              `json:"tweet2"`
	Comparison *sentiment.ComparisonResult `json:"comparison"`
	Charts     *CompareTweetsCharts        `json:"charts"`
}

// SearchCharts bundles every chart the search endpoint prepares.
type SearchCharts struct {
	PieChart   *charts.Series `json:"pie_chart"`
	BarChart   *charts.Series `json:"bar_chart,omitempty"`
	Timeline   *charts.Series `json:"timeline,omitempty"`
	Engagement *charts.Series `json:"engagement,omitempty"`
	Hashtags   *charts.Series `json:"hashtags,omitempty"`
	Hourly     *charts.Series `json:"hourly,omitempty"`
	Confidence *charts.Series `json:"confidence,omitempty"`
}

// SearchAnalyzeResponse is the search-analyze payload.
type SearchAnalyzeResponse struct {
	Success     bool                      `json:"success"`
	Query       string                    `json:"query"`
	Stats       *sentiment.Stats          `json:"stats"`
	Categorized *sentiment.Categorized    `json:"categorized"`
	Tweets      []sentiment.AnalyzedTweet `json:"tweets"`
	Charts      *SearchCharts             `json:"charts"`
}

// TestSentimentResponse is the test-sentiment payload. Confidence is a
// percentage rounded to two decimals.
type TestSentimentResponse struct {
	Success     bool    `json:"success"`
	Text        string  `json:"text"`
	CleanedText string  `json:"cleaned_text"`
	Sentiment   string  `json:"sentiment"`
	Confidence  float64 `json:"confidence"`
}

// HealthResponse reports component availability.
type HealthResponse struct {
	Status         string `json:"status"`
	TwitterAPI     bool   `json:"twitter_api"`
	SentimentModel bool   `json:"sentiment_model"`
}
