package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/charts"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/sentiment"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/twitter"
)

const (
	defaultUserTweets   = 50
	defaultSearchCount  = 100
	defaultCompareCount = 50
	maxRepliesFetched   = 100
	maxSearchReturned   = 50
	topEngagementCount  = 10
	topHashtagCount     = 10
)

func (s *Server) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	var req userInfoRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Username) == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if s.source == nil {
		writeError(w, http.StatusInternalServerError, "Twitter API not configured")
		return
	}

	user, err := s.source.GetUserInfo(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, twitter.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("User @%s not found", handleOf(req.Username)))
			return
		}
		s.log.WithError(err).Error("user info lookup failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch user info")
		return
	}

	writeJSON(w, http.StatusOK, UserInfoResponse{Success: true, UserInfo: user})
}

func (s *Server) handleUserTweets(w http.ResponseWriter, r *http.Request) {
	var req userTweetsRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Username) == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if s.source == nil {
		writeError(w, http.StatusInternalServerError, "Twitter API not configured")
		return
	}
	if req.MaxResults <= 0 {
		req.MaxResults = defaultUserTweets
	}

	tweets, err := s.source.GetUserTweets(r.Context(), req.Username, req.MaxResults)
	if err != nil {
		if errors.Is(err, twitter.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("User @%s not found", handleOf(req.Username)))
			return
		}
		s.log.WithError(err).Error("user tweets fetch failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch tweets")
		return
	}
	if len(tweets) == 0 {
		writeError(w, http.StatusNotFound, "No tweets found")
		return
	}

	analyzed := s.analyzer.AnalyzeTweets(tweets)
	stats := sentiment.ComputeStats(analyzed)

	writeJSON(w, http.StatusOK, UserTweetsResponse{
		Success:     true,
		Stats:       stats,
		Categorized: sentiment.Categorize(analyzed),
		Tweets:      analyzed,
		Charts: &TweetCharts{
			PieChart:   charts.SentimentPie(stats),
			BarChart:   charts.SentimentBar(stats),
			Timeline:   charts.Timeline(analyzed),
			Engagement: charts.Engagement(analyzed, topEngagementCount),
		},
	})
}

func (s *Server) handleTweetReplies(w http.ResponseWriter, r *http.Request) {
	var req tweetRepliesRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.TweetID) == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if s.source == nil {
		writeError(w, http.StatusInternalServerError, "Twitter API not configured")
		return
	}

	tweet, err := s.source.GetSingleTweet(r.Context(), req.TweetID)
	if err != nil {
		if errors.Is(err, twitter.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Tweet not found")
			return
		}
		s.log.WithError(err).Error("tweet lookup failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch tweet")
		return
	}

	replies, err := s.source.GetTweetReplies(r.Context(), req.TweetID, maxRepliesFetched)
	if err != nil && !errors.Is(err, twitter.ErrNotFound) {
		s.log.WithError(err).Error("reply fetch failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch replies")
		return
	}

	analysis := s.analyzer.AnalyzeReplies(replies)
	resp := TweetRepliesResponse{
		Success:       true,
		Tweet:         tweet,
		ReplyAnalysis: analysis,
	}
	if analysis.SentimentStats != nil {
		resp.Charts = &ReplyCharts{
			SentimentDistribution: charts.SentimentPie(analysis.SentimentStats),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCompareUsers(w http.ResponseWriter, r *http.Request) {
	var req compareUsersRequest
	if err := decodeJSON(r, &req); err != nil ||
		strings.TrimSpace(req.Username1) == "" || strings.TrimSpace(req.Username2) == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if s.source == nil {
		writeError(w, http.StatusInternalServerError, "Twitter API not configured")
		return
	}
	if req.MaxTweets <= 0 {
		req.MaxTweets = defaultCompareCount
	}

	u1, err := s.fetchComparedUser(r, req.Username1, req.MaxTweets)
	if err != nil {
		s.writeCompareUserError(w, err, req.Username1)
		return
	}
	u2, err := s.fetchComparedUser(r, req.Username2, req.MaxTweets)
	if err != nil {
		s.writeCompareUserError(w, err, req.Username2)
		return
	}

	cmp := sentiment.Compare(u1.Tweets, u2.Tweets)
	label1 := "@" + handleOf(req.Username1)
	label2 := "@" + handleOf(req.Username2)

	writeJSON(w, http.StatusOK, CompareUsersResponse{
		Success:    true,
		User1:      u1,
		User2:      u2,
		Comparison: cmp,
		Charts: &CompareUsersCharts{
			ProfileComparison:   charts.UserComparison(u1.Info, u2.Info),
			SentimentComparison: charts.Comparison(cmp, label1, label2),
		},
	})
}

func (s *Server) fetchComparedUser(r *http.Request, username string, maxTweets int) (*ComparedUser, error) {
	info, err := s.source.GetUserInfo(r.Context(), username)
	if err != nil {
		return nil, err
	}
	tweets, err := s.source.GetUserTweets(r.Context(), username, maxTweets)
	if err != nil && !errors.Is(err, twitter.ErrNotFound) {
		return nil, err
	}
	analyzed := s.analyzer.AnalyzeTweets(tweets)
	return &ComparedUser{
		Info:   info,
		Tweets: analyzed,
		Stats:  sentiment.ComputeStats(analyzed),
	}, nil
}

func (s *Server) writeCompareUserError(w http.ResponseWriter, err error, username string) {
	if errors.Is(err, twitter.ErrNotFound) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("User @%s not found", handleOf(username)))
		return
	}
	s.log.WithError(err).Error("user comparison failed")
	writeError(w, http.StatusInternalServerError, "Failed to compare users")
}

func (s *Server) handleCompareTweets(w http.ResponseWriter, r *http.Request) {
	var req compareTweetsRequest
	if err := decodeJSON(r, &req); err != nil ||
		strings.TrimSpace(req.TweetID1) == "" || strings.TrimSpace(req.TweetID2) == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if s.source == nil {
		writeError(w, http.StatusInternalServerError, "Twitter API not configured")
		return
	}

	t1, err := s.fetchComparedTweet(r, req.TweetID1)
	if err != nil {
		s.writeCompareTweetError(w, err)
		return
	}
	t2, err := s.fetchComparedTweet(r, req.TweetID2)
	if err != nil {
		s.writeCompareTweetError(w, err)
		return
	}

	cmp := sentiment.Compare(t1.Replies, t2.Replies)
	writeJSON(w, http.StatusOK, CompareTweetsResponse{
		Success:    true,
		Tweet1:     t1,
		Tweet2:     t2,
		Comparison: cmp,
		Charts: &CompareTweetsCharts{
			Comparison: charts.Comparison(cmp, "Tweet 1", "Tweet 2"),
		},
	})
}

func (s *Server) fetchComparedTweet(r *http.Request, tweetID string) (*ComparedTweet, error) {
	details, err := s.source.GetSingleTweet(r.Context(), tweetID)
	if err != nil {
		return nil, err
	}
	replies, err := s.source.GetTweetReplies(r.Context(), tweetID, maxRepliesFetched)
	if err != nil && !errors.Is(err, twitter.ErrNotFound) {
		return nil, err
	}
	analyzed := s.analyzer.AnalyzeTweets(replies)
	return &ComparedTweet{
		Details: details,
		Stats:   sentiment.ComputeStats(analyzed),
		Replies: analyzed,
	}, nil
}

func (s *Server) writeCompareTweetError(w http.ResponseWriter, err error) {
	if errors.Is(err, twitter.ErrNotFound) {
		writeError(w, http.StatusNotFound, "One or both tweets not found")
		return
	}
	s.log.WithError(err).Error("tweet comparison failed")
	writeError(w, http.StatusInternalServerError, "Failed to fetch tweets")
}

func (s *Server) handleSearchAnalyze(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if s.source == nil {
		writeError(w, http.StatusInternalServerError, "Twitter API not configured")
		return
	}
	if req.MaxResults <= 0 {
		req.MaxResults = defaultSearchCount
	}

	tweets, err := s.source.SearchTweets(r.Context(), req.Query, req.MaxResults)
	if err != nil {
		s.log.WithError(err).Error("search failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch tweets")
		return
	}
	if len(tweets) == 0 {
		writeError(w, http.StatusNotFound, "No tweets found")
		return
	}

	analyzed := s.analyzer.AnalyzeTweets(tweets)
	stats := sentiment.ComputeStats(analyzed)

	returned := analyzed
	if len(returned) > maxSearchReturned {
		returned = returned[:maxSearchReturned]
	}

	writeJSON(w, http.StatusOK, SearchAnalyzeResponse{
		Success:     true,
		Query:       req.Query,
		Stats:       stats,
		Categorized: sentiment.Categorize(analyzed),
		Tweets:      returned,
		Charts: &SearchCharts{
			PieChart:   charts.SentimentPie(stats),
			BarChart:   charts.SentimentBar(stats),
			Timeline:   charts.Timeline(analyzed),
			Engagement: charts.Engagement(analyzed, topEngagementCount),
			Hashtags:   charts.Hashtags(analyzed, topHashtagCount),
			Hourly:     charts.SentimentByHour(analyzed),
			Confidence: charts.ConfidenceDistribution(analyzed),
		},
	})
}

func (s *Server) handleTestSentiment(w http.ResponseWriter, r *http.Request) {
	var req testSentimentRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "Text required")
		return
	}

	label, confidence := s.analyzer.Predict(req.Text)
	writeJSON(w, http.StatusOK, TestSentimentResponse{
		Success:     true,
		Text:        req.Text,
		CleanedText: sentiment.CleanText(req.Text),
		Sentiment:   label,
		Confidence:  math.Round(confidence*100*100) / 100,
	})
}

// handleOf normalizes a username for display in error messages.
func handleOf(username string) string {
	return strings.TrimPrefix(strings.TrimSpace(username), "@")
}
