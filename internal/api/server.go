// Package api exposes the analytics endpoints consumed by the dashboard and
// the CLI, and the typed client both frontends share.
package api

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/sentiment"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/twitter"
)

// TweetSource is the slice of the Twitter client the endpoints need. A nil
// source (no bearer token configured) makes every Twitter-backed endpoint
// reject requests, mirroring a dashboard started without credentials.
type TweetSource interface {
	GetUserInfo(ctx context.Context, username string) (*twitter.User, error)
	GetUserTweets(ctx context.Context, username string, maxResults int) ([]twitter.Tweet, error)
	GetTweetReplies(ctx context.Context, tweetID string, maxResults int) ([]twitter.Tweet, error)
	SearchTweets(ctx context.Context, query string, maxResults int) ([]twitter.Tweet, error)
	GetSingleTweet(ctx context.Context, tweetID string) (*twitter.Tweet, error)
}

// Server holds all dependencies for the analytics HTTP API.
type Server struct {
	source   TweetSource
	analyzer *sentiment.Analyzer
	log      *logrus.Logger
	mux      *http.ServeMux
}

// NewServer creates an API server with all routes configured.
func NewServer(source TweetSource, analyzer *sentiment.Analyzer, log *logrus.Logger) *Server {
	s := &Server{
		source:   source,
		analyzer: analyzer,
		log:      log,
		mux:      http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

// Handler returns the HTTP handler with middleware applied.
func (s *Server) Handler() http.Handler {
	handler := s.loggingMiddleware(s.mux)
	handler = rateLimitMiddleware(newIPLimiter(10, 30))(handler)
	handler = corsMiddleware(handler)
	handler = securityHeadersMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)

	s.mux.HandleFunc("POST /api/user-info", s.handleUserInfo)
	s.mux.HandleFunc("POST /api/user-tweets", s.handleUserTweets)
	s.mux.HandleFunc("POST /api/tweet-replies", s.handleTweetReplies)
	s.mux.HandleFunc("POST /api/compare-users", s.handleCompareUsers)
	s.mux.HandleFunc("POST /api/compare-tweets", s.handleCompareTweets)
	s.mux.HandleFunc("POST /api/search-analyze", s.handleSearchAnalyze)
	s.mux.HandleFunc("POST /api/test-sentiment", s.handleTestSentiment)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:         "running",
		TwitterAPI:     s.source != nil,
		SentimentModel: s.analyzer != nil,
	})
}
