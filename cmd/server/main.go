// Sentiment analytics server: Twitter API proxy, sentiment analysis
// endpoints and the server-rendered dashboard.
//
// Usage:
//
//	server                  Start the HTTP server
//	server -config FILE     Load settings from an HCL file first
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/api"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/charts"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/config"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/dashboard"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/logger"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/sentiment"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/twitter"
)

func main() {
	configPath := flag.String("config", "", "Path to an HCL config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Server.LogLevel)

	// Sentiment analyzer, with an optional custom lexicon.
	analyzer := sentiment.NewAnalyzer()
	if cfg.Sentiment.LexiconPath != "" {
		analyzer, err = sentiment.NewAnalyzerFromFile(cfg.Sentiment.LexiconPath)
		if err != nil {
			log.WithError(err).Fatal("failed to load lexicon")
		}
		log.WithField("path", cfg.Sentiment.LexiconPath).Info("custom lexicon loaded")
	}

	// Twitter client. Without a bearer token the API endpoints answer with
	// a configuration error instead of failing at startup.
	var source api.TweetSource
	if cfg.Twitter.BearerToken != "" {
		var opts []twitter.Option
		if cfg.Twitter.BaseURL != "" {
			opts = append(opts, twitter.WithBaseURL(cfg.Twitter.BaseURL))
		}
		if cfg.Twitter.RateLimit > 0 {
			opts = append(opts, twitter.WithRateLimit(cfg.Twitter.RateLimit, 1))
		}
		source = twitter.NewClient(cfg.Twitter.BearerToken, opts...)
	} else {
		log.Warn("BEARER_TOKEN not set, Twitter endpoints disabled")
	}

	apiServer := api.NewServer(source, analyzer, log)

	// The dashboard talks to the API over its public client so both stay on
	// the same contract.
	baseURL := "http://127.0.0.1" + normalizeAddr(cfg.Server.ListenAddr)
	controller := dashboard.NewController(api.NewClient(baseURL), log)
	dashHandler := dashboard.NewHandler(controller, charts.NewPNGRenderer())

	mux := http.NewServeMux()
	mux.Handle("/api/", apiServer.Handler())
	mux.Handle("/health", apiServer.Handler())
	mux.Handle("/", dashHandler)

	srv := &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.WithField("addr", cfg.Server.ListenAddr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("server error")
		}
	}()

	<-done
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Fatal("shutdown error")
	}
	log.Info("server stopped")
}

// normalizeAddr turns a listen address into the host:port suffix for the
// loopback base URL, defaulting the host when it is empty.
func normalizeAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return addr
	}
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return ":" + addr
}
