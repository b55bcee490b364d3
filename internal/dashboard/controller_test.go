package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/api"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/charts"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/sentiment"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/twitter"
)

type fakeBackend struct {
	mu    sync.Mutex
	calls int

	userInfo      func(username string) (*api.UserInfoResponse, error)
	userTweets    func(username string, max int) (*api.UserTweetsResponse, error)
	tweetReplies  func(tweetID string) (*api.TweetRepliesResponse, error)
	compareUsers  func(u1, u2 string, max int) (*api.CompareUsersResponse, error)
	compareTweets func(id1, id2 string) (*api.CompareTweetsResponse, error)
	search        func(query string, max int) (*api.SearchAnalyzeResponse, error)
	testSentiment func(text string) (*api.TestSentimentResponse, error)
}

func (f *fakeBackend) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeBackend) called() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeBackend) UserInfo(_ context.Context, username string) (*api.UserInfoResponse, error) {
	f.called()
	return f.userInfo(username)
}

func (f *fakeBackend) UserTweets(_ context.Context, username string, max int) (*api.UserTweetsResponse, error) {
	f.called()
	return f.userTweets(username, max)
}

func (f *fakeBackend) TweetReplies(_ context.Context, tweetID string) (*api.TweetRepliesResponse, error) {
	f.called()
	return f.tweetReplies(tweetID)
}

func (f *fakeBackend) CompareUsers(_ context.Context, u1, u2 string, max int) (*api.CompareUsersResponse, error) {
	f.called()
	return f.compareUsers(u1, u2, max)
}

func (f *fakeBackend) CompareTweets(_ context.Context, id1, id2 string) (*api.CompareTweetsResponse, error) {
	f.called()
	return f.compareTweets(id1, id2)
}

func (f *fakeBackend) SearchAnalyze(_ context.Context, query string, max int) (*api.SearchAnalyzeResponse, error) {
	f.called()
	return f.search(query, max)
}

func (f *fakeBackend) TestSentiment(_ context.Context, text string) (*api.TestSentimentResponse, error) {
	f.called()
	return f.testSentiment(text)
}

func newTestController(backend Backend) *Controller {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewController(backend, log)
}

func TestEmptyInputShortCircuits(t *testing.T) {
	backend := &fakeBackend{}
	c := newTestController(backend)
	ctx := context.Background()

	tests := []struct {
		name string
		view *View
		msg  string
	}{
		{"user info", c.LookupUser(ctx, "   "), "Please enter a username"},
		{"user tweets", c.AnalyzeUserTweets(ctx, "", 50), "Please enter a username"},
		{"tweet replies", c.AnalyzeReplies(ctx, ""), "Please enter a tweet ID or URL"},
		{"compare users", c.CompareUsers(ctx, "alpha", " "), "Please enter both usernames"},
		{"compare tweets", c.CompareTweets(ctx, "", "123"), "Please enter both tweet IDs"},
		{"search", c.SearchAndAnalyze(ctx, "  ", 100), "Please enter a search query"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.view)
			assert.Equal(t, tt.msg, tt.view.Err)
			assert.Empty(t, tt.view.HTML)
		})
	}

	// The sentiment test ignores empty input entirely.
	assert.Nil(t, c.TestSentiment(ctx, "\t"))
	assert.Zero(t, backend.count(), "validation failures must not hit the backend")
}

func TestErrorMessageShownVerbatim(t *testing.T) {
	backend := &fakeBackend{
		userInfo: func(username string) (*api.UserInfoResponse, error) {
			return nil, &api.Error{StatusCode: 404, Message: "User @ghost not found"}
		},
	}
	c := newTestController(backend)

	view := c.LookupUser(context.Background(), "ghost")
	require.NotNil(t, view)
	assert.Equal(t, "User @ghost not found", view.Err)
}

func TestDeclaredFailureRendersMessageNotPanic(t *testing.T) {
	// A 200 response whose envelope says success=false must surface the
	// server's message in the error region, for every flow.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success": false, "error": "X"}`))
	}))
	defer ts.Close()
	c := newTestController(api.NewClient(ts.URL))
	ctx := context.Background()

	views := []*View{
		c.LookupUser(ctx, "someone"),
		c.AnalyzeUserTweets(ctx, "someone", 0),
		c.AnalyzeReplies(ctx, "12345"),
		c.CompareUsers(ctx, "alpha", "beta"),
		c.CompareTweets(ctx, "1", "2"),
		c.SearchAndAnalyze(ctx, "query", 0),
	}
	for i, view := range views {
		require.NotNil(t, view, "flow %d", i)
		assert.Equal(t, "X", view.Err, "flow %d", i)
		assert.Empty(t, view.HTML, "flow %d", i)
	}
}

func TestTransportErrorGetsGenericMessage(t *testing.T) {
	backend := &fakeBackend{
		search: func(query string, max int) (*api.SearchAnalyzeResponse, error) {
			return nil, context.DeadlineExceeded
		},
	}
	c := newTestController(backend)

	view := c.SearchAndAnalyze(context.Background(), "golang", 0)
	require.NotNil(t, view)
	assert.Equal(t, "Network error. Please try again.", view.Err)
}

func TestLookupUserRendersEscapedProfile(t *testing.T) {
	backend := &fakeBackend{
		userInfo: func(username string) (*api.UserInfoResponse, error) {
			return &api.UserInfoResponse{
				Success: true,
				UserInfo: &twitter.User{
					Username:    "mallory",
					Name:        "<script>alert(1)</script>",
					Description: "bio & more",
					Followers:   1234567,
				},
			}, nil
		},
	}
	c := newTestController(backend)

	view := c.LookupUser(context.Background(), "mallory")
	require.NotNil(t, view)
	require.Empty(t, view.Err)

	html := string(view.HTML)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, html, "bio &amp; more")
	assert.Contains(t, html, "1,234,567")
}

func TestAnalyzeUserTweetsRegistersCharts(t *testing.T) {
	stats := &sentiment.Stats{Total: 2, Positive: 1, Neutral: 1, PositivePct: 50, NeutralPct: 50, AvgConfidence: 0.7}
	backend := &fakeBackend{
		userTweets: func(username string, max int) (*api.UserTweetsResponse, error) {
			return &api.UserTweetsResponse{
				Success: true,
				Stats:   stats,
				Tweets: []sentiment.AnalyzedTweet{
					{Tweet: twitter.Tweet{Text: "good stuff", CreatedAt: time.Now(), Likes: 3}, Sentiment: "Positive", Confidence: 0.8},
				},
				Charts: &api.TweetCharts{
					PieChart: charts.SentimentPie(stats),
					BarChart: charts.SentimentBar(stats),
				},
			}, nil
		},
	}
	c := newTestController(backend)

	view := c.AnalyzeUserTweets(context.Background(), "nasa", 0)
	require.NotNil(t, view)
	require.Empty(t, view.Err)
	assert.Len(t, view.Charts, 2)
	assert.Equal(t, 2, c.Registry().Live())

	first, ok := c.Registry().Get("sentimentPieChart")
	require.True(t, ok)

	// A second run replaces the canvas entries instead of stacking them.
	view = c.AnalyzeUserTweets(context.Background(), "nasa", 0)
	require.NotNil(t, view)
	assert.Equal(t, 2, c.Registry().Live())
	assert.True(t, first.Disposed())
}

func TestZeroRepliesRendersEmptyMessage(t *testing.T) {
	backend := &fakeBackend{
		tweetReplies: func(tweetID string) (*api.TweetRepliesResponse, error) {
			return &api.TweetRepliesResponse{
				Success:       true,
				Tweet:         &twitter.Tweet{ID: tweetID, Text: "original post"},
				ReplyAnalysis: &sentiment.ReplyAnalysis{AnalyzedReplies: []sentiment.AnalyzedTweet{}},
			}, nil
		},
	}
	c := newTestController(backend)

	view := c.AnalyzeReplies(context.Background(), "https://twitter.com/nasa/status/1790000000000000000")
	require.NotNil(t, view)
	require.Empty(t, view.Err)
	assert.Contains(t, string(view.HTML), "No replies found for this tweet")
	assert.Empty(t, view.Charts)
}

func TestStaleCompletionDropped(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	backend := &fakeBackend{
		testSentiment: func(text string) (*api.TestSentimentResponse, error) {
			if text == "slow" {
				close(started)
				<-release
			}
			return &api.TestSentimentResponse{Success: true, Text: text, Sentiment: "Neutral", Confidence: 50}, nil
		},
	}
	c := newTestController(backend)

	var slowView *View
	done := make(chan struct{})
	go func() {
		slowView = c.TestSentiment(context.Background(), "slow")
		close(done)
	}()

	<-started
	fastView := c.TestSentiment(context.Background(), "fast")
	close(release)
	<-done

	require.NotNil(t, fastView)
	assert.Empty(t, fastView.Err)
	assert.Nil(t, slowView, "a superseded run must be discarded")
}

func TestCompareUsersUsesFixedDepth(t *testing.T) {
	var gotMax int
	backend := &fakeBackend{
		compareUsers: func(u1, u2 string, max int) (*api.CompareUsersResponse, error) {
			gotMax = max
			return &api.CompareUsersResponse{
				Success: true,
				User1:   &api.ComparedUser{Info: &twitter.User{Username: u1}},
				User2:   &api.ComparedUser{Info: &twitter.User{Username: u2}},
			}, nil
		},
	}
	c := newTestController(backend)

	view := c.CompareUsers(context.Background(), "alpha", "beta")
	require.NotNil(t, view)
	require.Empty(t, view.Err)
	assert.Equal(t, 50, gotMax)
}

func TestSentimentTestFailureStaysInConsole(t *testing.T) {
	backend := &fakeBackend{
		testSentiment: func(text string) (*api.TestSentimentResponse, error) {
			return nil, context.DeadlineExceeded
		},
	}
	c := newTestController(backend)

	view := c.TestSentiment(context.Background(), "some text")
	require.NotNil(t, view)
	assert.Empty(t, view.Err, "failures are not shown in the page")
	assert.Empty(t, view.HTML)
	assert.Equal(t, 1, c.Console().Len())
}

func TestSentimentTestRendersWholeConfidence(t *testing.T) {
	backend := &fakeBackend{
		testSentiment: func(text string) (*api.TestSentimentResponse, error) {
			return &api.TestSentimentResponse{
				Success:     true,
				Text:        text,
				CleanedText: "great launch",
				Sentiment:   "Positive",
				Confidence:  92.25,
			}, nil
		},
	}
	c := newTestController(backend)

	view := c.TestSentiment(context.Background(), "Great launch!")
	require.NotNil(t, view)
	require.Empty(t, view.Err)
	assert.Contains(t, string(view.HTML), "92% confidence")
	assert.Contains(t, string(view.HTML), "great launch")
}

func TestSwitchTabIsExclusive(t *testing.T) {
	c := newTestController(&fakeBackend{})

	assert.Equal(t, FlowUserInfo, c.Tabs().Active())
	assert.True(t, c.SwitchTab(FlowSearch))
	assert.Equal(t, FlowSearch, c.Tabs().Active())

	assert.False(t, c.SwitchTab("no-such-tab"))
	assert.Equal(t, FlowSearch, c.Tabs().Active(), "unknown tab leaves the active tab unchanged")
}

func TestExtractTweetID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1790000000000000000", "1790000000000000000"},
		{"  1790000000000000000  ", "1790000000000000000"},
		{"https://twitter.com/nasa/status/1790000000000000000", "1790000000000000000"},
		{"https://x.com/nasa/status/1790000000000000000?s=20", "1790000000000000000"},
		{"https://twitter.com/a/status/1/status/22", "22"},
		{"https://twitter.com/nasa/status/", "https://twitter.com/nasa/status/"},
		{"not a tweet", "not a tweet"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractTweetID(tt.input), "input %q", tt.input)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.873, "87.3%"},
		{92, "92%"},
		{0, "0%"},
		{1, "100%"},
		{33.333, "33.3%"},
		{-12.5, "-12.5%"},
		{100, "100%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPercent(tt.in), "input %v", tt.in)
	}
}

func TestFormatShare(t *testing.T) {
	// Stat percentages arrive already scaled; a small share stays small.
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "0.5%"},
		{0, "0%"},
		{33.33, "33.3%"},
		{50, "50%"},
		{100, "100%"},
		{-12.5, "-12.5%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatShare(tt.in), "input %v", tt.in)
	}
}

func TestStatsRenderSmallSharesUnscaled(t *testing.T) {
	backend := &fakeBackend{
		userTweets: func(username string, max int) (*api.UserTweetsResponse, error) {
			return &api.UserTweetsResponse{
				Success: true,
				Stats: &sentiment.Stats{
					Total:         200,
					Positive:      1,
					Neutral:       199,
					PositivePct:   0.5,
					NeutralPct:    99.5,
					AvgConfidence: 0.7,
				},
			}, nil
		},
	}
	c := newTestController(backend)

	view := c.AnalyzeUserTweets(context.Background(), "someone", 0)
	require.NotNil(t, view)
	require.Empty(t, view.Err)
	html := string(view.HTML)
	assert.Contains(t, html, "0.5% positive")
	assert.Contains(t, html, "99.5% neutral")
	assert.NotContains(t, html, "50% positive")
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,000", FormatCount(1000))
	assert.Equal(t, "12,345,678", FormatCount(12345678))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "Mar 14, 2026", FormatDate(time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)))
}

func TestDiagnosticsRecordsFlowActivity(t *testing.T) {
	backend := &fakeBackend{
		userInfo: func(username string) (*api.UserInfoResponse, error) {
			return nil, &api.Error{StatusCode: 404, Message: "User @ghost not found"}
		},
	}
	c := newTestController(backend)
	c.LookupUser(context.Background(), "ghost")

	frag, err := c.Diagnostics()
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(frag), "User @ghost not found"))
}
