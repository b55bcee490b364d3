// Package dashboard implements the server-rendered dashboard: input
// validation, API calls, HTML rendering and chart lifecycle.
package dashboard

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/api"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/charts"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/diag"
)

// Backend is the API surface the controller drives. *api.Client satisfies
// it; tests substitute a fake.
type Backend interface {
	UserInfo(ctx context.Context, username string) (*api.UserInfoResponse, error)
	UserTweets(ctx context.Context, username string, maxResults int) (*api.UserTweetsResponse, error)
	TweetReplies(ctx context.Context, tweetID string) (*api.TweetRepliesResponse, error)
	CompareUsers(ctx context.Context, username1, username2 string, maxTweets int) (*api.CompareUsersResponse, error)
	CompareTweets(ctx context.Context, tweetID1, tweetID2 string) (*api.CompareTweetsResponse, error)
	SearchAnalyze(ctx context.Context, query string, maxResults int) (*api.SearchAnalyzeResponse, error)
	TestSentiment(ctx context.Context, text string) (*api.TestSentimentResponse, error)
}

// Flow names double as tab identifiers.
const (
	FlowUserInfo      = "user-info"
	FlowUserTweets    = "user-tweets"
	FlowTweetReplies  = "tweet-replies"
	FlowCompareUsers  = "compare-users"
	FlowCompareTweets = "compare-tweets"
	FlowSearch        = "search"
	FlowSentimentTest = "sentiment-test"
)

// Canvas identifiers, one per chart slot in the page.
const (
	canvasSentimentPie   = "sentimentPieChart"
	canvasSentimentBar   = "sentimentBarChart"
	canvasTimeline       = "timelineChart"
	canvasEngagement     = "engagementChart"
	canvasReplyPie       = "replyPieChart"
	canvasUserComparison = "userComparisonChart"
	canvasSentimentCmp   = "sentimentComparisonChart"
	canvasTweetCmp       = "tweetComparisonChart"
	canvasSearchPie      = "searchPieChart"
	canvasSearchBar      = "searchBarChart"
	canvasSearchTimeline = "searchTimelineChart"
	canvasSearchTop      = "searchEngagementChart"
	canvasHashtags       = "hashtagChart"
	canvasHourly         = "hourlyChart"
	canvasConfidence     = "confidenceChart"
)

// ChartRef points a rendered fragment at a live registry entry.
type ChartRef struct {
	Canvas string
	Kind   charts.Kind
}

// View is the outcome of one flow run: either an error message or rendered
// HTML plus the charts it references. A nil View means the run was
// superseded by a newer request for the same flow and must be discarded.
type View struct {
	Flow   string
	Err    string
	HTML   template.HTML
	Charts []ChartRef
}

// Controller validates input, calls the API and renders results.
type Controller struct {
	backend  Backend
	registry *charts.Registry
	console  *diag.Console
	tabs     *TabSet
	log      *logrus.Logger

	mu     sync.Mutex
	tokens map[string]uint64
}

// NewController wires a controller around a backend.
func NewController(backend Backend, log *logrus.Logger) *Controller {
	return &Controller{
		backend:  backend,
		registry: charts.NewRegistry(),
		console:  diag.NewConsole(200),
		tabs: NewTabSet(
			FlowUserInfo,
			FlowUserTweets,
			FlowTweetReplies,
			FlowCompareUsers,
			FlowCompareTweets,
			FlowSearch,
			FlowSentimentTest,
		),
		log:    log,
		tokens: make(map[string]uint64),
	}
}

// Registry exposes the chart registry for the PNG endpoint.
func (c *Controller) Registry() *charts.Registry { return c.registry }

// Console exposes the diagnostics trail.
func (c *Controller) Console() *diag.Console { return c.console }

// Tabs exposes the tab set.
func (c *Controller) Tabs() *TabSet { return c.tabs }

// begin opens a new run for a flow and returns its token. Any run holding
// an older token for the same flow is stale from this point on.
func (c *Controller) begin(flow string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[flow]++
	return c.tokens[flow]
}

func (c *Controller) current(flow string, token uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokens[flow] == token
}

func (c *Controller) errView(flow string, err error) *View {
	var apiErr *api.Error
	msg := "Network error. Please try again."
	if errors.As(err, &apiErr) {
		msg = apiErr.Message
	}
	c.console.Errorf(flow, "%s", msg)
	c.log.WithError(err).WithField("flow", flow).Warn("flow failed")
	return &View{Flow: flow, Err: msg}
}

func (c *Controller) inputError(flow, msg string) *View {
	c.console.Errorf(flow, "%s", msg)
	return &View{Flow: flow, Err: msg}
}

func (c *Controller) render(flow, name string, data interface{}, refs []ChartRef) *View {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		c.log.WithError(err).WithField("template", name).Error("render failed")
		return &View{Flow: flow, Err: "Failed to render results"}
	}
	return &View{Flow: flow, HTML: template.HTML(buf.String()), Charts: refs}
}

// acquire installs a chart and returns its reference; nil series produce no
// entry so fragments only show charts that exist.
func (c *Controller) acquire(canvas string, kind charts.Kind, series *charts.Series, refs []ChartRef) []ChartRef {
	if series == nil {
		return refs
	}
	c.registry.Acquire(canvas, kind, series)
	return append(refs, ChartRef{Canvas: canvas, Kind: kind})
}

type fragmentData struct {
	Resp   interface{}
	Charts []ChartRef
}

// LookupUser runs the profile lookup flow.
func (c *Controller) LookupUser(ctx context.Context, username string) *View {
	username = strings.TrimSpace(username)
	if username == "" {
		return c.inputError(FlowUserInfo, "Please enter a username")
	}

	token := c.begin(FlowUserInfo)
	resp, err := c.backend.UserInfo(ctx, username)
	if !c.current(FlowUserInfo, token) {
		return nil
	}
	if err != nil {
		return c.errView(FlowUserInfo, err)
	}

	c.console.Infof(FlowUserInfo, "loaded profile @%s", resp.UserInfo.Username)
	return c.render(FlowUserInfo, "user-info", struct {
		User interface{}
	}{resp.UserInfo}, nil)
}

// AnalyzeUserTweets runs the user-tweet analysis flow. maxResults <= 0 uses
// the server default.
func (c *Controller) AnalyzeUserTweets(ctx context.Context, username string, maxResults int) *View {
	username = strings.TrimSpace(username)
	if username == "" {
		return c.inputError(FlowUserTweets, "Please enter a username")
	}

	token := c.begin(FlowUserTweets)
	resp, err := c.backend.UserTweets(ctx, username, maxResults)
	if !c.current(FlowUserTweets, token) {
		return nil
	}
	if err != nil {
		return c.errView(FlowUserTweets, err)
	}

	var refs []ChartRef
	if resp.Charts != nil {
		refs = c.acquire(canvasSentimentPie, charts.KindPie, resp.Charts.PieChart, refs)
		refs = c.acquire(canvasSentimentBar, charts.KindBar, resp.Charts.BarChart, refs)
		refs = c.acquire(canvasTimeline, charts.KindLine, resp.Charts.Timeline, refs)
		refs = c.acquire(canvasEngagement, charts.KindBar, resp.Charts.Engagement, refs)
	}

	c.console.Infof(FlowUserTweets, "analyzed %d tweets from @%s", len(resp.Tweets), strings.TrimPrefix(username, "@"))
	return c.render(FlowUserTweets, "user-tweets", fragmentData{Resp: resp, Charts: refs}, refs)
}

// AnalyzeReplies runs the reply analysis flow. Input may be a tweet ID or a
// full status URL.
func (c *Controller) AnalyzeReplies(ctx context.Context, tweetInput string) *View {
	tweetID := ExtractTweetID(tweetInput)
	if tweetID == "" {
		return c.inputError(FlowTweetReplies, "Please enter a tweet ID or URL")
	}

	token := c.begin(FlowTweetReplies)
	resp, err := c.backend.TweetReplies(ctx, tweetID)
	if !c.current(FlowTweetReplies, token) {
		return nil
	}
	if err != nil {
		return c.errView(FlowTweetReplies, err)
	}

	var refs []ChartRef
	if resp.Charts != nil {
		refs = c.acquire(canvasReplyPie, charts.KindPie, resp.Charts.SentimentDistribution, refs)
	}

	c.console.Infof(FlowTweetReplies, "analyzed %d replies for tweet %s", resp.ReplyAnalysis.TotalReplies, tweetID)
	return c.render(FlowTweetReplies, "tweet-replies", fragmentData{Resp: resp, Charts: refs}, refs)
}

// compareDepth is how many tweets per user the comparison flow analyzes.
// Fixed, not exposed in the form.
const compareDepth = 50

// CompareUsers runs the user comparison flow.
func (c *Controller) CompareUsers(ctx context.Context, username1, username2 string) *View {
	username1 = strings.TrimSpace(username1)
	username2 = strings.TrimSpace(username2)
	if username1 == "" || username2 == "" {
		return c.inputError(FlowCompareUsers, "Please enter both usernames")
	}

	token := c.begin(FlowCompareUsers)
	resp, err := c.backend.CompareUsers(ctx, username1, username2, compareDepth)
	if !c.current(FlowCompareUsers, token) {
		return nil
	}
	if err != nil {
		return c.errView(FlowCompareUsers, err)
	}

	var refs []ChartRef
	if resp.Charts != nil {
		refs = c.acquire(canvasUserComparison, charts.KindBar, resp.Charts.ProfileComparison, refs)
		refs = c.acquire(canvasSentimentCmp, charts.KindBar, resp.Charts.SentimentComparison, refs)
	}

	c.console.Infof(FlowCompareUsers, "compared %s and %s", username1, username2)
	return c.render(FlowCompareUsers, "compare-users", fragmentData{Resp: resp, Charts: refs}, refs)
}

// CompareTweets runs the tweet comparison flow. Inputs may be IDs or URLs.
func (c *Controller) CompareTweets(ctx context.Context, input1, input2 string) *View {
	id1 := ExtractTweetID(input1)
	id2 := ExtractTweetID(input2)
	if id1 == "" || id2 == "" {
		return c.inputError(FlowCompareTweets, "Please enter both tweet IDs")
	}

	token := c.begin(FlowCompareTweets)
	resp, err := c.backend.CompareTweets(ctx, id1, id2)
	if !c.current(FlowCompareTweets, token) {
		return nil
	}
	if err != nil {
		return c.errView(FlowCompareTweets, err)
	}

	var refs []ChartRef
	if resp.Charts != nil {
		refs = c.acquire(canvasTweetCmp, charts.KindBar, resp.Charts.Comparison, refs)
	}

	c.console.Infof(FlowCompareTweets, "compared tweets %s and %s", id1, id2)
	return c.render(FlowCompareTweets, "compare-tweets", fragmentData{Resp: resp, Charts: refs}, refs)
}

// SearchAndAnalyze runs the search flow. maxResults <= 0 uses the server
// default.
func (c *Controller) SearchAndAnalyze(ctx context.Context, query string, maxResults int) *View {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.inputError(FlowSearch, "Please enter a search query")
	}

	token := c.begin(FlowSearch)
	resp, err := c.backend.SearchAnalyze(ctx, query, maxResults)
	if !c.current(FlowSearch, token) {
		return nil
	}
	if err != nil {
		return c.errView(FlowSearch, err)
	}

	var refs []ChartRef
	if resp.Charts != nil {
		refs = c.acquire(canvasSearchPie, charts.KindPie, resp.Charts.PieChart, refs)
		refs = c.acquire(canvasSearchBar, charts.KindBar, resp.Charts.BarChart, refs)
		refs = c.acquire(canvasSearchTimeline, charts.KindLine, resp.Charts.Timeline, refs)
		refs = c.acquire(canvasSearchTop, charts.KindBar, resp.Charts.Engagement, refs)
		refs = c.acquire(canvasHashtags, charts.KindBar, resp.Charts.Hashtags, refs)
		refs = c.acquire(canvasHourly, charts.KindBar, resp.Charts.Hourly, refs)
		refs = c.acquire(canvasConfidence, charts.KindBar, resp.Charts.Confidence, refs)
	}

	c.console.Infof(FlowSearch, "search %q matched %d tweets", query, len(resp.Tweets))
	return c.render(FlowSearch, "search", fragmentData{Resp: resp, Charts: refs}, refs)
}

// TestSentiment runs the quick classifier check. Empty input is ignored and
// failures go to the diagnostic console instead of the page.
func (c *Controller) TestSentiment(ctx context.Context, text string) *View {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	token := c.begin(FlowSentimentTest)
	resp, err := c.backend.TestSentiment(ctx, text)
	if !c.current(FlowSentimentTest, token) {
		return nil
	}
	if err != nil {
		c.console.Errorf(FlowSentimentTest, "classification failed: %v", err)
		c.log.WithError(err).Warn("sentiment test failed")
		return &View{Flow: FlowSentimentTest}
	}

	c.console.Infof(FlowSentimentTest, "classified text as %s", resp.Sentiment)
	return c.render(FlowSentimentTest, "sentiment-test", resp, nil)
}

// SwitchTab activates a tab. Charts belonging to other tabs stay registered;
// the registry replaces them the next time their flow runs.
func (c *Controller) SwitchTab(name string) bool {
	ok := c.tabs.Activate(name)
	if ok {
		c.console.Infof("tabs", "switched to %s", name)
	}
	return ok
}

// Diagnostics renders the console trail.
func (c *Controller) Diagnostics() (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "diagnostics", c.console.Entries()); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
