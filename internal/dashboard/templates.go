package dashboard

import (
	"fmt"
	"html/template"
	"math"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/sentiment"
)

// All user-visible markup goes through html/template so that tweet text,
// usernames and error messages are escaped exactly once, at render time.

var tmplFuncs = template.FuncMap{
	"count":   FormatCount,
	"percent": FormatPercent,
	"pct":     FormatShare,
	"date":    FormatDate,
	"whole": func(v float64) string {
		return fmt.Sprintf("%d%%", int(math.Round(v)))
	},
	"take": func(n int, ts []sentiment.AnalyzedTweet) []sentiment.AnalyzedTweet {
		if len(ts) > n {
			return ts[:n]
		}
		return ts
	},
}

var templates = template.Must(template.New("dashboard").Funcs(tmplFuncs).Parse(`
{{define "error"}}<div class="error-message">{{.}}</div>{{end}}

{{define "charts"}}
{{range .}}<figure class="chart-box"><img src="/charts/{{.Canvas}}.png" alt="{{.Canvas}}"></figure>
{{end}}{{end}}

{{define "user-info"}}
<div class="profile-card">
  <h3>{{.User.Name}} {{if .User.Verified}}<span class="badge">verified</span>{{end}}</h3>
  <p class="handle">@{{.User.Username}}</p>
  {{if .User.Description}}<p class="bio">{{.User.Description}}</p>{{else}}<p class="bio empty">No description</p>{{end}}
  <ul class="metrics">
    <li><strong>{{count .User.Followers}}</strong> followers</li>
    <li><strong>{{count .User.Following}}</strong> following</li>
    <li><strong>{{count .User.TweetCount}}</strong> tweets</li>
    <li><strong>{{count .User.ListedCount}}</strong> listed</li>
  </ul>
  {{if not .User.CreatedAt.IsZero}}<p class="joined">Joined {{date .User.CreatedAt}}</p>{{end}}
</div>
{{end}}

{{define "stats"}}
<ul class="stat-row">
  <li class="positive">{{pct .PositivePct}} positive</li>
  <li class="neutral">{{pct .NeutralPct}} neutral</li>
  <li class="negative">{{pct .NegativePct}} negative</li>
  <li>{{.Total}} analyzed · avg confidence {{percent .AvgConfidence}}</li>
</ul>
{{end}}

{{define "tweet-item"}}
<li class="tweet {{.Sentiment}}">
  <p>{{.Text}}</p>
  <span class="meta">{{date .CreatedAt}} · {{count .Likes}} likes · {{count .Retweets}} retweets · {{.Sentiment}} ({{percent .Confidence}})</span>
</li>
{{end}}

{{define "tweet-list"}}
<ul class="tweet-list">
  {{range .}}{{template "tweet-item" .}}{{end}}
</ul>
{{end}}

{{define "category-samples"}}
<ul class="tweet-list">
  {{range .}}
  <li class="tweet {{.Sentiment}}">
    <p>{{.Text}}</p>
    <span class="meta">{{date .CreatedAt}} · {{count .Likes}} likes · {{count .Retweets}} retweets · {{percent .Confidence}}</span>
    <a class="pivot" href="/?tab=tweet-replies&amp;tweet_id={{.ID}}">analyze replies</a>
  </li>
  {{end}}
</ul>
{{end}}

{{define "user-tweets"}}
<section class="analysis">
  {{with .Resp.Stats}}{{template "stats" .}}{{end}}
  {{template "charts" .Charts}}
  {{with .Resp.Categorized}}
  <h4 class="positive">Positive</h4>
  {{template "category-samples" take 5 .Positive}}
  <h4 class="neutral">Neutral</h4>
  {{template "category-samples" take 5 .Neutral}}
  <h4 class="negative">Negative</h4>
  {{template "category-samples" take 5 .Negative}}
  {{end}}
</section>
{{end}}

{{define "tweet-replies"}}
<section class="analysis">
  {{with .Resp.Tweet}}
  <blockquote class="original-tweet">
    <p>{{.Text}}</p>
    <span class="meta">{{count .Likes}} likes · {{count .Retweets}} retweets · {{count .Replies}} replies</span>
  </blockquote>
  {{end}}
  {{if eq .Resp.ReplyAnalysis.TotalReplies 0}}
  <p class="empty">No replies found for this tweet</p>
  {{else}}
  <p>{{count .Resp.ReplyAnalysis.TotalReplies}} replies analyzed</p>
  {{with .Resp.ReplyAnalysis.SentimentStats}}{{template "stats" .}}{{end}}
  {{template "charts" .Charts}}
  {{template "tweet-list" take 10 .Resp.ReplyAnalysis.AnalyzedReplies}}
  {{end}}
</section>
{{end}}

{{define "compared-user"}}
<div class="compare-card">
  {{with .Info}}
  <h4>@{{.Username}}</h4>
  <p>{{count .Followers}} followers · {{count .TweetCount}} tweets</p>
  {{end}}
  {{with .Stats}}{{template "stats" .}}{{else}}<p class="empty">No tweets to analyze</p>{{end}}
</div>
{{end}}

{{define "compare-users"}}
<section class="analysis compare">
  <div class="compare-grid">
    {{template "compared-user" .Resp.User1}}
    {{template "compared-user" .Resp.User2}}
  </div>
  {{with .Resp.Comparison}}
  <p class="diff">Positive sentiment difference: {{pct .Differences.PositiveDiff}}</p>
  {{end}}
  {{template "charts" .Charts}}
</section>
{{end}}

{{define "compared-tweet"}}
<div class="compare-card">
  {{with .Details}}
  <blockquote><p>{{.Text}}</p></blockquote>
  <p class="meta">{{count .Likes}} likes · {{count .Replies}} replies</p>
  {{end}}
  {{with .Stats}}{{template "stats" .}}{{else}}<p class="empty">No replies to analyze</p>{{end}}
</div>
{{end}}

{{define "compare-tweets"}}
<section class="analysis compare">
  <div class="compare-grid">
    {{template "compared-tweet" .Resp.Tweet1}}
    {{template "compared-tweet" .Resp.Tweet2}}
  </div>
  {{template "charts" .Charts}}
</section>
{{end}}

{{define "search"}}
<section class="analysis">
  <h3>Results for {{.Resp.Query}}</h3>
  {{with .Resp.Stats}}{{template "stats" .}}{{end}}
  {{template "charts" .Charts}}
  {{template "tweet-list" .Resp.Tweets}}
</section>
{{end}}

{{define "sentiment-test"}}
<div class="test-result {{.Sentiment}}">
  <p class="label">{{.Sentiment}} · {{whole .Confidence}} confidence</p>
  <p class="original">{{.Text}}</p>
  <p class="cleaned">{{.CleanedText}}</p>
</div>
{{end}}

{{define "diagnostics"}}
<ul class="console">
  {{range .}}<li class="{{.Level}}">{{.Time.Format "15:04:05"}} {{if .Flow}}[{{.Flow}}] {{end}}{{.Message}}</li>
  {{end}}
</ul>
{{end}}

{{define "page"}}
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Twitter Sentiment Dashboard</title>
  <link rel="stylesheet" href="/static/dashboard.css">
</head>
<body>
  <header><h1>Twitter Sentiment Dashboard</h1></header>
  <nav class="tabs">
    {{$active := .Active}}
    {{range .Tabs}}<a href="/?tab={{.}}" class="tab{{if eq . $active}} active{{end}}">{{.}}</a>
    {{end}}
  </nav>
  <main id="content">
    <form method="post" action="/dashboard/{{.Active}}" class="flow-form">
      {{if eq .Active "user-info"}}
      <input type="text" name="username" placeholder="@username">
      {{else if eq .Active "user-tweets"}}
      <input type="text" name="username" placeholder="@username">
      <input type="number" name="max_results" placeholder="50">
      {{else if eq .Active "tweet-replies"}}
      <input type="text" name="tweet_id" value="{{.TweetID}}" placeholder="tweet ID or URL">
      {{else if eq .Active "compare-users"}}
      <input type="text" name="username1" placeholder="first @username">
      <input type="text" name="username2" placeholder="second @username">
      {{else if eq .Active "compare-tweets"}}
      <input type="text" name="tweet_id1" placeholder="first tweet ID or URL">
      <input type="text" name="tweet_id2" placeholder="second tweet ID or URL">
      {{else if eq .Active "search"}}
      <input type="text" name="query" placeholder="search query">
      <input type="number" name="max_results" placeholder="100">
      {{else}}
      <input type="text" name="text" placeholder="text to classify">
      {{end}}
      <button type="submit">Analyze</button>
    </form>
    <div class="result-region">{{.Body}}</div>
  </main>
</body>
</html>
{{end}}
`))
