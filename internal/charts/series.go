// Package charts builds chart-ready series for the dashboard frontends and
// renders them server-side. Series are shaped for direct consumption by the
// chart renderer: labels plus values, no client-side aggregation.
package charts

import (
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/sentiment"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/twitter"
)

// Kind selects the visual form of a chart.
type Kind string

const (
	KindPie  Kind = "pie"
	KindBar  Kind = "bar"
	KindLine Kind = "line"
)

// Sentiment palette shared by every chart.
const (
	colorPositive = "#48bb78"
	colorNeutral  = "#4299e1"
	colorNegative = "#f56565"
	colorPrimary  = "rgba(102, 126, 234, 0.7)"
	colorAccent   = "rgba(237, 100, 166, 0.7)"
)

// Dataset is one labeled value run inside a multi-set series.
type Dataset struct {
	Label           string      `json:"label,omitempty"`
	Data            []float64   `json:"data"`
	BackgroundColor interface{} `json:"backgroundColor,omitempty"`
	BorderColor     string      `json:"borderColor,omitempty"`
	BorderWidth     int         `json:"borderWidth,omitempty"`
	Fill            bool        `json:"fill,omitempty"`
}

// Series is a chart-ready data structure: labels plus either a flat value
// list (pie style) or one or more datasets (bar/line style).
type Series struct {
	Labels          []string    `json:"labels"`
	Data            []float64   `json:"data,omitempty"`
	Colors          []string    `json:"colors,omitempty"`
	Percentages     []float64   `json:"percentages,omitempty"`
	Datasets        []Dataset   `json:"datasets,omitempty"`
	BackgroundColor interface{} `json:"backgroundColor,omitempty"`
	TweetTexts      []string    `json:"tweet_texts,omitempty"`
}

var sentimentLabels = []string{"Positive", "Neutral", "Negative"}
var sentimentColors = []string{colorPositive, colorNeutral, colorNegative}

// SentimentPie builds the sentiment distribution pie.
func SentimentPie(stats *sentiment.Stats) *Series {
	if stats == nil {
		return nil
	}
	return &Series{
		Labels:      sentimentLabels,
		Data:        []float64{float64(stats.Positive), float64(stats.Neutral), float64(stats.Negative)},
		Colors:      sentimentColors,
		Percentages: []float64{stats.PositivePct, stats.NeutralPct, stats.NegativePct},
	}
}

// SentimentBar builds the sentiment count bar chart.
func SentimentBar(stats *sentiment.Stats) *Series {
	if stats == nil {
		return nil
	}
	return &Series{
		Labels: sentimentLabels,
		Datasets: []Dataset{{
			Label:           "Tweet Count",
			Data:            []float64{float64(stats.Positive), float64(stats.Neutral), float64(stats.Negative)},
			BackgroundColor: sentimentColors,
		}},
	}
}

// Comparison builds a two-dataset bar chart of sentiment percentages.
func Comparison(cmp *sentiment.ComparisonResult, label1, label2 string) *Series {
	if cmp == nil {
		return nil
	}
	return &Series{
		Labels: sentimentLabels,
		Datasets: []Dataset{
			{
				Label:           label1,
				Data:            []float64{cmp.Dataset1.PositivePct, cmp.Dataset1.NeutralPct, cmp.Dataset1.NegativePct},
				BackgroundColor: colorPrimary,
				BorderColor:     "rgba(102, 126, 234, 1)",
				BorderWidth:     2,
			},
			{
				Label:           label2,
				Data:            []float64{cmp.Dataset2.PositivePct, cmp.Dataset2.NeutralPct, cmp.Dataset2.NegativePct},
				BackgroundColor: colorAccent,
				BorderColor:     "rgba(237, 100, 166, 1)",
				BorderWidth:     2,
			},
		},
	}
}

// Timeline builds the per-day sentiment trend (filled line chart).
func Timeline(analyzed []sentiment.AnalyzedTweet) *Series {
	if len(analyzed) == 0 {
		return nil
	}

	type counts struct{ positive, neutral, negative float64 }
	daily := make(map[string]*counts)
	for _, t := range analyzed {
		day := t.CreatedAt.Format("2006-01-02")
		c, ok := daily[day]
		if !ok {
			c = &counts{}
			daily[day] = c
		}
		switch t.Sentiment {
		case sentiment.LabelPositive:
			c.positive++
		case sentiment.LabelNegative:
			c.negative++
		default:
			c.neutral++
		}
	}

	days := make([]string, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Strings(days)

	pos := make([]float64, len(days))
	neu := make([]float64, len(days))
	neg := make([]float64, len(days))
	for i, day := range days {
		pos[i] = daily[day].positive
		neu[i] = daily[day].neutral
		neg[i] = daily[day].negative
	}

	return &Series{
		Labels: days,
		Datasets: []Dataset{
			{Label: "Positive", Data: pos, BorderColor: colorPositive, BackgroundColor: "rgba(72, 187, 120, 0.2)", Fill: true},
			{Label: "Neutral", Data: neu, BorderColor: colorNeutral, BackgroundColor: "rgba(66, 153, 225, 0.2)", Fill: true},
			{Label: "Negative", Data: neg, BorderColor: colorNegative, BackgroundColor: "rgba(245, 101, 101, 0.2)", Fill: true},
		},
	}
}

// Engagement builds the top-N engagement bar chart with truncated tweet
// texts for tooltips.
func Engagement(analyzed []sentiment.AnalyzedTweet, topN int) *Series {
	if len(analyzed) == 0 {
		return nil
	}

	top := sentiment.TopTweets(analyzed, topN, "engagement")
	labels := make([]string, len(top))
	likes := make([]float64, len(top))
	retweets := make([]float64, len(top))
	replies := make([]float64, len(top))
	texts := make([]string, len(top))
	for i, t := range top {
		labels[i] = fmt.Sprintf("Tweet %d", i+1)
		likes[i] = float64(t.Likes)
		retweets[i] = float64(t.Retweets)
		replies[i] = float64(t.Replies)
		texts[i] = truncate(t.Text, 50) + "..."
	}

	return &Series{
		Labels: labels,
		Datasets: []Dataset{
			{Label: "Likes", Data: likes, BackgroundColor: colorNegative},
			{Label: "Retweets", Data: retweets, BackgroundColor: colorPositive},
			{Label: "Replies", Data: replies, BackgroundColor: colorNeutral},
		},
		TweetTexts: texts,
	}
}

// ConfidenceDistribution buckets confidence scores into five 20% bins.
func ConfidenceDistribution(analyzed []sentiment.AnalyzedTweet) *Series {
	if len(analyzed) == 0 {
		return nil
	}

	labels := []string{"0-20%", "20-40%", "40-60%", "60-80%", "80-100%"}
	bins := make([]float64, 5)
	for _, t := range analyzed {
		pct := t.Confidence * 100
		switch {
		case pct <= 20:
			bins[0]++
		case pct <= 40:
			bins[1]++
		case pct <= 60:
			bins[2]++
		case pct <= 80:
			bins[3]++
		default:
			bins[4]++
		}
	}

	return &Series{
		Labels:          labels,
		Data:            bins,
		BackgroundColor: []string{colorNegative, "#ed8936", "#ecc94b", colorPositive, "#38a169"},
	}
}

// Hashtags builds the top-N hashtag bar chart; nil when the set carries no
// hashtags at all.
func Hashtags(analyzed []sentiment.AnalyzedTweet, topN int) *Series {
	if len(analyzed) == 0 {
		return nil
	}

	freq := make(map[string]int)
	for _, t := range analyzed {
		for _, tag := range t.Hashtags {
			freq[tag]++
		}
	}
	if len(freq) == 0 {
		return nil
	}

	type tagCount struct {
		tag   string
		count int
	}
	all := make([]tagCount, 0, len(freq))
	for tag, count := range freq {
		all = append(all, tagCount{tag, count})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].tag < all[j].tag
	})
	if len(all) > topN {
		all = all[:topN]
	}

	labels := make([]string, len(all))
	data := make([]float64, len(all))
	for i, tc := range all {
		labels[i] = "#" + tc.tag
		data[i] = float64(tc.count)
	}
	return &Series{Labels: labels, Data: data, BackgroundColor: "#667eea"}
}

// SentimentByHour builds 24 hourly buckets of sentiment counts.
func SentimentByHour(analyzed []sentiment.AnalyzedTweet) *Series {
	if len(analyzed) == 0 {
		return nil
	}

	pos := make([]float64, 24)
	neu := make([]float64, 24)
	neg := make([]float64, 24)
	for _, t := range analyzed {
		h := t.CreatedAt.Hour()
		switch t.Sentiment {
		case sentiment.LabelPositive:
			pos[h]++
		case sentiment.LabelNegative:
			neg[h]++
		default:
			neu[h]++
		}
	}

	labels := make([]string, 24)
	for h := range labels {
		labels[h] = time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04")
	}

	return &Series{
		Labels: labels,
		Datasets: []Dataset{
			{Label: "Positive", Data: pos, BorderColor: colorPositive},
			{Label: "Neutral", Data: neu, BorderColor: colorNeutral},
			{Label: "Negative", Data: neg, BorderColor: colorNegative},
		},
	}
}

// UserComparison builds the followers/following/tweets bar chart for two
// profiles.
func UserComparison(u1, u2 *twitter.User) *Series {
	if u1 == nil || u2 == nil {
		return nil
	}
	return &Series{
		Labels: []string{"Followers", "Following", "Total Tweets"},
		Datasets: []Dataset{
			{
				Label:           u1.Username,
				Data:            []float64{float64(u1.Followers), float64(u1.Following), float64(u1.TweetCount)},
				BackgroundColor: colorPrimary,
			},
			{
				Label:           u2.Username,
				Data:            []float64{float64(u2.Followers), float64(u2.Following), float64(u2.TweetCount)},
				BackgroundColor: colorAccent,
			},
		},
	}
}

// truncate cuts on rune boundaries so multi-byte text never yields broken
// UTF-8.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
