package sentiment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/twitter"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"urls removed", "check https://t.co/abc123 out", "check out"},
		{"www removed", "see www.example.com now", "see now"},
		{"mentions removed", "hey @jack how are you", "hey how are you"},
		{"hash kept as word", "#golang is fun", "golang is fun"},
		{"punctuation dropped", "wow!!! really?", "wow really"},
		{"whitespace collapsed", "a   b\t\nc", "a b c"},
		{"lowercased", "LOVE It", "love it"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestPredict(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		text  string
		label string
	}{
		{"I love this, it is amazing", LabelPositive},
		{"this is terrible, I hate it", LabelNegative},
		{"the sky has clouds today", LabelNeutral},
		{"not good at all", LabelNegative},
		{"never bad, actually great", LabelPositive},
		{"", LabelNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			label, confidence := a.Predict(tt.text)
			assert.Equal(t, tt.label, label)
			assert.Greater(t, confidence, 0.0)
			assert.LessOrEqual(t, confidence, 0.99)
		})
	}
}

func TestPredictConfidenceScalesWithDominance(t *testing.T) {
	a := NewAnalyzer()

	_, mixed := a.Predict("good but awful")
	_, pure := a.Predict("amazing wonderful perfect")
	assert.Greater(t, pure, mixed)

	label, neutral := a.Predict("completely ordinary words")
	assert.Equal(t, LabelNeutral, label)
	assert.Equal(t, 0.5, neutral)
}

func tweet(id, text string, likes, retweets int) twitter.Tweet {
	return twitter.Tweet{
		ID:        id,
		Text:      text,
		CreatedAt: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		Likes:     likes,
		Retweets:  retweets,
	}
}

func TestComputeStats(t *testing.T) {
	a := NewAnalyzer()
	analyzed := a.AnalyzeTweets([]twitter.Tweet{
		tweet("1", "I love this", 0, 0),
		tweet("2", "I hate this", 0, 0),
		tweet("3", "plain words here", 0, 0),
		tweet("4", "this is wonderful", 0, 0),
	})

	s := ComputeStats(analyzed)
	require.NotNil(t, s)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Positive)
	assert.Equal(t, 1, s.Negative)
	assert.Equal(t, 1, s.Neutral)
	assert.Equal(t, 50.0, s.PositivePct)
	assert.Equal(t, 25.0, s.NegativePct)
	assert.Equal(t, 25.0, s.NeutralPct)
	assert.Greater(t, s.AvgConfidence, 0.0)
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Nil(t, ComputeStats(nil))
}

func TestCategorizeSortsByEngagement(t *testing.T) {
	a := NewAnalyzer()
	analyzed := a.AnalyzeTweets([]twitter.Tweet{
		tweet("low", "I love this", 1, 0),
		tweet("high", "this is amazing", 50, 20),
		tweet("mid", "great stuff", 10, 5),
	})

	c := Categorize(analyzed)
	require.Len(t, c.Positive, 3)
	assert.Equal(t, "high", c.Positive[0].ID)
	assert.Equal(t, "mid", c.Positive[1].ID)
	assert.Equal(t, "low", c.Positive[2].ID)
	assert.Empty(t, c.Negative)
	assert.Empty(t, c.Neutral)
}

func TestAnalyzeRepliesEmpty(t *testing.T) {
	a := NewAnalyzer()
	r := a.AnalyzeReplies(nil)
	assert.Equal(t, 0, r.TotalReplies)
	assert.Nil(t, r.SentimentStats)
	assert.NotNil(t, r.AnalyzedReplies)
	assert.Empty(t, r.AnalyzedReplies)
}

func TestAnalyzeReplies(t *testing.T) {
	a := NewAnalyzer()
	r := a.AnalyzeReplies([]twitter.Tweet{
		tweet("1", "great reply", 1, 0),
		tweet("2", "awful reply", 0, 0),
	})
	assert.Equal(t, 2, r.TotalReplies)
	require.NotNil(t, r.SentimentStats)
	assert.Equal(t, 2, r.SentimentStats.Total)
	assert.Len(t, r.AnalyzedReplies, 2)
}

func TestCompare(t *testing.T) {
	a := NewAnalyzer()
	set1 := a.AnalyzeTweets([]twitter.Tweet{
		tweet("1", "I love this", 0, 0),
		tweet("2", "this is great", 0, 0),
	})
	set2 := a.AnalyzeTweets([]twitter.Tweet{
		tweet("3", "I hate this", 0, 0),
		tweet("4", "this is great", 0, 0),
	})

	cmp := Compare(set1, set2)
	require.NotNil(t, cmp)
	assert.Equal(t, 100.0, cmp.Dataset1.PositivePct)
	assert.Equal(t, 50.0, cmp.Dataset2.PositivePct)
	assert.Equal(t, 50.0, cmp.Differences.PositiveDiff)
	assert.Equal(t, -50.0, cmp.Differences.NegativeDiff)

	assert.Nil(t, Compare(set1, nil))
}

func TestTopTweets(t *testing.T) {
	a := NewAnalyzer()
	analyzed := a.AnalyzeTweets([]twitter.Tweet{
		tweet("1", "x", 1, 1),
		tweet("2", "y", 100, 0),
		tweet("3", "z", 5, 90),
	})

	top := TopTweets(analyzed, 2, "engagement")
	require.Len(t, top, 2)
	assert.Equal(t, "2", top[0].ID)
	assert.Equal(t, "3", top[1].ID)

	byLikes := TopTweets(analyzed, 1, "likes")
	assert.Equal(t, "2", byLikes[0].ID)

	assert.Len(t, TopTweets(analyzed, 10, "engagement"), 3)
	assert.Nil(t, TopTweets(nil, 5, "engagement"))
}

func TestWordCloudData(t *testing.T) {
	a := NewAnalyzer()
	analyzed := a.AnalyzeTweets([]twitter.Tweet{
		tweet("1", "golang golang is the best language", 0, 0),
		tweet("2", "I hate golang sometimes", 0, 0),
	})

	all := WordCloudData(analyzed, "")
	assert.Equal(t, 3, all["golang"])
	assert.NotContains(t, all, "is")  // stop word
	assert.NotContains(t, all, "the") // stop word

	neg := WordCloudData(analyzed, "negative")
	assert.Equal(t, 1, neg["golang"])
	assert.NotContains(t, neg, "best")
}
