package charts

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/sentiment"
	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/twitter"
)

func analyzedFixture() []sentiment.AnalyzedTweet {
	mk := func(id, label string, likes, retweets int, hour int, tags ...string) sentiment.AnalyzedTweet {
		return sentiment.AnalyzedTweet{
			Tweet: twitter.Tweet{
				ID:        id,
				Text:      "text of " + id,
				CreatedAt: time.Date(2024, 3, 10, hour, 0, 0, 0, time.UTC),
				Likes:     likes,
				Retweets:  retweets,
				Hashtags:  tags,
			},
			Sentiment:   label,
			Confidence:  0.9,
			CleanedText: "text of " + id,
		}
	}
	return []sentiment.AnalyzedTweet{
		mk("1", sentiment.LabelPositive, 10, 5, 9, "go"),
		mk("2", sentiment.LabelNegative, 3, 1, 14, "go", "fail"),
		mk("3", sentiment.LabelNeutral, 0, 0, 14),
	}
}

func TestSentimentPie(t *testing.T) {
	stats := sentiment.ComputeStats(analyzedFixture())
	s := SentimentPie(stats)
	require.NotNil(t, s)
	assert.Equal(t, []string{"Positive", "Neutral", "Negative"}, s.Labels)
	assert.Equal(t, []float64{1, 1, 1}, s.Data)
	assert.Len(t, s.Percentages, 3)

	assert.Nil(t, SentimentPie(nil))
}

func TestComparisonSeries(t *testing.T) {
	set := analyzedFixture()
	cmp := sentiment.Compare(set, set)
	require.NotNil(t, cmp)

	s := Comparison(cmp, "alice", "bob")
	require.NotNil(t, s)
	require.Len(t, s.Datasets, 2)
	assert.Equal(t, "alice", s.Datasets[0].Label)
	assert.Equal(t, "bob", s.Datasets[1].Label)
	assert.Len(t, s.Datasets[0].Data, 3)
}

func TestTimelineGroupsByDay(t *testing.T) {
	s := Timeline(analyzedFixture())
	require.NotNil(t, s)
	assert.Equal(t, []string{"2024-03-10"}, s.Labels)
	require.Len(t, s.Datasets, 3)
	assert.Equal(t, []float64{1}, s.Datasets[0].Data) // positive

	assert.Nil(t, Timeline(nil))
}

func TestEngagementTopN(t *testing.T) {
	s := Engagement(analyzedFixture(), 2)
	require.NotNil(t, s)
	assert.Equal(t, []string{"Tweet 1", "Tweet 2"}, s.Labels)
	assert.Equal(t, []float64{10, 3}, s.Datasets[0].Data) // likes, sorted by engagement
	assert.Len(t, s.TweetTexts, 2)
}

func TestEngagementTruncatesOnRuneBoundaries(t *testing.T) {
	long := strings.Repeat("日本語のツイート", 10) // 70 runes, 3 bytes each
	set := analyzedFixture()
	set[0].Text = long

	s := Engagement(set, 1)
	require.NotNil(t, s)
	require.Len(t, s.TweetTexts, 1)
	got := s.TweetTexts[0]
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, string([]rune(long)[:50]), strings.TrimSuffix(got, "..."))
}

func TestConfidenceDistribution(t *testing.T) {
	s := ConfidenceDistribution(analyzedFixture())
	require.NotNil(t, s)
	assert.Equal(t, []float64{0, 0, 0, 0, 3}, s.Data)
}

func TestHashtags(t *testing.T) {
	s := Hashtags(analyzedFixture(), 10)
	require.NotNil(t, s)
	assert.Equal(t, []string{"#go", "#fail"}, s.Labels)
	assert.Equal(t, []float64{2, 1}, s.Data)

	noTags := []sentiment.AnalyzedTweet{{Sentiment: sentiment.LabelNeutral}}
	assert.Nil(t, Hashtags(noTags, 10))
}

func TestSentimentByHour(t *testing.T) {
	s := SentimentByHour(analyzedFixture())
	require.NotNil(t, s)
	require.Len(t, s.Labels, 24)
	assert.Equal(t, "09:00", s.Labels[9])
	assert.Equal(t, float64(1), s.Datasets[0].Data[9])  // positive at 09
	assert.Equal(t, float64(1), s.Datasets[2].Data[14]) // negative at 14
}

func TestUserComparison(t *testing.T) {
	u1 := &twitter.User{Username: "a", Followers: 10, Following: 5, TweetCount: 100}
	u2 := &twitter.User{Username: "b", Followers: 20, Following: 2, TweetCount: 50}
	s := UserComparison(u1, u2)
	require.NotNil(t, s)
	assert.Equal(t, []float64{10, 5, 100}, s.Datasets[0].Data)
	assert.Equal(t, []float64{20, 2, 50}, s.Datasets[1].Data)
	assert.Nil(t, UserComparison(u1, nil))
}

func TestRegistrySingleLiveChartPerCanvas(t *testing.T) {
	r := NewRegistry()
	stats := sentiment.ComputeStats(analyzedFixture())

	first := r.Acquire("sentimentPie", KindPie, SentimentPie(stats))
	second := r.Acquire("sentimentPie", KindPie, SentimentPie(stats))

	assert.True(t, first.Disposed())
	assert.False(t, second.Disposed())
	assert.Equal(t, 1, r.Live())

	h, ok := r.Get("sentimentPie")
	require.True(t, ok)
	assert.Same(t, second, h)

	r.Release("sentimentPie")
	assert.True(t, second.Disposed())
	assert.Equal(t, 0, r.Live())
}

func TestRegistryConcurrentAcquire(t *testing.T) {
	r := NewRegistry()
	stats := sentiment.ComputeStats(analyzedFixture())
	series := SentimentPie(stats)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Acquire("canvas", KindPie, series)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, r.Live())
}

func TestPNGRendererRendersEveryKind(t *testing.T) {
	set := analyzedFixture()
	stats := sentiment.ComputeStats(set)
	r := NewPNGRenderer()

	for name, tc := range map[string]struct {
		kind   Kind
		series *Series
	}{
		"pie":         {KindPie, SentimentPie(stats)},
		"bar":         {KindBar, SentimentBar(stats)},
		"grouped bar": {KindBar, Comparison(sentiment.Compare(set, set), "a", "b")},
		"line":        {KindLine, Timeline(set)},
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, tc.kind, tc.series))
			assert.Greater(t, buf.Len(), 0)
		})
	}

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, KindPie, nil))
	assert.Error(t, r.Render(&buf, Kind("scatter"), SentimentPie(stats)))
}
