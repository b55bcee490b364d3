// Package sentiment classifies tweet text into Positive/Neutral/Negative
// with a confidence score, and aggregates classified tweets into the
// statistics the dashboard endpoints serve.
package sentiment

import (
	"math"
	"sort"
	"strings"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/twitter"
)

// Sentiment labels.
const (
	LabelPositive = "Positive"
	LabelNeutral  = "Neutral"
	LabelNegative = "Negative"
)

// AnalyzedTweet is a tweet with its classification attached.
type AnalyzedTweet struct {
	twitter.Tweet
	Sentiment   string  `json:"sentiment"`
	Confidence  float64 `json:"confidence"`
	CleanedText string  `json:"cleaned_text"`
}

// Analyzer scores text against a weighted lexicon with negation flipping.
type Analyzer struct {
	lexicon map[string]float64
}

// NewAnalyzer returns an analyzer backed by the built-in lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{lexicon: defaultLexicon}
}

// NewAnalyzerFromFile returns an analyzer backed by a lexicon file.
func NewAnalyzerFromFile(path string) (*Analyzer, error) {
	lexicon, err := LoadLexicon(path)
	if err != nil {
		return nil, err
	}
	return &Analyzer{lexicon: lexicon}, nil
}

// Predict classifies a single text. Confidence is in (0, 0.99]: 0.5 means
// the evidence was balanced or absent, values toward 0.99 mean one polarity
// dominated.
func (a *Analyzer) Predict(text string) (string, float64) {
	tokens := strings.Fields(CleanText(text))

	var posWeight, negWeight float64
	negated := false
	for _, tok := range tokens {
		if negations[tok] {
			negated = true
			continue
		}
		w, ok := a.lexicon[tok]
		if ok {
			if negated {
				w = -w
			}
			if w > 0 {
				posWeight += w
			} else {
				negWeight += -w
			}
		}
		negated = false
	}

	total := posWeight + negWeight
	if total == 0 {
		return LabelNeutral, 0.5
	}

	dominance := math.Abs(posWeight-negWeight) / total
	confidence := math.Min(0.5+0.5*dominance, 0.99)
	switch {
	case posWeight > negWeight:
		return LabelPositive, confidence
	case negWeight > posWeight:
		return LabelNegative, confidence
	default:
		return LabelNeutral, 0.5
	}
}

// AnalyzeTweets classifies each tweet and attaches the cleaned text.
func (a *Analyzer) AnalyzeTweets(tweets []twitter.Tweet) []AnalyzedTweet {
	analyzed := make([]AnalyzedTweet, 0, len(tweets))
	for _, tw := range tweets {
		label, confidence := a.Predict(tw.Text)
		analyzed = append(analyzed, AnalyzedTweet{
			Tweet:       tw,
			Sentiment:   label,
			Confidence:  confidence,
			CleanedText: CleanText(tw.Text),
		})
	}
	return analyzed
}

// Stats summarizes a classified set: counts, percentages (2 decimals) and
// average confidence (4 decimals).
type Stats struct {
	Total         int     `json:"total"`
	Positive      int     `json:"positive"`
	Neutral       int     `json:"neutral"`
	Negative      int     `json:"negative"`
	PositivePct   float64 `json:"positive_pct"`
	NeutralPct    float64 `json:"neutral_pct"`
	NegativePct   float64 `json:"negative_pct"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// ComputeStats returns nil for an empty input.
func ComputeStats(analyzed []AnalyzedTweet) *Stats {
	if len(analyzed) == 0 {
		return nil
	}

	s := &Stats{Total: len(analyzed)}
	var confidenceSum float64
	for _, t := range analyzed {
		switch t.Sentiment {
		case LabelPositive:
			s.Positive++
		case LabelNegative:
			s.Negative++
		default:
			s.Neutral++
		}
		confidenceSum += t.Confidence
	}

	total := float64(s.Total)
	s.PositivePct = round2(float64(s.Positive) / total * 100)
	s.NeutralPct = round2(float64(s.Neutral) / total * 100)
	s.NegativePct = round2(float64(s.Negative) / total * 100)
	s.AvgConfidence = round4(confidenceSum / total)
	return s
}

// Categorized buckets tweets by label, each bucket ordered by engagement
// (likes + retweets, descending).
type Categorized struct {
	Positive []AnalyzedTweet `json:"positive"`
	Neutral  []AnalyzedTweet `json:"neutral"`
	Negative []AnalyzedTweet `json:"negative"`
}

// Categorize splits analyzed tweets into sentiment buckets.
func Categorize(analyzed []AnalyzedTweet) *Categorized {
	c := &Categorized{
		Positive: []AnalyzedTweet{},
		Neutral:  []AnalyzedTweet{},
		Negative: []AnalyzedTweet{},
	}
	for _, t := range analyzed {
		switch t.Sentiment {
		case LabelPositive:
			c.Positive = append(c.Positive, t)
		case LabelNegative:
			c.Negative = append(c.Negative, t)
		default:
			c.Neutral = append(c.Neutral, t)
		}
	}
	sortByEngagement(c.Positive)
	sortByEngagement(c.Neutral)
	sortByEngagement(c.Negative)
	return c
}

func sortByEngagement(ts []AnalyzedTweet) {
	sort.SliceStable(ts, func(i, j int) bool {
		return ts[i].Likes+ts[i].Retweets > ts[j].Likes+ts[j].Retweets
	})
}

// ReplyAnalysis is the reply-thread summary served by the tweet-replies
// endpoint. With zero replies only TotalReplies and the empty list are set.
type ReplyAnalysis struct {
	TotalReplies       int             `json:"total_replies"`
	SentimentStats     *Stats          `json:"sentiment_stats,omitempty"`
	CategorizedReplies *Categorized    `json:"categorized_replies,omitempty"`
	AnalyzedReplies    []AnalyzedTweet `json:"analyzed_replies"`
}

const maxAnalyzedReplies = 50

// AnalyzeReplies classifies a reply set and summarizes it.
func (a *Analyzer) AnalyzeReplies(replies []twitter.Tweet) *ReplyAnalysis {
	if len(replies) == 0 {
		return &ReplyAnalysis{AnalyzedReplies: []AnalyzedTweet{}}
	}

	analyzed := a.AnalyzeTweets(replies)
	kept := analyzed
	if len(kept) > maxAnalyzedReplies {
		kept = kept[:maxAnalyzedReplies]
	}
	return &ReplyAnalysis{
		TotalReplies:       len(replies),
		SentimentStats:     ComputeStats(analyzed),
		CategorizedReplies: Categorize(analyzed),
		AnalyzedReplies:    kept,
	}
}

// ComparisonResult holds side-by-side stats and their deltas.
type ComparisonResult struct {
	Dataset1    *Stats      `json:"dataset1"`
	Dataset2    *Stats      `json:"dataset2"`
	Differences Differences `json:"differences"`
}

// Differences are dataset1 minus dataset2.
type Differences struct {
	PositiveDiff   float64 `json:"positive_diff"`
	NeutralDiff    float64 `json:"neutral_diff"`
	NegativeDiff   float64 `json:"negative_diff"`
	ConfidenceDiff float64 `json:"confidence_diff"`
}

// Compare produces a comparison of two classified sets; nil when either is
// empty.
func Compare(a, b []AnalyzedTweet) *ComparisonResult {
	stats1 := ComputeStats(a)
	stats2 := ComputeStats(b)
	if stats1 == nil || stats2 == nil {
		return nil
	}
	return &ComparisonResult{
		Dataset1: stats1,
		Dataset2: stats2,
		Differences: Differences{
			PositiveDiff:   round2(stats1.PositivePct - stats2.PositivePct),
			NeutralDiff:    round2(stats1.NeutralPct - stats2.NeutralPct),
			NegativeDiff:   round2(stats1.NegativePct - stats2.NegativePct),
			ConfidenceDiff: round4(stats1.AvgConfidence - stats2.AvgConfidence),
		},
	}
}

// TopTweets returns the top n tweets ordered by the given criterion:
// "engagement" (default), "likes", "retweets" or "confidence".
func TopTweets(analyzed []AnalyzedTweet, n int, by string) []AnalyzedTweet {
	if len(analyzed) == 0 {
		return nil
	}

	sorted := make([]AnalyzedTweet, len(analyzed))
	copy(sorted, analyzed)
	sort.SliceStable(sorted, func(i, j int) bool {
		switch by {
		case "likes":
			return sorted[i].Likes > sorted[j].Likes
		case "retweets":
			return sorted[i].Retweets > sorted[j].Retweets
		case "confidence":
			return sorted[i].Confidence > sorted[j].Confidence
		default:
			return sorted[i].Likes+sorted[i].Retweets > sorted[j].Likes+sorted[j].Retweets
		}
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round4(x float64) float64 { return math.Round(x*10000) / 10000 }
