package sentiment

import (
	"sort"
	"strings"
)

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"is": true, "was": true, "are": true, "were": true, "been": true,
	"be": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "must": true, "can": true,
	"this": true, "that": true, "these": true, "those": true, "i": true,
	"you": true, "he": true, "she": true, "it": true, "we": true,
	"they": true, "what": true, "which": true, "who": true, "when": true,
	"where": true, "why": true, "how": true,
}

const wordCloudLimit = 50

// WordCloudData counts cleaned-text word frequencies across the set,
// skipping stop words and words of two characters or fewer. An optional
// sentiment filter restricts the input to one label. Returns at most the
// 50 most frequent words.
func WordCloudData(analyzed []AnalyzedTweet, sentimentFilter string) map[string]int {
	freq := make(map[string]int)
	for _, t := range analyzed {
		if sentimentFilter != "" && !strings.EqualFold(t.Sentiment, sentimentFilter) {
			continue
		}
		for _, word := range strings.Fields(t.CleanedText) {
			if len(word) <= 2 || stopWords[word] {
				continue
			}
			freq[word]++
		}
	}

	if len(freq) <= wordCloudLimit {
		return freq
	}

	type wc struct {
		word  string
		count int
	}
	all := make([]wc, 0, len(freq))
	for w, c := range freq {
		all = append(all, wc{w, c})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].count != all[j].count {
			return all[i].count > all[j].count
		}
		return all[i].word < all[j].word
	})

	top := make(map[string]int, wordCloudLimit)
	for _, e := range all[:wordCloudLimit] {
		top[e.word] = e.count
	}
	return top
}
