package sentiment

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// defaultLexicon maps cleaned tokens to polarity weights. Positive weights
// push toward Positive, negative toward Negative; magnitude 2 marks strongly
// polar words.
var defaultLexicon = map[string]float64{
	// strongly positive
	"love": 2, "amazing": 2, "awesome": 2, "excellent": 2, "fantastic": 2,
	"incredible": 2, "perfect": 2, "brilliant": 2, "outstanding": 2, "best": 2,
	"wonderful": 2, "superb": 2,

	// positive
	"good": 1, "great": 1, "nice": 1, "happy": 1, "glad": 1, "cool": 1,
	"fun": 1, "enjoy": 1, "enjoyed": 1, "like": 1, "liked": 1, "likes": 1,
	"win": 1, "won": 1, "winning": 1, "beautiful": 1, "thanks": 1,
	"thank": 1, "helpful": 1, "impressive": 1, "recommend": 1, "solid": 1,
	"useful": 1, "fast": 1, "smooth": 1, "easy": 1, "better": 1,
	"improved": 1, "success": 1, "successful": 1, "excited": 1, "exciting": 1,
	"congrats": 1, "congratulations": 1, "proud": 1, "favorite": 1, "wow": 1,

	// negative
	"bad": -1, "sad": -1, "angry": -1, "annoying": -1, "annoyed": -1,
	"slow": -1, "broken": -1, "bug": -1, "bugs": -1, "problem": -1,
	"problems": -1, "issue": -1, "issues": -1, "fail": -1, "failed": -1,
	"failing": -1, "lose": -1, "lost": -1, "losing": -1, "poor": -1,
	"boring": -1, "ugly": -1, "wrong": -1, "difficult": -1, "hard": -1,
	"expensive": -1, "disappointed": -1, "disappointing": -1, "mess": -1,
	"crash": -1, "crashed": -1, "scam": -1, "spam": -1, "worse": -1,

	// strongly negative
	"hate": -2, "awful": -2, "terrible": -2, "horrible": -2, "worst": -2,
	"disgusting": -2, "garbage": -2, "trash": -2, "useless": -2,
	"pathetic": -2, "disaster": -2, "unacceptable": -2,
}

// negations flip the polarity of the token that follows them.
var negations = map[string]bool{
	"not": true, "no": true, "never": true, "nothing": true,
	"dont": true, "doesnt": true, "didnt": true, "isnt": true,
	"wasnt": true, "arent": true, "wont": true, "cant": true,
	"couldnt": true, "shouldnt": true, "wouldnt": true,
}

// LoadLexicon reads a lexicon file with one "word weight" pair per line.
// Blank lines and lines starting with # are skipped.
func LoadLexicon(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lexicon: %w", err)
	}
	defer f.Close()

	lexicon := make(map[string]float64)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("lexicon line %d: want \"word weight\", got %q", line, text)
		}
		w, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("lexicon line %d: bad weight %q: %w", line, fields[1], err)
		}
		lexicon[strings.ToLower(fields[0])] = w
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon: %w", err)
	}
	if len(lexicon) == 0 {
		return nil, fmt.Errorf("lexicon %s is empty", path)
	}
	return lexicon, nil
}
