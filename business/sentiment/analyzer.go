package sentiment

import (
	"math"
	"regexp"
	"strings"

	"crochetCorner/domain"
)

// Result is the outcome of analyzing one piece of review text. Keywords
// lists every matched token in encounter order; a word that appears twice
// is reported twice.
type Result struct {
	Score      float64  `json:"sentiment_score"`
	Label      string   `json:"sentiment_label"`
	Confidence float64  `json:"confidence"`
	Keywords   []string `json:"keywords"`
}

var positiveWords = map[string]bool{
	"love":      true,
	"great":     true,
	"excellent": true,
	"amazing":   true,
	"wonderful": true,
	"perfect":   true,
	"beautiful": true,
	"soft":      true,
	"cozy":      true,
	"adorable":  true,
	"quality":   true,
	"recommend": true,
}

var negativeWords = map[string]bool{
	"bad":           true,
	"terrible":      true,
	"awful":         true,
	"poor":          true,
	"horrible":      true,
	"hate":          true,
	"cheap":         true,
	"disappointing": true,
	"waste":         true,
	"broken":        true,
	"itchy":         true,
}

var tokenPattern = regexp.MustCompile(`\w+`)

const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// Analyze is a pure keyword-counting classifier. No negation handling and
// no stemming: "not great" counts as positive. Score is the signed fraction
// of matched keywords, zero when nothing matched.
func Analyze(text string) Result {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)

	var positiveCount, negativeCount int
	keywords := []string{}

	for _, tok := range tokens {
		switch {
		case positiveWords[tok]:
			positiveCount++
			keywords = append(keywords, tok)
		case negativeWords[tok]:
			negativeCount++
			keywords = append(keywords, tok)
		}
	}

	total := positiveCount + negativeCount
	if total < 1 {
		total = 1
	}
	score := float64(positiveCount-negativeCount) / float64(total)

	label := domain.SentimentNeutral
	if score > positiveThreshold {
		label = domain.SentimentPositive
	} else if score < negativeThreshold {
		label = domain.SentimentNegative
	}

	return Result{
		Score:      score,
		Label:      label,
		Confidence: math.Abs(score),
		Keywords:   keywords,
	}
}
