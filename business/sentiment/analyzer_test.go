package sentiment

import (
	"math"
	"reflect"
	"testing"

	"crochetCorner/domain"
)

func TestAnalyze_Positive(t *testing.T) {
	res := Analyze("This is a great and wonderful product")

	if res.Score != 1 {
		t.Fatalf("score %v, want 1", res.Score)
	}
	if res.Label != domain.SentimentPositive {
		t.Fatalf("label %q, want %q", res.Label, domain.SentimentPositive)
	}
	if res.Confidence != 1 {
		t.Fatalf("confidence %v, want 1", res.Confidence)
	}
	if !reflect.DeepEqual(res.Keywords, []string{"great", "wonderful"}) {
		t.Fatalf("keywords %v, want [great wonderful]", res.Keywords)
	}
}

func TestAnalyze_Negative(t *testing.T) {
	res := Analyze("Terrible, cheap, and a waste of money")

	if res.Score != -1 {
		t.Fatalf("score %v, want -1", res.Score)
	}
	if res.Label != domain.SentimentNegative {
		t.Fatalf("label %q, want %q", res.Label, domain.SentimentNegative)
	}
	if !reflect.DeepEqual(res.Keywords, []string{"terrible", "cheap", "waste"}) {
		t.Fatalf("keywords %v, want [terrible cheap waste]", res.Keywords)
	}
}

func TestAnalyze_NeutralWhenNothingMatches(t *testing.T) {
	res := Analyze("It arrived on Tuesday")

	if res.Score != 0 {
		t.Fatalf("score %v, want 0", res.Score)
	}
	if res.Label != domain.SentimentNeutral {
		t.Fatalf("label %q, want %q", res.Label, domain.SentimentNeutral)
	}
	if res.Confidence != 0 {
		t.Fatalf("confidence %v, want 0", res.Confidence)
	}
	if res.Keywords == nil || len(res.Keywords) != 0 {
		t.Fatalf("keywords must be empty and non-nil, got %#v", res.Keywords)
	}
}

func TestAnalyze_MixedSignalsDilute(t *testing.T) {
	// two positive, one negative: (2-1)/3
	res := Analyze("The yarn is soft and the pattern is beautiful but shipping was terrible")

	want := 1.0 / 3.0
	if math.Abs(res.Score-want) > 1e-9 {
		t.Fatalf("score %v, want %v", res.Score, want)
	}
	if res.Label != domain.SentimentPositive {
		t.Fatalf("label %q, want %q", res.Label, domain.SentimentPositive)
	}
	if math.Abs(res.Confidence-want) > 1e-9 {
		t.Fatalf("confidence %v, want %v", res.Confidence, want)
	}
}

func TestAnalyze_BalancedSignalsAreNeutral(t *testing.T) {
	res := Analyze("Great colors but awful sizing")

	if res.Score != 0 {
		t.Fatalf("score %v, want 0", res.Score)
	}
	if res.Label != domain.SentimentNeutral {
		t.Fatalf("label %q, want %q", res.Label, domain.SentimentNeutral)
	}
}

func TestAnalyze_RepeatedKeywordsCountTwice(t *testing.T) {
	res := Analyze("Love love this blanket")

	if res.Score != 1 {
		t.Fatalf("score %v, want 1", res.Score)
	}
	if !reflect.DeepEqual(res.Keywords, []string{"love", "love"}) {
		t.Fatalf("repeated keywords must be preserved, got %v", res.Keywords)
	}
}

func TestAnalyze_CaseAndPunctuationInsensitive(t *testing.T) {
	res := Analyze("AMAZING! Absolutely perfect.")

	if res.Label != domain.SentimentPositive {
		t.Fatalf("label %q, want %q", res.Label, domain.SentimentPositive)
	}
	if !reflect.DeepEqual(res.Keywords, []string{"amazing", "perfect"}) {
		t.Fatalf("keywords %v, want [amazing perfect]", res.Keywords)
	}
}

func TestAnalyze_EmptyText(t *testing.T) {
	res := Analyze("")

	if res.Score != 0 || res.Label != domain.SentimentNeutral || res.Confidence != 0 {
		t.Fatalf("unexpected result for empty text: %+v", res)
	}
}
