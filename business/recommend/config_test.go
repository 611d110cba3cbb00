package recommend

import (
	"testing"

	"crochetCorner/domain"
)

func TestInteractionScore_BaseValues(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		interactionType string
		want            float64
	}{
		{domain.InteractionView, 1},
		{domain.InteractionCartAdd, 2},
		{domain.InteractionLike, 3},
		{domain.InteractionPurchase, 5},
		{"teleport", 0},
	}

	for _, tc := range cases {
		got := cfg.InteractionScore(domain.Interaction{InteractionType: tc.interactionType})
		if got != tc.want {
			t.Errorf("%s: score %v, want %v", tc.interactionType, got, tc.want)
		}
	}
}

func TestInteractionScore_RatingIsAdditive(t *testing.T) {
	cfg := DefaultConfig()

	got := cfg.InteractionScore(domain.Interaction{
		InteractionType: domain.InteractionPurchase,
		Rating:          4,
	})
	if got != 9 {
		t.Fatalf("purchase with rating 4: score %v, want 9", got)
	}

	// a rating on an unknown type still scores zero
	got = cfg.InteractionScore(domain.Interaction{InteractionType: "teleport", Rating: 5})
	if got != 0 {
		t.Fatalf("unknown type with rating: score %v, want 0", got)
	}
}

func TestDefaultConfig_BlendWeights(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ContentWeight != 0.6 || cfg.CollaborativeWeight != 0.4 {
		t.Fatalf("blend weights %v/%v, want 0.6/0.4", cfg.ContentWeight, cfg.CollaborativeWeight)
	}
	if cfg.SimilarityThreshold != 2 || cfg.MaxSimilarUsers != 5 {
		t.Fatalf("neighbour params %d/%d, want 2/5", cfg.SimilarityThreshold, cfg.MaxSimilarUsers)
	}
}

func TestNormalizeLimit(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	if got := svc.normalizeLimit(0); got != DefaultConfig().DefaultLimit {
		t.Fatalf("limit 0 normalized to %d", got)
	}
	if got := svc.normalizeLimit(-3); got != DefaultConfig().DefaultLimit {
		t.Fatalf("limit -3 normalized to %d", got)
	}
	if got := svc.normalizeLimit(25); got != 25 {
		t.Fatalf("limit 25 normalized to %d", got)
	}
}
