package recommend

import (
	"context"
	"errors"
	"math"
	"testing"

	"crochetCorner/domain"
)

// hybridFixture: user 1 viewed product 1 and liked product 2. Product 3
// shares a feature with product 1 (content signal), user 2 is a neighbour
// (similarity 2) who purchased product 4 (collaborative signal), and
// product 5 carries both signals.
func hybridFixture() (*fakeInteractionRepo, *fakeFeatureRepo) {
	interactions := &fakeInteractionRepo{byUser: map[uint][]domain.Interaction{
		1: {
			{UserID: 1, ProductID: 1, InteractionType: domain.InteractionView},
			{UserID: 1, ProductID: 2, InteractionType: domain.InteractionLike},
		},
		2: {
			{UserID: 2, ProductID: 1, InteractionType: domain.InteractionView},
			{UserID: 2, ProductID: 2, InteractionType: domain.InteractionView},
			{UserID: 2, ProductID: 4, InteractionType: domain.InteractionPurchase},
			{UserID: 2, ProductID: 5, InteractionType: domain.InteractionView},
		},
	}}
	features := &fakeFeatureRepo{features: []domain.ProductFeature{
		{ProductID: 1, FeatureName: "color", FeatureValue: "sage", Weight: 1},
		{ProductID: 3, FeatureName: "color", FeatureValue: "sage", Weight: 1},
		{ProductID: 5, FeatureName: "color", FeatureValue: "sage", Weight: 1},
	}}
	return interactions, features
}

func scoreOf(recs []domain.ScoredProduct, productID uint64) (float64, bool) {
	for _, rec := range recs {
		if rec.ProductID == productID {
			return rec.Score, true
		}
	}
	return 0, false
}

func TestHybrid_BlendsWeightedScores(t *testing.T) {
	interactions, features := hybridFixture()
	svc := newTestService(interactions, features, nil)
	ctx := context.Background()

	content := svc.ContentBased(ctx, 1, 10)
	collaborative := svc.Collaborative(ctx, 1, 10)
	hybrid := svc.Hybrid(ctx, 1, 10)

	cfg := DefaultConfig()
	for _, pid := range []uint64{3, 4, 5} {
		var want float64
		if s, ok := scoreOf(content, pid); ok {
			want += cfg.ContentWeight * s
		}
		if s, ok := scoreOf(collaborative, pid); ok {
			want += cfg.CollaborativeWeight * s
		}

		got, ok := scoreOf(hybrid, pid)
		if !ok {
			t.Fatalf("product %d missing from hybrid output: %+v", pid, hybrid)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("product %d: blended score %v, want %v", pid, got, want)
		}
	}
}

func TestHybrid_SingleSourceKeepsWeightedScore(t *testing.T) {
	interactions, features := hybridFixture()
	svc := newTestService(interactions, features, nil)

	hybrid := svc.Hybrid(context.Background(), 1, 10)

	// product 4 only has the collaborative signal: similarity 2 × purchase 5,
	// scaled by the collaborative weight with no renormalization
	got, ok := scoreOf(hybrid, 4)
	if !ok {
		t.Fatalf("product 4 missing from hybrid output: %+v", hybrid)
	}
	want := DefaultConfig().CollaborativeWeight * 10
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("score %v, want %v", got, want)
	}
}

func TestHybrid_MergesReasonsFromBothSources(t *testing.T) {
	interactions, features := hybridFixture()
	svc := newTestService(interactions, features, nil)

	hybrid := svc.Hybrid(context.Background(), 1, 10)

	for _, rec := range hybrid {
		if rec.ProductID != 5 {
			continue
		}
		seen := make(map[string]bool)
		for _, r := range rec.Reasons {
			if seen[r] {
				t.Fatalf("duplicate reason %q: %v", r, rec.Reasons)
			}
			seen[r] = true
		}
		if !seen["Similar color: sage"] || !seen["Liked by similar users (2 common products)"] {
			t.Fatalf("expected reasons from both sources, got %v", rec.Reasons)
		}
		return
	}
	t.Fatalf("product 5 missing from hybrid output: %+v", hybrid)
}

func TestHybrid_DegradesToCollaborativeWhenFeaturesUnavailable(t *testing.T) {
	interactions, _ := hybridFixture()
	features := &fakeFeatureRepo{err: errors.New("connection refused")}
	svc := newTestService(interactions, features, nil)

	hybrid := svc.Hybrid(context.Background(), 1, 10)

	if _, ok := scoreOf(hybrid, 3); ok {
		t.Fatalf("content-only candidate must vanish when features fail: %+v", hybrid)
	}
	got, ok := scoreOf(hybrid, 4)
	if !ok {
		t.Fatalf("collaborative candidate must survive a content failure: %+v", hybrid)
	}
	want := DefaultConfig().CollaborativeWeight * 10
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("score %v, want %v", got, want)
	}
}

func TestHybrid_EmptyWhenBothSourcesFail(t *testing.T) {
	interactions := &fakeInteractionRepo{findErr: errors.New("connection refused")}
	svc := newTestService(interactions, nil, nil)

	hybrid := svc.Hybrid(context.Background(), 1, 10)
	if hybrid == nil || len(hybrid) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", hybrid)
	}
}

func TestHybrid_SortedAndLimited(t *testing.T) {
	interactions, features := hybridFixture()
	svc := newTestService(interactions, features, nil)

	hybrid := svc.Hybrid(context.Background(), 1, 2)

	if len(hybrid) != 2 {
		t.Fatalf("expected 2 results, got %d", len(hybrid))
	}
	if hybrid[0].Score < hybrid[1].Score {
		t.Fatalf("results not in descending score order: %+v", hybrid)
	}
}
