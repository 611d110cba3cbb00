package recommend

import (
	"context"
	"testing"

	"crochetCorner/domain"
)

func TestCollaborative_ColdStart(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	recs := svc.Collaborative(context.Background(), 7, 10)
	if len(recs) != 0 {
		t.Fatalf("expected empty result for user without history, got %+v", recs)
	}
}

func TestCollaborative_BelowSimilarityThreshold(t *testing.T) {
	// two other users each share exactly one product with the target:
	// similarity 1 < threshold 2, so nobody qualifies as a neighbour
	interactions := &fakeInteractionRepo{byUser: map[uint][]domain.Interaction{
		1: {
			{UserID: 1, ProductID: 10, InteractionType: domain.InteractionView},
			{UserID: 1, ProductID: 11, InteractionType: domain.InteractionView},
		},
		2: {
			{UserID: 2, ProductID: 10, InteractionType: domain.InteractionLike},
			{UserID: 2, ProductID: 99, InteractionType: domain.InteractionPurchase},
		},
		3: {
			{UserID: 3, ProductID: 11, InteractionType: domain.InteractionLike},
			{UserID: 3, ProductID: 98, InteractionType: domain.InteractionPurchase},
		},
	}}
	svc := newTestService(interactions, nil, nil)

	recs := svc.Collaborative(context.Background(), 1, 10)
	if len(recs) != 0 {
		t.Fatalf("no neighbour reaches similarity 2, expected empty, got %+v", recs)
	}
}

func TestCollaborative_NeighbourPropagation(t *testing.T) {
	interactions := &fakeInteractionRepo{byUser: map[uint][]domain.Interaction{
		1: {
			{UserID: 1, ProductID: 10, InteractionType: domain.InteractionView},
			{UserID: 1, ProductID: 11, InteractionType: domain.InteractionView},
		},
		2: {
			{UserID: 2, ProductID: 10, InteractionType: domain.InteractionLike},
			{UserID: 2, ProductID: 11, InteractionType: domain.InteractionLike},
			{UserID: 2, ProductID: 20, InteractionType: domain.InteractionPurchase},
		},
	}}
	svc := newTestService(interactions, nil, nil)

	recs := svc.Collaborative(context.Background(), 1, 10)

	if len(recs) != 1 {
		t.Fatalf("expected one candidate, got %+v", recs)
	}
	if recs[0].ProductID != 20 {
		t.Fatalf("expected product 20, got %d", recs[0].ProductID)
	}
	// similarity 2 × purchase score 5 = 10
	if recs[0].Score != 10 {
		t.Fatalf("expected score 10, got %v", recs[0].Score)
	}
	if len(recs[0].Reasons) != 1 || recs[0].Reasons[0] != "Liked by similar users (2 common products)" {
		t.Fatalf("unexpected reasons: %v", recs[0].Reasons)
	}
}

func TestCollaborative_ReasonsDeduplicated(t *testing.T) {
	interactions := &fakeInteractionRepo{byUser: map[uint][]domain.Interaction{
		1: {
			{UserID: 1, ProductID: 10, InteractionType: domain.InteractionView},
			{UserID: 1, ProductID: 11, InteractionType: domain.InteractionView},
		},
		2: {
			{UserID: 2, ProductID: 10, InteractionType: domain.InteractionView},
			{UserID: 2, ProductID: 11, InteractionType: domain.InteractionView},
			{UserID: 2, ProductID: 20, InteractionType: domain.InteractionView},
			{UserID: 2, ProductID: 20, InteractionType: domain.InteractionLike},
		},
	}}
	svc := newTestService(interactions, nil, nil)

	recs := svc.Collaborative(context.Background(), 1, 10)

	if len(recs) != 1 {
		t.Fatalf("expected one candidate, got %+v", recs)
	}
	// two contributing rows, one distinct reason string
	if len(recs[0].Reasons) != 1 {
		t.Fatalf("reasons must be de-duplicated, got %v", recs[0].Reasons)
	}
	// sim 2 × (view 1 + like 3) = 8
	if recs[0].Score != 8 {
		t.Fatalf("expected score 8, got %v", recs[0].Score)
	}
}

func TestCollaborative_NeverRecommendsTouched(t *testing.T) {
	interactions := &fakeInteractionRepo{byUser: map[uint][]domain.Interaction{
		1: {
			{UserID: 1, ProductID: 10, InteractionType: domain.InteractionView},
			{UserID: 1, ProductID: 11, InteractionType: domain.InteractionView},
		},
		2: {
			{UserID: 2, ProductID: 10, InteractionType: domain.InteractionPurchase},
			{UserID: 2, ProductID: 11, InteractionType: domain.InteractionPurchase},
		},
	}}
	svc := newTestService(interactions, nil, nil)

	recs := svc.Collaborative(context.Background(), 1, 10)
	if len(recs) != 0 {
		t.Fatalf("neighbour only touched the target's own products, expected empty, got %+v", recs)
	}
}

func TestCollaborative_TopNeighboursOnly(t *testing.T) {
	byUser := map[uint][]domain.Interaction{
		1: {
			{UserID: 1, ProductID: 10, InteractionType: domain.InteractionView},
			{UserID: 1, ProductID: 11, InteractionType: domain.InteractionView},
			{UserID: 1, ProductID: 12, InteractionType: domain.InteractionView},
		},
	}
	// seven neighbours with similarity 2..8; only the strongest five count
	for uid := uint(2); uid <= 8; uid++ {
		rows := []domain.Interaction{}
		for i := 0; i < int(uid); i++ {
			rows = append(rows, domain.Interaction{
				UserID: uid, ProductID: uint64(10 + i%3), InteractionType: domain.InteractionView,
			})
		}
		rows = append(rows, domain.Interaction{
			UserID: uid, ProductID: uint64(100 + uid), InteractionType: domain.InteractionView,
		})
		byUser[uid] = rows
	}
	svc := newTestService(&fakeInteractionRepo{byUser: byUser}, nil, nil)

	recs := svc.Collaborative(context.Background(), 1, 20)

	got := make(map[uint64]bool)
	for _, rec := range recs {
		got[rec.ProductID] = true
	}
	// users 2 and 3 (similarity 2 and 3) lose to the top five (users 4..8)
	if got[102] || got[103] {
		t.Fatalf("products of below-top-5 neighbours must not appear: %+v", recs)
	}
	for uid := uint(4); uid <= 8; uid++ {
		if !got[uint64(100+uid)] {
			t.Fatalf("expected product of neighbour %d in output: %+v", uid, recs)
		}
	}
}
