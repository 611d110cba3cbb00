package recommend

import (
	"context"
	"errors"
	"testing"

	"crochetCorner/domain"
)

func TestTrackInteraction_Recorded(t *testing.T) {
	interactions := &fakeInteractionRepo{byUser: map[uint][]domain.Interaction{}}
	svc := newTestService(interactions, nil, nil)

	res := svc.TrackInteraction(context.Background(), 1, 42, domain.InteractionPurchase, 5)

	if res.Status != TrackRecorded {
		t.Fatalf("status %q, want %q (reason %q)", res.Status, TrackRecorded, res.Reason)
	}
	if len(interactions.saved) != 1 {
		t.Fatalf("expected one stored row, got %d", len(interactions.saved))
	}
	stored := interactions.saved[0]
	if stored.UserID != 1 || stored.ProductID != 42 || stored.InteractionType != domain.InteractionPurchase || stored.Rating != 5 {
		t.Fatalf("unexpected stored row: %+v", stored)
	}
}

func TestTrackInteraction_SkipsAnonymousUser(t *testing.T) {
	interactions := &fakeInteractionRepo{byUser: map[uint][]domain.Interaction{}}
	svc := newTestService(interactions, nil, nil)

	res := svc.TrackInteraction(context.Background(), 0, 42, domain.InteractionView, 0)

	if res.Status != TrackSkipped || res.Reason != SkipReasonUnauthenticated {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(interactions.saved) != 0 {
		t.Fatalf("anonymous interaction must not be stored: %+v", interactions.saved)
	}
}

func TestTrackInteraction_DropsUnknownType(t *testing.T) {
	interactions := &fakeInteractionRepo{byUser: map[uint][]domain.Interaction{}}
	svc := newTestService(interactions, nil, nil)

	res := svc.TrackInteraction(context.Background(), 1, 42, "teleport", 0)

	if res.Status != TrackDropped || res.Reason != DropReasonInvalidType {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(interactions.saved) != 0 {
		t.Fatalf("invalid interaction must not be stored: %+v", interactions.saved)
	}
}

func TestTrackInteraction_DropsOutOfRangeRating(t *testing.T) {
	interactions := &fakeInteractionRepo{byUser: map[uint][]domain.Interaction{}}
	svc := newTestService(interactions, nil, nil)

	for _, rating := range []int{-1, 6} {
		res := svc.TrackInteraction(context.Background(), 1, 42, domain.InteractionLike, rating)
		if res.Status != TrackDropped || res.Reason != DropReasonInvalidRating {
			t.Fatalf("rating %d: unexpected result %+v", rating, res)
		}
	}
	if len(interactions.saved) != 0 {
		t.Fatalf("out-of-range ratings must not be stored: %+v", interactions.saved)
	}
}

func TestTrackInteraction_DropsOnStorageError(t *testing.T) {
	interactions := &fakeInteractionRepo{saveErr: errors.New("connection refused")}
	svc := newTestService(interactions, nil, nil)

	res := svc.TrackInteraction(context.Background(), 1, 42, domain.InteractionView, 0)

	if res.Status != TrackDropped || res.Reason != DropReasonStorage {
		t.Fatalf("unexpected result: %+v", res)
	}
}
