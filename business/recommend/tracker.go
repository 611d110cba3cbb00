package recommend

import (
	"context"

	"crochetCorner/domain"
	"crochetCorner/pkg/logger"
)

type TrackStatus string

const (
	// TrackRecorded means the interaction row was appended.
	TrackRecorded TrackStatus = "recorded"
	// TrackSkipped means tracking deliberately did nothing (anonymous
	// browsing). Not an error.
	TrackSkipped TrackStatus = "skipped"
	// TrackDropped means the interaction could not be stored. The failure
	// is logged here and never propagated: tracking is best-effort
	// telemetry, not a transactional requirement.
	TrackDropped TrackStatus = "dropped"
)

const (
	SkipReasonUnauthenticated = "unauthenticated"
	DropReasonInvalidType     = "invalid_interaction_type"
	DropReasonInvalidRating   = "invalid_rating"
	DropReasonStorage         = "storage_error"
)

type TrackResult struct {
	Status TrackStatus `json:"status"`
	Reason string      `json:"reason,omitempty"`
}

// TrackInteraction appends one interaction row for the user. userID zero
// means no authenticated user: the call is a skip, so anonymous browsing
// can keep firing tracking calls without special-casing.
func (s *Service) TrackInteraction(ctx context.Context, userID uint, productID uint64, interactionType string, rating int) TrackResult {
	if userID == 0 {
		return TrackResult{Status: TrackSkipped, Reason: SkipReasonUnauthenticated}
	}

	if !domain.ValidInteractionType(interactionType) {
		logger.Warn("dropping interaction with unknown type",
			"user_id", userID,
			"interaction_type", interactionType,
		)
		InteractionsTrackedTotal.WithLabelValues(interactionType, string(TrackDropped)).Inc()
		return TrackResult{Status: TrackDropped, Reason: DropReasonInvalidType}
	}

	if rating < 0 || rating > 5 {
		logger.Warn("dropping interaction with out-of-range rating",
			"user_id", userID,
			"rating", rating,
		)
		InteractionsTrackedTotal.WithLabelValues(interactionType, string(TrackDropped)).Inc()
		return TrackResult{Status: TrackDropped, Reason: DropReasonInvalidRating}
	}

	interaction := domain.Interaction{
		UserID:          userID,
		ProductID:       productID,
		InteractionType: interactionType,
		Rating:          rating,
	}

	if err := s.interactionRepo.Save(ctx, &interaction); err != nil {
		logger.Error("failed to store interaction",
			"user_id", userID,
			"product_id", productID,
			"interaction_type", interactionType,
			"error", err,
		)
		InteractionsTrackedTotal.WithLabelValues(interactionType, string(TrackDropped)).Inc()
		return TrackResult{Status: TrackDropped, Reason: DropReasonStorage}
	}

	InteractionsTrackedTotal.WithLabelValues(interactionType, string(TrackRecorded)).Inc()

	return TrackResult{Status: TrackRecorded}
}
