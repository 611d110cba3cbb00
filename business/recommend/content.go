package recommend

import (
	"context"
	"fmt"

	"crochetCorner/domain"
	"crochetCorner/pkg/logger"
)

// ContentBased recommends products whose features overlap with the features
// of products the user already interacted with. A user with no history gets
// nothing (cold start), and products the user already touched are never
// returned.
func (s *Service) ContentBased(ctx context.Context, userID uint, limit int) []domain.ScoredProduct {
	recs, err := s.contentBased(ctx, userID, s.normalizeLimit(limit))
	if err != nil {
		logger.Error("content-based scoring failed", "user_id", userID, "error", err)
		return []domain.ScoredProduct{}
	}

	RecommendationsComputedTotal.WithLabelValues(domain.RecommendationContentBased).Inc()

	return recs
}

func (s *Service) contentBased(ctx context.Context, userID uint, limit int) ([]domain.ScoredProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	interactions, err := s.interactionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	if len(interactions) == 0 {
		return []domain.ScoredProduct{}, nil
	}

	// total interaction score per product the user touched
	productScores := make(map[uint64]float64)
	for _, in := range interactions {
		productScores[in.ProductID] += s.cfg.InteractionScore(in)
	}

	interactedIDs := make([]uint64, 0, len(productScores))
	for pid := range productScores {
		interactedIDs = append(interactedIDs, pid)
	}

	interactedFeatures, err := s.featureRepo.FindByProducts(ctx, interactedIDs)
	if err != nil {
		return nil, fmt.Errorf("load interacted features: %w", err)
	}

	// preference weight per (feature_name, feature_value) pair
	preferences := make(map[string]map[string]float64)
	for _, f := range interactedFeatures {
		if preferences[f.FeatureName] == nil {
			preferences[f.FeatureName] = make(map[string]float64)
		}
		preferences[f.FeatureName][f.FeatureValue] += productScores[f.ProductID] * f.Weight
	}

	allFeatures, err := s.featureRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog features: %w", err)
	}

	candidateScores := make(map[uint64]float64)
	candidateReasons := make(map[uint64][]string)

	for _, f := range allFeatures {
		if _, seen := productScores[f.ProductID]; seen {
			continue
		}

		pref := preferences[f.FeatureName][f.FeatureValue]
		if pref <= 0 {
			continue
		}

		candidateScores[f.ProductID] += pref * f.Weight
		candidateReasons[f.ProductID] = append(candidateReasons[f.ProductID],
			fmt.Sprintf("Similar %s: %s", f.FeatureName, f.FeatureValue))
	}

	recs := make([]domain.ScoredProduct, 0, len(candidateScores))
	for pid, score := range candidateScores {
		recs = append(recs, domain.ScoredProduct{
			ProductID: pid,
			Score:     score,
			Reasons:   candidateReasons[pid],
		})
	}

	return sortAndTruncate(recs, limit), nil
}
