package recommend

import (
	"context"
	"encoding/json"
	"time"

	"crochetCorner/domain"
	"crochetCorner/pkg/logger"
)

// Recommendations serves a user's recommendation set of the given type,
// cache-first. A cache miss (nothing stored, or everything expired)
// triggers a recompute and a best-effort cache write. There is no lock
// around the miss window: two concurrent requests may both recompute and
// both write, and the later write wins. That is acceptable for a
// read-mostly, low-concurrency-per-user workload.
func (s *Service) Recommendations(ctx context.Context, userID uint, recommendationType string, limit int) []domain.ScoredProduct {
	limit = s.normalizeLimit(limit)

	cached := s.CachedRecommendations(ctx, userID, recommendationType)
	if len(cached) > 0 {
		RecommendationCacheTotal.WithLabelValues("hit").Inc()
		if len(cached) > limit {
			cached = cached[:limit]
		}
		return cached
	}

	RecommendationCacheTotal.WithLabelValues("miss").Inc()

	var recs []domain.ScoredProduct
	switch recommendationType {
	case domain.RecommendationContentBased:
		recs = s.ContentBased(ctx, userID, limit)
	case domain.RecommendationCollaborative:
		recs = s.Collaborative(ctx, userID, limit)
	default:
		recs = s.Hybrid(ctx, userID, limit)
	}

	if len(recs) > 0 {
		s.CacheRecommendations(ctx, userID, recommendationType, recs)
	}

	return recs
}

// CacheRecommendations replaces the user's cached set of the given type.
// Failures are logged and swallowed; the next read recomputes.
func (s *Service) CacheRecommendations(ctx context.Context, userID uint, recommendationType string, recs []domain.ScoredProduct) {
	expiresAt := time.Now().Add(s.cfg.CacheTTL)

	rows := make([]domain.Recommendation, 0, len(recs))
	for _, rec := range recs {
		reasons, err := json.Marshal(rec.Reasons)
		if err != nil {
			logger.Error("failed to encode recommendation reasons", "user_id", userID, "error", err)
			continue
		}

		rows = append(rows, domain.Recommendation{
			UserID:             userID,
			ProductID:          rec.ProductID,
			RecommendationType: recommendationType,
			Score:              rec.Score,
			Reasons:            reasons,
			ExpiresAt:          expiresAt,
		})
	}

	if err := s.recoRepo.ReplaceForUser(ctx, userID, recommendationType, rows); err != nil {
		logger.Error("failed to cache recommendations",
			"user_id", userID,
			"recommendation_type", recommendationType,
			"error", err,
		)
	}
}

// CachedRecommendations returns the user's stored set of the given type,
// score descending. Rows whose expires_at has passed are excluded even if
// the store hands them back.
func (s *Service) CachedRecommendations(ctx context.Context, userID uint, recommendationType string) []domain.ScoredProduct {
	now := time.Now()

	rows, err := s.recoRepo.FindActiveByUser(ctx, userID, recommendationType, now)
	if err != nil {
		logger.Error("failed to read cached recommendations",
			"user_id", userID,
			"recommendation_type", recommendationType,
			"error", err,
		)
		return []domain.ScoredProduct{}
	}

	recs := make([]domain.ScoredProduct, 0, len(rows))
	for _, row := range rows {
		if !row.ExpiresAt.After(now) {
			continue
		}

		var reasons []string
		if len(row.Reasons) > 0 {
			if err := json.Unmarshal(row.Reasons, &reasons); err != nil {
				logger.Warn("skipping cached row with bad reasons payload",
					"user_id", userID,
					"product_id", row.ProductID,
					"error", err,
				)
				continue
			}
		}

		recs = append(recs, domain.ScoredProduct{
			ProductID: row.ProductID,
			Score:     row.Score,
			Reasons:   reasons,
		})
	}

	return recs
}
