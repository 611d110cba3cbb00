package recommend

import (
	"context"
	"sync"

	"crochetCorner/domain"
)

// Hybrid blends content-based and collaborative output with fixed weights.
// The two scorers are independent, so they run concurrently purely to cut
// latency. A product present in only one source keeps that source's
// weighted score; there is no renormalization. Because each scorer is
// already fail-open, a failing source degrades the blend to single-source
// output rather than an error.
func (s *Service) Hybrid(ctx context.Context, userID uint, limit int) []domain.ScoredProduct {
	limit = s.normalizeLimit(limit)

	var (
		wg            sync.WaitGroup
		content       []domain.ScoredProduct
		collaborative []domain.ScoredProduct
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		content = s.ContentBased(ctx, userID, limit)
	}()
	go func() {
		defer wg.Done()
		collaborative = s.Collaborative(ctx, userID, limit)
	}()
	wg.Wait()

	scores := make(map[uint64]float64)
	reasons := make(map[uint64][]string)
	seenReason := make(map[uint64]map[string]bool)

	appendReasons := func(pid uint64, rs []string) {
		if seenReason[pid] == nil {
			seenReason[pid] = make(map[string]bool)
		}
		for _, r := range rs {
			if !seenReason[pid][r] {
				seenReason[pid][r] = true
				reasons[pid] = append(reasons[pid], r)
			}
		}
	}

	for _, rec := range content {
		scores[rec.ProductID] += s.cfg.ContentWeight * rec.Score
		appendReasons(rec.ProductID, rec.Reasons)
	}
	for _, rec := range collaborative {
		scores[rec.ProductID] += s.cfg.CollaborativeWeight * rec.Score
		appendReasons(rec.ProductID, rec.Reasons)
	}

	recs := make([]domain.ScoredProduct, 0, len(scores))
	for pid, score := range scores {
		recs = append(recs, domain.ScoredProduct{
			ProductID: pid,
			Score:     score,
			Reasons:   reasons[pid],
		})
	}

	RecommendationsComputedTotal.WithLabelValues(domain.RecommendationHybrid).Inc()

	return sortAndTruncate(recs, limit)
}
