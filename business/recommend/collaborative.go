package recommend

import (
	"context"
	"fmt"
	"sort"

	"crochetCorner/domain"
	"crochetCorner/pkg/logger"
)

// Collaborative recommends products favored by users whose interaction
// history overlaps with the target user's. Similarity is a simple overlap
// count of interaction rows on shared products, not cosine or Jaccard.
// Fewer than SimilarityThreshold shared rows means a user does not count as
// a neighbour; with no neighbours the result is empty, there is no fallback
// to weaker signals.
func (s *Service) Collaborative(ctx context.Context, userID uint, limit int) []domain.ScoredProduct {
	recs, err := s.collaborative(ctx, userID, s.normalizeLimit(limit))
	if err != nil {
		logger.Error("collaborative scoring failed", "user_id", userID, "error", err)
		return []domain.ScoredProduct{}
	}

	RecommendationsComputedTotal.WithLabelValues(domain.RecommendationCollaborative).Inc()

	return recs
}

func (s *Service) collaborative(ctx context.Context, userID uint, limit int) ([]domain.ScoredProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	own, err := s.interactionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}
	if len(own) == 0 {
		return []domain.ScoredProduct{}, nil
	}

	touched := make(map[uint64]bool, len(own))
	for _, in := range own {
		touched[in.ProductID] = true
	}

	productIDs := make([]uint64, 0, len(touched))
	for pid := range touched {
		productIDs = append(productIDs, pid)
	}

	overlapping, err := s.interactionRepo.FindByProductsExcludingUser(ctx, productIDs, userID)
	if err != nil {
		return nil, fmt.Errorf("load overlapping interactions: %w", err)
	}

	similarity := make(map[uint]int)
	for _, in := range overlapping {
		similarity[in.UserID]++
	}

	type neighbour struct {
		userID     uint
		similarity int
	}

	neighbours := make([]neighbour, 0, len(similarity))
	for uid, sim := range similarity {
		if sim >= s.cfg.SimilarityThreshold {
			neighbours = append(neighbours, neighbour{userID: uid, similarity: sim})
		}
	}
	if len(neighbours) == 0 {
		return []domain.ScoredProduct{}, nil
	}

	sort.Slice(neighbours, func(i, j int) bool {
		if neighbours[i].similarity == neighbours[j].similarity {
			return neighbours[i].userID < neighbours[j].userID
		}
		return neighbours[i].similarity > neighbours[j].similarity
	})
	if len(neighbours) > s.cfg.MaxSimilarUsers {
		neighbours = neighbours[:s.cfg.MaxSimilarUsers]
	}

	neighbourIDs := make([]uint, 0, len(neighbours))
	simByUser := make(map[uint]int, len(neighbours))
	for _, n := range neighbours {
		neighbourIDs = append(neighbourIDs, n.userID)
		simByUser[n.userID] = n.similarity
	}

	neighbourRows, err := s.interactionRepo.FindByUsers(ctx, neighbourIDs)
	if err != nil {
		return nil, fmt.Errorf("load neighbour interactions: %w", err)
	}

	candidateScores := make(map[uint64]float64)
	candidateReasons := make(map[uint64][]string)
	seenReason := make(map[uint64]map[string]bool)

	for _, in := range neighbourRows {
		if touched[in.ProductID] {
			continue
		}

		sim := simByUser[in.UserID]
		candidateScores[in.ProductID] += float64(sim) * s.cfg.InteractionScore(in)

		reason := fmt.Sprintf("Liked by similar users (%d common products)", sim)
		if seenReason[in.ProductID] == nil {
			seenReason[in.ProductID] = make(map[string]bool)
		}
		if !seenReason[in.ProductID][reason] {
			seenReason[in.ProductID][reason] = true
			candidateReasons[in.ProductID] = append(candidateReasons[in.ProductID], reason)
		}
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
