package recommend

import (
	"context"
	"sort"
	"time"

	"crochetCorner/domain"
)

// ---- Repository interfaces ----

type InteractionRepository interface {
	Save(ctx context.Context, interaction *domain.Interaction) error
	// FindByUser returns a user's interactions, newest first.
	FindByUser(ctx context.Context, userID uint) ([]domain.Interaction, error)
	// FindByProductsExcludingUser returns every other user's interactions
	// restricted to the given product set.
	FindByProductsExcludingUser(ctx context.Context, productIDs []uint64, excludeUserID uint) ([]domain.Interaction, error)
	// FindByUsers returns all interactions of the given users, unrestricted.
	FindByUsers(ctx context.Context, userIDs []uint) ([]domain.Interaction, error)
}

type FeatureRepository interface {
	FindByProducts(ctx context.Context, productIDs []uint64) ([]domain.ProductFeature, error)
	FindAll(ctx context.Context) ([]domain.ProductFeature, error)
}

type RecommendationRepository interface {
	// ReplaceForUser removes all cached rows of the given type for the user
	// and inserts the new set. Delete and insert are two separate statements:
	// a crash in between leaves the user with no cached rows, which only
	// costs a recompute on the next read.
	ReplaceForUser(ctx context.Context, userID uint, recommendationType string, rows []domain.Recommendation) error
	// FindActiveByUser returns unexpired rows ordered by score descending.
	FindActiveByUser(ctx context.Context, userID uint, recommendationType string, now time.Time) ([]domain.Recommendation, error)
}

// Service computes and caches product recommendations. It is stateless and
// safe for concurrent use; all state lives behind the repositories.
//
// Every public method is fail-open: backend failures are logged and surface
// as an empty result, never as an error. A broken recommender degrades to
// "no suggestions" instead of breaking the page.
type Service struct {
	interactionRepo InteractionRepository
	featureRepo     FeatureRepository
	recoRepo        RecommendationRepository
	cfg             Config
}

func NewService(
	interactionRepo InteractionRepository,
	featureRepo FeatureRepository,
	recoRepo RecommendationRepository,
	cfg Config,
) *Service {
	return &Service{
		interactionRepo: interactionRepo,
		featureRepo:     featureRepo,
		recoRepo:        recoRepo,
		cfg:             cfg,
	}
}

// sortAndTruncate orders candidates by descending score, breaking ties by
// product ID so identical inputs always produce identical output.
func sortAndTruncate(recs []domain.ScoredProduct, limit int) []domain.ScoredProduct {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score == recs[j].Score {
			return recs[i].ProductID < recs[j].ProductID
		}
		return recs[i].Score > recs[j].Score
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	return recs
}

func (s *Service) normalizeLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultLimit
	}
	return limit
}
