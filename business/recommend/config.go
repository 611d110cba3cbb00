package recommend

import (
	"time"

	"crochetCorner/domain"
)

// Config holds the scoring constants of the recommender. None of these were
// tuned against data; they are the prototype's fixed values promoted to
// configuration.
type Config struct {
	// hybrid blend weights, applied without renormalization
	ContentWeight       float64
	CollaborativeWeight float64

	// per-interaction base scores; an interaction's rating is added on top
	ViewScore     float64
	CartAddScore  float64
	LikeScore     float64
	PurchaseScore float64

	// minimum shared interaction rows before another user counts as similar
	SimilarityThreshold int
	// how many similar users contribute to collaborative scoring
	MaxSimilarUsers int

	CacheTTL     time.Duration
	DefaultLimit int
}

const (
	defaultContentWeight       = 0.6
	defaultCollaborativeWeight = 0.4
	defaultViewScore           = 1.0
	defaultCartAddScore        = 2.0
	defaultLikeScore           = 3.0
	defaultPurchaseScore       = 5.0
	defaultSimilarityThreshold = 2
	defaultMaxSimilarUsers     = 5
	defaultCacheTTL            = 24 * time.Hour
	defaultLimit               = 10
)

func DefaultConfig() Config {
	return Config{
		ContentWeight:       defaultContentWeight,
		CollaborativeWeight: defaultCollaborativeWeight,
		ViewScore:           defaultViewScore,
		CartAddScore:        defaultCartAddScore,
		LikeScore:           defaultLikeScore,
		PurchaseScore:       defaultPurchaseScore,
		SimilarityThreshold: defaultSimilarityThreshold,
		MaxSimilarUsers:     defaultMaxSimilarUsers,
		CacheTTL:            defaultCacheTTL,
		DefaultLimit:        defaultLimit,
	}
}

// InteractionScore maps one interaction row to its weight. The rating, when
// present, is additive and uncapped, so adding rows never lowers a score.
func (cfg Config) InteractionScore(in domain.Interaction) float64 {
	var base float64

	switch in.InteractionType {
	case domain.InteractionView:
		base = cfg.ViewScore
	case domain.InteractionCartAdd:
		base = cfg.CartAddScore
	case domain.InteractionLike:
		base = cfg.LikeScore
	case domain.InteractionPurchase:
		base = cfg.PurchaseScore
	default:
		return 0
	}

	if in.Rating > 0 {
		base += float64(in.Rating)
	}

	return base
}
