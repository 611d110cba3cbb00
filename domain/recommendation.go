package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RecommendationContentBased  = "content_based"
	RecommendationCollaborative = "collaborative"
	RecommendationHybrid        = "hybrid"
)

// Recommendation is one scored candidate for a user. Rows in the
// recommendations table are derived data with a TTL: the whole set for a
// user is replaced on recompute and ignored once expires_at has passed.
type Recommendation struct {
	ID                 uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             uint           `gorm:"column:user_id;not null;index" json:"user_id"`
	ProductID          uint64         `gorm:"column:product_id;not null" json:"product_id"`
	RecommendationType string         `gorm:"column:recommendation_type;not null" json:"recommendation_type"`
	Score              float64        `gorm:"column:score;type:numeric" json:"score"`
	Reasons            datatypes.JSON `gorm:"column:reasons;type:jsonb" json:"reasons"`
	ExpiresAt          time.Time      `gorm:"column:expires_at" json:"expires_at"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}

// ScoredProduct is the in-memory shape the scorers produce and the API
// serves. The persistence mapping (reasons as a jsonb array) lives in the
// recommendation repository.
type ScoredProduct struct {
	ProductID uint64   `json:"product_id"`
	Score     float64  `json:"score"`
	Reasons   []string `json:"reasons"`
}

func ValidRecommendationType(t string) bool {
	switch t {
	case RecommendationContentBased, RecommendationCollaborative, RecommendationHybrid:
		return true
	}
	return false
}
