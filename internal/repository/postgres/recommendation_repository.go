package postgres

import (
	"context"
	"fmt"
	"time"

	"crochetCorner/domain"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

// ReplaceForUser deletes the user's cached rows of the given type and
// inserts the new set. Deliberately two statements, no transaction: the
// worst case after a crash in between is an empty cache, which just
// triggers a recompute on the next read.
func (r *RecommendationRepository) ReplaceForUser(ctx context.Context, userID uint, recommendationType string, rows []domain.Recommendation) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND recommendation_type = ?", userID, recommendationType).
		Delete(&domain.Recommendation{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete cached recommendations: %w", err)
	}

	if len(rows) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert recommendations: %w", err)
	}

	return nil
}

func (r *RecommendationRepository) FindActiveByUser(ctx context.Context, userID uint, recommendationType string, now time.Time) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.Recommendation
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND recommendation_type = ?", userID, recommendationType).
		Where("expires_at > ?", now).
		Order("score DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find cached recommendations: %w", err)
	}

	return rows, nil
}
