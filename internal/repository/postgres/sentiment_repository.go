package postgres

import (
	"context"
	"fmt"

	"crochetCorner/domain"

	"gorm.io/gorm"
)

type SentimentRepository struct {
	DB *gorm.DB
}

func NewSentimentRepository(db *gorm.DB) *SentimentRepository {
	return &SentimentRepository{DB: db}
}

func (r *SentimentRepository) Save(ctx context.Context, analysis *domain.SentimentAnalysis) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to save sentiment analysis: %w", err)
	}

	return nil
}
