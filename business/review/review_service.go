package review

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"crochetCorner/business/sentiment"
	"crochetCorner/domain"
	"crochetCorner/pkg/logger"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByProduct(ctx context.Context, productID uint64) ([]domain.Review, error)
}

type SentimentRepository interface {
	Save(ctx context.Context, analysis *domain.SentimentAnalysis) error
}

type reviewService struct {
	reviewRepo    ReviewRepository
	sentimentRepo SentimentRepository
}

func NewReviewService(reviewRepo ReviewRepository, sentimentRepo SentimentRepository) *reviewService {
	return &reviewService{
		reviewRepo:    reviewRepo,
		sentimentRepo: sentimentRepo,
	}
}

// CreateReview stores the review and runs the sentiment analyzer over its
// body. The analysis write is best-effort: a failure is logged and the
// review still succeeds.
func (s *reviewService) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if review.ProductID == 0 {
		return nil, errors.New("product id is required")
	}
	if review.UserID == 0 {
		return nil, errors.New("user id is required")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}
	if review.Body == "" {
		return nil, errors.New("review body is required")
	}

	review.ID = uuid.NewString()

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		logger.Error("failed to create review", "product_id", review.ProductID, "error", err)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.analyzeAndStore(ctx, review)

	return review, nil
}

func (s *reviewService) analyzeAndStore(ctx context.Context, review *domain.Review) {
	result := sentiment.Analyze(review.Body)

	keywords, err := json.Marshal(result.Keywords)
	if err != nil {
		logger.Error("failed to encode sentiment keywords", "review_id", review.ID, "error", err)
		return
	}

	analysis := domain.SentimentAnalysis{
		ReviewID:       review.ID,
		SentimentScore: result.Score,
		SentimentLabel: result.Label,
		Confidence:     result.Confidence,
		Keywords:       keywords,
	}

	if err := s.sentimentRepo.Save(ctx, &analysis); err != nil {
		logger.Error("failed to store sentiment analysis", "review_id", review.ID, "error", err)
		return
	}

	logger.Debug("review sentiment stored",
		"review_id", review.ID,
		"label", result.Label,
		"score", result.Score,
	)
}

func (s *reviewService) GetReviewsByProduct(ctx context.Context, productID uint64) ([]domain.Review, error) {
	if productID == 0 {
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	reviews, err := s.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		logger.Error("failed to find reviews", "product_id", productID, "error", err)
		return nil, err
	}

	return reviews, nil
}
