package postgres

import (
	"context"
	"fmt"

	"crochetCorner/domain"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) Save(ctx context.Context, interaction *domain.Interaction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(interaction).Error; err != nil {
		return fmt.Errorf("failed to save interaction: %w", err)
	}

	return nil
}

func (r *InteractionRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var interactions []domain.Interaction
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find interactions by user: %w", err)
	}

	return interactions, nil
}

func (r *InteractionRepository) FindByProductsExcludingUser(ctx context.Context, productIDs []uint64, excludeUserID uint) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(productIDs) == 0 {
		return []domain.Interaction{}, nil
	}

	var interactions []domain.Interaction
	err := r.DB.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Where("user_id <> ?", excludeUserID).
		Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find overlapping interactions: %w", err)
	}

	return interactions, nil
}

func (r *InteractionRepository) FindByUsers(ctx context.Context, userIDs []uint) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(userIDs) == 0 {
		return []domain.Interaction{}, nil
	}

	var interactions []domain.Interaction
	err := r.DB.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&interactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find interactions by users: %w", err)
	}

	return interactions, nil
}
