package postgres

import (
	"context"
	"fmt"

	"crochetCorner/domain"

	"gorm.io/gorm"
)

// FeatureRepository serves both the catalog feature endpoints and the
// content-based scorer's reads.
type FeatureRepository struct {
	DB *gorm.DB
}

func NewFeatureRepository(db *gorm.DB) *FeatureRepository {
	return &FeatureRepository{DB: db}
}

func (r *FeatureRepository) FindByProduct(ctx context.Context, productID uint64) ([]domain.ProductFeature, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var features []domain.ProductFeature
	err := r.DB.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&features).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find product features: %w", err)
	}

	return features, nil
}

func (r *FeatureRepository) FindByProducts(ctx context.Context, productIDs []uint64) ([]domain.ProductFeature, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(productIDs) == 0 {
		return []domain.ProductFeature{}, nil
	}

	var features []domain.ProductFeature
	err := r.DB.WithContext(ctx).
		Where("product_id IN ?", productIDs).
		Find(&features).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find features by products: %w", err)
	}

	return features, nil
}

func (r *FeatureRepository) FindAll(ctx context.Context) ([]domain.ProductFeature, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var features []domain.ProductFeature
	if err := r.DB.WithContext(ctx).Find(&features).Error; err != nil {
		return nil, fmt.Errorf("failed to find all features: %w", err)
	}

	return features, nil
}

func (r *FeatureRepository) ReplaceForProduct(ctx context.Context, productID uint64, features []domain.ProductFeature) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&domain.ProductFeature{}).Error; err != nil {
			return fmt.Errorf("failed to delete old features: %w", err)
		}

		if len(features) == 0 {
			return nil
		}

		if err := tx.Create(&features).Error; err != nil {
			return fmt.Errorf("failed to insert features: %w", err)
		}

		return nil
	})
}
