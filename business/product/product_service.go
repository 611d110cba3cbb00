package product

import (
	"context"
	"errors"
	"fmt"

	"crochetCorner/domain"
	"crochetCorner/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) error
}

// FeatureRepository manages the feature rows the content-based scorer reads.
type FeatureRepository interface {
	FindByProduct(ctx context.Context, productID uint64) ([]domain.ProductFeature, error)
	ReplaceForProduct(ctx context.Context, productID uint64, features []domain.ProductFeature) error
}

type productService struct {
	productRepo ProductRepository
	featureRepo FeatureRepository
}

func NewProductService(productRepo ProductRepository, featureRepo FeatureRepository) *productService {
	return &productService{
		productRepo: productRepo,
		featureRepo: featureRepo,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all products", "error", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	if id == 0 {
		logger.Error("invalid product id")
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product by id")
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", "error", err)
		return nil, err
	}

	return &product, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if product.ProductName == "" {
		logger.Error("invalid product data: product name is required")
		return nil, errors.New("product name is required")
	}

	if product.Category == "" {
		logger.Error("invalid product data: category is required")
		return nil, errors.New("category is required")
	}

	if product.Price <= 0 {
		logger.Error("invalid product data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if product.Stock < 0 {
		logger.Error("invalid product data: stock cannot be negative")
		return nil, errors.New("stock cannot be negative")
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created successfully", "product_id", product.ID)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == 0 {
		logger.Error("invalid product data: ID is required")
		return nil, errors.New("product ID is required")
	}

	if product.ProductName == "" {
		logger.Error("invalid product data: product name is required")
		return nil, errors.New("product name is required")
	}

	if product.Price <= 0 {
		logger.Error("invalid product data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if product.Stock < 0 {
		logger.Error("invalid product data: stock cannot be negative")
		return nil, errors.New("stock cannot be negative")
	}

	// Verify product exists
	if _, err := s.productRepo.FindByID(ctx, product.ID); err != nil {
		logger.Error("product not found", "error", err)
		return nil, errors.New("product not found")
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", "error", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	updatedProduct, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to fetch updated product", "error", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	return &updatedProduct, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("invalid product id")
		return errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product")
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", "error", err)
		return err
	}

	logger.Info("product deleted", "product_id", id)

	return nil
}

func (s *productService) GetFeatures(ctx context.Context, productID uint64) ([]domain.ProductFeature, error) {
	if productID == 0 {
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	features, err := s.featureRepo.FindByProduct(ctx, productID)
	if err != nil {
		logger.Error("failed to find product features", "product_id", productID, "error", err)
		return nil, err
	}

	return features, nil
}

// ReplaceFeatures swaps the full feature set of a product. The recommender
// reads these rows, so feature names and values must be non-empty and
// weights positive.
func (s *productService) ReplaceFeatures(ctx context.Context, productID uint64, features []domain.ProductFeature) error {
	if productID == 0 {
		return errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		logger.Error("product not found for feature replace", "product_id", productID, "error", err)
		return errors.New("product not found")
	}

	for i := range features {
		if features[i].FeatureName == "" || features[i].FeatureValue == "" {
			return errors.New("feature name and value are required")
		}
		if features[i].Weight <= 0 {
			features[i].Weight = 1
		}
		features[i].ProductID = productID
	}

	if err := s.featureRepo.ReplaceForProduct(ctx, productID, features); err != nil {
		logger.Error("failed to replace product features", "product_id", productID, "error", err)
		return fmt.Errorf("failed to replace features: %w", err)
	}

	logger.Info("product features replaced", "product_id", productID, "count", len(features))

	return nil
}
