package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/trystore/kiosk-platform/internal/api/middleware"
	"github.com/trystore/kiosk-platform/internal/cache"
	"github.com/trystore/kiosk-platform/internal/errors"
	"github.com/trystore/kiosk-platform/internal/metrics"
	"github.com/trystore/kiosk-platform/internal/models"
	repository "github.com/trystore/kiosk-platform/internal/repositories"
	"github.com/trystore/kiosk-platform/internal/storage"
	"github.com/trystore/kiosk-platform/internal/utils"
)

const DefaultRelatedLimit = 8

type ProductService interface {
	CreateProduct(ctx context.Context, shopID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductForShop(ctx context.Context, id, shopID uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id, shopID uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id, shopID uuid.UUID) error
	ListProducts(ctx context.Context, shopID uuid.UUID, filters models.ProductFilters) []*models.Product
	RelatedProducts(ctx context.Context, product *models.Product, limit int) []*models.Product
	UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

type productService struct {
	repo   repository.ProductRepository
	cache  cache.Cache
	images storage.Store
}

func NewProductService(repo repository.ProductRepository, productCache cache.Cache, images storage.Store) ProductService {
	return &productService{repo: repo, cache: productCache, images: images}
}

func (s *productService) CreateProduct(ctx context.Context, shopID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		ShopID:      shopID,
		ProductCode: utils.GenerateProductCode(req.Type),
		Name:        req.Name,
		Type:        req.Type,
		Color:       req.Color,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if req.Size != "" {
		product.Size = &req.Size
	}

	if req.Location != "" {
		product.Location = &req.Location
	}

	if req.ImageURL != "" {
		product.ImageURL = &req.ImageURL
	}

	err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	metrics.ProductCreated()

	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	cacheKey := cache.Key(cache.ProductKeyPrefix, id.String())

	cached := &models.Product{}
	if hit, err := s.cache.Get(ctx, cacheKey, cached); err == nil && hit {
		return cached, nil
	} else if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product cache read failed", slog.String("error", err.Error()))
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if err := s.cache.Set(ctx, cacheKey, product, 0); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product cache write failed", slog.String("error", err.Error()))
	}

	return product, nil
}

func (s *productService) GetProductForShop(ctx context.Context, id, shopID uuid.UUID) (*models.Product, error) {

	product, err := s.repo.GetProductForShop(ctx, id, shopID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id, shopID uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductForShop(ctx, id, shopID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Type != nil {
		product.Type = *req.Type
	}
	if req.Color != nil {
		product.Color = *req.Color
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Size != nil {
		product.Size = req.Size
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Location != nil {
		product.Location = req.Location
	}
	if req.ImageURL != nil {
		product.ImageURL = req.ImageURL
	}

	err = s.repo.UpdateProduct(ctx, product)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, id)

	return product, nil
}

// DeleteProduct removes the stored image first, then the row. Image
// removal is best-effort: a stale file is preferable to a product that
// cannot be deleted.
func (s *productService) DeleteProduct(ctx context.Context, id, shopID uuid.UUID) error {

	product, err := s.repo.GetProductForShop(ctx, id, shopID)
	if err != nil {
		return errors.NotFoundError("Product not found or you don't have permission to delete it").WithError(err)
	}

	if product.ImageURL != nil {
		if err := s.images.Remove(ctx, *product.ImageURL); err != nil {
			middleware.LoggerFromContext(ctx).Warn("Failed to remove product image",
				slog.String("productId", id.String()),
				slog.String("error", err.Error()))
		}
	}

	if err := s.repo.DeleteProduct(ctx, id, shopID); err != nil {
		return errors.DatabaseError("Failed to delete product").WithError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

// ListProducts degrades a repository failure to an empty listing. The
// kiosk renders "no products" either way; the log line is the only place
// the difference shows up.
func (s *productService) ListProducts(ctx context.Context, shopID uuid.UUID, filters models.ProductFilters) []*models.Product {

	products, err := s.repo.ListProducts(ctx, shopID, filters)
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to list products",
			slog.String("shopId", shopID.String()),
			slog.String("error", err.Error()))
		return []*models.Product{}
	}

	if products == nil {
		products = []*models.Product{}
	}

	return products
}

// RelatedProducts is fail-soft for the same reason as ListProducts.
func (s *productService) RelatedProducts(ctx context.Context, product *models.Product, limit int) []*models.Product {

	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	related, err := s.repo.FindRelated(ctx, product, limit)
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to fetch related products",
			slog.String("productId", product.ID.String()),
			slog.String("error", err.Error()))
		return []*models.Product{}
	}

	if related == nil {
		related = []*models.Product{}
	}

	return related
}

func (s *productService) UploadImage(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {

	url, err := s.images.Save(ctx, filename, contentType, r)
	if err != nil {
		return "", errors.ThirdPartyError("Failed to upload image").WithError(err)
	}

	return url, nil
}

func (s *productService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, id.String())); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product cache invalidation failed",
			slog.String("productId", id.String()),
			slog.String("error", err.Error()))
	}
}
