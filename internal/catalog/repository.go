package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shortshop/shortshop-backend/internal/repo"
	"github.com/shortshop/shortshop-backend/pkg/db/models"
	"github.com/shortshop/shortshop-backend/pkg/pagination"
)

// Repository wires together all catalog persistence helpers.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(tx)}
}

// FindProductByID loads the product without associations.
func (r *Repository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductDetail loads the product with variants and images eagerly.
func (r *Repository) GetProductDetail(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).
		Preload("Variants").
		Preload("Images").
		First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns one page of products with variants and images loaded.
func (r *Repository) ListProducts(ctx context.Context, page pagination.Params) ([]models.Product, error) {
	page = pagination.Normalize(page)

	var products []models.Product
	if err := r.DB(ctx).
		Preload("Variants").
		Preload("Images").
		Order("created_at, id").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct inserts the product row.
func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.DB(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct persists the mutated product row.
func (r *Repository) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.DB(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product row; owned rows go with it via cascade.
func (r *Repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Delete(&models.Product{}, "id = ?", id).Error
}

// CreateImages inserts the batch of image rows.
func (r *Repository) CreateImages(ctx context.Context, images []models.ProductImage) error {
	if len(images) == 0 {
		return nil
	}
	return r.DB(ctx).Create(&images).Error
}

// FindImage loads an image only when it belongs to the given product.
func (r *Repository) FindImage(ctx context.Context, productID, imageID uuid.UUID) (*models.ProductImage, error) {
	var image models.ProductImage
	if err := r.DB(ctx).
		First(&image, "id = ? AND product_id = ?", imageID, productID).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// DeleteImage removes the image row.
func (r *Repository) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	return r.DB(ctx).Delete(&models.ProductImage{}, "id = ?", imageID).Error
}

// FindVariantByID loads a single variant row.
func (r *Repository) FindVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.DB(ctx).First(&variant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

// CreateVariant inserts the variant row.
func (r *Repository) CreateVariant(ctx context.Context, variant *models.ProductVariant) (*models.ProductVariant, error) {
	if err := r.DB(ctx).Create(variant).Error; err != nil {
		return nil, err
	}
	return variant, nil
}

// UpdateVariant persists the mutated variant row.
func (r *Repository) UpdateVariant(ctx context.Context, variant *models.ProductVariant) (*models.ProductVariant, error) {
	if err := r.DB(ctx).Save(variant).Error; err != nil {
		return nil, err
	}
	return variant, nil
}

// DeleteVariant removes the variant row.
func (r *Repository) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Delete(&models.ProductVariant{}, "id = ?", id).Error
}

// FindRecommendationEdge loads the edge between two products, if present.
func (r *Repository) FindRecommendationEdge(ctx context.Context, baseID, recID uuid.UUID) (*models.ProductRecommendation, error) {
	var rec models.ProductRecommendation
	if err := r.DB(ctx).
		First(&rec, "base_product_id = ? AND recommended_product_id = ?", baseID, recID).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindRecommendationByID loads one edge row.
func (r *Repository) FindRecommendationByID(ctx context.Context, id uuid.UUID) (*models.ProductRecommendation, error) {
	var rec models.ProductRecommendation
	if err := r.DB(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateRecommendation inserts the edge row.
func (r *Repository) CreateRecommendation(ctx context.Context, rec *models.ProductRecommendation) (*models.ProductRecommendation, error) {
	if err := r.DB(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// ListRecommendations returns all edges rooted at the base product.
func (r *Repository) ListRecommendations(ctx context.Context, baseID uuid.UUID) ([]models.ProductRecommendation, error) {
	var recs []models.ProductRecommendation
	if err := r.DB(ctx).
		Find(&recs, "base_product_id = ?", baseID).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// DeleteRecommendation removes the edge row.
func (r *Repository) DeleteRecommendation(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Delete(&models.ProductRecommendation{}, "id = ?", id).Error
}
