package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shortshop/shortshop-backend/pkg/db"
	"github.com/shortshop/shortshop-backend/pkg/db/models"
	pkgerrors "github.com/shortshop/shortshop-backend/pkg/errors"
	"github.com/shortshop/shortshop-backend/pkg/pagination"
)

// Constraint names surfaced by the schema; conflict detection matches on
// them where the driver includes them.
const (
	variantConstraint        = "uq_product_variant"
	recommendationConstraint = "uq_product_recommendation"
)

// Service exposes product aggregate operations: the product itself plus its
// owned variants, images, and recommendation edges.
type Service interface {
	ListProducts(ctx context.Context, page pagination.Params) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	AddImages(ctx context.Context, productID uuid.UUID, images []ImageInput) (int, error)
	DeleteImage(ctx context.Context, productID, imageID uuid.UUID) error

	AddVariant(ctx context.Context, productID uuid.UUID, input VariantInput) (*VariantDTO, error)
	UpdateVariant(ctx context.Context, variantID uuid.UUID, input VariantInput) (*VariantDTO, error)
	DeleteVariant(ctx context.Context, variantID uuid.UUID) error

	AddRecommendation(ctx context.Context, baseID, recID uuid.UUID) error
	GetRecommendations(ctx context.Context, baseID uuid.UUID) ([]RecommendationDTO, error)
	DeleteRecommendation(ctx context.Context, recID uuid.UUID) error
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

// ListProducts returns one page of products with their owned collections.
func (s *service) ListProducts(ctx context.Context, page pagination.Params) ([]ProductDTO, error) {
	products, err := s.repo.ListProducts(ctx, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}

	dtos := make([]ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, *NewProductDTO(&products[i]))
	}
	return dtos, nil
}

// GetProduct returns the fully loaded aggregate.
func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.GetProductDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	return NewProductDTO(product), nil
}

// CreateProduct inserts the product with its variants and images in one
// transaction and returns the fully loaded aggregate.
func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if err := validateProductFields(input.Name, input.Price.InexactFloat64(), input.Description); err != nil {
		return nil, err
	}
	for _, v := range input.Variants {
		if err := validateVariantInput(v); err != nil {
			return nil, err
		}
	}
	for _, img := range input.Images {
		if err := validateImageInput(img); err != nil {
			return nil, err
		}
	}

	var createdID uuid.UUID
	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		product := &models.Product{
			Name:              strings.TrimSpace(input.Name),
			Price:             input.Price,
			Description:       input.Description,
			LifetimeGuarantee: input.LifetimeGuarantee,
		}
		created, err := txRepo.CreateProduct(ctx, product)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
		}
		createdID = created.ID

		for _, v := range input.Variants {
			variant := &models.ProductVariant{
				ProductID: created.ID,
				Color:     v.Color,
				Size:      v.Size,
				InStock:   v.InStock,
			}
			if _, err := txRepo.CreateVariant(ctx, variant); err != nil {
				if db.IsUniqueViolation(err, variantConstraint) {
					return pkgerrors.New(pkgerrors.CodeConflict, "duplicate variant color/size for product")
				}
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert variant")
			}
		}

		images := make([]models.ProductImage, 0, len(input.Images))
		for _, img := range input.Images {
			images = append(images, models.ProductImage{
				ProductID: created.ID,
				Color:     img.Color,
				ImageURL:  img.ImageURL,
			})
		}
		if err := txRepo.CreateImages(ctx, images); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert images")
		}

		return nil
	}); err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create product")
	}

	return s.GetProduct(ctx, createdID)
}

// UpdateProduct applies only the fields present in the payload.
func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductDTO, error) {
	if input.Price != nil && !input.Price.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be greater than zero")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name must not be empty")
	}

	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	applyUpdateToProduct(product, input)
	if _, err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product")
	}

	return s.GetProduct(ctx, id)
}

// DeleteProduct removes the product; cascades clean up variants, images,
// and recommendation edges.
func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindProductByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete product")
	}
	return nil
}

// AddImages inserts all images in one transaction and reports how many rows
// were written.
func (s *service) AddImages(ctx context.Context, productID uuid.UUID, images []ImageInput) (int, error) {
	if len(images) == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "no images provided")
	}
	for _, img := range images {
		if err := validateImageInput(img); err != nil {
			return 0, err
		}
	}

	if _, err := s.repo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		rows := make([]models.ProductImage, 0, len(images))
		for _, img := range images {
			rows = append(rows, models.ProductImage{
				ProductID: productID,
				Color:     img.Color,
				ImageURL:  img.ImageURL,
			})
		}
		return s.repo.WithTx(tx).CreateImages(ctx, rows)
	}); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert images")
	}

	return len(images), nil
}

// DeleteImage removes an image only when it belongs to the given product, so
// a guessed image id from another product stays untouchable.
func (s *service) DeleteImage(ctx context.Context, productID, imageID uuid.UUID) error {
	image, err := s.repo.FindImage(ctx, productID, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "image not found for this product")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load image")
	}

	if err := s.repo.DeleteImage(ctx, image.ID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete image")
	}
	return nil
}

// AddVariant inserts a variant for the product.
func (s *service) AddVariant(ctx context.Context, productID uuid.UUID, input VariantInput) (*VariantDTO, error) {
	if err := validateVariantInput(input); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindProductByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	variant := &models.ProductVariant{
		ProductID: productID,
		Color:     input.Color,
		Size:      input.Size,
		InStock:   input.InStock,
	}
	created, err := s.repo.CreateVariant(ctx, variant)
	if err != nil {
		if db.IsUniqueViolation(err, variantConstraint) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "duplicate variant color/size for product")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert variant")
	}

	dto := NewVariantDTO(created)
	return &dto, nil
}

// UpdateVariant replaces the variant's color, size, and stock flag.
func (s *service) UpdateVariant(ctx context.Context, variantID uuid.UUID, input VariantInput) (*VariantDTO, error) {
	if err := validateVariantInput(input); err != nil {
		return nil, err
	}

	variant, err := s.repo.FindVariantByID(ctx, variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load variant")
	}

	variant.Color = input.Color
	variant.Size = input.Size
	variant.InStock = input.InStock

	updated, err := s.repo.UpdateVariant(ctx, variant)
	if err != nil {
		if db.IsUniqueViolation(err, variantConstraint) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "duplicate variant color/size for product")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update variant")
	}

	dto := NewVariantDTO(updated)
	return &dto, nil
}

// DeleteVariant removes a single variant row.
func (s *service) DeleteVariant(ctx context.Context, variantID uuid.UUID) error {
	if _, err := s.repo.FindVariantByID(ctx, variantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load variant")
	}

	if err := s.repo.DeleteVariant(ctx, variantID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete variant")
	}
	return nil
}

// AddRecommendation links two existing products with a directed edge.
func (s *service) AddRecommendation(ctx context.Context, baseID, recID uuid.UUID) error {
	if baseID == recID {
		return pkgerrors.New(pkgerrors.CodeValidation, "cannot recommend the same product")
	}

	for _, id := range []uuid.UUID{baseID, recID} {
		if _, err := s.repo.FindProductByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
		}
	}

	if _, err := s.repo.FindRecommendationEdge(ctx, baseID, recID); err == nil {
		return pkgerrors.New(pkgerrors.CodeConflict, "recommendation already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load recommendation")
	}

	rec := &models.ProductRecommendation{
		BaseProductID:        baseID,
		RecommendedProductID: recID,
	}
	if _, err := s.repo.CreateRecommendation(ctx, rec); err != nil {
		if db.IsUniqueViolation(err, recommendationConstraint) {
			return pkgerrors.New(pkgerrors.CodeConflict, "recommendation already exists")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert recommendation")
	}
	return nil
}

// GetRecommendations lists all edges rooted at the base product.
func (s *service) GetRecommendations(ctx context.Context, baseID uuid.UUID) ([]RecommendationDTO, error) {
	if _, err := s.repo.FindProductByID(ctx, baseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	recs, err := s.repo.ListRecommendations(ctx, baseID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list recommendations")
	}

	dtos := make([]RecommendationDTO, 0, len(recs))
	for i := range recs {
		dtos = append(dtos, NewRecommendationDTO(&recs[i]))
	}
	return dtos, nil
}

// DeleteRecommendation removes one edge by id.
func (s *service) DeleteRecommendation(ctx context.Context, recID uuid.UUID) error {
	if _, err := s.repo.FindRecommendationByID(ctx, recID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "recommendation not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load recommendation")
	}

	if err := s.repo.DeleteRecommendation(ctx, recID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete recommendation")
	}
	return nil
}

func validateProductFields(name string, price float64, description string) error {
	if strings.TrimSpace(name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "name must not be empty")
	}
	if price <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "price must be greater than zero")
	}
	if description == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "description must not be empty")
	}
	return nil
}

func validateVariantInput(input VariantInput) error {
	if strings.TrimSpace(input.Color) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "variant color must not be empty")
	}
	if !input.Size.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid variant size")
	}
	return nil
}

func validateImageInput(input ImageInput) error {
	if strings.TrimSpace(input.ImageURL) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "image_url must not be empty")
	}
	return nil
}

func applyUpdateToProduct(product *models.Product, input UpdateProductInput) {
	if input.Name != nil {
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.LifetimeGuarantee != nil {
		product.LifetimeGuarantee = *input.LifetimeGuarantee
	}
}
