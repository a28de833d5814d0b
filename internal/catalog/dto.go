package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shortshop/shortshop-backend/pkg/db/models"
	"github.com/shortshop/shortshop-backend/pkg/enums"
)

// ProductDTO is the aggregate shape returned to the API layer.
type ProductDTO struct {
	ID                uuid.UUID    `json:"id"`
	Name              string       `json:"name"`
	Price             float64      `json:"price"`
	Description       string       `json:"description"`
	LifetimeGuarantee bool         `json:"lifetime_guarantee"`
	Variants          []VariantDTO `json:"variants"`
	Images            []ImageDTO   `json:"images"`
	CreatedAt         time.Time    `json:"created_at"`
}

// VariantDTO is one stocked color/size combination.
type VariantDTO struct {
	ID      uuid.UUID         `json:"id"`
	Color   string            `json:"color"`
	Size    enums.VariantSize `json:"size"`
	InStock bool              `json:"in_stock"`
}

// ImageDTO is one catalog image with its optional color tag.
type ImageDTO struct {
	ID       uuid.UUID `json:"id"`
	Color    *string   `json:"color,omitempty"`
	ImageURL string    `json:"image_url"`
}

// RecommendationDTO is one directed recommendation edge.
type RecommendationDTO struct {
	ID                   uuid.UUID `json:"id"`
	BaseProductID        uuid.UUID `json:"base_product_id"`
	RecommendedProductID uuid.UUID `json:"recommended_product_id"`
}

// NewProductDTO maps the loaded aggregate onto its response shape.
func NewProductDTO(product *models.Product) *ProductDTO {
	if product == nil {
		return nil
	}

	variants := make([]VariantDTO, 0, len(product.Variants))
	for _, v := range product.Variants {
		variants = append(variants, NewVariantDTO(&v))
	}

	images := make([]ImageDTO, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, ImageDTO{
			ID:       img.ID,
			Color:    img.Color,
			ImageURL: img.ImageURL,
		})
	}

	return &ProductDTO{
		ID:                product.ID,
		Name:              product.Name,
		Price:             product.Price.InexactFloat64(),
		Description:       product.Description,
		LifetimeGuarantee: product.LifetimeGuarantee,
		Variants:          variants,
		Images:            images,
		CreatedAt:         product.CreatedAt,
	}
}

// NewVariantDTO maps a variant row onto its response shape.
func NewVariantDTO(variant *models.ProductVariant) VariantDTO {
	return VariantDTO{
		ID:      variant.ID,
		Color:   variant.Color,
		Size:    variant.Size,
		InStock: variant.InStock,
	}
}

// NewRecommendationDTO maps an edge row onto its response shape.
func NewRecommendationDTO(rec *models.ProductRecommendation) RecommendationDTO {
	return RecommendationDTO{
		ID:                   rec.ID,
		BaseProductID:        rec.BaseProductID,
		RecommendedProductID: rec.RecommendedProductID,
	}
}

// CreateProductInput holds the validated payload to create a product with
// its owned variants and images.
type CreateProductInput struct {
	Name              string
	Price             decimal.Decimal
	Description       string
	LifetimeGuarantee bool
	Variants          []VariantInput
	Images            []ImageInput
}

// VariantInput is the full variant payload used for both add and update.
type VariantInput struct {
	Color   string
	Size    enums.VariantSize
	InStock bool
}

// ImageInput is one image payload.
type ImageInput struct {
	Color    *string
	ImageURL string
}

// UpdateProductInput holds optional mutation values; nil means the field was
// absent from the payload and stays untouched.
type UpdateProductInput struct {
	Name              *string
	Price             *decimal.Decimal
	Description       *string
	LifetimeGuarantee *bool
}
