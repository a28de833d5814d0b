package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shortshop/shortshop-backend/api/responses"
	"github.com/shortshop/shortshop-backend/api/validators"
	"github.com/shortshop/shortshop-backend/internal/catalog"
	"github.com/shortshop/shortshop-backend/pkg/enums"
	pkgerrors "github.com/shortshop/shortshop-backend/pkg/errors"
	"github.com/shortshop/shortshop-backend/pkg/logger"
)

// ListProducts handles GET /product/.
func ListProducts(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.ListProducts(r.Context(), page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

// GetProduct handles GET /product/{id}.
func GetProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetProduct(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// CreateProduct handles POST /product/.
func CreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// UpdateProduct handles PUT /product/{id}.
func UpdateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.UpdateProduct(r.Context(), id, payload.toUpdateInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// DeleteProduct handles DELETE /product/{id}.
func DeleteProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteProduct(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "product deleted"})
	}
}

// AddProductImages handles POST /product/{id}/images.
func AddProductImages(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload addImagesRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		count, err := svc.AddImages(r.Context(), id, payload.toInputs())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]int{"added": count})
	}
}

// DeleteProductImage handles DELETE /product/{id}/images/{image_id}.
func DeleteProductImage(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := parsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		imageID, err := parsePathUUID(r, "image_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteImage(r.Context(), productID, imageID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "image deleted"})
	}
}

// AddProductVariant handles POST /product/{id}/variants.
func AddProductVariant(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload variantRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		variant, err := svc.AddVariant(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, variant)
	}
}

// UpdateProductVariant handles PUT /product/variant/{id}.
func UpdateProductVariant(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload variantRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		variant, err := svc.UpdateVariant(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, variant)
	}
}

// DeleteProductVariant handles DELETE /product/variant/{id}.
func DeleteProductVariant(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteVariant(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "variant deleted"})
	}
}

// AddRecommendation handles POST /product/{id}/recommendations/{rec_id}.
func AddRecommendation(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		baseID, err := parsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		recID, err := parsePathUUID(r, "rec_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.AddRecommendation(r.Context(), baseID, recID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"message": "recommendation created"})
	}
}

// ListRecommendations handles GET /product/{id}/recommendations.
func ListRecommendations(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		baseID, err := parsePathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		recs, err := svc.GetRecommendations(r.Context(), baseID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, recs)
	}
}

// DeleteRecommendation handles DELETE /product/recommendations/{rec_id}.
func DeleteRecommendation(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recID, err := parsePathUUID(r, "rec_id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteRecommendation(r.Context(), recID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "recommendation deleted"})
	}
}

type createProductRequest struct {
	Name              string           `json:"name" validate:"required"`
	Price             float64          `json:"price" validate:"required,gt=0"`
	Description       string           `json:"description" validate:"required"`
	LifetimeGuarantee bool             `json:"lifetime_guarantee"`
	Variants          []variantRequest `json:"variants,omitempty" validate:"omitempty,dive"`
	Images            []imageRequest   `json:"images,omitempty" validate:"omitempty,dive"`
}

type updateProductRequest struct {
	Name              *string  `json:"name,omitempty"`
	Price             *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Description       *string  `json:"description,omitempty"`
	LifetimeGuarantee *bool    `json:"lifetime_guarantee,omitempty"`
}

type variantRequest struct {
	Color   string `json:"color" validate:"required,max=50"`
	Size    string `json:"size" validate:"required"`
	InStock bool   `json:"in_stock"`
}

type imageRequest struct {
	Color    *string `json:"color,omitempty"`
	ImageURL string  `json:"image_url" validate:"required,max=255"`
}

type addImagesRequest struct {
	Images []imageRequest `json:"images" validate:"dive"`
}

func (r createProductRequest) toCreateInput() (catalog.CreateProductInput, error) {
	variants := make([]catalog.VariantInput, 0, len(r.Variants))
	for _, v := range r.Variants {
		input, err := v.toInput()
		if err != nil {
			return catalog.CreateProductInput{}, err
		}
		variants = append(variants, input)
	}

	images := make([]catalog.ImageInput, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, img.toInput())
	}

	return catalog.CreateProductInput{
		Name:              r.Name,
		Price:             decimal.NewFromFloat(r.Price),
		Description:       r.Description,
		LifetimeGuarantee: r.LifetimeGuarantee,
		Variants:          variants,
		Images:            images,
	}, nil
}

func (r updateProductRequest) toUpdateInput() catalog.UpdateProductInput {
	input := catalog.UpdateProductInput{
		Name:              r.Name,
		Description:       r.Description,
		LifetimeGuarantee: r.LifetimeGuarantee,
	}
	if r.Price != nil {
		price := decimal.NewFromFloat(*r.Price)
		input.Price = &price
	}
	return input
}

func (r variantRequest) toInput() (catalog.VariantInput, error) {
	size, err := enums.ParseVariantSize(strings.ToUpper(strings.TrimSpace(r.Size)))
	if err != nil {
		return catalog.VariantInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid size")
	}
	return catalog.VariantInput{
		Color:   r.Color,
		Size:    size,
		InStock: r.InStock,
	}, nil
}

func (r imageRequest) toInput() catalog.ImageInput {
	return catalog.ImageInput{
		Color:    r.Color,
		ImageURL: r.ImageURL,
	}
}

func (r addImagesRequest) toInputs() []catalog.ImageInput {
	inputs := make([]catalog.ImageInput, 0, len(r.Images))
	for _, img := range r.Images {
		inputs = append(inputs, img.toInput())
	}
	return inputs
}

func parsePathUUID(r *http.Request, key string) (uuid.UUID, error) {
	raw := chi.URLParam(r, key)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be a uuid").WithDetails(map[string]any{"field": key})
	}
	return id, nil
}
