package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/shortshop/shortshop-backend/api/responses"
	"github.com/shortshop/shortshop-backend/api/validators"
	reviewsvc "github.com/shortshop/shortshop-backend/internal/reviews"
	pkgerrors "github.com/shortshop/shortshop-backend/pkg/errors"
	"github.com/shortshop/shortshop-backend/pkg/logger"
)

// ListReviews handles GET /review/.
func ListReviews(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reviews, err := svc.ListReviews(r.Context(), page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, reviews)
	}
}

// CreateReview handles POST /review/.
func CreateReview(svc reviewsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createReviewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		review, err := svc.CreateReview(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, review)
	}
}

type createReviewRequest struct {
	ProductID   string `json:"product_id" validate:"required,uuid"`
	Title       string `json:"title" validate:"required,min=10,max=120"`
	Description string `json:"description" validate:"required,min=20,max=300"`
	AuthorName  string `json:"author_name" validate:"required"`
	Score       int    `json:"score" validate:"required,min=1,max=5"`
}

func (r createReviewRequest) toInput() (reviewsvc.CreateReviewInput, error) {
	productID, err := uuid.Parse(r.ProductID)
	if err != nil {
		return reviewsvc.CreateReviewInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}
	return reviewsvc.CreateReviewInput{
		ProductID:   productID,
		Title:       r.Title,
		Description: r.Description,
		AuthorName:  r.AuthorName,
		Score:       r.Score,
	}, nil
}
