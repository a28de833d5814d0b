package reviews

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shortshop/shortshop-backend/pkg/db/models"
	pkgerrors "github.com/shortshop/shortshop-backend/pkg/errors"
	"github.com/shortshop/shortshop-backend/pkg/pagination"
)

const (
	titleMinLen       = 10
	titleMaxLen       = 120
	descriptionMinLen = 20
	descriptionMaxLen = 300
	scoreMin          = 1
	scoreMax          = 5
)

// Service exposes the append-only review surface. Reviews carry a product id
// but are listed globally and never checked against the catalog, so a review
// can outlive the product it refers to.
type Service interface {
	ListReviews(ctx context.Context, page pagination.Params) ([]ReviewDTO, error)
	CreateReview(ctx context.Context, input CreateReviewInput) (*ReviewDTO, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a review service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reviews repository required")
	}
	return &service{repo: repo}, nil
}

// ListReviews returns one page of reviews.
func (s *service) ListReviews(ctx context.Context, page pagination.Params) ([]ReviewDTO, error) {
	rows, err := s.repo.ListReviews(ctx, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list reviews")
	}

	dtos := make([]ReviewDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, NewReviewDTO(&rows[i]))
	}
	return dtos, nil
}

// CreateReview validates field bounds and appends the row.
func (s *service) CreateReview(ctx context.Context, input CreateReviewInput) (*ReviewDTO, error) {
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	review := &models.ProductReview{
		ProductID:   input.ProductID,
		Title:       input.Title,
		Description: input.Description,
		AuthorName:  input.AuthorName,
		Score:       input.Score,
	}
	created, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert review")
	}

	dto := NewReviewDTO(created)
	return &dto, nil
}

func validateReviewInput(input CreateReviewInput) error {
	if n := utf8.RuneCountInString(input.Title); n < titleMinLen || n > titleMaxLen {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("title must be %d-%d characters", titleMinLen, titleMaxLen))
	}
	if n := utf8.RuneCountInString(input.Description); n < descriptionMinLen || n > descriptionMaxLen {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("description must be %d-%d characters", descriptionMinLen, descriptionMaxLen))
	}
	if strings.TrimSpace(input.AuthorName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "author_name must not be empty")
	}
	if input.Score < scoreMin || input.Score > scoreMax {
		return pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("score must be between %d and %d", scoreMin, scoreMax))
	}
	return nil
}
