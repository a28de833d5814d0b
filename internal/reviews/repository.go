package reviews

import (
	"context"

	"gorm.io/gorm"

	"github.com/shortshop/shortshop-backend/internal/repo"
	"github.com/shortshop/shortshop-backend/pkg/db/models"
	"github.com/shortshop/shortshop-backend/pkg/pagination"
)

// Repository holds review persistence helpers.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// ListReviews returns one page of reviews across all products, oldest first.
func (r *Repository) ListReviews(ctx context.Context, page pagination.Params) ([]models.ProductReview, error) {
	page = pagination.Normalize(page)

	var rows []models.ProductReview
	if err := r.DB(ctx).
		Order("created_at, id").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateReview appends a review row.
func (r *Repository) CreateReview(ctx context.Context, review *models.ProductReview) (*models.ProductReview, error) {
	if err := r.DB(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}
