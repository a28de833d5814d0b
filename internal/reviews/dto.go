package reviews

import (
	"time"

	"github.com/google/uuid"

	"github.com/shortshop/shortshop-backend/pkg/db/models"
)

// ReviewDTO is the review shape returned to the API layer.
type ReviewDTO struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorName  string    `json:"author_name"`
	Score       int       `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewReviewDTO maps a review row onto its response shape.
func NewReviewDTO(review *models.ProductReview) ReviewDTO {
	return ReviewDTO{
		ID:          review.ID,
		ProductID:   review.ProductID,
		Title:       review.Title,
		Description: review.Description,
		AuthorName:  review.AuthorName,
		Score:       review.Score,
		CreatedAt:   review.CreatedAt,
	}
}

// CreateReviewInput is the validated review payload.
type CreateReviewInput struct {
	ProductID   uuid.UUID
	Title       string
	Description string
	AuthorName  string
	Score       int
}
