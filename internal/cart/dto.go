package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/shortshop/shortshop-backend/pkg/db/models"
)

// CartDTO is the cart aggregate returned to the API layer.
type CartDTO struct {
	ID        uuid.UUID `json:"id"`
	SessionID string    `json:"session_id"`
	Items     []ItemDTO `json:"items"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemDTO is one variant line inside a cart.
type ItemDTO struct {
	ID        uuid.UUID `json:"id"`
	VariantID uuid.UUID `json:"variant_id"`
	Quantity  int       `json:"quantity"`
}

// NewCartDTO maps the loaded cart onto its response shape.
func NewCartDTO(cart *models.Cart) *CartDTO {
	if cart == nil {
		return nil
	}

	items := make([]ItemDTO, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, ItemDTO{
			ID:        item.ID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
		})
	}

	return &CartDTO{
		ID:        cart.ID,
		SessionID: cart.SessionID,
		Items:     items,
		CreatedAt: cart.CreatedAt,
	}
}

// AddItemInput is the validated add-to-cart payload.
type AddItemInput struct {
	VariantID uuid.UUID
	Quantity  int
}
