package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shortshop/shortshop-backend/internal/repo"
	"github.com/shortshop/shortshop-backend/pkg/db/models"
)

// Repository wires together cart and cart-item persistence helpers.
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

// FindCartBySession loads the cart row without items.
func (r *Repository) FindCartBySession(ctx context.Context, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.DB(ctx).
		First(&cart, "session_id = ?", sessionID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCartDetail loads the cart with its items eager-loaded. Items are
// ordered by id so the cart renders in a stable order between reads.
func (r *Repository) GetCartDetail(ctx context.Context, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.DB(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		First(&cart, "session_id = ?", sessionID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// CreateCart inserts a new empty cart for the session.
func (r *Repository) CreateCart(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	if err := r.DB(ctx).Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

// FindItemInCart loads an item only when it belongs to the given cart.
func (r *Repository) FindItemInCart(ctx context.Context, cartID, itemID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB(ctx).
		First(&item, "id = ? AND cart_id = ?", itemID, cartID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindItemByVariant loads the cart's line for a variant, if one exists.
func (r *Repository) FindItemByVariant(ctx context.Context, cartID, variantID uuid.UUID) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB(ctx).
		First(&item, "cart_id = ? AND variant_id = ?", cartID, variantID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem inserts a new cart item row.
func (r *Repository) CreateItem(ctx context.Context, item *models.CartItem) (*models.CartItem, error) {
	if err := r.DB(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItemQuantity sets the exact quantity on one item row.
func (r *Repository) UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	return r.DB(ctx).
		Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

// DeleteItem removes one item row.
func (r *Repository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	return r.DB(ctx).Delete(&models.CartItem{}, "id = ?", itemID).Error
}

// DeleteItemsByCart removes every item in the cart with one statement.
func (r *Repository) DeleteItemsByCart(ctx context.Context, cartID uuid.UUID) error {
	return r.DB(ctx).Delete(&models.CartItem{}, "cart_id = ?", cartID).Error
}

// FindVariantByID confirms the referenced variant exists before an item is
// written.
func (r *Repository) FindVariantByID(ctx context.Context, variantID uuid.UUID) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.DB(ctx).
		First(&variant, "id = ?", variantID).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}
