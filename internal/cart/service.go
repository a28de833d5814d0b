package cart

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
)

const (
	sessionIDMaxLen = 128

	cartConstraint     = "carts_session_id_key"
	cartItemConstraint = "uq_cart_item"
)

// Service exposes the cart aggregate: get-or-create by session id plus item
// mutations gated by an ownership check.
type Service interface {
	GetCart(ctx context.Context, sessionID string) (*CartDTO, error)
	CreateCart(ctx context.Context, sessionID string) (*CartDTO, error)
	AddItem(ctx context.Context, sessionID string, input AddItemInput) (*CartDTO, error)
	UpdateItem(ctx context.Context, sessionID string, itemID uuid.UUID, quantity int) (*CartDTO, error)
	DeleteItem(ctx context.Context, sessionID string, itemID uuid.UUID) (*CartDTO, error)
	ClearCart(ctx context.Context, sessionID string) (*CartDTO, error)
}

type service struct {
	repo     *Repository
	dbClient *db.Client
}

// NewService constructs a cart service instance.
func NewService(repo *Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, dbClient: dbClient}, nil
}

// GetCart returns the cart with items eager-loaded.
func (s *service) GetCart(ctx context.Context, sessionID string) (*CartDTO, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	cart, err := s.repo.GetCartDetail(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart")
	}
	return NewCartDTO(cart), nil
}

// CreateCart registers a session if needed. Calling it twice with the same
// session id returns the same cart.
func (s *service) CreateCart(ctx context.Context, sessionID string) (*CartDTO, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	if _, err := s.resolveOrCreateCart(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, sessionID)
}

// AddItem resolves or creates the cart for the session, then inserts the
// variant line or increments its quantity when the variant is already in the
// cart.
func (s *service) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*CartDTO, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be a positive integer")
	}

	if _, err := s.repo.FindVariantByID(ctx, input.VariantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load variant")
	}

	cart, err := s.resolveOrCreateCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		existing, err := txRepo.FindItemByVariant(ctx, cart.ID, input.VariantID)
		switch {
		case err == nil:
			return txRepo.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+input.Quantity)
		case errors.Is(err, gorm.ErrRecordNotFound):
			_, err := txRepo.CreateItem(ctx, &models.CartItem{
				CartID:    cart.ID,
				VariantID: input.VariantID,
				Quantity:  input.Quantity,
			})
			return err
		default:
			return err
		}
	}); err != nil {
		if db.IsUniqueViolation(err, cartItemConstraint) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "variant already in cart")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: add cart item")
	}

	return s.GetCart(ctx, sessionID)
}

// UpdateItem sets the exact quantity on an item the session's cart owns.
func (s *service) UpdateItem(ctx context.Context, sessionID string, itemID uuid.UUID, quantity int) (*CartDTO, error) {
	if quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be a positive integer")
	}

	item, err := s.ownedItem(ctx, sessionID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateItemQuantity(ctx, item.ID, quantity); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update cart item")
	}
	return s.GetCart(ctx, sessionID)
}

// DeleteItem removes an item the session's cart owns.
func (s *service) DeleteItem(ctx context.Context, sessionID string, itemID uuid.UUID) (*CartDTO, error) {
	item, err := s.ownedItem(ctx, sessionID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteItem(ctx, item.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete cart item")
	}
	return s.GetCart(ctx, sessionID)
}

// ClearCart removes every item in one statement; the cart row itself stays.
func (s *service) ClearCart(ctx context.Context, sessionID string) (*CartDTO, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	cart, err := s.repo.FindCartBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart")
	}

	if err := s.repo.DeleteItemsByCart(ctx, cart.ID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: clear cart")
	}
	return s.GetCart(ctx, sessionID)
}

// ownedItem resolves the session's cart, then the item scoped to that cart.
// An item that exists under another cart is indistinguishable from one the
// session never had, and both surface as an ownership violation.
func (s *service) ownedItem(ctx context.Context, sessionID string, itemID uuid.UUID) (*models.CartItem, error) {
	if err := validateSessionID(sessionID); err != nil {
		return nil, err
	}

	cart, err := s.repo.FindCartBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart")
	}

	item, err := s.repo.FindItemInCart(ctx, cart.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "item does not belong to this cart")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart item")
	}
	return item, nil
}

// resolveOrCreateCart finds the session's cart or inserts one. A concurrent
// insert racing on the session_id unique index resolves by re-reading.
func (s *service) resolveOrCreateCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	cart, err := s.repo.FindCartBySession(ctx, sessionID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart")
	}

	created, err := s.repo.CreateCart(ctx, &models.Cart{SessionID: sessionID})
	if err != nil {
		if db.IsUniqueViolation(err, cartConstraint) {
			cart, err := s.repo.FindCartBySession(ctx, sessionID)
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: reload cart")
			}
			return cart, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert cart")
	}
	return created, nil
}

func validateSessionID(sessionID string) error {
	trimmed := strings.TrimSpace(sessionID)
	if trimmed == "" || len(sessionID) > sessionIDMaxLen {
		return pkgerrors.New(pkgerrors.CodeValidation, "session_id must be 1-128 characters")
	}
	return nil
}
