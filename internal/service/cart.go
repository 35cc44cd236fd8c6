package service

import (
	"context"
	"log/slog"

	"github.com/Kev3770/aura-cart-service/internal/domain"
	"github.com/Kev3770/aura-cart-service/internal/event"
	"github.com/Kev3770/aura-cart-service/internal/notify"
	"github.com/Kev3770/aura-cart-service/internal/repository"
	apperrors "github.com/Kev3770/aura-cart-service/pkg/errors"
)

// User-facing notification copy.
const (
	msgItemAdded   = "Product added to cart"
	msgItemRemoved = "Product removed from cart"
	msgCartCleared = "Cart emptied"
)

// Totals holds the derived cart totals in one response.
type Totals struct {
	TotalItems    int    `json:"total_items"`
	Subtotal      int64  `json:"subtotal"`
	TotalDiscount int64  `json:"total_discount"`
	Currency      string `json:"currency"`
}

// CartService is the cart engine: it owns the mutation rules, derives totals,
// and writes through to the store on every successful mutation.
//
// Store failures never fail an operation: a load failure degrades the call to
// an empty cart and a save failure leaves the caller with the in-memory
// result for that call, logged but not surfaced.
type CartService struct {
	store    repository.CartStore
	notifier notify.Notifier
	producer *event.Producer
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(store repository.CartStore, notifier notify.Notifier, producer *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{
		store:    store,
		notifier: notifier,
		producer: producer,
		logger:   logger,
	}
}

// GetCart returns the user's cart, empty when nothing is persisted.
func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	return s.loadCart(ctx, userID), nil
}

// Totals returns the derived totals for the user's cart.
func (s *CartService) Totals(ctx context.Context, userID string) (*Totals, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Totals{
		TotalItems:    cart.TotalItems(),
		Subtotal:      cart.Subtotal(),
		TotalDiscount: cart.TotalDiscount(),
		Currency:      cart.Currency,
	}, nil
}

// AddItem validates the requested quantity against the product's live stock
// and either increments the existing (product, size) line in place or appends
// a new line built from the catalog snapshot. On a rule violation the cart is
// left unchanged and the reason is returned as a structured error.
func (s *CartService) AddItem(ctx context.Context, userID string, product *domain.Product, size string, quantity int) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if product == nil || product.ID == "" {
		return nil, apperrors.InvalidInput("product is required")
	}
	if size == "" {
		return nil, apperrors.InvalidInput("size is required")
	}

	cart := s.loadCart(ctx, userID)

	available := product.StockForSize(size)
	current := cart.ItemQuantity(product.ID, size)

	decision := domain.CanAdd(current, quantity, available)
	if !decision.OK {
		s.notifier.Notify(ctx, notify.KindError, decision.Message)
		s.logger.InfoContext(ctx, "add to cart rejected",
			slog.String("user_id", userID),
			slog.String("product_id", product.ID),
			slog.String("size", size),
			slog.String("reason", string(decision.Reason)),
			slog.Int("max_allowed", decision.MaxAllowed),
		)
		return nil, apperrors.StockConflict(string(decision.Reason), decision.Message, decision.MaxAllowed)
	}

	if i := cart.FindIndex(product.ID, size); i >= 0 {
		// Merge in place. The snapshot fields keep their add-time values;
		// the cart stays stable even when the catalog changes.
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, domain.LineItem{
			ProductID: product.ID,
			Size:      size,
			Quantity:  quantity,
			Name:      product.Name,
			Price:     product.Price,
			Discount:  product.Discount,
			Image:     product.PrimaryImage(),
		})
	}

	s.persist(ctx, cart)
	s.notifier.Notify(ctx, notify.KindSuccess, msgItemAdded)
	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("user_id", userID),
		slog.String("product_id", product.ID),
		slog.String("size", size),
		slog.Int("quantity", quantity),
	)

	return cart, nil
}

// UpdateQuantity overwrites the quantity of the matching line. A quantity of
// zero or less behaves exactly as RemoveItem. A missing line is a no-op, not
// an error.
//
// Unlike AddItem this path does not consult stock: the caller has no catalog
// snapshot in hand here, matching the storefront's quantity controls.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID, size string, quantity int) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}
	if productID == "" {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if size == "" {
		return nil, apperrors.InvalidInput("size is required")
	}

	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, productID, size)
	}

	cart := s.loadCart(ctx, userID)

	if i := cart.FindIndex(productID, size); i >= 0 {
		cart.Items[i].Quantity = quantity
	}

	s.persist(ctx, cart)
	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "cart quantity updated",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.String("size", size),
		slog.Int("quantity", quantity),
	)

	return cart, nil
}

// IncrementQuantity raises the matching line's quantity by one, stopping at
// MaxQuantity. A missing line is a no-op.
func (s *CartService) IncrementQuantity(ctx context.Context, userID, productID, size string) (*domain.Cart, error) {
	return s.step(ctx, userID, productID, size, +1)
}

// DecrementQuantity lowers the matching line's quantity by one; reaching zero
// removes the line. A missing line is a no-op.
func (s *CartService) DecrementQuantity(ctx context.Context, userID, productID, size string) (*domain.Cart, error) {
	return s.step(ctx, userID, productID, size, -1)
}

func (s *CartService) step(ctx context.Context, userID, productID, size string, delta int) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart := s.loadCart(ctx, userID)

	current := cart.ItemQuantity(productID, size)
	if current == 0 {
		return cart, nil
	}
	if delta > 0 && current >= domain.MaxQuantity {
		return cart, nil
	}

	return s.UpdateQuantity(ctx, userID, productID, size, current+delta)
}

// RemoveItem filters the matching line out of the cart. A missing line is a
// no-op, not an error.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID, size string) (*domain.Cart, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("user id is required")
	}

	cart := s.loadCart(ctx, userID)

	if i := cart.FindIndex(productID, size); i >= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	}

	s.persist(ctx, cart)
	s.notifier.Notify(ctx, notify.KindSuccess, msgItemRemoved)
	s.publishUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("user_id", userID),
		slog.String("product_id", productID),
		slog.String("size", size),
	)

	return cart, nil
}

// ClearCart empties the cart and deletes the persisted entry. Clearing an
// already empty cart succeeds.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.InvalidInput("user id is required")
	}

	if err := s.store.Clear(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to clear cart store",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	s.notifier.Notify(ctx, notify.KindSuccess, msgCartCleared)

	if err := s.producer.PublishCartCleared(ctx, userID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("user_id", userID),
	)

	return nil
}

// loadCart reads the persisted items, degrading to an empty cart when the
// store is unavailable.
func (s *CartService) loadCart(ctx context.Context, userID string) *domain.Cart {
	cart := domain.NewCart(userID)

	items, err := s.store.Load(ctx, userID)
	if err != nil {
		s.logger.WarnContext(ctx, "cart store unavailable, using empty cart",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return cart
	}

	cart.Items = items
	return cart
}

// persist writes the full item list through to the store. Failures are
// logged, never surfaced; the store heals itself on the next access.
func (s *CartService) persist(ctx context.Context, cart *domain.Cart) {
	if err := s.store.Save(ctx, cart.UserID, cart.Items); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist cart",
			slog.String("user_id", cart.UserID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *CartService) publishUpdated(ctx context.Context, cart *domain.Cart) {
	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("user_id", cart.UserID),
			slog.String("error", err.Error()),
		)
	}
}
