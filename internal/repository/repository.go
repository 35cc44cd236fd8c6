package repository

import (
	"context"

	"github.com/Kev3770/aura-cart-service/internal/domain"
)

// CartStore defines the persistence contract consumed by the cart engine.
// Implementations must never panic; unavailability is reported as an error
// that the engine treats as non-fatal.
type CartStore interface {
	// Load returns the persisted line items for the user. An absent key,
	// an unparseable payload, or a payload without an item list all yield
	// an empty list, not an error.
	Load(ctx context.Context, userID string) ([]domain.LineItem, error)

	// Save persists the full item list for the user, replacing whatever
	// was stored before.
	Save(ctx context.Context, userID string, items []domain.LineItem) error

	// Clear removes the persisted entry for the user entirely.
	Clear(ctx context.Context, userID string) error
}
