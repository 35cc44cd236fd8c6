package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Kev3770/aura-cart-service/internal/domain"
)

const keyPrefix = "cart:"

// schemaVersion is stored alongside the items so the payload can be migrated
// if the line-item shape ever changes.
const schemaVersion = "1.0"

// envelope is the persisted record format.
type envelope struct {
	Items     []domain.LineItem `json:"items"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
}

// CartStore implements repository.CartStore using Redis.
//
// Load is self-healing: items failing validation are dropped and the cleaned
// list is re-saved, and a corrupt payload clears the key. Save self-heals the
// other way: a failed write deletes the key so a stale cart is never read
// back later.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCartStore creates a Redis-backed cart store.
func NewCartStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) *CartStore {
	return &CartStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Load retrieves and validates the persisted items for a user.
func (s *CartStore) Load(ctx context.Context, userID string) ([]domain.LineItem, error) {
	key := keyPrefix + userID

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []domain.LineItem{}, nil
		}
		return []domain.LineItem{}, fmt.Errorf("redis get cart: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Items == nil {
		s.logger.WarnContext(ctx, "invalid cart payload, clearing",
			slog.String("user_id", userID),
		)
		_ = s.Clear(ctx, userID)
		return []domain.LineItem{}, nil
	}

	valid := make([]domain.LineItem, 0, len(env.Items))
	for _, item := range env.Items {
		if isValidItem(item) {
			valid = append(valid, item)
		}
	}

	if len(valid) != len(env.Items) {
		s.logger.WarnContext(ctx, "dropped invalid cart items",
			slog.String("user_id", userID),
			slog.Int("dropped", len(env.Items)-len(valid)),
		)
		if err := s.Save(ctx, userID, valid); err != nil {
			s.logger.ErrorContext(ctx, "failed to re-save cleaned cart",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
		}
	}

	return valid, nil
}

// Save persists the full item list under the user's key.
func (s *CartStore) Save(ctx context.Context, userID string, items []domain.LineItem) error {
	key := keyPrefix + userID

	if items == nil {
		items = []domain.LineItem{}
	}

	env := envelope{
		Items:     items,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   schemaVersion,
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		// Drop the key so a stale cart cannot be read back after a failed
		// write.
		_ = s.client.Del(ctx, key).Err()
		return fmt.Errorf("redis set cart: %w", err)
	}

	return nil
}

// Clear removes the persisted entry for the user.
func (s *CartStore) Clear(ctx context.Context, userID string) error {
	key := keyPrefix + userID

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del cart: %w", err)
	}

	return nil
}

// isValidItem applies the item-level validation rules for persisted entries.
func isValidItem(item domain.LineItem) bool {
	return item.ProductID != "" &&
		item.Size != "" &&
		item.Quantity > 0 &&
		item.Name != "" &&
		item.Price >= 0
}
