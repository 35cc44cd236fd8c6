package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Kev3770/aura-cart-service/internal/domain"
	pkgkafka "github.com/Kev3770/aura-cart-service/pkg/kafka"
)

// Kafka topics for cart domain events.
const (
	TopicCartUpdated = "aura.cart.updated"
	TopicCartCleared = "aura.cart.cleared"
)

const aggregateTypeCart = "cart"

const sourceCartService = "cart-service"

// CartUpdatedData is the payload for an aura.cart.updated event.
type CartUpdatedData struct {
	UserID        string         `json:"user_id"`
	Items         []CartItemData `json:"items"`
	TotalItems    int            `json:"total_items"`
	Subtotal      int64          `json:"subtotal"`
	TotalDiscount int64          `json:"total_discount"`
	Currency      string         `json:"currency"`
}

// CartItemData is the item payload within cart events.
type CartItemData struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Discount  int    `json:"discount"`
}

// CartClearedData is the payload for an aura.cart.cleared event.
type CartClearedData struct {
	UserID string `json:"user_id"`
}

// Producer publishes cart domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates an event producer for the cart service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartUpdated publishes the cart's state after a mutation.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	items := make([]CartItemData, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItemData{
			ProductID: item.ProductID,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Name:      item.Name,
			Price:     item.Price,
			Discount:  item.Discount,
		}
	}

	data := CartUpdatedData{
		UserID:        cart.UserID,
		Items:         items,
		TotalItems:    cart.TotalItems(),
		Subtotal:      cart.Subtotal(),
		TotalDiscount: cart.TotalDiscount(),
		Currency:      cart.Currency,
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, cart.UserID, aggregateTypeCart, sourceCartService, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("user_id", cart.UserID),
		slog.Int("total_items", data.TotalItems),
	)

	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, userID string) error {
	data := CartClearedData{UserID: userID}

	event, err := pkgkafka.NewEvent(TopicCartCleared, userID, aggregateTypeCart, sourceCartService, data)
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.cleared event",
		slog.String("user_id", userID),
	)

	return nil
}
