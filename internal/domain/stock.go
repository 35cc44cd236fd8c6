package domain

import "fmt"

// Cart quantity limits per line item.
const (
	// MinQuantity is the minimum quantity that can be added in one request.
	MinQuantity = 1
	// MaxQuantity is the maximum quantity allowed per line item, regardless
	// of stock.
	MaxQuantity = 10
)

// Reason identifies why an add was rejected.
type Reason string

const (
	ReasonOutOfStock        Reason = "OUT_OF_STOCK"
	ReasonBelowMinimum      Reason = "BELOW_MINIMUM_QUANTITY"
	ReasonCapExceeded       Reason = "QUANTITY_CAP_EXCEEDED"
	ReasonInsufficientStock Reason = "INSUFFICIENT_STOCK"
)

// AddDecision is the result of the stock-validation rules.
type AddDecision struct {
	OK      bool
	Reason  Reason
	Message string
	// MaxAllowed is the number of units the caller could still add.
	MaxAllowed int
}

// CanAdd decides whether requested units can be added to a line currently
// holding current units, given the live available stock for that size.
//
// The check order is fixed and user-visible: an out-of-stock size is reported
// before a bad minimum, the per-product cap before the live stock ceiling.
func CanAdd(current, requested, available int) AddDecision {
	if available == 0 {
		return AddDecision{
			Reason:     ReasonOutOfStock,
			Message:    "Product out of stock",
			MaxAllowed: 0,
		}
	}

	if requested < MinQuantity {
		return AddDecision{
			Reason:     ReasonBelowMinimum,
			Message:    fmt.Sprintf("Minimum quantity is %d", MinQuantity),
			MaxAllowed: available,
		}
	}

	total := current + requested

	if total > MaxQuantity {
		return AddDecision{
			Reason:     ReasonCapExceeded,
			Message:    fmt.Sprintf("Maximum %d units per product", MaxQuantity),
			MaxAllowed: MaxQuantity - current,
		}
	}

	if total > available {
		return AddDecision{
			Reason:     ReasonInsufficientStock,
			Message:    fmt.Sprintf("Only %d units available", available),
			MaxAllowed: available - current,
		}
	}

	maxAllowed := MaxQuantity
	if available < maxAllowed {
		maxAllowed = available
	}

	return AddDecision{
		OK:         true,
		MaxAllowed: maxAllowed - current,
	}
}
