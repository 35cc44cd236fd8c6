package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Derived totals
// ============================================================================

func TestTotalItems_MultipleLines(t *testing.T) {
	c := &Cart{
		Items: []LineItem{
			{Quantity: 2},
			{Quantity: 3},
			{Quantity: 1},
		},
	}
	assert.Equal(t, 6, c.TotalItems())
}

func TestTotalItems_EmptyCart(t *testing.T) {
	c := NewCart("user-1")
	assert.Equal(t, 0, c.TotalItems())
}

func TestSubtotal_NoDiscount(t *testing.T) {
	c := &Cart{
		Items: []LineItem{
			{Price: 100000, Discount: 0, Quantity: 1},
		},
	}
	assert.Equal(t, int64(100000), c.Subtotal())
	assert.Equal(t, int64(0), c.TotalDiscount())
}

func TestSubtotal_WithDiscount(t *testing.T) {
	// 20% off 100000 at quantity 3: subtotal 240000, discount 60000.
	c := &Cart{
		Items: []LineItem{
			{Price: 100000, Discount: 20, Quantity: 3},
		},
	}
	assert.Equal(t, int64(240000), c.Subtotal())
	assert.Equal(t, int64(60000), c.TotalDiscount())
}

func TestSubtotal_MixedLines(t *testing.T) {
	c := &Cart{
		Items: []LineItem{
			{Price: 50000, Discount: 0, Quantity: 2},  // 100000
			{Price: 80000, Discount: 25, Quantity: 1}, // 60000
		},
	}
	assert.Equal(t, int64(160000), c.Subtotal())
	assert.Equal(t, int64(20000), c.TotalDiscount())
}

func TestSubtotal_NilItems(t *testing.T) {
	c := &Cart{}
	assert.Equal(t, int64(0), c.Subtotal())
	assert.Equal(t, int64(0), c.TotalDiscount())
}

func TestLineItem_UnitPrice(t *testing.T) {
	li := LineItem{Price: 100000, Discount: 20}
	assert.Equal(t, int64(20000), li.DiscountPerUnit())
	assert.Equal(t, int64(80000), li.UnitPrice())
}

// ============================================================================
// Lookup helpers
// ============================================================================

func TestFindIndex(t *testing.T) {
	c := &Cart{
		Items: []LineItem{
			{ProductID: "p1", Size: "M"},
			{ProductID: "p1", Size: "L"},
			{ProductID: "p2", Size: "M"},
		},
	}

	assert.Equal(t, 0, c.FindIndex("p1", "M"))
	assert.Equal(t, 1, c.FindIndex("p1", "L"))
	assert.Equal(t, 2, c.FindIndex("p2", "M"))
	assert.Equal(t, -1, c.FindIndex("p2", "L"))
}

func TestIsInCart(t *testing.T) {
	c := &Cart{Items: []LineItem{{ProductID: "p1", Size: "M", Quantity: 1}}}

	assert.True(t, c.IsInCart("p1", "M"))
	assert.False(t, c.IsInCart("p1", "S"))
	assert.False(t, c.IsInCart("p9", "M"))
}

func TestItemQuantity(t *testing.T) {
	c := &Cart{Items: []LineItem{{ProductID: "p1", Size: "M", Quantity: 4}}}

	assert.Equal(t, 4, c.ItemQuantity("p1", "M"))
	assert.Equal(t, 0, c.ItemQuantity("p1", "S"))
}

// ============================================================================
// Product size helpers
// ============================================================================

func TestStockForSize(t *testing.T) {
	p := &Product{Sizes: []SizeStock{{Size: "M", Stock: 5}, {Size: "L", Stock: 0}}}

	assert.Equal(t, 5, p.StockForSize("M"))
	assert.Equal(t, 0, p.StockForSize("L"))
	assert.Equal(t, 0, p.StockForSize("XL"))
}

func TestHasStockForSize(t *testing.T) {
	p := &Product{Sizes: []SizeStock{{Size: "M", Stock: 5}, {Size: "L", Stock: 0}}}

	assert.True(t, p.HasStockForSize("M"))
	assert.False(t, p.HasStockForSize("L"))
	assert.False(t, p.HasStockForSize("XL"))
}

func TestAvailableSizes(t *testing.T) {
	p := &Product{Sizes: []SizeStock{
		{Size: "S", Stock: 0},
		{Size: "M", Stock: 3},
		{Size: "L", Stock: 1},
	}}

	assert.Equal(t, []string{"M", "L"}, p.AvailableSizes())
}

func TestHasAnyStock(t *testing.T) {
	assert.True(t, (&Product{Sizes: []SizeStock{{Size: "M", Stock: 1}}}).HasAnyStock())
	assert.False(t, (&Product{Sizes: []SizeStock{{Size: "M", Stock: 0}}}).HasAnyStock())
	assert.False(t, (&Product{}).HasAnyStock())
}

func TestTotalStock(t *testing.T) {
	p := &Product{Sizes: []SizeStock{{Size: "S", Stock: 2}, {Size: "M", Stock: 3}}}
	assert.Equal(t, 5, p.TotalStock())
}

func TestPrimaryImage(t *testing.T) {
	assert.Equal(t, "a.jpg", (&Product{Images: []string{"a.jpg", "b.jpg"}}).PrimaryImage())
	assert.Equal(t, "", (&Product{}).PrimaryImage())
}
