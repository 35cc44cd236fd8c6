package domain

// Currency is the store currency. Colombian pesos have no minor unit, so
// prices are whole-peso int64 values.
const Currency = "COP"

// LineItem is one (product, size) entry in the cart. Name, Price, Discount,
// and Image are a snapshot of the catalog taken when the item was added; they
// are deliberately never refreshed, so the cart stays stable even when the
// catalog changes.
type LineItem struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Discount  int    `json:"discount"`
	Image     string `json:"image,omitempty"`
}

// DiscountPerUnit returns the discount amount for a single unit.
func (li LineItem) DiscountPerUnit() int64 {
	return li.Price * int64(li.Discount) / 100
}

// UnitPrice returns the discounted price for a single unit.
func (li LineItem) UnitPrice() int64 {
	return li.Price - li.DiscountPerUnit()
}

// Cart is the ordered list of line items for one user. Insertion order is
// preserved; mutations never reorder, only removal shifts positions.
type Cart struct {
	UserID   string     `json:"user_id"`
	Items    []LineItem `json:"items"`
	Currency string     `json:"currency"`
}

// NewCart creates an empty cart for the given user.
func NewCart(userID string) *Cart {
	return &Cart{
		UserID:   userID,
		Items:    []LineItem{},
		Currency: Currency,
	}
}

// FindIndex returns the index of the line matching (productID, size), or -1.
func (c *Cart) FindIndex(productID, size string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Size == size {
			return i
		}
	}
	return -1
}

// IsInCart reports whether a line exists for (productID, size).
func (c *Cart) IsInCart(productID, size string) bool {
	return c.FindIndex(productID, size) >= 0
}

// ItemQuantity returns the quantity of the line for (productID, size), or 0.
func (c *Cart) ItemQuantity(productID, size string) int {
	if i := c.FindIndex(productID, size); i >= 0 {
		return c.Items[i].Quantity
	}
	return 0
}

// TotalItems returns the sum of all line quantities.
func (c *Cart) TotalItems() int {
	var total int
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal returns the sum of discounted unit prices times quantities.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPrice() * int64(item.Quantity)
	}
	return total
}

// TotalDiscount returns the total discount amount across all lines.
func (c *Cart) TotalDiscount() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.DiscountPerUnit() * int64(item.Quantity)
	}
	return total
}
