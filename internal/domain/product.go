package domain

// SizeStock is the remaining purchasable units for one size of a product.
type SizeStock struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

// Product is the catalog snapshot consumed when adding an item to the cart.
// The cart service never mutates products; the catalog service owns them.
type Product struct {
	ID       string      `json:"id"`
	Slug     string      `json:"slug"`
	Name     string      `json:"name"`
	Category string      `json:"category,omitempty"`
	Price    int64       `json:"price"`
	Discount int         `json:"discount"`
	Images   []string    `json:"images"`
	Sizes    []SizeStock `json:"sizes"`
}

// StockForSize returns the available stock for the given size, 0 when the
// size is not offered.
func (p *Product) StockForSize(size string) int {
	for _, s := range p.Sizes {
		if s.Size == size {
			return s.Stock
		}
	}
	return 0
}

// HasStockForSize reports whether the given size has stock available.
func (p *Product) HasStockForSize(size string) bool {
	return p.StockForSize(size) > 0
}

// AvailableSizes returns the size labels that currently have stock.
func (p *Product) AvailableSizes() []string {
	var sizes []string
	for _, s := range p.Sizes {
		if s.Stock > 0 {
			sizes = append(sizes, s.Size)
		}
	}
	return sizes
}

// HasAnyStock reports whether at least one size has stock.
func (p *Product) HasAnyStock() bool {
	for _, s := range p.Sizes {
		if s.Stock > 0 {
			return true
		}
	}
	return false
}

// TotalStock returns the stock summed across all sizes.
func (p *Product) TotalStock() int {
	var total int
	for _, s := range p.Sizes {
		total += s.Stock
	}
	return total
}

// PrimaryImage returns the first product image, or "" when there is none.
func (p *Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}
