package model

import "time"

// CartItem is a stored line item: a product reference and a positive quantity
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart is the stored cart document of a customer. Version is bumped on every write.
type Cart struct {
	CustomerID string     `json:"customer"`
	Items      []CartItem `json:"items"`
	Version    int64      `json:"version"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// FindItem returns the index of the line for productID, or -1
func (c *Cart) FindItem(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// CartLine is a line item with its product populated
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartView is the cart as returned to clients
type CartView struct {
	CustomerID string     `json:"customer"`
	Items      []CartLine `json:"items"`
	Version    int64      `json:"version"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Totals is the output of the pricing engine
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// CartSummary is a priced cart
type CartSummary struct {
	Cart            *CartView `json:"cart"`
	DiscountPercent int       `json:"discountPercent"`
	Totals
}

// AddCartItemRequest is the payload for POST /cart/items
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItemRequest is the payload for PUT /cart/items/:productId
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}
