package model

import "time"

const (
	CategoryVegetable = "vegetable"
	CategoryFruit     = "fruit"
	CategoryGrain     = "grain"
)

// IsValidCategory reports whether category is one of the known product categories
func IsValidCategory(category string) bool {
	switch category {
	case CategoryVegetable, CategoryFruit, CategoryGrain:
		return true
	}
	return false
}

// FarmerRef is the public part of the owning farmer embedded in product responses
type FarmerRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Product is a sellable item owned by exactly one farmer
type Product struct {
	ID          string    `json:"id"`
	Farmer      FarmerRef `json:"farmer"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit"`
	Quantity    int       `json:"quantity"` // Available stock
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateProductRequest is used for creating a new product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required,oneof=vegetable fruit grain"`
	Price       float64 `json:"price" binding:"gte=0"`
	Unit        string  `json:"unit" binding:"required"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Image       string  `json:"image"`
}

// UpdateProductRequest carries a partial update; nil fields are left unchanged
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty" binding:"omitempty,oneof=vegetable fruit grain"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gte=0"`
	Unit        *string  `json:"unit,omitempty"`
	Quantity    *int     `json:"quantity,omitempty" binding:"omitempty,gte=0"`
	Image       *string  `json:"image,omitempty"`
}
