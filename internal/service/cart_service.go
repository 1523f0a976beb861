package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"

	"agrisetu/internal/model"
	"agrisetu/internal/repository"
)

// maxCartWriteAttempts bounds the compare-and-swap retry loop of a single cart operation
const maxCartWriteAttempts = 3

// CartService defines the operations a customer may invoke against its own cart
type CartService interface {
	GetCart(ctx context.Context, customerID string) (*model.CartView, error)
	AddItem(ctx context.Context, customerID, productID string, quantity int) (*model.CartView, error)
	UpdateItem(ctx context.Context, customerID, productID string, quantity int) (*model.CartView, error)
	RemoveItem(ctx context.Context, customerID, productID string) (*model.CartView, error)
	ClearCart(ctx context.Context, customerID string) (*model.CartView, error)
	Summary(ctx context.Context, customerID string) (*model.CartSummary, error)
}

type cartService struct {
	carts      repository.CartRepository
	products   repository.ProductRepository
	promotions PromotionService
}

// NewCartService creates a new CartService
func NewCartService(carts repository.CartRepository, products repository.ProductRepository, promotions PromotionService) CartService {
	return &cartService{carts: carts, products: products, promotions: promotions}
}

// GetCart returns the customer's cart, creating an empty one on first access.
// Lines whose product was deleted are left out of the view.
func (s *cartService) GetCart(ctx context.Context, customerID string) (*model.CartView, error) {
	cart, err := s.load(ctx, customerID, true)
	if err != nil {
		return nil, err
	}
	products, err := s.products.FindByIDs(ctx, productIDs(cart.Items))
	if err != nil {
		return nil, fmt.Errorf("failed to load cart products: %w", err)
	}
	return buildView(cart, products), nil
}

// AddItem increments the line for productID by quantity, appending it if absent.
// Stock is checked against the requested quantity only and is never reserved.
func (s *cartService) AddItem(ctx context.Context, customerID, productID string, quantity int) (*model.CartView, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if err := s.checkStock(ctx, productID, quantity); err != nil {
		return nil, err
	}

	return s.mutate(ctx, customerID, true, productID, func(cart *model.Cart, products map[string]model.Product) error {
		// The product may have changed between the pre-check and this attempt
		if err := stockAvailable(products, productID, quantity); err != nil {
			return err
		}
		if idx := cart.FindItem(productID); idx >= 0 {
			cart.Items[idx].Quantity += quantity
		} else {
			cart.Items = append(cart.Items, model.CartItem{ProductID: productID, Quantity: quantity})
		}
		return nil
	})
}

// UpdateItem sets the quantity of an existing line
func (s *cartService) UpdateItem(ctx context.Context, customerID, productID string, quantity int) (*model.CartView, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if err := s.checkStock(ctx, productID, quantity); err != nil {
		return nil, err
	}

	return s.mutate(ctx, customerID, false, productID, func(cart *model.Cart, products map[string]model.Product) error {
		if err := stockAvailable(products, productID, quantity); err != nil {
			return err
		}
		idx := cart.FindItem(productID)
		if idx < 0 {
			return ErrCartItemNotFound
		}
		cart.Items[idx].Quantity = quantity
		return nil
	})
}

// RemoveItem drops the line for productID. Removing an absent line is not an error.
func (s *cartService) RemoveItem(ctx context.Context, customerID, productID string) (*model.CartView, error) {
	return s.mutate(ctx, customerID, false, "", func(cart *model.Cart, _ map[string]model.Product) error {
		cart.Items = slices.DeleteFunc(cart.Items, func(item model.CartItem) bool {
			return item.ProductID == productID
		})
		return nil
	})
}

// ClearCart empties the cart in place
func (s *cartService) ClearCart(ctx context.Context, customerID string) (*model.CartView, error) {
	return s.mutate(ctx, customerID, false, "", func(cart *model.Cart, _ map[string]model.Product) error {
		cart.Items = []model.CartItem{}
		return nil
	})
}

// Summary prices the cart with the customer's server-side promotion
func (s *cartService) Summary(ctx context.Context, customerID string) (*model.CartSummary, error) {
	view, err := s.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}
	percent, err := s.promotions.DiscountPercent(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &model.CartSummary{
		Cart:            view,
		DiscountPercent: percent,
		Totals:          CalculateTotal(view.Items, percent),
	}, nil
}

func (s *cartService) checkStock(ctx context.Context, productID string, quantity int) error {
	if !validID(productID) {
		return ErrProductNotFound
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to find product for cart: %w", err)
	}
	if product == nil {
		return ErrProductNotFound
	}
	if product.Quantity < quantity {
		return ErrInsufficientStock
	}
	return nil
}

func stockAvailable(products map[string]model.Product, productID string, quantity int) error {
	product, ok := products[productID]
	if !ok {
		return ErrProductNotFound
	}
	if product.Quantity < quantity {
		return ErrInsufficientStock
	}
	return nil
}

// load reads the cart, creating an empty one first when create is set
func (s *cartService) load(ctx context.Context, customerID string, create bool) (*model.Cart, error) {
	cart, err := s.carts.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}
	if cart != nil {
		return cart, nil
	}
	if !create {
		return nil, ErrCartNotFound
	}

	if err := s.carts.Create(ctx, customerID); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	cart, err = s.carts.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload created cart: %w", err)
	}
	if cart == nil {
		return nil, fmt.Errorf("cart for customer %s missing after create", customerID)
	}
	return cart, nil
}

// mutate runs read, apply, compare-and-swap write, retrying on version conflicts.
// Lines pointing at deleted products are purged before apply. When nothing
// changed the cart is not written.
func (s *cartService) mutate(ctx context.Context, customerID string, create bool, extraProductID string,
	apply func(cart *model.Cart, products map[string]model.Product) error) (*model.CartView, error) {

	for attempt := 1; attempt <= maxCartWriteAttempts; attempt++ {
		cart, err := s.load(ctx, customerID, create)
		if err != nil {
			return nil, err
		}

		ids := productIDs(cart.Items)
		if extraProductID != "" && !slices.Contains(ids, extraProductID) {
			ids = append(ids, extraProductID)
		}
		products, err := s.products.FindByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load cart products: %w", err)
		}

		before := slices.Clone(cart.Items)
		cart.Items = slices.DeleteFunc(cart.Items, func(item model.CartItem) bool {
			_, ok := products[item.ProductID]
			return !ok
		})
		if err := apply(cart, products); err != nil {
			return nil, err
		}
		if slices.Equal(before, cart.Items) {
			return buildView(cart, products), nil
		}

		err = s.carts.Save(ctx, cart)
		if err == nil {
			return buildView(cart, products), nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, fmt.Errorf("failed to save cart: %w", err)
		}
		log.Printf("INFO: cart of customer %s changed during write (attempt %d/%d), retrying", customerID, attempt, maxCartWriteAttempts)
	}
	return nil, ErrCartConflict
}

func productIDs(items []model.CartItem) []string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

// buildView populates each line with its product, skipping lines whose product no longer exists
func buildView(cart *model.Cart, products map[string]model.Product) *model.CartView {
	lines := make([]model.CartLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, model.CartLine{Product: product, Quantity: item.Quantity})
	}
	return &model.CartView{
		CustomerID: cart.CustomerID,
		Items:      lines,
		Version:    cart.Version,
		UpdatedAt:  cart.UpdatedAt,
	}
}
