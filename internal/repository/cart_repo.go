package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agrisetu/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrVersionConflict is returned by Save when the cart changed since it was read
var ErrVersionConflict = errors.New("cart version conflict")

// CartRepository stores one cart document per customer
type CartRepository interface {
	FindByCustomer(ctx context.Context, customerID string) (*model.Cart, error)
	Create(ctx context.Context, customerID string) error
	Save(ctx context.Context, cart *model.Cart) error
}

type cartRepository struct {
	db DBTX
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(db DBTX) CartRepository {
	return &cartRepository{db: db}
}

// FindByCustomer retrieves the cart of a customer, or nil if none exists yet
func (r *cartRepository) FindByCustomer(ctx context.Context, customerID string) (*model.Cart, error) {
	cart := &model.Cart{}
	var rawItems []byte
	sql := `SELECT customer_id, items, version, created_at, updated_at FROM carts WHERE customer_id = $1`
	err := r.db.QueryRow(ctx, sql, customerID).Scan(&cart.CustomerID, &rawItems, &cart.Version, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}
	if err := json.Unmarshal(rawItems, &cart.Items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}
	return cart, nil
}

// Create inserts an empty cart at version 1. A concurrent create for the same customer is not an error.
func (r *cartRepository) Create(ctx context.Context, customerID string) error {
	sql := `INSERT INTO carts (customer_id, items, version, created_at, updated_at)
            VALUES ($1, '[]'::jsonb, 1, $2, $2)
            ON CONFLICT (customer_id) DO NOTHING`
	if _, err := r.db.Exec(ctx, sql, customerID, time.Now()); err != nil {
		return fmt.Errorf("failed to create cart: %w", err)
	}
	return nil
}

// Save writes the items back only if the stored version still equals cart.Version.
// On success cart.Version and cart.UpdatedAt reflect the new row.
func (r *cartRepository) Save(ctx context.Context, cart *model.Cart) error {
	items := cart.Items
	if items == nil {
		items = []model.CartItem{}
	}
	rawItems, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart items: %w", err)
	}

	sql := `UPDATE carts SET items = $1, version = version + 1, updated_at = NOW()
            WHERE customer_id = $2 AND version = $3
            RETURNING version, updated_at`
	err = r.db.QueryRow(ctx, sql, rawItems, cart.CustomerID, cart.Version).Scan(&cart.Version, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrVersionConflict
		}
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
