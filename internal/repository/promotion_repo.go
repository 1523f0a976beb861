package repository

import (
	"context"
	"errors"
	"fmt"

	"agrisetu/internal/model"

	"github.com/jackc/pgx/v5"
)

// PromotionRepository stores the current discount of each customer
type PromotionRepository interface {
	FindByCustomer(ctx context.Context, customerID string) (*model.Promotion, error)
	Upsert(ctx context.Context, promotion *model.Promotion) error
}

type promotionRepository struct {
	db DBTX
}

// NewPromotionRepository creates a new PromotionRepository
func NewPromotionRepository(db DBTX) PromotionRepository {
	return &promotionRepository{db: db}
}

// FindByCustomer returns the customer's promotion, or nil if none was granted
func (r *promotionRepository) FindByCustomer(ctx context.Context, customerID string) (*model.Promotion, error) {
	p := &model.Promotion{}
	sql := `SELECT customer_id, percent, source, granted_at FROM promotions WHERE customer_id = $1`
	err := r.db.QueryRow(ctx, sql, customerID).Scan(&p.CustomerID, &p.Percent, &p.Source, &p.GrantedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find promotion: %w", err)
	}
	return p, nil
}

// Upsert replaces any previous promotion of the customer
func (r *promotionRepository) Upsert(ctx context.Context, p *model.Promotion) error {
	sql := `INSERT INTO promotions (customer_id, percent, source, granted_at)
            VALUES ($1, $2, $3, $4)
            ON CONFLICT (customer_id) DO UPDATE
            SET percent = EXCLUDED.percent, source = EXCLUDED.source, granted_at = EXCLUDED.granted_at`
	if _, err := r.db.Exec(ctx, sql, p.CustomerID, p.Percent, p.Source, p.GrantedAt); err != nil {
		return fmt.Errorf("failed to upsert promotion: %w", err)
	}
	return nil
}
