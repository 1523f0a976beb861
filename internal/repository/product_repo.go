package repository

import (
	"context"
	"errors"
	"fmt"

	"agrisetu/internal/model"

	"github.com/jackc/pgx/v5"
)

// ErrProductNotFound is returned by Update and Delete when no row matched
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines operations for the product catalog
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByFarmer(ctx context.Context, farmerID string) ([]model.Product, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	db DBTX
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db DBTX) ProductRepository {
	return &productRepository{db: db}
}

// Every read joins the owning farmer so responses carry {id, name, email}
const productSelect = `SELECT p.id, p.farmer_id, u.name, u.email, p.name, p.description, p.category,
            p.price, p.unit, p.quantity, p.image, p.created_at
            FROM products p JOIN users u ON u.id = p.farmer_id`

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(
		&p.ID, &p.Farmer.ID, &p.Farmer.Name, &p.Farmer.Email, &p.Name, &p.Description, &p.Category,
		&p.Price, &p.Unit, &p.Quantity, &p.Image, &p.CreatedAt,
	)
}

// Create inserts a new product
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	sql := `INSERT INTO products (id, farmer_id, name, description, category, price, unit, quantity, image, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, sql, p.ID, p.Farmer.ID, p.Name, p.Description, p.Category, p.Price, p.Unit, p.Quantity, p.Image, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by its ID
func (r *productRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	p := &model.Product{}
	err := scanProduct(r.db.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id), p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return p, nil
}

// FindAll lists the whole catalog, newest first
func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	return r.query(ctx, productSelect+` ORDER BY p.created_at DESC`)
}

// FindByFarmer lists the products owned by a farmer
func (r *productRepository) FindByFarmer(ctx context.Context, farmerID string) ([]model.Product, error) {
	return r.query(ctx, productSelect+` WHERE p.farmer_id = $1 ORDER BY p.created_at DESC`, farmerID)
}

// FindByIDs returns the products that still exist among ids, keyed by ID
func (r *productRepository) FindByIDs(ctx context.Context, ids []string) (map[string]model.Product, error) {
	result := make(map[string]model.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	products, err := r.query(ctx, productSelect+` WHERE p.id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		result[p.ID] = p
	}
	return result, nil
}

func (r *productRepository) query(ctx context.Context, sql string, args ...any) ([]model.Product, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// Update writes the mutable fields of a product. Ownership is part of the predicate.
func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	sql := `UPDATE products
            SET name = $1, description = $2, category = $3, price = $4, unit = $5, quantity = $6, image = $7
            WHERE id = $8 AND farmer_id = $9`
	cmdTag, err := r.db.Exec(ctx, sql, p.Name, p.Description, p.Category, p.Price, p.Unit, p.Quantity, p.Image, p.ID, p.Farmer.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete removes a product. Cart lines pointing at it are left in place.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}
