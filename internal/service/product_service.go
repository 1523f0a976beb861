package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"agrisetu/internal/model"
	"agrisetu/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Column limits of products.price NUMERIC(12,2) and products.quantity INTEGER
const (
	maxProductPrice    = 1e10
	maxProductQuantity = math.MaxInt32
)

// ProductService defines catalog operations
type ProductService interface {
	CreateProduct(ctx context.Context, farmerID string, req model.CreateProductRequest) (*model.Product, error)
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListFarmerProducts(ctx context.Context, farmerID string) ([]model.Product, error)
	UpdateProduct(ctx context.Context, productID, farmerID string, req model.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID, farmerID string) error
}

type productService struct {
	repo     repository.ProductRepository
	userRepo repository.UserRepository
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepository, userRepo repository.UserRepository) ProductService {
	return &productService{repo: repo, userRepo: userRepo}
}

// validID reports whether id is a well-formed identifier; malformed ids can never match a row
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *productService) CreateProduct(ctx context.Context, farmerID string, req model.CreateProductRequest) (*model.Product, error) {
	farmer, err := s.userRepo.FindByID(ctx, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load farmer for product creation: %w", err)
	}
	if farmer == nil || farmer.Role != model.RoleFarmer {
		return nil, ErrForbidden
	}

	product := &model.Product{
		ID:          uuid.NewString(),
		Farmer:      model.FarmerRef{ID: farmer.ID, Name: farmer.Name, Email: farmer.Email},
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Unit:        req.Unit,
		Quantity:    req.Quantity,
		Image:       req.Image,
		CreatedAt:   time.Now(),
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in repo: %w", err)
	}
	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	if !validID(productID) {
		return nil, ErrProductNotFound
	}
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) ListFarmerProducts(ctx context.Context, farmerID string) ([]model.Product, error) {
	if !validID(farmerID) {
		return []model.Product{}, nil
	}
	products, err := s.repo.FindByFarmer(ctx, farmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list farmer products: %w", err)
	}
	return products, nil
}

// loadOwned returns the product if it exists and belongs to farmerID
func (s *productService) loadOwned(ctx context.Context, productID, farmerID string) (*model.Product, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Farmer.ID != farmerID {
		return nil, ErrForbidden
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID, farmerID string, req model.UpdateProductRequest) (*model.Product, error) {
	product, err := s.loadOwned(ctx, productID, farmerID)
	if err != nil {
		return nil, err
	}

	// Apply updates
	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product in repo: %w", err)
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID, farmerID string) error {
	if _, err := s.loadOwned(ctx, productID, farmerID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product in repo: %w", err)
	}
	return nil
}

// validateProduct rounds the price to cents as the column stores it, then checks every field
func validateProduct(p *model.Product) error {
	p.Price = decimal.NewFromFloat(p.Price).Round(2).InexactFloat64()

	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case !model.IsValidCategory(p.Category):
		return fmt.Errorf("%w: category must be vegetable, fruit or grain", ErrInvalidInput)
	case p.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	case p.Price >= maxProductPrice:
		return fmt.Errorf("%w: price must be below %.0f", ErrInvalidInput, maxProductPrice)
	case p.Quantity < 0:
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	case p.Quantity > maxProductQuantity:
		return fmt.Errorf("%w: quantity must be at most %d", ErrInvalidInput, maxProductQuantity)
	case p.Unit == "":
		return fmt.Errorf("%w: unit is required", ErrInvalidInput)
	}
	return nil
}
