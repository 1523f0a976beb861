package handler

import (
	"context"

	"agrisetu/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error) {
	args := m.Called(ctx, req)
	u, _ := args.Get(0).(*model.User)
	return u, args.String(1), args.Error(2)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*model.User)
	return u, args.String(1), args.Error(2)
}

type mockProductService struct{ mock.Mock }

func (m *mockProductService) CreateProduct(ctx context.Context, farmerID string, req model.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, farmerID, req)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockProductService) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]model.Product)
	return p, args.Error(1)
}

func (m *mockProductService) ListFarmerProducts(ctx context.Context, farmerID string) ([]model.Product, error) {
	args := m.Called(ctx, farmerID)
	p, _ := args.Get(0).([]model.Product)
	return p, args.Error(1)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, productID, farmerID string, req model.UpdateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, productID, farmerID, req)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, productID, farmerID string) error {
	return m.Called(ctx, productID, farmerID).Error(0)
}

type mockCartService struct{ mock.Mock }

func (m *mockCartService) cart(args mock.Arguments) (*model.CartView, error) {
	v, _ := args.Get(0).(*model.CartView)
	return v, args.Error(1)
}

func (m *mockCartService) GetCart(ctx context.Context, customerID string) (*model.CartView, error) {
	return m.cart(m.Called(ctx, customerID))
}

func (m *mockCartService) AddItem(ctx context.Context, customerID, productID string, quantity int) (*model.CartView, error) {
	return m.cart(m.Called(ctx, customerID, productID, quantity))
}

func (m *mockCartService) UpdateItem(ctx context.Context, customerID, productID string, quantity int) (*model.CartView, error) {
	return m.cart(m.Called(ctx, customerID, productID, quantity))
}

func (m *mockCartService) RemoveItem(ctx context.Context, customerID, productID string) (*model.CartView, error) {
	return m.cart(m.Called(ctx, customerID, productID))
}

func (m *mockCartService) ClearCart(ctx context.Context, customerID string) (*model.CartView, error) {
	return m.cart(m.Called(ctx, customerID))
}

func (m *mockCartService) Summary(ctx context.Context, customerID string) (*model.CartSummary, error) {
	args := m.Called(ctx, customerID)
	s, _ := args.Get(0).(*model.CartSummary)
	return s, args.Error(1)
}

type mockPromotionService struct{ mock.Mock }

func (m *mockPromotionService) GrantQuizReward(ctx context.Context, customerID string, correctAnswers int) (*model.Promotion, error) {
	args := m.Called(ctx, customerID, correctAnswers)
	p, _ := args.Get(0).(*model.Promotion)
	return p, args.Error(1)
}

func (m *mockPromotionService) GetPromotion(ctx context.Context, customerID string) (*model.Promotion, error) {
	args := m.Called(ctx, customerID)
	p, _ := args.Get(0).(*model.Promotion)
	return p, args.Error(1)
}

func (m *mockPromotionService) DiscountPercent(ctx context.Context, customerID string) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}

type mockDirectoryService struct{ mock.Mock }

func (m *mockDirectoryService) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	args := m.Called(ctx, role)
	u, _ := args.Get(0).([]model.User)
	return u, args.Error(1)
}

func (m *mockDirectoryService) GetByRole(ctx context.Context, id, role string) (*model.User, error) {
	args := m.Called(ctx, id, role)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}
