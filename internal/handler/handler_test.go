package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"agrisetu/internal/middleware"
	"agrisetu/internal/model"
	"agrisetu/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	customerID = "0b4c8f1e-5d2a-4e7b-8c3f-9a6d1e2b3c4d"
	farmerID   = "7e1d2c3b-4a5f-4b6e-9d8c-1f2e3d4c5b6a"
	productID  = "c3a1b2d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
)

type testServer struct {
	router     *gin.Engine
	jwtUtil    *utils.JWTUtil
	auth       *mockAuthService
	products   *mockProductService
	carts      *mockCartService
	promotions *mockPromotionService
	directory  *mockDirectoryService
}

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires every handler onto /api the same way cmd/server does, with mock services
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		router:     gin.New(),
		jwtUtil:    utils.NewJWTUtil("handler-test-secret", 1),
		auth:       new(mockAuthService),
		products:   new(mockProductService),
		carts:      new(mockCartService),
		promotions: new(mockPromotionService),
		directory:  new(mockDirectoryService),
	}
	authMW := middleware.JWTAuthMiddleware(ts.jwtUtil)

	api := ts.router.Group("/api")
	NewAuthHandler(ts.auth).RegisterAuthRoutes(api, middleware.RateLimitMiddleware(nil, "auth"))
	NewProductHandler(ts.products).RegisterProductRoutes(api, authMW, middleware.FarmerMiddleware())
	NewCartHandler(ts.carts).RegisterCartRoutes(api, authMW, middleware.CustomerMiddleware())
	NewPromotionHandler(ts.promotions).RegisterPromotionRoutes(api, authMW, middleware.CustomerMiddleware())
	NewDirectoryHandler(ts.directory, ts.products).RegisterDirectoryRoutes(api)

	t.Cleanup(func() {
		ts.auth.AssertExpectations(t)
		ts.products.AssertExpectations(t)
		ts.carts.AssertExpectations(t)
		ts.promotions.AssertExpectations(t)
		ts.directory.AssertExpectations(t)
	})
	return ts
}

func (ts *testServer) token(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := ts.jwtUtil.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// do sends a request; body is JSON-encoded unless it is already a string
func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(middleware.TokenHeader, token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	return decode[map[string]string](t, w)["message"]
}

func sampleProduct() *model.Product {
	return &model.Product{
		ID:       productID,
		Farmer:   model.FarmerRef{ID: farmerID, Name: "Ravi", Email: "ravi@farm.in"},
		Name:     "Tomato",
		Category: model.CategoryVegetable,
		Price:    40,
		Unit:     "kg",
		Quantity: 10,
	}
}
