package handler

import (
	"net/http"

	"agrisetu/internal/model"
	"agrisetu/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles product catalog requests
type ProductHandler struct {
	service service.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err, "listing products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "getting product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) ListFarmerProducts(c *gin.Context) {
	products, err := h.service.ListFarmerProducts(c.Request.Context(), c.Param("farmerId"))
	if err != nil {
		respondError(c, err, "listing farmer products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	farmerID, ok := authUserID(c)
	if !ok {
		return
	}

	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), farmerID, req)
	if err != nil {
		respondError(c, err, "creating product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	farmerID, ok := authUserID(c)
	if !ok {
		return
	}

	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), c.Param("id"), farmerID, req)
	if err != nil {
		respondError(c, err, "updating product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	farmerID, ok := authUserID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), c.Param("id"), farmerID); err != nil {
		respondError(c, err, "deleting product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}

// RegisterProductRoutes registers product routes. Writes require an authenticated farmer.
func (h *ProductHandler) RegisterProductRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, farmerMW gin.HandlerFunc) {
	products := rg.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/farmer/:farmerId", h.ListFarmerProducts)
		products.GET("/:id", h.GetProduct)
	}

	farmerRoutes := rg.Group("/products")
	farmerRoutes.Use(authMW, farmerMW)
	{
		farmerRoutes.POST("", h.CreateProduct)
		farmerRoutes.PUT("/:id", h.UpdateProduct)
		farmerRoutes.DELETE("/:id", h.DeleteProduct)
	}
}
