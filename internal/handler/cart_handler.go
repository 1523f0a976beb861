package handler

import (
	"net/http"

	"agrisetu/internal/model"
	"agrisetu/internal/service"

	"github.com/gin-gonic/gin"
)

// CartHandler handles the customer's shopping cart
type CartHandler struct {
	service service.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	customerID, ok := authUserID(c)
	if !ok {
		return
	}

	cart, err := h.service.GetCart(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err, "getting cart")
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) Summary(c *gin.Context) {
	customerID, ok := authUserID(c)
	if !ok {
		return
	}

	summary, err := h.service.Summary(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err, "pricing cart")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	customerID, ok := authUserID(c)
	if !ok {
		return
	}

	var req model.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cart, err := h.service.AddItem(c.Request.Context(), customerID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err, "adding cart item")
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	customerID, ok := authUserID(c)
	if !ok {
		return
	}

	var req model.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cart, err := h.service.UpdateItem(c.Request.Context(), customerID, c.Param("productId"), req.Quantity)
	if err != nil {
		respondError(c, err, "updating cart item")
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	customerID, ok := authUserID(c)
	if !ok {
		return
	}

	cart, err := h.service.RemoveItem(c.Request.Context(), customerID, c.Param("productId"))
	if err != nil {
		respondError(c, err, "removing cart item")
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	customerID, ok := authUserID(c)
	if !ok {
		return
	}

	cart, err := h.service.ClearCart(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err, "clearing cart")
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RegisterCartRoutes registers cart routes; all require an authenticated customer
func (h *CartHandler) RegisterCartRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, customerMW gin.HandlerFunc) {
	cart := rg.Group("/cart")
	cart.Use(authMW, customerMW)
	{
		cart.GET("", h.GetCart)
		cart.GET("/summary", h.Summary)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items", h.AddItem)
		cart.PUT("/items/:productId", h.UpdateItem)
		cart.DELETE("/items/:productId", h.RemoveItem)
	}
}
