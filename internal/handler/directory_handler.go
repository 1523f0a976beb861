package handler

import (
	"net/http"

	"agrisetu/internal/model"
	"agrisetu/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the public farmer and customer directories
type DirectoryHandler struct {
	directory service.DirectoryService
	products  service.ProductService
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(directory service.DirectoryService, products service.ProductService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, products: products}
}

func (h *DirectoryHandler) list(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := h.directory.ListByRole(c.Request.Context(), role)
		if err != nil {
			respondError(c, err, "listing "+role+"s")
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func (h *DirectoryHandler) get(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.directory.GetByRole(c.Request.Context(), c.Param("id"), role)
		if err != nil {
			respondError(c, err, "getting "+role)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func (h *DirectoryHandler) FarmerProducts(c *gin.Context) {
	farmer, err := h.directory.GetByRole(c.Request.Context(), c.Param("id"), model.RoleFarmer)
	if err != nil {
		respondError(c, err, "getting farmer")
		return
	}

	products, err := h.products.ListFarmerProducts(c.Request.Context(), farmer.ID)
	if err != nil {
		respondError(c, err, "listing farmer products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// RegisterDirectoryRoutes registers the public /farmers and /customers routes
func (h *DirectoryHandler) RegisterDirectoryRoutes(rg *gin.RouterGroup) {
	farmers := rg.Group("/farmers")
	{
		farmers.GET("", h.list(model.RoleFarmer))
		farmers.GET("/:id", h.get(model.RoleFarmer))
		farmers.GET("/:id/products", h.FarmerProducts)
	}

	customers := rg.Group("/customers")
	{
		customers.GET("", h.list(model.RoleCustomer))
		customers.GET("/:id", h.get(model.RoleCustomer))
	}
}
