package handler

import (
	"errors"
	"log"
	"net/http"

	"agrisetu/internal/middleware"
	"agrisetu/internal/service"

	"github.com/gin-gonic/gin"
)

var errNoAuthUser = errors.New("user ID not found in context")

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCartNotFound),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrFarmerNotFound),
		errors.Is(err, service.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrUserAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrCartConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"message": ...}. Unexpected errors are logged and hidden from the client.
func respondError(c *gin.Context, err error, action string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("ERROR: %s: %v", action, err)
		c.JSON(status, gin.H{"message": "Server error"})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
}

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.AuthUserKey)
	if userID == "" {
		return "", errNoAuthUser
	}
	return userID, nil
}

// authUserID writes a 401 and returns false when the request carries no authenticated user
func authUserID(c *gin.Context) (string, bool) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
		return "", false
	}
	return userID, true
}
