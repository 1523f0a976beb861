package service

import "errors"

var (
	ErrForbidden          = errors.New("not authorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrInsufficientStock  = errors.New("not enough stock")
	ErrProductNotFound    = errors.New("product not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrCartItemNotFound   = errors.New("item not found in cart")
	ErrCartConflict       = errors.New("cart was modified concurrently, please retry")
	ErrFarmerNotFound     = errors.New("farmer not found")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
