package handler

import (
	"errors"
	"net/http"
	"testing"

	"agrisetu/internal/model"
	"agrisetu/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDirectoryHandler_Farmers(t *testing.T) {
	ts := newTestServer(t)
	farmer := &model.User{ID: farmerID, Name: "Ravi", Email: "ravi@farm.in", Role: model.RoleFarmer}
	ts.directory.On("ListByRole", mock.Anything, model.RoleFarmer).Return([]model.User{*farmer}, nil).Once()
	ts.directory.On("GetByRole", mock.Anything, farmerID, model.RoleFarmer).Return(farmer, nil).Twice()
	ts.directory.On("GetByRole", mock.Anything, customerID, model.RoleFarmer).Return(nil, service.ErrFarmerNotFound).Once()
	ts.products.On("ListFarmerProducts", mock.Anything, farmerID).Return([]model.Product{*sampleProduct()}, nil).Once()

	w := ts.do(t, http.MethodGet, "/api/farmers", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.User](t, w), 1)

	w = ts.do(t, http.MethodGet, "/api/farmers/"+farmerID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ravi", decode[model.User](t, w).Name)

	w = ts.do(t, http.MethodGet, "/api/farmers/"+farmerID+"/products", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]model.Product](t, w), 1)

	w = ts.do(t, http.MethodGet, "/api/farmers/"+customerID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, service.ErrFarmerNotFound.Error(), messageOf(t, w))
}

func TestDirectoryHandler_FarmerProductsUnknownFarmer(t *testing.T) {
	ts := newTestServer(t)
	ts.directory.On("GetByRole", mock.Anything, "nope", model.RoleFarmer).Return(nil, service.ErrFarmerNotFound).Once()

	w := ts.do(t, http.MethodGet, "/api/farmers/nope/products", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	ts.products.AssertNotCalled(t, "ListFarmerProducts", mock.Anything, mock.Anything)
}

func TestDirectoryHandler_Customers(t *testing.T) {
	ts := newTestServer(t)
	ts.directory.On("ListByRole", mock.Anything, model.RoleCustomer).Return(nil, errors.New("db down")).Once()
	ts.directory.On("GetByRole", mock.Anything, customerID, model.RoleCustomer).
		Return(&model.User{ID: customerID, Role: model.RoleCustomer}, nil).Once()

	w := ts.do(t, http.MethodGet, "/api/customers", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server error", messageOf(t, w))

	w = ts.do(t, http.MethodGet, "/api/customers/"+customerID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
