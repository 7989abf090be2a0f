package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/crazebite/crazebite-api/internal/api/handlers"
	appErrors "github.com/crazebite/crazebite-api/internal/errors"
	"github.com/crazebite/crazebite-api/internal/models"
	"github.com/crazebite/crazebite-api/internal/services/mocks"
	"github.com/crazebite/crazebite-api/internal/utils/response"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSession = "session-1"

func setupCartTest() (*mocks.CartService, *handlers.CartHandler) {
	mockCartService := new(mocks.CartService)
	cartHandler := handlers.NewCartHandler(mockCartService)

	return mockCartService, cartHandler
}

func sessionRequest(method, url string, body []byte) *http.Request {
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", testSession)

	return req
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) *response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))

	return &resp
}

func TestGetCartHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := sessionRequest("GET", "/api/v1/carts", nil)
		recorder := httptest.NewRecorder()

		mockCart := models.NewCart(testSession)
		mockCartService.On("GetCart", mock.Anything, testSession).Return(mockCart, nil).Once()

		// Act
		cartHandler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Data)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Missing session header", func(t *testing.T) {
		// Arrange
		_, cartHandler := setupCartTest()
		req := httptest.NewRequest("GET", "/api/v1/carts", nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error.Message, "Session ID is required")
	})

	t.Run("Failure - Storage error", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := sessionRequest("GET", "/api/v1/carts", nil)
		recorder := httptest.NewRecorder()

		mockCartService.On("GetCart", mock.Anything, testSession).
			Return(nil, appErrors.StorageError("Failed to load cart")).Once()

		// Act
		cartHandler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeStorage, resp.Error.Code)
		mockCartService.AssertExpectations(t)
	})
}

func TestAddItemHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		body, _ := json.Marshal(models.AddItemRequest{FoodID: 1})
		req := sessionRequest("POST", "/api/v1/carts/items", body)
		recorder := httptest.NewRecorder()

		mockCart := models.NewCart(testSession)
		mockCart.AddOrIncrement(models.FoodItem{ID: 1, Name: "Cheese Burger", Price: decimal.RequireFromString("8.99")})
		mockCartService.On("AddItem", mock.Anything, testSession, mock.AnythingOfType("*models.AddItemRequest")).
			Return(mockCart, nil).Once()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Validation error on missing food id", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := sessionRequest("POST", "/api/v1/carts/items", []byte(`{}`))
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		mockCartService.AssertNotCalled(t, "AddItem")
	})

	t.Run("Failure - Empty body", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := sessionRequest("POST", "/api/v1/carts/items", nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCartService.AssertNotCalled(t, "AddItem")
	})

	t.Run("Failure - Unknown food item", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		body, _ := json.Marshal(models.AddItemRequest{FoodID: 999})
		req := sessionRequest("POST", "/api/v1/carts/items", body)
		recorder := httptest.NewRecorder()

		mockCartService.On("AddItem", mock.Anything, testSession, mock.AnythingOfType("*models.AddItemRequest")).
			Return(nil, appErrors.NotFoundError("Food item not found")).Once()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
		mockCartService.AssertExpectations(t)
	})
}

func TestQuantityHandlers(t *testing.T) {
	t.Run("Success - Decrement passes the path id through", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := sessionRequest("POST", "/api/v1/carts/items/3/decrement", nil)
		req.SetPathValue("id", "3")
		recorder := httptest.NewRecorder()

		mockCart := models.NewCart(testSession)
		mockCartService.On("DecrementItem", mock.Anything, testSession, int64(3)).Return(mockCart, nil).Once()

		// Act
		cartHandler.DecrementItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockCartService.AssertExpectations(t)
	})

	t.Run("Failure - Non-numeric path id", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := sessionRequest("POST", "/api/v1/carts/items/abc/increment", nil)
		req.SetPathValue("id", "abc")
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.IncrementItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCartService.AssertNotCalled(t, "IncrementItem")
	})

	t.Run("Success - Remove", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := sessionRequest("DELETE", "/api/v1/carts/items/2", nil)
		req.SetPathValue("id", "2")
		recorder := httptest.NewRecorder()

		mockCart := models.NewCart(testSession)
		mockCartService.On("RemoveItem", mock.Anything, testSession, int64(2)).Return(mockCart, nil).Once()

		// Act
		cartHandler.RemoveItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockCartService.AssertExpectations(t)
	})
}

func TestApplyCouponHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		body, _ := json.Marshal(models.ApplyCouponRequest{Code: "CRAZE10"})
		req := sessionRequest("POST", "/api/v1/carts/coupon", body)
		recorder := httptest.NewRecorder()

		mockCart := models.NewCart(testSession)
		mockCart.CouponCode = "CRAZE10"
		mockCart.Discount = decimal.NewFromInt(10)
		mockCartService.On("ApplyCoupon", mock.Anything, testSession, mock.AnythingOfType("*models.ApplyCouponRequest")).
			Return(mockCart, nil).Once()

		// Act
		cartHandler.ApplyCoupon()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
		mockCartService.AssertExpectations(t)
	})
}

func TestSummaryHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := sessionRequest("GET", "/api/v1/carts/summary", nil)
		recorder := httptest.NewRecorder()

		summary := &models.PricingSummary{
			Subtotal:    decimal.RequireFromString("26.48"),
			Discount:    decimal.Zero,
			DeliveryFee: decimal.RequireFromString("2.99"),
			Total:       decimal.RequireFromString("29.47"),
		}
		mockCartService.On("Summary", mock.Anything, testSession).Return(summary, nil).Once()

		// Act
		cartHandler.Summary()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)
		mockCartService.AssertExpectations(t)
	})
}

func TestUpdateAddressHandler(t *testing.T) {
	t.Run("Failure - Missing address", func(t *testing.T) {
		// Arrange
		mockCartService, cartHandler := setupCartTest()
		req := sessionRequest("PUT", "/api/v1/carts/address", []byte(`{}`))
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.UpdateAddress()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockCartService.AssertNotCalled(t, "SetDeliveryAddress")
	})
}
