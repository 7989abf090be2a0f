package handlers

import (
	"errors"
	"net/http"

	"github.com/crazebite/crazebite-api/internal/api/middleware"
	appErrors "github.com/crazebite/crazebite-api/internal/errors"
	"github.com/crazebite/crazebite-api/internal/models"
	service "github.com/crazebite/crazebite-api/internal/services"
	"github.com/crazebite/crazebite-api/internal/utils"
	"github.com/crazebite/crazebite-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), session)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !h.parseAndValidate(w, r, &req) {
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), session, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		logger := middleware.LoggerFromContext(r.Context())
		logger.Info("Item added to cart", "cart_id", cart.ID, "food_id", req.FoodID)

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) IncrementItem() http.HandlerFunc {
	return h.quantityOp(func(r *http.Request, session string, foodID int64) (*models.Cart, error) {
		return h.cartService.IncrementItem(r.Context(), session, foodID)
	})
}

func (h *CartHandler) DecrementItem() http.HandlerFunc {
	return h.quantityOp(func(r *http.Request, session string, foodID int64) (*models.Cart, error) {
		return h.cartService.DecrementItem(r.Context(), session, foodID)
	})
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return h.quantityOp(func(r *http.Request, session string, foodID int64) (*models.Cart, error) {
		return h.cartService.RemoveItem(r.Context(), session, foodID)
	})
}

func (h *CartHandler) ApplyCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		// the code may be empty; that simply resets the discount
		var req models.ApplyCouponRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError("Invalid request body").WithError(err))
			return
		}

		cart, err := h.cartService.ApplyCoupon(r.Context(), session, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		logger := middleware.LoggerFromContext(r.Context())
		logger.Info("Coupon applied", "cart_id", cart.ID, "code", req.Code, "discount", cart.Discount)

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) UpdateAddress() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.UpdateAddressRequest
		if !h.parseAndValidate(w, r, &req) {
			return
		}

		cart, err := h.cartService.SetDeliveryAddress(r.Context(), session, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		summary, err := h.cartService.Summary(r.Context(), session)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

func (h *CartHandler) quantityOp(op func(r *http.Request, session string, foodID int64) (*models.Cart, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		session, ok := sessionID(w, r)
		if !ok {
			return
		}

		foodID, ok := lineItemID(w, r)
		if !ok {
			return
		}

		cart, err := op(r, session, foodID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) parseAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := utils.DecodeJSONBody(r, dest); err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid request body").WithError(err))
		return false
	}

	if err := utils.ValidateStruct(h.validator, dest); err != nil {

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)
			return false
		}

		response.Error(w, err)
		return false
	}

	return true
}
