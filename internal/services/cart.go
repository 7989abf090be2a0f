package service

import (
	"context"
	"errors"
	"time"

	"github.com/crazebite/crazebite-api/internal/coupon"
	appErrors "github.com/crazebite/crazebite-api/internal/errors"
	"github.com/crazebite/crazebite-api/internal/models"
	"github.com/crazebite/crazebite-api/internal/pricing"
	repository "github.com/crazebite/crazebite-api/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*models.Cart, error)
	AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error)
	IncrementItem(ctx context.Context, sessionID string, foodID int64) (*models.Cart, error)
	DecrementItem(ctx context.Context, sessionID string, foodID int64) (*models.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, foodID int64) (*models.Cart, error)
	ApplyCoupon(ctx context.Context, sessionID string, req *models.ApplyCouponRequest) (*models.Cart, error)
	SetDeliveryAddress(ctx context.Context, sessionID string, req *models.UpdateAddressRequest) (*models.Cart, error)
	Summary(ctx context.Context, sessionID string) (*models.PricingSummary, error)
}

type cartService struct {
	repo      repository.CartRepository
	catalog   CatalogService
	coupons   *coupon.Table
	pricing   *pricing.Engine
	sanitizer *bluemonday.Policy
}

func NewCartService(repo repository.CartRepository, catalog CatalogService, coupons *coupon.Table, engine *pricing.Engine) CartService {
	return &cartService{
		repo:      repo,
		catalog:   catalog,
		coupons:   coupons,
		pricing:   engine,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// GetCart returns the session's cart, creating an empty one on first use.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {

	cart, err := s.repo.GetCartBySessionID(ctx, sessionID)
	if err == nil {
		return cart, nil
	}

	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, appErrors.StorageError("Failed to load cart").WithError(err)
	}

	cart = models.NewCart(sessionID)

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return nil, appErrors.StorageError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {

	food, err := s.catalog.GetFoodItem(ctx, req.FoodID)
	if err != nil {
		return nil, err
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.AddOrIncrement(*food)

	return s.save(ctx, cart)
}

func (s *cartService) IncrementItem(ctx context.Context, sessionID string, foodID int64) (*models.Cart, error) {

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// missing line items are a benign no-op
	if !cart.Increment(foodID) {
		return cart, nil
	}

	return s.save(ctx, cart)
}

func (s *cartService) DecrementItem(ctx context.Context, sessionID string, foodID int64) (*models.Cart, error) {

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// quantity 1 is the floor; decrementing there changes nothing
	if !cart.Decrement(foodID) {
		return cart, nil
	}

	return s.save(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, foodID int64) (*models.Cart, error) {

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !cart.Remove(foodID) {
		return cart, nil
	}

	return s.save(ctx, cart)
}

// ApplyCoupon evaluates the code against the coupon table and fixes the
// resulting discount on the cart. An unrecognized code resets the discount
// to zero rather than failing.
func (s *cartService) ApplyCoupon(ctx context.Context, sessionID string, req *models.ApplyCouponRequest) (*models.Cart, error) {

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.CouponCode = req.Code
	cart.Discount = s.coupons.Evaluate(req.Code)

	return s.save(ctx, cart)
}

func (s *cartService) SetDeliveryAddress(ctx context.Context, sessionID string, req *models.UpdateAddressRequest) (*models.Cart, error) {

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.DeliveryAddress = s.sanitizer.Sanitize(req.Address)

	return s.save(ctx, cart)
}

func (s *cartService) Summary(ctx context.Context, sessionID string) (*models.PricingSummary, error) {

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	summary := s.pricing.Summarize(cart)

	return &summary, nil
}

func (s *cartService) save(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	cart.UpdatedAt = time.Now()

	if err := s.repo.SaveCart(ctx, cart); err != nil {
		return nil, appErrors.StorageError("Failed to update cart").WithError(err)
	}

	return cart, nil
}
