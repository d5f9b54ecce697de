package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MK-1512/gadget-galaxy/models"
	"github.com/MK-1512/gadget-galaxy/storage"
)

// CheckoutRequest is the mock checkout form. Card fields are only
// validated when PaymentMethod is "card".
type CheckoutRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	PostalCode    string `json:"postalCode" validate:"required,len=6,numeric"`
	Country       string `json:"country" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=card cod"`
	CardName      string `json:"cardName"`
	CardNumber    string `json:"cardNumber"`
	Expiry        string `json:"expiry"`
	CVV           string `json:"cvv"`
	SaveCard      bool   `json:"saveCard"`
}

// CheckoutService turns the current cart into a mock order: validate the
// form, append the order to the persisted list, optionally save a masked
// card to the profile, then clear the cart. No payment moves.
type CheckoutService struct {
	cart     *CartService
	auth     *AuthService
	store    storage.Store
	validate *validator.Validate
	log      *zap.Logger
}

func NewCheckoutService(cart *CartService, auth *AuthService, store storage.Store, log *zap.Logger) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		auth:     auth,
		store:    store,
		validate: validator.New(),
		log:      log,
	}
}

// PlaceOrder validates the request and completes the mock checkout.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req CheckoutRequest) (*models.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.PaymentMethod == "card" {
		if err := validateCard(req); err != nil {
			return nil, err
		}
	}

	cart := s.cart.State()
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:            uuid.NewString(),
		Items:         cart.Items,
		TotalQuantity: cart.TotalQuantity,
		TotalAmount:   cart.TotalAmount,
		Customer: models.ShippingInfo{
			Name:       req.Name,
			Address:    req.Address,
			City:       req.City,
			PostalCode: req.PostalCode,
			Country:    req.Country,
		},
		Email:         req.Email,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}
	s.appendOrder(ctx, order)

	if req.PaymentMethod == "card" && req.SaveCard {
		digits := cardDigits(req.CardNumber)
		update := ProfileUpdate{PaymentInfo: &models.PaymentInfo{
			CardName:         req.CardName,
			Expiry:           req.Expiry,
			CardNumberMasked: "**** **** **** " + digits[len(digits)-4:],
		}}
		if _, err := s.auth.UpdateProfile(ctx, update); err != nil && !errors.Is(err, ErrNotAuthenticated) {
			s.log.Warn("could not save card to profile", zap.Error(err))
		}
	}

	s.cart.Clear(ctx)
	s.log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.Float64("amount", order.TotalAmount),
	)
	return order, nil
}

// Orders returns the persisted order history, oldest first.
func (s *CheckoutService) Orders(ctx context.Context) []models.Order {
	data, err := s.store.Get(ctx, storage.KeyOrders)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("could not read persisted orders", zap.Error(err))
		}
		return nil
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		s.log.Warn("could not parse persisted orders", zap.Error(err))
		return nil
	}
	return orders
}

func (s *CheckoutService) appendOrder(ctx context.Context, order *models.Order) {
	orders := append(s.Orders(ctx), *order)
	data, err := json.Marshal(orders)
	if err == nil {
		err = s.store.Set(ctx, storage.KeyOrders, data)
	}
	if err != nil {
		s.log.Error("failed to persist order", zap.String("order_id", order.ID), zap.Error(err))
	}
}

func validateCard(req CheckoutRequest) error {
	if req.CardName == "" {
		return errors.New("name on card is required")
	}
	digits := cardDigits(req.CardNumber)
	if len(digits) != 16 {
		return errors.New("card number must be 16 digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return errors.New("card number must be 16 digits")
		}
	}
	if req.Expiry == "" {
		return errors.New("expiry is required")
	}
	if len(req.CVV) < 3 || len(req.CVV) > 4 {
		return errors.New("cvv must be 3 or 4 digits")
	}
	return nil
}

func cardDigits(cardNumber string) string {
	return strings.ReplaceAll(cardNumber, " ", "")
}
