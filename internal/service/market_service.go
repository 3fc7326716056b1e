package service

import (
	"context"
	"errors"
	"log"

	"ny11/wellness-app/internal/catalog"
	"ny11/wellness-app/internal/domain"
	"ny11/wellness-app/internal/store"
)

// --- Error Definitions ---
var (
	ErrItemNotFound = errors.New("market item not found")
	ErrNotInCart    = errors.New("item is not in the cart")
	ErrCartEmpty    = errors.New("cart is empty")
)

const CheckoutToast = "Checkout successful!"

// Cart is the cart contents with its total.
type Cart struct {
	Items []domain.CartItem `json:"items"`
	Total float64           `json:"total"`
}

type MarketService interface {
	Items(ctx context.Context) []domain.MarketItem
	Banners(ctx context.Context) []catalog.Banner
	Cart(ctx context.Context) Cart
	AddToCart(ctx context.Context, itemID string) (Cart, error)
	RemoveFromCart(ctx context.Context, itemID string) (Cart, error)
	Checkout(ctx context.Context) (Cart, error)
}

type marketService struct {
	store   *store.Store
	catalog *catalog.Catalog
}

func NewMarketService(st *store.Store, cat *catalog.Catalog) MarketService {
	return &marketService{store: st, catalog: cat}
}

func (s *marketService) Items(ctx context.Context) []domain.MarketItem {
	return s.catalog.MarketItems()
}

func (s *marketService) Banners(ctx context.Context) []catalog.Banner {
	return s.catalog.Banners()
}

func (s *marketService) Cart(ctx context.Context) Cart {
	items := s.store.Cart()
	return Cart{Items: items, Total: domain.CartTotal(items)}
}

// AddToCart adds one unit of itemID and raises a confirmation toast.
func (s *marketService) AddToCart(ctx context.Context, itemID string) (Cart, error) {
	item, ok := s.catalog.MarketItem(itemID)
	if !ok || !s.store.AddToCart(itemID) {
		return Cart{}, ErrItemNotFound
	}
	s.store.ShowToast(item.Name+" added to cart!", domain.SeveritySuccess)
	return s.Cart(ctx), nil
}

func (s *marketService) RemoveFromCart(ctx context.Context, itemID string) (Cart, error) {
	if !s.store.RemoveFromCart(itemID) {
		return Cart{}, ErrNotInCart
	}
	return s.Cart(ctx), nil
}

// Checkout empties the cart and returns what was bought. No payment is taken.
func (s *marketService) Checkout(ctx context.Context) (Cart, error) {
	items := s.store.TakeCart()
	if len(items) == 0 {
		return Cart{}, ErrCartEmpty
	}
	bought := Cart{Items: items, Total: domain.CartTotal(items)}
	s.store.ShowToast(CheckoutToast, domain.SeveritySuccess)
	log.Printf("INFO: checkout of %d line(s), total %.2f", len(bought.Items), bought.Total)
	return bought, nil
}
