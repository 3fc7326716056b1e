package store

import "ny11/wellness-app/internal/domain"

// AddToCart increments the quantity of an item already in the cart, or inserts
// it with quantity 1 after looking it up in the catalog. Unknown ids return false.
func (s *Store) AddToCart(itemID string) bool {
	return s.mutate(func() bool {
		for i := range s.cart {
			if s.cart[i].ID == itemID {
				s.cart[i].Quantity++
				return true
			}
		}
		item, ok := s.catalog.MarketItem(itemID)
		if !ok {
			return false
		}
		s.cart = append(s.cart, domain.CartItem{MarketItem: item, Quantity: 1})
		return true
	})
}

// RemoveFromCart drops the entry for itemID. Returns false if it was not in the cart.
func (s *Store) RemoveFromCart(itemID string) bool {
	return s.mutate(func() bool {
		for i := range s.cart {
			if s.cart[i].ID == itemID {
				s.cart = append(s.cart[:i], s.cart[i+1:]...)
				return true
			}
		}
		return false
	})
}

func (s *Store) ClearCart() {
	s.mutate(func() bool {
		s.cart = []domain.CartItem{}
		return true
	})
}

// Cart returns a copy of the cart entries.
func (s *Store) Cart() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem{}, s.cart...)
}

// TakeCart empties the cart and returns what it held, in one step.
func (s *Store) TakeCart() []domain.CartItem {
	var taken []domain.CartItem
	s.mutate(func() bool {
		taken = s.cart
		s.cart = []domain.CartItem{}
		return len(taken) > 0
	})
	return taken
}
