package domain

// ItemCategory groups market items.
type ItemCategory string

const (
	CategoryMeal  ItemCategory = "meal"
	CategoryDrink ItemCategory = "drink"
)

// MarketItem is a catalog entry sold in the market.
type MarketItem struct {
	ID          string       `json:"id" bson:"_id"`
	Name        string       `json:"name" bson:"name"`
	Description string       `json:"description" bson:"description"`
	Price       float64      `json:"price" bson:"price"`
	Image       string       `json:"image" bson:"image"`
	Category    ItemCategory `json:"category" bson:"category"`
}

// CartItem is a market item with a quantity. A cart holds at most one entry per item id.
type CartItem struct {
	MarketItem
	Quantity int `json:"quantity"`
}

func (c CartItem) Subtotal() float64 {
	return c.Price * float64(c.Quantity)
}

// CartTotal sums the subtotals of all entries.
func CartTotal(items []CartItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}
