package city

import (
	"math"

	"emoji-city/internal/entity"
)

// Rules are the fixed price and refund rules applied by the controller.
type Rules struct {
	Prices     map[entity.Kind]int
	RefundRate float64
}

// DefaultRules uses the catalog prices and a 50% refund.
func DefaultRules() Rules {
	prices := make(map[entity.Kind]int, len(entity.Kinds()))
	for _, k := range entity.Kinds() {
		prices[k] = k.Def().Price
	}
	return Rules{Prices: prices, RefundRate: 0.5}
}

// Price is the cost of adding one entity of kind k.
func (r Rules) Price(k entity.Kind) int { return r.Prices[k] }

// Refund is floor(price * rate), credited when an entity of kind k goes back
// to its pool.
func (r Rules) Refund(k entity.Kind) int {
	return int(math.Floor(float64(r.Price(k)) * r.RefundRate))
}
