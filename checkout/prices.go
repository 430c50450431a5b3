package checkout

import (
	"github.com/shopspring/decimal"

	"go-storefront/session"
)

const (
	taxRate           = 0.15
	shippingFlat      = 15
	freeShippingAbove = 200
)

// Prices is the order cost breakdown shown at Place Order
type Prices struct {
	Items    float64
	Shipping float64
	Tax      float64
	Total    float64
}

// Round2 rounds to the cent, half away from zero, e.g. 123.455 to 123.46
func Round2(x float64) float64 {
	f, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return f
}

// ComputePrices derives the cost breakdown from the cart items. Rounding is
// order-sensitive: the items subtotal is rounded first and the shipping and
// tax rules apply to the rounded subtotal.
func ComputePrices(items []session.CartItem) Prices {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}
	itemsPrice, _ := sum.Round(2).Float64()

	shipping := float64(shippingFlat)
	if itemsPrice > freeShippingAbove {
		shipping = 0
	}

	tax, _ := decimal.NewFromFloat(itemsPrice).
		Mul(decimal.NewFromFloat(taxRate)).
		Round(2).Float64()

	return Prices{
		Items:    itemsPrice,
		Shipping: shipping,
		Tax:      tax,
		Total:    Round2(itemsPrice + shipping + tax),
	}
}
