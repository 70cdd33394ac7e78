// Package pricing holds the order money math. The same functions back the
// client cart preview and the server-side order creation, so both always
// agree; server output is authoritative either way.
package pricing

import (
	"math"

	"github.com/bellacucina/api/models"
)

// TaxRate is the flat 10% tax applied to every order.
const TaxRate = 0.10

// Round2 rounds half-up to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Subtotal sums price*quantity over the line items. No rounding is applied
// here; rounding happens once at the tax/total stage.
func Subtotal(items []models.OrderItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

func Tax(subtotal float64) float64 {
	return Round2(subtotal * TaxRate)
}

func Total(subtotal, tax float64) float64 {
	return Round2(subtotal + tax)
}
