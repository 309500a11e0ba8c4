// Package pricing computes registration cost breakdowns and validates
// discount codes against a fixed table. Everything here is pure: the same
// inputs always produce the same breakdown.
package pricing

import (
	"strings"

	"pulse-events/backend/internal/domain"
)

// ErrInvalidCode is returned when a non-empty code is not in the table.
var ErrInvalidCode = domain.ErrValidation("invalid discount code")

// MaxQuantity caps how many tickets a single registration may hold.
const MaxQuantity = 10

// codes is the static discount table. Keys are uppercase; lookups normalize
// input before matching. Not editable at runtime.
var codes = map[string]domain.DiscountCode{
	"SAVE10":     {Code: "SAVE10", Type: domain.DiscountPercentage, Discount: 10},
	"SAVE20":     {Code: "SAVE20", Type: domain.DiscountPercentage, Discount: 20},
	"WELCOME":    {Code: "WELCOME", Type: domain.DiscountPercentage, Discount: 15},
	"EARLYBIRD":  {Code: "EARLYBIRD", Type: domain.DiscountPercentage, Discount: 25},
	"FREETICKET": {Code: "FREETICKET", Type: domain.DiscountFixed, Discount: 5},
	"STUDENT":    {Code: "STUDENT", Type: domain.DiscountPercentage, Discount: 10},
}

// ApplyCode resolves a user-supplied discount code. Input is trimmed and
// uppercased before lookup. An empty (or all-whitespace) input means "no
// discount" and returns (nil, nil); an unknown code returns ErrInvalidCode.
func ApplyCode(input string) (*domain.DiscountCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	if normalized == "" {
		return nil, nil
	}
	code, ok := codes[normalized]
	if !ok {
		return nil, ErrInvalidCode
	}
	return &code, nil
}

// Breakdown computes the price summary for unitPrice, quantity and an
// optional discount. Inputs are expected pre-validated by the form layer but
// are clamped defensively: quantity into [1, MaxQuantity], negative price to
// 0. Percentage discounts apply to the subtotal; fixed discounts are
// per-ticket, capped so the discount never exceeds the subtotal. The total
// never goes negative. A price of 0 is a valid free event.
func Breakdown(unitPrice float64, quantity int, discount *domain.DiscountCode) domain.PriceBreakdown {
	if unitPrice < 0 {
		unitPrice = 0
	}
	if quantity < 1 {
		quantity = 1
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}

	subtotal := unitPrice * float64(quantity)

	var discountAmount float64
	if discount != nil {
		switch discount.Type {
		case domain.DiscountPercentage:
			discountAmount = subtotal * discount.Discount / 100
		case domain.DiscountFixed:
			discountAmount = discount.Discount * float64(quantity)
			if discountAmount > subtotal {
				discountAmount = subtotal
			}
		}
	}

	total := subtotal - discountAmount
	if total < 0 {
		total = 0
	}

	return domain.PriceBreakdown{
		PricePerTicket: unitPrice,
		Quantity:       quantity,
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		Total:          total,
	}
}
