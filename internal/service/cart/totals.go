package cart

import (
	"kabirclub/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	shippingFlat     = decimal.NewFromInt(120)
	freeShippingFrom = decimal.NewFromInt(1500)
	taxRate          = decimal.RequireFromString("0.14")
)

// ComputeTotals derives order totals from assembled rows. Pure: it never
// touches storage and keeps values exact; callers round for display only.
//
// Shipping is a flat 120 for subtotals strictly between 0 and 1500; an
// empty cart and a large cart both ship free by the same rule.
func ComputeTotals(rows []domain.AssembledCartRow) domain.OrderTotals {
	subtotal := decimal.Zero
	for _, row := range rows {
		line := decimal.NewFromInt(row.UnitPrice).Mul(decimal.NewFromInt(int64(row.Quantity)))
		subtotal = subtotal.Add(line)
	}

	shipping := decimal.Zero
	if subtotal.IsPositive() && subtotal.LessThan(freeShippingFrom) {
		shipping = shippingFlat
	}

	tax := subtotal.Mul(taxRate)

	return domain.OrderTotals{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Tax:        tax,
		GrandTotal: subtotal.Add(shipping).Add(tax),
	}
}
