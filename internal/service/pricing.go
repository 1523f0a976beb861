package service

import (
	"agrisetu/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateTotal prices cart lines and applies a percentage discount.
// discountPercent is clamped to [0, 100]. Amounts are rounded to 2 decimal places.
func CalculateTotal(lines []model.CartLine, discountPercent int) model.Totals {
	if discountPercent < 0 {
		discountPercent = 0
	}
	if discountPercent > 100 {
		discountPercent = 100
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		price := decimal.NewFromFloat(line.Product.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	discount := subtotal.Mul(decimal.NewFromInt(int64(discountPercent))).Div(hundred).Round(2)
	total := subtotal.Sub(discount)

	return model.Totals{
		Subtotal: subtotal.Round(2).InexactFloat64(),
		Discount: discount.InexactFloat64(),
		Total:    total.Round(2).InexactFloat64(),
	}
}
