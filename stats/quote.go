package stats

import "github.com/brunakoch/auto-estetica-agenda/models"

// QuoteTotals derives subtotal, discount and total from a quote's items.
// It shares the arithmetic with models.Quote.Recalculate so the two layers
// can never disagree.
func QuoteTotals(items []models.QuoteItem) (subtotal, discount, total float64) {
	q := models.Quote{Items: items}
	q.Recalculate()
	return q.Subtotal, q.Discount, q.Total
}

// ComputeQuoteTotal derives the payable total from a quote's items. An
// empty item list yields 0.
func ComputeQuoteTotal(items []models.QuoteItem) float64 {
	_, _, total := QuoteTotals(items)
	return total
}
