package domain

import "github.com/shopspring/decimal"

// LineItem is one (product, size, quantity) entry in an owner's cart.
// ProductRef is intentionally not a foreign key: a deleted product leaves
// the row orphaned and the assembler decides what to do with it.
type LineItem struct {
	ID         int64  `json:"id"`
	OwnerKey   int64  `json:"-"`
	ProductRef int64  `json:"productId"`
	Size       string `json:"size"`
	Quantity   int    `json:"quantity"`
}

// AssembledCartRow is a LineItem joined with live catalog data. It is
// rebuilt on every read and never persisted, so a catalog price change
// shows up immediately.
type AssembledCartRow struct {
	LineItem
	ProductName string `json:"productName"`
	UnitPrice   int64  `json:"unitPrice"`
	ImageURL    string `json:"imageUrl"`
}

// OrderTotals is derived from the assembled rows at the moment of viewing
// or checkout. Values stay exact; rounding happens at presentation time.
type OrderTotals struct {
	Subtotal   decimal.Decimal
	Shipping   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}
