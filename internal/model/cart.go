package model

import "github.com/shopspring/decimal"

// CartSnapshot is the server-side cart at checkout entry. It is fetched fresh
// every time and never cached across requests.
type CartSnapshot struct {
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type CartLine struct {
	ID       int     `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ShippingInput is the form the user submits to move a loaded cart towards an
// order. Phone and address are required, notes are free text.
type ShippingInput struct {
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shipping_address"`
	Notes           string `json:"notes"`
}
