package model

import (
	"github.com/shopspring/decimal"
)

// Order is the wire shape returned by the shop backend. The three status
// fields and the two track fields are pointers because the backend versions
// differ: a missing field and an empty string are not the same thing when
// picking which vocabulary to trust.
type Order struct {
	ID                        int             `json:"id"`
	OrderDate                 string          `json:"order_date"`
	Status                    *string         `json:"status"`
	PaymentStatus             *string         `json:"payment_status"`
	PaymentVerificationStatus *string         `json:"payment_verification_status"`
	TrackOrderStatus          *string         `json:"track_order_status"`
	TrackStatus               *string         `json:"track_status"`
	TotalAmount               decimal.Decimal `json:"total_amount"`
	ShippingAddress           string          `json:"shipping_address"`
	Items                     []OrderItem     `json:"items"`
}

type OrderItem struct {
	ProductName     string          `json:"product_name"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
	Quantity        int             `json:"quantity"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// OrderView is what the gateway serves: the backend order plus the
// normalized badge fields, so no consumer re-implements the substring rules.
type OrderView struct {
	Order
	Verification      string `json:"verification"`
	VerificationLabel string `json:"verification_label"`
	Track             string `json:"track"`
}

// TrackInfo is the coarse shipment-progress answer for a single order.
type TrackInfo struct {
	OrderID           int    `json:"order_id"`
	Verification      string `json:"verification"`
	VerificationLabel string `json:"verification_label"`
	Track             string `json:"track"`
}

// PlacedOrder is the immutable result of a successful order creation.
type PlacedOrder struct {
	ID          int             `json:"id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// PendingPayment is a placed order whose payment proof has not been uploaded
// yet. Rows are kept locally so the payment step can be re-entered by order id.
type PendingPayment struct {
	OrderID         int             `json:"order_id"`
	UserID          int             `json:"user_id"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ShippingPhone   string          `json:"shipping_phone"`
	ShippingAddress string          `json:"shipping_address"`
	Notes           string          `json:"notes"`
}
