package entity

import "time"

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// POSTransaction is a point-of-sale sale header. Amounts are minor units;
// payment status only moves pending->paid or pending->cancelled.
type POSTransaction struct {
	ID                string        `db:"id" json:"id"`
	TransactionNumber string        `db:"transaction_number" json:"transactionNumber"`
	Subtotal          int64         `db:"subtotal" json:"subtotal"`
	Tax               int64         `db:"tax" json:"tax"`
	Total             int64         `db:"total" json:"total"`
	PaymentMethod     PaymentMethod `db:"payment_method" json:"paymentMethod"`
	PaymentStatus     PaymentStatus `db:"payment_status" json:"paymentStatus"`
	PaidAt            *time.Time    `db:"paid_at" json:"paidAt,omitempty"`
	UserID            *string       `db:"user_id" json:"userId,omitempty"`
	CreatedAt         time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time     `db:"updated_at" json:"updatedAt"`

	Items []POSTransactionItem `json:"items"`
}

// POSTransactionItem snapshots the product at sale time.
type POSTransactionItem struct {
	ID               int64   `db:"id" json:"-"`
	POSTransactionID string  `db:"pos_transaction_id" json:"-"`
	ProductID        string  `db:"product_id" json:"productId"`
	Name             string  `db:"name" json:"name"`
	Price            int64   `db:"price" json:"price"`
	Quantity         int     `db:"quantity" json:"quantity"`
	Variant          *string `db:"variant" json:"variant,omitempty"`
	LineTotal        int64   `db:"line_total" json:"lineTotal"`
}
