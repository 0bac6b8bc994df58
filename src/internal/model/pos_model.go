package model

import "time"

type POSItemRequest struct {
	ProductID string  `json:"productId" validate:"required,max=100"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Variant   *string `json:"variant,omitempty" validate:"omitempty,max=100"`
}

type CreateSaleRequest struct {
	Items         []POSItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string           `json:"paymentMethod" validate:"required,oneof=cash transfer"`
	Tax           int64            `json:"tax" validate:"min=0"`
	UserID        *string          `json:"-"`
}

type SaleLookupRequest struct {
	TransactionID string `json:"-" validate:"required,max=100"`
}

type POSItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     int64   `json:"price"`
	Quantity  int     `json:"quantity"`
	Variant   *string `json:"variant,omitempty"`
	LineTotal int64   `json:"lineTotal"`
}

type SaleResponse struct {
	ID                string            `json:"id"`
	TransactionNumber string            `json:"transactionNumber"`
	Items             []POSItemResponse `json:"items"`
	Subtotal          int64             `json:"subtotal"`
	Tax               int64             `json:"tax"`
	Total             int64             `json:"total"`
	PaymentMethod     string            `json:"paymentMethod"`
	PaymentStatus     string            `json:"paymentStatus"`
	PaidAt            *time.Time        `json:"paidAt,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// InvoiceResponse is the public lookup shape. It carries only what invoice
// rendering needs, never the user reference.
type InvoiceResponse struct {
	TransactionNumber string            `json:"transactionNumber"`
	Items             []POSItemResponse `json:"items"`
	Subtotal          int64             `json:"subtotal"`
	Tax               int64             `json:"tax"`
	Total             int64             `json:"total"`
	PaymentMethod     string            `json:"paymentMethod"`
	PaymentStatus     string            `json:"paymentStatus"`
	PaidAt            *time.Time        `json:"paidAt,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}
