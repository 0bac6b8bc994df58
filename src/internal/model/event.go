package model

import "time"

// Event is implemented by everything the messaging gateway can publish.
type Event interface {
	GetId() string
}

// WalletTransactionEvent is published after a ledger entry commits.
type WalletTransactionEvent struct {
	EventID   string    `json:"event_id"`
	WalletID  string    `json:"wallet_id"`
	UserID    string    `json:"user_id"`
	Amount    int64     `json:"amount"`
	Type      string    `json:"type"`
	Reference string    `json:"reference"`
	Occurred  time.Time `json:"occurred_at"`
}

func (e *WalletTransactionEvent) GetId() string {
	return e.EventID
}

// POSSaleEvent is published when a point-of-sale transaction is created or
// changes payment status.
type POSSaleEvent struct {
	EventID           string    `json:"event_id"`
	TransactionID     string    `json:"transaction_id"`
	TransactionNumber string    `json:"transaction_number"`
	Total             int64     `json:"total"`
	PaymentMethod     string    `json:"payment_method"`
	PaymentStatus     string    `json:"payment_status"`
	Occurred          time.Time `json:"occurred_at"`
}

func (e *POSSaleEvent) GetId() string {
	return e.EventID
}
