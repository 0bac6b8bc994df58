package model

import "time"

type GetBalanceRequest struct {
	UserID string `json:"-" validate:"required,max=100"`
}

type WalletResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	AvailableBalance int64     `json:"availableBalance"`
	LedgerBalance    int64     `json:"ledgerBalance"`
	Currency         string    `json:"currency"`
	CreatedAt        time.Time `json:"createdAt"`
}

type AdjustBalanceRequest struct {
	UserID      string `json:"-" validate:"required,max=100"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description" validate:"max=255"`
	Reference   string `json:"reference" validate:"max=100"`
}

type ListTransactionsRequest struct {
	UserID string `json:"-" validate:"required,max=100"`

	// Limit is clamped by the repository, never rejected.
	Limit int `json:"-"`
}

// TransactionResponse is the flat ledger row shape exposed over the API.
type TransactionResponse struct {
	ID           string    `json:"id"`
	Amount       int64     `json:"amount"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	Counterparty string    `json:"counterparty"`
	Reference    string    `json:"reference"`
}
