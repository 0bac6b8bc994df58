package entity

import "time"

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusSuccessful TransactionStatus = "successful"
	TransactionStatusFailed     TransactionStatus = "failed"
)

// Transaction is one append-only ledger row. Reference is globally unique;
// rows are never updated after insert.
type Transaction struct {
	ID           string            `db:"id" json:"id"`
	WalletID     string            `db:"wallet_id" json:"walletId"`
	Amount       int64             `db:"amount" json:"amount"`
	Type         TransactionType   `db:"type" json:"type"`
	Status       TransactionStatus `db:"status" json:"status"`
	Description  string            `db:"description" json:"description"`
	Counterparty string            `db:"counterparty" json:"counterparty"`
	Reference    string            `db:"reference" json:"reference"`
	CreatedAt    time.Time         `db:"created_at" json:"createdAt"`
}
