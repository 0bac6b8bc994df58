package repository

import (
	"context"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"
)

// MaxLedgerPageSize caps every ledger listing.
const MaxLedgerPageSize = 100

type TransactionRepository struct {
	DB mysql.DBInterface
}

func NewTransactionRepository(db mysql.DBInterface) *TransactionRepository {
	return &TransactionRepository{
		DB: db,
	}
}

// ListByWallet returns ledger rows newest first, capped at
// MaxLedgerPageSize regardless of the requested limit.
func (r *TransactionRepository) ListByWallet(ctx context.Context, walletID string, limit int) ([]entity.Transaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > MaxLedgerPageSize {
		limit = MaxLedgerPageSize
	}

	transactions := []entity.Transaction{}
	query := `
		SELECT id, wallet_id, amount, type, status, description, counterparty, reference, created_at
		FROM transactions
		WHERE wallet_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`
	if err = db.SelectContext(ctx, &transactions, query, walletID, limit); err != nil {
		return nil, err
	}

	return transactions, nil
}
