package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"
)

const defaultCurrency = "NGN"

type WalletRepository struct {
	DB mysql.DBInterface
}

func NewWalletRepository(db mysql.DBInterface) *WalletRepository {
	return &WalletRepository{
		DB: db,
	}
}

// GetOrCreate returns the user's wallet, inserting a zero-balance one on
// first call. The unique index on user_id plus the no-op upsert makes this
// safe against concurrent first reads.
func (r *WalletRepository) GetOrCreate(ctx context.Context, userID string) (*entity.Wallet, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	insert := `
		INSERT INTO wallets (id, user_id, available_balance, ledger_balance, currency, created_at, updated_at)
		VALUES (?, ?, 0, 0, ?, NOW(), NOW())
		ON DUPLICATE KEY UPDATE id = id
	`
	if _, err = db.ExecContext(ctx, insert, uuid.NewString(), userID, defaultCurrency); err != nil {
		return nil, err
	}

	return r.FindByUserID(ctx, userID)
}

func (r *WalletRepository) FindByUserID(ctx context.Context, userID string) (*entity.Wallet, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var wallet entity.Wallet
	query := `
		SELECT id, user_id, available_balance, ledger_balance, currency, created_at, updated_at
		FROM wallets
		WHERE user_id = ?
	`
	err = db.GetContext(ctx, &wallet, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &wallet, nil
}

// Credit adjusts both balances and appends the ledger row in one database
// transaction, so a balance can never drift from its ledger.
func (r *WalletRepository) Credit(ctx context.Context, walletID string, record *entity.Transaction) error {
	return withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		update := `
			UPDATE wallets
			SET available_balance = available_balance + ?,
			    ledger_balance = ledger_balance + ?,
			    updated_at = NOW()
			WHERE id = ?
		`
		res, err := tx.ExecContext(ctx, update, record.Amount, record.Amount, walletID)
		if err != nil {
			return err
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return ErrNotFound
		}

		return r.appendTransaction(ctx, tx, walletID, record)
	})
}

// Debit refuses to push the available balance negative. The balance guard
// lives in the WHERE clause so concurrent debits cannot both pass a
// read-then-write check.
func (r *WalletRepository) Debit(ctx context.Context, walletID string, record *entity.Transaction) error {
	return withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		update := `
			UPDATE wallets
			SET available_balance = available_balance - ?,
			    ledger_balance = ledger_balance - ?,
			    updated_at = NOW()
			WHERE id = ? AND available_balance >= ?
		`
		res, err := tx.ExecContext(ctx, update, record.Amount, record.Amount, walletID, record.Amount)
		if err != nil {
			return err
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return ErrInsufficientBalance
		}

		return r.appendTransaction(ctx, tx, walletID, record)
	})
}

func (r *WalletRepository) appendTransaction(ctx context.Context, tx *sqlx.Tx, walletID string, record *entity.Transaction) error {
	insert := `
		INSERT INTO transactions (id, wallet_id, amount, type, status, description, counterparty, reference, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`
	_, err := tx.ExecContext(ctx, insert,
		record.ID, walletID, record.Amount, record.Type, record.Status,
		record.Description, record.Counterparty, record.Reference)
	if isDuplicateEntry(err) {
		return ErrDuplicateReference
	}
	return err
}
