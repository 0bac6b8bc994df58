package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"
)

func newMockDB(t *testing.T) (mysql.DBInterface, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return mysql.NewWithDB(sqlx.NewDb(db, "sqlmock")), mock
}

func walletRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "available_balance", "ledger_balance", "currency", "created_at", "updated_at",
	}).AddRow("w-1", "u-1", int64(0), int64(0), "NGN", time.Now(), time.Now())
}

func TestWalletRepository_GetOrCreate(t *testing.T) {
	dbi, mock := newMockDB(t)
	repo := NewWalletRepository(dbi)

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(sqlmock.AnyArg(), "u-1", "NGN").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT id, user_id, available_balance").
		WithArgs("u-1").
		WillReturnRows(walletRows())

	wallet, err := repo.GetOrCreate(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", wallet.UserID)
	assert.Equal(t, int64(0), wallet.AvailableBalance)
	assert.Equal(t, int64(0), wallet.LedgerBalance)
	assert.Equal(t, "NGN", wallet.Currency)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepository_GetOrCreate_SecondCallDoesNotDuplicate(t *testing.T) {
	dbi, mock := newMockDB(t)
	repo := NewWalletRepository(dbi)

	// The upsert is a no-op when the unique user_id row already exists.
	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(sqlmock.AnyArg(), "u-1", "NGN").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT id, user_id, available_balance").
		WithArgs("u-1").
		WillReturnRows(walletRows())

	wallet, err := repo.GetOrCreate(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "w-1", wallet.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepository_FindByUserID_NotFound(t *testing.T) {
	dbi, mock := newMockDB(t)
	repo := NewWalletRepository(dbi)

	mock.ExpectQuery("SELECT id, user_id, available_balance").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByUserID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWalletRepository_Credit_AdjustsBalanceAndAppendsLedgerRow(t *testing.T) {
	dbi, mock := newMockDB(t)
	repo := NewWalletRepository(dbi)

	record := &entity.Transaction{
		ID:        "t-1",
		Amount:    5000,
		Type:      entity.TransactionTypeCredit,
		Status:    entity.TransactionStatusSuccessful,
		Reference: "ref-1",
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets").
		WithArgs(int64(5000), int64(5000), "w-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs("t-1", "w-1", int64(5000), entity.TransactionTypeCredit, entity.TransactionStatusSuccessful, "", "", "ref-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Credit(context.Background(), "w-1", record)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletRepository_Debit_InsufficientBalance(t *testing.T) {
	dbi, mock := newMockDB(t)
	repo := NewWalletRepository(dbi)

	record := &entity.Transaction{
		ID:        "t-2",
		Amount:    9000,
		Type:      entity.TransactionTypeDebit,
		Status:    entity.TransactionStatusSuccessful,
		Reference: "ref-2",
	}

	// The guard lives in the WHERE clause; zero rows affected means the
	// balance could not cover the amount.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets").
		WithArgs(int64(9000), int64(9000), "w-1", int64(9000)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Debit(context.Background(), "w-1", record)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
