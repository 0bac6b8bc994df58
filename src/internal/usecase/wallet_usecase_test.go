package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	driver "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/src/internal/model"
	"storefront-service/src/internal/repository"
	"storefront-service/src/pkg/databases/mysql"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
)

func newTestLogger() log.Log {
	log.InitLogger(viper.New())
	return log.GetLogger()
}

func newWalletUseCase(t *testing.T) (*WalletUseCase, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dbi := mysql.NewWithDB(sqlx.NewDb(db, "sqlmock"))
	uc := NewWalletUseCase(
		newTestLogger(),
		validator.New(),
		repository.NewWalletRepository(dbi),
		repository.NewTransactionRepository(dbi),
		viper.New(),
		nil,
	)
	return uc, mock
}

func expectWalletSelect(mock sqlmock.Sqlmock, userID string) {
	mock.ExpectQuery("SELECT id, user_id, available_balance").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "available_balance", "ledger_balance", "currency", "created_at", "updated_at",
		}).AddRow("w-1", userID, int64(0), int64(0), "NGN", time.Now(), time.Now()))
}

func TestWalletUseCase_GetBalance_CreatesZeroedWallet(t *testing.T) {
	uc, mock := newWalletUseCase(t)

	mock.ExpectExec("INSERT INTO wallets").
		WithArgs(sqlmock.AnyArg(), "u-1", "NGN").
		WillReturnResult(sqlmock.NewResult(1, 1))
	expectWalletSelect(mock, "u-1")

	result := uc.GetBalance(context.Background(), &model.GetBalanceRequest{UserID: "u-1"})
	require.NoError(t, result.Error)

	response, ok := result.Data.(*model.WalletResponse)
	require.True(t, ok)
	assert.Equal(t, int64(0), response.AvailableBalance)
	assert.Equal(t, int64(0), response.LedgerBalance)
	assert.Equal(t, "NGN", response.Currency)
}

func TestWalletUseCase_GetBalance_ValidationError(t *testing.T) {
	uc, _ := newWalletUseCase(t)

	result := uc.GetBalance(context.Background(), &model.GetBalanceRequest{})
	require.Error(t, result.Error)

	errObj, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 400, errObj.Code)
}

func TestWalletUseCase_ListTransactions_NoWalletIsEmptyList(t *testing.T) {
	uc, mock := newWalletUseCase(t)

	mock.ExpectQuery("SELECT id, user_id, available_balance").
		WithArgs("u-2").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	result := uc.ListTransactions(context.Background(), &model.ListTransactionsRequest{UserID: "u-2"})
	require.NoError(t, result.Error)

	transactions, ok := result.Data.([]model.TransactionResponse)
	require.True(t, ok)
	assert.Empty(t, transactions)
}

func TestWalletUseCase_ListTransactions_OversizedLimitIsCapped(t *testing.T) {
	uc, mock := newWalletUseCase(t)

	expectWalletSelect(mock, "u-1")
	mock.ExpectQuery("SELECT id, wallet_id, amount").
		WithArgs("w-1", 100).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "wallet_id", "amount", "type", "status", "description", "counterparty", "reference", "created_at",
		}))

	result := uc.ListTransactions(context.Background(), &model.ListTransactionsRequest{
		UserID: "u-1",
		Limit:  500,
	})
	require.NoError(t, result.Error)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWalletUseCase_Debit_InsufficientBalance(t *testing.T) {
	uc, mock := newWalletUseCase(t)

	mock.ExpectExec("INSERT INTO wallets").
		WillReturnResult(sqlmock.NewResult(0, 0))
	expectWalletSelect(mock, "u-1")
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	result := uc.Debit(context.Background(), &model.AdjustBalanceRequest{
		UserID: "u-1",
		Amount: 10_000,
	})
	require.Error(t, result.Error)

	errObj, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 400, errObj.Code)
	assert.Equal(t, "insufficient balance", errObj.Message)
}

func TestWalletUseCase_Credit_AppendsLedgerRow(t *testing.T) {
	uc, mock := newWalletUseCase(t)

	mock.ExpectExec("INSERT INTO wallets").
		WillReturnResult(sqlmock.NewResult(0, 0))
	expectWalletSelect(mock, "u-1")
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	result := uc.Credit(context.Background(), &model.AdjustBalanceRequest{
		UserID:      "u-1",
		Amount:      2500,
		Description: "wallet top-up",
	})
	require.NoError(t, result.Error)

	response, ok := result.Data.(*model.TransactionResponse)
	require.True(t, ok)
	assert.Equal(t, int64(2500), response.Amount)
	assert.Equal(t, "credit", response.Type)
	assert.Equal(t, "successful", response.Status)
	assert.NotEmpty(t, response.Reference)
}

func TestWalletUseCase_Credit_DuplicateReference(t *testing.T) {
	uc, mock := newWalletUseCase(t)

	mock.ExpectExec("INSERT INTO wallets").
		WillReturnResult(sqlmock.NewResult(0, 0))
	expectWalletSelect(mock, "u-1")
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wallets").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	result := uc.Credit(context.Background(), &model.AdjustBalanceRequest{
		UserID:    "u-1",
		Amount:    2500,
		Reference: "dup-ref",
	})
	require.Error(t, result.Error)

	errObj, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 400, errObj.Code)
	assert.Contains(t, errObj.Message, "dup-ref")
}
