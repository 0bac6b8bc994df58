package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/src/internal/entity"
)

func pendingSale() *entity.POSTransaction {
	return &entity.POSTransaction{
		ID:                "s-1",
		TransactionNumber: "POS-20260830-A1B2C3",
		Subtotal:          1500,
		Tax:               100,
		Total:             1600,
		PaymentMethod:     entity.PaymentMethodCash,
		PaymentStatus:     entity.PaymentStatusPending,
		Items: []entity.POSTransactionItem{
			{ProductID: "p-1", Name: "Mug", Price: 500, Quantity: 3, LineTotal: 1500},
		},
	}
}

func TestPOSRepository_CreateSale(t *testing.T) {
	dbi, mock := newMockDB(t)
	repo := NewPOSRepository(dbi)
	sale := pendingSale()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO pos_transactions").
		WithArgs(sale.ID, sale.TransactionNumber, sale.Subtotal, sale.Tax, sale.Total,
			sale.PaymentMethod, sale.PaymentStatus, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO pos_transaction_items").
		WithArgs(sale.ID, "p-1", "Mug", int64(500), 3, nil, int64(1500)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE products").
		WithArgs(3, 3, "p-1", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.CreateSale(context.Background(), sale)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPOSRepository_CreateSale_InsufficientStock(t *testing.T) {
	dbi, mock := newMockDB(t)
	repo := NewPOSRepository(dbi)
	sale := pendingSale()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO pos_transactions").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO pos_transaction_items").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE products").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.CreateSale(context.Background(), sale)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestPOSRepository_MarkPaid_OnlyFromPending(t *testing.T) {
	dbi, mock := newMockDB(t)
	repo := NewPOSRepository(dbi)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT payment_status FROM pos_transactions").
		WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows([]string{"payment_status"}).AddRow("paid"))
	mock.ExpectRollback()

	err := repo.MarkPaid(context.Background(), "s-1", time.Now())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestPOSRepository_MarkPaid_UnknownID(t *testing.T) {
	dbi, mock := newMockDB(t)
	repo := NewPOSRepository(dbi)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT payment_status FROM pos_transactions").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"payment_status"}))
	mock.ExpectRollback()

	err := repo.MarkPaid(context.Background(), "nope", time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPOSRepository_Cancel_RestoresStock(t *testing.T) {
	dbi, mock := newMockDB(t)
	repo := NewPOSRepository(dbi)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT payment_status FROM pos_transactions").
		WithArgs("s-1").
		WillReturnRows(sqlmock.NewRows([]string{"payment_status"}).AddRow("pending"))
	mock.ExpectExec("UPDATE pos_transactions").
		WithArgs(entity.PaymentStatusCancelled, "s-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE products p").
		WithArgs("s-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE product_variants v").
		WithArgs("s-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Cancel(context.Background(), "s-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPOSRepository_FindByID_NotFound(t *testing.T) {
	dbi, mock := newMockDB(t)
	repo := NewPOSRepository(dbi)

	mock.ExpectQuery("SELECT id, transaction_number").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
