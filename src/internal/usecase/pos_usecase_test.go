package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-service/src/internal/model"
	"storefront-service/src/internal/repository"
	"storefront-service/src/pkg/databases/mysql"
	httpError "storefront-service/src/pkg/http-error"
)

func newPOSUseCase(t *testing.T) (*POSUseCase, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	dbi := mysql.NewWithDB(sqlx.NewDb(db, "sqlmock"))
	uc := NewPOSUseCase(
		newTestLogger(),
		validator.New(),
		repository.NewPOSRepository(dbi),
		repository.NewProductRepository(dbi),
		viper.New(),
		nil,
		nil,
	)
	return uc, mock
}

func expectProductLookup(mock sqlmock.Sqlmock, id string, price int64, posEnabled bool) {
	mock.ExpectQuery("SELECT id, name, description, price").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "description", "price", "category", "image_url",
			"stock", "views", "sold", "revenue", "pos_enabled", "created_at", "updated_at",
		}).AddRow(id, "Ankara Tote", "", price, "bags", "", 50, 0, 0, int64(0), posEnabled, time.Now(), time.Now()))
}

func expectVariantLookup(mock sqlmock.Sqlmock, id string, rows *sqlmock.Rows) {
	mock.ExpectQuery("SELECT id, product_id, name, price, stock FROM product_variants").
		WithArgs(id).
		WillReturnRows(rows)
}

func variantRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "product_id", "name", "price", "stock"})
}

func TestPOSUseCase_CreateSale_TotalsAreExact(t *testing.T) {
	uc, mock := newPOSUseCase(t)

	expectProductLookup(mock, "p-1", 1999, true)
	expectVariantLookup(mock, "p-1", variantRows())
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO pos_transactions").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO pos_transaction_items").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE products").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result := uc.CreateSale(context.Background(), &model.CreateSaleRequest{
		Items:         []model.POSItemRequest{{ProductID: "p-1", Quantity: 3}},
		PaymentMethod: "cash",
		Tax:           150,
	})
	require.NoError(t, result.Error)

	sale, ok := result.Data.(*model.SaleResponse)
	require.True(t, ok)
	assert.Equal(t, int64(5997), sale.Subtotal)
	assert.Equal(t, int64(150), sale.Tax)
	assert.Equal(t, int64(6147), sale.Total)
	assert.Equal(t, "pending", sale.PaymentStatus)
	assert.Regexp(t, regexp.MustCompile(`^POS-\d{8}-[0-9A-F]{6}$`), sale.TransactionNumber)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, int64(5997), sale.Items[0].LineTotal)
}

func TestPOSUseCase_CreateSale_VariantPriceOverridesBase(t *testing.T) {
	uc, mock := newPOSUseCase(t)

	expectProductLookup(mock, "p-1", 1999, true)
	expectVariantLookup(mock, "p-1", variantRows().AddRow(1, "p-1", "Large", int64(5000), 10))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO pos_transactions").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO pos_transaction_items").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE products").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE product_variants").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	variant := "Large"
	result := uc.CreateSale(context.Background(), &model.CreateSaleRequest{
		Items:         []model.POSItemRequest{{ProductID: "p-1", Quantity: 2, Variant: &variant}},
		PaymentMethod: "transfer",
	})
	require.NoError(t, result.Error)

	sale := result.Data.(*model.SaleResponse)
	assert.Equal(t, int64(10_000), sale.Subtotal)
	assert.Equal(t, int64(5000), sale.Items[0].Price)
}

func TestPOSUseCase_CreateSale_RejectsNonPOSProduct(t *testing.T) {
	uc, mock := newPOSUseCase(t)

	expectProductLookup(mock, "p-1", 1999, false)
	expectVariantLookup(mock, "p-1", variantRows())

	result := uc.CreateSale(context.Background(), &model.CreateSaleRequest{
		Items:         []model.POSItemRequest{{ProductID: "p-1", Quantity: 1}},
		PaymentMethod: "cash",
	})
	require.Error(t, result.Error)

	errObj, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 400, errObj.Code)
}

func TestPOSUseCase_CreateSale_UnknownVariant(t *testing.T) {
	uc, mock := newPOSUseCase(t)

	expectProductLookup(mock, "p-1", 1999, true)
	expectVariantLookup(mock, "p-1", variantRows().AddRow(1, "p-1", "Large", int64(5000), 10))

	variant := "Gigantic"
	result := uc.CreateSale(context.Background(), &model.CreateSaleRequest{
		Items:         []model.POSItemRequest{{ProductID: "p-1", Quantity: 1, Variant: &variant}},
		PaymentMethod: "cash",
	})
	require.Error(t, result.Error)

	errObj := result.Error.(*httpError.CommonError)
	assert.Equal(t, 400, errObj.Code)
	assert.Contains(t, errObj.Message, "Gigantic")
}

func TestPOSUseCase_ConfirmPayment_UnknownTransaction(t *testing.T) {
	uc, mock := newPOSUseCase(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT payment_status FROM pos_transactions").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"payment_status"}))
	mock.ExpectRollback()

	result := uc.ConfirmPayment(context.Background(), &model.SaleLookupRequest{TransactionID: "missing"})
	require.Error(t, result.Error)

	errObj, ok := result.Error.(*httpError.CommonError)
	require.True(t, ok)
	assert.Equal(t, 404, errObj.Code)
}

func TestPOSUseCase_GetInvoice_OmitsUserReference(t *testing.T) {
	uc, mock := newPOSUseCase(t)

	userID := "u-9"
	mock.ExpectQuery("SELECT id, transaction_number").
		WithArgs("pos-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "transaction_number", "subtotal", "tax", "total",
			"payment_method", "payment_status", "paid_at", "user_id", "created_at", "updated_at",
		}).AddRow("pos-1", "POS-20260830-ABC123", int64(5000), int64(0), int64(5000),
			"cash", "paid", time.Now(), userID, time.Now(), time.Now()))
	mock.ExpectQuery("SELECT id, pos_transaction_id, product_id").
		WithArgs("pos-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "pos_transaction_id", "product_id", "name", "price", "quantity", "variant", "line_total",
		}).AddRow(1, "pos-1", "p-1", "Ankara Tote", int64(5000), 1, nil, int64(5000)))

	result := uc.GetInvoice(context.Background(), &model.SaleLookupRequest{TransactionID: "pos-1"})
	require.NoError(t, result.Error)

	invoice, ok := result.Data.(*model.InvoiceResponse)
	require.True(t, ok)
	assert.Equal(t, "POS-20260830-ABC123", invoice.TransactionNumber)

	raw, err := json.Marshal(invoice)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), userID)
}

func TestPOSUseCase_ExpirePending_NonPendingIsNoOp(t *testing.T) {
	uc, mock := newPOSUseCase(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT payment_status FROM pos_transactions").
		WithArgs("pos-1").
		WillReturnRows(sqlmock.NewRows([]string{"payment_status"}).AddRow("paid"))
	mock.ExpectRollback()

	payload, err := json.Marshal(expirePendingPayload{TransactionID: "pos-1"})
	require.NoError(t, err)

	task := asynq.NewTask(TaskTypeExpirePendingSale, payload)
	assert.NoError(t, uc.ExpirePending(context.Background(), task))
}
