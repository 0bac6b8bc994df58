package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"

	"storefront-service/src/internal/entity"
	"storefront-service/src/internal/gateway/messaging"
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/model/converter"
	"storefront-service/src/internal/repository"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"
)

// TaskTypeExpirePendingSale cancels point-of-sale transactions nobody paid.
const TaskTypeExpirePendingSale = "pos:expire-pending"

type expirePendingPayload struct {
	TransactionID string `json:"transaction_id"`
}

type POSUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	POSRepository     *repository.POSRepository
	ProductRepository *repository.ProductRepository
	Config            *viper.Viper
	LedgerProducer    *messaging.LedgerProducer
	AsynqClient       *asynq.Client
}

func NewPOSUseCase(
	logger log.Log,
	validate *validator.Validate,
	posRepository *repository.POSRepository,
	productRepository *repository.ProductRepository,
	cfg *viper.Viper,
	ledgerProducer *messaging.LedgerProducer,
	asynqClient *asynq.Client,
) *POSUseCase {
	return &POSUseCase{
		Log:               logger,
		Validate:          validate,
		POSRepository:     posRepository,
		ProductRepository: productRepository,
		Config:            cfg,
		LedgerProducer:    ledgerProducer,
		AsynqClient:       asynqClient,
	}
}

// CreateSale records a point-of-sale transaction. Subtotal and total are
// exact integer sums over minor units; tax is a pass-through from the
// request.
func (c *POSUseCase) CreateSale(ctx context.Context, request *model.CreateSaleRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("CreateSale-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	items := make([]entity.POSTransactionItem, 0, len(request.Items))
	var subtotal int64
	for _, line := range request.Items {
		product, err := c.ProductRepository.FindByID(ctx, line.ProductID)
		if errors.Is(err, repository.ErrNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("product %s not found", line.ProductID)
			result.Error = errObj
			c.Log.Error("CreateSale-product", errObj.Message, "request", utils.ConvertString(request))
			return result
		}
		if err != nil {
			c.Log.Error("CreateSale-product", err.Error(), "productID", line.ProductID)
			result.Error = httpError.NewInternalServerError()
			return result
		}
		if !product.POSEnabled {
			errObj := httpError.NewBadRequest()
			errObj.Message = fmt.Sprintf("product %s is not sellable at the point of sale", product.Name)
			result.Error = errObj
			return result
		}

		price := product.Price
		if line.Variant != nil {
			variantPrice, ok := variantPriceByName(product, *line.Variant)
			if !ok {
				errObj := httpError.NewBadRequest()
				errObj.Message = fmt.Sprintf("product %s has no variant %q", product.Name, *line.Variant)
				result.Error = errObj
				return result
			}
			price = variantPrice
		}

		lineTotal := price * int64(line.Quantity)
		subtotal += lineTotal
		items = append(items, entity.POSTransactionItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     price,
			Quantity:  line.Quantity,
			Variant:   line.Variant,
			LineTotal: lineTotal,
		})
	}

	sale := &entity.POSTransaction{
		ID:                uuid.NewString(),
		TransactionNumber: newTransactionNumber(),
		Subtotal:          subtotal,
		Tax:               request.Tax,
		Total:             subtotal + request.Tax,
		PaymentMethod:     entity.PaymentMethod(request.PaymentMethod),
		PaymentStatus:     entity.PaymentStatusPending,
		UserID:            request.UserID,
		Items:             items,
		CreatedAt:         time.Now().UTC(),
	}

	if err := c.POSRepository.CreateSale(ctx, sale); err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			errObj := httpError.NewBadRequest()
			errObj.Message = "insufficient stock for one or more items"
			result.Error = errObj
			c.Log.Error("CreateSale-stock", errObj.Message, "sale", sale.TransactionNumber)
			return result
		}
		c.Log.Error("CreateSale-write", err.Error(), "sale", sale.TransactionNumber)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	c.enqueueExpiry(sale.ID)
	c.publishSale(sale)

	result.Data = converter.SaleToResponse(sale)
	return result
}

// ConfirmPayment marks a pending sale paid once the cash handoff or
// transfer is confirmed out of band.
func (c *POSUseCase) ConfirmPayment(ctx context.Context, request *model.SaleLookupRequest) utils.Result {
	return c.transition(ctx, request, "ConfirmPayment", func(ctx context.Context, id string) error {
		return c.POSRepository.MarkPaid(ctx, id, time.Now().UTC())
	})
}

// CancelSale voids a pending sale and returns its stock.
func (c *POSUseCase) CancelSale(ctx context.Context, request *model.SaleLookupRequest) utils.Result {
	return c.transition(ctx, request, "CancelSale", c.POSRepository.Cancel)
}

func (c *POSUseCase) transition(ctx context.Context, request *model.SaleLookupRequest, scope string, apply func(context.Context, string) error) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error(scope+"-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	err := apply(ctx, request.TransactionID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("transaction %s not found", request.TransactionID)
		result.Error = errObj
		return result
	case errors.Is(err, repository.ErrInvalidTransition):
		errObj := httpError.NewBadRequest()
		errObj.Message = "transaction is no longer pending"
		result.Error = errObj
		return result
	case err != nil:
		c.Log.Error(scope+"-write", err.Error(), "transactionID", request.TransactionID)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	sale, err := c.POSRepository.FindByID(ctx, request.TransactionID)
	if err != nil {
		c.Log.Error(scope+"-reload", err.Error(), "transactionID", request.TransactionID)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	c.publishSale(sale)
	result.Data = converter.SaleToResponse(sale)
	return result
}

// GetInvoice is the public lookup used to regenerate a customer invoice. It
// returns only invoice-safe fields and 404 on an unknown id.
func (c *POSUseCase) GetInvoice(ctx context.Context, request *model.SaleLookupRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	sale, err := c.POSRepository.FindByID(ctx, request.TransactionID)
	if errors.Is(err, repository.ErrNotFound) {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("transaction %s not found", request.TransactionID)
		result.Error = errObj
		return result
	}
	if err != nil {
		c.Log.Error("GetInvoice-FindByID", err.Error(), "transactionID", request.TransactionID)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = converter.SaleToInvoice(sale)
	return result
}

// ExpirePending is the asynq handler cancelling sales still unpaid after
// the expiry window. Already paid or cancelled sales are a no-op.
func (c *POSUseCase) ExpirePending(ctx context.Context, task *asynq.Task) error {
	var payload expirePendingPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		c.Log.Error("ExpirePending-payload", err.Error(), "task", string(task.Payload()))
		return err
	}

	err := c.POSRepository.Cancel(ctx, payload.TransactionID)
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidTransition) {
		return nil
	}
	if err != nil {
		c.Log.Error("ExpirePending-cancel", err.Error(), "transactionID", payload.TransactionID)
		return err
	}

	c.Log.Info("ExpirePending", "cancelled stale pending sale", "transactionID", payload.TransactionID)
	return nil
}

func (c *POSUseCase) enqueueExpiry(transactionID string) {
	if c.AsynqClient == nil {
		return
	}

	payload, err := json.Marshal(expirePendingPayload{TransactionID: transactionID})
	if err != nil {
		c.Log.Error("CreateSale-enqueue", err.Error(), "transactionID", transactionID)
		return
	}

	window := c.Config.GetInt("pos.pending_expiry_minutes")
	if window <= 0 {
		window = 24 * 60
	}

	task := asynq.NewTask(TaskTypeExpirePendingSale, payload)
	if _, err := c.AsynqClient.Enqueue(task, asynq.ProcessIn(time.Duration(window)*time.Minute)); err != nil {
		c.Log.Error("CreateSale-enqueue", err.Error(), "transactionID", transactionID)
	}
}

func (c *POSUseCase) publishSale(sale *entity.POSTransaction) {
	if c.LedgerProducer == nil {
		return
	}
	event := &model.POSSaleEvent{
		EventID:           uuid.NewString(),
		TransactionID:     sale.ID,
		TransactionNumber: sale.TransactionNumber,
		Total:             sale.Total,
		PaymentMethod:     string(sale.PaymentMethod),
		PaymentStatus:     string(sale.PaymentStatus),
		Occurred:          time.Now().UTC(),
	}
	if err := c.LedgerProducer.SendPOSSale(event); err != nil {
		c.Log.Error("POS-publish", err.Error(), "event", event.EventID)
	}
}

func variantPriceByName(product *entity.Product, name string) (int64, bool) {
	for _, v := range product.Variants {
		if v.Name == name {
			return v.Price, true
		}
	}
	return 0, false
}

func newTransactionNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("POS-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
