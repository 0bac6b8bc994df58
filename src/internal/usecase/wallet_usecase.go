package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
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

type WalletUseCase struct {
	Log                   log.Log
	Validate              *validator.Validate
	WalletRepository      *repository.WalletRepository
	TransactionRepository *repository.TransactionRepository
	Config                *viper.Viper
	LedgerProducer        *messaging.LedgerProducer
}

func NewWalletUseCase(
	logger log.Log,
	validate *validator.Validate,
	walletRepository *repository.WalletRepository,
	transactionRepository *repository.TransactionRepository,
	cfg *viper.Viper,
	ledgerProducer *messaging.LedgerProducer,
) *WalletUseCase {
	return &WalletUseCase{
		Log:                   logger,
		Validate:              validate,
		WalletRepository:      walletRepository,
		TransactionRepository: transactionRepository,
		Config:                cfg,
		LedgerProducer:        ledgerProducer,
	}
}

// GetBalance returns the user's wallet, creating a zero-balance one on the
// first query.
func (c *WalletUseCase) GetBalance(ctx context.Context, request *model.GetBalanceRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("GetBalance-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	wallet, err := c.WalletRepository.GetOrCreate(ctx, request.UserID)
	if err != nil {
		c.Log.Error("GetBalance-GetOrCreate", err.Error(), "request", utils.ConvertString(request))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = converter.WalletToResponse(wallet)
	return result
}

// Credit moves money into the wallet and appends the ledger row.
func (c *WalletUseCase) Credit(ctx context.Context, request *model.AdjustBalanceRequest) utils.Result {
	return c.adjust(ctx, request, entity.TransactionTypeCredit)
}

// Debit moves money out, failing when the available balance cannot cover
// the amount.
func (c *WalletUseCase) Debit(ctx context.Context, request *model.AdjustBalanceRequest) utils.Result {
	return c.adjust(ctx, request, entity.TransactionTypeDebit)
}

func (c *WalletUseCase) adjust(ctx context.Context, request *model.AdjustBalanceRequest, txType entity.TransactionType) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("Adjust-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	wallet, err := c.WalletRepository.GetOrCreate(ctx, request.UserID)
	if err != nil {
		c.Log.Error("Adjust-GetOrCreate", err.Error(), "request", utils.ConvertString(request))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	reference := request.Reference
	if reference == "" {
		reference = uuid.NewString()
	}

	record := &entity.Transaction{
		ID:           uuid.NewString(),
		WalletID:     wallet.ID,
		Amount:       request.Amount,
		Type:         txType,
		Status:       entity.TransactionStatusSuccessful,
		Description:  request.Description,
		Counterparty: "wallet",
		Reference:    reference,
	}

	if txType == entity.TransactionTypeCredit {
		err = c.WalletRepository.Credit(ctx, wallet.ID, record)
	} else {
		err = c.WalletRepository.Debit(ctx, wallet.ID, record)
	}

	switch {
	case errors.Is(err, repository.ErrInsufficientBalance):
		errObj := httpError.NewBadRequest()
		errObj.Message = "insufficient balance"
		result.Error = errObj
		c.Log.Error("Adjust-balance", errObj.Message, string(txType), request.UserID)
		return result
	case errors.Is(err, repository.ErrDuplicateReference):
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("transaction reference %s already used", reference)
		result.Error = errObj
		c.Log.Error("Adjust-reference", errObj.Message, string(txType), request.UserID)
		return result
	case err != nil:
		c.Log.Error("Adjust-write", err.Error(), string(txType), request.UserID)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	c.publishTransaction(wallet, record)

	result.Data = converter.TransactionToResponse(record)
	return result
}

// publishTransaction is best effort. A dead broker never fails a committed
// ledger write.
func (c *WalletUseCase) publishTransaction(wallet *entity.Wallet, record *entity.Transaction) {
	if c.LedgerProducer == nil {
		return
	}
	event := &model.WalletTransactionEvent{
		EventID:   uuid.NewString(),
		WalletID:  wallet.ID,
		UserID:    wallet.UserID,
		Amount:    record.Amount,
		Type:      string(record.Type),
		Reference: record.Reference,
		Occurred:  time.Now().UTC(),
	}
	if err := c.LedgerProducer.SendWalletTransaction(event); err != nil {
		c.Log.Error("Adjust-publish", err.Error(), "event", event.EventID)
	}
}

// ListTransactions returns the ledger newest first, capped at the page
// limit. A user without a wallet gets an empty list, not an error.
func (c *WalletUseCase) ListTransactions(ctx context.Context, request *model.ListTransactionsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("ListTransactions-validation", err.Error(), "request", utils.ConvertString(request))
		return result
	}

	wallet, err := c.WalletRepository.FindByUserID(ctx, request.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		result.Data = []model.TransactionResponse{}
		return result
	}
	if err != nil {
		c.Log.Error("ListTransactions-FindByUserID", err.Error(), "request", utils.ConvertString(request))
		result.Error = httpError.NewInternalServerError()
		return result
	}

	transactions, err := c.TransactionRepository.ListByWallet(ctx, wallet.ID, request.Limit)
	if err != nil {
		c.Log.Error("ListTransactions-ListByWallet", err.Error(), "walletID", wallet.ID)
		result.Error = httpError.NewInternalServerError()
		return result
	}

	result.Data = converter.TransactionsToResponse(transactions)
	return result
}
