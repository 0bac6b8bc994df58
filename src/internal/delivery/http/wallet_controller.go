package http

import (
	"github.com/gofiber/fiber/v2"

	"storefront-service/src/internal/delivery/http/middleware"
	"storefront-service/src/internal/model"
	"storefront-service/src/internal/usecase"
	httpError "storefront-service/src/pkg/http-error"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"
)

type WalletController struct {
	Log     log.Log
	UseCase *usecase.WalletUseCase
}

func NewWalletController(useCase *usecase.WalletUseCase, logger log.Log) *WalletController {
	return &WalletController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *WalletController) GetBalance(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.GetBalanceRequest{
		UserID: auth.UserID,
	}
	result := c.UseCase.GetBalance(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Wallet Balance", fiber.StatusOK, ctx)
}

func (c *WalletController) Credit(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.AdjustBalanceRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WalletController.Credit", "Failed to parse request body", "error", err.Error())
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		return utils.ResponseError(errObj, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.Credit(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Wallet Credited", fiber.StatusCreated, ctx)
}

func (c *WalletController) Debit(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := new(model.AdjustBalanceRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("WalletController.Debit", "Failed to parse request body", "error", err.Error())
		errObj := httpError.NewBadRequest()
		errObj.Message = err.Error()
		return utils.ResponseError(errObj, ctx)
	}
	request.UserID = auth.UserID

	result := c.UseCase.Debit(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Wallet Debited", fiber.StatusCreated, ctx)
}

func (c *WalletController) ListTransactions(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.ListTransactionsRequest{
		UserID: auth.UserID,
		Limit:  ctx.QueryInt("limit"),
	}
	result := c.UseCase.ListTransactions(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Wallet Transactions", fiber.StatusOK, ctx)
}
