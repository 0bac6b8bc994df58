package http

import (
	"github.com/gofiber/fiber/v2"

	"storefront-service/src/internal/model"
	"storefront-service/src/internal/usecase"
	"storefront-service/src/pkg/log"
	"storefront-service/src/pkg/utils"
)

type PaymentController struct {
	Log     log.Log
	UseCase *usecase.PaymentUseCase
}

func NewPaymentController(useCase *usecase.PaymentUseCase, logger log.Log) *PaymentController {
	return &PaymentController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *PaymentController) ListBanks(ctx *fiber.Ctx) error {
	request := &model.ListBanksRequest{
		CountryCode: ctx.Params("country"),
	}
	result := c.UseCase.ListBanks(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Banks", fiber.StatusOK, ctx)
}

// FundingCallback is the provider's browser redirect target. It only
// redirects; it never writes.
func (c *PaymentController) FundingCallback(ctx *fiber.Ctx) error {
	request := &model.FundingCallbackRequest{
		Status: ctx.Query("status"),
		TxRef:  ctx.Query("tx_ref"),
	}
	redirect := c.UseCase.HandleFundingCallback(ctx.Context(), request)
	return ctx.Redirect(redirect.Location(), fiber.StatusFound)
}
